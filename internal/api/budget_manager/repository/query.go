package budgetRepository

const (
	queryCreateTransaction = `
		INSERT INTO budget_transactions (
			id,
			user_id,
			title,
			description,
			nominal,
			type,
			category,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:title,
			:description,
			:nominal,
			:type,
			:category,
			:created_at,
			:updated_at
		)
	`

	queryGetAllTransactions = `
		SELECT
			id,
			user_id,
			title,
			description,
			nominal,
			type,
			category,
			created_at,
			updated_at
		FROM budget_transactions
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryGetCurrentWeekTransactions = `
		SELECT
			id,
			user_id,
			title,
			description,
			nominal,
			type,
			category,
			created_at,
			updated_at
		FROM budget_transactions
		WHERE
			user_id = :user_id
			AND created_at >= date_trunc('week', CURRENT_DATE)
			AND created_at < date_trunc('week', CURRENT_DATE) + interval '1 week'
		ORDER BY created_at DESC
	`

	queryGetCurrentMonthTransactions = `
		SELECT
			id,
			user_id,
			title,
			description,
			nominal,
			type,
			category,
			created_at,
			updated_at
		FROM budget_transactions
		WHERE
			user_id = :user_id
			AND created_at >= date_trunc('month', CURRENT_DATE)
			AND created_at < date_trunc('month', CURRENT_DATE) + interval '1 month'
		ORDER BY created_at DESC
	`

	queryGetTransactionById = `
		SELECT
			id,
			user_id,
			title,
			description,
			nominal,
			type,
			category,
			created_at,
			updated_at
		FROM budget_transactions
		WHERE id = :id
	`

	queryUpdateTransaction = `
		UPDATE budget_transactions
		SET
			title = :title,
			description = :description,
			nominal = :nominal,
			type = :type,
			category = :category,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM budget_transactions
		WHERE id = :id
	`

	queryGetTransactionsByTypeAndCategory = `
		SELECT
			id,
			user_id,
			title,
			description,
			nominal,
			type,
			category,
			created_at,
			updated_at
		FROM budget_transactions
		WHERE
			user_id = :user_id
			AND type = :type
			AND category = :category
		ORDER BY created_at DESC
	`

	querySearchExpenses = `
		SELECT
			id,
			user_id,
			title,
			description,
			nominal,
			type,
			category,
			created_at,
			updated_at
		FROM budget_transactions
		WHERE
			user_id = :user_id
			AND type = 'expense'
			AND (LOWER(title) LIKE :keyword OR LOWER(description) LIKE :keyword)
		ORDER BY created_at DESC
	`

	queryGetPeriodTotals = `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN nominal ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN nominal ELSE 0 END), 0) AS expense
		FROM budget_transactions
		WHERE
			user_id = :user_id
			AND created_at >= :from
			AND created_at < :to
	`

	queryGetCategoryBreakdown = `
		SELECT
			category,
			COALESCE(SUM(nominal), 0) AS total,
			COUNT(*) AS count
		FROM budget_transactions
		WHERE
			user_id = :user_id
			AND type = 'expense'
			AND created_at >= :from
			AND created_at < :to
		GROUP BY category
		ORDER BY total DESC
	`

	queryGetDailyExpenses = `
		SELECT
			date_trunc('day', created_at) AS day,
			COALESCE(SUM(nominal), 0) AS total
		FROM budget_transactions
		WHERE
			user_id = :user_id
			AND type = 'expense'
			AND created_at >= :from
			AND created_at < :to
		GROUP BY date_trunc('day', created_at)
		ORDER BY day
	`

	queryCreateSavingGoal = `
		INSERT INTO saving_goals (
			id,
			user_id,
			name,
			target,
			current,
			deadline,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:target,
			:current,
			:deadline,
			:created_at,
			:updated_at
		)
	`

	queryGetSavingGoalsByUserID = `
		SELECT
			id,
			user_id,
			name,
			target,
			current,
			deadline,
			created_at,
			updated_at
		FROM saving_goals
		WHERE user_id = :user_id
		ORDER BY created_at
	`

	queryGetSavingGoalByID = `
		SELECT
			id,
			user_id,
			name,
			target,
			current,
			deadline,
			created_at,
			updated_at
		FROM saving_goals
		WHERE id = :id
	`

	queryUpdateSavingGoalProgress = `
		UPDATE saving_goals
		SET
			current = :current,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteSavingGoal = `
		DELETE FROM saving_goals
		WHERE id = :id
	`

	queryUpsertWalletSettings = `
		INSERT INTO wallet_settings (
			user_id,
			monthly_allowance,
			weekly_allowance,
			financial_goal,
			updated_at
		) VALUES (
			:user_id,
			:monthly_allowance,
			:weekly_allowance,
			:financial_goal,
			:updated_at
		)
		ON CONFLICT (user_id) DO UPDATE
		SET
			monthly_allowance = EXCLUDED.monthly_allowance,
			weekly_allowance = EXCLUDED.weekly_allowance,
			financial_goal = EXCLUDED.financial_goal,
			updated_at = EXCLUDED.updated_at
	`

	queryGetWalletSettings = `
		SELECT
			user_id,
			monthly_allowance,
			weekly_allowance,
			financial_goal,
			updated_at
		FROM wallet_settings
		WHERE user_id = :user_id
	`
)
