package budgetService

import (
	"time"

	"SakuBot/internal/api/budget_manager"
	"SakuBot/internal/entity"
	contextPkg "SakuBot/pkg/context"
	"SakuBot/pkg/finance"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// BuildFinancialContext assembles the aggregate figures one assistant
// turn needs: balance, current month and week totals, the month's
// category breakdown, wallet settings, and saving goals. A missing
// wallet row degrades to zero allowances instead of failing.
func (s *budgetService) BuildFinancialContext(ctx context.Context, userID string) (entity.FinancialContext, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.FinancialContext{}, err
	}

	now := s.now()
	monthFrom, monthTo, _, _ := monthRange(now)
	weekFrom, weekTo, _, _ := weekRange(now)

	allTimeIncome, allTimeExpense, err := repo.Stats.GetPeriodTotals(ctx, userID, time.Time{}, monthTo)
	if err != nil {
		return entity.FinancialContext{}, err
	}

	monthIncome, monthExpense, err := repo.Stats.GetPeriodTotals(ctx, userID, monthFrom, monthTo)
	if err != nil {
		return entity.FinancialContext{}, err
	}

	_, weekExpense, err := repo.Stats.GetPeriodTotals(ctx, userID, weekFrom, weekTo)
	if err != nil {
		return entity.FinancialContext{}, err
	}

	categories, err := repo.Stats.GetCategoryBreakdown(ctx, userID, monthFrom, monthTo)
	if err != nil {
		return entity.FinancialContext{}, err
	}

	fc := entity.FinancialContext{
		Balance:        allTimeIncome - allTimeExpense,
		MonthlyIncome:  monthIncome,
		MonthlyExpense: monthExpense,
		WeeklyExpense:  weekExpense,
		Categories:     categories,
	}

	settings, err := repo.Wallet.GetWalletSettings(ctx, userID)
	if err == nil {
		fc.MonthlyAllowance = settings.MonthlyAllowance
		fc.WeeklyAllowance = settings.WeeklyAllowance
		fc.FinancialGoal = settings.FinancialGoal
	} else {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Debug("No wallet settings, defaulting allowances to zero")
	}

	goals, err := repo.SavingGoal.GetSavingGoalsByUserID(ctx, userID)
	if err == nil {
		fc.SavingGoals = goals
	}

	return fc, nil
}

// GetPeriodData returns everything the period analysis engine consumes
// for the current week or month: the summary, the category breakdown,
// per-day expense totals, and the previous equal-length period's
// expense (-1 when that read fails).
func (s *budgetService) GetPeriodData(ctx context.Context, userID string, period string) (finance.PeriodSummary, []entity.CategorySummary, []entity.DailyExpense, float64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return finance.PeriodSummary{}, nil, nil, -1, err
	}

	now := s.now()

	var from, to time.Time
	var elapsed, remaining int
	switch period {
	case "minggu", "week":
		from, to, elapsed, remaining = weekRange(now)
	case "bulan", "month", "":
		from, to, elapsed, remaining = monthRange(now)
	default:
		return finance.PeriodSummary{}, nil, nil, -1, budget_manager.ErrInvalidPeriod
	}

	income, expense, err := repo.Stats.GetPeriodTotals(ctx, userID, from, to)
	if err != nil {
		return finance.PeriodSummary{}, nil, nil, -1, err
	}

	summary := finance.PeriodSummary{
		Income:        income,
		Expense:       expense,
		DaysElapsed:   elapsed,
		DaysRemaining: remaining,
	}

	categories, err := repo.Stats.GetCategoryBreakdown(ctx, userID, from, to)
	if err != nil {
		return finance.PeriodSummary{}, nil, nil, -1, err
	}

	daily, err := repo.Stats.GetDailyExpenses(ctx, userID, from, to)
	if err != nil {
		return finance.PeriodSummary{}, nil, nil, -1, err
	}

	previousExpense := -1.0
	prevFrom := from.Add(-to.Sub(from))
	if _, prevExpense, err := repo.Stats.GetPeriodTotals(ctx, userID, prevFrom, from); err == nil {
		previousExpense = prevExpense
	} else {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to read previous period totals, skipping trend")
	}

	return summary, categories, daily, previousExpense, nil
}

// monthRange spans the calendar month containing now. Elapsed counts
// today as a full day.
func monthRange(now time.Time) (time.Time, time.Time, int, int) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	totalDays := int(to.Sub(from).Hours() / 24)
	elapsed := now.Day()

	return from, to, elapsed, totalDays - elapsed
}

// weekRange spans the Monday-start calendar week containing now.
func weekRange(now time.Time) (time.Time, time.Time, int, int) {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(weekday - 1))
	to := from.AddDate(0, 0, 7)

	return from, to, weekday, 7 - weekday
}
