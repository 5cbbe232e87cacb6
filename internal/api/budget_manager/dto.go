package budget_manager

type CreateTransactionRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Nominal     float64 `json:"nominal" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Category    string  `json:"category" validate:"required"`
}

type UpdateTransactionRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Nominal     float64 `json:"nominal" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Category    string  `json:"category" validate:"required"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Nominal     float64 `json:"nominal"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  float64               `json:"total_income"`
	TotalExpense float64               `json:"total_expense"`
	Balance      float64               `json:"balance"`
}

type CreateSavingGoalRequest struct {
	Name     string  `json:"name" validate:"required"`
	Target   float64 `json:"target" validate:"required,gt=0"`
	Deadline string  `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateSavingGoalRequest struct {
	Current float64 `json:"current" validate:"gte=0"`
}

type SavingGoalResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Progress float64 `json:"progress"`
	Deadline string  `json:"deadline,omitempty"`
}

type UpdateWalletSettingsRequest struct {
	MonthlyAllowance float64 `json:"monthly_allowance" validate:"gte=0"`
	WeeklyAllowance  float64 `json:"weekly_allowance" validate:"gte=0"`
	FinancialGoal    string  `json:"financial_goal"`
}

type WalletSettingsResponse struct {
	MonthlyAllowance float64 `json:"monthly_allowance"`
	WeeklyAllowance  float64 `json:"weekly_allowance"`
	FinancialGoal    string  `json:"financial_goal"`
}

type CategoryStat struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type PeriodStatsResponse struct {
	Period       string         `json:"period"`
	TotalIncome  float64        `json:"total_income"`
	TotalExpense float64        `json:"total_expense"`
	Balance      float64        `json:"balance"`
	Categories   []CategoryStat `json:"categories"`
}
