package entity

import (
	"SakuBot/internal/api/budget_manager"
	"time"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type IncomeCategory string

const (
	IncomeCategorySalary      IncomeCategory = "Gaji"
	IncomeCategoryAllowance   IncomeCategory = "Uang Saku"
	IncomeCategoryScholarship IncomeCategory = "Beasiswa"
	IncomeCategoryOther       IncomeCategory = "Lainnya"
)

type ExpenseCategory string

const (
	ExpenseCategoryFood      ExpenseCategory = "Makan"
	ExpenseCategoryTransport ExpenseCategory = "Transport"
	ExpenseCategoryHangout   ExpenseCategory = "Nongkrong"
	ExpenseCategoryAcademic  ExpenseCategory = "Akademik"
	ExpenseCategoryOther     ExpenseCategory = "Lainnya"
)

func IsValidIncomeCategory(category string) bool {
	switch IncomeCategory(category) {
	case IncomeCategorySalary, IncomeCategoryAllowance, IncomeCategoryScholarship, IncomeCategoryOther:
		return true
	default:
		return false
	}
}

func IsValidExpenseCategory(category string) bool {
	switch ExpenseCategory(category) {
	case ExpenseCategoryFood, ExpenseCategoryTransport, ExpenseCategoryHangout,
		ExpenseCategoryAcademic, ExpenseCategoryOther:
		return true
	default:
		return false
	}
}

func IsValidCategory(transactionType, category string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome:
		return IsValidIncomeCategory(category)
	case TransactionTypeExpense:
		return IsValidExpenseCategory(category)
	default:
		return false
	}
}

type BudgetTransaction struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Nominal     float64   `json:"nominal" db:"nominal"`
	Type        string    `json:"type" db:"type"`
	Category    string    `json:"category" db:"category"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (t *BudgetTransaction) Validate() error {
	if t.Type != string(TransactionTypeIncome) && t.Type != string(TransactionTypeExpense) {
		return budget_manager.ErrInvalidTransactionType
	}

	if !IsValidCategory(t.Type, t.Category) {
		return budget_manager.ErrInvalidCategory
	}

	if t.Nominal <= 0 {
		return budget_manager.ErrInvalidAmount
	}

	return nil
}

// WalletSettings is the per-user budget configuration consulted when a
// message carries no allowance figure of its own.
type WalletSettings struct {
	UserID           string    `json:"user_id" db:"user_id"`
	MonthlyAllowance float64   `json:"monthly_allowance" db:"monthly_allowance"`
	WeeklyAllowance  float64   `json:"weekly_allowance" db:"weekly_allowance"`
	FinancialGoal    string    `json:"financial_goal" db:"financial_goal"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// DailyExpense is one calendar day's expense total inside a period.
type DailyExpense struct {
	Day   time.Time `json:"day" db:"day"`
	Total float64   `json:"total" db:"total"`
}
