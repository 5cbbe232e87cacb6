package budget_manager

import "SakuBot/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "transaction not found")
	ErrInvalidTransaction     = response.NewError(400, "invalid transaction data")
	ErrInvalidUserID          = response.NewError(400, "invalid user id")
	ErrInvalidCategory        = response.NewError(400, "invalid category")
	ErrInvalidTransactionType = response.NewError(400, "invalid transaction type")
	ErrInvalidAmount          = response.NewError(400, "invalid transaction amount")
	ErrInvalidPeriod          = response.NewError(400, "invalid period")
	ErrCreateTransaction      = response.NewError(500, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(500, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(500, "failed to delete transaction")
	ErrTransactionNotOwned    = response.NewError(403, "transaction does not belong to user")
	ErrSavingGoalNotFound     = response.NewError(404, "saving goal not found")
	ErrInvalidSavingGoal      = response.NewError(400, "invalid saving goal data")
	ErrWalletNotConfigured    = response.NewError(404, "wallet settings not configured")
)
