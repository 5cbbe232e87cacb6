package budgetService

import (
	"time"

	"SakuBot/internal/api/budget_manager"
	budgetRepository "SakuBot/internal/api/budget_manager/repository"
	"SakuBot/internal/entity"
	"SakuBot/pkg/finance"
	"SakuBot/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBudgetService interface {
	CreateTransaction(ctx context.Context, userID string, req budget_manager.CreateTransactionRequest) error
	GetTransactionByID(ctx context.Context, id string) (entity.BudgetTransaction, error)
	GetTransactionsByPeriod(ctx context.Context, userID string, period string) ([]entity.BudgetTransaction, error)
	UpdateTransaction(ctx context.Context, id string, userID string, req budget_manager.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, id string, userID string) error
	GetTransactionsByTypeAndCategory(ctx context.Context, userID string, transactionType string, category string) ([]entity.BudgetTransaction, error)
	SearchExpenses(ctx context.Context, userID string, keyword string) ([]entity.BudgetTransaction, error)

	CreateSavingGoal(ctx context.Context, userID string, req budget_manager.CreateSavingGoalRequest) error
	GetSavingGoals(ctx context.Context, userID string) ([]entity.SavingGoal, error)
	UpdateSavingGoalProgress(ctx context.Context, id string, userID string, req budget_manager.UpdateSavingGoalRequest) error
	DeleteSavingGoal(ctx context.Context, id string, userID string) error

	UpdateWalletSettings(ctx context.Context, userID string, req budget_manager.UpdateWalletSettingsRequest) error
	GetWalletSettings(ctx context.Context, userID string) (entity.WalletSettings, error)

	BuildFinancialContext(ctx context.Context, userID string) (entity.FinancialContext, error)
	GetPeriodData(ctx context.Context, userID string, period string) (finance.PeriodSummary, []entity.CategorySummary, []entity.DailyExpense, float64, error)
}

type budgetService struct {
	log              *logrus.Logger
	budgetRepository budgetRepository.Repository
	utils            utils.IUtils
	now              func() time.Time
}

func NewBudgetService(log *logrus.Logger, br budgetRepository.Repository, utils utils.IUtils) IBudgetService {
	return &budgetService{
		log:              log,
		budgetRepository: br,
		utils:            utils,
		now:              time.Now,
	}
}
