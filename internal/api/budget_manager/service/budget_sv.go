package budgetService

import (
	"time"

	"SakuBot/internal/api/budget_manager"
	"SakuBot/internal/entity"
	contextPkg "SakuBot/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *budgetService) CreateTransaction(ctx context.Context, userID string, req budget_manager.CreateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if !entity.IsValidCategory(req.Type, req.Category) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
			"category":   req.Category,
		}).Warn("Invalid transaction category for type")
		return budget_manager.ErrInvalidCategory
	}

	ULID, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	transaction := entity.BudgetTransaction{
		ID:          ULID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Nominal:     req.Nominal,
		Type:        req.Type,
		Category:    req.Category,
		CreatedAt:   s.now(),
		UpdatedAt:   s.now(),
	}

	if err := transaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return err
	}

	if err := repo.Budget.CreateTransaction(ctx, transaction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return budget_manager.ErrCreateTransaction
	}

	return nil
}

func (s *budgetService) GetTransactionByID(ctx context.Context, id string) (entity.BudgetTransaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.BudgetTransaction{}, err
	}

	transaction, err := repo.Budget.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get transaction by ID")
		return entity.BudgetTransaction{}, err
	}

	return transaction, nil
}

func (s *budgetService) GetTransactionsByPeriod(ctx context.Context, userID string, period string) ([]entity.BudgetTransaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if userID == "" {
		return nil, budget_manager.ErrInvalidUserID
	}

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Budget.GetTransactionsByPeriod(ctx, userID, period)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"period":     period,
			"error":      err.Error(),
		}).Error("Failed to get transactions by period")
		return nil, err
	}

	return transactions, nil
}

func (s *budgetService) UpdateTransaction(ctx context.Context, id string, userID string, req budget_manager.UpdateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Budget.GetTransactionByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"user_id":    userID,
		}).Warn("Transaction does not belong to user")
		return budget_manager.ErrTransactionNotOwned
	}

	transaction := entity.BudgetTransaction{
		ID:          id,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Nominal:     req.Nominal,
		Type:        req.Type,
		Category:    req.Category,
		UpdatedAt:   time.Now(),
	}

	if err := transaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return err
	}

	if err := repo.Budget.UpdateTransaction(ctx, transaction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return err
	}

	return nil
}

func (s *budgetService) DeleteTransaction(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Budget.GetTransactionByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"user_id":    userID,
		}).Warn("Transaction does not belong to user")
		return budget_manager.ErrTransactionNotOwned
	}

	if err := repo.Budget.DeleteTransaction(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return err
	}

	return nil
}

func (s *budgetService) GetTransactionsByTypeAndCategory(ctx context.Context, userID string, transactionType string, category string) ([]entity.BudgetTransaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if transactionType != string(entity.TransactionTypeIncome) && transactionType != string(entity.TransactionTypeExpense) {
		return nil, budget_manager.ErrInvalidTransactionType
	}

	if !entity.IsValidCategory(transactionType, category) {
		return nil, budget_manager.ErrInvalidCategory
	}

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Budget.GetTransactionsByTypeAndCategory(ctx, userID, transactionType, category)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get transactions by type and category")
		return nil, err
	}

	return transactions, nil
}

func (s *budgetService) SearchExpenses(ctx context.Context, userID string, keyword string) ([]entity.BudgetTransaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Budget.SearchExpenses(ctx, userID, keyword)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"keyword":    keyword,
			"error":      err.Error(),
		}).Error("Failed to search expenses")
		return nil, err
	}

	return transactions, nil
}
