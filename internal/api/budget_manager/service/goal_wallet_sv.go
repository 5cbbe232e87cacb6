package budgetService

import (
	"time"

	"SakuBot/internal/api/budget_manager"
	"SakuBot/internal/entity"
	contextPkg "SakuBot/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *budgetService) CreateSavingGoal(ctx context.Context, userID string, req budget_manager.CreateSavingGoalRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	goal := entity.SavingGoal{
		ID:     ULID,
		UserID: userID,
		Name:   req.Name,
		Target: req.Target,
	}

	if req.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			return budget_manager.ErrInvalidSavingGoal
		}
		goal.Deadline = &deadline
	}

	if err := repo.SavingGoal.CreateSavingGoal(ctx, goal); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create saving goal")
		return err
	}

	return nil
}

func (s *budgetService) GetSavingGoals(ctx context.Context, userID string) ([]entity.SavingGoal, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	goals, err := repo.SavingGoal.GetSavingGoalsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get saving goals")
		return nil, err
	}

	return goals, nil
}

func (s *budgetService) UpdateSavingGoalProgress(ctx context.Context, id string, userID string, req budget_manager.UpdateSavingGoalRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	goal, err := repo.SavingGoal.GetSavingGoalByID(ctx, id)
	if err != nil {
		return err
	}

	if goal.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"user_id":    userID,
		}).Warn("Saving goal does not belong to user")
		return budget_manager.ErrSavingGoalNotFound
	}

	if err := repo.SavingGoal.UpdateSavingGoalProgress(ctx, id, req.Current); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update saving goal progress")
		return err
	}

	return nil
}

func (s *budgetService) DeleteSavingGoal(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	goal, err := repo.SavingGoal.GetSavingGoalByID(ctx, id)
	if err != nil {
		return err
	}

	if goal.UserID != userID {
		return budget_manager.ErrSavingGoalNotFound
	}

	if err := repo.SavingGoal.DeleteSavingGoal(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete saving goal")
		return err
	}

	return nil
}

func (s *budgetService) UpdateWalletSettings(ctx context.Context, userID string, req budget_manager.UpdateWalletSettingsRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	settings := entity.WalletSettings{
		UserID:           userID,
		MonthlyAllowance: req.MonthlyAllowance,
		WeeklyAllowance:  req.WeeklyAllowance,
		FinancialGoal:    req.FinancialGoal,
	}

	if err := repo.Wallet.UpsertWalletSettings(ctx, settings); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upsert wallet settings")
		return err
	}

	return nil
}

func (s *budgetService) GetWalletSettings(ctx context.Context, userID string) (entity.WalletSettings, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.WalletSettings{}, err
	}

	settings, err := repo.Wallet.GetWalletSettings(ctx, userID)
	if err != nil {
		return entity.WalletSettings{}, err
	}

	return settings, nil
}
