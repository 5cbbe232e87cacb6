package budgetRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"SakuBot/internal/api/budget_manager"
	"SakuBot/internal/entity"
	contextPkg "SakuBot/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *savingGoalRepository) CreateSavingGoal(ctx context.Context, goal entity.SavingGoal) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         goal.ID,
		"user_id":    goal.UserID,
		"name":       goal.Name,
		"target":     goal.Target,
		"current":    goal.Current,
		"deadline":   goal.Deadline,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateSavingGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateSavingGoal named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateSavingGoal execution err")
		return err
	}

	return nil
}

func (r *savingGoalRepository) GetSavingGoalsByUserID(ctx context.Context, userID string) ([]entity.SavingGoal, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var goals []entity.SavingGoal

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetSavingGoalsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSavingGoalsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &goals, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSavingGoalsByUserID execution err")
		return nil, err
	}

	return goals, nil
}

func (r *savingGoalRepository) GetSavingGoalByID(ctx context.Context, id string) (entity.SavingGoal, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var goal entity.SavingGoal

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetSavingGoalByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSavingGoalByID named query preparation err")
		return entity.SavingGoal{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&goal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.SavingGoal{}, budget_manager.ErrSavingGoalNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSavingGoalByID execution err")
		return entity.SavingGoal{}, err
	}

	return goal, nil
}

func (r *savingGoalRepository) UpdateSavingGoalProgress(ctx context.Context, id string, current float64) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"current":    current,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateSavingGoalProgress, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateSavingGoalProgress named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateSavingGoalProgress execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateSavingGoalProgress no rows affected")
		return budget_manager.ErrSavingGoalNotFound
	}

	return nil
}

func (r *savingGoalRepository) DeleteSavingGoal(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteSavingGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSavingGoal named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSavingGoal execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return budget_manager.ErrSavingGoalNotFound
	}

	return nil
}
