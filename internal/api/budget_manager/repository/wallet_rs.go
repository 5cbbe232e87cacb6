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

func (r *walletRepository) UpsertWalletSettings(ctx context.Context, settings entity.WalletSettings) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id":           settings.UserID,
		"monthly_allowance": settings.MonthlyAllowance,
		"weekly_allowance":  settings.WeeklyAllowance,
		"financial_goal":    settings.FinancialGoal,
		"updated_at":        time.Now(),
	}

	query, args, err := sqlx.Named(queryUpsertWalletSettings, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertWalletSettings named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertWalletSettings execution err")
		return err
	}

	return nil
}

func (r *walletRepository) GetWalletSettings(ctx context.Context, userID string) (entity.WalletSettings, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var settings entity.WalletSettings

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetWalletSettings, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetWalletSettings named query preparation err")
		return entity.WalletSettings{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&settings); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.WalletSettings{}, budget_manager.ErrWalletNotConfigured
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetWalletSettings execution err")
		return entity.WalletSettings{}, err
	}

	return settings, nil
}
