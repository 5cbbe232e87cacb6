package budgetRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"SakuBot/internal/entity"
	contextPkg "SakuBot/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type periodTotalsDB struct {
	Income  sql.NullFloat64 `db:"income"`
	Expense sql.NullFloat64 `db:"expense"`
}

func (r *statsRepository) GetPeriodTotals(ctx context.Context, userID string, from, to time.Time) (float64, float64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var totals periodTotalsDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"from":    from,
		"to":      to,
	}

	query, args, err := sqlx.Named(queryGetPeriodTotals, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPeriodTotals named query preparation err")
		return 0, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&totals); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPeriodTotals execution err")
		return 0, 0, err
	}

	return totals.Income.Float64, totals.Expense.Float64, nil
}

func (r *statsRepository) GetCategoryBreakdown(ctx context.Context, userID string, from, to time.Time) ([]entity.CategorySummary, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var categories []entity.CategorySummary

	argsKV := map[string]interface{}{
		"user_id": userID,
		"from":    from,
		"to":      to,
	}

	query, args, err := sqlx.Named(queryGetCategoryBreakdown, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryBreakdown named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &categories, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryBreakdown execution err")
		return nil, err
	}

	return categories, nil
}

func (r *statsRepository) GetDailyExpenses(ctx context.Context, userID string, from, to time.Time) ([]entity.DailyExpense, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var daily []entity.DailyExpense

	argsKV := map[string]interface{}{
		"user_id": userID,
		"from":    from,
		"to":      to,
	}

	query, args, err := sqlx.Named(queryGetDailyExpenses, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDailyExpenses named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &daily, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetDailyExpenses execution err")
		return nil, err
	}

	return daily, nil
}
