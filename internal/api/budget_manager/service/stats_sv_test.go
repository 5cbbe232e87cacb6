package budgetService

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	budgetRepository "SakuBot/internal/api/budget_manager/repository"
	"SakuBot/internal/entity"
	"SakuBot/pkg/utils"
	"github.com/sirupsen/logrus"
)

type statsCall struct {
	from time.Time
	to   time.Time
}

type stubStats struct {
	calls     []statsCall
	totals    map[string][2]float64
	totalsErr error

	categories []entity.CategorySummary
	daily      []entity.DailyExpense
}

func rangeKey(from, to time.Time) string {
	return from.Format("2006-01-02") + "/" + to.Format("2006-01-02")
}

func (s *stubStats) GetPeriodTotals(_ context.Context, _ string, from, to time.Time) (float64, float64, error) {
	s.calls = append(s.calls, statsCall{from: from, to: to})
	if s.totalsErr != nil {
		return 0, 0, s.totalsErr
	}
	totals := s.totals[rangeKey(from, to)]
	return totals[0], totals[1], nil
}

func (s *stubStats) GetCategoryBreakdown(_ context.Context, _ string, _, _ time.Time) ([]entity.CategorySummary, error) {
	return s.categories, nil
}

func (s *stubStats) GetDailyExpenses(_ context.Context, _ string, _, _ time.Time) ([]entity.DailyExpense, error) {
	return s.daily, nil
}

type stubWallet struct {
	settings entity.WalletSettings
	err      error
}

func (s *stubWallet) UpsertWalletSettings(_ context.Context, _ entity.WalletSettings) error {
	return nil
}

func (s *stubWallet) GetWalletSettings(_ context.Context, _ string) (entity.WalletSettings, error) {
	return s.settings, s.err
}

type stubSavingGoals struct {
	goals []entity.SavingGoal
	err   error
}

func (s *stubSavingGoals) CreateSavingGoal(_ context.Context, _ entity.SavingGoal) error { return nil }
func (s *stubSavingGoals) GetSavingGoalsByUserID(_ context.Context, _ string) ([]entity.SavingGoal, error) {
	return s.goals, s.err
}
func (s *stubSavingGoals) GetSavingGoalByID(_ context.Context, _ string) (entity.SavingGoal, error) {
	return entity.SavingGoal{}, nil
}
func (s *stubSavingGoals) UpdateSavingGoalProgress(_ context.Context, _ string, _ float64) error {
	return nil
}
func (s *stubSavingGoals) DeleteSavingGoal(_ context.Context, _ string) error { return nil }

type stubRepository struct {
	client budgetRepository.Client
}

func (r *stubRepository) NewClient(_ bool) (budgetRepository.Client, error) {
	return r.client, nil
}

func newStatsTestService(stats *stubStats, wallet *stubWallet, goals *stubSavingGoals, now time.Time) *budgetService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client := budgetRepository.Client{
		Stats:      stats,
		Wallet:     wallet,
		SavingGoal: goals,
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}

	return &budgetService{
		log:              logger,
		budgetRepository: &stubRepository{client: client},
		utils:            utils.New(),
		now:              func() time.Time { return now },
	}
}

func TestMonthRange(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)
	from, to, elapsed, remaining := monthRange(now)

	if !from.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected month start %v", from)
	}
	if !to.Equal(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected month end %v", to)
	}
	if elapsed != 10 || remaining != 21 {
		t.Errorf("elapsed/remaining = %d/%d, want 10/21", elapsed, remaining)
	}
}

func TestWeekRangeStartsMonday(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantFrom  time.Time
		elapsed   int
		remaining int
	}{
		{
			name:      "wednesday",
			now:       time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC),
			wantFrom:  time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			elapsed:   3,
			remaining: 4,
		},
		{
			name:      "monday",
			now:       time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
			wantFrom:  time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			elapsed:   1,
			remaining: 6,
		},
		{
			name:      "sunday",
			now:       time.Date(2025, time.March, 16, 9, 0, 0, 0, time.UTC),
			wantFrom:  time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			elapsed:   7,
			remaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, elapsed, remaining := weekRange(tt.now)
			if !from.Equal(tt.wantFrom) {
				t.Errorf("week start = %v, want %v", from, tt.wantFrom)
			}
			if !to.Equal(tt.wantFrom.AddDate(0, 0, 7)) {
				t.Errorf("week end = %v", to)
			}
			if elapsed != tt.elapsed || remaining != tt.remaining {
				t.Errorf("elapsed/remaining = %d/%d, want %d/%d", elapsed, remaining, tt.elapsed, tt.remaining)
			}
		})
	}
}

func TestBuildFinancialContext(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	monthFrom := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	monthTo := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	weekFrom := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	weekTo := weekFrom.AddDate(0, 0, 7)

	stats := &stubStats{
		totals: map[string][2]float64{
			rangeKey(time.Time{}, monthTo): {5000000, 3200000},
			rangeKey(monthFrom, monthTo):   {2000000, 800000},
			rangeKey(weekFrom, weekTo):     {0, 150000},
		},
		categories: []entity.CategorySummary{{Name: "Makan", Total: 500000, Count: 10}},
	}
	wallet := &stubWallet{settings: entity.WalletSettings{
		MonthlyAllowance: 2000000,
		WeeklyAllowance:  500000,
		FinancialGoal:    "beli laptop",
	}}
	goals := &stubSavingGoals{goals: []entity.SavingGoal{{Name: "laptop", Target: 7000000, Current: 1000000}}}

	service := newStatsTestService(stats, wallet, goals, now)

	fc, err := service.BuildFinancialContext(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("BuildFinancialContext returned error: %v", err)
	}

	if fc.Balance != 1800000 {
		t.Errorf("Balance = %v, want 1800000", fc.Balance)
	}
	if fc.MonthlyIncome != 2000000 || fc.MonthlyExpense != 800000 {
		t.Errorf("month totals = %v/%v", fc.MonthlyIncome, fc.MonthlyExpense)
	}
	if fc.WeeklyExpense != 150000 {
		t.Errorf("WeeklyExpense = %v, want 150000", fc.WeeklyExpense)
	}
	if fc.MonthlyAllowance != 2000000 || fc.FinancialGoal != "beli laptop" {
		t.Errorf("wallet settings not applied: %+v", fc)
	}
	if len(fc.Categories) != 1 || fc.Categories[0].Name != "Makan" {
		t.Errorf("unexpected categories %v", fc.Categories)
	}
	if len(fc.SavingGoals) != 1 || fc.SavingGoals[0].Name != "laptop" {
		t.Errorf("unexpected saving goals %v", fc.SavingGoals)
	}
}

func TestBuildFinancialContextWithoutWallet(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	stats := &stubStats{totals: map[string][2]float64{}}
	wallet := &stubWallet{err: errors.New("wallet not configured")}
	goals := &stubSavingGoals{err: errors.New("no goals")}

	service := newStatsTestService(stats, wallet, goals, now)

	fc, err := service.BuildFinancialContext(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("BuildFinancialContext returned error: %v", err)
	}
	if fc.MonthlyAllowance != 0 || fc.WeeklyAllowance != 0 {
		t.Errorf("missing wallet should zero the allowances, got %+v", fc)
	}
	if fc.SavingGoals != nil {
		t.Errorf("missing goals should stay nil, got %v", fc.SavingGoals)
	}
}

func TestGetPeriodDataMonth(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	monthFrom := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	monthTo := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	prevFrom := monthFrom.Add(-monthTo.Sub(monthFrom))

	stats := &stubStats{
		totals: map[string][2]float64{
			rangeKey(monthFrom, monthTo):  {2000000, 600000},
			rangeKey(prevFrom, monthFrom): {0, 900000},
		},
		daily: []entity.DailyExpense{{Day: monthFrom, Total: 60000}},
	}

	service := newStatsTestService(stats, &stubWallet{}, &stubSavingGoals{}, now)

	summary, _, daily, previousExpense, err := service.GetPeriodData(context.Background(), "user-1", "bulan")
	if err != nil {
		t.Fatalf("GetPeriodData returned error: %v", err)
	}
	if summary.Income != 2000000 || summary.Expense != 600000 {
		t.Errorf("summary totals = %v/%v", summary.Income, summary.Expense)
	}
	if summary.DaysElapsed != 10 || summary.DaysRemaining != 21 {
		t.Errorf("summary days = %d/%d, want 10/21", summary.DaysElapsed, summary.DaysRemaining)
	}
	if previousExpense != 900000 {
		t.Errorf("previousExpense = %v, want 900000", previousExpense)
	}
	if len(daily) != 1 {
		t.Errorf("unexpected daily totals %v", daily)
	}
}

func TestGetPeriodDataRejectsUnknownPeriod(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	service := newStatsTestService(&stubStats{}, &stubWallet{}, &stubSavingGoals{}, now)

	if _, _, _, _, err := service.GetPeriodData(context.Background(), "user-1", "tahun"); err == nil {
		t.Fatal("expected an error for an unsupported period")
	}
}
