package finance

import (
	"strings"
	"testing"
)

func TestScoreHealthWithinRange(t *testing.T) {
	incomes := []float64{0, 100_000, 1_000_000, 5_000_000}
	expenses := []float64{0, 50_000, 1_000_000, 8_000_000}
	days := []struct{ elapsed, remaining int }{
		{0, 30}, {10, 20}, {30, 0},
	}

	for _, income := range incomes {
		for _, expense := range expenses {
			for _, d := range days {
				summary := PeriodSummary{
					Income:        income,
					Expense:       expense,
					DaysElapsed:   d.elapsed,
					DaysRemaining: d.remaining,
				}
				score := ScoreHealth(summary)
				if score.Score < 0 || score.Score > 100 {
					t.Errorf("income=%.0f expense=%.0f days=%+v: score %d out of [0,100]",
						income, expense, d, score.Score)
				}
				if score.Label == "" || score.Color == "" {
					t.Errorf("income=%.0f expense=%.0f: missing label or color", income, expense)
				}
			}
		}
	}
}

func TestScoreHealthBuckets(t *testing.T) {
	tests := []struct {
		name      string
		summary   PeriodSummary
		wantScore int
		wantLabel string
		wantColor string
	}{
		{
			name: "healthy mid period",
			// ratio 33% (40), speed 0.67 (35), remaining 67% (25)
			summary:   PeriodSummary{Income: 3_000_000, Expense: 1_000_000, DaysElapsed: 15, DaysRemaining: 15},
			wantScore: 100,
			wantLabel: "Sangat Sehat",
			wantColor: "green",
		},
		{
			name: "overshooting budget",
			// ratio 150% (0), speed 4.5 (0), remaining exhausted (0)
			summary:   PeriodSummary{Income: 1_000_000, Expense: 1_500_000, DaysElapsed: 10, DaysRemaining: 20},
			wantScore: 0,
			wantLabel: "Kritis",
			wantColor: "red",
		},
		{
			name: "late period squeeze",
			// ratio 80% (25), speed 1.2 (20), remaining 20% (12)
			summary:   PeriodSummary{Income: 2_000_000, Expense: 1_600_000, DaysElapsed: 20, DaysRemaining: 10},
			wantScore: 57,
			wantLabel: "Cukup",
			wantColor: "yellow",
		},
		{
			name: "no data at all",
			// no income no expense (20), no speed data (20), no income basis (10)
			summary:   PeriodSummary{},
			wantScore: 50,
			wantLabel: "Perlu Perhatian",
			wantColor: "orange",
		},
		{
			name: "spending without income",
			// expense without income (0), no speed data (20), no income basis (10)
			summary:   PeriodSummary{Expense: 500_000, DaysElapsed: 10, DaysRemaining: 20},
			wantScore: 30,
			wantLabel: "Mengkhawatirkan",
			wantColor: "orange",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreHealth(tt.summary)
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d (breakdown %+v)", got.Score, tt.wantScore, got.Breakdown)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Color != tt.wantColor {
				t.Errorf("color = %q, want %q", got.Color, tt.wantColor)
			}
		})
	}
}

func TestScoreHealthSimulationSuffix(t *testing.T) {
	summary := PeriodSummary{Income: 3_000_000, Expense: 1_000_000, DaysElapsed: 15, DaysRemaining: 15, Simulation: true}

	got := ScoreHealth(summary)
	if !strings.HasSuffix(got.Label, "(Simulasi)") {
		t.Errorf("simulation label = %q, want (Simulasi) suffix", got.Label)
	}
}

func TestScoreHealthBreakdownMaxima(t *testing.T) {
	got := ScoreHealth(PeriodSummary{Income: 3_000_000, Expense: 1_000_000, DaysElapsed: 15, DaysRemaining: 15})

	maxima := map[string]int{
		"expense_ratio":    40,
		"spending_speed":   35,
		"remaining_budget": 25,
	}
	for name, max := range maxima {
		dim, ok := got.Breakdown[name]
		if !ok {
			t.Fatalf("breakdown missing dimension %q", name)
		}
		if dim.Max != max {
			t.Errorf("dimension %q max = %d, want %d", name, dim.Max, max)
		}
		if dim.Score > dim.Max {
			t.Errorf("dimension %q score %d exceeds max %d", name, dim.Score, dim.Max)
		}
	}
}
