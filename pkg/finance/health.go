package finance

import "fmt"

// ScoreHealth rates a period on three weighted dimensions: how much of
// the income is already spent (40), how fast it is being spent
// relative to elapsed time (35), and how much budget is left (25).
func ScoreHealth(summary PeriodSummary) HealthScore {
	breakdown := map[string]DimensionScore{
		"expense_ratio":    scoreExpenseRatio(summary),
		"spending_speed":   scoreSpendingSpeed(summary),
		"remaining_budget": scoreRemainingBudget(summary),
	}

	total := 0
	for _, dim := range breakdown {
		total += dim.Score
	}
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	label, color := healthLabel(total)
	if summary.Simulation {
		label += " (Simulasi)"
	}

	return HealthScore{
		Score:     total,
		Label:     label,
		Color:     color,
		Breakdown: breakdown,
	}
}

func scoreExpenseRatio(summary PeriodSummary) DimensionScore {
	dim := DimensionScore{Max: 40}

	if summary.Income <= 0 {
		if summary.Expense > 0 {
			dim.Score = 0
			dim.Detail = "ada pengeluaran tanpa pemasukan tercatat"
		} else {
			dim.Score = 20
			dim.Detail = "belum ada data pemasukan"
		}
		return dim
	}

	ratio := expenseRatio(summary)
	switch {
	case ratio <= 50:
		dim.Score = 40
	case ratio <= 70:
		dim.Score = 35
	case ratio <= 85:
		dim.Score = 25
	case ratio <= 100:
		dim.Score = 15
	default:
		dim.Score = 0
	}
	dim.Detail = fmt.Sprintf("%.0f%% pemasukan sudah terpakai", ratio)

	return dim
}

func scoreSpendingSpeed(summary PeriodSummary) DimensionScore {
	dim := DimensionScore{Max: 35}

	if summary.Income <= 0 || summary.DaysElapsed <= 0 {
		dim.Score = 20
		dim.Detail = "data belum cukup untuk ukur kecepatan"
		return dim
	}

	speed := spendingSpeed(summary)
	switch {
	case speed <= 0.7:
		dim.Score = 35
	case speed <= 1.0:
		dim.Score = 30
	case speed <= 1.3:
		dim.Score = 20
	case speed <= 1.5:
		dim.Score = 10
	default:
		dim.Score = 0
	}
	dim.Detail = fmt.Sprintf("kecepatan belanja %.2fx dari waktu berjalan", speed)

	return dim
}

func scoreRemainingBudget(summary PeriodSummary) DimensionScore {
	dim := DimensionScore{Max: 25}

	if summary.Income <= 0 {
		dim.Score = 10
		dim.Detail = "tidak ada dasar pemasukan"
		return dim
	}

	remaining := summary.Income - summary.Expense
	if remaining <= 0 {
		dim.Score = 0
		dim.Detail = "budget periode ini sudah habis"
		return dim
	}

	share := remaining / summary.Income
	switch {
	case share >= 0.5:
		dim.Score = 25
	case share >= 0.3:
		dim.Score = 20
	case share >= 0.15:
		dim.Score = 12
	default:
		dim.Score = 5
	}
	dim.Detail = fmt.Sprintf("sisa %.0f%% dari pemasukan", share*100)

	return dim
}

func healthLabel(score int) (string, string) {
	switch {
	case score >= 85:
		return "Sangat Sehat", "green"
	case score >= 70:
		return "Sehat", "green"
	case score >= 55:
		return "Cukup", "yellow"
	case score >= 40:
		return "Perlu Perhatian", "orange"
	case score >= 25:
		return "Mengkhawatirkan", "orange"
	default:
		return "Kritis", "red"
	}
}
