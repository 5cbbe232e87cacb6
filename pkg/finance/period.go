package finance

import (
	"fmt"
	"math"

	"SakuBot/internal/entity"
	"SakuBot/pkg/utils"
)

const (
	categoryToleranceBand = 0.2
	earlyPeriodMultiplier = 1.5
	spikeMultiplier       = 2.0
	criticalHealthScore   = 30
)

// AnalyzePeriod evaluates one budgeting period end to end: budget
// position, spending speed, per-category pacing, daily pattern, trend
// against the previous period, plus the warnings and insights derived
// from them. Pass previousExpense < 0 when no prior period exists.
func AnalyzePeriod(summary PeriodSummary, categories []entity.CategorySummary, daily []entity.DailyExpense, previousExpense float64) *PeriodAnalysis {
	analysis := &PeriodAnalysis{
		Summary:       summary,
		ExpenseRatio:  expenseRatio(summary),
		TimeRatio:     timeRatio(summary),
		SpendingSpeed: spendingSpeed(summary),
		Health:        ScoreHealth(summary),
	}

	analysis.RemainingBudget = math.Max(0, summary.Income-summary.Expense)
	analysis.Status = periodStatus(summary, analysis.ExpenseRatio, analysis.SpendingSpeed)

	if summary.DaysRemaining > 0 {
		analysis.RecommendedDaily = analysis.RemainingBudget / float64(summary.DaysRemaining)
	} else {
		analysis.RecommendedDaily = analysis.RemainingBudget
	}

	analysis.Categories = recommendCategories(summary, categories, analysis.RecommendedDaily)

	if !summary.Simulation && len(daily) > 0 {
		analysis.Daily = analyzeDailyPattern(daily)
	}

	if previousExpense >= 0 {
		analysis.Trend = analyzeTrend(summary.Expense, previousExpense)
	}

	analysis.Warnings = buildWarnings(analysis)
	analysis.Insights = buildInsights(analysis)

	return analysis
}

func expenseRatio(summary PeriodSummary) float64 {
	if summary.Income <= 0 {
		if summary.Expense > 0 {
			return 100
		}
		return 0
	}
	return summary.Expense / summary.Income * 100
}

func timeRatio(summary PeriodSummary) float64 {
	total := summary.TotalDays()
	if total <= 0 {
		return 0
	}
	return float64(summary.DaysElapsed) / float64(total) * 100
}

// spendingSpeed is the ratio of expense ratio to time ratio: above 1
// the money is going faster than the period is elapsing.
func spendingSpeed(summary PeriodSummary) float64 {
	tr := timeRatio(summary)
	if tr <= 0 {
		return 0
	}
	return expenseRatio(summary) / tr
}

func periodStatus(summary PeriodSummary, ratio, speed float64) PeriodStatus {
	switch {
	case summary.Income <= 0:
		return StatusNoIncome
	case ratio >= 100:
		return StatusExceeded
	case speed > 1.3:
		return StatusOverBudget
	case speed > 1.0:
		return StatusWarning
	case speed >= 0.7:
		return StatusOnTrack
	default:
		return StatusUnderBudget
	}
}

func recommendCategories(summary PeriodSummary, categories []entity.CategorySummary, recommendedDaily float64) []CategoryRecommendation {
	if len(categories) == 0 || summary.Expense <= 0 {
		return nil
	}

	recommendations := make([]CategoryRecommendation, 0, len(categories))
	for _, cat := range categories {
		rec := CategoryRecommendation{
			Name:  cat.Name,
			Share: cat.Total / summary.Expense,
		}
		rec.RecommendedDaily = rec.Share * recommendedDaily
		if summary.DaysElapsed > 0 {
			rec.ActualDaily = cat.Total / float64(summary.DaysElapsed)
		}

		switch {
		case rec.ActualDaily > rec.RecommendedDaily*(1+categoryToleranceBand):
			rec.Status = CategoryOver
		case rec.ActualDaily < rec.RecommendedDaily*(1-categoryToleranceBand):
			rec.Status = CategoryUnder
		default:
			rec.Status = CategoryOK
		}

		recommendations = append(recommendations, rec)
	}

	return recommendations
}

func analyzeDailyPattern(daily []entity.DailyExpense) *DailyPattern {
	pattern := &DailyPattern{Min: math.MaxFloat64}

	var sum float64
	for _, d := range daily {
		sum += d.Total
		if d.Total > pattern.Max {
			pattern.Max = d.Total
		}
		if d.Total < pattern.Min {
			pattern.Min = d.Total
		}
	}
	pattern.Mean = sum / float64(len(daily))

	var variance float64
	for _, d := range daily {
		diff := d.Total - pattern.Mean
		variance += diff * diff
	}
	variance /= float64(len(daily))

	if pattern.Mean > 0 {
		pattern.CoefficientOfVariation = math.Sqrt(variance) / pattern.Mean
	}

	switch {
	case pattern.CoefficientOfVariation < 0.3:
		pattern.SpendingConsistency = ConsistencyStable
	case pattern.CoefficientOfVariation < 0.6:
		pattern.SpendingConsistency = ConsistencyModerate
	default:
		pattern.SpendingConsistency = ConsistencyFluctuating
	}

	third := len(daily) / 3
	if third > 0 && len(daily) > third {
		var earlySum, lateSum float64
		for _, d := range daily[:third] {
			earlySum += d.Total
		}
		for _, d := range daily[third:] {
			lateSum += d.Total
		}
		earlyAvg := earlySum / float64(third)
		lateAvg := lateSum / float64(len(daily)-third)
		if lateAvg > 0 && earlyAvg > lateAvg*earlyPeriodMultiplier {
			pattern.EarlyPeriodHeavy = true
		}
	}

	if pattern.Mean > 0 && pattern.Max > pattern.Mean*spikeMultiplier {
		pattern.HasUnusualSpike = true
	}

	return pattern
}

func analyzeTrend(current, previous float64) *Trend {
	trend := &Trend{}

	if previous <= 0 {
		if current > 0 {
			trend.ChangePercent = 100
			trend.Bucket = TrendSpike
		} else {
			trend.Bucket = TrendStable
		}
		return trend
	}

	trend.ChangePercent = (current - previous) / previous * 100
	switch {
	case trend.ChangePercent > 30:
		trend.Bucket = TrendSpike
	case trend.ChangePercent > 10:
		trend.Bucket = TrendIncreasing
	case trend.ChangePercent < -10:
		trend.Bucket = TrendDecreasing
	default:
		trend.Bucket = TrendStable
	}

	return trend
}

func buildWarnings(analysis *PeriodAnalysis) []Advice {
	var warnings []Advice

	if analysis.Health.Score < criticalHealthScore {
		warnings = append(warnings, Advice{
			Level:   AdviceCritical,
			Title:   "Kondisi keuangan kritis",
			Message: fmt.Sprintf("Skor kesehatan keuangan kamu cuma %d dari 100. Perlu pembenahan serius nih.", analysis.Health.Score),
			Action:  "Hentikan dulu pengeluaran non-esensial dan catat semua transaksi",
		})
	}

	if days, projected := projectedDaysUntilZero(analysis); projected && days < analysis.Summary.DaysRemaining {
		warnings = append(warnings, Advice{
			Level:   AdviceCritical,
			Title:   "Uang diprediksi habis sebelum periode berakhir",
			Message: fmt.Sprintf("Dengan kecepatan belanja sekarang, sisa budget habis dalam %d hari padahal periode masih %d hari lagi.", days, analysis.Summary.DaysRemaining),
			Action:  fmt.Sprintf("Batasi pengeluaran maksimal %s per hari", utils.FormatRupiahFloat(analysis.RecommendedDaily)),
		})
	}

	switch analysis.Status {
	case StatusExceeded:
		warnings = append(warnings, Advice{
			Level:   AdviceCritical,
			Title:   "Pengeluaran melebihi pemasukan",
			Message: "Total pengeluaran periode ini sudah melewati pemasukan kamu.",
			Action:  "Cek kategori paling boros dan pangkas mulai hari ini",
		})
	case StatusOverBudget:
		warnings = append(warnings, Advice{
			Level:   AdviceWarning,
			Title:   "Belanja terlalu cepat",
			Message: fmt.Sprintf("Kecepatan belanja kamu %.1fx dari waktu yang sudah berjalan.", analysis.SpendingSpeed),
			Action:  "Rem dulu pengeluaran yang bisa ditunda",
		})
	case StatusWarning:
		warnings = append(warnings, Advice{
			Level:   AdviceWarning,
			Title:   "Mulai lebih cepat dari rencana",
			Message: "Pengeluaran sedikit melampaui laju waktu. Masih bisa diselamatkan kalau direm sekarang.",
		})
	}

	if analysis.Daily != nil && analysis.Daily.HasUnusualSpike {
		warnings = append(warnings, Advice{
			Level:   AdviceWarning,
			Title:   "Ada hari dengan pengeluaran tidak wajar",
			Message: fmt.Sprintf("Pengeluaran tertinggi (%s) lebih dari 2x rata-rata harian kamu.", utils.FormatRupiahFloat(analysis.Daily.Max)),
		})
	}

	return warnings
}

func buildInsights(analysis *PeriodAnalysis) []Advice {
	var insights []Advice

	if analysis.Status == StatusUnderBudget {
		insights = append(insights, Advice{
			Level:   AdviceInfo,
			Title:   "Kamu lagi hemat",
			Message: "Pengeluaran jauh di bawah laju periode. Sisa budgetnya bisa masuk tabungan.",
		})
	}

	if analysis.Trend != nil {
		switch analysis.Trend.Bucket {
		case TrendSpike:
			insights = append(insights, Advice{
				Level:   AdviceInfo,
				Title:   "Lonjakan dibanding periode lalu",
				Message: fmt.Sprintf("Pengeluaran naik %.0f%% dibanding periode sebelumnya.", analysis.Trend.ChangePercent),
			})
		case TrendDecreasing:
			insights = append(insights, Advice{
				Level:   AdviceInfo,
				Title:   "Tren membaik",
				Message: fmt.Sprintf("Pengeluaran turun %.0f%% dibanding periode sebelumnya. Pertahankan!", -analysis.Trend.ChangePercent),
			})
		}
	}

	if analysis.Daily != nil {
		if analysis.Daily.EarlyPeriodHeavy {
			insights = append(insights, Advice{
				Level:   AdviceInfo,
				Title:   "Boros di awal periode",
				Message: "Sepertiga awal periode menyerap porsi pengeluaran paling besar. Coba ratakan ke minggu berikutnya.",
			})
		}
		if analysis.Daily.SpendingConsistency == ConsistencyStable {
			insights = append(insights, Advice{
				Level:   AdviceInfo,
				Title:   "Pola belanja stabil",
				Message: "Pengeluaran harian kamu konsisten. Ini modal bagus buat nabung rutin.",
			})
		}
	}

	return insights
}

// projectedDaysUntilZero extrapolates the current daily burn rate over
// the remaining budget.
func projectedDaysUntilZero(analysis *PeriodAnalysis) (int, bool) {
	if analysis.Summary.DaysElapsed <= 0 || analysis.RemainingBudget <= 0 {
		return 0, false
	}
	dailyRate := analysis.Summary.Expense / float64(analysis.Summary.DaysElapsed)
	if dailyRate <= 0 {
		return 0, false
	}
	return int(analysis.RemainingBudget / dailyRate), true
}
