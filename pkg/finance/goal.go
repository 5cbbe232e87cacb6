package finance

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"SakuBot/internal/entity"
	"SakuBot/pkg/utils"
)

const (
	essentialFloorShare   = 0.4
	defaultEssentialShare = 0.65
	weeksPerMonth         = 4.33
)

// Categories that count as unavoidable monthly spending when
// estimating savings capacity.
var essentialCategoryKeywords = []string{
	"makan", "food",
	"transport",
	"akademik", "pendidikan", "edukasi",
	"kesehatan", "health",
}

// GoalEngine renders savings-goal simulations. It holds the random
// source used to pick motivational messages so tests can seed it.
type GoalEngine struct {
	rng *rand.Rand
}

func NewGoalEngine(rng *rand.Rand) *GoalEngine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GoalEngine{rng: rng}
}

// Simulate computes how long saving toward targetAmount takes on the
// given monthly allowance and renders the full plan as display text.
func (e *GoalEngine) Simulate(targetAmount, monthlyAllowance int64, categories []entity.CategorySummary) string {
	if targetAmount <= 0 || monthlyAllowance <= 0 {
		return clarifyGoalMessage
	}

	allowance := float64(monthlyAllowance)
	essential := estimateEssentialCost(allowance, categories)
	saving := allowance - essential
	if saving <= 0 {
		return infeasiblePlanMessage
	}

	months := int(math.Ceil(float64(targetAmount) / saving))

	var sb strings.Builder
	sb.WriteString("🎯 **Simulasi Nabung**\n\n")
	sb.WriteString(fmt.Sprintf("Target: **%s**\n", utils.FormatRupiah(targetAmount)))
	sb.WriteString(fmt.Sprintf("Uang jajan bulanan: %s\n", utils.FormatRupiah(monthlyAllowance)))
	sb.WriteString(fmt.Sprintf("Perkiraan kebutuhan pokok: %s\n", utils.FormatRupiahFloat(essential)))
	sb.WriteString(fmt.Sprintf("Bisa ditabung per bulan: **%s**\n\n", utils.FormatRupiahFloat(saving)))
	sb.WriteString(fmt.Sprintf("Dengan nabung rutin, target kamu tercapai dalam **%s** 🗓️\n", formatDuration(months)))

	if months > 1 && months <= 24 {
		sb.WriteString("\n📍 **Milestone:**\n")
		for _, pct := range []int{25, 50, 75, 100} {
			part := float64(targetAmount) * float64(pct) / 100
			reached := int(math.Ceil(part / saving))
			sb.WriteString(fmt.Sprintf("• %d%% (%s) → bulan ke-%d\n", pct, utils.FormatRupiahFloat(part), reached))
		}
	}

	if months > 12 {
		sb.WriteString("\n🚀 **Biar lebih cepat:**\n")
		for _, factor := range []float64{1.25, 1.5} {
			boosted := saving * factor
			accelerated := int(math.Ceil(float64(targetAmount) / boosted))
			sb.WriteString(fmt.Sprintf("• Nabung %s/bulan → %s\n", utils.FormatRupiahFloat(boosted), formatDuration(accelerated)))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(e.pick(messagesForDuration(months)))

	return sb.String()
}

// SimulateMultiple plans a list of targets against one allowance and
// adds a running-total timeline showing when each item becomes
// affordable.
func (e *GoalEngine) SimulateMultiple(targets []entity.Target, monthlyAllowance int64, categories []entity.CategorySummary) string {
	if len(targets) == 0 {
		return clarifyGoalMessage
	}
	if len(targets) == 1 {
		return e.Simulate(targets[0].Amount, monthlyAllowance, categories)
	}

	var total int64
	for _, t := range targets {
		total += t.Amount
	}
	if total <= 0 || monthlyAllowance <= 0 {
		return clarifyGoalMessage
	}

	allowance := float64(monthlyAllowance)
	essential := estimateEssentialCost(allowance, categories)
	saving := allowance - essential
	if saving <= 0 {
		return infeasiblePlanMessage
	}

	months := int(math.Ceil(float64(total) / saving))

	var sb strings.Builder
	sb.WriteString("🎯 **Simulasi Nabung Multi Target**\n\n")
	sb.WriteString(fmt.Sprintf("Total target: **%s** (%d barang)\n", utils.FormatRupiah(total), len(targets)))
	sb.WriteString(fmt.Sprintf("Bisa ditabung per bulan: **%s**\n\n", utils.FormatRupiahFloat(saving)))
	sb.WriteString(fmt.Sprintf("Semua target tercapai dalam **%s** 🗓️\n\n", formatDuration(months)))

	sb.WriteString("🛒 **Urutan kebeli:**\n")
	var running int64
	for _, t := range targets {
		running += t.Amount
		reached := int(math.Ceil(float64(running) / saving))
		sb.WriteString(fmt.Sprintf("• %s (%s) → bulan ke-%d\n", t.Name, utils.FormatRupiah(t.Amount), reached))
	}

	sb.WriteString("\n")
	sb.WriteString(e.pick(messagesForDuration(months)))

	return sb.String()
}

// SimulateWeekly converts a weekly allowance to a monthly one before
// delegating to Simulate.
func (e *GoalEngine) SimulateWeekly(targetAmount, weeklyAllowance int64, categories []entity.CategorySummary) string {
	if weeklyAllowance <= 0 {
		return clarifyGoalMessage
	}
	return e.Simulate(targetAmount, MonthlyFromWeekly(weeklyAllowance), categories)
}

// MonthlyFromWeekly converts a weekly allowance to its monthly equivalent.
func MonthlyFromWeekly(weekly int64) int64 {
	return int64(float64(weekly) * weeksPerMonth)
}

func (e *GoalEngine) pick(pool []string) string {
	return pool[e.rng.Intn(len(pool))]
}

// estimateEssentialCost sums the essential categories from real
// spending data, clamped to at least 40% of the allowance. Without
// usable data it assumes 65% of the allowance goes to essentials.
func estimateEssentialCost(allowance float64, categories []entity.CategorySummary) float64 {
	var essential float64
	for _, cat := range categories {
		name := strings.ToLower(cat.Name)
		for _, keyword := range essentialCategoryKeywords {
			if strings.Contains(name, keyword) {
				essential += cat.Total
				break
			}
		}
	}

	// Rounded to whole rupiah so downstream ceil arithmetic stays exact.
	if essential <= 0 {
		return math.Round(allowance * defaultEssentialShare)
	}
	return math.Round(math.Max(essential, allowance*essentialFloorShare))
}

func formatDuration(months int) string {
	if months < 12 {
		return fmt.Sprintf("%d bulan", months)
	}
	years := months / 12
	rest := months % 12
	if rest == 0 {
		return fmt.Sprintf("%d tahun", years)
	}
	return fmt.Sprintf("%d tahun %d bulan", years, rest)
}
