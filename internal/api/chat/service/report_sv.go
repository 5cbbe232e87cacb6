package chatService

import (
	"fmt"
	"strings"

	"SakuBot/internal/entity"
	contextPkg "SakuBot/pkg/context"
	"SakuBot/pkg/finance"
	"SakuBot/pkg/nlp"
	"SakuBot/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	clearHistoryAck = "Siap! Riwayat percakapan kamu sudah aku bersihkan. 🧹 Mau bahas apa sekarang?"

	askTarget = "Mau nabung buat apa nih? Sebutin barangnya sama harganya ya, misalnya **laptop 7jt** biar bisa aku hitungin. 😊"

	askIncomeAgain = "Aku masih nunggu nominal uang jajan atau pemasukan bulanan kamu nih 😊 Tulis aja misalnya **2jt per bulan**. Kalau mau ganti topik, langsung tanya aja ya."

	greetingSection = "Halo! 👋 Aku **SakuBot**, asisten keuangan kamu.\nMau cek saldo, lihat pengeluaran, atau simulasi nabung buat barang impian? Ketik **bantuan** buat lihat semua yang bisa aku bantu."

	helpSection = "🤖 **Ini yang bisa aku bantu:**\n" +
		"• **Cek saldo** → \"saldo aku berapa?\"\n" +
		"• **Laporan pengeluaran** → \"pengeluaran bulan ini\" atau \"pengeluaran makan\"\n" +
		"• **Laporan pemasukan** → \"pemasukan bulan ini\"\n" +
		"• **Rincian kategori** → \"rincian per kategori\"\n" +
		"• **Simulasi nabung** → \"mau beli laptop 7jt, uang jajan 2jt sebulan, berapa lama?\"\n" +
		"• **Rencana budget** → \"atur budget 2 minggu ke depan\"\n" +
		"• **Saran keuangan** → \"gimana kondisi keuanganku?\""
)

// Share-of-expense thresholds behind the spending pattern flags.
const (
	highFoodShare       = 0.4
	heavyTransportShare = 0.25
	nearGoalProgress    = 80.0
)

func askIncomeFor(targets []entity.Target) string {
	var sb strings.Builder
	sb.WriteString("Oke, target kamu aku catat! 📝\n")
	for _, target := range targets {
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", target.Name, utils.FormatRupiah(target.Amount)))
	}
	sb.WriteString("\nUang jajan atau pemasukan bulanan kamu berapa? (contoh: **2jt per bulan**)")
	return sb.String()
}

func saldoSection(financialContext entity.FinancialContext) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💰 **Saldo kamu: %s**\n", utils.FormatRupiahFloat(financialContext.Balance)))
	sb.WriteString(fmt.Sprintf("• Pemasukan bulan ini: %s\n", utils.FormatRupiahFloat(financialContext.MonthlyIncome)))
	sb.WriteString(fmt.Sprintf("• Pengeluaran bulan ini: %s", utils.FormatRupiahFloat(financialContext.MonthlyExpense)))
	return sb.String()
}

func pemasukanSection(financialContext entity.FinancialContext) string {
	if financialContext.MonthlyIncome <= 0 {
		return "📈 Belum ada pemasukan tercatat bulan ini. Jangan lupa catat uang jajan atau gaji kamu ya!"
	}

	section := fmt.Sprintf("📈 **Pemasukan bulan ini: %s**", utils.FormatRupiahFloat(financialContext.MonthlyIncome))
	if financialContext.MonthlyAllowance > 0 {
		section += fmt.Sprintf("\n• Budget bulanan kamu: %s", utils.FormatRupiahFloat(financialContext.MonthlyAllowance))
	}
	return section
}

func kategoriSection(financialContext entity.FinancialContext) string {
	if len(financialContext.Categories) == 0 {
		return "📊 Belum ada pengeluaran tercatat bulan ini, jadi belum ada rincian kategori."
	}

	var sb strings.Builder
	sb.WriteString("📊 **Pengeluaran per kategori bulan ini:**\n")
	for _, category := range financialContext.Categories {
		sb.WriteString(fmt.Sprintf("• %s: %s (%d transaksi)\n", category.Name, utils.FormatRupiahFloat(category.Total), category.Count))
	}
	sb.WriteString(fmt.Sprintf("\nTotal: **%s**", utils.FormatRupiahFloat(financialContext.MonthlyExpense)))
	return sb.String()
}

func (s *chatService) pengeluaranSection(c context.Context, userID string, intent nlp.Intent, financialContext entity.FinancialContext) string {
	if intent.Category != "" {
		return categoryExpenseSection(intent.Category, financialContext)
	}
	if intent.SearchKeyword != "" {
		return s.searchExpenseSection(c, userID, intent.SearchKeyword)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💸 **Pengeluaran bulan ini: %s**\n", utils.FormatRupiahFloat(financialContext.MonthlyExpense)))
	sb.WriteString(fmt.Sprintf("• Minggu ini: %s\n", utils.FormatRupiahFloat(financialContext.WeeklyExpense)))
	for i, category := range financialContext.Categories {
		if i == 3 {
			break
		}
		sb.WriteString(fmt.Sprintf("• %s: %s\n", category.Name, utils.FormatRupiahFloat(category.Total)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func categoryExpenseSection(category string, financialContext entity.FinancialContext) string {
	for _, summary := range financialContext.Categories {
		if strings.EqualFold(summary.Name, category) {
			return fmt.Sprintf("💸 **Pengeluaran %s bulan ini: %s** (%d transaksi)",
				summary.Name, utils.FormatRupiahFloat(summary.Total), summary.Count)
		}
	}
	return fmt.Sprintf("💸 Belum ada pengeluaran kategori **%s** bulan ini. Mantap, hemat terus! 👍", category)
}

func (s *chatService) searchExpenseSection(c context.Context, userID string, keyword string) string {
	ledgerCtx, cancel := context.WithTimeout(c, ledgerTimeout)
	defer cancel()

	transactions, err := s.ledger.SearchExpenses(ledgerCtx, userID, keyword)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Expense search failed")
		return fmt.Sprintf("Hmm, aku lagi nggak bisa cari pengeluaran **%s** sekarang. Coba lagi sebentar ya 🙏", keyword)
	}
	if len(transactions) == 0 {
		return fmt.Sprintf("🔍 Aku nggak nemu pengeluaran yang cocok sama **%s**.", keyword)
	}

	var total float64
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔍 **Pengeluaran \"%s\":**\n", keyword))
	for i, transaction := range transactions {
		total += transaction.Nominal
		if i < 5 {
			sb.WriteString(fmt.Sprintf("• %s: %s\n", transaction.Title, utils.FormatRupiahFloat(transaction.Nominal)))
		}
	}
	sb.WriteString(fmt.Sprintf("\nTotal: **%s** dari %d transaksi", utils.FormatRupiahFloat(total), len(transactions)))
	return sb.String()
}

// recommendationSection analyzes the running month and renders status,
// budget advice, the health score, and pattern-based tips.
func (s *chatService) recommendationSection(c context.Context, userID string, financialContext entity.FinancialContext) string {
	ledgerCtx, cancel := context.WithTimeout(c, ledgerTimeout)
	defer cancel()

	summary, categories, daily, previousExpense, err := s.ledger.GetPeriodData(ledgerCtx, userID, "bulan")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Period data read failed, giving generic advice")
		return "💡 Aku belum bisa baca data keuangan kamu sekarang. Mulai catat pemasukan dan pengeluaran dulu yuk, nanti aku kasih saran yang lebih pas!"
	}

	analysis := finance.AnalyzePeriod(summary, categories, daily, previousExpense)

	var sb strings.Builder
	sb.WriteString(statusHeadline(analysis.Status))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("• Sisa budget: %s\n", utils.FormatRupiahFloat(analysis.RemainingBudget)))
	if analysis.Summary.DaysRemaining > 0 {
		sb.WriteString(fmt.Sprintf("• Rekomendasi harian: %s untuk %d hari ke depan\n",
			utils.FormatRupiahFloat(analysis.RecommendedDaily), analysis.Summary.DaysRemaining))
	}
	sb.WriteString(fmt.Sprintf("• Skor kesehatan: **%d/100** (%s)\n", analysis.Health.Score, analysis.Health.Label))

	for i, warning := range analysis.Warnings {
		if i == 2 {
			break
		}
		sb.WriteString(fmt.Sprintf("⚠️ **%s** %s\n", warning.Title, warning.Message))
	}
	for i, insight := range analysis.Insights {
		if i == 2 {
			break
		}
		sb.WriteString(fmt.Sprintf("💡 %s\n", insight.Message))
	}
	for _, tip := range patternTips(financialContext) {
		sb.WriteString(tip)
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func statusHeadline(status finance.PeriodStatus) string {
	switch status {
	case finance.StatusNoIncome:
		return "💡 **Belum ada pemasukan tercatat bulan ini.** Catat dulu uang masuk kamu biar aku bisa bantu atur budget."
	case finance.StatusExceeded:
		return "🚨 **Pengeluaran kamu sudah melebihi pemasukan bulan ini!**"
	case finance.StatusOverBudget:
		return "⚠️ **Pengeluaran kamu terlalu cepat dibanding sisa waktu bulan ini.**"
	case finance.StatusWarning:
		return "⚠️ **Pengeluaran kamu sedikit lebih cepat dari seharusnya.**"
	case finance.StatusOnTrack:
		return "✅ **Keuangan kamu on track bulan ini, pertahankan!**"
	default:
		return "👍 **Pengeluaran kamu masih hemat bulan ini, keren!**"
	}
}

// patternTips derives named spending-pattern flags from the financial
// context. Flags are recomputed per call, never persisted.
func patternTips(financialContext entity.FinancialContext) []string {
	var tips []string
	expense := financialContext.MonthlyExpense
	if expense > 0 {
		for _, category := range financialContext.Categories {
			share := category.Total / expense
			switch {
			case strings.EqualFold(category.Name, string(entity.ExpenseCategoryFood)) && share > highFoodShare:
				tips = append(tips, fmt.Sprintf("🍜 Pengeluaran makan kamu %.0f%% dari total. Coba masak sendiri atau cari promo biar lebih hemat.", share*100))
			case strings.EqualFold(category.Name, string(entity.ExpenseCategoryTransport)) && share > heavyTransportShare:
				tips = append(tips, fmt.Sprintf("🚌 Transport makan %.0f%% dari pengeluaran kamu. Transportasi umum atau nebeng bareng teman bisa bantu.", share*100))
			}
		}
	}
	for _, goal := range financialContext.SavingGoals {
		if goal.Progress() >= nearGoalProgress && goal.Progress() < 100 {
			tips = append(tips, fmt.Sprintf("🎯 Tabungan **%s** sudah %.0f%%! Dikit lagi sampai, semangat!", goal.Name, goal.Progress()))
		}
	}
	return tips
}

// futureBudgetSection plans a forward-looking period. The simulated period
// starts empty, so the analysis grades the plan rather than actual spending.
func futureBudgetSection(intent nlp.Intent, financialContext entity.FinancialContext) string {
	days := intent.PeriodCount
	switch intent.Period {
	case "minggu":
		days *= 7
	case "bulan":
		days *= 30
	}
	if days <= 0 {
		days = 7
	}

	budget := planningBudget(intent, financialContext, days)
	if budget <= 0 {
		return "Aku belum tahu budget kamu nih. Atur dulu uang jajan bulanan di pengaturan dompet, atau catat pemasukan kamu, nanti aku bantu rencanain! 📝"
	}

	summary := finance.PeriodSummary{
		Income:        budget,
		DaysRemaining: days,
		Simulation:    true,
	}
	analysis := finance.AnalyzePeriod(summary, nil, nil, -1)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🗓️ **Rencana budget %d hari ke depan**\n", days))
	sb.WriteString(fmt.Sprintf("• Total budget: %s\n", utils.FormatRupiahFloat(budget)))
	sb.WriteString(fmt.Sprintf("• Rekomendasi harian: %s\n", utils.FormatRupiahFloat(analysis.RecommendedDaily)))
	if line, ok := categoryPlanLine(intent.Category, financialContext, analysis.RecommendedDaily); ok {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("💚 Skor kesehatan rencana: **%d/100** (%s)", analysis.Health.Score, analysis.Health.Label))
	return sb.String()
}

func planningBudget(intent nlp.Intent, financialContext entity.FinancialContext, days int) float64 {
	switch {
	case intent.UseBalance:
		return financialContext.Balance
	case intent.Period == "minggu" && financialContext.WeeklyAllowance > 0:
		return financialContext.WeeklyAllowance * float64(intent.PeriodCount)
	case financialContext.MonthlyAllowance > 0:
		return financialContext.MonthlyAllowance / 30 * float64(days)
	default:
		return financialContext.Balance
	}
}

func categoryPlanLine(category string, financialContext entity.FinancialContext, recommendedDaily float64) (string, bool) {
	if category == "" {
		return "", false
	}
	if financialContext.MonthlyExpense > 0 {
		for _, summary := range financialContext.Categories {
			if strings.EqualFold(summary.Name, category) {
				share := summary.Total / financialContext.MonthlyExpense
				return fmt.Sprintf("• Khusus %s: sekitar %s per hari (berdasarkan kebiasaan kamu)",
					summary.Name, utils.FormatRupiahFloat(share*recommendedDaily)), true
			}
		}
	}
	return fmt.Sprintf("• Khusus %s: belum ada riwayat, pakai rekomendasi harian di atas dulu ya", category), true
}
