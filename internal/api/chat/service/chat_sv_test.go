package chatService

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"SakuBot/internal/api/chat"
	"SakuBot/internal/entity"
	"SakuBot/pkg/finance"
	"SakuBot/pkg/nlp"
	"SakuBot/pkg/utils"
	"github.com/sirupsen/logrus"
)

type stubLedger struct {
	financialContext entity.FinancialContext
	contextErr       error

	summary         finance.PeriodSummary
	categories      []entity.CategorySummary
	daily           []entity.DailyExpense
	previousExpense float64
	periodErr       error

	expenses  []entity.BudgetTransaction
	searchErr error
}

func (l *stubLedger) BuildFinancialContext(_ context.Context, _ string) (entity.FinancialContext, error) {
	return l.financialContext, l.contextErr
}

func (l *stubLedger) GetPeriodData(_ context.Context, _ string, _ string) (finance.PeriodSummary, []entity.CategorySummary, []entity.DailyExpense, float64, error) {
	return l.summary, l.categories, l.daily, l.previousExpense, l.periodErr
}

func (l *stubLedger) SearchExpenses(_ context.Context, _ string, _ string) ([]entity.BudgetTransaction, error) {
	return l.expenses, l.searchErr
}

type memoryStateStore struct {
	states map[string]entity.DialogueState
	err    error
}

func newMemoryStateStore() *memoryStateStore {
	return &memoryStateStore{states: map[string]entity.DialogueState{}}
}

func (m *memoryStateStore) GetState(_ context.Context, userID string) (entity.DialogueState, error) {
	if m.err != nil {
		return entity.DialogueState{UserID: userID}, m.err
	}
	if state, ok := m.states[userID]; ok {
		return state, nil
	}
	return entity.DialogueState{UserID: userID}, nil
}

func (m *memoryStateStore) SaveState(_ context.Context, state entity.DialogueState) error {
	if m.err != nil {
		return m.err
	}
	m.states[state.UserID] = state
	return nil
}

func (m *memoryStateStore) ClearState(_ context.Context, userID string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.states, userID)
	return nil
}

type memoryMessageStore struct {
	rows []entity.ChatMessage
	err  error
}

func (m *memoryMessageStore) CreateMessage(_ context.Context, message entity.ChatMessage) error {
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, message)
	return nil
}

func (m *memoryMessageStore) GetMessagesByUserID(_ context.Context, userID string, limit int) ([]entity.ChatMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []entity.ChatMessage
	for _, row := range m.rows {
		if row.UserID == userID && len(out) < limit {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memoryMessageStore) DeleteMessagesByUserID(_ context.Context, userID string) error {
	if m.err != nil {
		return m.err
	}
	var kept []entity.ChatMessage
	for _, row := range m.rows {
		if row.UserID != userID {
			kept = append(kept, row)
		}
	}
	m.rows = kept
	return nil
}

func newTestService(ledger *stubLedger) (*chatService, *memoryStateStore, *memoryMessageStore) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	states := newMemoryStateStore()
	messages := &memoryMessageStore{}

	service := &chatService{
		log:        logger,
		classifier: nlp.NewClassifier(),
		goals:      finance.NewGoalEngine(rand.New(rand.NewSource(1))),
		ledger:     ledger,
		states:     states,
		messages:   messages,
		utils:      utils.New(),
	}

	return service, states, messages
}

func sendMessage(t *testing.T, service *chatService, userID string, message string) chat.ChatResponse {
	t.Helper()
	response, err := service.ProcessMessage(context.Background(), userID, chat.SendMessageRequest{Message: message})
	if err != nil {
		t.Fatalf("ProcessMessage(%q) returned error: %v", message, err)
	}
	return response
}

func TestProcessMessageEmpty(t *testing.T) {
	service, _, _ := newTestService(&stubLedger{})

	_, err := service.ProcessMessage(context.Background(), "user-1", chat.SendMessageRequest{Message: "   "})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestProcessMessageClearHistory(t *testing.T) {
	service, states, messages := newTestService(&stubLedger{})
	messages.rows = []entity.ChatMessage{{ID: "1", UserID: "user-1", Message: "halo"}}
	states.states["user-1"] = entity.DialogueState{
		UserID:              "user-1",
		AwaitingIncomeInput: true,
		PendingTargets:      []entity.Target{{Name: "laptop", Amount: 7000000}},
	}

	response := sendMessage(t, service, "user-1", chat.ClearHistoryToken)

	if len(response.Intents) != 1 || response.Intents[0] != "clear_history" {
		t.Errorf("unexpected intents %v", response.Intents)
	}
	if _, ok := states.states["user-1"]; ok {
		t.Error("dialogue state should be cleared")
	}
	if len(messages.rows) != 0 {
		t.Errorf("chat history should be cleared, %d rows remain", len(messages.rows))
	}
}

func TestProcessMessagePendingIncomeRoundTrip(t *testing.T) {
	service, states, _ := newTestService(&stubLedger{})

	first := sendMessage(t, service, "user-1", "mau beli laptop 7jt kira-kira berapa lama ya")
	if !first.AwaitingIncomeInput {
		t.Fatal("first turn should await income input")
	}
	if len(first.Intents) != 1 || first.Intents[0] != "goal_simulation" {
		t.Fatalf("unexpected intents %v", first.Intents)
	}
	if !strings.Contains(first.Response, "laptop") || !strings.Contains(first.Response, "Rp7.000.000") {
		t.Errorf("first response should echo the target, got %q", first.Response)
	}

	saved, ok := states.states["user-1"]
	if !ok || !saved.HasPendingGoalSimulation() {
		t.Fatalf("pending goal state not saved: %+v", saved)
	}

	second := sendMessage(t, service, "user-1", "uang jajan aku 2jt per bulan")
	if second.AwaitingIncomeInput {
		t.Error("second turn should resolve the pending simulation")
	}
	if !strings.Contains(second.Response, "10 bulan") {
		t.Errorf("expected a 10 month plan, got %q", second.Response)
	}
	if _, ok := states.states["user-1"]; ok {
		t.Error("dialogue state should be cleared after the simulation")
	}
}

func TestProcessMessagePendingAcceptsBareNumber(t *testing.T) {
	service, states, _ := newTestService(&stubLedger{})
	state := entity.DialogueState{UserID: "user-1"}
	state.SavePendingGoalSimulation([]entity.Target{{Name: "laptop", Amount: 7000000}})
	states.states["user-1"] = state

	response := sendMessage(t, service, "user-1", "2jt")
	if response.AwaitingIncomeInput {
		t.Error("a lone amount should be taken as the income answer")
	}
	if !strings.Contains(response.Response, "10 bulan") {
		t.Errorf("expected a 10 month plan, got %q", response.Response)
	}
}

func TestProcessMessagePendingReasksOnUnparseableAnswer(t *testing.T) {
	service, states, _ := newTestService(&stubLedger{})
	state := entity.DialogueState{UserID: "user-1"}
	state.SavePendingGoalSimulation([]entity.Target{{Name: "laptop", Amount: 7000000}})
	states.states["user-1"] = state

	response := sendMessage(t, service, "user-1", "hmm gimana ya")
	if !response.AwaitingIncomeInput {
		t.Error("unparseable answer should keep the pending state")
	}
	if response.Response != askIncomeAgain {
		t.Errorf("expected the re-ask message, got %q", response.Response)
	}
	if saved := states.states["user-1"]; !saved.HasPendingGoalSimulation() {
		t.Error("pending targets should survive an unparseable answer")
	}
}

func TestProcessMessagePendingDropsOnTopicSwitch(t *testing.T) {
	service, states, _ := newTestService(&stubLedger{
		financialContext: entity.FinancialContext{Balance: 500000},
	})
	state := entity.DialogueState{UserID: "user-1"}
	state.SavePendingGoalSimulation([]entity.Target{{Name: "laptop", Amount: 7000000}})
	states.states["user-1"] = state

	response := sendMessage(t, service, "user-1", "saldo aku sekarang")
	if len(response.Intents) != 1 || response.Intents[0] != "report_saldo" {
		t.Fatalf("expected a saldo report, got intents %v", response.Intents)
	}
	if !strings.Contains(response.Response, "Rp500.000") {
		t.Errorf("expected the balance figure, got %q", response.Response)
	}
	if _, ok := states.states["user-1"]; ok {
		t.Error("switching topics should drop the pending state")
	}
}

func TestProcessMessageGoalWithIncomeInOneTurn(t *testing.T) {
	service, states, _ := newTestService(&stubLedger{})

	response := sendMessage(t, service, "user-1", "mau beli laptop 7jt, uang jajan 2jt per bulan, kira-kira berapa lama")
	if response.AwaitingIncomeInput {
		t.Error("complete goal message should not await income")
	}
	if !strings.Contains(response.Response, "10 bulan") {
		t.Errorf("expected a 10 month plan, got %q", response.Response)
	}
	if _, ok := states.states["user-1"]; ok {
		t.Error("no dialogue state should be left behind")
	}
}

func TestProcessMessageGoalFallsBackToWalletAllowance(t *testing.T) {
	service, _, _ := newTestService(&stubLedger{
		financialContext: entity.FinancialContext{MonthlyAllowance: 2000000},
	})

	response := sendMessage(t, service, "user-1", "mau beli laptop 7jt kira-kira berapa lama ya")
	if response.AwaitingIncomeInput {
		t.Error("wallet allowance should stand in for a missing income figure")
	}
	if !strings.Contains(response.Response, "10 bulan") {
		t.Errorf("expected a 10 month plan, got %q", response.Response)
	}
}

func TestProcessMessageLedgerFailureDegradesToZeroContext(t *testing.T) {
	service, _, _ := newTestService(&stubLedger{
		contextErr: errors.New("connection refused"),
	})

	response := sendMessage(t, service, "user-1", "saldo aku sekarang")
	if !strings.Contains(response.Response, "Rp0") {
		t.Errorf("a failing ledger should answer with zeroed figures, got %q", response.Response)
	}
}

func TestProcessMessageMultiIntentKeepsOrder(t *testing.T) {
	service, _, _ := newTestService(&stubLedger{
		financialContext: entity.FinancialContext{
			Balance:        1500000,
			MonthlyExpense: 400000,
		},
	})

	response := sendMessage(t, service, "user-1", "saldo dan pengeluaran bulan ini")
	if len(response.Intents) != 2 {
		t.Fatalf("expected two intents, got %v", response.Intents)
	}
	if response.Intents[0] != "report_saldo" || response.Intents[1] != "report_pengeluaran" {
		t.Errorf("intents out of order: %v", response.Intents)
	}
	if saldo, pengeluaran := strings.Index(response.Response, "Saldo"), strings.Index(response.Response, "Pengeluaran bulan ini"); saldo < 0 || pengeluaran < 0 || saldo > pengeluaran {
		t.Errorf("sections out of order in %q", response.Response)
	}
}

func TestProcessMessageStoresTurn(t *testing.T) {
	service, _, messages := newTestService(&stubLedger{})

	sendMessage(t, service, "user-1", "halo")

	if len(messages.rows) != 1 {
		t.Fatalf("expected one stored turn, got %d", len(messages.rows))
	}
	row := messages.rows[0]
	if row.UserID != "user-1" || row.Message != "halo" || row.Intents != "greeting" {
		t.Errorf("unexpected stored turn: %+v", row)
	}
	if row.ID == "" {
		t.Error("stored turn should carry an ID")
	}
}

func TestProcessMessageRecommendationUsesPeriodAnalysis(t *testing.T) {
	service, _, _ := newTestService(&stubLedger{
		summary: finance.PeriodSummary{
			Income:        2000000,
			Expense:       500000,
			DaysElapsed:   10,
			DaysRemaining: 20,
		},
		previousExpense: -1,
	})

	response := sendMessage(t, service, "user-1", "gimana keuangan aku")
	if len(response.Intents) != 1 || response.Intents[0] != "recommendation" {
		t.Fatalf("unexpected intents %v", response.Intents)
	}
	if !strings.Contains(response.Response, "Skor kesehatan") {
		t.Errorf("expected a health score line, got %q", response.Response)
	}
	if !strings.Contains(response.Response, "Sisa budget: Rp1.500.000") {
		t.Errorf("expected the remaining budget, got %q", response.Response)
	}
}

func TestProcessMessageFutureBudgetPlan(t *testing.T) {
	service, _, _ := newTestService(&stubLedger{
		financialContext: entity.FinancialContext{Balance: 700000},
	})

	response := sendMessage(t, service, "user-1", "atur uang aku buat 2 minggu ke depan pakai saldo saya")
	if len(response.Intents) != 1 || response.Intents[0] != "future_budget_planning" {
		t.Fatalf("unexpected intents %v", response.Intents)
	}
	if !strings.Contains(response.Response, "14 hari") {
		t.Errorf("expected a 14 day plan, got %q", response.Response)
	}
	if !strings.Contains(response.Response, "Rp50.000") {
		t.Errorf("expected a daily recommendation of Rp50.000, got %q", response.Response)
	}
	if !strings.Contains(response.Response, "Simulasi") {
		t.Errorf("plan health label should be marked as a simulation, got %q", response.Response)
	}
}

func TestGetHistoryClampsLimit(t *testing.T) {
	service, _, messages := newTestService(&stubLedger{})
	for i := 0; i < 30; i++ {
		messages.rows = append(messages.rows, entity.ChatMessage{ID: "x", UserID: "user-1"})
	}

	history, err := service.GetHistory(context.Background(), "user-1", 0)
	if err != nil {
		t.Fatalf("GetHistory returned error: %v", err)
	}
	if len(history) != 20 {
		t.Errorf("expected the default limit of 20, got %d", len(history))
	}
}

func TestInspectMessageExposesExtraction(t *testing.T) {
	service, _, _ := newTestService(&stubLedger{})

	result := service.InspectMessage("mau beli laptop 7jt kira-kira berapa lama")
	if len(result.Details.Intents) != 1 || result.Details.Intents[0].Type != nlp.IntentGoalSimulation {
		t.Fatalf("unexpected intents %v", result.Details.Intents)
	}
	if len(result.Details.Targets) != 1 || result.Details.Targets[0].Amount != 7000000 {
		t.Errorf("unexpected targets %v", result.Details.Targets)
	}
}
