package chatService

import (
	"strings"
	"time"

	"SakuBot/internal/api/chat"
	"SakuBot/internal/entity"
	contextPkg "SakuBot/pkg/context"
	"SakuBot/pkg/finance"
	"SakuBot/pkg/nlp"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *chatService) ProcessMessage(c context.Context, userID string, req chat.SendMessageRequest) (chat.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return chat.ChatResponse{}, chat.ErrEmptyMessage
	}

	if message == chat.ClearHistoryToken {
		return s.clearHistory(c, userID), nil
	}

	state, err := s.states.GetState(c, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to load dialogue state, starting fresh")
		state = entity.DialogueState{UserID: userID}
	}

	financialContext := s.loadFinancialContext(c, userID)

	if state.HasPendingGoalSimulation() {
		if response, handled := s.resumePendingGoal(c, &state, message, financialContext); handled {
			return s.finishTurn(c, userID, message, response, []string{string(nlp.IntentGoalSimulation)}, state), nil
		}
	}

	intents := s.classifier.DetectIntents(message)
	names := make([]string, 0, len(intents))
	sections := make([]string, 0, len(intents))
	for _, intent := range intents {
		names = append(names, string(intent.Type))
		sections = append(sections, s.sectionFor(c, userID, intent, message, &state, financialContext))
	}

	return s.finishTurn(c, userID, message, strings.Join(sections, "\n\n"), names, state), nil
}

func (s *chatService) InspectMessage(message string) chat.NLPTestResponse {
	return chat.NLPTestResponse{Details: *s.classifier.DetectWithDetails(message)}
}

func (s *chatService) GetHistory(c context.Context, userID string, limit int) ([]entity.ChatMessage, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	messages, err := s.messages.GetMessagesByUserID(c, userID, limit)
	if err != nil {
		return nil, chat.ErrGetChatHistory
	}

	return messages, nil
}

func (s *chatService) clearHistory(c context.Context, userID string) chat.ChatResponse {
	requestID := contextPkg.GetRequestID(c)

	if err := s.states.ClearState(c, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to clear dialogue state")
	}
	if err := s.messages.DeleteMessagesByUserID(c, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to clear chat history")
	}

	return chat.ChatResponse{
		Response: clearHistoryAck,
		Intents:  []string{"clear_history"},
	}
}

// loadFinancialContext reads the ledger aggregates with a hard timeout. A
// slow or failing ledger degrades the turn to zero-valued aggregates, it
// never fails it.
func (s *chatService) loadFinancialContext(c context.Context, userID string) entity.FinancialContext {
	ledgerCtx, cancel := context.WithTimeout(c, ledgerTimeout)
	defer cancel()

	financialContext, err := s.ledger.BuildFinancialContext(ledgerCtx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Ledger read failed, answering with empty financial context")
		return entity.FinancialContext{}
	}

	return financialContext
}

// resumePendingGoal treats the turn as the income answer to an earlier goal
// question. It reports handled=false only when the user clearly switched
// topics, in which case the pending state is dropped and the caller
// classifies the message normally.
func (s *chatService) resumePendingGoal(c context.Context, state *entity.DialogueState, message string, financialContext entity.FinancialContext) (string, bool) {
	slots := nlp.ExtractSlots(message)
	monthly := slots.Monthly
	if monthly == 0 && slots.Weekly > 0 {
		monthly = finance.MonthlyFromWeekly(slots.Weekly)
	}
	if monthly == 0 {
		// A lone bare number in the answer is the income figure.
		if mentions := nlp.ExtractMoneyMentions(message); len(mentions) == 1 {
			monthly = mentions[0].Value
		}
	}

	if monthly > 0 {
		targets := state.PendingTargets
		s.dropState(c, state)

		if len(targets) == 1 {
			return s.goals.Simulate(targets[0].Amount, monthly, financialContext.Categories), true
		}
		return s.goals.SimulateMultiple(targets, monthly, financialContext.Categories), true
	}

	if switchedTopic(s.classifier.DetectIntents(message)) {
		s.dropState(c, state)
		return "", false
	}

	return askIncomeAgain, true
}

// switchedTopic reports whether the classifier found anything beyond the
// default recommendation fallback, i.e. the user moved on instead of
// answering the income question.
func switchedTopic(intents []nlp.Intent) bool {
	for _, intent := range intents {
		if intent.Type != nlp.IntentRecommendation {
			return true
		}
	}
	return false
}

func (s *chatService) dropState(c context.Context, state *entity.DialogueState) {
	state.ClearPendingState()
	if err := s.states.ClearState(c, state.UserID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"user_id":    state.UserID,
			"error":      err.Error(),
		}).Warn("Failed to clear dialogue state")
	}
}

func (s *chatService) sectionFor(c context.Context, userID string, intent nlp.Intent, message string, state *entity.DialogueState, financialContext entity.FinancialContext) string {
	switch intent.Type {
	case nlp.IntentGoalSimulation:
		return s.goalSection(c, message, state, financialContext)
	case nlp.IntentFutureBudget:
		return futureBudgetSection(intent, financialContext)
	case nlp.IntentReportSaldo:
		return saldoSection(financialContext)
	case nlp.IntentReportPengeluaran:
		return s.pengeluaranSection(c, userID, intent, financialContext)
	case nlp.IntentReportPemasukan:
		return pemasukanSection(financialContext)
	case nlp.IntentReportKategori:
		return kategoriSection(financialContext)
	case nlp.IntentRecommendation:
		return s.recommendationSection(c, userID, financialContext)
	case nlp.IntentGreeting:
		return greetingSection
	case nlp.IntentHelp:
		return helpSection
	default:
		return helpSection
	}
}

// goalSection runs a goal simulation when the message carries both targets
// and an income figure. With targets but no income it parks the targets in
// the dialogue state and asks for the income figure instead.
func (s *chatService) goalSection(c context.Context, message string, state *entity.DialogueState, financialContext entity.FinancialContext) string {
	targets := nlp.ExtractTargets(message)
	if len(targets) == 0 {
		return askTarget
	}

	slots := nlp.ExtractSlots(message)
	monthly := slots.Monthly
	weekly := slots.Weekly
	if monthly == 0 && weekly == 0 {
		// Fall back to the wallet settings when the message has no income.
		if financialContext.MonthlyAllowance > 0 {
			monthly = int64(financialContext.MonthlyAllowance)
		} else if financialContext.WeeklyAllowance > 0 {
			weekly = int64(financialContext.WeeklyAllowance)
		}
	}

	if monthly == 0 && weekly > 0 {
		if len(targets) == 1 {
			return s.goals.SimulateWeekly(targets[0].Amount, weekly, financialContext.Categories)
		}
		monthly = finance.MonthlyFromWeekly(weekly)
	}

	if monthly == 0 {
		state.SavePendingGoalSimulation(targets)
		if err := s.states.SaveState(c, *state); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(c),
				"user_id":    state.UserID,
				"error":      err.Error(),
			}).Warn("Failed to save dialogue state")
		}
		return askIncomeFor(targets)
	}

	if len(targets) == 1 {
		return s.goals.Simulate(targets[0].Amount, monthly, financialContext.Categories)
	}
	return s.goals.SimulateMultiple(targets, monthly, financialContext.Categories)
}

func (s *chatService) finishTurn(c context.Context, userID string, message string, response string, names []string, state entity.DialogueState) chat.ChatResponse {
	response = s.polish(c, message, response)
	s.storeTurn(c, userID, message, response, names)

	return chat.ChatResponse{
		Response:            response,
		Intents:             names,
		AwaitingIncomeInput: state.AwaitingIncomeInput,
	}
}

// polish optionally rewrites the rule-based draft through the LLM. Any
// failure returns the draft unchanged.
func (s *chatService) polish(c context.Context, message string, draft string) string {
	if !s.llmEnhance || s.chatgpt == nil {
		return draft
	}

	llmCtx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	polished, err := s.chatgpt.PolishResponse(llmCtx, message, draft)
	if err != nil || strings.TrimSpace(polished) == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
		}).Warn("LLM polish failed, returning rule-based response")
		return draft
	}

	return polished
}

func (s *chatService) storeTurn(c context.Context, userID string, message string, response string, names []string) {
	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err == nil {
		err = s.messages.CreateMessage(c, entity.ChatMessage{
			ID:       id,
			UserID:   userID,
			Message:  message,
			Response: response,
			Intents:  strings.Join(names, ","),
		})
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to store chat turn")
	}
}
