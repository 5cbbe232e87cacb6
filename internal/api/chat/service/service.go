package chatService

import (
	"os"
	"time"

	"SakuBot/internal/api/chat"
	chatRepository "SakuBot/internal/api/chat/repository"
	"SakuBot/internal/entity"
	"SakuBot/pkg/finance"
	"SakuBot/pkg/nlp"
	openaiPkg "SakuBot/pkg/openai"
	"SakuBot/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IChatService interface {
	ProcessMessage(ctx context.Context, userID string, req chat.SendMessageRequest) (chat.ChatResponse, error)
	InspectMessage(message string) chat.NLPTestResponse
	GetHistory(ctx context.Context, userID string, limit int) ([]entity.ChatMessage, error)
}

// Ledger is the slice of the budget service a chat turn reads from.
type Ledger interface {
	BuildFinancialContext(ctx context.Context, userID string) (entity.FinancialContext, error)
	GetPeriodData(ctx context.Context, userID string, period string) (finance.PeriodSummary, []entity.CategorySummary, []entity.DailyExpense, float64, error)
	SearchExpenses(ctx context.Context, userID string, keyword string) ([]entity.BudgetTransaction, error)
}

const ledgerTimeout = 3 * time.Second

type chatService struct {
	log        *logrus.Logger
	classifier nlp.IClassifier
	goals      *finance.GoalEngine
	ledger     Ledger
	states     chatRepository.StateStore
	messages   chatRepository.MessageStore
	utils      utils.IUtils
	chatgpt    openaiPkg.IChatGPT
	llmEnhance bool
}

func NewChatService(
	log *logrus.Logger,
	classifier nlp.IClassifier,
	goals *finance.GoalEngine,
	ledger Ledger,
	states chatRepository.StateStore,
	messages chatRepository.MessageStore,
	utils utils.IUtils,
	chatgpt openaiPkg.IChatGPT,
) IChatService {
	return &chatService{
		log:        log,
		classifier: classifier,
		goals:      goals,
		ledger:     ledger,
		states:     states,
		messages:   messages,
		utils:      utils,
		chatgpt:    chatgpt,
		llmEnhance: os.Getenv("CHAT_LLM_ENHANCE") == "true",
	}
}
