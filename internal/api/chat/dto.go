package chat

import "SakuBot/pkg/nlp"

// ClearHistoryToken is a control message: it wipes the conversation
// instead of being classified.
const ClearHistoryToken = "__clear_history__"

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

type ChatResponse struct {
	Response            string   `json:"response"`
	Intents             []string `json:"intents"`
	AwaitingIncomeInput bool     `json:"awaiting_income_input"`
}

type NLPTestRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

type NLPTestResponse struct {
	Details nlp.DetectionDetails `json:"details"`
}

type HistoryItem struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	Intents   string `json:"intents"`
	CreatedAt string `json:"created_at"`
}

type HistoryResponse struct {
	Messages []HistoryItem `json:"messages"`
}
