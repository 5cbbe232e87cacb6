package chat

import "SakuBot/pkg/response"

var (
	ErrEmptyMessage    = response.NewError(400, "message cannot be empty")
	ErrProcessMessage  = response.NewError(500, "failed to process chat message")
	ErrGetChatHistory  = response.NewError(500, "failed to fetch chat history")
	ErrSaveChatMessage = response.NewError(500, "failed to store chat message")
)
