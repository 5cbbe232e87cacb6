package chatRepository

import (
	"context"

	"SakuBot/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// MessageStore persists the conversation log. Each turn is one row, so no
// transaction handling is needed here.
type MessageStore interface {
	CreateMessage(ctx context.Context, message entity.ChatMessage) error
	GetMessagesByUserID(ctx context.Context, userID string, limit int) ([]entity.ChatMessage, error)
	DeleteMessagesByUserID(ctx context.Context, userID string) error
}

// StateStore holds the per-user dialogue state between turns. A missing
// state reads back as the zero value, never as an error.
type StateStore interface {
	GetState(ctx context.Context, userID string) (entity.DialogueState, error)
	SaveState(ctx context.Context, state entity.DialogueState) error
	ClearState(ctx context.Context, userID string) error
}

type messageStore struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewMessageStore(log *logrus.Logger, db *sqlx.DB) MessageStore {
	return &messageStore{
		db:  db,
		log: log,
	}
}
