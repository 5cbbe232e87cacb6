package chatRepository

import (
	"context"

	"SakuBot/internal/entity"
	contextPkg "SakuBot/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *messageStore) CreateMessage(c context.Context, message entity.ChatMessage) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":       message.ID,
		"user_id":  message.UserID,
		"message":  message.Message,
		"response": message.Response,
		"intents":  message.Intents,
	}

	query, args, err := sqlx.Named(queryCreateChatMessage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateMessage")
		return err
	}
	query = r.db.Rebind(query)

	_, err = r.db.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when storing chat message")
		return err
	}

	return nil
}

func (r *messageStore) GetMessagesByUserID(c context.Context, userID string, limit int) ([]entity.ChatMessage, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetChatMessagesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for GetMessagesByUserID")
		return nil, err
	}
	query = r.db.Rebind(query)

	var messages []entity.ChatMessage
	if err := r.db.SelectContext(c, &messages, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching chat messages")
		return nil, err
	}

	return messages, nil
}

func (r *messageStore) DeleteMessagesByUserID(c context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteChatMessagesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteMessagesByUserID")
		return err
	}
	query = r.db.Rebind(query)

	if _, err := r.db.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when clearing chat messages")
		return err
	}

	return nil
}
