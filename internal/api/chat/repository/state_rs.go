package chatRepository

import (
	"context"
	"errors"
	"time"

	"SakuBot/internal/entity"
	redisPkg "SakuBot/pkg/redis"
)

// stateTTL bounds how long an unanswered follow-up question survives.
const stateTTL = 24 * time.Hour

type stateStore struct {
	redis redisPkg.IRedis
}

func NewStateStore(redis redisPkg.IRedis) StateStore {
	return &stateStore{redis: redis}
}

func stateKey(userID string) string {
	return "chat:state:" + userID
}

func (s *stateStore) GetState(ctx context.Context, userID string) (entity.DialogueState, error) {
	var state entity.DialogueState
	err := s.redis.GetJSON(ctx, stateKey(userID), &state)
	if errors.Is(err, redisPkg.ErrNotFound) {
		return entity.DialogueState{UserID: userID}, nil
	}
	if err != nil {
		return entity.DialogueState{UserID: userID}, err
	}

	return state, nil
}

func (s *stateStore) SaveState(ctx context.Context, state entity.DialogueState) error {
	return s.redis.SetJSON(ctx, stateKey(state.UserID), state, stateTTL)
}

func (s *stateStore) ClearState(ctx context.Context, userID string) error {
	return s.redis.Delete(ctx, stateKey(userID))
}
