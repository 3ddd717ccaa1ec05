package repository

import (
	apperrors "CoPI_Backend/internal/copi-service/errors"
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type SessionRepository interface {
	// GetSessionUserID returns the user id the session record currently
	// points at. Impersonation tooling may repoint a live session, so the
	// stored value is authoritative over whatever the caller presented.
	GetSessionUserID(ctx context.Context, sessionID string) (string, error)
}

type sessionRepository struct {
	redis *redis.Client
}

func (*sessionRepository) getSessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *sessionRepository) GetSessionUserID(ctx context.Context, sessionID string) (string, error) {
	key := s.getSessionKey(sessionID)
	userID, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("SessionRepository.GetSessionUserID: %w", apperrors.ErrSessionNotFound)
		}
		return "", fmt.Errorf("SessionRepository.GetSessionUserID: %w", err)
	}
	return userID, nil
}

func NewSessionRepository(redis *redis.Client) SessionRepository {
	return &sessionRepository{
		redis: redis,
	}
}
