package session

import (
	apperrors "CoPI_Backend/internal/copi-service/errors"
	"CoPI_Backend/internal/copi-service/repository"
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"
)

// Resolver turns an inbound bearer credential into the caller's identity.
// It only resolves sessions; issuing them happens outside this service.
type Resolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

type resolver struct {
	secretKey string
	sessions  repository.SessionRepository
}

func (r *resolver) Resolve(ctx context.Context, tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("session.Resolver.Resolve: %w", apperrors.ErrInvalidSession)
		}
		return []byte(r.secretKey), nil
	})
	if err != nil || !parsedToken.Valid {
		return "", fmt.Errorf("session.Resolver.Resolve: %w", apperrors.ErrInvalidSession)
	}
	// The library only enforces exp when the claim is present, so a token
	// minted without one would never expire.
	if _, ok := claims["exp"]; !ok {
		return "", fmt.Errorf("session.Resolver.Resolve: %w", apperrors.ErrInvalidSession)
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("session.Resolver.Resolve: %w", apperrors.ErrInvalidSession)
	}
	if uid, ok := claims["user_id"].(string); !ok || uid == "" {
		return "", fmt.Errorf("session.Resolver.Resolve: %w", apperrors.ErrInvalidSession)
	}
	// The session record decides the effective user, so a revoked or
	// repointed session takes effect before the token expires.
	userID, err := r.sessions.GetSessionUserID(ctx, sid)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return "", fmt.Errorf("session.Resolver.Resolve: %w", apperrors.ErrInvalidSession)
		}
		return "", fmt.Errorf("session.Resolver.Resolve: %w", err)
	}
	return userID, nil
}

func NewResolver(secretKey string, sessions repository.SessionRepository) Resolver {
	return &resolver{
		secretKey: secretKey,
		sessions:  sessions,
	}
}
