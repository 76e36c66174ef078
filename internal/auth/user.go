package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const UserIDHeader = "X-User-ID"

var ErrMissingUser = errors.New("missing user id")

type userIDKey struct{}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the user the request is scoped to.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrMissingUser
	}
	return userID, nil
}

func ParseUserID(header string) (uuid.UUID, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return uuid.Nil, ErrMissingUser
	}
	userID, err := uuid.Parse(header)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse user id: %w", err)
	}
	if userID == uuid.Nil {
		return uuid.Nil, ErrMissingUser
	}
	return userID, nil
}
