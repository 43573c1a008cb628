package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/ponyexpress/backend/internal/storage"
)

// UserFinder loads users referenced by token subject
type UserFinder interface {
	UserByID(ctx context.Context, id int64) (storage.User, error)
}

// Session resolves the current user of a request from its Authorization header
type Session struct {
	tokens *Tokens
	users  UserFinder
}

func NewSession(tokens *Tokens, users UserFinder) *Session {
	return &Session{tokens: tokens, users: users}
}

// Resolve verifies bearer token from authorization header value and returns its user.
// Deleted or unknown user is reported as ErrInvalidToken
func (s *Session) Resolve(ctx context.Context, authorization string) (storage.User, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		return storage.User{}, ErrMissingToken
	}

	id, err := s.tokens.Verify(token)
	if err != nil {
		return storage.User{}, err
	}

	user, err := s.users.UserByID(ctx, id)
	if err != nil {
		var nf *storage.NotFoundError
		if errors.As(err, &nf) {
			return storage.User{}, ErrInvalidToken
		}
		return storage.User{}, err
	}

	return user, nil
}

func bearerToken(authorization string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorization), " ")
	if !ok || !strings.EqualFold(scheme, TokenType) {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
