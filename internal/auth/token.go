package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenLifetime is the fixed validity period of access tokens
	TokenLifetime = 3600 * time.Second
	TokenType     = "Bearer"
)

// AccessToken is returned to the client after successful authentication
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Tokens issues and verifies HS256 signed tokens carrying sub and exp claims
type Tokens struct {
	key []byte
	now func() time.Time
}

// NewTokens returns Tokens signing with provided key
func NewTokens(key string) *Tokens {
	return &Tokens{key: []byte(key), now: time.Now}
}

// Issue builds signed token for user id which expires in TokenLifetime
func (t *Tokens) Issue(userID int64) (AccessToken, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(t.now().Add(TokenLifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
	if err != nil {
		return AccessToken{}, fmt.Errorf("signing token: %w", err)
	}

	return AccessToken{
		AccessToken: signed,
		TokenType:   TokenType,
		ExpiresIn:   int(TokenLifetime / time.Second),
	}, nil
}

// Verify checks token signature and expiry and returns user id from sub claim.
// It fails with ErrExpiredToken or ErrInvalidToken
func (t *Tokens) Verify(token string) (int64, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return t.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		// exp is in whole seconds, token stays valid through its exp second
		jwt.WithLeeway(time.Second),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return id, nil
}
