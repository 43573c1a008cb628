package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ponyexpress/backend/internal/auth"
	"github.com/ponyexpress/backend/internal/storage"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestNewServerRequiresDependencies(t *testing.T) {
	_, err := NewServer(zap.NewNop().Sugar(), nil, nil, nil)
	require.Error(t, err)
}

func TestNewServerOptions(t *testing.T) {
	store := NewMockRepository(gomock.NewController(t))
	hasher, err := auth.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	called := false
	srv, err := NewServer(zap.NewNop().Sugar(), store, hasher, auth.NewTokens(testKey),
		WithEnvConfig(EnvConfig{Host: "127.0.0.1", Port: 8081}),
		ReadTimeout(2*time.Second),
		RegisterAfterShutdown(func() { called = true }),
	)
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:8081", srv.httpServer.Addr)
	require.Equal(t, 2*time.Second, srv.httpServer.ReadTimeout)
	require.Len(t, srv.afterShutdown, 1)
	srv.afterShutdown[0]()
	require.True(t, called)
}

func TestServerHandler(t *testing.T) {
	store := NewMockRepository(gomock.NewController(t))
	hasher, err := auth.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	srv, err := NewServer(zap.NewNop().Sugar(), store, hasher, auth.NewTokens(testKey),
		TimeoutHandler(time.Second, "timeout"))
	require.NoError(t, err)

	store.EXPECT().UserByID(gomock.Any(), int64(1)).Return(storage.User{ID: 1, Username: "danbis"}, nil)

	req := httptest.NewRequest("GET", "/users/1", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}
