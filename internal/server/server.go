package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ponyexpress/backend/internal/auth"
	"go.uber.org/zap"
)

// Server defines fields used in HTTP processing
type Server struct {
	logger        *zap.SugaredLogger
	httpServer    *http.Server
	afterShutdown []func()
}

// NewServer returns new Server struct with provided zap.SugaredLogger, Repository and auth components
func NewServer(logger *zap.SugaredLogger, store Repository, hasher *auth.Hasher, tokens *auth.Tokens, opts ...Option) (*Server, error) {
	if store == nil || hasher == nil || tokens == nil {
		return nil, fmt.Errorf("store, hasher and tokens must be provided")
	}

	cfg := &config{
		httpServer: &http.Server{
			Addr:        "0.0.0.0:9000",
			ReadTimeout: 5 * time.Second,
		},
	}
	for _, opt := range opts {
		opt.apply(cfg)
	}

	var h http.Handler = routes(newHandler(logger, store, hasher, tokens))
	if cfg.handlerTimeout > 0 {
		h = http.TimeoutHandler(h, cfg.handlerTimeout, cfg.timeoutMsg)
	}
	cfg.httpServer.Handler = log(h, logger.Desugar())

	return &Server{
		logger:        logger,
		httpServer:    cfg.httpServer,
		afterShutdown: cfg.afterShutdown,
	}, nil
}

// routes registers every endpoint on a new http.ServeMux
func routes(h *handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("POST /auth/registration", enforceJSON(http.HandlerFunc(h.register)))
	mux.HandleFunc("POST /auth/token", h.token)

	mux.HandleFunc("GET /users", h.users)
	mux.Handle("GET /users/me", h.requireUser(http.HandlerFunc(h.me)))
	mux.Handle("PUT /users/me", h.requireUser(enforceJSON(http.HandlerFunc(h.updateMe))))
	mux.HandleFunc("GET /users/{id}", h.userByID)
	mux.HandleFunc("GET /users/{id}/chats", h.userChats)

	mux.HandleFunc("GET /chats", h.chats)
	mux.Handle("POST /chats", h.requireUser(enforceJSON(http.HandlerFunc(h.createChat))))
	mux.HandleFunc("GET /chats/{id}", h.chatByID)
	mux.Handle("PUT /chats/{id}", enforceJSON(http.HandlerFunc(h.renameChat)))
	mux.Handle("DELETE /chats/{id}", h.requireUser(http.HandlerFunc(h.deleteChat)))
	mux.HandleFunc("GET /chats/{id}/messages", h.chatMessages)
	mux.Handle("POST /chats/{id}/messages", h.requireUser(enforceJSON(http.HandlerFunc(h.createMessage))))
	mux.HandleFunc("GET /chats/{id}/users", h.chatUsers)

	return mux
}

// Handler returns the root http.Handler of the server
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start calls ListenAndServe on http.Server instance inside Server struct
// and implements graceful shutdown via goroutine waiting for signals
func (s *Server) Start() error {
	idleConnsClosed := make(chan struct{})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		s.logger.Info("Shutting down HTTP server")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Errorf("srv.Shutdown: %v", err)
		}
		s.logger.Info("HTTP server is stopped")

		close(idleConnsClosed)
	}()

	s.logger.Infof("Starting HTTP server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("s.httpServer.ListenAndServe: %v", err)
	}

	<-idleConnsClosed

	for _, f := range s.afterShutdown {
		f()
	}

	return nil
}
