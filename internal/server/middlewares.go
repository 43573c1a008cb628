package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/ponyexpress/backend/internal/storage"
	"github.com/ponyexpress/backend/internal/storage/zapadapter"
	"github.com/rs/xid"
	"github.com/valyala/fastjson"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

// enforceJSON is a middleware pre-processing requests with body
// it checks for application/json Content-Type header and valid json body
// it also sets blank Content-Type header to application/json
func enforceJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// check "Content-Type" header
		contentType := r.Header.Get("Content-Type")
		if contentType != "" {
			mt, _, err := mime.ParseMediaType(contentType)
			if err != nil {
				http.Error(w, "Malformed Content-Type header", http.StatusBadRequest)
				return
			}

			if mt != "application/json" {
				http.Error(w, "Content-Type header must be application/json", http.StatusUnsupportedMediaType)
				return
			}
		} else {
			r.Header.Set("Content-Type", "application/json")
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "Can not read request body", http.StatusBadRequest)
			return
		}

		if len(body) == 0 {
			http.Error(w, "No body provided", http.StatusBadRequest)
			return
		}

		// check if provided request body is valid JSON
		if err := fastjson.ValidateBytes(body); err != nil {
			http.Error(w, "Malformed JSON", http.StatusBadRequest)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// log assigns request id, stores it in request context for the store logger and logs the request
func log(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := xid.New().String()
		start := time.Now()

		ctx := zapadapter.NewContextWithRequestID(r.Context(), id)
		rwID := r.WithContext(ctx)

		w.Header().Set("X-Request-ID", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		logger.Info("incoming http request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("uri", r.URL.RequestURI()),
			zap.String("ip", r.RemoteAddr),
		)

		next.ServeHTTP(rec, rwID)

		logger.Info("http request handled",
			zap.String("id", id),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)),
		)
	})
}

type userKey struct{}

// requireUser resolves the caller from the bearer token and stores it in request context
func (h *handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.session.Resolve(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, user)))
	})
}

// currentUser returns user stored by requireUser
func currentUser(ctx context.Context) storage.User {
	u, _ := ctx.Value(userKey{}).(storage.User)
	return u
}
