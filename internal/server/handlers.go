package server

import (
	"bytes"
	"context"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/ponyexpress/backend/internal/auth"
	"github.com/ponyexpress/backend/internal/storage"
	"github.com/valyala/fastjson"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handlers.go -destination=repository_mock_test.go -package=server

// Repository is the persistence used by handlers, implemented by *storage.Store
type Repository interface {
	CreateUser(ctx context.Context, username, email, hashedPassword string) (storage.User, error)
	Users(ctx context.Context) ([]storage.User, error)
	UserByID(ctx context.Context, id int64) (storage.User, error)
	UserByUsername(ctx context.Context, username string) (storage.User, bool, error)
	UpdateUser(ctx context.Context, id int64, username, email *string) (storage.User, error)
	ChatsByUserID(ctx context.Context, user int64) ([]storage.Chat, error)
	CreateChat(ctx context.Context, name string, owner int64, users []int64) (storage.Chat, error)
	Chats(ctx context.Context) ([]storage.Chat, error)
	ChatByID(ctx context.Context, id int64) (storage.Chat, error)
	RenameChat(ctx context.Context, id int64, name string) (storage.Chat, error)
	DeleteChat(ctx context.Context, id int64) error
	ChatStats(ctx context.Context, id int64) (storage.ChatStats, error)
	ChatUsers(ctx context.Context, chat int64) ([]storage.User, error)
	ChatMessages(ctx context.Context, chat int64) ([]storage.Message, error)
	CreateMessage(ctx context.Context, chat, user int64, text string) (storage.Message, error)
}

type parsers struct {
	registrationPool  fastjson.ParserPool
	updateUserPool    fastjson.ParserPool
	createChatPool    fastjson.ParserPool
	renameChatPool    fastjson.ParserPool
	createMessagePool fastjson.ParserPool
}

type handler struct {
	logger   *zap.SugaredLogger
	store    Repository
	hasher   *auth.Hasher
	tokens   *auth.Tokens
	session  *auth.Session
	validate *validator.Validate
	parsers  parsers
}

func newHandler(logger *zap.SugaredLogger, store Repository, hasher *auth.Hasher, tokens *auth.Tokens) *handler {
	validate := validator.New()
	// report json field names in validation errors
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &handler{
		logger:   logger,
		store:    store,
		hasher:   hasher,
		tokens:   tokens,
		session:  auth.NewSession(tokens, store),
		validate: validate,
	}
}

// pathID parses numeric path value, unparsable id is reported as not found entity
func pathID(r *http.Request, entity string) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &storage.NotFoundError{Entity: entity, ID: raw}
	}
	return id, nil
}

// stringField returns non-blank string field of v
func stringField(v *fastjson.Value, name string) (string, error) {
	if !v.Exists(name) {
		return "", &fieldError{Field: name, Message: "is required"}
	}

	s, err := v.Get(name).StringBytes()
	if err != nil {
		return "", &fieldError{Field: name, Message: "must be a string"}
	}

	if err := checkText(name, s); err != nil {
		return "", err
	}

	return string(s), nil
}

// formField returns non-blank value of the posted form field
func formField(r *http.Request, name string) (string, error) {
	if _, ok := r.PostForm[name]; !ok {
		return "", &fieldError{Field: name, Message: "is required"}
	}

	s := r.PostForm.Get(name)
	if err := checkText(name, []byte(s)); err != nil {
		return "", err
	}

	return s, nil
}

// checkText rejects blank values and bytes postgres text columns can not hold
func checkText(name string, s []byte) error {
	if !utf8.Valid(s) {
		return &fieldError{Field: name, Message: "must be valid UTF-8"}
	}

	if bytes.IndexByte(s, 0) >= 0 {
		return &fieldError{Field: name, Message: "must not contain NUL characters"}
	}

	if len(bytes.TrimSpace(s)) == 0 {
		return &fieldError{Field: name, Message: "must have non-zero length"}
	}

	return nil
}

// optionalStringField is like stringField but absent or null field yields nil
func optionalStringField(v *fastjson.Value, name string) (*string, error) {
	if !v.Exists(name) || v.Get(name).Type() == fastjson.TypeNull {
		return nil, nil
	}

	s, err := stringField(v, name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// idsField returns optional array of positive ids
func idsField(v *fastjson.Value, name string) ([]int64, error) {
	if !v.Exists(name) || v.Get(name).Type() == fastjson.TypeNull {
		return nil, nil
	}

	values, err := v.Get(name).Array()
	if err != nil {
		return nil, &fieldError{Field: name, Message: "must be an array"}
	}

	ids := make([]int64, 0, len(values))
	for _, item := range values {
		id, err := item.Int64()
		if err != nil || id < 1 {
			return nil, &fieldError{Field: name, Message: "must contain only ids greater than zero"}
		}
		ids = append(ids, id)
	}

	return ids, nil
}
