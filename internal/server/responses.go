package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ponyexpress/backend/internal/storage"
	"github.com/samber/lo"
)

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type chatResponse struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Owner     userResponse `json:"owner"`
	CreatedAt time.Time    `json:"created_at"`
}

type messageResponse struct {
	ID        int64        `json:"id"`
	Text      string       `json:"text"`
	ChatID    int64        `json:"chat_id"`
	User      userResponse `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

type meta struct {
	Count int `json:"count"`
}

type chatMeta struct {
	MessageCount int `json:"message_count"`
	UserCount    int `json:"user_count"`
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

type usersEnvelope struct {
	Meta  meta           `json:"meta"`
	Users []userResponse `json:"users"`
}

type chatEnvelope struct {
	Chat chatResponse `json:"chat"`
}

type chatsEnvelope struct {
	Meta  meta           `json:"meta"`
	Chats []chatResponse `json:"chats"`
}

type messageEnvelope struct {
	Message messageResponse `json:"message"`
}

type messagesEnvelope struct {
	Meta     meta              `json:"meta"`
	Messages []messageResponse `json:"messages"`
}

// chatDetailEnvelope omits messages and users unless they were requested
type chatDetailEnvelope struct {
	Meta     chatMeta           `json:"meta"`
	Chat     chatResponse       `json:"chat"`
	Messages *[]messageResponse `json:"messages,omitempty"`
	Users    *[]userResponse    `json:"users,omitempty"`
}

func toUser(u storage.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toChat(c storage.Chat) chatResponse {
	return chatResponse{
		ID:        c.ID,
		Name:      c.Name,
		Owner:     toUser(c.Owner),
		CreatedAt: c.CreatedAt,
	}
}

func toMessage(m storage.Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		Text:      m.Text,
		ChatID:    m.ChatID,
		User:      toUser(m.User),
		CreatedAt: m.CreatedAt,
	}
}

func toUsers(users []storage.User) []userResponse {
	return lo.Map(users, func(u storage.User, _ int) userResponse { return toUser(u) })
}

func toChats(chats []storage.Chat) []chatResponse {
	return lo.Map(chats, func(c storage.Chat, _ int) chatResponse { return toChat(c) })
}

func toMessages(messages []storage.Message) []messageResponse {
	return lo.Map(messages, func(m storage.Message, _ int) messageResponse { return toMessage(m) })
}

func usersCollection(users []storage.User) usersEnvelope {
	return usersEnvelope{Meta: meta{Count: len(users)}, Users: toUsers(users)}
}

func chatsCollection(chats []storage.Chat) chatsEnvelope {
	return chatsEnvelope{Meta: meta{Count: len(chats)}, Chats: toChats(chats)}
}

func messagesCollection(messages []storage.Message) messagesEnvelope {
	return messagesEnvelope{Meta: meta{Count: len(messages)}, Messages: toMessages(messages)}
}

// writeJSON marshals v and writes it with provided status code
func (h *handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(payload)
	if err != nil {
		h.logger.Errorf("writing marshaled data to ResponseWriter: %v", err)
	}
}
