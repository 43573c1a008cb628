package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/ponyexpress/backend/internal/storage"
)

// chats handles HTTP requests on "GET /chats" endpoint
func (h *handler) chats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.store.Chats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, chatsCollection(chats))
}

// createChat handles HTTP requests on "POST /chats" endpoint, the caller becomes owner
func (h *handler) createChat(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	parser := h.parsers.createChatPool.Get()
	defer h.parsers.createChatPool.Put(parser)
	v, _ := parser.ParseBytes(body)

	name, err := stringField(v, "name")
	if err != nil {
		h.writeError(w, err)
		return
	}

	userIDs, err := idsField(v, "user_ids")
	if err != nil {
		h.writeError(w, err)
		return
	}

	chat, err := h.store.CreateChat(r.Context(), name, currentUser(r.Context()).ID, userIDs)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, chatEnvelope{Chat: toChat(chat)})
}

// includes parses repeated or comma separated "include" query values
func includes(r *http.Request) (messages, users bool, err error) {
	for _, value := range r.URL.Query()["include"] {
		for _, part := range strings.Split(value, ",") {
			switch strings.TrimSpace(part) {
			case "messages":
				messages = true
			case "users":
				users = true
			case "":
			default:
				return false, false, &fieldError{Field: "include", Message: "must be one of \"messages\", \"users\""}
			}
		}
	}
	return messages, users, nil
}

// chatByID handles HTTP requests on "GET /chats/{id}" endpoint
func (h *handler) chatByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, storage.EntityChat)
	if err != nil {
		h.writeError(w, err)
		return
	}

	withMessages, withUsers, err := includes(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	chat, err := h.store.ChatByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	stats, err := h.store.ChatStats(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := chatDetailEnvelope{
		Meta: chatMeta{MessageCount: stats.MessageCount, UserCount: stats.UserCount},
		Chat: toChat(chat),
	}

	if withMessages {
		messages, err := h.store.ChatMessages(r.Context(), id)
		if err != nil {
			h.writeError(w, err)
			return
		}
		projected := toMessages(messages)
		resp.Messages = &projected
	}

	if withUsers {
		users, err := h.store.ChatUsers(r.Context(), id)
		if err != nil {
			h.writeError(w, err)
			return
		}
		projected := toUsers(users)
		resp.Users = &projected
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// renameChat handles HTTP requests on "PUT /chats/{id}" endpoint
func (h *handler) renameChat(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, storage.EntityChat)
	if err != nil {
		h.writeError(w, err)
		return
	}

	body, _ := io.ReadAll(r.Body)

	parser := h.parsers.renameChatPool.Get()
	defer h.parsers.renameChatPool.Put(parser)
	v, _ := parser.ParseBytes(body)

	name, err := stringField(v, "name")
	if err != nil {
		h.writeError(w, err)
		return
	}

	chat, err := h.store.RenameChat(r.Context(), id, name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, chatEnvelope{Chat: toChat(chat)})
}

// deleteChat handles HTTP requests on "DELETE /chats/{id}" endpoint
func (h *handler) deleteChat(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, storage.EntityChat)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.store.DeleteChat(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// chatMessages handles HTTP requests on "GET /chats/{id}/messages" endpoint
func (h *handler) chatMessages(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, storage.EntityChat)
	if err != nil {
		h.writeError(w, err)
		return
	}

	messages, err := h.store.ChatMessages(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messagesCollection(messages))
}

// createMessage handles HTTP requests on "POST /chats/{id}/messages" endpoint
func (h *handler) createMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, storage.EntityChat)
	if err != nil {
		h.writeError(w, err)
		return
	}

	body, _ := io.ReadAll(r.Body)

	parser := h.parsers.createMessagePool.Get()
	defer h.parsers.createMessagePool.Put(parser)
	v, _ := parser.ParseBytes(body)

	text, err := stringField(v, "text")
	if err != nil {
		h.writeError(w, err)
		return
	}

	message, err := h.store.CreateMessage(r.Context(), id, currentUser(r.Context()).ID, text)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, messageEnvelope{Message: toMessage(message)})
}

// chatUsers handles HTTP requests on "GET /chats/{id}/users" endpoint
func (h *handler) chatUsers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, storage.EntityChat)
	if err != nil {
		h.writeError(w, err)
		return
	}

	users, err := h.store.ChatUsers(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, usersCollection(users))
}
