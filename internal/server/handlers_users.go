package server

import (
	"io"
	"net/http"

	"github.com/ponyexpress/backend/internal/storage"
)

// users handles HTTP requests on "GET /users" endpoint
func (h *handler) users(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.Users(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, usersCollection(users))
}

// userByID handles HTTP requests on "GET /users/{id}" endpoint
func (h *handler) userByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, storage.EntityUser)
	if err != nil {
		h.writeError(w, err)
		return
	}

	user, err := h.store.UserByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, userEnvelope{User: toUser(user)})
}

// me handles HTTP requests on "GET /users/me" endpoint
func (h *handler) me(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, userEnvelope{User: toUser(currentUser(r.Context()))})
}

// updateMe handles HTTP requests on "PUT /users/me" endpoint, absent fields stay unchanged
func (h *handler) updateMe(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	parser := h.parsers.updateUserPool.Get()
	defer h.parsers.updateUserPool.Put(parser)
	v, _ := parser.ParseBytes(body)

	username, err := optionalStringField(v, "username")
	if err != nil {
		h.writeError(w, err)
		return
	}
	email, err := optionalStringField(v, "email")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if username != nil {
		if err := h.validate.Var(*username, "max=64"); err != nil {
			h.writeError(w, &fieldError{Field: "username", Message: "must be at most 64 characters long"})
			return
		}
	}
	if email != nil {
		if err := h.validate.Var(*email, "email,max=254"); err != nil {
			h.writeError(w, &fieldError{Field: "email", Message: "must be a valid email address"})
			return
		}
	}

	me := currentUser(r.Context())
	if username == nil && email == nil {
		h.writeJSON(w, http.StatusOK, userEnvelope{User: toUser(me)})
		return
	}

	user, err := h.store.UpdateUser(r.Context(), me.ID, username, email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, userEnvelope{User: toUser(user)})
}

// userChats handles HTTP requests on "GET /users/{id}/chats" endpoint
func (h *handler) userChats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, storage.EntityUser)
	if err != nil {
		h.writeError(w, err)
		return
	}

	chats, err := h.store.ChatsByUserID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, chatsCollection(chats))
}
