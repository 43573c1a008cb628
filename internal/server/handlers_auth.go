package server

import (
	"fmt"
	"io"
	"mime"
	"net/http"
)

type registration struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
}

// maxPasswordBytes is the longest password bcrypt accepts
const maxPasswordBytes = 72

// register handles HTTP requests on "POST /auth/registration" endpoint
func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	parser := h.parsers.registrationPool.Get()
	defer h.parsers.registrationPool.Put(parser)
	v, _ := parser.ParseBytes(body)

	var reg registration
	var err error
	if reg.Username, err = stringField(v, "username"); err != nil {
		h.writeError(w, err)
		return
	}
	if reg.Email, err = stringField(v, "email"); err != nil {
		h.writeError(w, err)
		return
	}
	if reg.Password, err = stringField(v, "password"); err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.validate.Struct(reg); err != nil {
		h.writeError(w, err)
		return
	}
	if len(reg.Password) > maxPasswordBytes {
		h.writeError(w, &fieldError{Field: "password", Message: fmt.Sprintf("must be at most %d bytes", maxPasswordBytes)})
		return
	}

	hash, err := h.hasher.Hash(reg.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	user, err := h.store.CreateUser(r.Context(), reg.Username, reg.Email, hash)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, userEnvelope{User: toUser(user)})
}

// token handles HTTP requests on "POST /auth/token" endpoint, credentials are form-encoded
func (h *handler) token(w http.ResponseWriter, r *http.Request) {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || (mt != "application/x-www-form-urlencoded" && mt != "multipart/form-data") {
		http.Error(w, "Content-Type header must be application/x-www-form-urlencoded", http.StatusUnsupportedMediaType)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseMultipartForm(maxBodySize); err != nil && err != http.ErrNotMultipart {
		http.Error(w, "Malformed form body", http.StatusBadRequest)
		return
	}

	username, err := formField(r, "username")
	if err != nil {
		h.writeError(w, err)
		return
	}
	password, err := formField(r, "password")
	if err != nil {
		h.writeError(w, err)
		return
	}

	user, found, err := h.store.UserByUsername(r.Context(), username)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.hasher.Authenticate(password, user.HashedPassword, found); err != nil {
		h.writeError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, token)
}
