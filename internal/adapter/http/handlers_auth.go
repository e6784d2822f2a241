package http

import (
	"errors"
	"net/http"

	"github.com/rentfold/rentfold/internal/domain/owner"
	"github.com/rentfold/rentfold/internal/middleware"
	"github.com/rentfold/rentfold/internal/service"
)

// Login exchanges credentials for an access token.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[owner.LoginRequest](w, r, maxRequestBodySize)
	if !ok {
		return
	}

	resp, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeDomainError(w, err, "login failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Me returns the authenticated owner's record.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromContext(r.Context())
	o, err := h.Auth.Me(r.Context(), id.OwnerID)
	if err != nil {
		writeDomainError(w, err, "owner not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// CreateOwner creates a new owner account. Admin only.
func (h *Handlers) CreateOwner(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[owner.CreateRequest](w, r, maxRequestBodySize)
	if !ok {
		return
	}

	o, err := h.Auth.Register(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "creation failed")
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

// ListOwners lists all owner accounts. Admin only.
func (h *Handlers) ListOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.Auth.ListOwners(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	if owners == nil {
		owners = []owner.Owner{}
	}
	writeJSON(w, http.StatusOK, owners)
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetOwnerPassword sets a new password for an owner. Admin only.
func (h *Handlers) ResetOwnerPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	req, ok := readJSON[resetPasswordRequest](w, r, maxRequestBodySize)
	if !ok {
		return
	}

	if err := h.Auth.ResetPassword(r.Context(), id, req.Password); err != nil {
		writeDomainError(w, err, "owner not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
