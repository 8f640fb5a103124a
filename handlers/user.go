package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/andrewpaige1/essaydraft-api/auth"
	"github.com/andrewpaige1/essaydraft-api/middleware"
	"github.com/andrewpaige1/essaydraft-api/models"
	"github.com/andrewpaige1/essaydraft-api/store"
)

func (h *APIHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decode(w, r, "Register", &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		internalError(w, r, "Register", "", err)
		return
	}

	user, err := models.NewUser(req.FName, req.LName, req.Email, hash)
	if err != nil {
		internalError(w, r, "Register", "", err)
		return
	}

	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			middleware.ErrorResponse(w, http.StatusConflict, "User already exists")
			return
		}
		internalError(w, r, "Register", "", err)
		return
	}

	slog.Info("Register: created user", "user_id", user.ID, "request_id", middleware.RequestID(r.Context()))
	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: "User registered"})
}

// UserExists is advisory; Register is the authority on duplicates.
func (h *APIHandler) UserExists(w http.ResponseWriter, r *http.Request) {
	var req models.UserExistsRequest
	if !h.decode(w, r, "UserExists", &req) {
		return
	}

	user, err := h.store.UserByEmail(r.Context(), req.Email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.JSONResponse(w, http.StatusOK, models.UserExistsResponse{})
	case err != nil:
		internalError(w, r, "UserExists", "", err)
	default:
		middleware.JSONResponse(w, http.StatusOK, models.UserExistsResponse{
			User: &models.UserRef{ID: user.ID},
		})
	}
}
