package handlers

import (
	"errors"
	"net/http"

	"github.com/andrewpaige1/essaydraft-api/auth"
	"github.com/andrewpaige1/essaydraft-api/middleware"
	"github.com/andrewpaige1/essaydraft-api/models"
	"github.com/andrewpaige1/essaydraft-api/utils"
)

func (h *APIHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decode(w, r, "Login", &req) {
		return
	}

	user, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil {
		storeError(w, r, "Login", "", err, "User not found")
		return
	}

	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrIncorrectPassword) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Incorrect password")
			return
		}
		internalError(w, r, "Login", user.ID, err)
		return
	}

	token, err := h.sessions.CreateToken(user.ID, user.Email, user.DisplayName())
	if err != nil {
		internalError(w, r, "Login", user.ID, err)
		return
	}
	h.sessions.SetCookie(w, token)

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		User: models.SessionUser{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.DisplayName(),
		},
	})
}

func (h *APIHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged out"})
}

func (h *APIHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetSessionUser(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "User not authenticated")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{User: user})
}
