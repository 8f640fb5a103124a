package handlers

import (
	"net/http"

	"github.com/andrewpaige1/essaydraft-api/middleware"
	"github.com/andrewpaige1/essaydraft-api/models"
)

func (h *APIHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.store.UserByID(r.Context(), userID)
	if err != nil {
		storeError(w, r, "GetProfile", userID, err, "User not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProfileResponse{
		FName:   user.FName,
		LName:   user.LName,
		Email:   user.Email,
		Details: user.Details,
	})
}

// UpdateProfile sets a single details field and leaves the others alone.
func (h *APIHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.UpdateDetailRequest
	if !h.decode(w, r, "UpdateProfile", &req) {
		return
	}
	field, _ := models.ParseDetailField(req.Field)

	if err := h.store.UpdateDetail(r.Context(), userID, field, *req.Value); err != nil {
		storeError(w, r, "UpdateProfile", userID, err, "User not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Profile updated"})
}

// TellUsAboutYou replaces every details field. Fields missing from the body
// are cleared.
func (h *APIHandler) TellUsAboutYou(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var details models.Details
	if err := middleware.ParseStrictJSONBody(r, &details); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.ReplaceDetails(r.Context(), userID, details); err != nil {
		storeError(w, r, "TellUsAboutYou", userID, err, "User not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Details saved"})
}
