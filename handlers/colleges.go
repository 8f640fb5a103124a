package handlers

import (
	"net/http"

	"github.com/andrewpaige1/essaydraft-api/middleware"
	"github.com/andrewpaige1/essaydraft-api/models"
)

func (h *APIHandler) GetColleges(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	colleges, err := h.store.Colleges(r.Context(), userID)
	if err != nil {
		storeError(w, r, "GetColleges", userID, err, "User not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CollegesResponse{Colleges: colleges})
}

func (h *APIHandler) AddCollege(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.AddCollegeRequest
	if !h.decode(w, r, "AddCollege", &req) {
		return
	}

	college, err := models.NewCollege(req.CollegeName)
	if err != nil {
		internalError(w, r, "AddCollege", userID, err)
		return
	}

	colleges, err := h.store.AddCollege(r.Context(), userID, college)
	if err != nil {
		storeError(w, r, "AddCollege", userID, err, "User not found")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CollegesResponse{
		Message:  "College added",
		Colleges: colleges,
	})
}

func (h *APIHandler) DeleteCollege(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.DeleteCollegeRequest
	if !h.decode(w, r, "DeleteCollege", &req) {
		return
	}

	colleges, err := h.store.DeleteCollege(r.Context(), userID, req.CollegeID)
	if err != nil {
		storeError(w, r, "DeleteCollege", userID, err, "College not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CollegesResponse{
		Message:  "College removed",
		Colleges: colleges,
	})
}
