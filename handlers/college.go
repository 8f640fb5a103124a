package handlers

import (
	"net/http"

	"github.com/andrewpaige1/essaydraft-api/middleware"
	"github.com/andrewpaige1/essaydraft-api/models"
)

func (h *APIHandler) GetCollege(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	collegeID := r.PathValue("id")

	college, err := h.store.College(r.Context(), userID, collegeID)
	if err != nil {
		storeError(w, r, "GetCollege", userID, err, "College not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CollegeResponse{
		CollegeName: college.CollegeName,
		Questions:   college.Questions,
	})
}

func (h *APIHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	collegeID := r.PathValue("id")

	var req models.AddQuestionRequest
	if !h.decode(w, r, "AddQuestion", &req) {
		return
	}

	question, err := models.NewQuestion(req.Question)
	if err != nil {
		internalError(w, r, "AddQuestion", userID, err)
		return
	}

	questions, err := h.store.AddQuestion(r.Context(), userID, collegeID, question)
	if err != nil {
		storeError(w, r, "AddQuestion", userID, err, "College not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{Questions: questions})
}

// UpdateAnswer saves the answer to one question. Clients that only send the
// question text get it resolved to an id first; the text must be unique.
func (h *APIHandler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	collegeID := r.PathValue("id")

	var req models.UpdateAnswerRequest
	if !h.decode(w, r, "UpdateAnswer", &req) {
		return
	}

	questionID := req.QuestionID
	if questionID == "" {
		college, err := h.store.College(r.Context(), userID, collegeID)
		if err != nil {
			storeError(w, r, "UpdateAnswer", userID, err, "College not found")
			return
		}

		ids := college.FindQuestionsByText(req.Question)
		switch len(ids) {
		case 0:
			middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
			return
		case 1:
			questionID = ids[0]
		default:
			middleware.ErrorResponse(w, http.StatusConflict, "Question text matches more than one question, send questionId")
			return
		}
	}

	questions, err := h.store.UpdateAnswer(r.Context(), userID, collegeID, questionID, *req.Answer)
	if err != nil {
		storeError(w, r, "UpdateAnswer", userID, err, "Question not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{Questions: questions})
}
