package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrewpaige1/essaydraft-api/auth"
	"github.com/andrewpaige1/essaydraft-api/middleware"
	"github.com/andrewpaige1/essaydraft-api/models"
	"github.com/andrewpaige1/essaydraft-api/store"
	"github.com/andrewpaige1/essaydraft-api/utils"
)

// APIHandler serves every /api route. It holds no per-request state.
type APIHandler struct {
	store    store.Store
	sessions *auth.Sessions
	validate *validator.Validate
}

func NewAPIHandler(s store.Store, sessions *auth.Sessions) *APIHandler {
	return &APIHandler{
		store:    s,
		sessions: sessions,
		validate: newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("detailfield", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseDetailField(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= auth.MaxPasswordBytes
	})
	return v
}

// decode parses and validates the request body, writing a 400 on failure.
func (h *APIHandler) decode(w http.ResponseWriter, r *http.Request, op string, v interface{}) bool {
	if err := middleware.ParseJSONBody(r, v); err != nil {
		slog.Info(op+": invalid request body", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if n, ok := v.(interface{ Normalize() }); ok {
		n.Normalize()
	}
	if err := h.validate.Struct(v); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "Invalid request body"
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "bcryptlen":
		return fmt.Sprintf("%s must be at most %d bytes", fe.Field(), auth.MaxPasswordBytes)
	case "detailfield":
		return fmt.Sprintf("unknown profile field %q", fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// userID returns the caller's id. Routes are gated by RequireSession, so a
// miss here means the router was wired wrong.
func (h *APIHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := utils.GetUserID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "User not authenticated")
	}
	return id, ok
}

// storeError maps a store failure onto a response. notFound is the message
// used for store.ErrNotFound.
func storeError(w http.ResponseWriter, r *http.Request, op, userID string, err error, notFound string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, notFound)
	case errors.Is(err, store.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "Conflict")
	default:
		internalError(w, r, op, userID, err)
	}
}

func internalError(w http.ResponseWriter, r *http.Request, op, userID string, err error) {
	slog.Error(op+": request failed",
		"error", err,
		"user_id", userID,
		"request_id", middleware.RequestID(r.Context()),
	)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}
