package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/indra-asistencia/asistencia-backend-go/internal/handler/http/response"
)

type JustificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
}

type JustificationHandlerImpl struct {
	justificationService justification.JustificationService
}

func NewJustificationHandler(justificationService justification.JustificationService) JustificationHandler {
	return &JustificationHandlerImpl{justificationService: justificationService}
}

// Create implements JustificationHandler.
func (j *JustificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req justification.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create justification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := j.justificationService.Request(r.Context(), username, req)
	if err != nil {
		slog.Error("Create justification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justificación registrada correctamente", created)
}

// ListMine implements JustificationHandler.
func (j *JustificationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := j.justificationService.ListMine(r.Context(), username)
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPending implements JustificationHandler.
func (j *JustificationHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	pending, err := j.justificationService.ListPending(r.Context())
	if err != nil {
		slog.Error("ListPending service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

// Approve implements JustificationHandler.
func (j *JustificationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Justification ID must be a number", nil)
		return
	}

	msg, err := j.justificationService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("Approve service error", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, msg, nil)
}
