package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/user"
	"github.com/indra-asistencia/asistencia-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userAdminService user.UserAdminService
}

func NewUserHandler(userAdminService user.UserAdminService) UserHandler {
	return &UserHandlerImpl{userAdminService: userAdminService}
}

func userIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// List implements UserHandler.
func (u *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := u.userAdminService.List(r.Context())
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Create implements UserHandler.
func (u *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	msg, err := u.userAdminService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, msg, nil)
}

// Get implements UserHandler.
func (u *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromURL(r)
	if !ok {
		response.BadRequest(w, "User ID must be a number", nil)
		return
	}

	userData, err := u.userAdminService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, userData)
}

// Update implements UserHandler.
func (u *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromURL(r)
	if !ok {
		response.BadRequest(w, "User ID must be a number", nil)
		return
	}

	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	msg, err := u.userAdminService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update user service error", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, msg, nil)
}

// Activate implements UserHandler.
func (u *UserHandlerImpl) Activate(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromURL(r)
	if !ok {
		response.BadRequest(w, "User ID must be a number", nil)
		return
	}

	msg, err := u.userAdminService.Activate(r.Context(), id)
	if err != nil {
		slog.Error("Activate user service error", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, msg, nil)
}

// Deactivate implements UserHandler.
func (u *UserHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromURL(r)
	if !ok {
		response.BadRequest(w, "User ID must be a number", nil)
		return
	}

	msg, err := u.userAdminService.Deactivate(r.Context(), id)
	if err != nil {
		slog.Error("Deactivate user service error", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, msg, nil)
}
