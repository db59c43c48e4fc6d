package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/indra-asistencia/asistencia-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Record(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

func (a *AttendanceHandlerImpl) record(w http.ResponseWriter, r *http.Request, action string) {
	username, err := usernameFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	msg, err := a.attendanceService.Record(r.Context(), username, action)
	if err != nil {
		slog.Error("Record attendance error", "action", action, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, msg, nil)
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	a.record(w, r, attendance.ActionCheckIn)
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	a.record(w, r, attendance.ActionCheckOut)
}

// Record implements AttendanceHandler. The action comes from the body, so
// clients can drive both operations through one endpoint.
func (a *AttendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	a.record(w, r, req.Action)
}

// History implements AttendanceHandler.
func (a *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	history, err := a.attendanceService.History(r.Context(), username)
	if err != nil {
		slog.Error("History service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// Report implements AttendanceHandler. Bounds come from the from/to query
// parameters in YYYY-MM-DD format.
func (a *AttendanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'from' is required in YYYY-MM-DD format", nil)
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'to' is required in YYYY-MM-DD format", nil)
		return
	}

	report, err := a.attendanceService.ReportByDateRange(r.Context(), from, to)
	if err != nil {
		slog.Error("Report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
