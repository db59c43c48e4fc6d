package justification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/user"
	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/validator"
)

const minReasonLength = 10

type JustificationServiceImpl struct {
	requests justification.RequestRepository
	users    user.UserRepository
	now      func() time.Time
}

func NewJustificationService(
	requestRepository justification.RequestRepository,
	userRepository user.UserRepository,
) *JustificationServiceImpl {
	return &JustificationServiceImpl{
		requests: requestRepository,
		users:    userRepository,
		now:      time.Now,
	}
}

// Request implements justification.JustificationService.
func (j *JustificationServiceImpl) Request(ctx context.Context, username string, req justification.CreateRequest) (justification.RequestResponse, error) {
	// Disabled accounts keep the ability to file justifications; the
	// enabled flag only gates check-in and check-out.
	userData, err := j.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return justification.RequestResponse{}, err
		}
		return justification.RequestResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if validator.IsEmpty(req.TargetDate) {
		return justification.RequestResponse{}, justification.ErrMissingDate
	}
	targetDate, ok := validator.IsValidDate(strings.TrimSpace(req.TargetDate))
	if !ok {
		return justification.RequestResponse{}, justification.ErrMissingDate
	}

	reason := strings.TrimSpace(req.Reason)
	if validator.TrimmedLength(reason) < minReasonLength {
		return justification.RequestResponse{}, justification.ErrInvalidReason
	}

	requestType, err := normalizeType(req.Type)
	if err != nil {
		return justification.RequestResponse{}, err
	}

	created, err := j.requests.Create(ctx, justification.Request{
		UserID:      userData.ID,
		TargetDate:  targetDate,
		Type:        requestType,
		Reason:      reason,
		Status:      justification.StatusPending,
		SubmittedAt: j.now(),
	})
	if err != nil {
		return justification.RequestResponse{}, fmt.Errorf("failed to create justification request: %w", err)
	}

	created.Username = &userData.Username
	return created.ToResponse(), nil
}

// normalizeType resolves the optional request type token. Blank defaults
// to TARDANZA.
func normalizeType(raw string) (justification.RequestType, error) {
	switch justification.RequestType(strings.ToUpper(strings.TrimSpace(raw))) {
	case "":
		return justification.TypeTardiness, nil
	case justification.TypeTardiness:
		return justification.TypeTardiness, nil
	case justification.TypeAbsence:
		return justification.TypeAbsence, nil
	}
	return "", justification.ErrInvalidType
}

// Approve implements justification.JustificationService.
func (j *JustificationServiceImpl) Approve(ctx context.Context, id int64) (string, error) {
	request, err := j.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, justification.ErrJustificationNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to get justification request: %w", err)
	}
	if request.Status != justification.StatusPending {
		return "", justification.ErrAlreadyProcessed
	}

	// The repository re-checks PENDIENTE in the same statement, so a
	// concurrent approval loses cleanly instead of double-applying.
	if err := j.requests.UpdateStatus(ctx, id, justification.StatusPending, justification.StatusApproved); err != nil {
		return "", err
	}
	return "Justificación aprobada correctamente", nil
}

// ListPending implements justification.JustificationService.
func (j *JustificationServiceImpl) ListPending(ctx context.Context) ([]justification.AdminResponse, error) {
	requests, err := j.requests.ListByStatus(ctx, justification.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending justifications: %w", err)
	}

	responses := make([]justification.AdminResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, requests[i].ToAdminResponse())
	}
	return responses, nil
}

// ListMine implements justification.JustificationService.
func (j *JustificationServiceImpl) ListMine(ctx context.Context, username string) ([]justification.RequestResponse, error) {
	userData, err := j.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	requests, err := j.requests.ListForUser(ctx, userData.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications for user: %w", err)
	}

	responses := make([]justification.RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, requests[i].ToResponse())
	}
	return responses, nil
}
