package justification

import (
	"time"
)

type RequestType string

const (
	TypeTardiness RequestType = "TARDANZA"
	TypeAbsence   RequestType = "AUSENCIA"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDIENTE"
	StatusApproved RequestStatus = "APROBADO"
	StatusRejected RequestStatus = "RECHAZADO"
)

// Request is a justification for a tardiness or absence, subject to
// administrator approval. Status only ever moves away from PENDIENTE.
type Request struct {
	ID          int64
	UserID      int64
	TargetDate  time.Time // the day being justified, midnight
	Type        RequestType
	Reason      string
	Status      RequestStatus
	SubmittedAt time.Time

	// DTO / Join
	Username *string
	FullName *string
}
