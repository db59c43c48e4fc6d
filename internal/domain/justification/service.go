package justification

import (
	"context"
)

// JustificationService defines business logic for the justification
// approval workflow
type JustificationService interface {
	// Request validates and files a new justification as PENDIENTE
	Request(ctx context.Context, username string, req CreateRequest) (RequestResponse, error)

	// Approve moves a PENDIENTE request to APROBADO and returns a
	// confirmation string (admin)
	Approve(ctx context.Context, id int64) (string, error)

	// ListPending returns all PENDIENTE requests for review (admin)
	ListPending(ctx context.Context) ([]AdminResponse, error)

	// ListMine returns every request of the named user, any status
	ListMine(ctx context.Context, username string) ([]RequestResponse, error)
}
