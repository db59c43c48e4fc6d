package justification

import (
	"context"
)

// RequestRepository defines data access methods for justification requests.
type RequestRepository interface {
	// Create inserts a new request and returns it with its assigned id
	Create(ctx context.Context, request Request) (Request, error)

	// GetByID retrieves a request by id; ErrJustificationNotFound when absent
	GetByID(ctx context.Context, id int64) (Request, error)

	// ListByStatus returns all requests in the given status, with the
	// owning user's name joined in
	ListByStatus(ctx context.Context, status RequestStatus) ([]Request, error)

	// ListForUser returns all requests of the user, any status
	ListForUser(ctx context.Context, userID int64) ([]Request, error)

	// UpdateStatus moves a request from one status to another as a single
	// compare-and-swap; ErrAlreadyProcessed when the request was no longer
	// in the expected status.
	UpdateStatus(ctx context.Context, id int64, from, to RequestStatus) error
}
