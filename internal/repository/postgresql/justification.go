package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type justificationRepository struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.RequestRepository {
	return &justificationRepository{db: db}
}

// Create implements justification.RequestRepository.
func (r *justificationRepository) Create(ctx context.Context, request justification.Request) (justification.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justification_requests (user_id, target_date, type, reason, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		request.UserID,
		request.TargetDate,
		request.Type,
		request.Reason,
		request.Status,
		request.SubmittedAt,
	).Scan(&request.ID)

	if err != nil {
		return justification.Request{}, fmt.Errorf("failed to create justification request: %w", err)
	}

	return request, nil
}

// GetByID implements justification.RequestRepository.
func (r *justificationRepository) GetByID(ctx context.Context, id int64) (justification.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT j.id, j.user_id, j.target_date, j.type, j.reason, j.status, j.submitted_at,
			   u.username, u.full_name
		FROM justification_requests j
		LEFT JOIN users u ON u.id = j.user_id
		WHERE j.id = $1
	`

	var req justification.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.TargetDate, &req.Type, &req.Reason, &req.Status, &req.SubmittedAt,
		&req.Username, &req.FullName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justification.Request{}, justification.ErrJustificationNotFound
		}
		return justification.Request{}, fmt.Errorf("failed to get justification by ID: %w", err)
	}

	return req, nil
}

// ListByStatus implements justification.RequestRepository.
func (r *justificationRepository) ListByStatus(ctx context.Context, status justification.RequestStatus) ([]justification.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT j.id, j.user_id, j.target_date, j.type, j.reason, j.status, j.submitted_at,
			   u.username, u.full_name
		FROM justification_requests j
		LEFT JOIN users u ON u.id = j.user_id
		WHERE j.status = $1
		ORDER BY j.id
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications by status: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// ListForUser implements justification.RequestRepository.
func (r *justificationRepository) ListForUser(ctx context.Context, userID int64) ([]justification.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT j.id, j.user_id, j.target_date, j.type, j.reason, j.status, j.submitted_at,
			   u.username, u.full_name
		FROM justification_requests j
		LEFT JOIN users u ON u.id = j.user_id
		WHERE j.user_id = $1
		ORDER BY j.id
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications for user: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// UpdateStatus implements justification.RequestRepository. The status guard
// makes the transition a compare-and-swap, so two racing approvers cannot
// both succeed.
func (r *justificationRepository) UpdateStatus(ctx context.Context, id int64, from, to justification.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE justification_requests
		SET status = $3
		WHERE id = $1 AND status = $2
	`

	tag, err := q.Exec(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("failed to update justification status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return justification.ErrAlreadyProcessed
	}

	return nil
}

func scanRequests(rows pgx.Rows) ([]justification.Request, error) {
	var requests []justification.Request
	for rows.Next() {
		var req justification.Request
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.TargetDate, &req.Type, &req.Reason, &req.Status, &req.SubmittedAt,
			&req.Username, &req.FullName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan justification request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
