package justification

import "errors"

// Justification domain errors
var (
	ErrMissingDate           = errors.New("target date is required")
	ErrInvalidReason         = errors.New("reason must have at least 10 characters")
	ErrInvalidType           = errors.New("invalid type: use TARDANZA or AUSENCIA")
	ErrJustificationNotFound = errors.New("justification not found")
	ErrAlreadyProcessed      = errors.New("justification has already been processed")
)
