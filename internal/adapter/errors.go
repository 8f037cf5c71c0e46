package adapter

import "errors"

// Sentinel errors mapped from collaborator HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("collaborator rejected request")
	ErrNotFound            = errors.New("collaborator resource not found")
	ErrConflict            = errors.New("collaborator reported conflict")
	ErrTooManyRequests     = errors.New("collaborator rate limited request")
	ErrBadGateway          = errors.New("collaborator upstream unavailable")
	ErrInternalServerError = errors.New("collaborator internal error")
)
