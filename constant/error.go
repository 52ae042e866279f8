package constant

import "errors"

// Structured error codes for client and proxy errors
var (
	ErrInvalidConfig       = errors.New("MMD-0001")
	ErrMissingAPIURL       = errors.New("MMD-0002")
	ErrInvalidLoginPath    = errors.New("MMD-0003")
	ErrSessionWriteDropped = errors.New("MMD-0004")
	ErrBackendUnavailable  = errors.New("MMD-0005")
	ErrRouteNotFound       = errors.New("MMD-0006")
	ErrInternalServer      = errors.New("MMD-0007")
	ErrMissingToken        = errors.New("MMD-0008")
)
