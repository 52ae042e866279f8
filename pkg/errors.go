package pkg

import (
	"fmt"
	"strings"

	"github.com/LerianStudio/lib-mealmind-go/constant"
)

// EntityNotFoundError records an error indicating an entity was not found in any case that caused it.
// The dev proxy uses it for routes it does not serve.
type EntityNotFoundError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e EntityNotFoundError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		if strings.TrimSpace(e.EntityType) != "" {
			return fmt.Sprintf("Entity %s not found", e.EntityType)
		}

		if e.Err != nil {
			return e.Err.Error()
		}

		return "entity not found"
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityNotFoundError) Unwrap() error {
	return e.Err
}

// BadGatewayError indicates the upstream backend could not be reached.
type BadGatewayError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e BadGatewayError) Error() string {
	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e BadGatewayError) Unwrap() error {
	return e.Err
}

// InternalServerError indicates an unexpected failure while handling a request.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

// ResponseError is a struct used to return errors to the client.
type ResponseError struct {
	Code    string `json:"code,omitempty"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

// Error returns the message of the ResponseError.
func (r ResponseError) Error() string {
	return r.Message
}

// ValidateInternalError wraps err in an InternalServerError with the generic code, title and message.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       constant.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    "The server encountered an unexpected error. Please try again later or contact support.",
		Err:        err,
	}
}

// ValidateBusinessError maps a constant error code to the business error carrying its title and message.
// Unknown errors are returned unchanged.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	errorMap := map[error]error{
		constant.ErrRouteNotFound: EntityNotFoundError{
			EntityType: entityType,
			Code:       constant.ErrRouteNotFound.Error(),
			Title:      "Route not found",
			Message:    fmt.Sprintf("The path %s is not served by the dev proxy. Only /api/... paths are forwarded to the backend.", args...),
		},
		constant.ErrBackendUnavailable: BadGatewayError{
			EntityType: entityType,
			Code:       constant.ErrBackendUnavailable.Error(),
			Title:      "Backend unavailable",
			Message:    fmt.Sprintf("The MealMind backend at %s could not be reached. Please verify it is running and the address is correct.", args...),
		},
	}

	if mappedError, found := errorMap[err]; found {
		return mappedError
	}

	return err
}
