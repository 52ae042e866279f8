package http

import (
	"errors"

	commonsHttp "github.com/LerianStudio/lib-commons/commons/net/http"
	"github.com/LerianStudio/lib-mealmind-go/pkg"
	"github.com/gofiber/fiber/v2"
)

// WithError writes err as a JSON error response with the matching status code.
func WithError(c *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case pkg.EntityNotFoundError:
		return commonsHttp.NotFound(c, e.Code, e.Title, e.Message)
	case pkg.BadGatewayError:
		return c.Status(fiber.StatusBadGateway).JSON(pkg.ResponseError{
			Code:    e.Code,
			Title:   e.Title,
			Message: e.Message,
		})
	case pkg.ResponseError:
		return c.Status(fiber.StatusBadRequest).JSON(e)
	default:
		var iErr pkg.InternalServerError
		_ = errors.As(pkg.ValidateInternalError(err, ""), &iErr)

		return commonsHttp.InternalServerError(c, iErr.Code, iErr.Title, iErr.Message)
	}
}
