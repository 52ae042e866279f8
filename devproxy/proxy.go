// Package devproxy serves the same origin the client's relative /api/...
// paths resolve against and forwards them to the MealMind backend.
package devproxy

import (
	"fmt"
	"strings"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/LerianStudio/lib-mealmind-go/pkg"
	pkgHTTP "github.com/LerianStudio/lib-mealmind-go/pkg/net/http"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
)

var validate = validator.New()

// Config holds the dev proxy settings
type Config struct {
	Backend string        `validate:"required,url"` // origin requests are forwarded to
	Timeout time.Duration `validate:"gte=0"`        // zero means no timeout
}

// Server forwards /api/... requests to the backend and answers everything else with 404
type Server struct {
	app     *fiber.App
	backend string
	timeout time.Duration
	logger  log.Logger
}

// New creates the proxy. Routes are registered immediately; call Listen to serve.
func New(cfg Config, logger log.Logger) (*Server, error) {
	if err := validate.Struct(cfg); err != nil {
		logger.Errorf("Invalid proxy configuration: %s", err.Error())
		return nil, fmt.Errorf("%w: %s", cn.ErrInvalidConfig, err.Error())
	}

	s := &Server{
		backend: strings.TrimRight(cfg.Backend, "/"),
		timeout: cfg.Timeout,
		logger:  logger,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			s.logger.Errorf("Proxy handler failed - path: %s, error: %s", c.Path(), err.Error())
			return pkgHTTP.WithError(c, err)
		},
	})

	s.app.All(cn.APIPrefix, s.forward)
	s.app.All(cn.APIPrefix+"/*", s.forward)
	s.app.Use(s.notFound)

	return s, nil
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called
func (s *Server) Listen(addr string) error {
	s.logger.Infof("Dev proxy listening on %s, forwarding %s/* to %s", addr, cn.APIPrefix, s.backend)

	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) forward(c *fiber.Ctx) error {
	target := s.backend + c.OriginalURL()

	s.logger.Debugf("Proxying request - method: %s, target: %s", c.Method(), target)

	var err error
	if s.timeout > 0 {
		err = proxy.DoTimeout(c, target, s.timeout)
	} else {
		err = proxy.Do(c, target)
	}

	if err != nil {
		s.logger.Errorf("Backend unreachable - target: %s, error: %s", target, err.Error())
		return pkgHTTP.WithError(c, pkg.ValidateBusinessError(cn.ErrBackendUnavailable, "", s.backend))
	}

	c.Response().Header.Del(fiber.HeaderServer)

	return nil
}

func (s *Server) notFound(c *fiber.Ctx) error {
	return pkgHTTP.WithError(c, pkg.ValidateBusinessError(cn.ErrRouteNotFound, "", c.Path()))
}
