package config

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/LerianStudio/lib-commons/commons"
	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/LerianStudio/lib-mealmind-go/model"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ClientConfig holds the configuration for the MealMind client
type ClientConfig struct {
	BaseURL   string `validate:"required,url"` // Origin the /api/... paths resolve against
	LoginPath string `validate:"required,startswith=/"`

	// HTTP configuration
	HTTPTimeout     time.Duration `validate:"gte=0"` // zero means no timeout
	WithCredentials bool          // keep and send cookies across requests
	DefaultHeaders  http.Header
}

// NewDefaultConfig creates a new config with the defaults every request relies on
func NewDefaultConfig() ClientConfig {
	return ClientConfig{
		BaseURL:         cn.DefaultAPIURL,
		LoginPath:       cn.DefaultLoginPath,
		WithCredentials: true,
		DefaultHeaders: http.Header{
			cn.HeaderContentType: []string{cn.ContentTypeJSON},
		},
	}
}

// Validate checks if the configuration is valid
func (c *ClientConfig) Validate() error {
	if commons.IsNilOrEmpty(&c.BaseURL) {
		return fmt.Errorf("%w: api url is required", cn.ErrMissingAPIURL)
	}

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Field() == "LoginPath" {
				return fmt.Errorf("%w: login path %q must start with /", cn.ErrInvalidLoginPath, c.LoginPath)
			}

			return fmt.Errorf("%w: field %s failed %q validation", cn.ErrInvalidConfig, fe.Field(), fe.Tag())
		}

		return fmt.Errorf("%w: %s", cn.ErrInvalidConfig, err.Error())
	}

	return nil
}

// Clone returns a deep copy so the client never shares mutable header maps with callers
func (c ClientConfig) Clone() ClientConfig {
	out := c
	out.BaseURL = strings.TrimRight(c.BaseURL, "/")
	out.DefaultHeaders = c.DefaultHeaders.Clone()

	if out.DefaultHeaders == nil {
		out.DefaultHeaders = http.Header{}
	}

	return out
}

// FromModel converts a model.Config to a ClientConfig
func FromModel(cfg model.Config) (*ClientConfig, error) {
	config := NewDefaultConfig()
	config.BaseURL = cfg.APIURL
	config.HTTPTimeout = cfg.HTTPTimeout

	if cfg.LoginPath != "" {
		config.LoginPath = cfg.LoginPath
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	out := config.Clone()

	return &out, nil
}
