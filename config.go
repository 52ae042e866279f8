package sdk

import (
	"os"
	"path/filepath"

	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/LerianStudio/lib-mealmind-go/model"
	"github.com/kelseyhightower/envconfig"
)

// LoadFromEnv builds the Config from MEALMIND_* environment variables. An unset
// session file resolves to ~/.mealmind/session.json.
func LoadFromEnv() (model.Config, error) {
	var cfg model.Config
	if err := envconfig.Process(cn.EnvPrefix, &cfg); err != nil {
		return model.Config{}, err
	}

	if cfg.SessionFile == "" {
		cfg.SessionFile = DefaultSessionFile()
	}

	return cfg, nil
}

// DefaultSessionFile returns the default session file path, falling back to the
// working directory when the home directory cannot be resolved.
func DefaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(cn.DefaultSessionDir, cn.DefaultSessionFileName)
	}

	return filepath.Join(home, cn.DefaultSessionDir, cn.DefaultSessionFileName)
}
