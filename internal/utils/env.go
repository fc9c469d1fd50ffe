package utils

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDBPath   = "EOAPI_DB_PATH"
	EnvMockPort = "EOAPI_MOCK_PORT"

	DefaultMockPort = 13928
)

func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func LoadEnv() error {
	root, err := FindProjectRoot()
	if err != nil {
		return err
	}
	envPath := filepath.Join(root, ".env")
	return godotenv.Load(envPath)
}

// RuntimeConfig holds the process level settings that may be overridden
// from the environment or a .env file.
type RuntimeConfig struct {
	DBPath   string
	MockPort int
}

// LoadRuntimeConfig reads overrides from the environment. An empty DBPath
// means the build's default location.
func LoadRuntimeConfig() RuntimeConfig {
	cfg := RuntimeConfig{
		DBPath:   strings.TrimSpace(os.Getenv(EnvDBPath)),
		MockPort: DefaultMockPort,
	}
	if raw := strings.TrimSpace(os.Getenv(EnvMockPort)); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil && port > 0 && port < 65536 {
			cfg.MockPort = port
		}
	}
	return cfg
}
