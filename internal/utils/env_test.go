package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRuntimeConfig_Defaults(t *testing.T) {
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvMockPort, "")

	cfg := LoadRuntimeConfig()

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, DefaultMockPort, cfg.MockPort)
}

func TestLoadRuntimeConfig_Overrides(t *testing.T) {
	t.Setenv(EnvDBPath, " /tmp/eoapi.db ")
	t.Setenv(EnvMockPort, "4010")

	cfg := LoadRuntimeConfig()

	assert.Equal(t, "/tmp/eoapi.db", cfg.DBPath)
	assert.Equal(t, 4010, cfg.MockPort)
}

func TestLoadRuntimeConfig_InvalidPortIgnored(t *testing.T) {
	for _, raw := range []string{"abc", "0", "70000", "-1"} {
		t.Setenv(EnvMockPort, raw)
		assert.Equal(t, DefaultMockPort, LoadRuntimeConfig().MockPort, raw)
	}
}
