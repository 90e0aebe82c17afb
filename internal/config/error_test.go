package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError_Empty(t *testing.T) {
	e := &ConfigError{Path: "config.toml"}
	assert.False(t, e.HasErrors())
	assert.Equal(t, "", e.Error())
}

func TestConfigError_MissingVars(t *testing.T) {
	e := &ConfigError{Missing: []string{"CURATOR_DB", "CURATOR_LIB"}}
	assert.True(t, e.HasErrors())
	assert.Contains(t, e.Error(), "missing environment variables: CURATOR_DB, CURATOR_LIB")
}

func TestConfigError_ValidationErrors(t *testing.T) {
	e := &ConfigError{Errors: []string{"server.port: must be between 1 and 65535, got 70000"}}
	assert.True(t, e.HasErrors())
	assert.Contains(t, e.Error(), "validation failed:")
	assert.Contains(t, e.Error(), "server.port")
}
