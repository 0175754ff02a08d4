package cli

import (
	"path/filepath"
	"testing"

	"github.com/endpointops/cachereclaim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow(t *testing.T) {
	loader := config.NewLoader()
	loader.SetConfigPath(filepath.Join(t.TempDir(), "config.yaml"))

	assert.NoError(t, runConfigShowWithLoader(loader))
}

func TestConfigInit(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	loader := config.NewLoader()
	loader.SetConfigPath(configPath)

	require.NoError(t, runConfigInitWithLoader(loader))
	assert.FileExists(t, configPath)

	// A second init leaves the existing file alone.
	assert.NoError(t, runConfigInitWithLoader(loader))
}
