package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 0.02, cfg.Planner.TrimMargin)
	assert.Equal(t, 240.0, cfg.Planner.MaxPrintHeightMM)
	assert.Equal(t, "RG-8X", cfg.Planner.DefaultCoax)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TRIM_MARGIN", "0.05")
	t.Setenv("S3_BUCKET", "cutsheets-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.Planner.TrimMargin)
	assert.Equal(t, "cutsheets-test", cfg.AWS.S3Bucket)
}
