package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/figure"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FIGSERVE_ADDR", "")
	t.Setenv("FIGSERVE_GENDER", "")
	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, figure.Neutral, cfg.Gender)
	assert.True(t, cfg.Animate)
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	t.Setenv("FIGSERVE_ADDR", "127.0.0.1:9000")
	t.Setenv("FIGSERVE_GENDER", "female")

	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, figure.Female, cfg.Gender)

	cfg, err = loadConfig([]string{"-addr", ":7000", "-gender", "m", "-animate=false"})
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, figure.Male, cfg.Gender)
	assert.False(t, cfg.Animate)

	_, err = loadConfig([]string{"-nope"})
	assert.Error(t, err)
}
