package kord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 50, cfg.MinBinHz)
	assert.Equal(t, 8000, cfg.MaxBinHz)
	assert.Equal(t, 12, cfg.NoteCount)
}

func TestLoadConfig_OverridesField(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("note_count: 6\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.NoteCount)
	assert.Equal(t, DefaultConfig().MinBinHz, cfg.MinBinHz)
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
