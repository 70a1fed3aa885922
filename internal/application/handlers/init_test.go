package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/catalog-seed/internal/infrastructure/config"
)

func TestInitHandler_Handle(t *testing.T) {
	dir := t.TempDir()
	handler := NewInitHandler()

	result, err := handler.Handle(dir)

	require.NoError(t, err)
	assert.Equal(t, config.ConfigFilePath(dir), result.ConfigPath)
	assert.Equal(t, "Data", result.DataDir)
	assert.FileExists(t, result.ConfigPath)
}

func TestInitHandler_Handle_AlreadyInitialized(t *testing.T) {
	dir := t.TempDir()
	handler := NewInitHandler()
	_, err := handler.Handle(dir)
	require.NoError(t, err)

	_, err = handler.Handle(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}
