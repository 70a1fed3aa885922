package mocks

import (
	"context"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
)

// ScriptRenderer is a mock implementation of ports.ScriptRenderer.
type ScriptRenderer struct {
	Output []byte
	Err    error

	RenderCallCount int
	LastScript      entities.SeedScript
}

// Render returns the configured output or error.
func (m *ScriptRenderer) Render(script entities.SeedScript) ([]byte, error) {
	m.RenderCallCount++
	m.LastScript = script
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Output, nil
}

// ScriptExecutor is a mock implementation of ports.ScriptExecutor.
type ScriptExecutor struct {
	ExecErr  error
	CloseErr error

	ExecCallCount  int
	CloseCallCount int
	LastScript     string
}

// Exec records the script and returns the configured error.
func (m *ScriptExecutor) Exec(_ context.Context, script string) error {
	m.ExecCallCount++
	m.LastScript = script
	return m.ExecErr
}

// Close returns the configured error.
func (m *ScriptExecutor) Close() error {
	m.CloseCallCount++
	return m.CloseErr
}
