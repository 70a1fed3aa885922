package mocks

import (
	"context"
	"fmt"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
)

// RunLedger is a mock implementation of ports.RunLedger.
type RunLedger struct {
	Runs      []entities.GenerationRun
	Err       error
	SaveErr   error
	SchemaErr error

	SaveCallCount int
}

// EnsureSchema returns the configured schema error.
func (m *RunLedger) EnsureSchema(_ context.Context) error {
	return m.SchemaErr
}

// Close closes the database connection.
func (m *RunLedger) Close() error {
	return nil
}

// SaveRun appends the run unless SaveErr is set.
func (m *RunLedger) SaveRun(_ context.Context, run *entities.GenerationRun) error {
	m.SaveCallCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if run.ID == "" {
		run.ID = fmt.Sprintf("run-%d", len(m.Runs)+1)
	}
	m.Runs = append(m.Runs, *run)
	return nil
}

// ListRuns returns stored runs newest first.
func (m *RunLedger) ListRuns(_ context.Context, limit int) ([]entities.GenerationRun, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.GenerationRun, 0, len(m.Runs))
	for i := len(m.Runs) - 1; i >= 0; i-- {
		if limit > 0 && len(result) == limit {
			break
		}
		result = append(result, m.Runs[i])
	}
	return result, nil
}

// LatestRun returns the last stored run for outputPath.
func (m *RunLedger) LatestRun(_ context.Context, outputPath string) (*entities.GenerationRun, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := len(m.Runs) - 1; i >= 0; i-- {
		if m.Runs[i].OutputPath == outputPath {
			run := m.Runs[i]
			return &run, nil
		}
	}
	return nil, nil
}
