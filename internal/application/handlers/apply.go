package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ersonp/catalog-seed/internal/domain/ports"
)

// ApplyHandler executes a generated script against a database.
type ApplyHandler struct {
	executor ports.ScriptExecutor
	logger   *zap.Logger
}

// NewApplyHandler creates a new apply handler.
func NewApplyHandler(executor ports.ScriptExecutor, logger *zap.Logger) *ApplyHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplyHandler{
		executor: executor,
		logger:   logger.Named("apply"),
	}
}

// ApplyResult contains the result of an apply.
type ApplyResult struct {
	ScriptPath string
	Bytes      int
}

// Handle reads the script at scriptPath and executes it in one batch.
func (h *ApplyHandler) Handle(ctx context.Context, scriptPath string) (*ApplyResult, error) {
	data, err := os.ReadFile(scriptPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("script not found: %s (run 'seedgen generate' first)", scriptPath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("script is empty: %s", scriptPath)
	}

	h.logger.Debug("applying script", zap.String("path", scriptPath), zap.Int("bytes", len(data)))
	if err := h.executor.Exec(ctx, string(data)); err != nil {
		return nil, fmt.Errorf("applying %s: %w", scriptPath, err)
	}

	return &ApplyResult{
		ScriptPath: scriptPath,
		Bytes:      len(data),
	}, nil
}
