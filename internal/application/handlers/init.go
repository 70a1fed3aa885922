package handlers

import (
	"fmt"

	"github.com/ersonp/catalog-seed/internal/infrastructure/config"
)

// InitHandler writes the default configuration.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	DataDir    string
	Output     string
}

// Handle writes .seedgen/config.yaml under basePath.
func (h *InitHandler) Handle(basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("seedgen already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &InitResult{
		ConfigPath: config.ConfigFilePath(basePath),
		DataDir:    cfg.Paths.DataDir,
		Output:     cfg.Paths.Output,
	}, nil
}
