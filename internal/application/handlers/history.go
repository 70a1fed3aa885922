package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
	"github.com/ersonp/catalog-seed/internal/domain/ports"
)

// DefaultHistoryLimit is the number of runs listed when no limit is given.
const DefaultHistoryLimit = 20

// HistoryHandler lists recorded generation runs.
type HistoryHandler struct {
	ledger ports.RunLedger
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(ledger ports.RunLedger) *HistoryHandler {
	return &HistoryHandler{ledger: ledger}
}

// Handle returns up to limit runs, newest first.
func (h *HistoryHandler) Handle(ctx context.Context, limit int) ([]entities.GenerationRun, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	runs, err := h.ledger.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}
