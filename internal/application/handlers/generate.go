// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
	"github.com/ersonp/catalog-seed/internal/domain/ports"
	"github.com/ersonp/catalog-seed/internal/domain/services"
)

// GenerateHandler turns a catalog directory into a bootstrap SQL script.
type GenerateHandler struct {
	source   ports.CatalogSource
	renderer ports.ScriptRenderer
	hasher   ports.PasswordHasher
	ledger   ports.RunLedger
	service  *services.CatalogService
	logger   *zap.Logger
}

// NewGenerateHandler creates a new generate handler. ledger may be nil.
func NewGenerateHandler(
	source ports.CatalogSource,
	renderer ports.ScriptRenderer,
	hasher ports.PasswordHasher,
	ledger ports.RunLedger,
	logger *zap.Logger,
) *GenerateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateHandler{
		source:   source,
		renderer: renderer,
		hasher:   hasher,
		ledger:   ledger,
		service:  services.NewCatalogService(),
		logger:   logger.Named("generate"),
	}
}

// GenerateOptions controls a generation run.
type GenerateOptions struct {
	DataDir      string
	OutputPath   string
	PasswordHash string
	Users        []entities.SeedUser
}

// GenerateResult contains the result of a generation run.
type GenerateResult struct {
	OutputPath string
	MediaCount int
	Types      []entities.MediaType
	Lists      int
	Dropped    int
	Duplicates int
	Checksum   string
	// Unchanged is true when the previous recorded run wrote identical bytes.
	Unchanged bool
	RunID     string
}

// Handle loads, normalizes, renders and writes the script.
func (h *GenerateHandler) Handle(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	if err := h.hasher.Validate(opts.PasswordHash); err != nil {
		return nil, fmt.Errorf("validating password hash: %w", err)
	}

	catalog, err := h.source.Load(opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	built := h.service.Build(catalog)
	if built.Dropped > 0 {
		h.logger.Debug("dropped items without a title", zap.Int("count", built.Dropped))
	}
	for _, dup := range built.Duplicates {
		h.logger.Warn("external id produced by more than one file; database keeps the first",
			zap.String("external_id", dup.ExternalID),
			zap.String("first_file", dup.FirstFile),
			zap.String("file", dup.SourceFile),
		)
	}

	script := h.service.Script(built, opts.Users, opts.PasswordHash)
	data, err := h.renderer.Render(script)
	if err != nil {
		return nil, fmt.Errorf("rendering script: %w", err)
	}

	if err := writeFileAtomic(opts.OutputPath, data); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	result := &GenerateResult{
		OutputPath: opts.OutputPath,
		MediaCount: len(built.Media),
		Types:      built.Types,
		Lists:      len(script.Lists),
		Dropped:    built.Dropped,
		Duplicates: len(built.Duplicates),
		Checksum:   hex.EncodeToString(sum[:]),
	}

	h.record(ctx, result)

	h.logger.Info("script generated",
		zap.String("output", result.OutputPath),
		zap.Int("media", result.MediaCount),
		zap.Int("lists", result.Lists),
		zap.String("checksum", result.Checksum),
	)
	return result, nil
}

// record stores the run in the ledger. The script is already on disk, so
// ledger failures are only logged.
func (h *GenerateHandler) record(ctx context.Context, result *GenerateResult) {
	if h.ledger == nil {
		return
	}

	previous, err := h.ledger.LatestRun(ctx, result.OutputPath)
	if err != nil {
		h.logger.Warn("reading generation history", zap.Error(err))
	} else if previous != nil {
		result.Unchanged = previous.Checksum == result.Checksum
		if result.Unchanged {
			h.logger.Debug("output identical to previous run", zap.String("previous_run", previous.ID))
		} else {
			h.logger.Info("output differs from previous run",
				zap.String("previous_run", previous.ID),
				zap.String("previous_checksum", previous.Checksum),
			)
		}
	}

	run := &entities.GenerationRun{
		OutputPath: result.OutputPath,
		Checksum:   result.Checksum,
		MediaCount: result.MediaCount,
		MediaTypes: result.Types,
	}
	if err := h.ledger.SaveRun(ctx, run); err != nil {
		h.logger.Warn("recording generation run", zap.Error(err))
		return
	}
	result.RunID = run.ID
}

// writeFileAtomic writes data to a temp file beside path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("setting output permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing output: %w", err)
	}
	return nil
}
