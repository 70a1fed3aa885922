package parsers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
	"github.com/ersonp/catalog-seed/internal/domain/services"
)

// Loader reads a directory of category files. It implements ports.CatalogSource.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new catalog loader.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("loader")}
}

// Load reads every recognized file in dir, in lexicographic filename order.
// Files with the wrong shape contribute nothing. A file that fails to parse
// aborts the load with a *ParseError.
func (l *Loader) Load(dir string) (*entities.Catalog, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory: %w", err)
	}

	catalog := &entities.Catalog{}
	seenTypes := make(map[entities.MediaType]bool)

	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		parser := ForFile(name)
		if parser == nil {
			continue
		}

		doc, err := l.parseFile(filepath.Join(dir, name), parser)
		if err != nil {
			return nil, &ParseError{File: name, Err: err}
		}
		if !doc.Shaped() {
			l.logger.Debug("skipping file without a category sequence", zap.String("file", name))
			continue
		}

		mediaType := services.MediaTypeFor(doc.Category)
		if !seenTypes[mediaType] {
			seenTypes[mediaType] = true
			catalog.Types = append(catalog.Types, mediaType)
		}

		for _, item := range doc.Items {
			catalog.Records = append(catalog.Records, entities.CatalogRecord{
				MediaType:  mediaType,
				Category:   doc.Category,
				SourceFile: name,
				Fields:     item,
			})
		}

		l.logger.Debug("loaded catalog file",
			zap.String("file", name),
			zap.String("category", doc.Category),
			zap.String("media_type", string(mediaType)),
			zap.Int("items", len(doc.Items)),
		)
	}

	return catalog, nil
}

func (l *Loader) parseFile(path string, parser Parser) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	doc, err := parser.Parse(file)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("parser returned no document")
	}
	return doc, nil
}
