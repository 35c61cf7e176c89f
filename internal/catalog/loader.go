package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/validation"
)

// Loader reads the catalog file
type Loader interface {
	Load(path string) (*Catalog, error)
	Parse(data []byte) (*Catalog, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a Loader. An empty schemaPath validates against the embedded catalog schema.
func NewLoader(sv validation.SchemaValidator, schemaPath string) Loader {
	return &loader{
		schemaValidator: sv,
		schemaPath:      schemaPath,
	}
}

// Load reads, validates and indexes a catalog file.
// Every failure wraps domain.ErrCatalogLoad.
func (l *loader) Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgReadCatalogFailed, domain.ErrCatalogLoad, path, err)
	}

	if err := l.validate(data); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgSchemaFailed, domain.ErrCatalogLoad, path, err)
	}

	c, err := l.Parse(data)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgCatalogLoaded,
		LogFieldPath, path,
		LogFieldItems, c.Len(),
		LogFieldCollections, len(c.Collections()),
		LogFieldContainers, c.ContainerCount())
	if c.Len() == 0 {
		slog.Warn(LogMsgCatalogEmpty, LogFieldPath, path)
	}
	return c, nil
}

// Parse decodes and indexes catalog bytes without schema validation
func (l *loader) Parse(data []byte) (*Catalog, error) {
	var items []domain.Skin
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgParseCatalogFailed, domain.ErrCatalogLoad, err)
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogLoad, err)
	}
	return c, nil
}

func (l *loader) validate(data []byte) error {
	if l.schemaValidator == nil {
		return nil
	}
	if l.schemaPath == "" {
		return l.schemaValidator.ValidateCatalog(data)
	}
	return l.schemaValidator.ValidateBytes(data, l.schemaPath)
}
