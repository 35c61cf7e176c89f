package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SkinBot_Go/internal/catalog"
	"github.com/osse101/SkinBot_Go/internal/config"
	"github.com/osse101/SkinBot_Go/internal/validation"
)

// LoadCatalog validates and loads the skin catalog. Any failure is fatal to startup.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	sv, err := validation.NewSchemaValidator()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSchema, err)
	}

	c, err := catalog.NewLoader(sv, cfg.CatalogSchemaPath).Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgCatalogLoaded,
		"path", cfg.CatalogPath,
		"items", c.Len(),
		"containers", c.ContainerCount(),
		"collections", len(c.Collections()))
	return c, nil
}
