package catalog

// Error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file %s: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgSchemaFailed       = "schema validation failed for %s: %w"
	ErrMsgDuplicateID        = "duplicate skin id %d at index %d"
	ErrMsgEmptyName          = "skin at index %d has an empty name"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
	LogMsgCatalogEmpty  = "Catalog is empty, lookups will not match"
)

// Log fields
const (
	LogFieldPath        = "path"
	LogFieldItems       = "items"
	LogFieldCollections = "collections"
	LogFieldContainers  = "containers"
)
