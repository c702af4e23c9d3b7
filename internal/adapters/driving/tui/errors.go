package tui

import "errors"

// ErrMissingSchemaService is returned when the schema service is not provided.
var ErrMissingSchemaService = errors.New("tui: schema service is required")
