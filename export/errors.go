package export

import "errors"

// Codec errors. Every codec validates before building any row; resolution
// misses inside a row never error, they degrade to empty values.
var (
	// ErrNoProducts is returned when the source record list is empty.
	ErrNoProducts = errors.New("no products to export")

	// ErrNoMappings is returned when a custom export has no field mappings.
	ErrNoMappings = errors.New("no field mappings provided")

	// ErrMissingFieldName is returned when a custom mapping has a blank
	// output column label. A blank path is allowed; a blank label is not.
	ErrMissingFieldName = errors.New("missing field name in mapping")
)
