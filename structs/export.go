package structs

// FieldMapping binds one output column of a custom export to a product path
// expression. The path may be empty (the column is intentionally blank for
// every row); the label may not.
type FieldMapping struct {
	Label string `json:"label" validate:"required"`
	Path  string `json:"path"`
}
