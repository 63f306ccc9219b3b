package table

// Column describes one table column: how to read its value off a record and
// how the renderer should treat it. Columns are created once per engine and
// never mutated afterwards.
type Column[T any] struct {
	ID    string
	Label string

	// Value resolves the cell value for a record. A nil accessor yields an
	// empty cell for every row.
	Value func(T) any

	// Visible is the default visibility; the engine's visibility state
	// overrides it per session.
	Visible bool

	Width    int
	MinWidth int
	MaxWidth int

	Sortable   bool
	Filterable bool
}

func (c *Column[T]) value(record T) any {
	if c.Value == nil {
		return nil
	}
	return c.Value(record)
}
