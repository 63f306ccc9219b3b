package table

// SortDirection cycles unsorted -> ascending -> descending -> unsorted.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "none"
	}
}

// PinSide places a column at a fixed horizontal position.
type PinSide int

const (
	PinNone PinSide = iota
	PinLeft
	PinRight
)

func (s PinSide) String() string {
	switch s {
	case PinLeft:
		return "left"
	case PinRight:
		return "right"
	default:
		return "none"
	}
}

// State is the full session-scoped view state of an engine. It is owned by
// the engine and mutated only through the engine's operations.
type State struct {
	// Filters maps column id to the active filter token. Setting an empty
	// token removes the entry.
	Filters map[string]string

	// Single active sort column; SortColumn is empty when unsorted.
	SortColumn string
	SortDir    SortDirection

	// Page is 1-based and always clamped into the valid range.
	Page int

	// Visibility overrides per column id; absent entries fall back to the
	// column's default visibility.
	Visibility map[string]bool

	// A column id appears in at most one of the two pin sequences.
	PinnedLeft  []string
	PinnedRight []string
}

func newState() State {
	return State{
		Filters:    make(map[string]string),
		Page:       1,
		Visibility: make(map[string]bool),
	}
}
