// Package table provides an in-memory tabular view engine: multi-column
// substring filtering, single-column stable sort, pagination, column
// visibility and pinning over an immutable record slice. The engine never
// mutates its records and none of its operations fail; every input is
// clamped or ignored.
package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultPinnedColumnWidth is the fixed per-column width used to compute
// pinned column offsets.
const DefaultPinnedColumnWidth = 200

// Engine owns the derived view state for one record set.
type Engine[T any] struct {
	records []T
	columns []Column[T]
	byID    map[string]int

	pageSize    int
	pinnedWidth int

	state State
}

// View is the currently visible slice plus the counts a renderer needs.
type View[T any] struct {
	Rows          []T `json:"rows"`
	FilteredCount int `json:"filtered_count"`
	TotalCount    int `json:"total_count"`
	Page          int `json:"page"`
	PageCount     int `json:"page_count"`
}

// NewEngine builds an engine over records. The record slice is treated as
// immutable input; columns are fixed for the engine's lifetime.
func NewEngine[T any](records []T, columns []Column[T], pageSize int) *Engine[T] {
	if pageSize < 1 {
		pageSize = 10
	}
	byID := make(map[string]int, len(columns))
	for i, c := range columns {
		byID[c.ID] = i
	}
	return &Engine[T]{
		records:     records,
		columns:     columns,
		byID:        byID,
		pageSize:    pageSize,
		pinnedWidth: DefaultPinnedColumnWidth,
		state:       newState(),
	}
}

// SetPinnedColumnWidth overrides the fixed width used for pin offsets.
func (e *Engine[T]) SetPinnedColumnWidth(w int) {
	if w > 0 {
		e.pinnedWidth = w
	}
}

// State returns a snapshot of the current view state.
func (e *Engine[T]) State() State {
	s := e.state
	s.Filters = make(map[string]string, len(e.state.Filters))
	for k, v := range e.state.Filters {
		s.Filters[k] = v
	}
	s.Visibility = make(map[string]bool, len(e.state.Visibility))
	for k, v := range e.state.Visibility {
		s.Visibility[k] = v
	}
	s.PinnedLeft = append([]string(nil), e.state.PinnedLeft...)
	s.PinnedRight = append([]string(nil), e.state.PinnedRight...)
	return s
}

// SetFilter stores a case-insensitive substring filter for a column. An
// empty token clears the column's filter. Changing filters always resets to
// the first page so the view cannot land on an out-of-range page.
func (e *Engine[T]) SetFilter(columnID, token string) {
	idx, ok := e.byID[columnID]
	if !ok || !e.columns[idx].Filterable {
		return
	}
	if token == "" {
		delete(e.state.Filters, columnID)
	} else {
		e.state.Filters[columnID] = token
	}
	e.state.Page = 1
}

// ClearFilters removes every active filter and resets to the first page.
func (e *Engine[T]) ClearFilters() {
	e.state.Filters = make(map[string]string)
	e.state.Page = 1
}

// SetSort cycles the column through unsorted -> ascending -> descending ->
// unsorted. Sorting a different column replaces the previous sort.
func (e *Engine[T]) SetSort(columnID string) {
	idx, ok := e.byID[columnID]
	if !ok || !e.columns[idx].Sortable {
		return
	}
	if e.state.SortColumn != columnID {
		e.state.SortColumn = columnID
		e.state.SortDir = SortAsc
		return
	}
	switch e.state.SortDir {
	case SortAsc:
		e.state.SortDir = SortDesc
	case SortDesc:
		e.state.SortColumn = ""
		e.state.SortDir = SortNone
	default:
		e.state.SortDir = SortAsc
	}
}

// SortBy sets the sort column and direction directly, bypassing the
// cycle. SortNone clears the sort.
func (e *Engine[T]) SortBy(columnID string, dir SortDirection) {
	idx, ok := e.byID[columnID]
	if !ok || !e.columns[idx].Sortable {
		return
	}
	if dir == SortNone {
		e.state.SortColumn = ""
		e.state.SortDir = SortNone
		return
	}
	e.state.SortColumn = columnID
	e.state.SortDir = dir
}

// SetPage clamps n into [1, PageCount].
func (e *Engine[T]) SetPage(n int) {
	count := e.pageCount(e.filteredCount())
	if n < 1 {
		n = 1
	}
	if n > count {
		n = count
	}
	e.state.Page = n
}

// SetColumnVisibility shows or hides a column.
func (e *Engine[T]) SetColumnVisibility(columnID string, visible bool) {
	if _, ok := e.byID[columnID]; !ok {
		return
	}
	e.state.Visibility[columnID] = visible
}

// SetColumnPin moves a column to a pin side. The column is first removed
// from both sequences, so it appears in at most one of them.
func (e *Engine[T]) SetColumnPin(columnID string, side PinSide) {
	if _, ok := e.byID[columnID]; !ok {
		return
	}
	e.state.PinnedLeft = removeString(e.state.PinnedLeft, columnID)
	e.state.PinnedRight = removeString(e.state.PinnedRight, columnID)
	switch side {
	case PinLeft:
		e.state.PinnedLeft = append(e.state.PinnedLeft, columnID)
	case PinRight:
		e.state.PinnedRight = append(e.state.PinnedRight, columnID)
	}
}

// PinOffset returns the column's pin side and its physical offset,
// index-in-sequence times the fixed column width. Renderers position pinned
// columns with this value; for right-pinned columns it measures from the
// right edge.
func (e *Engine[T]) PinOffset(columnID string) (PinSide, int) {
	for i, id := range e.state.PinnedLeft {
		if id == columnID {
			return PinLeft, i * e.pinnedWidth
		}
	}
	for i, id := range e.state.PinnedRight {
		if id == columnID {
			return PinRight, i * e.pinnedWidth
		}
	}
	return PinNone, 0
}

// IsVisible reports the effective visibility of a column.
func (e *Engine[T]) IsVisible(columnID string) bool {
	if v, ok := e.state.Visibility[columnID]; ok {
		return v
	}
	if idx, ok := e.byID[columnID]; ok {
		return e.columns[idx].Visible
	}
	return false
}

// VisibleColumns returns the visible columns in render order: left-pinned
// first, then unpinned, then right-pinned.
func (e *Engine[T]) VisibleColumns() []Column[T] {
	out := make([]Column[T], 0, len(e.columns))
	appendByID := func(id string) {
		if idx, ok := e.byID[id]; ok && e.IsVisible(id) {
			out = append(out, e.columns[idx])
		}
	}
	for _, id := range e.state.PinnedLeft {
		appendByID(id)
	}
	for _, c := range e.columns {
		if e.pinSide(c.ID) != PinNone {
			continue
		}
		if e.IsVisible(c.ID) {
			out = append(out, c)
		}
	}
	for _, id := range e.state.PinnedRight {
		appendByID(id)
	}
	return out
}

// VisibleSlice applies, in order: all active filters (AND across columns),
// the active sort, and the pagination window. It never fails; a filter
// matching zero rows yields an empty page.
func (e *Engine[T]) VisibleSlice() View[T] {
	filtered := e.filtered()
	e.applySort(filtered)

	pageCount := e.pageCount(len(filtered))
	page := e.state.Page
	if page > pageCount {
		page = pageCount
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * e.pageSize
	end := start + e.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return View[T]{
		Rows:          filtered[start:end],
		FilteredCount: len(filtered),
		TotalCount:    len(e.records),
		Page:          page,
		PageCount:     pageCount,
	}
}

// PageItems returns the windowed pagination items for the current view.
func (e *Engine[T]) PageItems() []int {
	v := e.VisibleSlice()
	return BuildPageItems(v.Page, v.PageCount, 1, 1)
}

func (e *Engine[T]) pinSide(columnID string) PinSide {
	side, _ := e.PinOffset(columnID)
	return side
}

func (e *Engine[T]) filtered() []T {
	if len(e.state.Filters) == 0 {
		out := make([]T, len(e.records))
		copy(out, e.records)
		return out
	}
	out := make([]T, 0, len(e.records))
	for _, rec := range e.records {
		if e.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (e *Engine[T]) matches(rec T) bool {
	for columnID, token := range e.state.Filters {
		idx, ok := e.byID[columnID]
		if !ok {
			continue
		}
		cell := strings.ToLower(valueString(e.columns[idx].value(rec)))
		if !strings.Contains(cell, strings.ToLower(token)) {
			return false
		}
	}
	return true
}

func (e *Engine[T]) filteredCount() int {
	if len(e.state.Filters) == 0 {
		return len(e.records)
	}
	n := 0
	for _, rec := range e.records {
		if e.matches(rec) {
			n++
		}
	}
	return n
}

func (e *Engine[T]) applySort(rows []T) {
	if e.state.SortDir == SortNone || e.state.SortColumn == "" {
		return
	}
	idx, ok := e.byID[e.state.SortColumn]
	if !ok {
		return
	}
	col := e.columns[idx]
	desc := e.state.SortDir == SortDesc
	// Stable: equal keys keep their original relative order.
	sort.SliceStable(rows, func(i, j int) bool {
		c := compareValues(col.value(rows[i]), col.value(rows[j]))
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func (e *Engine[T]) pageCount(filtered int) int {
	count := (filtered + e.pageSize - 1) / e.pageSize
	if count < 1 {
		count = 1
	}
	return count
}

// compareValues orders cell values natively: missing values sort lowest,
// booleans as 0/1, numbers numerically, everything else lexicographically.
func compareValues(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	an, aNum := toNumber(a)
	bn, bNum := toNumber(b)
	if aNum && bNum {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(valueString(a), valueString(b))
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// valueString is the display form used for filtering and lexicographic
// comparison.
func valueString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		if s {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case []string:
		return strings.Join(s, ", ")
	default:
		return fmt.Sprint(v)
	}
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
