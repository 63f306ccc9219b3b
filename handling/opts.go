package handling

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vivekrai1999/shopspy/table"
)

// TableOptions carries the table state a request asks for. Zero values
// mean "leave the default alone".
type TableOptions struct {
	Filters    map[string]string
	SortColumn string
	SortDir    table.SortDirection
	Page       int
	PageSize   int
	Hide       []string
	Show       []string
	PinLeft    []string
	PinRight   []string
}

// filterPrefix marks per-column filter query parameters, e.g.
// filter.vendor=acme.
const filterPrefix = "filter."

// maxPageSize bounds client-requested page sizes.
const maxPageSize = 250

// ParseTableOptions parses HTTP query parameters into table view options.
//
//	filter.<column>=<token>   substring filter per column
//	sort=<column>:<asc|desc>  sort order
//	page=<n>                  1-based page number
//	page_size=<n>             rows per page, capped at maxPageSize
//	hide=<col,col>            hide columns
//	show=<col,col>            show columns
//	pin_left=<col,col>        pin columns to the left edge
//	pin_right=<col,col>       pin columns to the right edge
func ParseTableOptions(r *http.Request) (*TableOptions, error) {
	query := r.URL.Query()
	opts := &TableOptions{Filters: map[string]string{}}

	for key, values := range query {
		if !strings.HasPrefix(key, filterPrefix) || len(values) == 0 {
			continue
		}
		column := strings.TrimPrefix(key, filterPrefix)
		if column == "" {
			return nil, fmt.Errorf("filter parameter is missing a column name")
		}
		opts.Filters[column] = values[0]
	}

	if sort := query.Get("sort"); sort != "" {
		column, dir, err := parseSort(sort)
		if err != nil {
			return nil, err
		}
		opts.SortColumn = column
		opts.SortDir = dir
	}

	if page := query.Get("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid page %q", page)
		}
		opts.Page = n
	}

	if size := query.Get("page_size"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil || n < 1 || n > maxPageSize {
			return nil, fmt.Errorf("invalid page_size %q", size)
		}
		opts.PageSize = n
	}

	opts.Hide = splitAndTrim(query.Get("hide"))
	opts.Show = splitAndTrim(query.Get("show"))
	opts.PinLeft = splitAndTrim(query.Get("pin_left"))
	opts.PinRight = splitAndTrim(query.Get("pin_right"))

	return opts, nil
}

// parseSort splits "column:direction"; direction defaults to ascending.
func parseSort(s string) (string, table.SortDirection, error) {
	column, dir, found := strings.Cut(s, ":")
	if column == "" {
		return "", table.SortNone, fmt.Errorf("sort parameter is missing a column name")
	}
	if !found || dir == "" {
		return column, table.SortAsc, nil
	}

	switch strings.ToLower(dir) {
	case "asc":
		return column, table.SortAsc, nil
	case "desc":
		return column, table.SortDesc, nil
	case "none":
		return column, table.SortNone, nil
	default:
		return "", table.SortNone, fmt.Errorf("invalid sort direction %q", dir)
	}
}

// ParseIDList parses the ids query parameter into a selection of source
// product ids. An absent parameter yields nil, meaning the full catalog.
func ParseIDList(r *http.Request) ([]int64, error) {
	raw := r.URL.Query().Get("ids")
	if raw == "" {
		return nil, nil
	}

	parts := splitAndTrim(raw)
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty elements.
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
