// Package pathexpr parses and evaluates dotted path expressions over
// JSON-shaped records. The grammar is closed: segments separated by '.',
// each segment a field name with an optional [index] suffix, plus an
// optional trailing ".length" meaning "count of the collection at this
// path". Resolution never fails at runtime; missing values degrade to an
// empty string (or zero for length paths).
package pathexpr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrEmptyPath = errors.New("empty path expression")

// Segment is one step of a parsed path: a field name, optionally followed
// by an array index.
type Segment struct {
	Name     string
	Index    int
	HasIndex bool
}

// Path is a parsed path expression.
type Path struct {
	raw      string
	Segments []Segment
	// Length is set for a trailing ".length": the path resolves to the
	// element count of the collection it addresses.
	Length bool
}

func (p Path) String() string { return p.raw }

// Parse parses a path expression into its typed form. It rejects empty
// expressions, empty segments, and malformed index suffixes.
func Parse(expr string) (Path, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Path{}, ErrEmptyPath
	}

	parts := strings.Split(trimmed, ".")
	path := Path{raw: trimmed}

	if len(parts) > 1 && parts[len(parts)-1] == "length" {
		path.Length = true
		parts = parts[:len(parts)-1]
	}

	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return Path{}, fmt.Errorf("invalid path %q: %w", trimmed, err)
		}
		path.Segments = append(path.Segments, seg)
	}
	return path, nil
}

func parseSegment(part string) (Segment, error) {
	if part == "" {
		return Segment{}, errors.New("empty segment")
	}

	open := strings.IndexByte(part, '[')
	if open == -1 {
		if strings.ContainsAny(part, "[]") {
			return Segment{}, fmt.Errorf("stray bracket in segment %q", part)
		}
		return Segment{Name: part}, nil
	}

	if open == 0 {
		return Segment{}, fmt.Errorf("segment %q has no field name", part)
	}
	if !strings.HasSuffix(part, "]") {
		return Segment{}, fmt.Errorf("unterminated index in segment %q", part)
	}

	name := part[:open]
	idxStr := part[open+1 : len(part)-1]
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 {
		return Segment{}, fmt.Errorf("bad index %q in segment %q", idxStr, part)
	}
	return Segment{Name: name, Index: idx, HasIndex: true}, nil
}
