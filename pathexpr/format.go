package pathexpr

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Display layout for ISO timestamps. Fixed rather than locale-dependent so
// server output is deterministic.
const dateLayout = "Jan 2, 2006 3:04 PM"

var (
	isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T`)
	markupTag     = regexp.MustCompile(`<[^>]*>`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Format normalizes a resolved value for display. Classifiers run in a
// fixed order: arrays join with ", ", booleans map to Yes/No, date-like
// strings render as a date-time, markup-like strings are stripped of tags,
// everything else uses its natural string conversion.
func Format(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = Format(item)
		}
		return strings.Join(parts, ", ")
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case string:
		if IsDateLike(val) {
			return formatDate(val)
		}
		if IsMarkupLike(val) {
			return StripMarkup(val)
		}
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case map[string]any:
		data, _ := json.Marshal(val)
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}

// IsDateLike reports whether s starts with an ISO-8601 date-time prefix.
func IsDateLike(s string) bool {
	return isoDatePrefix.MatchString(s)
}

// IsMarkupLike reports whether s appears to contain HTML/XML tags.
func IsMarkupLike(s string) bool {
	return markupTag.MatchString(s)
}

// StripMarkup removes tags and collapses whitespace runs to single spaces.
func StripMarkup(s string) string {
	plain := markupTag.ReplaceAllString(s, "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(plain, " "))
}

func formatDate(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format(dateLayout)
}
