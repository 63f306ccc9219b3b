package pathexpr

import "strconv"

// Resolve evaluates the path against a decoded JSON record and returns the
// formatted display value. Resolution hitting a missing field, a null, or
// an out-of-range index short-circuits to "" (or "0" for a length path).
func (p Path) Resolve(record map[string]any) string {
	v, ok := p.eval(record)
	if p.Length {
		if !ok {
			return "0"
		}
		return strconv.Itoa(lengthOf(v))
	}
	if !ok {
		return ""
	}
	return Format(v)
}

// ResolveString parses expr and resolves it in one step; a malformed
// expression resolves like a miss.
func ResolveString(expr string, record map[string]any) string {
	p, err := Parse(expr)
	if err != nil {
		return ""
	}
	return p.Resolve(record)
}

func (p Path) eval(record map[string]any) (any, bool) {
	var cur any = record
	for _, seg := range p.Segments {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, exists := obj[seg.Name]
		if !exists || v == nil {
			return nil, false
		}
		if seg.HasIndex {
			arr, ok := v.([]any)
			if !ok || seg.Index >= len(arr) {
				return nil, false
			}
			v = arr[seg.Index]
			if v == nil {
				return nil, false
			}
		}
		cur = v
	}
	return cur, true
}

func lengthOf(v any) int {
	switch c := v.(type) {
	case []any:
		return len(c)
	case string:
		return len(c)
	case map[string]any:
		return len(c)
	default:
		return 0
	}
}
