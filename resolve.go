package designer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Resolve walks a dotted path through a decoded JSON object. Each segment is
// a literal property name: there is no array indexing and no escaping. A
// missing or non-object intermediate yields ok=false, never a panic.
func Resolve(path string, root map[string]any) (any, bool) {
	if path == "" || root == nil {
		return nil, false
	}
	var (
		cur any = root
		ok  bool
	)
	for _, part := range strings.Split(path, ".") {
		obj, isObj := cur.(map[string]any)
		if !isObj {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// ResolveNumber resolves a path to a number for aggregation. Missing paths,
// non-numeric values and NaN all coerce to 0 so that one bad cell never
// aborts the rows and series around it.
func ResolveNumber(path string, row map[string]any) float64 {
	v, ok := Resolve(path, row)
	if !ok {
		return 0
	}
	return toNumber(v)
}

// ResolveLabel resolves a path to a display string, empty when missing.
func ResolveLabel(path string, row map[string]any) string {
	v, ok := Resolve(path, row)
	if !ok {
		return ""
	}
	return toLabel(v)
}

func toNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

func toLabel(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", x)
	}
}
