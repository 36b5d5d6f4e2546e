package designer

import (
	"errors"
	"math"
	"strings"
)

// Binder errors. They are reported on the Binding, not returned: the render
// path turns them into an inline error panel (chart) or mock rows (table).
var (
	ErrKeyNotFound = errors.New("bound key not found in data context")
	ErrNotArray    = errors.New("bound key does not resolve to an array")
)

// Binding is the outcome of matching an element against the data context.
type Binding struct {
	Rows  []map[string]any
	Bound bool
	Err   error
}

// Bind decides whether the element renders real rows from the data context or
// deterministic placeholder rows. Outside preview mode, or without a key, the
// element always gets synthetic rows.
func Bind(el Element, preview bool, data map[string]any) Binding {
	if !preview || el.Key == "" {
		return mockBinding(el)
	}
	v, ok := Resolve(el.Key, data)
	if !ok {
		b := mockBinding(el)
		b.Err = ErrKeyNotFound
		return b
	}
	arr, ok := v.([]any)
	if !ok {
		b := mockBinding(el)
		b.Err = ErrNotArray
		return b
	}
	rows := make([]map[string]any, len(arr))
	for i, item := range arr {
		// Non-object entries keep their slot so row counts stay faithful
		// to the context array; every path lookup on them misses.
		obj, _ := item.(map[string]any)
		rows[i] = obj
	}
	return Binding{Rows: rows, Bound: true}
}

func mockBinding(el Element) Binding {
	if el.Type == KindTable {
		return Binding{Rows: make([]map[string]any, mockTableRows)}
	}
	cfg := el.Style.Chart()
	return Binding{Rows: MockRows(cfg.CategoryKey, el.ActiveSeries())}
}

const mockTableRows = 3

// Fixed category sequences picked by substring match on the category key.
var (
	mockMonths   = []string{"Jan", "Feb", "Mar", "Apr", "May"}
	mockYears    = []string{"2021", "2022", "2023", "2024"}
	mockDays     = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	mockProducts = []string{"Laptop", "Phone", "Tablet", "Monitor", "Camera"}
	mockGeneric  = []string{"Item A", "Item B", "Item C", "Item D", "Item E"}
)

// MockCategories returns the placeholder label sequence for a category key.
func MockCategories(categoryKey string) []string {
	key := strings.ToLower(categoryKey)
	switch {
	case strings.Contains(key, "month"):
		return mockMonths
	case strings.Contains(key, "year"):
		return mockYears
	case strings.Contains(key, "day"):
		return mockDays
	case strings.Contains(key, "product"):
		return mockProducts
	default:
		return mockGeneric
	}
}

// MockRows builds the synthetic rows shown while a chart is unbound: one row
// per placeholder category, one value per series. Values depend only on the
// series data key and the row index, so renaming a key visibly reshapes the
// preview without any randomness.
func MockRows(categoryKey string, series []Series) []map[string]any {
	cats := MockCategories(categoryKey)
	rows := make([]map[string]any, len(cats))
	for i, cat := range cats {
		row := make(map[string]any, len(series)+1)
		setPath(row, categoryKey, cat)
		for _, s := range series {
			setPath(row, s.DataKey, MockValue(s.DataKey, i))
		}
		rows[i] = row
	}
	return rows
}

// MockValue is the deterministic placeholder value for one series cell: the
// byte sum of the data key seeds a sine wave sampled at the row index, scaled
// into [20, 100].
func MockValue(dataKey string, idx int) float64 {
	var seed int
	for _, b := range []byte(dataKey) {
		seed += int(b)
	}
	return math.Round(60 + 40*math.Sin(float64(seed)+1.7*float64(idx)))
}

// setPath writes a value at a dotted path, creating intermediate objects, so
// that mock rows resolve through the same resolver as bound rows.
func setPath(row map[string]any, path string, v any) {
	if path == "" {
		return
	}
	parts := strings.Split(path, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := row[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			row[part] = next
		}
		row = next
	}
	row[parts[len(parts)-1]] = v
}
