package designer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartElement() Element {
	el := New(KindChart, 0, 0)
	el.Series = []Series{{DataKey: "revenue", Label: "Revenue"}}
	return el
}

func TestMockCategories(t *testing.T) {
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May"}, MockCategories("month"))
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May"}, MockCategories("sales_month"))
	assert.Equal(t, []string{"2021", "2022", "2023", "2024"}, MockCategories("year"))
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, MockCategories("weekday"))
	assert.Equal(t, []string{"Laptop", "Phone", "Tablet", "Monitor", "Camera"}, MockCategories("product"))
	assert.Equal(t, []string{"Item A", "Item B", "Item C", "Item D", "Item E"}, MockCategories("label"))
	assert.Equal(t, []string{"Item A", "Item B", "Item C", "Item D", "Item E"}, MockCategories(""))
}

func TestMockValueDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, MockValue("revenue", i), MockValue("revenue", i))
	}
}

func TestMockValueRange(t *testing.T) {
	keys := []string{"revenue", "cost", "profit", "value", "a.b.c"}
	for _, key := range keys {
		for i := 0; i < 10; i++ {
			v := MockValue(key, i)
			assert.GreaterOrEqual(t, v, 20.0, "key %q idx %d", key, i)
			assert.LessOrEqual(t, v, 100.0, "key %q idx %d", key, i)
		}
	}
}

// Renaming a bound key must visibly change the preview: two keys may collide
// on a single index after rounding, but never across the whole series.
func TestMockValueVariesWithKey(t *testing.T) {
	var a, b []float64
	for i := 0; i < 5; i++ {
		a = append(a, MockValue("revenue", i))
		b = append(b, MockValue("cost", i))
	}
	assert.NotEqual(t, a, b)
}

func TestBindEditMode(t *testing.T) {
	el := chartElement()
	el.Key = "monthly_sales"
	el.Style.CategoryKey = "month"

	data := map[string]any{
		"monthly_sales": []any{map[string]any{"month": "Jun", "revenue": 1.0}},
	}

	// previewMode=false ignores the key entirely
	b := Bind(el, false, data)
	require.NoError(t, b.Err)
	assert.False(t, b.Bound)
	require.Len(t, b.Rows, 5)
	assert.Equal(t, "Jan", ResolveLabel("month", b.Rows[0]))
	assert.Equal(t, "May", ResolveLabel("month", b.Rows[4]))
	assert.Equal(t, MockValue("revenue", 2), ResolveNumber("revenue", b.Rows[2]))
}

func TestBindEditModeDeterministic(t *testing.T) {
	el := chartElement()
	el.Style.CategoryKey = "month"

	fst := Bind(el, false, nil)
	lst := Bind(el, false, nil)
	assert.Equal(t, fst, lst)
}

func TestBindPreview(t *testing.T) {
	el := chartElement()
	el.Key = "monthly_sales"

	rows := []any{
		map[string]any{"month": "Jan", "revenue": 12000.0},
		map[string]any{"month": "Feb", "revenue": 15000.0},
	}
	b := Bind(el, true, map[string]any{"monthly_sales": rows})
	require.NoError(t, b.Err)
	assert.True(t, b.Bound)
	require.Len(t, b.Rows, 2)
	assert.Equal(t, 15000.0, ResolveNumber("revenue", b.Rows[1]))
}

func TestBindPreviewKeyNotFound(t *testing.T) {
	el := chartElement()
	el.Key = "nonexistent"

	b := Bind(el, true, map[string]any{"sales": []any{}})
	assert.ErrorIs(t, b.Err, ErrKeyNotFound)
	assert.False(t, b.Bound)
	assert.NotEmpty(t, b.Rows) // synthetic fallback stays renderable
}

func TestBindPreviewNotArray(t *testing.T) {
	el := chartElement()
	el.Key = "total"

	b := Bind(el, true, map[string]any{"total": 42.0})
	assert.ErrorIs(t, b.Err, ErrNotArray)
	assert.False(t, b.Bound)
}

func TestBindPreviewWithoutKey(t *testing.T) {
	el := chartElement()
	b := Bind(el, true, map[string]any{"anything": []any{}})
	require.NoError(t, b.Err)
	assert.False(t, b.Bound)
	assert.Len(t, b.Rows, 5)
}

func TestBindNonObjectRowsKeepTheirSlot(t *testing.T) {
	el := chartElement()
	el.Key = "values"

	b := Bind(el, true, map[string]any{"values": []any{1.0, "two", map[string]any{"revenue": 3.0}}})
	require.NoError(t, b.Err)
	require.Len(t, b.Rows, 3)
	assert.Equal(t, 0.0, ResolveNumber("revenue", b.Rows[0]))
	assert.Equal(t, 3.0, ResolveNumber("revenue", b.Rows[2]))
}

func TestBindTableMockRows(t *testing.T) {
	el := New(KindTable, 0, 0)
	el.Columns = []Column{{Accessor: "name"}}

	b := Bind(el, false, nil)
	assert.False(t, b.Bound)
	assert.Len(t, b.Rows, 3)
}

func TestMockRowsNestedKeys(t *testing.T) {
	rows := MockRows("stats.month", []Series{{DataKey: "stats.revenue"}})
	require.Len(t, rows, 5)
	assert.Equal(t, "Jan", ResolveLabel("stats.month", rows[0]))
	assert.Equal(t, MockValue("stats.revenue", 0), ResolveNumber("stats.revenue", rows[0]))
}
