package designer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableElement() Element {
	el := New(KindTable, 0, 0)
	el.Columns = []Column{
		{ID: "name", Header: "Name", Accessor: "name"},
		{ID: "qty", Header: "Qty", Accessor: "qty", Align: "right"},
	}
	return el
}

func TestBuildTableUnbound(t *testing.T) {
	el := New(KindTable, 0, 0)
	el.Columns = []Column{{Accessor: "name"}}

	shapes := BuildTable(el, Bind(el, false, nil))
	assert.False(t, shapes.Bound)
	require.Len(t, shapes.Rows, 3)
	for _, row := range shapes.Rows {
		require.Len(t, row.Cells, 1)
		assert.Equal(t, "[name]", row.Cells[0].Text)
	}
	// header falls back to the accessor key
	require.Len(t, shapes.Header, 1)
	assert.Equal(t, "name", shapes.Header[0].Text)
}

func TestBuildTableBound(t *testing.T) {
	el := tableElement()
	el.Key = "items"

	data := map[string]any{"items": []any{
		map[string]any{"name": "Widget", "qty": 3.0},
		map[string]any{"name": "Gadget"},
	}}
	shapes := BuildTable(el, Bind(el, true, data))
	assert.True(t, shapes.Bound)
	require.Len(t, shapes.Rows, 2)

	assert.Equal(t, "Widget", shapes.Rows[0].Cells[0].Text)
	assert.Equal(t, "3", shapes.Rows[0].Cells[1].Text)
	// missing cell renders empty, not a placeholder marker
	assert.Equal(t, "", shapes.Rows[1].Cells[1].Text)
}

func TestBuildTableNotArrayFallsBackToMock(t *testing.T) {
	el := tableElement()
	el.Key = "items"

	b := Bind(el, true, map[string]any{"items": "not an array"})
	assert.ErrorIs(t, b.Err, ErrNotArray)

	shapes := BuildTable(el, b)
	assert.False(t, shapes.Bound)
	require.Len(t, shapes.Rows, 3)
	assert.Equal(t, "[name]", shapes.Rows[0].Cells[0].Text)
}

func TestBuildTableStriping(t *testing.T) {
	el := tableElement()
	el.Style.TableStriped = true

	shapes := BuildTable(el, Bind(el, false, nil))
	cfg := el.Style.Table()
	require.Len(t, shapes.Rows, 3)
	assert.Equal(t, cfg.RowBg, shapes.Rows[0].Bg)
	assert.Equal(t, cfg.StripeBg, shapes.Rows[1].Bg)
	assert.Equal(t, cfg.RowBg, shapes.Rows[2].Bg)

	el.Style.TableStriped = false
	shapes = BuildTable(el, Bind(el, false, nil))
	assert.Equal(t, cfg.RowBg, shapes.Rows[1].Bg)
}

func TestBuildTableDefaultColumns(t *testing.T) {
	el := New(KindTable, 0, 0)
	shapes := BuildTable(el, Bind(el, false, nil))
	require.Len(t, shapes.Header, 2)
	assert.Equal(t, "Column 1", shapes.Header[0].Text)
	assert.Equal(t, "[col2]", shapes.Rows[0].Cells[1].Text)
}

func TestColumnWidths(t *testing.T) {
	cols := []Column{
		{Accessor: "a", Width: 100},
		{Accessor: "b"},
		{Accessor: "c"},
	}
	widths := columnWidths(cols, 300)
	assert.Equal(t, []float64{100, 100, 100}, widths)

	// all fixed: leftover split never applies
	cols = []Column{{Accessor: "a", Width: 50}, {Accessor: "b", Width: 70}}
	assert.Equal(t, []float64{50, 70}, columnWidths(cols, 300))
}

func TestBuildTableGeometry(t *testing.T) {
	el := tableElement()
	el.Style.Width = 300
	el.Style.Height = 148

	shapes := BuildTable(el, Bind(el, false, nil))
	require.Len(t, shapes.Rows, 3)

	rowHeight := (148 - tableHeaderBand) / 3
	fst := shapes.Rows[0].Cells[0]
	assert.InDelta(t, tableHeaderBand, fst.Y, 1e-9)
	assert.InDelta(t, rowHeight, fst.H, 1e-9)
	assert.InDelta(t, 150.0, fst.W, 1e-9)

	snd := shapes.Rows[1].Cells[1]
	assert.InDelta(t, tableHeaderBand+rowHeight, snd.Y, 1e-9)
	assert.InDelta(t, 150.0, snd.X, 1e-9)
}
