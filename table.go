package designer

const tableHeaderBand = 28.0

// TableCell is one laid-out cell with its display text.
type TableCell struct {
	Rect
	Text  string
	Align string
}

// TableRow is one data row with its resolved background.
type TableRow struct {
	Bg    string
	Cells []TableCell
}

// TableShapes is the laid-out grid for one table element.
type TableShapes struct {
	Config TableConfig
	Bound  bool
	Header []TableCell
	Rows   []TableRow
}

// BuildTable lays out the column grid for an element's rows. Bound rows
// resolve each column accessor per row; unbound rows render the bracketed
// accessor marker so mock cells read differently from bound empty values.
func BuildTable(el Element, b Binding) TableShapes {
	var (
		cfg    = el.Style.Table()
		cols   = el.ActiveColumns()
		shapes = TableShapes{Config: cfg, Bound: b.Bound}
		widths = columnWidths(cols, cfg.Width)
	)

	var x float64
	for i, col := range cols {
		shapes.Header = append(shapes.Header, TableCell{
			Rect:  Rect{X: x, Y: 0, W: widths[i], H: tableHeaderBand},
			Text:  headerText(col),
			Align: col.Align,
		})
		x += widths[i]
	}

	nrows := len(b.Rows)
	if nrows == 0 {
		nrows = 1
	}
	rowHeight := (cfg.Height - tableHeaderBand) / float64(nrows)
	if rowHeight < 1 {
		rowHeight = 1
	}

	for i, row := range b.Rows {
		tr := TableRow{Bg: cfg.RowBg}
		if cfg.Striped && i%2 == 1 {
			tr.Bg = cfg.StripeBg
		}
		var (
			x float64
			y = tableHeaderBand + float64(i)*rowHeight
		)
		for j, col := range cols {
			tr.Cells = append(tr.Cells, TableCell{
				Rect:  Rect{X: x, Y: y, W: widths[j], H: rowHeight},
				Text:  cellText(col, row, b.Bound),
				Align: col.Align,
			})
			x += widths[j]
		}
		shapes.Rows = append(shapes.Rows, tr)
	}
	return shapes
}

func cellText(col Column, row map[string]any, bound bool) string {
	if !bound {
		return "[" + col.Accessor + "]"
	}
	return ResolveLabel(col.Accessor, row)
}

func headerText(col Column) string {
	if col.Header != "" {
		return col.Header
	}
	return col.Accessor
}

// columnWidths honors configured widths and splits the leftover evenly
// across the rest.
func columnWidths(cols []Column, total float64) []float64 {
	var (
		widths = make([]float64, len(cols))
		fixed  float64
		free   int
	)
	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			fixed += col.Width
		} else {
			free++
		}
	}
	if free > 0 {
		share := (total - fixed) / float64(free)
		if share < 1 {
			share = 1
		}
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}
