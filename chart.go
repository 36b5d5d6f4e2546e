package designer

import (
	"math"
	"strconv"
)

// Shape primitives emitted by the geometry engine. The SVG mapping consumes
// them as-is, so tests can assert on geometry without parsing markup.

// Bar is one rectangle of a bar chart, anchored to the plot baseline.
type Bar struct {
	Row   int
	Serie int
	Rect
	Color string
	Value float64
	Label string
}

// LinePoint is one vertex of a series polyline, with a circular marker.
type LinePoint struct {
	X     float64
	Y     float64
	Value float64
}

// Line is one series polyline through the row slot centers.
type Line struct {
	Serie  int
	Color  string
	Label  string
	Points []LinePoint
}

// Wedge is one pie slice. Angles are radians, drawn clockwise from 0 in row
// order; sweeps of all wedges sum to 2*pi when the total is positive.
type Wedge struct {
	Row   int
	Start float64
	Sweep float64
	Color string
	Label string
	Value float64
}

// GridLine is one horizontal reference line with its rounded tick label.
type GridLine struct {
	Y     float64
	Value float64
	Label string
}

// LegendEntry is one swatch + label pair.
type LegendEntry struct {
	Color string
	Label string
}

// ChartShapes is everything the geometry engine derived for one chart
// element. Exactly one of Bars, Lines or Wedges is populated, matching the
// chart type; Err flags the inline error panel instead of any geometry.
type ChartShapes struct {
	Type   ChartType
	Layout Layout

	Bars       []Bar
	Lines      []Line
	Wedges     []Wedge
	Grid       []GridLine
	Legend     []LegendEntry
	Categories []string // x-axis labels, one per row, bar/line only

	Total     float64
	ShowTotal bool
	NoData    bool
	Err       error
	ErrKey    string
}

// BuildChart turns bound rows, series definitions and the computed layout
// into concrete shapes. Rows are processed in data order and series in
// definition order; both orders fix bar offsets and pie start angles.
func BuildChart(el Element, b Binding, lay Layout) ChartShapes {
	var (
		cfg    = el.Style.Chart()
		series = el.ActiveSeries()
		shapes = ChartShapes{Type: cfg.Type, Layout: lay}
	)
	if b.Err != nil {
		shapes.Err = b.Err
		shapes.ErrKey = el.Key
		return shapes
	}

	switch cfg.Type {
	case PieChart:
		buildPie(&shapes, cfg, b.Rows, series)
	case LineChart:
		buildLines(&shapes, cfg, b.Rows, series, lay)
	default:
		buildBars(&shapes, cfg, b.Rows, series, lay)
	}

	if cfg.Type != PieChart {
		if cfg.ShowGrid {
			shapes.Grid = gridLines(lay)
		}
		for _, row := range b.Rows {
			shapes.Categories = append(shapes.Categories, ResolveLabel(cfg.CategoryKey, row))
		}
		shapes.Total = grandTotal(b.Rows, series)
		shapes.ShowTotal = cfg.ShowTotal
	}
	if cfg.ShowLegend {
		shapes.Legend = legendEntries(cfg, b.Rows, series)
	}
	return shapes
}

func buildBars(shapes *ChartShapes, cfg ChartConfig, rows []map[string]any, series []Series, lay Layout) {
	for i, row := range rows {
		for j, s := range series {
			var (
				v = ResolveNumber(s.DataKey, row)
				h = lay.Y.Height(v)
			)
			bar := Bar{
				Row:   i,
				Serie: j,
				Rect: Rect{
					X: lay.Plot.X + lay.BarX(i, j),
					Y: lay.Plot.Y + lay.Plot.H - h,
					W: lay.BarWidth,
					H: h,
				},
				Color: serieColor(s, j),
				Value: v,
			}
			if cfg.ShowDataLabels {
				bar.Label = formatValue(v)
			}
			shapes.Bars = append(shapes.Bars, bar)
		}
	}
}

func buildLines(shapes *ChartShapes, cfg ChartConfig, rows []map[string]any, series []Series, lay Layout) {
	for j, s := range series {
		line := Line{
			Serie: j,
			Color: serieColor(s, j),
			Label: s.Name(),
		}
		for i, row := range rows {
			v := ResolveNumber(s.DataKey, row)
			line.Points = append(line.Points, LinePoint{
				X:     lay.Plot.X + lay.X.Center(i),
				Y:     lay.Plot.Y + lay.Y.Scale(v),
				Value: v,
			})
		}
		shapes.Lines = append(shapes.Lines, line)
	}
}

// buildPie uses only the first series; additional configured series are
// ignored. Rows with value <= 0 render nothing and consume no angle.
func buildPie(shapes *ChartShapes, cfg ChartConfig, rows []map[string]any, series []Series) {
	var (
		first = series[0]
		total float64
	)
	for _, row := range rows {
		if v := ResolveNumber(first.DataKey, row); v > 0 {
			total += v
		}
	}
	shapes.Total = total
	shapes.ShowTotal = cfg.ShowTotal
	if total == 0 {
		shapes.NoData = true
		return
	}
	var angle float64
	for i, row := range rows {
		v := ResolveNumber(first.DataKey, row)
		if v <= 0 {
			continue
		}
		sweep := v / total * 2 * math.Pi
		shapes.Wedges = append(shapes.Wedges, Wedge{
			Row:   i,
			Start: angle,
			Sweep: sweep,
			Color: Category10.Pick(i),
			Label: ResolveLabel(cfg.CategoryKey, row),
			Value: v,
		})
		angle += sweep
	}
}

// gridLines spaces 5 reference lines over the domain, baseline included.
func gridLines(lay Layout) []GridLine {
	lines := make([]GridLine, 0, gridSteps+1)
	for i := 0; i <= gridSteps; i++ {
		v := lay.DomainMax * float64(i) / gridSteps
		lines = append(lines, GridLine{
			Y:     lay.Plot.Y + lay.Y.Scale(v),
			Value: v,
			Label: formatTick(v),
		})
	}
	return lines
}

// legendEntries is one entry per series for bar/line charts, one per row for
// pie charts.
func legendEntries(cfg ChartConfig, rows []map[string]any, series []Series) []LegendEntry {
	if cfg.Type == PieChart {
		entries := make([]LegendEntry, 0, len(rows))
		for i, row := range rows {
			label := ResolveLabel(cfg.CategoryKey, row)
			if label == "" {
				label = "Slice " + strconv.Itoa(i+1)
			}
			entries = append(entries, LegendEntry{
				Color: Category10.Pick(i),
				Label: label,
			})
		}
		return entries
	}
	entries := make([]LegendEntry, 0, len(series))
	for j, s := range series {
		entries = append(entries, LegendEntry{
			Color: serieColor(s, j),
			Label: s.Name(),
		})
	}
	return entries
}

func grandTotal(rows []map[string]any, series []Series) float64 {
	var total float64
	for _, row := range rows {
		for _, s := range series {
			total += ResolveNumber(s.DataKey, row)
		}
	}
	return total
}

func serieColor(s Series, idx int) string {
	if s.Color != "" {
		return s.Color
	}
	return Category10.Pick(idx)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTick(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}
