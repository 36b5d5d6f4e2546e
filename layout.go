package designer

// Padding is the space kept free around a drawing region.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Rect is an axis-aligned region in element-local pixel coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

const (
	titleBand    = 24.0
	legendWidth  = 100.0
	legendHeight = 40.0

	domainFloor    = 10.0
	domainHeadroom = 1.1

	groupInset  = 0.15
	barFraction = 0.7

	gridSteps = 4
)

// Axis/tick padding applied inside the chart frame for bar and line charts.
var plotPadding = Padding{
	Top:    20,
	Right:  10,
	Bottom: 25,
	Left:   30,
}

// Layout is the geometric budget of one chart element: where the title,
// legend and plot live, how tall the value domain is, and how bar groups
// divide the plot width.
type Layout struct {
	DomainMax float64

	Frame  Rect // chart region before axis padding
	Plot   Rect // drawing region for bars, lines and grid
	Legend Rect
	Title  Rect

	HasTitle  bool
	HasLegend bool

	GroupWidth float64
	BarWidth   float64

	X CategoryScaler
	Y ValueScaler
}

// ComputeLayout splits the element's pixel box between title band, legend
// band and plot, and fixes the numeric domain from the resolved rows. Every
// division guards against zero row or series counts.
func ComputeLayout(el Element, rows []map[string]any, series []Series) Layout {
	var (
		cfg = el.Style.Chart()
		lay = Layout{DomainMax: domainMax(rows, series)}
		box = Rect{W: cfg.Width, H: cfg.Height}
	)

	if el.Content != "" {
		lay.HasTitle = true
		lay.Title = Rect{X: box.X, Y: box.Y, W: box.W, H: titleBand}
		box.Y += titleBand
		box.H -= titleBand
	}
	if cfg.ShowLegend {
		lay.HasLegend = true
		switch cfg.LegendPosition {
		case LegendLeft:
			lay.Legend = Rect{X: box.X, Y: box.Y, W: legendWidth, H: box.H}
			box.X += legendWidth
			box.W -= legendWidth
		case LegendRight:
			lay.Legend = Rect{X: box.Right() - legendWidth, Y: box.Y, W: legendWidth, H: box.H}
			box.W -= legendWidth
		case LegendTop:
			lay.Legend = Rect{X: box.X, Y: box.Y, W: box.W, H: legendHeight}
			box.Y += legendHeight
			box.H -= legendHeight
		default:
			lay.Legend = Rect{X: box.X, Y: box.Bottom() - legendHeight, W: box.W, H: legendHeight}
			box.H -= legendHeight
		}
	}
	lay.Frame = box

	lay.Plot = box
	if cfg.Type != PieChart {
		lay.Plot = Rect{
			X: box.X + plotPadding.Left,
			Y: box.Y + plotPadding.Top,
			W: box.W - plotPadding.Horizontal(),
			H: box.H - plotPadding.Vertical(),
		}
	}
	if lay.Plot.W < 1 {
		lay.Plot.W = 1
	}
	if lay.Plot.H < 1 {
		lay.Plot.H = 1
	}

	nrows := len(rows)
	if nrows == 0 {
		nrows = 1
	}
	nseries := len(series)
	if nseries == 0 {
		nseries = 1
	}
	lay.GroupWidth = lay.Plot.W / float64(nrows)
	lay.BarWidth = lay.GroupWidth * barFraction / float64(nseries)

	lay.X = NewCategoryScaler(nrows, NewRange(0, lay.Plot.W))
	lay.Y = NewValueScaler(lay.DomainMax, NewRange(0, lay.Plot.H))
	return lay
}

// domainMax is the padded top of the value axis: the largest resolved value
// across all rows and series, floored at 10, with 10% headroom.
func domainMax(rows []map[string]any, series []Series) float64 {
	max := domainFloor
	for _, row := range rows {
		for _, s := range series {
			if v := ResolveNumber(s.DataKey, row); v > max {
				max = v
			}
		}
	}
	return max * domainHeadroom
}

// BarX returns the left edge of the bar for a row and series slot. Bars of a
// group sit contiguously, starting at the group's inset.
func (l Layout) BarX(row, serie int) float64 {
	return l.X.Scale(row) + l.GroupWidth*groupInset + float64(serie)*l.BarWidth
}
