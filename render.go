package designer

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
	"golang.org/x/sync/errgroup"
)

const FontSize = 12.0

const (
	pieMargin    = 10.0
	donutRatio   = 0.55
	markerRadius = 3.0
	swatchSize   = 10.0
	legendStep   = FontSize * 1.4
)

// Render produces the visual tree of one element. It is a pure function of
// its inputs: the same element, mode and context always yield the same tree.
// Selection chrome is a dashed outline; the editor draws its handles on top.
func Render(el Element, selected, preview bool, data map[string]any) svg.Element {
	var g svg.Group
	g.Id = el.ID
	g.Class = append(g.Class, string(el.Type))
	g.Transform = svg.Translate(el.X, el.Y)

	w, h := elementSize(el)
	switch el.Type {
	case KindChart:
		b := Bind(el, preview, data)
		lay := ComputeLayout(el, b.Rows, el.ActiveSeries())
		g.Append(renderChart(el, BuildChart(el, b, lay)))
	case KindTable:
		g.Append(renderTable(BuildTable(el, Bind(el, preview, data))))
	case KindText, KindHeader, KindFooter:
		g.Append(textAt(el.Content, 0, FontSize, "start"))
	case KindPlaceholder:
		g.Append(textAt(placeholderText(el, preview, data), 0, FontSize, "start"))
	case KindLine:
		li := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(w, 0))
		li.Stroke = svg.NewStroke(elementColor(el), 1)
		g.Append(li.AsElement())
	case KindRectangle:
		var rec svg.Rect
		rec.Dim = svg.NewDim(w, h)
		rec.Fill = svg.NewFill(elementColor(el))
		g.Append(rec.AsElement())
	default:
		g.Append(framedLabel(el, w, h))
	}

	if selected {
		g.Append(outline(w, h))
	}
	return g.AsElement()
}

// RenderPage composes every element of the document into one SVG at page
// size. Each element render is pure, so they run concurrently and are
// stitched back in element order.
func RenderPage(w io.Writer, doc Document, preview bool, data map[string]any) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(doc.Width, doc.Height)

	var bg svg.Rect
	bg.Dim = svg.NewDim(doc.Width, doc.Height)
	bg.Fill = svg.NewFill("white")
	el.Append(bg.AsElement())

	var (
		grp   errgroup.Group
		parts = make([]svg.Element, len(doc.Elements))
	)
	for i, e := range doc.Elements {
		grp.Go(func() error {
			parts[i] = Render(e, false, preview, data)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	for _, p := range parts {
		el.Append(p)
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
	return nil
}

func renderChart(el Element, shapes ChartShapes) svg.Element {
	var (
		cfg = el.Style.Chart()
		lay = shapes.Layout
		g   svg.Group
	)
	g.Class = append(g.Class, "chart", string(shapes.Type))

	if shapes.Err != nil {
		return errorPanel(cfg, shapes.ErrKey)
	}

	if lay.HasTitle {
		title := textAt(el.Content, lay.Title.X+lay.Title.W/2, lay.Title.Y+FontSize*1.2, "middle")
		g.Append(title)
	}

	switch shapes.Type {
	case PieChart:
		g.Append(renderPie(shapes, lay))
	default:
		g.Append(renderGrid(shapes, lay))
		g.Append(renderAxes(lay))
		if shapes.Type == LineChart {
			g.Append(renderLines(shapes))
		} else {
			g.Append(renderBars(shapes))
		}
		g.Append(renderCategories(shapes, lay))
		if shapes.ShowTotal {
			badge := textAt("Total: "+formatValue(shapes.Total), lay.Frame.Right()-4, lay.Frame.Y+FontSize, "end")
			g.Append(badge)
		}
	}

	if len(shapes.Legend) > 0 {
		g.Append(renderLegend(shapes.Legend, lay.Legend, cfg.LegendPosition))
	}
	return g.AsElement()
}

func renderBars(shapes ChartShapes) svg.Element {
	var g svg.Group
	g.Class = append(g.Class, "bars")
	for _, bar := range shapes.Bars {
		var rec svg.Rect
		rec.Pos = svg.NewPos(bar.X, bar.Y)
		rec.Dim = svg.NewDim(bar.W, bar.H)
		rec.Fill = svg.NewFill(bar.Color)
		g.Append(rec.AsElement())
		if bar.Label != "" {
			g.Append(textAt(bar.Label, bar.X+bar.W/2, bar.Y-2, "middle"))
		}
	}
	return g.AsElement()
}

func renderLines(shapes ChartShapes) svg.Element {
	var g svg.Group
	g.Class = append(g.Class, "lines")
	for _, line := range shapes.Lines {
		if len(line.Points) == 0 {
			continue
		}
		var (
			sub svg.Group
			pat svg.Path
		)
		sub.Id = line.Label
		sub.Fill = svg.NewFill(line.Color)
		sub.Stroke = svg.NewStroke(line.Color, 1)

		pat.Rendering = "geometricPrecision"
		pat.Stroke = svg.NewStroke(line.Color, 2)
		pat.Fill = svg.NewFill("none")

		fst := slices.Fst(line.Points)
		pat.AbsMoveTo(svg.NewPos(fst.X, fst.Y))
		for _, pt := range slices.Rest(line.Points) {
			pat.AbsLineTo(svg.NewPos(pt.X, pt.Y))
		}
		sub.Append(pat.AsElement())

		for _, pt := range line.Points {
			var el svg.Circle
			el.Pos = svg.NewPos(pt.X, pt.Y)
			el.Radius = markerRadius
			el.Fill = svg.NewFill(line.Color)
			sub.Append(el.AsElement())
		}
		g.Append(sub.AsElement())
	}
	return g.AsElement()
}

func renderPie(shapes ChartShapes, lay Layout) svg.Element {
	var (
		cx     = lay.Frame.X + lay.Frame.W/2
		cy     = lay.Frame.Y + lay.Frame.H/2
		radius = math.Min(lay.Frame.W, lay.Frame.H)/2 - pieMargin
		grp    svg.Group
	)
	grp.Class = append(grp.Class, "pie")
	grp.Transform = svg.Translate(cx, cy)
	if radius < 1 {
		radius = 1
	}

	if shapes.NoData {
		grp.Append(textAt("No Data", 0, 0, "middle"))
		return grp.AsElement()
	}

	for _, wd := range shapes.Wedges {
		var pat svg.Path
		pat.Rendering = "geometricPrecision"
		pat.Fill = svg.NewFill(wd.Color)

		pat.AbsMoveTo(svg.NewPos(0, 0))
		pat.AbsLineTo(posFromAngle(wd.Start, radius))
		pat.AbsArcTo(posFromAngle(wd.Start+wd.Sweep, radius), radius, radius, 0, wd.Sweep > math.Pi, true)
		pat.ClosePath()
		grp.Append(pat.AsElement())
	}

	if shapes.ShowTotal {
		var hole svg.Circle
		hole.Radius = radius * donutRatio
		hole.Fill = svg.NewFill("white")
		grp.Append(hole.AsElement())
		grp.Append(textAt(formatValue(shapes.Total), 0, FontSize/2, "middle"))
	}
	return grp.AsElement()
}

func renderGrid(shapes ChartShapes, lay Layout) svg.Element {
	var g svg.Group
	g.Class = append(g.Class, "grid")
	for _, line := range shapes.Grid {
		li := svg.NewLine(svg.NewPos(lay.Plot.X, line.Y), svg.NewPos(lay.Plot.Right(), line.Y))
		li.Stroke = svg.NewStroke("black", 1)
		li.Stroke.Opacity = 0.1
		g.Append(li.AsElement())

		tick := textAt(line.Label, lay.Plot.X-4, line.Y+FontSize*0.35, "end")
		g.Append(tick)
	}
	return g.AsElement()
}

// renderAxes draws the two origin axis lines.
func renderAxes(lay Layout) svg.Element {
	var g svg.Group
	g.Class = append(g.Class, "axis")

	left := svg.NewLine(svg.NewPos(lay.Plot.X, lay.Plot.Y), svg.NewPos(lay.Plot.X, lay.Plot.Bottom()))
	left.Stroke = svg.NewStroke("black", 1)
	g.Append(left.AsElement())

	bottom := svg.NewLine(svg.NewPos(lay.Plot.X, lay.Plot.Bottom()), svg.NewPos(lay.Plot.Right(), lay.Plot.Bottom()))
	bottom.Stroke = svg.NewStroke("black", 1)
	g.Append(bottom.AsElement())
	return g.AsElement()
}

func renderCategories(shapes ChartShapes, lay Layout) svg.Element {
	var g svg.Group
	g.Class = append(g.Class, "categories")
	for i, label := range shapes.Categories {
		if label == "" {
			continue
		}
		x := lay.Plot.X + lay.X.Center(i)
		g.Append(textAt(label, x, lay.Plot.Bottom()+FontSize*1.2, "middle"))
	}
	return g.AsElement()
}

func renderLegend(entries []LegendEntry, area Rect, pos LegendPosition) svg.Element {
	var g svg.Group
	g.Class = append(g.Class, "legend")
	g.Transform = svg.Translate(area.X+4, area.Y+4)

	var step float64
	if !pos.Vertical() && len(entries) > 0 {
		step = area.W / float64(len(entries))
	}
	for i, e := range entries {
		var item svg.Group
		if pos.Vertical() {
			item.Transform = svg.Translate(0, float64(i)*legendStep)
		} else {
			item.Transform = svg.Translate(float64(i)*step, 0)
		}

		var sw svg.Rect
		sw.Dim = svg.NewDim(swatchSize, swatchSize)
		sw.Fill = svg.NewFill(e.Color)
		item.Append(sw.AsElement())

		tx := svg.NewText(e.Label)
		tx.Pos = svg.NewPos(swatchSize+4, swatchSize-1)
		tx.Font = svg.NewFont(FontSize)
		tx.Anchor = "start"
		item.Append(tx.AsElement())

		g.Append(item.AsElement())
	}
	return g.AsElement()
}

func renderTable(shapes TableShapes) svg.Element {
	var (
		cfg = shapes.Config
		g   svg.Group
	)
	g.Class = append(g.Class, "table")

	var head svg.Rect
	head.Dim = svg.NewDim(cfg.Width, tableHeaderBand)
	head.Fill = svg.NewFill(cfg.HeaderBg)
	g.Append(head.AsElement())
	for _, cell := range shapes.Header {
		g.Append(cellLabel(cell))
	}

	for _, row := range shapes.Rows {
		if len(row.Cells) == 0 {
			continue
		}
		var bg svg.Rect
		fst := slices.Fst(row.Cells)
		bg.Pos = svg.NewPos(fst.X, fst.Y)
		bg.Dim = svg.NewDim(cfg.Width, fst.H)
		bg.Fill = svg.NewFill(row.Bg)
		g.Append(bg.AsElement())

		for _, cell := range row.Cells {
			g.Append(cellLabel(cell))
			if cfg.ShowGrid {
				g.Append(cellBorder(cell, cfg.Border))
			}
		}
	}
	return g.AsElement()
}

func cellLabel(cell TableCell) svg.Element {
	var (
		x      = cell.X + 4
		anchor = "start"
	)
	switch cell.Align {
	case "right":
		x = cell.Right() - 4
		anchor = "end"
	case "center":
		x = cell.X + cell.W/2
		anchor = "middle"
	}
	return textAt(cell.Text, x, cell.Y+cell.H/2+FontSize*0.35, anchor)
}

// cellBorder draws the right and bottom edge of a cell; the header band and
// the table frame close the remaining sides.
func cellBorder(cell TableCell, color string) svg.Element {
	var g svg.Group
	right := svg.NewLine(svg.NewPos(cell.Right(), cell.Y), svg.NewPos(cell.Right(), cell.Bottom()))
	right.Stroke = svg.NewStroke(color, 1)
	g.Append(right.AsElement())

	bottom := svg.NewLine(svg.NewPos(cell.X, cell.Bottom()), svg.NewPos(cell.Right(), cell.Bottom()))
	bottom.Stroke = svg.NewStroke(color, 1)
	g.Append(bottom.AsElement())
	return g.AsElement()
}

// errorPanel replaces the chart geometry when bound data is unusable,
// naming the offending key.
func errorPanel(cfg ChartConfig, key string) svg.Element {
	var g svg.Group
	g.Class = append(g.Class, "chart-error")

	var rec svg.Rect
	rec.Dim = svg.NewDim(cfg.Width, cfg.Height)
	rec.Fill = svg.NewFill("#fee2e2")
	g.Append(rec.AsElement())

	g.Append(textAt("Data Error", cfg.Width/2, cfg.Height/2-FontSize/2, "middle"))
	g.Append(textAt("key: "+key, cfg.Width/2, cfg.Height/2+FontSize, "middle"))
	return g.AsElement()
}

func placeholderText(el Element, preview bool, data map[string]any) string {
	if preview && el.Key != "" {
		if v, ok := Resolve(el.Key, data); ok {
			return toLabel(v)
		}
	}
	if el.Key != "" {
		return "{{" + el.Key + "}}"
	}
	return el.Content
}

func framedLabel(el Element, w, h float64) svg.Element {
	var g svg.Group
	var rec svg.Rect
	rec.Dim = svg.NewDim(w, h)
	rec.Fill = svg.NewFill("#f9fafb")
	g.Append(rec.AsElement())

	label := el.Label
	if label == "" {
		label = string(el.Type)
	}
	g.Append(textAt(label, w/2, h/2+FontSize*0.35, "middle"))
	return g.AsElement()
}

func outline(w, h float64) svg.Element {
	var g svg.Group
	g.Class = append(g.Class, "selected")
	edges := [][4]float64{
		{0, 0, w, 0},
		{w, 0, w, h},
		{w, h, 0, h},
		{0, h, 0, 0},
	}
	for _, e := range edges {
		li := svg.NewLine(svg.NewPos(e[0], e[1]), svg.NewPos(e[2], e[3]))
		li.Stroke = svg.NewStroke("#3b82f6", 1)
		li.Stroke.DashArray = []int{4}
		g.Append(li.AsElement())
	}
	return g.AsElement()
}

func textAt(str string, x, y float64, anchor string) svg.Element {
	tx := svg.NewText(str)
	tx.Pos = svg.NewPos(x, y)
	tx.Font = svg.NewFont(FontSize)
	tx.Anchor = anchor
	return tx.AsElement()
}

func posFromAngle(angle, radius float64) svg.Pos {
	var (
		x = radius * math.Cos(angle)
		y = radius * math.Sin(angle)
	)
	return svg.NewPos(x, y)
}

func elementSize(el Element) (float64, float64) {
	switch el.Type {
	case KindTable:
		cfg := el.Style.Table()
		return cfg.Width, cfg.Height
	case KindChart:
		cfg := el.Style.Chart()
		return cfg.Width, cfg.Height
	default:
		w, h := el.Style.Width, el.Style.Height
		if w <= 0 {
			w = 120
		}
		if h <= 0 {
			h = 40
		}
		return w, h
	}
}

func elementColor(el Element) string {
	if el.Style.Color != "" {
		return el.Style.Color
	}
	return "#111827"
}
