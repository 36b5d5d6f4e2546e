package designer

// ChartType selects the geometry family of a chart element.
type ChartType string

const (
	BarChart  ChartType = "bar"
	LineChart ChartType = "line"
	PieChart  ChartType = "pie"
)

// LegendPosition places the legend band relative to the chart area.
type LegendPosition string

const (
	LegendTop    LegendPosition = "top"
	LegendBottom LegendPosition = "bottom"
	LegendLeft   LegendPosition = "left"
	LegendRight  LegendPosition = "right"
)

// Vertical reports whether the legend stacks its entries top to bottom.
func (p LegendPosition) Vertical() bool {
	return p == LegendLeft || p == LegendRight
}

// Style is the flat, sparse configuration bag persisted with an element.
// Unset fields fall back to defaults at render time, never at storage time.
// Booleans whose default is true are pointers so that "unset" and "false"
// stay distinct on disk.
type Style struct {
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Color      string  `json:"color,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`

	ChartType      ChartType      `json:"chartType,omitempty"`
	CategoryKey    string         `json:"chartCategoryKey,omitempty"`
	ShowLegend     *bool          `json:"chartShowLegend,omitempty"`
	ShowGrid       *bool          `json:"chartShowGrid,omitempty"`
	ShowDataLabels bool           `json:"chartShowDataLabels,omitempty"`
	ShowTotal      bool           `json:"chartShowTotal,omitempty"`
	LegendPosition LegendPosition `json:"chartLegendPosition,omitempty"`

	TableStriped  bool   `json:"tableStriped,omitempty"`
	TableShowGrid *bool  `json:"tableShowGrid,omitempty"`
	TableRowBg    string `json:"tableRowBg,omitempty"`
	TableStripe   string `json:"tableStripeColor,omitempty"`
	TableHeaderBg string `json:"tableHeaderBg,omitempty"`
	TableBorder   string `json:"tableBorderColor,omitempty"`
}

// Render-time defaults for unset style fields.
const (
	defaultChartWidth  = 360.0
	defaultChartHeight = 240.0
	defaultTableWidth  = 360.0
	defaultTableHeight = 160.0
	defaultCategoryKey = "label"
	defaultFontFamily  = "Helvetica, Arial, sans-serif"

	defaultRowBg    = "#ffffff"
	defaultStripeBg = "#f3f4f6"
	defaultHeaderBg = "#e5e7eb"
	defaultBorder   = "#d1d5db"
)

// ChartConfig is the fully resolved chart configuration used by the layout
// and geometry code. Every field has a concrete value.
type ChartConfig struct {
	Type           ChartType
	CategoryKey    string
	ShowLegend     bool
	ShowGrid       bool
	ShowDataLabels bool
	ShowTotal      bool
	LegendPosition LegendPosition
	Width          float64
	Height         float64
	FontFamily     string
}

// TableConfig is the fully resolved table configuration.
type TableConfig struct {
	Width      float64
	Height     float64
	Striped    bool
	ShowGrid   bool
	RowBg      string
	StripeBg   string
	HeaderBg   string
	Border     string
	FontFamily string
}

// Chart resolves the style into a chart configuration, applying defaults.
func (s Style) Chart() ChartConfig {
	cfg := ChartConfig{
		Type:           s.ChartType,
		CategoryKey:    s.CategoryKey,
		ShowLegend:     orDefault(s.ShowLegend, true),
		ShowGrid:       orDefault(s.ShowGrid, true),
		ShowDataLabels: s.ShowDataLabels,
		ShowTotal:      s.ShowTotal,
		LegendPosition: s.LegendPosition,
		Width:          s.Width,
		Height:         s.Height,
		FontFamily:     s.FontFamily,
	}
	if cfg.Type == "" {
		cfg.Type = BarChart
	}
	if cfg.CategoryKey == "" {
		cfg.CategoryKey = defaultCategoryKey
	}
	if cfg.LegendPosition == "" {
		cfg.LegendPosition = LegendBottom
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultChartWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultChartHeight
	}
	if cfg.FontFamily == "" {
		cfg.FontFamily = defaultFontFamily
	}
	return cfg
}

// Table resolves the style into a table configuration, applying defaults.
func (s Style) Table() TableConfig {
	cfg := TableConfig{
		Width:      s.Width,
		Height:     s.Height,
		Striped:    s.TableStriped,
		ShowGrid:   orDefault(s.TableShowGrid, true),
		RowBg:      s.TableRowBg,
		StripeBg:   s.TableStripe,
		HeaderBg:   s.TableHeaderBg,
		Border:     s.TableBorder,
		FontFamily: s.FontFamily,
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultTableWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultTableHeight
	}
	if cfg.RowBg == "" {
		cfg.RowBg = defaultRowBg
	}
	if cfg.StripeBg == "" {
		cfg.StripeBg = defaultStripeBg
	}
	if cfg.HeaderBg == "" {
		cfg.HeaderBg = defaultHeaderBg
	}
	if cfg.Border == "" {
		cfg.Border = defaultBorder
	}
	if cfg.FontFamily == "" {
		cfg.FontFamily = defaultFontFamily
	}
	return cfg
}

func orDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
