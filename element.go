package designer

import (
	"github.com/google/uuid"
)

// Kind identifies the variant of an element placed on the page.
type Kind string

const (
	KindText        Kind = "text"
	KindTable       Kind = "table"
	KindPlaceholder Kind = "placeholder"
	KindHeader      Kind = "header"
	KindFooter      Kind = "footer"
	KindImage       Kind = "image"
	KindLine        Kind = "line"
	KindRectangle   Kind = "rectangle"
	KindBarcode     Kind = "barcode"
	KindQRCode      Kind = "qrcode"
	KindChart       Kind = "chart"
	KindList        Kind = "list"
)

// Column describes one table column: where its cell values come from and how
// the column is presented.
type Column struct {
	ID       string  `json:"id,omitempty"`
	Header   string  `json:"header,omitempty"`
	Accessor string  `json:"accessorKey"`
	Width    float64 `json:"width,omitempty"`
	Align    string  `json:"align,omitempty"`
}

// Series describes one numeric sequence drawn within a chart.
type Series struct {
	ID      string `json:"id,omitempty"`
	DataKey string `json:"dataKey"`
	Label   string `json:"label,omitempty"`
	Color   string `json:"color,omitempty"`
}

// Name returns the label shown in the legend, falling back to the data key.
func (s Series) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return s.DataKey
}

// Element is one positioned visual unit on the designed page. The renderer
// only ever reads it: edits happen in the surrounding editor state.
type Element struct {
	ID      string
	Type    Kind
	X       float64
	Y       float64
	Label   string
	Content string
	Key     string
	Style   Style
	Columns []Column
	Series  []Series
}

const duplicateOffset = 20

// New creates an element of the given kind at a position, with a fresh id.
func New(kind Kind, x, y float64) Element {
	return Element{
		ID:   uuid.NewString(),
		Type: kind,
		X:    x,
		Y:    y,
	}
}

// Duplicate copies the element under a new id, offset so the copy does not
// cover the original. Columns and series are copied, not shared.
func (e Element) Duplicate() Element {
	c := e
	c.ID = uuid.NewString()
	c.X += duplicateOffset
	c.Y += duplicateOffset
	c.Columns = append([]Column(nil), e.Columns...)
	c.Series = append([]Series(nil), e.Series...)
	return c
}

// ActiveSeries returns the series to draw: the configured list, or the single
// default series when none is configured.
func (e Element) ActiveSeries() []Series {
	if len(e.Series) > 0 {
		return e.Series
	}
	return []Series{{DataKey: "value"}}
}

// ActiveColumns returns the columns to draw, defaulting to two generic
// columns when the table has none configured.
func (e Element) ActiveColumns() []Column {
	if len(e.Columns) > 0 {
		return e.Columns
	}
	return []Column{
		{ID: "col1", Header: "Column 1", Accessor: "col1"},
		{ID: "col2", Header: "Column 2", Accessor: "col2"},
	}
}
