package designer

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is one designed page: a fixed-size canvas plus its elements in
// z-order (headers and footers first, the rest as placed).
type Document struct {
	Name     string
	Width    float64
	Height   float64
	Elements []Element
}

const (
	defaultPageWidth  = 794.0
	defaultPageHeight = 1123.0
)

// Wire shape of a persisted element:
// {id, type, position: {x, y}, properties: {label, content, key, style, columns, series}}.
type elementJSON struct {
	ID       string       `json:"id"`
	Type     Kind         `json:"type"`
	Position positionJSON `json:"position"`
	Props    propsJSON    `json:"properties"`
}

type positionJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type propsJSON struct {
	Label   string   `json:"label,omitempty"`
	Content string   `json:"content,omitempty"`
	Key     string   `json:"key,omitempty"`
	Style   Style    `json:"style"`
	Columns []Column `json:"columns,omitempty"`
	Series  []Series `json:"series,omitempty"`
}

type documentJSON struct {
	Name     string        `json:"name,omitempty"`
	Width    float64       `json:"width,omitempty"`
	Height   float64       `json:"height,omitempty"`
	Elements []elementJSON `json:"elements"`
}

func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(elementJSON{
		ID:       e.ID,
		Type:     e.Type,
		Position: positionJSON{X: e.X, Y: e.Y},
		Props: propsJSON{
			Label:   e.Label,
			Content: e.Content,
			Key:     e.Key,
			Style:   e.Style,
			Columns: e.Columns,
			Series:  e.Series,
		},
	})
}

func (e *Element) UnmarshalJSON(data []byte) error {
	var w elementJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = Element{
		ID:      w.ID,
		Type:    w.Type,
		X:       w.Position.X,
		Y:       w.Position.Y,
		Label:   w.Props.Label,
		Content: w.Props.Content,
		Key:     w.Props.Key,
		Style:   w.Props.Style,
		Columns: w.Props.Columns,
		Series:  w.Props.Series,
	}
	return nil
}

// DecodeDocument reads a persisted page. Elements with no id are imports
// from hand-written files and get one minted.
func DecodeDocument(r io.Reader) (Document, error) {
	var (
		w   documentJSON
		doc Document
	)
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return doc, fmt.Errorf("decode document: %w", err)
	}
	doc = Document{
		Name:   w.Name,
		Width:  w.Width,
		Height: w.Height,
	}
	if doc.Width <= 0 {
		doc.Width = defaultPageWidth
	}
	if doc.Height <= 0 {
		doc.Height = defaultPageHeight
	}
	for _, el := range w.Elements {
		e := Element{
			ID:      el.ID,
			Type:    el.Type,
			X:       el.Position.X,
			Y:       el.Position.Y,
			Label:   el.Props.Label,
			Content: el.Props.Content,
			Key:     el.Props.Key,
			Style:   el.Props.Style,
			Columns: el.Props.Columns,
			Series:  el.Props.Series,
		}
		if e.ID == "" {
			e.ID = New(e.Type, e.X, e.Y).ID
		}
		doc.Elements = append(doc.Elements, e)
	}
	return doc, nil
}

// Encode writes the document in its persisted shape.
func (d Document) Encode(w io.Writer) error {
	out := documentJSON{
		Name:   d.Name,
		Width:  d.Width,
		Height: d.Height,
	}
	for _, el := range d.Elements {
		out.Elements = append(out.Elements, elementJSON{
			ID:       el.ID,
			Type:     el.Type,
			Position: positionJSON{X: el.X, Y: el.Y},
			Props: propsJSON{
				Label:   el.Label,
				Content: el.Content,
				Key:     el.Key,
				Style:   el.Style,
				Columns: el.Columns,
				Series:  el.Series,
			},
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// DecodeContext parses an external data context. Invalid JSON is reported to
// the caller; the rendering core itself never sees an invalid context.
func DecodeContext(r io.Reader) (map[string]any, error) {
	var ctx map[string]any
	if err := json.NewDecoder(r).Decode(&ctx); err != nil {
		return nil, fmt.Errorf("decode data context: %w", err)
	}
	return ctx, nil
}
