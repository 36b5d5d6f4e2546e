package designer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAllKindsTotal(t *testing.T) {
	kinds := []Kind{
		KindText, KindTable, KindPlaceholder, KindHeader, KindFooter,
		KindImage, KindLine, KindRectangle, KindBarcode, KindQRCode,
		KindChart, KindList,
	}
	for _, kind := range kinds {
		el := New(kind, 10, 10)
		el.Content = "content"
		assert.NotNil(t, Render(el, false, false, nil), "kind %s", kind)
		assert.NotNil(t, Render(el, true, true, salesContext()), "kind %s", kind)
	}
}

func TestRenderChartErrorDoesNotPanic(t *testing.T) {
	el := New(KindChart, 0, 0)
	el.Key = "nonexistent"
	assert.NotNil(t, Render(el, false, true, salesContext()))
}

func TestRenderDegenerateInputs(t *testing.T) {
	// zero size, zero series, zero rows: renders something, never panics
	el := New(KindChart, 0, 0)
	el.Style.Width = 0
	el.Style.Height = 0
	el.Key = "empty"
	assert.NotNil(t, Render(el, false, true, map[string]any{"empty": []any{}}))

	pie := New(KindChart, 0, 0)
	pie.Style.ChartType = PieChart
	pie.Key = "empty"
	assert.NotNil(t, Render(pie, false, true, map[string]any{"empty": []any{}}))
}

func TestRenderPage(t *testing.T) {
	doc := sampleDocument()

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, doc, true, salesContext()))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.NotEmpty(t, out)

	// pure inputs, identical output
	var other bytes.Buffer
	require.NoError(t, RenderPage(&other, doc, true, salesContext()))
	assert.Equal(t, out, other.String())
}

func TestPlaceholderText(t *testing.T) {
	el := New(KindPlaceholder, 0, 0)
	el.Key = "customer.name"
	el.Content = "fallback"

	data := map[string]any{"customer": map[string]any{"name": "Acme"}}
	assert.Equal(t, "Acme", placeholderText(el, true, data))
	assert.Equal(t, "{{customer.name}}", placeholderText(el, false, data))
	assert.Equal(t, "{{customer.name}}", placeholderText(el, true, nil))

	el.Key = ""
	assert.Equal(t, "fallback", placeholderText(el, true, data))
}
