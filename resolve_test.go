package designer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	root := map[string]any{
		"name": "Acme",
		"customer": map[string]any{
			"address": map[string]any{
				"city": "Lyon",
			},
			"orders": []any{1.0, 2.0},
		},
		"empty": nil,
	}

	v, ok := Resolve("name", root)
	assert.True(t, ok)
	assert.Equal(t, "Acme", v)

	v, ok = Resolve("customer.address.city", root)
	assert.True(t, ok)
	assert.Equal(t, "Lyon", v)

	v, ok = Resolve("customer.orders", root)
	assert.True(t, ok)
	assert.Equal(t, []any{1.0, 2.0}, v)
}

func TestResolveMissing(t *testing.T) {
	root := map[string]any{
		"customer": map[string]any{
			"name": "Acme",
		},
		"empty": nil,
	}

	cases := []string{
		"",
		"missing",
		"customer.missing",
		"customer.name.deeper",
		"empty",
		"empty.anything",
		"customer.name.0",
	}
	for _, path := range cases {
		_, ok := Resolve(path, root)
		assert.False(t, ok, "path %q should not resolve", path)
	}

	_, ok := Resolve("anything", nil)
	assert.False(t, ok)
}

func TestResolveNumber(t *testing.T) {
	row := map[string]any{
		"qty":   3.0,
		"price": "12.5",
		"name":  "widget",
		"nested": map[string]any{
			"value": 7.0,
		},
	}

	assert.Equal(t, 3.0, ResolveNumber("qty", row))
	assert.Equal(t, 12.5, ResolveNumber("price", row))
	assert.Equal(t, 7.0, ResolveNumber("nested.value", row))
	assert.Equal(t, 0.0, ResolveNumber("name", row))
	assert.Equal(t, 0.0, ResolveNumber("missing", row))
	assert.Equal(t, 0.0, ResolveNumber("qty", nil))
}

func TestResolveLabel(t *testing.T) {
	row := map[string]any{
		"month": "Jan",
		"count": 4.0,
		"flag":  true,
	}

	assert.Equal(t, "Jan", ResolveLabel("month", row))
	assert.Equal(t, "4", ResolveLabel("count", row))
	assert.Equal(t, "true", ResolveLabel("flag", row))
	assert.Equal(t, "", ResolveLabel("missing", row))
}
