package catalog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emontes/prodex"
	"github.com/emontes/prodex/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func render(t *testing.T, records ...*prodex.Record) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, catalog.NewRenderer().Render(&buf, records))
	return buf.String()
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders a card per record with a count header", func(t *testing.T) {
		t.Parallel()

		out := render(t,
			&prodex.Record{URL: "https://a.example.com/1", Title: "Uno", Images: []string{}},
			&prodex.Record{URL: "https://a.example.com/2", Title: "Dos", Images: []string{}},
		)
		assert.Equal(t, 2, strings.Count(out, `class="product-card"`))
		assert.Contains(t, out, "2 producto(s)")
		assert.Contains(t, out, "Uno")
		assert.Contains(t, out, "Dos")
	})

	t.Run("uses the high resolution image as main image", func(t *testing.T) {
		t.Parallel()

		out := render(t, &prodex.Record{
			URL:   "https://a.example.com/1",
			Title: "Foco",
			Images: []string{
				"https://cdn.example.com/foco-image_128.jpg",
				"https://cdn.example.com/foco-image_1024.jpg",
			},
		})
		assert.Contains(t, out, `<img src="https://cdn.example.com/foco-image_1024.jpg" alt="Foco" class="product-image">`)
	})

	t.Run("omits the gallery for a single image", func(t *testing.T) {
		t.Parallel()

		out := render(t, &prodex.Record{
			URL:    "https://a.example.com/1",
			Title:  "Foco",
			Images: []string{"https://cdn.example.com/foco.jpg"},
		})
		assert.NotContains(t, out, "product-image-gallery")
	})

	t.Run("formats the price and marks missing prices", func(t *testing.T) {
		t.Parallel()

		out := render(t,
			&prodex.Record{URL: "https://a.example.com/1", Title: "A", Price: strPtr("1250")},
			&prodex.Record{URL: "https://a.example.com/2", Title: "B"},
		)
		assert.Contains(t, out, "$1.250")
		assert.Contains(t, out, "$No disponible")
	})

	t.Run("joins description lines with line breaks", func(t *testing.T) {
		t.Parallel()

		out := render(t, &prodex.Record{
			URL:         "https://a.example.com/1",
			Title:       "A",
			Description: "Primera línea.\nSegunda línea.",
		})
		assert.Contains(t, out, "Primera línea.")
		assert.Contains(t, out, "<br>Segunda línea.")
	})

	t.Run("marks the description sentinel as unavailable", func(t *testing.T) {
		t.Parallel()

		out := render(t, &prodex.Record{
			URL:         "https://a.example.com/1",
			Title:       "A",
			Description: prodex.DescriptionNotFound,
		})
		assert.Contains(t, out, "<em>Descripción no disponible</em>")
		assert.NotContains(t, out, prodex.DescriptionNotFound)
	})

	t.Run("renders attributes and sorted specification sections", func(t *testing.T) {
		t.Parallel()

		out := render(t, &prodex.Record{
			URL:   "https://a.example.com/1",
			Title: "A",
			Attributes: prodex.Attributes{
				SKU:          "XY-1",
				Categories:   []string{"Hogar"},
				Availability: "En stock",
				Specs: prodex.Specs{
					"Modo de uso":     prodex.SpecText("Presionar el botón."),
					"Características": prodex.SpecList("Recargable"),
				},
			},
		})
		assert.Contains(t, out, "<li>Hogar</li>")
		assert.Contains(t, out, "XY-1")
		assert.Contains(t, out, "En stock")
		assert.Contains(t, out, "<li>Recargable</li>")
		assert.Contains(t, out, "Presionar el botón.")
		assert.Less(t,
			strings.Index(out, "Características"),
			strings.Index(out, "Modo de uso"))
	})

	t.Run("escapes markup in record fields", func(t *testing.T) {
		t.Parallel()

		out := render(t, &prodex.Record{
			URL:         "https://a.example.com/1",
			Title:       `<script>alert("x")</script>`,
			Description: "a <b>bold</b> claim",
		})
		assert.NotContains(t, out, "<script>alert")
		assert.NotContains(t, out, "<b>bold</b>")
	})
}

func TestRenderer_RenderFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalogo.html")
	err := catalog.NewRenderer().RenderFile(path, []*prodex.Record{
		{URL: "https://a.example.com/1", Title: "Uno"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Uno")
}
