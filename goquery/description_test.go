package goquery_test

import (
	"testing"

	"github.com/emontes/prodex"
	"github.com/stretchr/testify/assert"
)

func TestExtractDescription(t *testing.T) {
	t.Parallel()

	t.Run("accepts a semantic container with significant text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="product-description">Dispensador eléctrico recargable para botellones de hasta 20 litros.</div>
		</body></html>`

		rec := extract(t, html)
		assert.Equal(t, "Dispensador eléctrico recargable para botellones de hasta 20 litros.", rec.Description)
		assert.NotEmpty(t, rec.DescriptionHTML)
	})

	t.Run("skips containers below the significance threshold", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="product-description">Ver más</div>
			<div itemprop="description">Una descripción alternativa con suficiente contenido textual.</div>
		</body></html>`

		rec := extract(t, html)
		assert.Equal(t, "Una descripción alternativa con suficiente contenido textual.", rec.Description)
	})

	t.Run("joins block children with newlines", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="product-details"><p>Primera parte de la descripción del artículo.</p><p>Segunda parte.</p></div></body></html>`

		rec := extract(t, html)
		assert.Equal(t, "Primera parte de la descripción del artículo.\nSegunda parte.", rec.Description)
	})

	t.Run("paragraph scan keeps long boilerplate-free paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<p>Corto.</p>
			<p>Este dispensador de agua cuenta con una bomba eléctrica recargable por USB.</p>
			<p>Compatible con botellones estándar de diez y veinte litros de capacidad.</p>
		</body></html>`

		rec := extract(t, html)
		assert.Equal(t,
			"Este dispensador de agua cuenta con una bomba eléctrica recargable por USB.\n\n"+
				"Compatible con botellones estándar de diez y veinte litros de capacidad.",
			rec.Description)
	})

	t.Run("never selects blocklisted boilerplate paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<p>Copyright 2024 All Rights Reserved, this site uses cookies extensively for tracking</p>
		</body></html>`

		rec := extract(t, html)
		assert.Equal(t, prodex.DescriptionNotFound, rec.Description)
	})

	t.Run("falls back to divs with descriptive class names", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="item-detail-block">Contenido descriptivo del artículo con el largo suficiente para calificar.</div>
		</body></html>`

		rec := extract(t, html)
		assert.Equal(t, "Contenido descriptivo del artículo con el largo suficiente para calificar.", rec.Description)
	})

	t.Run("collects inner paragraphs of product sections", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<section class="product-main">
				<p>corto</p>
				<p>Párrafo interno con información del producto.</p>
			</section>
		</body></html>`

		rec := extract(t, html)
		assert.Equal(t, "Párrafo interno con información del producto.", rec.Description)
	})

	t.Run("falls back to the meta description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<meta name="description" content="Descripción del producto desde el encabezado de la página.">
		</head><body><span>nada</span></body></html>`

		rec := extract(t, html)
		assert.Equal(t, "Descripción del producto desde el encabezado de la página.", rec.Description)
		assert.Empty(t, rec.DescriptionHTML)
	})

	t.Run("last resort scans lines following the heading", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div>
			<h1>Producto Fantástico</h1>
			<span>corto</span>
			<span>Una línea suficientemente larga que describe el producto en detalle.</span>
		</div></body></html>`

		rec := extract(t, html)
		assert.Equal(t, "Una línea suficientemente larga que describe el producto en detalle.", rec.Description)
	})

	t.Run("returns sentinel when every step fails", func(t *testing.T) {
		t.Parallel()

		rec := extract(t, `<html><body><span>x</span></body></html>`)
		assert.Equal(t, prodex.DescriptionNotFound, rec.Description)
	})
}
