package goquery_test

import (
	"testing"

	"github.com/emontes/prodex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSpecs(t *testing.T) {
	t.Parallel()

	t.Run("keyword heading with a list records the items under the capitalized keyword", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div>
			<h3>Características</h3>
			<ul>
				<li>Bomba eléctrica USB</li>
				<li>Compatible con botellón 20L</li>
				<li>Batería de 1200mAh</li>
			</ul>
		</div></body></html>`

		rec := extract(t, html)
		require.Contains(t, rec.Attributes.Specs, "Características")
		assert.Equal(t,
			prodex.SpecList("Bomba eléctrica USB", "Compatible con botellón 20L", "Batería de 1200mAh"),
			rec.Attributes.Specs["Características"])
	})

	t.Run("keyword key is never overwritten by the generic list scan", func(t *testing.T) {
		t.Parallel()

		// The list mentions "batería", so the generic scan also matches it;
		// the keyword cascade must win for the Especificaciones key.
		html := `<html><body><div>
			<strong>Especificaciones</strong>
			<ul>
				<li>Material: acero inoxidable</li>
				<li>Batería recargable</li>
			</ul>
		</div></body></html>`

		rec := extract(t, html)
		assert.Equal(t,
			prodex.SpecList("Material: acero inoxidable", "Batería recargable"),
			rec.Attributes.Specs["Especificaciones"])
	})

	t.Run("keyword heading without a list joins following sibling text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div>
			<h4>Modo de uso</h4>
			<p>Insertar la sonda en el botellón hasta el fondo.</p>
			<p>Presionar el botón superior para iniciar el dispensado.</p>
		</div></body></html>`

		rec := extract(t, html)
		require.Contains(t, rec.Attributes.Specs, "Modo de uso")
		assert.Equal(t,
			prodex.SpecText("Insertar la sonda en el botellón hasta el fondo.\nPresionar el botón superior para iniciar el dispensado."),
			rec.Attributes.Specs["Modo de uso"])
	})

	t.Run("sibling scan is capped at five elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div>
			<h4>Detalles</h4>
			<p>Primer detalle del producto con largo suficiente.</p>
			<p>Segundo detalle del producto con largo suficiente.</p>
			<p>Tercer detalle del producto con largo suficiente.</p>
			<p>Cuarto detalle del producto con largo suficiente.</p>
			<p>Quinto detalle del producto con largo suficiente.</p>
			<p>Sexto detalle que ya no debe ser incluido en absoluto.</p>
		</div></body></html>`

		rec := extract(t, html)
		require.Contains(t, rec.Attributes.Specs, "Detalles")
		v := rec.Attributes.Specs["Detalles"]
		assert.NotContains(t, v.Text, "Sexto")
		assert.Contains(t, v.Text, "Quinto")
	})

	t.Run("generic list scan registers keyword-bearing lists", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<ul>
				<li>Material: plástico ABS</li>
				<li>Instalación sin herramientas</li>
			</ul>
		</body></html>`

		rec := extract(t, html)
		assert.Equal(t,
			prodex.SpecList("Material: plástico ABS", "Instalación sin herramientas"),
			rec.Attributes.Specs["Especificaciones"])
	})

	t.Run("generic list scan ignores single-item and unrelated lists", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<ul><li>Material: acero</li></ul>
			<ul><li>Inicio</li><li>Contacto</li></ul>
		</body></html>`

		rec := extract(t, html)
		assert.Empty(t, rec.Attributes.Specs)
	})

	t.Run("multiple keywords populate distinct keys", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div>
				<h3>Características</h3>
				<ul><li>Ligero</li><li>Portátil</li></ul>
			</div>
			<div>
				<h3>Detalles</h3>
				<p>Incluye cable de carga USB y manual en español.</p>
			</div>
		</body></html>`

		rec := extract(t, html)
		assert.Contains(t, rec.Attributes.Specs, "Características")
		assert.Contains(t, rec.Attributes.Specs, "Detalles")
	})
}
