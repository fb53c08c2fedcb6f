package htmltomarkdown_test

import (
	"testing"

	"github.com/emontes/prodex"
	"github.com/emontes/prodex/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements prodex.Converter at compile time.
var _ prodex.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts a description container", func(t *testing.T) {
		t.Parallel()

		html := `<div><p>Bomba de agua <strong>recargable</strong> para botellones.</p>
			<ul><li>Carga USB</li><li>Batería de 1200mAh</li></ul></div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**recargable**")
		assert.Contains(t, md, "- Carga USB")
		assert.Contains(t, md, "- Batería de 1200mAh")
	})

	t.Run("converts specification tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>Material</th><th>Peso</th></tr><tr><td>Acero</td><td>250g</td></tr></table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| Material | Peso |")
		assert.Contains(t, md, "| Acero | 250g |")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Ver el <a href="https://example.com/manual">manual</a>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[manual](https://example.com/manual)")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, prodex.EINVALID, prodex.ErrorCode(err))
	})
}
