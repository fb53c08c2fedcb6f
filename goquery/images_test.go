package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractImages(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative sources against the page origin", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="product-gallery">
			<img src="/img/a.png">
		</div></body></html>`

		rec := extract(t, html)
		assert.Equal(t, []string{"https://shop.example.com/img/a.png"}, rec.Images)
	})

	t.Run("keeps absolute sources unchanged", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="product-gallery">
			<img src="https://cdn.example.net/p/a.jpg">
		</div></body></html>`

		rec := extract(t, html)
		assert.Equal(t, []string{"https://cdn.example.net/p/a.jpg"}, rec.Images)
	})

	t.Run("checks lazy-load attributes when src is missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="product-images">
			<img data-src="/lazy/a.jpg">
			<img data-lazy-src="/lazy/b.jpg">
		</div></body></html>`

		rec := extract(t, html)
		assert.Equal(t, []string{
			"https://shop.example.com/lazy/a.jpg",
			"https://shop.example.com/lazy/b.jpg",
		}, rec.Images)
	})

	t.Run("first selector with results wins over later selectors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="product-image"><img src="/main/a.jpg"></div>
			<div class="carousel"><img src="/carousel/b.jpg"></div>
		</body></html>`

		rec := extract(t, html)
		assert.Equal(t, []string{"https://shop.example.com/main/a.jpg"}, rec.Images)
	})

	t.Run("deduplicates while preserving first-seen order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="product-gallery">
			<img src="/img/a.png">
			<img src="/img/b.png">
			<img src="/img/a.png">
		</div></body></html>`

		rec := extract(t, html)
		assert.Equal(t, []string{
			"https://shop.example.com/img/a.png",
			"https://shop.example.com/img/b.png",
		}, rec.Images)
	})

	t.Run("caps the sequence at ten images", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString(`<html><body><div class="product-gallery">`)
		for i := 0; i < 15; i++ {
			fmt.Fprintf(&b, `<img src="/img/%d.png">`, i)
		}
		b.WriteString(`</div></body></html>`)

		rec := extract(t, b.String())
		assert.Len(t, rec.Images, 10)
		assert.Equal(t, "https://shop.example.com/img/0.png", rec.Images[0])
	})

	t.Run("falls back to keyword-matched page images", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<img src="/assets/logo.svg">
			<img src="/media/product-front.jpg">
			<img src="/media/banner.gif">
		</body></html>`

		rec := extract(t, html)
		assert.Equal(t, []string{"https://shop.example.com/media/product-front.jpg"}, rec.Images)
	})

	t.Run("empty sequence when nothing matches", func(t *testing.T) {
		t.Parallel()

		rec := extract(t, `<html><body><img src="/assets/logo.svg"></body></html>`)
		assert.NotNil(t, rec.Images)
		assert.Empty(t, rec.Images)
	})
}
