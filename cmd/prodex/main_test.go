package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productHTML = `<html><body>
	<h1 class="product-title">Bomba de Agua USB</h1>
	<span class="product-price">$ 1.250</span>
	<div class="product-gallery">
		<img src="/img/bomba-image_1024.jpg">
		<img src="/img/bomba-image_128.jpg">
	</div>
	<div class="product-description">Dispensador eléctrico recargable para botellones de agua.</div>
	<span itemprop="sku">BA-001</span>
</body></html>`

// newTestMain returns a Main wired to a throwaway database.
func newTestMain(t *testing.T) *Main {
	t.Helper()
	m := NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "prodex.db")
	m.RetryDelays = []time.Duration{0}
	return m
}

func newProductServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(productHTML))
	}))
	t.Cleanup(server.Close)
	return server
}

func run(t *testing.T, m *Main, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Get(t *testing.T) {
	t.Parallel()

	server := newProductServer(t)

	stdout, _, err := run(t, newTestMain(t), "get", server.URL+"/p/1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "DATOS DEL PRODUCTO EXTRAÍDOS")
	assert.Contains(t, stdout, "Bomba de Agua USB")
	assert.Contains(t, stdout, "$ 1.250")
	assert.Contains(t, stdout, "bomba-image_1024.jpg")
	assert.Contains(t, stdout, "BA-001")
}

func TestMain_AddListDelete(t *testing.T) {
	t.Parallel()

	server := newProductServer(t)
	m := newTestMain(t)
	url := server.URL + "/p/1"

	stdout, _, err := run(t, m, "add", url)
	require.NoError(t, err)
	assert.Contains(t, stdout, `Added "Bomba de Agua USB"`)

	stdout, _, err = run(t, m, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bomba de Agua USB")
	assert.Contains(t, stdout, url)

	// Deleting requires confirmation.
	_, stderr, err := run(t, m, "delete", url)
	require.Error(t, err)
	assert.Contains(t, stderr, "--force")

	stdout, _, err = run(t, m, "delete", url, "--force")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deleted")

	stdout, _, err = run(t, m, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No products found")
}

func TestMain_Batch(t *testing.T) {
	t.Parallel()

	server := newProductServer(t)
	m := newTestMain(t)

	stdout, stderr, err := run(t, m, "batch",
		server.URL+"/p/1",
		server.URL+"/missing",
		"-c", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved 1 product(s), 1 failed")
	assert.Contains(t, stderr, "skip")
}

func TestMain_Render(t *testing.T) {
	t.Parallel()

	server := newProductServer(t)
	m := newTestMain(t)
	output := filepath.Join(t.TempDir(), "catalogo.html")

	_, _, err := run(t, m, "add", server.URL+"/p/1")
	require.NoError(t, err)

	stdout, _, err := run(t, m, "render", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Rendered 1 product(s)")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Bomba de Agua USB")
	assert.Contains(t, string(data), "bomba-image_1024.jpg")
}

func TestMain_RenderEmpty(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, newTestMain(t), "render", "-o", filepath.Join(t.TempDir(), "c.html"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "No products to render.")
}

func TestMain_NoCommand(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, newTestMain(t), []string{}...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
