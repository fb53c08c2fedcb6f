// Package fs provides file-based storage for extracted product records.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"

	"github.com/emontes/prodex"
)

// slugMaxLen caps the title-derived part of generated filenames.
const slugMaxLen = 50

var (
	slugStrip    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	slugCollapse = regexp.MustCompile(`[-\s]+`)
)

// Filename derives the output filename for a record from its title.
// Example: "Bomba de Agua USB" → producto_Bomba-de-Agua-USB.json
func Filename(rec *prodex.Record) string {
	slug := slugStrip.ReplaceAllString(rec.Title, "")
	if runes := []rune(slug); len(runes) > slugMaxLen {
		slug = string(runes[:slugMaxLen])
	}
	slug = slugCollapse.ReplaceAllString(slug, "-")
	return "producto_" + slug + ".json"
}

// MarshalRecord serializes a record the way the JSON files are stored on
// disk: two-space indented, UTF-8 with non-ASCII characters preserved.
func MarshalRecord(rec *prodex.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ensure Writer implements prodex.RecordWriter at compile time.
var _ prodex.RecordWriter = (*Writer)(nil)

// Writer writes product records as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRecord writes a record to disk as a JSON file and returns the full
// path written. An empty filename derives one from the record title.
func (w *Writer) WriteRecord(ctx context.Context, rec *prodex.Record, filename string) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	if filename == "" {
		filename = Filename(rec)
	}

	fullPath := filepath.Join(w.baseDir, filename)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	data, err := MarshalRecord(rec)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}

// Store reads product records back from a directory of JSON files.
type Store struct {
	dir string
}

// NewStore creates a Store over the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Records returns every record decoded from *.json files in the
// directory, in filename order. Files that do not decode into a record
// are skipped.
func (s *Store) Records(ctx context.Context) ([]*prodex.Record, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, err
	}

	var records []*prodex.Record
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var rec prodex.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		if err := rec.Validate(); err != nil {
			continue
		}
		records = append(records, &rec)
	}
	return records, nil
}
