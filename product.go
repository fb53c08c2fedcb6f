package prodex

import (
	"context"
	"encoding/json"
	"net/url"
)

// Sentinel values returned when a field cascade is exhausted. Title and
// description always carry a value; they degrade to these strings instead
// of going absent. They match the strings the catalog renderer recognizes.
const (
	TitleNotFound       = "Título no encontrado"
	DescriptionNotFound = "Descripción no encontrada"
)

// TimestampLayout is the format of Record.ExtractedAt.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is a product record extracted from a single page. It is assembled
// once per extraction run and never mutated afterwards; re-extracting a
// page produces a new Record.
//
// JSON field names reproduce the record keys used by the persisted catalog
// files, so previously exported records remain readable.
type Record struct {
	// Store-assigned identity. Not part of the exported record.
	ID          string `json:"-"`
	ContentHash string `json:"-"`

	// URL is the source page URL, exactly as given to the extractor.
	URL string `json:"URL"`

	// Title degrades to TitleNotFound when no strategy matches.
	Title string `json:"Título"`

	// Price is the raw matched text (symbols and all), nil when no
	// selector yielded text that survives the validity check. Parsing
	// into a display value is a presentation concern; see FormatPrice.
	Price *string `json:"Precio"`

	// Description degrades to DescriptionNotFound when the cascade fails.
	Description string `json:"Descripción"`

	// DescriptionHTML is the inner HTML of the container the description
	// was taken from, kept for markdown conversion. Not serialized.
	DescriptionHTML string `json:"-"`

	// Images holds absolute URLs, de-duplicated, in first-seen order,
	// capped at 10. Never nil.
	Images []string `json:"Imágenes"`

	Attributes Attributes `json:"Atributos"`

	// ExtractedAt is stamped at assembly time using TimestampLayout.
	ExtractedAt string `json:"Fecha de extracción"`
}

// Validate returns an error if the record cannot be persisted.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	u, err := url.Parse(r.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Errorf(EINVALID, "record source URL must be absolute http(s): %q", r.URL)
	}
	return nil
}

// Attributes holds the identity attributes probed from the page plus the
// specification mapping nested under them. It is a flat mapping except
// Specs, which holds per-section specification values.
type Attributes struct {
	SKU          string   `json:"SKU,omitempty"`
	Categories   []string `json:"Categorías,omitempty"`
	Availability string   `json:"Disponibilidad,omitempty"`
	Specs        Specs    `json:"Especificaciones,omitempty"`
}

// Empty reports whether no attribute was found.
func (a Attributes) Empty() bool {
	return a.SKU == "" && len(a.Categories) == 0 && a.Availability == "" && len(a.Specs) == 0
}

// Specs maps a specification section label to its value.
type Specs map[string]SpecValue

// SpecValue is either an ordered list of items (from a bullet list) or a
// single text block (from joined sibling paragraphs). Exactly one of the
// two is set.
type SpecValue struct {
	Text  string
	Items []string
}

// SpecText returns a text-valued SpecValue.
func SpecText(text string) SpecValue {
	return SpecValue{Text: text}
}

// SpecList returns a list-valued SpecValue.
func SpecList(items ...string) SpecValue {
	return SpecValue{Items: items}
}

// MarshalJSON serializes the value as a JSON array when it holds items and
// as a JSON string otherwise.
func (v SpecValue) MarshalJSON() ([]byte, error) {
	if v.Items != nil {
		return json.Marshal(v.Items)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts both the array and the string form.
func (v *SpecValue) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		v.Items = items
		v.Text = ""
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	v.Text = text
	v.Items = nil
	return nil
}

// RecordWriter persists a record as an indented JSON document and returns
// the path written. An empty filename derives one from the record title.
type RecordWriter interface {
	WriteRecord(ctx context.Context, rec *Record, filename string) (string, error)
}

// SortOrder represents the sort order for product queries.
type SortOrder string

// SortOrder constants for ProductFilter.
const (
	SortByExtractedAt SortOrder = "extracted_at"
	SortByTitle       SortOrder = "title"
)

// ProductFilter represents a filter for FindProducts.
type ProductFilter struct {
	URL *string

	Offset int
	Limit  int

	SortBy SortOrder
}

// ProductService represents a service for managing stored product records.
type ProductService interface {
	// CreateProduct stores a record, replacing any record previously
	// stored for the same URL.
	CreateProduct(ctx context.Context, rec *Record) error

	// FindProductByURL retrieves the record for a source URL.
	// Returns ENOTFOUND if no record exists.
	FindProductByURL(ctx context.Context, url string) (*Record, error)

	// FindProducts retrieves records matching the filter.
	FindProducts(ctx context.Context, filter ProductFilter) ([]*Record, error)

	// DeleteProduct removes the record for a source URL.
	// Returns ENOTFOUND if no record exists.
	DeleteProduct(ctx context.Context, url string) error
}
