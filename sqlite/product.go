package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/emontes/prodex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ prodex.ProductService = (*ProductService)(nil)

// ProductService implements prodex.ProductService using SQLite.
type ProductService struct {
	db *DB
}

// NewProductService creates a new ProductService.
func NewProductService(db *DB) *ProductService {
	return &ProductService{db: db}
}

// hashRecord computes xxHash over the extraction-invariant fields of a
// record and returns a hex string. Two runs over an unchanged page yield
// the same hash even though their timestamps differ.
func hashRecord(rec *prodex.Record) (string, error) {
	stable := *rec
	stable.ID = ""
	stable.ContentHash = ""
	stable.ExtractedAt = ""

	data, err := json.Marshal(&stable)
	if err != nil {
		return "", err
	}

	h := xxhash.Sum64(data)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b), nil
}

// CreateProduct stores a record. A record already stored for the same URL
// is replaced; the replacement gets a fresh ID.
func (s *ProductService) CreateProduct(ctx context.Context, rec *prodex.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	hash, err := hashRecord(rec)
	if err != nil {
		return err
	}
	rec.ID = uuid.New().String()
	rec.ContentHash = hash

	images, err := json.Marshal(rec.Images)
	if err != nil {
		return err
	}
	attributes, err := json.Marshal(rec.Attributes)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO products (id, url, title, price, description, description_html, images, attributes, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			id = excluded.id,
			title = excluded.title,
			price = excluded.price,
			description = excluded.description,
			description_html = excluded.description_html,
			images = excluded.images,
			attributes = excluded.attributes,
			content_hash = excluded.content_hash,
			extracted_at = excluded.extracted_at
	`, rec.ID, rec.URL, rec.Title, rec.Price, rec.Description, rec.DescriptionHTML,
		string(images), string(attributes), rec.ContentHash, rec.ExtractedAt)

	return err
}

// FindProductByURL retrieves the record stored for a source URL.
func (s *ProductService) FindProductByURL(ctx context.Context, url string) (*prodex.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, price, description, description_html, images, attributes, content_hash, extracted_at
		FROM products
		WHERE url = ?
	`, url)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, prodex.Errorf(prodex.ENOTFOUND, "product not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindProducts retrieves records matching the filter.
func (s *ProductService) FindProducts(ctx context.Context, filter prodex.ProductFilter) ([]*prodex.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, price, description, description_html, images, attributes, content_hash, extracted_at FROM products WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	switch filter.SortBy {
	case prodex.SortByTitle:
		query.WriteString(" ORDER BY title ASC")
	default:
		query.WriteString(" ORDER BY extracted_at DESC")
	}

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// SQLite rejects OFFSET without LIMIT; -1 means unbounded.
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*prodex.Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteProduct permanently removes the record stored for a source URL.
func (s *ProductService) DeleteProduct(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE url = ?", url)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return prodex.Errorf(prodex.ENOTFOUND, "product not found")
	}

	return nil
}

// scanRecord reads one products row into a Record, decoding the JSON
// columns.
func scanRecord(scan func(dest ...any) error) (*prodex.Record, error) {
	var rec prodex.Record
	var images, attributes string

	if err := scan(&rec.ID, &rec.URL, &rec.Title, &rec.Price, &rec.Description,
		&rec.DescriptionHTML, &images, &attributes, &rec.ContentHash, &rec.ExtractedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(images), &rec.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}
	if rec.Images == nil {
		rec.Images = []string{}
	}
	if err := json.Unmarshal([]byte(attributes), &rec.Attributes); err != nil {
		return nil, fmt.Errorf("failed to decode attributes: %w", err)
	}

	return &rec, nil
}
