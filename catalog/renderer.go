// Package catalog renders stored product records into a self-contained
// HTML gallery document.
package catalog

import (
	"html/template"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/emontes/prodex"
)

// Renderer renders product records as a card-grid catalog page.
type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
}

// NewRenderer creates a Renderer. The page template is parsed once; a
// parse failure is a programming error and panics.
func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("catalog").Parse(pageTemplate)),
		now:  time.Now,
	}
}

// Render writes the catalog document for the given records to w.
func (r *Renderer) Render(w io.Writer, records []*prodex.Record) error {
	return r.tmpl.Execute(w, r.page(records))
}

// RenderFile renders the catalog document to a file.
func (r *Renderer) RenderFile(path string, records []*prodex.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Render(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// page assembles the template data. All presentation decisions (main
// image, gallery subset, price display) happen here so the template
// stays declarative.
func (r *Renderer) page(records []*prodex.Record) pageData {
	cards := make([]cardData, 0, len(records))
	for _, rec := range records {
		cards = append(cards, newCard(rec))
	}
	return pageData{
		Count:       len(records),
		GeneratedAt: r.now().Format(prodex.TimestampLayout),
		Cards:       cards,
	}
}

type pageData struct {
	Count       int
	GeneratedAt string
	Cards       []cardData
}

type cardData struct {
	Title            string
	MainImage        string
	Gallery          []string
	Price            string
	DescriptionLines []string
	Categories       []string
	Specs            []specSection
	SKU              string
	Availability     string
	URL              string
	ExtractedAt      string
}

type specSection struct {
	Label string
	Text  string
	Items []string
}

func newCard(rec *prodex.Record) cardData {
	card := cardData{
		Title:        rec.Title,
		MainImage:    prodex.MainImage(rec.Images),
		Price:        prodex.FormatPrice(rec.Price),
		Categories:   rec.Attributes.Categories,
		SKU:          rec.Attributes.SKU,
		Availability: rec.Attributes.Availability,
		URL:          rec.URL,
		ExtractedAt:  rec.ExtractedAt,
	}

	// Thumbnails only add anything when there is more than one.
	if gallery := prodex.GalleryImages(rec.Images); len(gallery) > 1 {
		card.Gallery = gallery
	}

	if rec.Description != "" && rec.Description != prodex.DescriptionNotFound {
		card.DescriptionLines = strings.Split(rec.Description, "\n")
	}

	if len(rec.Attributes.Specs) > 0 {
		labels := make([]string, 0, len(rec.Attributes.Specs))
		for label := range rec.Attributes.Specs {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			v := rec.Attributes.Specs[label]
			card.Specs = append(card.Specs, specSection{Label: label, Text: v.Text, Items: v.Items})
		}
	}

	return card
}
