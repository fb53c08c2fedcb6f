package prodex

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// HighResMarker identifies high-resolution image variants in image URLs.
// E-commerce platforms expose the same asset at several sizes; URLs
// containing this marker are preferred for display.
const HighResMarker = "image_1024"

// PriceUnavailable is shown when a record has no price.
const PriceUnavailable = "No disponible"

// FormatPrice renders a record price for display. A numeric price is
// formatted with `.` thousands separators; anything that does not parse
// as a plain number is returned unchanged. A nil price renders as
// PriceUnavailable.
func FormatPrice(price *string) string {
	if price == nil || strings.TrimSpace(*price) == "" {
		return PriceUnavailable
	}
	raw := strings.TrimSpace(*price)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return *price
	}
	return groupThousands(strconv.FormatFloat(f, 'f', 0, 64))
}

// groupThousands inserts `.` separators into a plain integer string.
func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// MainImage selects the representative image for a record: the first
// high-resolution variant, else the first image, else the empty string.
func MainImage(images []string) string {
	for _, img := range images {
		if strings.Contains(img, HighResMarker) {
			return img
		}
	}
	if len(images) > 0 {
		return images[0]
	}
	return ""
}

// GalleryImages derives the gallery subset: high-resolution variants
// capped at 4, falling back to the first 4 images when none match.
func GalleryImages(images []string) []string {
	var gallery []string
	for _, img := range images {
		if strings.Contains(img, HighResMarker) {
			gallery = append(gallery, img)
			if len(gallery) == 4 {
				break
			}
		}
	}
	if len(gallery) > 0 {
		return gallery
	}
	if len(images) > 4 {
		return images[:4]
	}
	return images
}

// maxDescriptionDump is the description length shown by FormatRecord
// before truncation kicks in.
const maxDescriptionDump = 500

// FormatRecord renders a record as a human-readable console dump.
// The record is not modified.
func FormatRecord(rec *Record) string {
	rule := strings.Repeat("=", 60)

	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString("DATOS DEL PRODUCTO EXTRAÍDOS\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "URL: %s\n", rec.URL)
	fmt.Fprintf(&b, "Título: %s\n", rec.Title)

	price := PriceUnavailable
	if rec.Price != nil {
		price = *rec.Price
	}
	fmt.Fprintf(&b, "Precio: %s\n", price)

	if rec.Description != "" && rec.Description != DescriptionNotFound {
		b.WriteString("\nDescripción:\n")
		if len([]rune(rec.Description)) > maxDescriptionDump {
			b.WriteString(truncateRunes(rec.Description, maxDescriptionDump) + "...\n")
			fmt.Fprintf(&b, "\n(Descripción completa tiene %d caracteres)\n", len([]rune(rec.Description)))
		} else {
			b.WriteString(rec.Description + "\n")
		}
	} else {
		fmt.Fprintf(&b, "\nDescripción: %s\n", rec.Description)
	}

	fmt.Fprintf(&b, "\nImágenes encontradas: %d\n", len(rec.Images))
	for i, img := range rec.Images {
		if i == 3 {
			fmt.Fprintf(&b, "  ... y %d más\n", len(rec.Images)-3)
			break
		}
		fmt.Fprintf(&b, "  %d. %s\n", i+1, img)
	}

	if !rec.Attributes.Empty() {
		b.WriteString("\nAtributos adicionales:\n")
		writeAttributes(&b, rec.Attributes)
	}
	b.WriteString(rule + "\n")
	return b.String()
}

func writeAttributes(b *strings.Builder, attrs Attributes) {
	if attrs.SKU != "" {
		fmt.Fprintf(b, "  SKU: %s\n", attrs.SKU)
	}
	if len(attrs.Categories) > 0 {
		fmt.Fprintf(b, "  Categorías: %s\n", strings.Join(attrs.Categories, ", "))
	}
	if attrs.Availability != "" {
		fmt.Fprintf(b, "  Disponibilidad: %s\n", attrs.Availability)
	}
	if len(attrs.Specs) > 0 {
		b.WriteString("  Especificaciones:\n")
		keys := make([]string, 0, len(attrs.Specs))
		for k := range attrs.Specs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v := attrs.Specs[k]
			if v.Items != nil {
				fmt.Fprintf(b, "    %s:\n", k)
				for _, item := range v.Items {
					fmt.Fprintf(b, "      - %s\n", item)
				}
			} else {
				fmt.Fprintf(b, "    %s: %s\n", k, v.Text)
			}
		}
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
