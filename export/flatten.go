package export

import (
	"strconv"
	"strings"

	"github.com/vivekrai1999/shopspy/pathexpr"
	"github.com/vivekrai1999/shopspy/structs"
)

const descriptionPreviewLen = 100

// SummaryColumn is one column of the generic flatten projection: a header
// plus an accessor producing the display string for a product.
type SummaryColumn struct {
	Header string
	Value  func(p *structs.Product) string
}

// DefaultSummaryColumns is the standard lossy summary projection used by
// the plain CSV and workbook exports: one row per product, nested arrays
// reduced to joined lists and counts, first-variant fields promoted to
// top-level columns. Callers can pass their own column set to Flatten when
// a different subset is wanted.
func DefaultSummaryColumns() []SummaryColumn {
	return []SummaryColumn{
		{"id", func(p *structs.Product) string { return strconv.FormatInt(p.ID, 10) }},
		{"title", func(p *structs.Product) string { return p.Title }},
		{"handle", func(p *structs.Product) string { return p.Handle }},
		{"vendor", func(p *structs.Product) string { return p.Vendor }},
		{"product_type", func(p *structs.Product) string { return p.ProductType }},
		{"tags", func(p *structs.Product) string { return strings.Join(p.Tags, ", ") }},
		{"body_html", func(p *structs.Product) string { return descriptionPreview(p.BodyHTML) }},
		{"created_at", func(p *structs.Product) string { return p.CreatedAt }},
		{"updated_at", func(p *structs.Product) string { return p.UpdatedAt }},
		{"published_at", func(p *structs.Product) string { return p.PublishedAt }},
		{"variants_count", func(p *structs.Product) string { return strconv.Itoa(len(p.Variants)) }},
		{"images_count", func(p *structs.Product) string { return strconv.Itoa(len(p.Images)) }},
		{"price", firstVariant(func(v *structs.Variant) string { return v.Price })},
		{"compare_at_price", firstVariant(func(v *structs.Variant) string { return v.CompareAtPrice })},
		{"sku", firstVariant(func(v *structs.Variant) string { return v.SKU })},
		{"available", firstVariant(func(v *structs.Variant) string { return yesNo(v.Available) })},
		{"requires_shipping", firstVariant(func(v *structs.Variant) string { return yesNo(v.RequiresShipping) })},
		{"taxable", firstVariant(func(v *structs.Variant) string { return yesNo(v.Taxable) })},
		{"grams", firstVariant(func(v *structs.Variant) string { return strconv.Itoa(v.Grams) })},
		{"options", func(p *structs.Product) string { return optionSummary(p.Options) }},
	}
}

// Flatten builds the summary table: one row per product. A nil column set
// selects DefaultSummaryColumns.
func Flatten(products []structs.Product, columns []SummaryColumn) (*Table, error) {
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	if columns == nil {
		columns = DefaultSummaryColumns()
	}

	t := &Table{
		Headers: make([]string, len(columns)),
		Rows:    make([][]string, 0, len(products)),
	}
	for i, c := range columns {
		t.Headers[i] = c.Header
	}
	for i := range products {
		row := make([]string, len(columns))
		for j, c := range columns {
			row[j] = c.Value(&products[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ProductsCSV exports the summary projection as CSV.
func ProductsCSV(products []structs.Product, columns []SummaryColumn) ([]byte, error) {
	t, err := Flatten(products, columns)
	if err != nil {
		return nil, err
	}
	return t.EncodeCSV()
}

// ProductsWorkbook exports the summary projection as an XLSX workbook.
func ProductsWorkbook(products []structs.Product, columns []SummaryColumn) ([]byte, error) {
	t, err := Flatten(products, columns)
	if err != nil {
		return nil, err
	}
	return t.EncodeWorkbook()
}

func firstVariant(value func(v *structs.Variant) string) func(p *structs.Product) string {
	return func(p *structs.Product) string {
		if len(p.Variants) == 0 {
			return ""
		}
		return value(&p.Variants[0])
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func descriptionPreview(html string) string {
	plain := pathexpr.StripMarkup(html)
	runes := []rune(plain)
	if len(runes) > descriptionPreviewLen {
		return string(runes[:descriptionPreviewLen])
	}
	return plain
}

func optionSummary(options []structs.Option) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		parts[i] = opt.Name + ": " + strings.Join(opt.Values, ", ")
	}
	return strings.Join(parts, "; ")
}
