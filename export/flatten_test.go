package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/vivekrai1999/shopspy/structs"
)

func TestFlattenDefaultColumns(t *testing.T) {
	table, err := Flatten([]structs.Product{fixtureProduct()}, nil)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(table.Headers) != 20 {
		t.Fatalf("header count = %d, want 20", len(table.Headers))
	}
	if table.Headers[0] != "id" || table.Headers[1] != "title" {
		t.Errorf("leading headers = %v", table.Headers[:2])
	}
	if len(table.Rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(table.Rows))
	}
}

func TestFlattenValues(t *testing.T) {
	table, err := Flatten([]structs.Product{fixtureProduct()}, nil)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	row := table.Rows[0]
	cell := func(header string) string {
		for i, h := range table.Headers {
			if h == header {
				return row[i]
			}
		}
		t.Fatalf("no column %q", header)
		return ""
	}

	if cell("id") != "632910392" {
		t.Errorf("id = %q", cell("id"))
	}
	if cell("tags") != "lamp, led" {
		t.Errorf("tags = %q", cell("tags"))
	}
	if cell("variants_count") != "3" || cell("images_count") != "4" {
		t.Errorf("counts = %q/%q", cell("variants_count"), cell("images_count"))
	}
	// First-variant fields promoted to top-level columns.
	if cell("price") != "49.95" || cell("sku") != "AL-W-S" {
		t.Errorf("first variant = %q/%q", cell("price"), cell("sku"))
	}
	if cell("available") != "Yes" || cell("taxable") != "Yes" {
		t.Errorf("yes/no cells = %q/%q", cell("available"), cell("taxable"))
	}
	if cell("options") != "Color: White, Black; Size: S, L" {
		t.Errorf("options = %q", cell("options"))
	}
	// Markup stripped from the description preview.
	if body := cell("body_html"); strings.ContainsAny(body, "<>") || !strings.Contains(body, "bright") {
		t.Errorf("body preview = %q", body)
	}
}

func TestFlattenDescriptionTruncated(t *testing.T) {
	p := bareProduct()
	p.BodyHTML = "<p>" + strings.Repeat("x", 500) + "</p>"
	table, err := Flatten([]structs.Product{p}, nil)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	body := table.Rows[0][6] // body_html column
	if len([]rune(body)) != descriptionPreviewLen {
		t.Errorf("preview length = %d, want %d", len([]rune(body)), descriptionPreviewLen)
	}
}

func TestFlattenNoVariants(t *testing.T) {
	table, err := Flatten([]structs.Product{bareProduct()}, nil)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	row := table.Rows[0]
	for i, h := range table.Headers {
		switch h {
		case "price", "compare_at_price", "sku", "available", "requires_shipping", "taxable", "grams":
			if row[i] != "" {
				t.Errorf("variantless %s = %q, want empty", h, row[i])
			}
		case "variants_count", "images_count":
			if row[i] != "0" {
				t.Errorf("%s = %q, want 0", h, row[i])
			}
		}
	}
}

func TestFlattenCustomColumnSet(t *testing.T) {
	columns := []SummaryColumn{
		{"handle", func(p *structs.Product) string { return p.Handle }},
	}
	table, err := Flatten([]structs.Product{fixtureProduct(), bareProduct()}, columns)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(table.Headers) != 1 || table.Headers[0] != "handle" {
		t.Errorf("headers = %v", table.Headers)
	}
	if table.Rows[0][0] != "aurora-lamp" || table.Rows[1][0] != "mystery-box" {
		t.Errorf("rows = %v", table.Rows)
	}
}

func TestFlattenEmpty(t *testing.T) {
	if _, err := Flatten(nil, nil); !errors.Is(err, ErrNoProducts) {
		t.Fatalf("err = %v, want ErrNoProducts", err)
	}
	if _, err := ProductsCSV(nil, nil); !errors.Is(err, ErrNoProducts) {
		t.Fatalf("ProductsCSV err = %v, want ErrNoProducts", err)
	}
	if _, err := ProductsJSON(nil); !errors.Is(err, ErrNoProducts) {
		t.Fatalf("ProductsJSON err = %v, want ErrNoProducts", err)
	}
}
