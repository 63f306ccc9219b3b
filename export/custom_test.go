package export

import (
	"errors"
	"testing"

	"github.com/vivekrai1999/shopspy/structs"
)

func TestCustomNoMappings(t *testing.T) {
	products := []structs.Product{fixtureProduct()}
	if _, err := BuildCustomTable(products, nil); !errors.Is(err, ErrNoMappings) {
		t.Fatalf("err = %v, want ErrNoMappings", err)
	}
}

func TestCustomMappingValidatedBeforeProducts(t *testing.T) {
	// A bad mapping reports as such even when the catalog itself is
	// empty: mapping problems are the caller's to fix regardless.
	bad := []structs.FieldMapping{{Label: "  ", Path: "title"}}
	if _, err := BuildCustomTable(nil, bad); !errors.Is(err, ErrMissingFieldName) {
		t.Fatalf("err = %v, want ErrMissingFieldName", err)
	}

	ok := []structs.FieldMapping{{Label: "Title", Path: "title"}}
	if _, err := BuildCustomTable(nil, ok); !errors.Is(err, ErrNoProducts) {
		t.Fatalf("err = %v, want ErrNoProducts", err)
	}
}

func TestCustomHeadersAreLabels(t *testing.T) {
	mappings := []structs.FieldMapping{
		{Label: "Product Name", Path: "title"},
		{Label: "First SKU", Path: "variants[0].sku"},
	}
	table, err := BuildCustomTable([]structs.Product{fixtureProduct()}, mappings)
	if err != nil {
		t.Fatalf("BuildCustomTable: %v", err)
	}
	if table.Headers[0] != "Product Name" || table.Headers[1] != "First SKU" {
		t.Errorf("headers = %v", table.Headers)
	}
}

func TestCustomPathResolution(t *testing.T) {
	mappings := []structs.FieldMapping{
		{Label: "Title", Path: "title"},
		{Label: "Vendor", Path: "vendor"},
		{Label: "First SKU", Path: "variants[0].sku"},
		{Label: "Second Price", Path: "variants[1].price"},
		{Label: "Tags", Path: "tags"},
		{Label: "Tag Count", Path: "tags.length"},
		{Label: "Variant Count", Path: "variants.length"},
		{Label: "Missing", Path: "variants[9].sku"},
	}
	table, err := BuildCustomTable([]structs.Product{fixtureProduct()}, mappings)
	if err != nil {
		t.Fatalf("BuildCustomTable: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(table.Rows))
	}

	want := []string{"Aurora Lamp", "Lumen Co", "AL-W-S", "54.95", "lamp, led", "2", "3", ""}
	row := table.Rows[0]
	for i, w := range want {
		if row[i] != w {
			t.Errorf("column %q = %q, want %q", mappings[i].Label, row[i], w)
		}
	}
}

func TestCustomBlankAndMalformedPaths(t *testing.T) {
	mappings := []structs.FieldMapping{
		{Label: "Notes", Path: ""},
		{Label: "Broken", Path: "variants["},
		{Label: "Title", Path: "title"},
	}
	table, err := BuildCustomTable([]structs.Product{fixtureProduct()}, mappings)
	if err != nil {
		t.Fatalf("BuildCustomTable: %v", err)
	}

	row := table.Rows[0]
	if row[0] != "" {
		t.Errorf("blank path cell = %q, want empty", row[0])
	}
	if row[1] != "" {
		t.Errorf("malformed path cell = %q, want empty", row[1])
	}
	if row[2] != "Aurora Lamp" {
		t.Errorf("valid path cell = %q", row[2])
	}
}

func TestCustomRowPerProduct(t *testing.T) {
	mappings := []structs.FieldMapping{{Label: "Handle", Path: "handle"}}
	table, err := BuildCustomTable([]structs.Product{fixtureProduct(), bareProduct()}, mappings)
	if err != nil {
		t.Fatalf("BuildCustomTable: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(table.Rows))
	}
	if table.Rows[0][0] != "aurora-lamp" || table.Rows[1][0] != "mystery-box" {
		t.Errorf("rows = %v", table.Rows)
	}
}
