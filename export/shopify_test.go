package export

import (
	"errors"
	"testing"

	"github.com/vivekrai1999/shopspy/structs"
)

func TestShopifyHeaderRow(t *testing.T) {
	if len(ShopifyHeaders) != shopifyColumnCount {
		t.Fatalf("header count = %d, want %d", len(ShopifyHeaders), shopifyColumnCount)
	}
	if shopifyColumnCount != 43 {
		t.Fatalf("column count = %d, want 43", shopifyColumnCount)
	}
	if ShopifyHeaders[colHandle] != "Handle" {
		t.Errorf("first header = %q, want Handle", ShopifyHeaders[colHandle])
	}
	if ShopifyHeaders[colStatus] != "Status" {
		t.Errorf("last header = %q, want Status", ShopifyHeaders[colStatus])
	}
	if ShopifyHeaders[colVariantFulfillment] != "Variant Fulfillment Service" {
		t.Errorf("fulfillment header = %q", ShopifyHeaders[colVariantFulfillment])
	}
}

func TestShopifyEmptyCatalog(t *testing.T) {
	if _, err := BuildShopifyTable(nil); !errors.Is(err, ErrNoProducts) {
		t.Fatalf("err = %v, want ErrNoProducts", err)
	}
}

func TestShopifyRowFanOut(t *testing.T) {
	// 3 variants + 4 images: 3 variant rows, then 3 extra-image rows
	// for images 2..4.
	table, err := BuildShopifyTable([]structs.Product{fixtureProduct()})
	if err != nil {
		t.Fatalf("BuildShopifyTable: %v", err)
	}
	if len(table.Rows) != 6 {
		t.Fatalf("row count = %d, want 6", len(table.Rows))
	}

	for i, row := range table.Rows {
		if len(row) != shopifyColumnCount {
			t.Fatalf("row %d has %d columns, want %d", i, len(row), shopifyColumnCount)
		}
		if row[colHandle] != "aurora-lamp" {
			t.Errorf("row %d handle = %q, want aurora-lamp", i, row[colHandle])
		}
	}

	first := table.Rows[0]
	if first[colTitle] != "Aurora Lamp" {
		t.Errorf("first row title = %q", first[colTitle])
	}
	if first[colTags] != "lamp, led" {
		t.Errorf("first row tags = %q", first[colTags])
	}
	if first[colPublished] != "true" || first[colStatus] != "active" {
		t.Errorf("published/status = %q/%q, want true/active", first[colPublished], first[colStatus])
	}
	if first[colOption1Name] != "Color" || first[colOption2Name] != "Size" || first[colOption3Name] != "" {
		t.Errorf("option names = %q/%q/%q", first[colOption1Name], first[colOption2Name], first[colOption3Name])
	}
	if first[colImageSrc] != "https://cdn.example.com/aurora-1.jpg" || first[colImagePosition] != "1" {
		t.Errorf("first row image = %q position %q", first[colImageSrc], first[colImagePosition])
	}

	// Product-level fields appear only once.
	for _, i := range []int{1, 2} {
		row := table.Rows[i]
		if row[colTitle] != "" || row[colVendor] != "" || row[colStatus] != "" {
			t.Errorf("row %d carries product fields: title=%q vendor=%q status=%q",
				i, row[colTitle], row[colVendor], row[colStatus])
		}
	}
}

func TestShopifyVariantColumns(t *testing.T) {
	table, err := BuildShopifyTable([]structs.Product{fixtureProduct()})
	if err != nil {
		t.Fatalf("BuildShopifyTable: %v", err)
	}

	first := table.Rows[0]
	if first[colVariantSKU] != "AL-W-S" || first[colVariantPrice] != "49.95" {
		t.Errorf("variant sku/price = %q/%q", first[colVariantSKU], first[colVariantPrice])
	}
	if first[colVariantGrams] != "1200" {
		t.Errorf("grams = %q, want 1200", first[colVariantGrams])
	}
	if first[colVariantCompareAt] != "59.95" {
		t.Errorf("compare at = %q", first[colVariantCompareAt])
	}
	if first[colVariantRequiresShipping] != "true" || first[colVariantTaxable] != "true" {
		t.Errorf("shipping/taxable = %q/%q", first[colVariantRequiresShipping], first[colVariantTaxable])
	}
	if first[colOption1Value] != "White" || first[colOption2Value] != "S" {
		t.Errorf("option values = %q/%q", first[colOption1Value], first[colOption2Value])
	}
	if first[colVariantInventoryPolicy] != "deny" {
		t.Errorf("inventory policy = %q, want deny", first[colVariantInventoryPolicy])
	}
	if first[colVariantFulfillment] != "manual" {
		t.Errorf("fulfillment = %q, want manual", first[colVariantFulfillment])
	}
	if first[colVariantWeightUnit] != "kg" {
		t.Errorf("weight unit = %q, want kg", first[colVariantWeightUnit])
	}

	second := table.Rows[1]
	if second[colVariantRequiresShipping] != "false" || second[colVariantTaxable] != "false" {
		t.Errorf("second variant shipping/taxable = %q/%q, want false/false",
			second[colVariantRequiresShipping], second[colVariantTaxable])
	}
}

func TestShopifyVariantImageFallback(t *testing.T) {
	table, err := BuildShopifyTable([]structs.Product{fixtureProduct()})
	if err != nil {
		t.Fatalf("BuildShopifyTable: %v", err)
	}

	// Variant 1 has no featured image: falls back to the product's first.
	if got := table.Rows[0][colVariantImage]; got != "https://cdn.example.com/aurora-1.jpg" {
		t.Errorf("fallback variant image = %q", got)
	}
	// Variant 2 has its own featured image.
	if got := table.Rows[1][colVariantImage]; got != "https://cdn.example.com/aurora-white-l.jpg" {
		t.Errorf("featured variant image = %q", got)
	}
}

func TestShopifyExtraImageRows(t *testing.T) {
	table, err := BuildShopifyTable([]structs.Product{fixtureProduct()})
	if err != nil {
		t.Fatalf("BuildShopifyTable: %v", err)
	}

	want := []struct {
		src, position, alt string
	}{
		{"https://cdn.example.com/aurora-2.jpg", "2", "side"},
		{"https://cdn.example.com/aurora-3.jpg", "3", ""},
		{"https://cdn.example.com/aurora-4.jpg", "4", "detail"},
	}
	for i, w := range want {
		row := table.Rows[3+i]
		if row[colImageSrc] != w.src || row[colImagePosition] != w.position || row[colImageAlt] != w.alt {
			t.Errorf("image row %d = %q/%q/%q, want %q/%q/%q",
				i, row[colImageSrc], row[colImagePosition], row[colImageAlt], w.src, w.position, w.alt)
		}
		// Image rows carry nothing beyond handle and image columns.
		if row[colTitle] != "" || row[colVariantSKU] != "" || row[colVariantPrice] != "" {
			t.Errorf("image row %d carries non-image fields", i)
		}
	}
}

func TestShopifyStandaloneProduct(t *testing.T) {
	table, err := BuildShopifyTable([]structs.Product{bareProduct()})
	if err != nil {
		t.Fatalf("BuildShopifyTable: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(table.Rows))
	}

	row := table.Rows[0]
	if row[colHandle] != "mystery-box" || row[colTitle] != "Mystery Box" {
		t.Errorf("handle/title = %q/%q", row[colHandle], row[colTitle])
	}
	if row[colVariantGrams] != "0" {
		t.Errorf("grams = %q, want 0", row[colVariantGrams])
	}
	if row[colVariantInventoryPolicy] != "deny" || row[colVariantFulfillment] != "manual" {
		t.Errorf("defaults = %q/%q", row[colVariantInventoryPolicy], row[colVariantFulfillment])
	}
	if row[colVariantWeightUnit] != "kg" {
		t.Errorf("weight unit = %q, want kg", row[colVariantWeightUnit])
	}
	if row[colPublished] != "false" || row[colStatus] != "draft" {
		t.Errorf("unpublished product = %q/%q, want false/draft", row[colPublished], row[colStatus])
	}
	if row[colImageSrc] != "" {
		t.Errorf("imageless product has image src %q", row[colImageSrc])
	}
}

func TestShopifyProductsNeverInterleave(t *testing.T) {
	first := fixtureProduct()
	second := bareProduct()
	table, err := BuildShopifyTable([]structs.Product{first, second})
	if err != nil {
		t.Fatalf("BuildShopifyTable: %v", err)
	}
	if len(table.Rows) != 7 {
		t.Fatalf("row count = %d, want 7", len(table.Rows))
	}
	for i := 0; i < 6; i++ {
		if table.Rows[i][colHandle] != "aurora-lamp" {
			t.Fatalf("row %d handle = %q, want aurora-lamp", i, table.Rows[i][colHandle])
		}
	}
	if table.Rows[6][colHandle] != "mystery-box" {
		t.Fatalf("last row handle = %q, want mystery-box", table.Rows[6][colHandle])
	}
}
