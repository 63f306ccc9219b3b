package export

import (
	"strconv"
	"strings"

	"github.com/vivekrai1999/shopspy/structs"
)

// Column positions of the Shopify bulk-import CSV schema. The header order
// is fixed; re-importing requires it exactly.
const (
	colHandle = iota
	colTitle
	colBody
	colVendor
	colType
	colTags
	colPublished
	colOption1Name
	colOption1Value
	colOption2Name
	colOption2Value
	colOption3Name
	colOption3Value
	colVariantSKU
	colVariantGrams
	colVariantInventoryTracker
	colVariantInventoryQty
	colVariantInventoryPolicy
	colVariantFulfillment
	colVariantPrice
	colVariantCompareAt
	colVariantRequiresShipping
	colVariantTaxable
	colVariantBarcode
	colImageSrc
	colImagePosition
	colImageAlt
	colGiftCard
	colSEOTitle
	colSEODescription
	colGoogleCategory
	colGoogleGender
	colGoogleAgeGroup
	colGoogleMPN
	colGoogleAdWordsGrouping
	colGoogleAdWordsLabels
	colGoogleCondition
	colGoogleCustomProduct
	colVariantImage
	colVariantWeightUnit
	colVariantTaxCode
	colCostPerItem
	colStatus

	shopifyColumnCount
)

// ShopifyHeaders is the 43-column bulk-import header row, in import order.
var ShopifyHeaders = []string{
	"Handle",
	"Title",
	"Body (HTML)",
	"Vendor",
	"Type",
	"Tags",
	"Published",
	"Option1 Name",
	"Option1 Value",
	"Option2 Name",
	"Option2 Value",
	"Option3 Name",
	"Option3 Value",
	"Variant SKU",
	"Variant Grams",
	"Variant Inventory Tracker",
	"Variant Inventory Qty",
	"Variant Inventory Policy",
	"Variant Fulfillment Service",
	"Variant Price",
	"Variant Compare At Price",
	"Variant Requires Shipping",
	"Variant Taxable",
	"Variant Barcode",
	"Image Src",
	"Image Position",
	"Image Alt Text",
	"Gift Card",
	"SEO Title",
	"SEO Description",
	"Google Shopping / Google Product Category",
	"Google Shopping / Gender",
	"Google Shopping / Age Group",
	"Google Shopping / MPN",
	"Google Shopping / AdWords Grouping",
	"Google Shopping / AdWords Labels",
	"Google Shopping / Condition",
	"Google Shopping / Custom Product",
	"Variant Image",
	"Variant Weight Unit",
	"Variant Tax Code",
	"Cost per item",
	"Status",
}

// Variant defaults required by the import contract when the source has no
// explicit value.
const (
	defaultInventoryPolicy    = "deny"
	defaultFulfillmentService = "manual"
	defaultWeightUnit         = "kg"
)

// BuildShopifyTable expands each product into its bulk-import row fan-out:
// one row per variant (product-level fields only on the first), then one
// row per extra image carrying only handle and image reference. Rows for
// different products are never interleaved; variant rows always precede
// extra-image rows.
func BuildShopifyTable(products []structs.Product) (*Table, error) {
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	t := &Table{Headers: ShopifyHeaders}
	for i := range products {
		t.Rows = append(t.Rows, projectProduct(&products[i])...)
	}
	return t, nil
}

// ShopifyCSV exports the bulk-import projection as CSV.
func ShopifyCSV(products []structs.Product) ([]byte, error) {
	t, err := BuildShopifyTable(products)
	if err != nil {
		return nil, err
	}
	return t.EncodeCSV()
}

func projectProduct(p *structs.Product) [][]string {
	var rows [][]string

	if len(p.Variants) == 0 {
		rows = append(rows, standaloneRow(p))
	} else {
		for i := range p.Variants {
			rows = append(rows, variantRow(p, &p.Variants[i], i == 0))
		}
	}

	// Extra images ride along as handle-only rows, positions 2..N.
	for i := 1; i < len(p.Images); i++ {
		rows = append(rows, imageRow(p, &p.Images[i], i+1))
	}
	return rows
}

// standaloneRow carries all product-level fields plus placeholder variant
// fields for a product with no variants.
func standaloneRow(p *structs.Product) []string {
	row := newRow()
	fillProductFields(row, p)
	fillVariantDefaults(row)
	row[colVariantGrams] = "0"
	if img := p.FirstImage(); img != nil {
		row[colImageSrc] = img.Src
		row[colImagePosition] = "1"
		row[colImageAlt] = img.Alt
	}
	return row
}

func variantRow(p *structs.Product, v *structs.Variant, first bool) []string {
	row := newRow()
	row[colHandle] = p.Handle

	// Product-level fields appear only on the first variant's row; the
	// import format groups subsequent rows under the same handle.
	if first {
		fillProductFields(row, p)
		if img := p.FirstImage(); img != nil {
			row[colImageSrc] = img.Src
			row[colImagePosition] = "1"
			row[colImageAlt] = img.Alt
		}
	}

	row[colOption1Value] = v.Option1
	row[colOption2Value] = v.Option2
	row[colOption3Value] = v.Option3
	row[colVariantSKU] = v.SKU
	row[colVariantGrams] = strconv.Itoa(v.Grams)
	row[colVariantInventoryPolicy] = defaultInventoryPolicy
	row[colVariantFulfillment] = defaultFulfillmentService
	row[colVariantPrice] = v.Price
	row[colVariantCompareAt] = v.CompareAtPrice
	row[colVariantRequiresShipping] = trueFalse(v.RequiresShipping)
	row[colVariantTaxable] = trueFalse(v.Taxable)
	row[colVariantWeightUnit] = defaultWeightUnit

	// Per-row variant image, falling back to the product's first image.
	if v.FeaturedImage != nil {
		row[colVariantImage] = v.FeaturedImage.Src
	} else if img := p.FirstImage(); img != nil {
		row[colVariantImage] = img.Src
	}
	return row
}

// imageRow carries a supplementary image under the product's handle; every
// other column stays blank.
func imageRow(p *structs.Product, img *structs.Image, position int) []string {
	row := newRow()
	row[colHandle] = p.Handle
	row[colImageSrc] = img.Src
	row[colImagePosition] = strconv.Itoa(position)
	row[colImageAlt] = img.Alt
	return row
}

func fillProductFields(row []string, p *structs.Product) {
	row[colHandle] = p.Handle
	row[colTitle] = p.Title
	row[colBody] = p.BodyHTML
	row[colVendor] = p.Vendor
	row[colType] = p.ProductType
	row[colTags] = strings.Join(p.Tags, ", ")
	row[colPublished] = trueFalse(p.Published())
	for i, opt := range p.Options {
		switch i {
		case 0:
			row[colOption1Name] = opt.Name
		case 1:
			row[colOption2Name] = opt.Name
		case 2:
			row[colOption3Name] = opt.Name
		}
	}
	if p.Published() {
		row[colStatus] = "active"
	} else {
		row[colStatus] = "draft"
	}
}

func fillVariantDefaults(row []string) {
	row[colVariantInventoryPolicy] = defaultInventoryPolicy
	row[colVariantFulfillment] = defaultFulfillmentService
	row[colVariantRequiresShipping] = "true"
	row[colVariantTaxable] = "true"
	row[colVariantWeightUnit] = defaultWeightUnit
}

func newRow() []string {
	return make([]string, shopifyColumnCount)
}

func trueFalse(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
