package products

import (
	"strconv"

	"github.com/vivekrai1999/shopspy/structs"
	"github.com/vivekrai1999/shopspy/table"
)

// Columns returns the catalog table's column set. Price-like columns
// surface numbers so sorting is numeric; everything else sorts as text.
func Columns() []table.Column[structs.Product] {
	return []table.Column[structs.Product]{
		{
			ID:      "image",
			Label:   "Image",
			Visible: true,
			Width:   64,
			Value: func(p structs.Product) any {
				if img := p.FirstImage(); img != nil {
					return img.Src
				}
				return ""
			},
		},
		{
			ID:         "title",
			Label:      "Title",
			Visible:    true,
			MinWidth:   200,
			Sortable:   true,
			Filterable: true,
			Value:      func(p structs.Product) any { return p.Title },
		},
		{
			ID:         "handle",
			Label:      "Handle",
			Visible:    false,
			Sortable:   true,
			Filterable: true,
			Value:      func(p structs.Product) any { return p.Handle },
		},
		{
			ID:         "vendor",
			Label:      "Vendor",
			Visible:    true,
			Sortable:   true,
			Filterable: true,
			Value:      func(p structs.Product) any { return p.Vendor },
		},
		{
			ID:         "product_type",
			Label:      "Type",
			Visible:    true,
			Sortable:   true,
			Filterable: true,
			Value:      func(p structs.Product) any { return p.ProductType },
		},
		{
			ID:         "price",
			Label:      "Price",
			Visible:    true,
			Sortable:   true,
			Filterable: true,
			Value:      func(p structs.Product) any { return firstVariantPrice(p) },
		},
		{
			ID:       "compare_at_price",
			Label:    "Compare At",
			Visible:  false,
			Sortable: true,
			Value:    func(p structs.Product) any { return firstVariantCompareAt(p) },
		},
		{
			ID:         "sku",
			Label:      "SKU",
			Visible:    false,
			Sortable:   true,
			Filterable: true,
			Value: func(p structs.Product) any {
				if len(p.Variants) == 0 {
					return ""
				}
				return p.Variants[0].SKU
			},
		},
		{
			ID:       "available",
			Label:    "Available",
			Visible:  true,
			Sortable: true,
			Value: func(p structs.Product) any {
				for _, v := range p.Variants {
					if v.Available {
						return true
					}
				}
				return false
			},
		},
		{
			ID:         "tags",
			Label:      "Tags",
			Visible:    false,
			Filterable: true,
			Value:      func(p structs.Product) any { return p.Tags },
		},
		{
			ID:       "variants",
			Label:    "Variants",
			Visible:  true,
			Sortable: true,
			Value:    func(p structs.Product) any { return len(p.Variants) },
		},
		{
			ID:       "images",
			Label:    "Images",
			Visible:  false,
			Sortable: true,
			Value:    func(p structs.Product) any { return len(p.Images) },
		},
		{
			ID:       "published",
			Label:    "Published",
			Visible:  false,
			Sortable: true,
			Value:    func(p structs.Product) any { return p.Published() },
		},
		{
			ID:       "created_at",
			Label:    "Created",
			Visible:  false,
			Sortable: true,
			Value:    func(p structs.Product) any { return p.CreatedAt },
		},
		{
			ID:       "updated_at",
			Label:    "Updated",
			Visible:  false,
			Sortable: true,
			Value:    func(p structs.Product) any { return p.UpdatedAt },
		},
	}
}

func firstVariantPrice(p structs.Product) any {
	if len(p.Variants) == 0 {
		return nil
	}
	if f, err := strconv.ParseFloat(p.Variants[0].Price, 64); err == nil {
		return f
	}
	return p.Variants[0].Price
}

func firstVariantCompareAt(p structs.Product) any {
	if len(p.Variants) == 0 {
		return nil
	}
	if f, err := strconv.ParseFloat(p.Variants[0].CompareAtPrice, 64); err == nil {
		return f
	}
	return p.Variants[0].CompareAtPrice
}
