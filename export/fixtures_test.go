package export

import "github.com/vivekrai1999/shopspy/structs"

// fixtureProduct builds a fully-populated product: three variants, four
// images, two options. Most projection tests derive smaller shapes from it.
func fixtureProduct() structs.Product {
	return structs.Product{
		ID:          632910392,
		Title:       "Aurora Lamp",
		Handle:      "aurora-lamp",
		BodyHTML:    "<p>A <strong>bright</strong> lamp.</p>",
		PublishedAt: "2024-02-01T09:00:00Z",
		CreatedAt:   "2024-01-15T12:00:00Z",
		UpdatedAt:   "2024-03-01T08:30:00Z",
		Vendor:      "Lumen Co",
		ProductType: "Lighting",
		Tags:        []string{"lamp", "led"},
		Options: []structs.Option{
			{Name: "Color", Position: 1, Values: []string{"White", "Black"}},
			{Name: "Size", Position: 2, Values: []string{"S", "L"}},
		},
		Variants: []structs.Variant{
			{
				ID:               101,
				Title:            "White / S",
				Option1:          "White",
				Option2:          "S",
				SKU:              "AL-W-S",
				RequiresShipping: true,
				Taxable:          true,
				Available:        true,
				Price:            "49.95",
				CompareAtPrice:   "59.95",
				Grams:            1200,
			},
			{
				ID:        102,
				Title:     "White / L",
				Option1:   "White",
				Option2:   "L",
				SKU:       "AL-W-L",
				Available: true,
				Price:     "54.95",
				Grams:     1500,
				FeaturedImage: &structs.Image{
					ID:  9002,
					Src: "https://cdn.example.com/aurora-white-l.jpg",
				},
			},
			{
				ID:      103,
				Title:   "Black / S",
				Option1: "Black",
				Option2: "S",
				SKU:     "AL-B-S",
				Price:   "49.95",
				Grams:   1200,
			},
		},
		Images: []structs.Image{
			{ID: 9001, Position: 1, Src: "https://cdn.example.com/aurora-1.jpg", Alt: "front"},
			{ID: 9002, Position: 2, Src: "https://cdn.example.com/aurora-2.jpg", Alt: "side"},
			{ID: 9003, Position: 3, Src: "https://cdn.example.com/aurora-3.jpg"},
			{ID: 9004, Position: 4, Src: "https://cdn.example.com/aurora-4.jpg", Alt: "detail"},
		},
	}
}

// bareProduct has no variants, images, tags, or publication timestamp.
func bareProduct() structs.Product {
	return structs.Product{
		ID:     7,
		Title:  "Mystery Box",
		Handle: "mystery-box",
	}
}
