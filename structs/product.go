package structs

// Product is one storefront product as served by /products.json.
// Shopify-compatible stores expose this shape publicly, so all fields are
// decoded as-is and treated as immutable once fetched.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Handle      string    `json:"handle"`
	BodyHTML    string    `json:"body_html"`
	PublishedAt string    `json:"published_at"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"product_type"`
	Tags        []string  `json:"tags"`
	Variants    []Variant `json:"variants"`
	Images      []Image   `json:"images"`
	Options     []Option  `json:"options"`
}

// Variant is a purchasable SKU-level configuration of a product.
type Variant struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Option1          string  `json:"option1"`
	Option2          string  `json:"option2"`
	Option3          string  `json:"option3"`
	SKU              string  `json:"sku"`
	RequiresShipping bool    `json:"requires_shipping"`
	Taxable          bool    `json:"taxable"`
	FeaturedImage    *Image  `json:"featured_image"`
	Available        bool    `json:"available"`
	Price            string  `json:"price"`
	Grams            int     `json:"grams"`
	CompareAtPrice   string  `json:"compare_at_price"`
	Position         int     `json:"position"`
	ProductID        int64   `json:"product_id"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// Image is a product image with pixel dimensions.
type Image struct {
	ID         int64   `json:"id"`
	CreatedAt  string  `json:"created_at"`
	Position   int     `json:"position"`
	UpdatedAt  string  `json:"updated_at"`
	ProductID  int64   `json:"product_id"`
	VariantIDs []int64 `json:"variant_ids"`
	Src        string  `json:"src"`
	Alt        string  `json:"alt,omitempty"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
}

// Option is a product option (e.g. Size) with its ordered allowed values.
type Option struct {
	Name     string   `json:"name"`
	Position int      `json:"position"`
	Values   []string `json:"values"`
}

// ProductsResponse is one page of the storefront products endpoint.
type ProductsResponse struct {
	Products []Product `json:"products"`
}

// FirstImage returns the product's first image, or nil if it has none.
func (p *Product) FirstImage() *Image {
	if len(p.Images) == 0 {
		return nil
	}
	return &p.Images[0]
}

// Published reports whether the product has a publication timestamp.
func (p *Product) Published() bool {
	return p.PublishedAt != ""
}
