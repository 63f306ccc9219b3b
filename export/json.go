package export

import (
	"encoding/json"

	"github.com/vivekrai1999/shopspy/structs"
)

// ProductsJSON exports products as pretty-printed JSON, preserving the
// source wire shape.
func ProductsJSON(products []structs.Product) ([]byte, error) {
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	return json.MarshalIndent(products, "", "  ")
}
