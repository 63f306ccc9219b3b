package export

import (
	"encoding/json"
	"strings"

	"github.com/vivekrai1999/shopspy/pathexpr"
	"github.com/vivekrai1999/shopspy/structs"
)

// BuildCustomTable projects products through caller-supplied field
// mappings: one column per mapping, labels as headers, values resolved by
// dotted path against each product. Mapping validation happens before the
// product list is inspected, so a bad mapping reports as such even for an
// empty catalog.
func BuildCustomTable(products []structs.Product, mappings []structs.FieldMapping) (*Table, error) {
	if len(mappings) == 0 {
		return nil, ErrNoMappings
	}

	headers := make([]string, len(mappings))
	paths := make([]*pathexpr.Path, len(mappings))
	for i, m := range mappings {
		if strings.TrimSpace(m.Label) == "" {
			return nil, ErrMissingFieldName
		}
		headers[i] = m.Label
		if strings.TrimSpace(m.Path) == "" {
			continue // blank path keeps the column, cells stay empty
		}
		if p, err := pathexpr.Parse(m.Path); err == nil {
			paths[i] = &p
		}
		// Malformed paths resolve every cell to empty rather than
		// failing the whole export.
	}

	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	t := &Table{Headers: headers}
	for i := range products {
		record, err := toRecord(&products[i])
		if err != nil {
			return nil, err
		}
		row := make([]string, len(mappings))
		for j, p := range paths {
			if p == nil {
				continue
			}
			row[j] = p.Resolve(record)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// CustomCSV exports a mapping-driven projection as CSV.
func CustomCSV(products []structs.Product, mappings []structs.FieldMapping) ([]byte, error) {
	t, err := BuildCustomTable(products, mappings)
	if err != nil {
		return nil, err
	}
	return t.EncodeCSV()
}

// CustomWorkbook exports a mapping-driven projection as an xlsx workbook.
func CustomWorkbook(products []structs.Product, mappings []structs.FieldMapping) ([]byte, error) {
	t, err := BuildCustomTable(products, mappings)
	if err != nil {
		return nil, err
	}
	return t.EncodeWorkbook()
}

// toRecord converts a product to its generic JSON shape so dotted paths
// address wire field names rather than Go identifiers.
func toRecord(p *structs.Product) (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return record, nil
}
