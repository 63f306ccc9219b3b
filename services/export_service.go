package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"

	"github.com/vivekrai1999/shopspy/export"
	"github.com/vivekrai1999/shopspy/structs"
)

// ExportFormat identifies one of the supported export encodings.
type ExportFormat string

const (
	FormatCSV     ExportFormat = "csv"
	FormatXLSX    ExportFormat = "xlsx"
	FormatJSON    ExportFormat = "json"
	FormatShopify ExportFormat = "shopify"
)

// ExportPayload is a ready-to-serve export document.
type ExportPayload struct {
	Data        []byte
	Filename    string
	ContentType string
}

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeJSON = "application/json; charset=utf-8"
)

// ExportService turns catalog sessions into downloadable documents,
// optionally restricted to a selected product subset.
type ExportService struct {
	logger  *gecho.Logger
	catalog *CatalogService
}

func NewExportService(logger *gecho.Logger, catalog *CatalogService) *ExportService {
	return &ExportService{
		logger:  logger,
		catalog: catalog,
	}
}

// Export encodes a session's products (or the selected subset) in the
// given format.
func (es *ExportService) Export(sessionID uuid.UUID, format ExportFormat, ids []int64) (*ExportPayload, error) {
	session, err := es.catalog.Get(sessionID)
	if err != nil {
		return nil, err
	}

	products, err := es.catalog.Subset(sessionID, ids)
	if err != nil {
		return nil, err
	}

	var data []byte
	var ext, contentType string

	switch format {
	case FormatCSV:
		data, err = export.ProductsCSV(products, nil)
		ext, contentType = "csv", contentTypeCSV
	case FormatXLSX:
		data, err = export.ProductsWorkbook(products, nil)
		ext, contentType = "xlsx", contentTypeXLSX
	case FormatJSON:
		data, err = export.ProductsJSON(products)
		ext, contentType = "json", contentTypeJSON
	case FormatShopify:
		data, err = export.ShopifyCSV(products)
		ext, contentType = "csv", contentTypeCSV
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, err
	}

	payload := &ExportPayload{
		Data:        data,
		Filename:    exportFilename(session.StoreURL, string(format), ext),
		ContentType: contentType,
	}

	es.logger.Info("Export generated",
		gecho.Field("session_id", sessionID.String()),
		gecho.Field("format", string(format)),
		gecho.Field("products", len(products)),
		gecho.Field("bytes", len(payload.Data)),
	)

	return payload, nil
}

// ExportCustom encodes a session's products through caller-defined field
// mappings, as CSV or a workbook.
func (es *ExportService) ExportCustom(sessionID uuid.UUID, mappings []structs.FieldMapping, asWorkbook bool, ids []int64) (*ExportPayload, error) {
	session, err := es.catalog.Get(sessionID)
	if err != nil {
		return nil, err
	}

	products, err := es.catalog.Subset(sessionID, ids)
	if err != nil {
		return nil, err
	}

	var data []byte
	var ext, contentType string
	if asWorkbook {
		data, err = export.CustomWorkbook(products, mappings)
		ext, contentType = "xlsx", contentTypeXLSX
	} else {
		data, err = export.CustomCSV(products, mappings)
		ext, contentType = "csv", contentTypeCSV
	}
	if err != nil {
		return nil, err
	}

	payload := &ExportPayload{
		Data:        data,
		Filename:    exportFilename(session.StoreURL, "custom", ext),
		ContentType: contentType,
	}

	es.logger.Info("Custom export generated",
		gecho.Field("session_id", sessionID.String()),
		gecho.Field("columns", len(mappings)),
		gecho.Field("products", len(products)),
	)

	return payload, nil
}

// exportFilename builds "<host>-<kind>-20060102-150405.<ext>" from the
// session's store origin.
func exportFilename(storeURL, kind, ext string) string {
	host := "products"
	if u, err := url.Parse(storeURL); err == nil && u.Host != "" {
		host = strings.TrimPrefix(u.Host, "www.")
	}
	stamp := time.Now().Format("20060102-150405")
	return fmt.Sprintf("%s-%s-%s.%s", host, kind, stamp, ext)
}
