// Package export renders catalog data to interchange formats.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/atelier/backend/internal/domain/shared"
)

// csvHeader is the column layout of the variant-level CSV export,
// one row per variant
var csvHeader = []string{
	"product_name", "brand", "collection", "category", "product_type",
	"sku", "size", "color", "barcode",
	"purchase_price", "sales_price", "stock",
}

// ProductExporter streams the product catalog to CSV or JSON
type ProductExporter struct {
	productRepo catalog.ProductRepository
}

// NewProductExporter creates a new ProductExporter
func NewProductExporter(productRepo catalog.ProductRepository) *ProductExporter {
	return &ProductExporter{productRepo: productRepo}
}

// WriteCSV writes the catalog as CSV, one row per variant. Products
// without variants contribute a single row with empty variant columns.
func (e *ProductExporter) WriteCSV(ctx context.Context, w io.Writer) error {
	products, err := e.fetchAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for idx := range products {
		p := &products[idx]
		if len(p.Variants) == 0 {
			row := []string{
				p.Name, p.Brand, p.Collection, p.Category, p.ProductType,
				"", "", "", "",
				p.PurchasePrice.String(), p.SalesPrice.String(), "0",
			}
			if err := cw.Write(row); err != nil {
				return err
			}
			continue
		}
		for vi := range p.Variants {
			v := &p.Variants[vi]
			row := []string{
				p.Name, p.Brand, p.Collection, p.Category, p.ProductType,
				v.SKU, v.Size, v.Color, v.Barcode,
				v.PurchasePrice.String(), v.SalesPrice.String(), strconv.Itoa(v.Stock),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// exportVariant is the JSON shape of an exported variant
type exportVariant struct {
	SKU           string `json:"sku"`
	Size          string `json:"size"`
	Color         string `json:"color"`
	Barcode       string `json:"barcode"`
	PurchasePrice string `json:"purchase_price"`
	SalesPrice    string `json:"sales_price"`
	Stock         int    `json:"stock"`
}

// exportProduct is the JSON shape of an exported product
type exportProduct struct {
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Collection    string          `json:"collection"`
	Category      string          `json:"category"`
	SizeCategory  string          `json:"size_category"`
	ProductType   string          `json:"product_type"`
	Description   string          `json:"description"`
	PurchasePrice string          `json:"purchase_price"`
	SalesPrice    string          `json:"sales_price"`
	Variants      []exportVariant `json:"variants"`
}

// WriteJSON writes the catalog as a JSON document
func (e *ProductExporter) WriteJSON(ctx context.Context, w io.Writer) error {
	products, err := e.fetchAll(ctx)
	if err != nil {
		return err
	}

	out := make([]exportProduct, 0, len(products))
	for idx := range products {
		p := &products[idx]
		variants := make([]exportVariant, 0, len(p.Variants))
		for vi := range p.Variants {
			v := &p.Variants[vi]
			variants = append(variants, exportVariant{
				SKU:           v.SKU,
				Size:          v.Size,
				Color:         v.Color,
				Barcode:       v.Barcode,
				PurchasePrice: v.PurchasePrice.String(),
				SalesPrice:    v.SalesPrice.String(),
				Stock:         v.Stock,
			})
		}
		out = append(out, exportProduct{
			Name:          p.Name,
			Brand:         p.Brand,
			Collection:    p.Collection,
			Category:      p.Category,
			SizeCategory:  p.SizeCategory,
			ProductType:   p.ProductType,
			Description:   p.Description,
			PurchasePrice: p.PurchasePrice.String(),
			SalesPrice:    p.SalesPrice.String(),
			Variants:      variants,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// fetchAll pages through the repository so large catalogs do not pin
// one giant result set
func (e *ProductExporter) fetchAll(ctx context.Context) ([]catalog.Product, error) {
	const pageSize = 200

	all := make([]catalog.Product, 0)
	filter := shared.DefaultFilter()
	filter.PageSize = pageSize
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	for page := 1; ; page++ {
		filter.Page = page
		result, err := e.productRepo.FindPaginated(ctx, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, result.Items...)
		if page >= result.TotalPages || len(result.Items) == 0 {
			break
		}
	}
	return all, nil
}
