package catalog

import (
	"time"

	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the request to create a product
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required,max=200"`
	Brand         string           `json:"brand" binding:"max=100"`
	Collection    string           `json:"collection" binding:"max=100"`
	Category      string           `json:"category" binding:"max=100"`
	SizeCategory  string           `json:"size_category" binding:"max=100"`
	ProductType   string           `json:"product_type" binding:"max=100"`
	SupplierID    *uuid.UUID       `json:"supplier_id"`
	Description   string           `json:"description"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalesPrice    *decimal.Decimal `json:"sales_price"`
}

// UpdateProductRequest is the request to update a product
type UpdateProductRequest struct {
	Name         string     `json:"name" binding:"required,max=200"`
	Brand        string     `json:"brand" binding:"max=100"`
	Collection   string     `json:"collection" binding:"max=100"`
	Category     string     `json:"category" binding:"max=100"`
	SizeCategory string     `json:"size_category" binding:"max=100"`
	ProductType  string     `json:"product_type" binding:"max=100"`
	SupplierID   *uuid.UUID `json:"supplier_id"`
	Description  string     `json:"description"`
}

// UpdateProductPricesRequest is the request to change product prices
type UpdateProductPricesRequest struct {
	PurchasePrice decimal.Decimal `json:"purchase_price" binding:"required"`
	SalesPrice    decimal.Decimal `json:"sales_price" binding:"required"`
}

// ProductListFilter is the filter for listing products
type ProductListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Brand    string `form:"brand"`
	Category string `form:"category"`
}

// AddVariantRequest is the request to add a single variant
type AddVariantRequest struct {
	Size  string `json:"size" binding:"max=50"`
	Color string `json:"color" binding:"max=50"`
}

// UpdateVariantRequest is the request to update a variant
type UpdateVariantRequest struct {
	SKU           string           `json:"sku" binding:"max=50"`
	Barcode       string           `json:"barcode" binding:"max=50"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalesPrice    *decimal.Decimal `json:"sales_price"`
	Stock         *int             `json:"stock"`
}

// CheckIdentifierRequest asks whether a variant's identifier collides
// with another variant of the same product
type CheckIdentifierRequest struct {
	Field catalog.IdentifierField `json:"field" binding:"required,oneof=sku barcode"`
}

// AllocationWarning reports a best-effort identifier allocation that
// failed; the variant was still created with the field left empty
type AllocationWarning struct {
	VariantID uuid.UUID `json:"variant_id"`
	Field     string    `json:"field"`
	Reason    string    `json:"reason"`
}

// VariantResponse is the response representation of a variant
type VariantResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	SKU           string          `json:"sku"`
	Size          string          `json:"size"`
	Color         string          `json:"color"`
	Barcode       string          `json:"barcode"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalesPrice    decimal.Decimal `json:"sales_price"`
	Stock         int             `json:"stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AddVariantResponse carries the created variant plus any allocation warnings
type AddVariantResponse struct {
	Variant  VariantResponse     `json:"variant"`
	Warnings []AllocationWarning `json:"warnings,omitempty"`
}

// GenerateVariantsResponse carries the variants created by a size run
type GenerateVariantsResponse struct {
	Variants []VariantResponse   `json:"variants"`
	Warnings []AllocationWarning `json:"warnings,omitempty"`
}

// CheckIdentifierResponse reports the outcome of a duplicate check
type CheckIdentifierResponse struct {
	Conflict bool `json:"conflict"`
}

// ProductResponse is the response representation of a product
type ProductResponse struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Brand         string            `json:"brand"`
	Collection    string            `json:"collection"`
	Category      string            `json:"category"`
	SizeCategory  string            `json:"size_category"`
	ProductType   string            `json:"product_type"`
	SupplierID    *uuid.UUID        `json:"supplier_id"`
	Description   string            `json:"description"`
	PurchasePrice decimal.Decimal   `json:"purchase_price"`
	SalesPrice    decimal.Decimal   `json:"sales_price"`
	Variants      []VariantResponse `json:"variants"`
	TotalStock    int               `json:"total_stock"`
	Version       int               `json:"version"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// AttributeRequest is the request to create or rename an attribute
type AttributeRequest struct {
	Code string `json:"code" binding:"required,max=50"`
	Name string `json:"name" binding:"required,max=100"`
}

// AttributeResponse is the response representation of an attribute
type AttributeResponse struct {
	ID   uuid.UUID `json:"id"`
	Kind string    `json:"kind"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

// SizeRequest is the request to create a size
type SizeRequest struct {
	Code     string `json:"code" binding:"required,max=20"`
	Name     string `json:"name" binding:"required,max=50"`
	Category string `json:"category" binding:"required,max=100"`
	Position int    `json:"position"`
}

// SizeResponse is the response representation of a size
type SizeResponse struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Position int       `json:"position"`
}

// ColorRequest is the request to create a color
type ColorRequest struct {
	Code string `json:"code" binding:"required,max=20"`
	Name string `json:"name" binding:"required,max=50"`
	Hex  string `json:"hex" binding:"max=7"`
}

// ColorResponse is the response representation of a color
type ColorResponse struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
	Hex  string    `json:"hex"`
}

// ToVariantResponse converts a domain variant to its response form
func ToVariantResponse(v *catalog.Variant) VariantResponse {
	return VariantResponse{
		ID:            v.ID,
		ProductID:     v.ProductID,
		SKU:           v.SKU,
		Size:          v.Size,
		Color:         v.Color,
		Barcode:       v.Barcode,
		PurchasePrice: v.PurchasePrice,
		SalesPrice:    v.SalesPrice,
		Stock:         v.Stock,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// ToProductResponse converts a domain product to its response form
func ToProductResponse(p *catalog.Product) ProductResponse {
	variants := make([]VariantResponse, 0, len(p.Variants))
	for idx := range p.Variants {
		variants = append(variants, ToVariantResponse(&p.Variants[idx]))
	}
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Collection:    p.Collection,
		Category:      p.Category,
		SizeCategory:  p.SizeCategory,
		ProductType:   p.ProductType,
		SupplierID:    p.SupplierID,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SalesPrice:    p.SalesPrice,
		Variants:      variants,
		TotalStock:    p.TotalStock(),
		Version:       p.GetVersion(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToAttributeResponse converts a domain attribute to its response form
func ToAttributeResponse(a *catalog.Attribute) AttributeResponse {
	return AttributeResponse{ID: a.ID, Kind: string(a.Kind), Code: a.Code, Name: a.Name}
}

// ToSizeResponse converts a domain size to its response form
func ToSizeResponse(s *catalog.Size) SizeResponse {
	return SizeResponse{ID: s.ID, Code: s.Code, Name: s.Name, Category: s.Category, Position: s.Position}
}

// ToColorResponse converts a domain color to its response form
func ToColorResponse(c *catalog.Color) ColorResponse {
	return ColorResponse{ID: c.ID, Code: c.Code, Name: c.Name, Hex: c.Hex}
}
