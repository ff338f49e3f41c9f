package catalog

import (
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Variant represents a sellable size/color combination of a product.
// It carries its own SKU and barcode; both may be empty until
// identifiers have been allocated.
type Variant struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	SKU           string          `gorm:"type:varchar(50);index"`
	Size          string          `gorm:"type:varchar(50)"`
	Color         string          `gorm:"type:varchar(50)"`
	Barcode       string          `gorm:"type:varchar(50);index"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SalesPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Stock         int             `gorm:"not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Variant) TableName() string {
	return "product_variants"
}

// NewVariant creates a new variant for a product. SKU and barcode
// start empty; prices default to the product-level prices.
func NewVariant(productID uuid.UUID, size, color string, purchasePrice, salesPrice decimal.Decimal) (*Variant, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if purchasePrice.IsNegative() || salesPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Variant prices cannot be negative")
	}

	now := time.Now()
	return &Variant{
		ID:            uuid.New(),
		ProductID:     productID,
		Size:          size,
		Color:         color,
		PurchasePrice: purchasePrice,
		SalesPrice:    salesPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// SetSKU assigns the variant SKU
func (v *Variant) SetSKU(sku string) error {
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	v.SKU = sku
	v.UpdatedAt = time.Now()
	return nil
}

// SetBarcode assigns the variant barcode
func (v *Variant) SetBarcode(barcode string) error {
	if len(barcode) > 50 {
		return shared.NewDomainError("INVALID_BARCODE", "Barcode cannot exceed 50 characters")
	}
	v.Barcode = barcode
	v.UpdatedAt = time.Now()
	return nil
}

// UpdatePrices sets the variant's own prices
func (v *Variant) UpdatePrices(purchasePrice, salesPrice decimal.Decimal) error {
	if purchasePrice.IsNegative() || salesPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Variant prices cannot be negative")
	}
	v.PurchasePrice = purchasePrice
	v.SalesPrice = salesPrice
	v.UpdatedAt = time.Now()
	return nil
}

// AdjustStock changes the stock level by delta, which may be negative.
// Stock never drops below zero.
func (v *Variant) AdjustStock(delta int) error {
	next := v.Stock + delta
	if next < 0 {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Stock cannot go negative")
	}
	v.Stock = next
	v.UpdatedAt = time.Now()
	return nil
}

// SetStock sets the absolute stock level
func (v *Variant) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	v.Stock = stock
	v.UpdatedAt = time.Now()
	return nil
}
