package catalog

import (
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a style in the catalog. It is the aggregate root
// for its variants: identifier uniqueness is enforced across the
// variant set before the aggregate may be persisted.
type Product struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(200);not null"`
	Brand         string          `gorm:"type:varchar(100);index"`
	Collection    string          `gorm:"type:varchar(100)"`
	Category      string          `gorm:"type:varchar(100);index"`
	SizeCategory  string          `gorm:"type:varchar(100)"`
	ProductType   string          `gorm:"type:varchar(100)"`
	SupplierID    *uuid.UUID      `gorm:"type:uuid;index"`
	Description   string          `gorm:"type:text"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SalesPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Variants      []Variant       `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name string) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		PurchasePrice:     decimal.Zero,
		SalesPrice:        decimal.Zero,
		Variants:          make([]Variant, 0),
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's descriptive information
func (p *Product) Update(name, brand, collection, category, sizeCategory, productType, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Brand = brand
	p.Collection = collection
	p.Category = category
	p.SizeCategory = sizeCategory
	p.ProductType = productType
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetSupplier assigns the supplying partner
func (p *Product) SetSupplier(supplierID *uuid.UUID) {
	p.SupplierID = supplierID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetPrices sets the product-level prices and cascades them to every
// variant, matching the way a price change on the style propagates to
// its size/color combinations.
func (p *Product) SetPrices(purchasePrice, salesPrice decimal.Decimal) error {
	if purchasePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}
	if salesPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sales price cannot be negative")
	}

	oldPurchase := p.PurchasePrice
	oldSales := p.SalesPrice

	p.PurchasePrice = purchasePrice
	p.SalesPrice = salesPrice
	for i := range p.Variants {
		p.Variants[i].PurchasePrice = purchasePrice
		p.Variants[i].SalesPrice = salesPrice
		p.Variants[i].UpdatedAt = time.Now()
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductPriceChangedEvent(p, oldPurchase, oldSales))

	return nil
}

// AddVariant appends a variant to the product
func (p *Product) AddVariant(variant *Variant) error {
	if variant == nil {
		return shared.NewDomainError("INVALID_VARIANT", "Variant cannot be nil")
	}
	if variant.ProductID != p.ID {
		return shared.NewDomainError("INVALID_VARIANT", "Variant belongs to a different product")
	}

	p.Variants = append(p.Variants, *variant)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewVariantAddedEvent(p, variant))

	return nil
}

// RemoveVariant removes a variant by ID
func (p *Product) RemoveVariant(variantID uuid.UUID) error {
	for idx, v := range p.Variants {
		if v.ID == variantID {
			p.Variants = append(p.Variants[:idx], p.Variants[idx+1:]...)
			p.UpdatedAt = time.Now()
			p.IncrementVersion()
			return nil
		}
	}
	return shared.NewDomainError("VARIANT_NOT_FOUND", "Variant not found on product")
}

// GetVariant returns a variant by its ID
func (p *Product) GetVariant(variantID uuid.UUID) *Variant {
	for idx := range p.Variants {
		if p.Variants[idx].ID == variantID {
			return &p.Variants[idx]
		}
	}
	return nil
}

// HasVariantForSize reports whether a variant for the given size and
// color combination already exists
func (p *Product) HasVariantForSize(size, color string) bool {
	for _, v := range p.Variants {
		if v.Size == size && v.Color == color {
			return true
		}
	}
	return false
}

// EnsureUniqueIdentifiers scans the full variant set for SKU and
// barcode collisions. It returns a DuplicateIdentifierError naming
// every offender, or nil when the set is clean. Persistence must not
// proceed while this returns an error.
func (p *Product) EnsureUniqueIdentifiers() error {
	skus := FindDuplicateSKUs(p.Variants)
	barcodes := FindDuplicateBarcodes(p.Variants)
	if len(skus) == 0 && len(barcodes) == 0 {
		return nil
	}
	return &DuplicateIdentifierError{SKUs: skus, Barcodes: barcodes}
}

// VariantCount returns the number of variants
func (p *Product) VariantCount() int {
	return len(p.Variants)
}

// TotalStock returns the summed stock across all variants
func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
