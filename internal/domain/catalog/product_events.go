package catalog

import (
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for the catalog domain
const (
	EventTypeProductCreated      = "catalog.product.created"
	EventTypeProductUpdated      = "catalog.product.updated"
	EventTypeProductPriceChanged = "catalog.product.price_changed"
	EventTypeProductDeleted      = "catalog.product.deleted"
	EventTypeVariantAdded        = "catalog.variant.added"
)

// ProductCreatedEvent is raised when a product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, "Product", product.ID),
		Name:            product.Name,
	}
}

// ProductUpdatedEvent is raised when product details change
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, "Product", product.ID),
		Name:            product.Name,
	}
}

// ProductPriceChangedEvent is raised when product prices change
type ProductPriceChangedEvent struct {
	shared.BaseDomainEvent
	OldPurchasePrice decimal.Decimal `json:"old_purchase_price"`
	OldSalesPrice    decimal.Decimal `json:"old_sales_price"`
	NewPurchasePrice decimal.Decimal `json:"new_purchase_price"`
	NewSalesPrice    decimal.Decimal `json:"new_sales_price"`
}

// NewProductPriceChangedEvent creates a new ProductPriceChangedEvent
func NewProductPriceChangedEvent(product *Product, oldPurchase, oldSales decimal.Decimal) *ProductPriceChangedEvent {
	return &ProductPriceChangedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeProductPriceChanged, "Product", product.ID),
		OldPurchasePrice: oldPurchase,
		OldSalesPrice:    oldSales,
		NewPurchasePrice: product.PurchasePrice,
		NewSalesPrice:    product.SalesPrice,
	}
}

// ProductDeletedEvent is raised when a product is removed
type ProductDeletedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewProductDeletedEvent creates a new ProductDeletedEvent
func NewProductDeletedEvent(product *Product) *ProductDeletedEvent {
	return &ProductDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDeleted, "Product", product.ID),
		Name:            product.Name,
	}
}

// VariantAddedEvent is raised when a variant is added to a product
type VariantAddedEvent struct {
	shared.BaseDomainEvent
	VariantID string `json:"variant_id"`
	SKU       string `json:"sku"`
	Barcode   string `json:"barcode"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// NewVariantAddedEvent creates a new VariantAddedEvent
func NewVariantAddedEvent(product *Product, variant *Variant) *VariantAddedEvent {
	return &VariantAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVariantAdded, "Product", product.ID),
		VariantID:       variant.ID.String(),
		SKU:             variant.SKU,
		Barcode:         variant.Barcode,
		Size:            variant.Size,
		Color:           variant.Color,
	}
}
