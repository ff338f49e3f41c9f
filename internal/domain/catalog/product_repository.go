package catalog

import (
	"context"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	shared.Repository[Product]

	// FindPaginated returns products matching the filter with pagination
	FindPaginated(ctx context.Context, filter shared.Filter) (shared.Paginated[Product], error)

	// FindByVariantID returns the product owning the given variant
	FindByVariantID(ctx context.Context, variantID uuid.UUID) (*Product, error)

	// FindByVariantSKU returns the product owning a variant with the given SKU
	FindByVariantSKU(ctx context.Context, sku string) (*Product, error)

	// FindByVariantBarcode returns the product owning a variant with the given barcode
	FindByVariantBarcode(ctx context.Context, barcode string) (*Product, error)

	// FindBySupplier returns all products sourced from a supplier
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]Product, error)

	// BarcodeExists reports whether any variant outside the given
	// product already carries the barcode
	BarcodeExists(ctx context.Context, barcode string, excludeProductID uuid.UUID) (bool, error)
}

// AttributeRepository defines the persistence interface for master data attributes
type AttributeRepository interface {
	shared.Repository[Attribute]

	// FindByKind returns all attributes of one dimension
	FindByKind(ctx context.Context, kind AttributeKind) ([]Attribute, error)

	// FindByKindAndCode returns a single attribute by its natural key
	FindByKindAndCode(ctx context.Context, kind AttributeKind, code string) (*Attribute, error)
}

// SizeRepository defines the persistence interface for sizes
type SizeRepository interface {
	shared.Repository[Size]

	// FindByCategory returns the sizes of a category ordered by position
	FindByCategory(ctx context.Context, category string) ([]Size, error)
}

// ColorRepository defines the persistence interface for colors
type ColorRepository interface {
	shared.Repository[Color]

	// FindByCode returns a color by its code
	FindByCode(ctx context.Context, code string) (*Color, error)
}
