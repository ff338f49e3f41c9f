package partner

import (
	"context"

	"github.com/atelier/backend/internal/domain/shared"
)

// SupplierRepository defines the persistence interface for suppliers
type SupplierRepository interface {
	shared.Repository[Supplier]

	// FindPaginated returns suppliers matching the filter with pagination
	FindPaginated(ctx context.Context, filter shared.Filter) (shared.Paginated[Supplier], error)

	// FindByNumber returns a supplier by its supplier number
	FindByNumber(ctx context.Context, supplierNumber string) (*Supplier, error)
}
