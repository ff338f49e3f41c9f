package trade

import (
	"context"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseOrderRepository defines the persistence interface for purchase orders
type PurchaseOrderRepository interface {
	shared.Repository[PurchaseOrder]

	// FindPaginated returns orders matching the filter with pagination
	FindPaginated(ctx context.Context, filter shared.Filter) (shared.Paginated[PurchaseOrder], error)

	// FindByOrderNumber returns an order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrder, error)

	// FindBySupplier returns all orders for a supplier
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]PurchaseOrder, error)

	// FindByStatus returns all orders in the given status
	FindByStatus(ctx context.Context, status PurchaseOrderStatus) ([]PurchaseOrder, error)
}
