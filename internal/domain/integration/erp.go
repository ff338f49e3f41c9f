// Package integration defines ports to external business systems.
package integration

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/trade"
)

// OrderStatus is the status an external ERP reports for an order
type OrderStatus struct {
	ExternalRef string    `json:"external_ref"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Connector is the outbound port to the external ERP. Implementations
// live in the infrastructure layer.
type Connector interface {
	// Enabled reports whether the connector is configured and active
	Enabled() bool

	// SubmitPurchaseOrder pushes a purchase order to the ERP and
	// returns the external order reference
	SubmitPurchaseOrder(ctx context.Context, order *trade.PurchaseOrder) (string, error)

	// GetOrderStatus fetches the current status of a previously
	// submitted order
	GetOrderStatus(ctx context.Context, externalRef string) (*OrderStatus, error)

	// TestConnection verifies credentials and reachability
	TestConnection(ctx context.Context) error
}
