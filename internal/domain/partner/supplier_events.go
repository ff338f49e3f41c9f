package partner

import "github.com/atelier/backend/internal/domain/shared"

// Event types for the partner domain
const (
	EventTypeSupplierCreated = "partner.supplier.created"
	EventTypeSupplierUpdated = "partner.supplier.updated"
	EventTypeSupplierDeleted = "partner.supplier.deleted"
)

// SupplierCreatedEvent is raised when a supplier is created
type SupplierCreatedEvent struct {
	shared.BaseDomainEvent
	SupplierNumber string `json:"supplier_number"`
	Name           string `json:"name"`
}

// NewSupplierCreatedEvent creates a new SupplierCreatedEvent
func NewSupplierCreatedEvent(supplier *Supplier) *SupplierCreatedEvent {
	return &SupplierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierCreated, "Supplier", supplier.ID),
		SupplierNumber:  supplier.SupplierNumber,
		Name:            supplier.Name,
	}
}

// SupplierUpdatedEvent is raised when supplier details change
type SupplierUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewSupplierUpdatedEvent creates a new SupplierUpdatedEvent
func NewSupplierUpdatedEvent(supplier *Supplier) *SupplierUpdatedEvent {
	return &SupplierUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierUpdated, "Supplier", supplier.ID),
		Name:            supplier.Name,
	}
}
