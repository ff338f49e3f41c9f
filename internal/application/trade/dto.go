package trade

import (
	"time"

	"github.com/atelier/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest is the request to create a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID       uuid.UUID             `json:"supplier_id" binding:"required"`
	ExpectedDelivery *time.Time            `json:"expected_delivery"`
	Notes            string                `json:"notes"`
	Items            []AddOrderItemRequest `json:"items"`
}

// AddOrderItemRequest is the request to add a line to an order
type AddOrderItemRequest struct {
	VariantID     uuid.UUID       `json:"variant_id" binding:"required"`
	Quantity      int             `json:"quantity" binding:"required,min=1"`
	PurchasePrice decimal.Decimal `json:"purchase_price" binding:"required"`
}

// UpdateOrderItemRequest is the request to change a line quantity
type UpdateOrderItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CancelOrderRequest is the request to cancel an order
type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// OrderListFilter is the filter for listing purchase orders
type OrderListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
	Search   string `form:"search"`
}

// OrderItemResponse is the response representation of an order line
type OrderItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	VariantID     uuid.UUID       `json:"variant_id"`
	SKU           string          `json:"sku"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Amount        decimal.Decimal `json:"amount"`
}

// PurchaseOrderResponse is the response representation of an order
type PurchaseOrderResponse struct {
	ID               uuid.UUID           `json:"id"`
	OrderNumber      string              `json:"order_number"`
	SupplierID       uuid.UUID           `json:"supplier_id"`
	SupplierName     string              `json:"supplier_name"`
	Status           string              `json:"status"`
	OrderDate        time.Time           `json:"order_date"`
	ExpectedDelivery *time.Time          `json:"expected_delivery"`
	Notes            string              `json:"notes"`
	Items            []OrderItemResponse `json:"items"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	ExternalRef      string              `json:"external_ref,omitempty"`
	SubmittedAt      *time.Time          `json:"submitted_at,omitempty"`
	ReceivedAt       *time.Time          `json:"received_at,omitempty"`
	CancelledAt      *time.Time          `json:"cancelled_at,omitempty"`
	CancelReason     string              `json:"cancel_reason,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// ERPStatusResponse reports the order status held by the external ERP
type ERPStatusResponse struct {
	ExternalRef string    `json:"external_ref"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToOrderItemResponse converts a domain order item to its response form
func ToOrderItemResponse(i *trade.PurchaseOrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:            i.ID,
		VariantID:     i.VariantID,
		SKU:           i.SKU,
		Description:   i.Description,
		Quantity:      i.Quantity,
		PurchasePrice: i.PurchasePrice,
		Amount:        i.Amount(),
	}
}

// ToPurchaseOrderResponse converts a domain order to its response form
func ToPurchaseOrderResponse(o *trade.PurchaseOrder) PurchaseOrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for idx := range o.Items {
		items = append(items, ToOrderItemResponse(&o.Items[idx]))
	}
	return PurchaseOrderResponse{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		SupplierID:       o.SupplierID,
		SupplierName:     o.SupplierName,
		Status:           string(o.Status),
		OrderDate:        o.OrderDate,
		ExpectedDelivery: o.ExpectedDelivery,
		Notes:            o.Notes,
		Items:            items,
		TotalAmount:      o.TotalAmount(),
		ExternalRef:      o.ExternalRef,
		SubmittedAt:      o.SubmittedAt,
		ReceivedAt:       o.ReceivedAt,
		CancelledAt:      o.CancelledAt,
		CancelReason:     o.CancelReason,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
