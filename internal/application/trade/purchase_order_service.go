package trade

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/atelier/backend/internal/domain/integration"
	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/atelier/backend/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PurchaseOrderService handles purchase order operations, including
// the hand-off to the external ERP
type PurchaseOrderService struct {
	orderRepo    trade.PurchaseOrderRepository
	supplierRepo partner.SupplierRepository
	productRepo  catalog.ProductRepository
	connector    integration.Connector
	events       shared.EventPublisher
	logger       *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orderRepo trade.PurchaseOrderRepository,
	supplierRepo partner.SupplierRepository,
	productRepo catalog.ProductRepository,
	connector integration.Connector,
	events shared.EventPublisher,
	logger *zap.Logger,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		connector:    connector,
		events:       events,
		logger:       logger,
	}
}

// Create creates a draft purchase order, optionally with initial lines
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewPurchaseOrder(newOrderNumber(), supplier.ID, supplier.Name)
	if err != nil {
		return nil, err
	}
	if req.ExpectedDelivery != nil {
		if err := order.SetExpectedDelivery(req.ExpectedDelivery); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		order.SetNotes(req.Notes)
	}

	for _, item := range req.Items {
		if err := s.addItem(ctx, order, item); err != nil {
			return nil, err
		}
	}

	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, filter OrderListFilter) (shared.Paginated[PurchaseOrderResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		status := trade.PurchaseOrderStatus(filter.Status)
		if !status.IsValid() {
			return shared.Paginated[PurchaseOrderResponse]{}, shared.NewDomainError("INVALID_STATUS", "Unknown purchase order status")
		}
		domainFilter.Filters["status"] = string(status)
	}

	page, err := s.orderRepo.FindPaginated(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[PurchaseOrderResponse]{}, err
	}

	items := make([]PurchaseOrderResponse, 0, len(page.Items))
	for idx := range page.Items {
		items = append(items, ToPurchaseOrderResponse(&page.Items[idx]))
	}
	return shared.Paginated[PurchaseOrderResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// AddItem adds a line to a draft order
func (s *PurchaseOrderService) AddItem(ctx context.Context, orderID uuid.UUID, req AddOrderItemRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.addItem(ctx, order, req); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// UpdateItemQuantity changes a line quantity on a draft order
func (s *PurchaseOrderService) UpdateItemQuantity(ctx context.Context, orderID, itemID uuid.UUID, req UpdateOrderItemRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.UpdateItemQuantity(itemID, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// RemoveItem removes a line from a draft order
func (s *PurchaseOrderService) RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := order.RemoveItem(itemID); err != nil {
		return err
	}
	return s.save(ctx, order)
}

// Submit hands the order to the external ERP and transitions it to
// submitted. When the connector is disabled the order is submitted
// locally without an external reference.
func (s *PurchaseOrderService) Submit(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	externalRef := ""
	if s.connector != nil && s.connector.Enabled() {
		externalRef, err = s.connector.SubmitPurchaseOrder(ctx, order)
		if err != nil {
			s.logger.Error("purchase order hand-off failed",
				zap.String("order_number", order.OrderNumber),
				zap.Error(err))
			return nil, shared.NewDomainError("ERP_SUBMIT_FAILED", err.Error())
		}
	}

	if err := order.MarkSubmitted(externalRef); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// MarkReceived marks a submitted order as received
func (s *PurchaseOrderService) MarkReceived(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.MarkReceived(); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Cancel cancels a draft or submitted order
func (s *PurchaseOrderService) Cancel(ctx context.Context, orderID uuid.UUID, req CancelOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Cancel(req.Reason); err != nil {
		return nil, err
	}
	if err := s.save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetERPStatus fetches the status the external ERP reports for a
// submitted order
func (s *PurchaseOrderService) GetERPStatus(ctx context.Context, orderID uuid.UUID) (*ERPStatusResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ExternalRef == "" {
		return nil, shared.NewDomainError("NOT_SUBMITTED", "Order has no external reference")
	}
	if s.connector == nil || !s.connector.Enabled() {
		return nil, shared.NewDomainError("ERP_DISABLED", "ERP integration is not enabled")
	}

	status, err := s.connector.GetOrderStatus(ctx, order.ExternalRef)
	if err != nil {
		return nil, shared.NewDomainError("ERP_STATUS_FAILED", err.Error())
	}

	return &ERPStatusResponse{
		ExternalRef: status.ExternalRef,
		Status:      status.Status,
		UpdatedAt:   status.UpdatedAt,
	}, nil
}

// TestERPConnection verifies the ERP credentials and reachability
func (s *PurchaseOrderService) TestERPConnection(ctx context.Context) error {
	if s.connector == nil || !s.connector.Enabled() {
		return shared.NewDomainError("ERP_DISABLED", "ERP integration is not enabled")
	}
	if err := s.connector.TestConnection(ctx); err != nil {
		return shared.NewDomainError("ERP_CONNECTION_FAILED", err.Error())
	}
	return nil
}

// addItem resolves the variant's display fields and appends the line
func (s *PurchaseOrderService) addItem(ctx context.Context, order *trade.PurchaseOrder, req AddOrderItemRequest) error {
	product, err := s.productRepo.FindByVariantID(ctx, req.VariantID)
	if err != nil {
		return err
	}
	variant := product.GetVariant(req.VariantID)
	if variant == nil {
		return shared.NewDomainError("VARIANT_NOT_FOUND", "Variant not found")
	}

	description := strings.TrimSpace(fmt.Sprintf("%s %s/%s", product.Name, variant.Size, variant.Color))
	_, err = order.AddItem(variant.ID, variant.SKU, description, req.Quantity, req.PurchasePrice)
	return err
}

func (s *PurchaseOrderService) save(ctx context.Context, order *trade.PurchaseOrder) error {
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return err
	}
	if s.events != nil {
		if err := s.events.Publish(ctx, order.GetDomainEvents()...); err != nil {
			return err
		}
	}
	order.ClearDomainEvents()
	return nil
}

// newOrderNumber builds a human-readable order number. The random
// suffix keeps numbers unique without a dedicated counter.
func newOrderNumber() string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("PO-%s-%s", time.Now().Format("20060102"), strings.ToUpper(suffix))
}
