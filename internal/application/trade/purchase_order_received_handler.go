package trade

import (
	"context"
	"fmt"

	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/atelier/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// PurchaseOrderReceivedHandler handles PurchaseOrderReceivedEvent and
// books the ordered quantities into variant stock
type PurchaseOrderReceivedHandler struct {
	orderRepo   trade.PurchaseOrderRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewPurchaseOrderReceivedHandler creates a new handler for purchase order received events
func NewPurchaseOrderReceivedHandler(
	orderRepo trade.PurchaseOrderRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *PurchaseOrderReceivedHandler {
	return &PurchaseOrderReceivedHandler{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *PurchaseOrderReceivedHandler) EventTypes() []string {
	return []string{trade.EventTypePurchaseOrderReceived}
}

// Handle processes a PurchaseOrderReceivedEvent
func (h *PurchaseOrderReceivedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	receivedEvent, ok := event.(*trade.PurchaseOrderReceivedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", trade.EventTypePurchaseOrderReceived),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			trade.EventTypePurchaseOrderReceived, event.EventType())
	}

	order, err := h.orderRepo.FindByID(ctx, receivedEvent.AggregateID())
	if err != nil {
		h.logger.Error("failed to load received purchase order",
			zap.String("order_id", receivedEvent.AggregateID().String()),
			zap.String("order_number", receivedEvent.OrderNumber),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("processing purchase order received event",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.Int("items_count", len(order.Items)),
	)

	// Process each line item; one failed line does not block the rest
	var lastErr error
	successCount := 0
	for _, item := range order.Items {
		product, err := h.productRepo.FindByVariantID(ctx, item.VariantID)
		if err != nil {
			h.logger.Error("failed to load product for received item",
				zap.String("order_id", order.ID.String()),
				zap.String("variant_id", item.VariantID.String()),
				zap.Error(err),
			)
			lastErr = err
			continue
		}

		variant := product.GetVariant(item.VariantID)
		if variant == nil {
			h.logger.Error("received item references missing variant",
				zap.String("order_id", order.ID.String()),
				zap.String("variant_id", item.VariantID.String()),
			)
			lastErr = fmt.Errorf("variant %s not found on product %s", item.VariantID, product.ID)
			continue
		}

		if err := variant.AdjustStock(item.Quantity); err != nil {
			lastErr = err
			continue
		}
		if err := h.productRepo.Save(ctx, product); err != nil {
			h.logger.Error("failed to save stock for received item",
				zap.String("order_id", order.ID.String()),
				zap.String("variant_id", item.VariantID.String()),
				zap.Error(err),
			)
			lastErr = err
			continue
		}

		successCount++
		h.logger.Debug("stock increased for received item",
			zap.String("variant_id", item.VariantID.String()),
			zap.String("sku", variant.SKU),
			zap.Int("quantity", item.Quantity),
		)
	}

	h.logger.Info("purchase order receiving completed",
		zap.String("order_id", order.ID.String()),
		zap.Int("total_items", len(order.Items)),
		zap.Int("success_count", successCount),
		zap.Bool("has_errors", lastErr != nil),
	)

	if lastErr != nil {
		return fmt.Errorf("some items failed to process: %w", lastErr)
	}
	return nil
}

// Ensure PurchaseOrderReceivedHandler implements shared.EventHandler
var _ shared.EventHandler = (*PurchaseOrderReceivedHandler)(nil)
