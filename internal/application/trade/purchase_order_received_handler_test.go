package trade

import (
	"context"
	"testing"

	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/atelier/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPurchaseOrderReceivedHandler(t *testing.T) {
	ctx := context.Background()

	newReceivedOrder := func(t *testing.T, variantID uuid.UUID, quantity int) *trade.PurchaseOrder {
		order, err := trade.NewPurchaseOrder("PO-0001", uuid.New(), "Nordic Textiles")
		require.NoError(t, err)
		_, err = order.AddItem(variantID, "ATL-00001", "Wool Sweater M", quantity, decimal.NewFromInt(12))
		require.NoError(t, err)
		require.NoError(t, order.MarkSubmitted("BNXT-1001"))
		require.NoError(t, order.MarkReceived())
		return order
	}

	newProductWithVariant := func(t *testing.T) (*catalog.Product, uuid.UUID) {
		product, err := catalog.NewProduct("Wool Sweater")
		require.NoError(t, err)
		v, err := catalog.NewVariant(product.ID, "M", "Navy", decimal.NewFromInt(10), decimal.NewFromInt(25))
		require.NoError(t, err)
		require.NoError(t, product.AddVariant(v))
		return product, v.ID
	}

	t.Run("books received quantities into variant stock", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		handler := NewPurchaseOrderReceivedHandler(orderRepo, productRepo, zap.NewNop())

		product, variantID := newProductWithVariant(t)
		order := newReceivedOrder(t, variantID, 7)

		orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		productRepo.On("FindByVariantID", mock.Anything, variantID).Return(product, nil)
		productRepo.On("Save", mock.Anything, product).Return(nil)

		err := handler.Handle(ctx, trade.NewPurchaseOrderReceivedEvent(order))
		require.NoError(t, err)

		assert.Equal(t, 7, product.GetVariant(variantID).Stock)
		productRepo.AssertExpectations(t)
	})

	t.Run("rejects foreign event types", func(t *testing.T) {
		handler := NewPurchaseOrderReceivedHandler(new(MockOrderRepository), new(MockProductRepository), zap.NewNop())

		order, err := trade.NewPurchaseOrder("PO-0002", uuid.New(), "Nordic Textiles")
		require.NoError(t, err)

		err = handler.Handle(ctx, trade.NewPurchaseOrderCreatedEvent(order))
		assert.Error(t, err)
	})

	t.Run("missing product fails the line but reports the error", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		handler := NewPurchaseOrderReceivedHandler(orderRepo, productRepo, zap.NewNop())

		variantID := uuid.New()
		order := newReceivedOrder(t, variantID, 3)

		orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		productRepo.On("FindByVariantID", mock.Anything, variantID).Return(nil, shared.ErrNotFound)

		err := handler.Handle(ctx, trade.NewPurchaseOrderReceivedEvent(order))
		assert.ErrorIs(t, err, shared.ErrNotFound)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("subscribes to received events only", func(t *testing.T) {
		handler := NewPurchaseOrderReceivedHandler(new(MockOrderRepository), new(MockProductRepository), zap.NewNop())
		assert.Equal(t, []string{trade.EventTypePurchaseOrderReceived}, handler.EventTypes())
	})
}
