package catalog

import (
	"context"
	"testing"

	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	productRepo  *MockProductRepository
	supplierRepo *MockSupplierRepository
	service      *ProductService
}

func newProductFixture() *productFixture {
	f := &productFixture{
		productRepo:  new(MockProductRepository),
		supplierRepo: new(MockSupplierRepository),
	}
	f.service = NewProductService(f.productRepo, f.supplierRepo, nil)
	return f
}

func TestProductServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product with prices", func(t *testing.T) {
		f := newProductFixture()
		f.productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		purchase := decimal.NewFromInt(12)
		sales := decimal.NewFromInt(29)
		resp, err := f.service.Create(ctx, CreateProductRequest{
			Name:          "Wool Sweater",
			Brand:         "Acme",
			SizeCategory:  "tops",
			PurchasePrice: &purchase,
			SalesPrice:    &sales,
		})
		require.NoError(t, err)

		assert.Equal(t, "Wool Sweater", resp.Name)
		assert.Equal(t, "Acme", resp.Brand)
		assert.True(t, resp.PurchasePrice.Equal(purchase))
		f.productRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown supplier", func(t *testing.T) {
		f := newProductFixture()
		supplierID := uuid.New()
		f.supplierRepo.On("FindByID", mock.Anything, supplierID).Return(nil, shared.ErrNotFound)

		_, err := f.service.Create(ctx, CreateProductRequest{
			Name:       "Wool Sweater",
			SupplierID: &supplierID,
		})
		require.Error(t, err)
		f.productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("accepts known supplier", func(t *testing.T) {
		f := newProductFixture()
		supplier, err := partner.NewSupplier("SUP-001", "Nordic Textiles")
		require.NoError(t, err)
		f.supplierRepo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		f.productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := f.service.Create(ctx, CreateProductRequest{
			Name:       "Wool Sweater",
			SupplierID: &supplier.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, resp.SupplierID)
		assert.Equal(t, supplier.ID, *resp.SupplierID)
	})
}

func TestProductServiceUpdatePrices(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades new prices to variants", func(t *testing.T) {
		f := newProductFixture()
		product, err := catalog.NewProduct("Wool Sweater")
		require.NoError(t, err)
		v, err := catalog.NewVariant(product.ID, "M", "Navy", decimal.NewFromInt(10), decimal.NewFromInt(20))
		require.NoError(t, err)
		require.NoError(t, product.AddVariant(v))

		f.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		f.productRepo.On("Save", mock.Anything, product).Return(nil)

		resp, err := f.service.UpdatePrices(ctx, product.ID, UpdateProductPricesRequest{
			PurchasePrice: decimal.NewFromInt(15),
			SalesPrice:    decimal.NewFromInt(35),
		})
		require.NoError(t, err)

		require.Len(t, resp.Variants, 1)
		assert.True(t, resp.Variants[0].PurchasePrice.Equal(decimal.NewFromInt(15)))
		assert.True(t, resp.Variants[0].SalesPrice.Equal(decimal.NewFromInt(35)))
	})
}

func TestProductServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing product", func(t *testing.T) {
		f := newProductFixture()
		product, err := catalog.NewProduct("Wool Sweater")
		require.NoError(t, err)

		f.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		f.productRepo.On("Delete", mock.Anything, product.ID).Return(nil)

		assert.NoError(t, f.service.Delete(ctx, product.ID))
		f.productRepo.AssertExpectations(t)
	})

	t.Run("missing product is reported", func(t *testing.T) {
		f := newProductFixture()
		id := uuid.New()
		f.productRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, f.service.Delete(ctx, id), shared.ErrNotFound)
	})

	t.Run("publishes deleted event", func(t *testing.T) {
		f := newProductFixture()
		events := new(MockEventPublisher)
		f.service = NewProductService(f.productRepo, f.supplierRepo, events)

		product, err := catalog.NewProduct("Wool Sweater")
		require.NoError(t, err)

		f.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		f.productRepo.On("Delete", mock.Anything, product.ID).Return(nil)
		events.On("Publish", mock.Anything, mock.MatchedBy(func(evts []shared.DomainEvent) bool {
			if len(evts) != 1 {
				return false
			}
			deleted, ok := evts[0].(*catalog.ProductDeletedEvent)
			return ok && deleted.AggregateID() == product.ID && deleted.Name == "Wool Sweater"
		})).Return(nil)

		require.NoError(t, f.service.Delete(ctx, product.ID))
		events.AssertExpectations(t)
	})

	t.Run("no event when delete fails", func(t *testing.T) {
		f := newProductFixture()
		events := new(MockEventPublisher)
		f.service = NewProductService(f.productRepo, f.supplierRepo, events)

		product, err := catalog.NewProduct("Wool Sweater")
		require.NoError(t, err)

		f.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		f.productRepo.On("Delete", mock.Anything, product.ID).Return(shared.ErrConcurrencyConflict)

		require.Error(t, f.service.Delete(ctx, product.ID))
		events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}
