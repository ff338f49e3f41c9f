package partner

import (
	"context"
	"testing"

	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) FindPaginated(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.Supplier], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[partner.Supplier]), args.Error(1)
}

func (m *MockSupplierRepository) FindByNumber(ctx context.Context, supplierNumber string) (*partner.Supplier, error) {
	args := m.Called(ctx, supplierNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func TestSupplierServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates supplier", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, nil)
		repo.On("FindByNumber", mock.Anything, "SUP-001").Return(nil, shared.ErrNotFound)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		resp, err := service.Create(ctx, CreateSupplierRequest{
			SupplierNumber: "SUP-001",
			Name:           "Nordic Textiles",
			Email:          "post@nordic.example",
		})
		require.NoError(t, err)
		assert.Equal(t, "SUP-001", resp.SupplierNumber)
		assert.Equal(t, "post@nordic.example", resp.Email)
	})

	t.Run("rejects duplicate supplier number", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, nil)
		existing, err := partner.NewSupplier("SUP-001", "Nordic Textiles")
		require.NoError(t, err)
		repo.On("FindByNumber", mock.Anything, "SUP-001").Return(existing, nil)

		_, err = service.Create(ctx, CreateSupplierRequest{SupplierNumber: "SUP-001", Name: "Other"})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSupplierServiceAddresses(t *testing.T) {
	ctx := context.Background()

	t.Run("adds address to supplier", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, nil)
		supplier, err := partner.NewSupplier("SUP-001", "Nordic Textiles")
		require.NoError(t, err)
		repo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		repo.On("Save", mock.Anything, supplier).Return(nil)

		resp, err := service.AddAddress(ctx, supplier.ID, AddAddressRequest{
			Type:   "shipping",
			Street: "Storgata 1",
			City:   "Oslo",
		})
		require.NoError(t, err)
		assert.Equal(t, "shipping", resp.Type)
		assert.True(t, resp.IsDefault)
		assert.Len(t, supplier.Addresses, 1)
	})

	t.Run("unknown supplier is reported", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		service := NewSupplierService(repo, nil)
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.AddAddress(ctx, id, AddAddressRequest{Type: "billing", City: "Oslo"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
