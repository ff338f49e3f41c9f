package partner

import (
	"context"
	"errors"

	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	events       shared.EventPublisher
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, events shared.EventPublisher) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo, events: events}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	existing, err := s.supplierRepo.FindByNumber(ctx, req.SupplierNumber)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this number already exists")
	}

	supplier, err := partner.NewSupplier(req.SupplierNumber, req.Name)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(req.Name, req.Email, req.Phone, req.Website, req.Notes); err != nil {
		return nil, err
	}

	if err := s.save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) (shared.Paginated[SupplierResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	domainFilter.OrderBy = "supplier_number"
	domainFilter.OrderDir = "asc"

	page, err := s.supplierRepo.FindPaginated(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[SupplierResponse]{}, err
	}

	items := make([]SupplierResponse, 0, len(page.Items))
	for idx := range page.Items {
		items = append(items, ToSupplierResponse(&page.Items[idx]))
	}
	return shared.Paginated[SupplierResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Update updates a supplier's contact details
func (s *SupplierService) Update(ctx context.Context, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(req.Name, req.Email, req.Phone, req.Website, req.Notes); err != nil {
		return nil, err
	}
	if err := s.save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// AddAddress adds an address to a supplier
func (s *SupplierService) AddAddress(ctx context.Context, supplierID uuid.UUID, req AddAddressRequest) (*AddressResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	address, err := supplier.AddAddress(partner.AddressType(req.Type), req.Street, req.PostalCode, req.City, req.Country, req.IsDefault)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// RemoveAddress removes an address from a supplier
func (s *SupplierService) RemoveAddress(ctx context.Context, supplierID, addressID uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if err := supplier.RemoveAddress(addressID); err != nil {
		return err
	}
	return s.save(ctx, supplier)
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, supplierID uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, supplierID)
}

func (s *SupplierService) save(ctx context.Context, supplier *partner.Supplier) error {
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return err
	}
	if s.events != nil {
		if err := s.events.Publish(ctx, supplier.GetDomainEvents()...); err != nil {
			return err
		}
	}
	supplier.ClearDomainEvents()
	return nil
}
