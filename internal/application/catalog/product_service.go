package catalog

import (
	"context"
	"errors"

	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	supplierRepo partner.SupplierRepository
	events       shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	supplierRepo partner.SupplierRepository,
	events shared.EventPublisher,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		events:       events,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindByID(ctx, *req.SupplierID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier not found")
			}
			return nil, err
		}
	}

	product, err := catalog.NewProduct(req.Name)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Brand, req.Collection, req.Category, req.SizeCategory, req.ProductType, req.Description); err != nil {
		return nil, err
	}
	product.SetSupplier(req.SupplierID)

	if req.PurchasePrice != nil || req.SalesPrice != nil {
		purchase := product.PurchasePrice
		sales := product.SalesPrice
		if req.PurchasePrice != nil {
			purchase = *req.PurchasePrice
		}
		if req.SalesPrice != nil {
			sales = *req.SalesPrice
		}
		if err := product.SetPrices(purchase, sales); err != nil {
			return nil, err
		}
	}

	if err := s.save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByVariantBarcode retrieves the product owning the given barcode
func (s *ProductService) GetByVariantBarcode(ctx context.Context, barcode string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByVariantBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (shared.Paginated[ProductResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Brand != "" {
		domainFilter.Filters["brand"] = filter.Brand
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}

	page, err := s.productRepo.FindPaginated(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}

	items := make([]ProductResponse, 0, len(page.Items))
	for idx := range page.Items {
		items = append(items, ToProductResponse(&page.Items[idx]))
	}
	return shared.Paginated[ProductResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Update updates a product's descriptive information
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindByID(ctx, *req.SupplierID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier not found")
			}
			return nil, err
		}
	}

	if err := product.Update(req.Name, req.Brand, req.Collection, req.Category, req.SizeCategory, req.ProductType, req.Description); err != nil {
		return nil, err
	}
	product.SetSupplier(req.SupplierID)

	if err := s.save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// UpdatePrices changes the product prices, cascading them to every variant
func (s *ProductService) UpdatePrices(ctx context.Context, productID uuid.UUID, req UpdateProductPricesRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.SetPrices(req.PurchasePrice, req.SalesPrice); err != nil {
		return nil, err
	}

	if err := s.save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product and its variants
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}
	if s.events != nil {
		return s.events.Publish(ctx, catalog.NewProductDeletedEvent(product))
	}
	return nil
}

// save enforces the identifier uniqueness guard, persists the
// aggregate, and publishes its pending events
func (s *ProductService) save(ctx context.Context, product *catalog.Product) error {
	if err := product.EnsureUniqueIdentifiers(); err != nil {
		return err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return err
	}
	if s.events != nil {
		if err := s.events.Publish(ctx, product.GetDomainEvents()...); err != nil {
			return err
		}
	}
	product.ClearDomainEvents()
	return nil
}
