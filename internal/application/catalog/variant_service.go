package catalog

import (
	"context"

	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/atelier/backend/internal/domain/identifier"
	"github.com/atelier/backend/internal/domain/settings"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VariantService handles variant workflows: creating variants with
// best-effort identifier allocation, fanning a product out across its
// size category, and duplicate checks.
type VariantService struct {
	productRepo  catalog.ProductRepository
	sizeRepo     catalog.SizeRepository
	settingsRepo settings.Repository
	allocator    identifier.SequenceAllocator
	events       shared.EventPublisher
	logger       *zap.Logger
}

// NewVariantService creates a new VariantService
func NewVariantService(
	productRepo catalog.ProductRepository,
	sizeRepo catalog.SizeRepository,
	settingsRepo settings.Repository,
	allocator identifier.SequenceAllocator,
	events shared.EventPublisher,
	logger *zap.Logger,
) *VariantService {
	return &VariantService{
		productRepo:  productRepo,
		sizeRepo:     sizeRepo,
		settingsRepo: settingsRepo,
		allocator:    allocator,
		events:       events,
		logger:       logger,
	}
}

// AddVariant creates a single variant on a product. A SKU is allocated
// only when automatic SKU generation is enabled; a barcode is always
// attempted. Either allocation may fail without failing the operation:
// the field stays empty and a warning is returned.
func (s *VariantService) AddVariant(ctx context.Context, productID uuid.UUID, req AddVariantRequest) (*AddVariantResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	variant, err := catalog.NewVariant(product.ID, req.Size, req.Color, product.PurchasePrice, product.SalesPrice)
	if err != nil {
		return nil, err
	}

	warnings := s.allocateIdentifiers(ctx, variant)

	if err := product.AddVariant(variant); err != nil {
		return nil, err
	}
	if err := s.save(ctx, product); err != nil {
		return nil, err
	}

	return &AddVariantResponse{
		Variant:  ToVariantResponse(variant),
		Warnings: warnings,
	}, nil
}

// GenerateSizeVariants creates one variant per size of the product's
// size category. Identifier allocation stays best-effort per variant,
// but any failure to extend the aggregate aborts the whole batch and
// nothing is persisted.
func (s *VariantService) GenerateSizeVariants(ctx context.Context, productID uuid.UUID) (*GenerateVariantsResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SizeCategory == "" {
		return nil, shared.NewDomainError("NO_SIZE_CATEGORY", "Product has no size category assigned")
	}

	sizes, err := s.sizeRepo.FindByCategory(ctx, product.SizeCategory)
	if err != nil {
		return nil, err
	}
	if len(sizes) == 0 {
		return nil, shared.NewDomainError("NO_SIZES", "Size category has no sizes defined")
	}

	created := make([]*catalog.Variant, 0, len(sizes))
	warnings := make([]AllocationWarning, 0)

	for _, size := range sizes {
		if product.HasVariantForSize(size.Name, "") {
			continue
		}

		variant, err := catalog.NewVariant(product.ID, size.Name, "", product.PurchasePrice, product.SalesPrice)
		if err != nil {
			return nil, err
		}

		warnings = append(warnings, s.allocateIdentifiers(ctx, variant)...)

		if err := product.AddVariant(variant); err != nil {
			return nil, err
		}
		created = append(created, variant)
	}

	if err := s.save(ctx, product); err != nil {
		return nil, err
	}

	responses := make([]VariantResponse, 0, len(created))
	for _, v := range created {
		responses = append(responses, ToVariantResponse(v))
	}
	return &GenerateVariantsResponse{Variants: responses, Warnings: warnings}, nil
}

// UpdateVariant updates a variant's identifiers, prices, or stock.
// Identifier changes run through the same uniqueness guard as every
// other write to the aggregate.
func (s *VariantService) UpdateVariant(ctx context.Context, productID, variantID uuid.UUID, req UpdateVariantRequest) (*VariantResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	variant := product.GetVariant(variantID)
	if variant == nil {
		return nil, shared.NewDomainError("VARIANT_NOT_FOUND", "Variant not found on product")
	}

	if err := variant.SetSKU(req.SKU); err != nil {
		return nil, err
	}
	if err := variant.SetBarcode(req.Barcode); err != nil {
		return nil, err
	}
	if req.PurchasePrice != nil || req.SalesPrice != nil {
		purchase := variant.PurchasePrice
		sales := variant.SalesPrice
		if req.PurchasePrice != nil {
			purchase = *req.PurchasePrice
		}
		if req.SalesPrice != nil {
			sales = *req.SalesPrice
		}
		if err := variant.UpdatePrices(purchase, sales); err != nil {
			return nil, err
		}
	}
	if req.Stock != nil {
		if err := variant.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}

	if err := s.save(ctx, product); err != nil {
		return nil, err
	}

	response := ToVariantResponse(variant)
	return &response, nil
}

// RemoveVariant removes a variant from a product
func (s *VariantService) RemoveVariant(ctx context.Context, productID, variantID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if err := product.RemoveVariant(variantID); err != nil {
		return err
	}
	return s.save(ctx, product)
}

// CheckIdentifier reports whether the given variant's SKU or barcode
// collides with another variant of the same product. The variant's
// own row is excluded so a fixed conflict reads as clean.
func (s *VariantService) CheckIdentifier(ctx context.Context, productID, variantID uuid.UUID, field catalog.IdentifierField) (*CheckIdentifierResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.GetVariant(variantID) == nil {
		return nil, shared.NewDomainError("VARIANT_NOT_FOUND", "Variant not found on product")
	}

	return &CheckIdentifierResponse{
		Conflict: catalog.HasConflict(product.Variants, variantID, field),
	}, nil
}

// ValidateBarcode reports whether a barcode has a correct check digit
func (s *VariantService) ValidateBarcode(barcode string) bool {
	return identifier.Validate(barcode)
}

// allocateIdentifiers performs best-effort SKU and barcode allocation
// on a fresh variant. Failures are downgraded to warnings.
func (s *VariantService) allocateIdentifiers(ctx context.Context, variant *catalog.Variant) []AllocationWarning {
	warnings := make([]AllocationWarning, 0, 2)

	if s.skuGenerationEnabled(ctx) {
		if alloc := s.allocateSKU(ctx); alloc.OK() {
			_ = variant.SetSKU(alloc.Value)
		} else {
			s.logger.Warn("sku allocation failed",
				zap.String("variant_id", variant.ID.String()),
				zap.Error(alloc.Err))
			warnings = append(warnings, AllocationWarning{
				VariantID: variant.ID,
				Field:     string(catalog.FieldSKU),
				Reason:    alloc.Err.Error(),
			})
		}
	}

	if alloc := s.allocateBarcode(ctx); alloc.OK() {
		_ = variant.SetBarcode(alloc.Value)
	} else {
		s.logger.Warn("barcode allocation failed",
			zap.String("variant_id", variant.ID.String()),
			zap.Error(alloc.Err))
		warnings = append(warnings, AllocationWarning{
			VariantID: variant.ID,
			Field:     string(catalog.FieldBarcode),
			Reason:    alloc.Err.Error(),
		})
	}

	return warnings
}

func (s *VariantService) allocateSKU(ctx context.Context) identifier.Allocation {
	value, err := s.allocator.NextSKU(ctx)
	return identifier.Allocation{Value: value, Err: err}
}

func (s *VariantService) allocateBarcode(ctx context.Context) identifier.Allocation {
	value, err := s.allocator.NextBarcode(ctx)
	return identifier.Allocation{Value: value, Err: err}
}

// skuGenerationEnabled reads the SKU configuration; a missing or
// unreadable configuration means allocation is off
func (s *VariantService) skuGenerationEnabled(ctx context.Context) bool {
	setting, err := s.settingsRepo.FindByKey(ctx, settings.KeySKUConfig)
	if err != nil {
		return false
	}
	cfg, err := setting.SKUConfig()
	if err != nil {
		return false
	}
	return cfg.EnableAutoGeneration
}

func (s *VariantService) save(ctx context.Context, product *catalog.Product) error {
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
