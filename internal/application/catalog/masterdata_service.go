package catalog

import (
	"context"
	"errors"

	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MasterDataService manages brands, collections, categories, product
// types, sizes, and colors
type MasterDataService struct {
	attributeRepo catalog.AttributeRepository
	sizeRepo      catalog.SizeRepository
	colorRepo     catalog.ColorRepository
}

// NewMasterDataService creates a new MasterDataService
func NewMasterDataService(
	attributeRepo catalog.AttributeRepository,
	sizeRepo catalog.SizeRepository,
	colorRepo catalog.ColorRepository,
) *MasterDataService {
	return &MasterDataService{
		attributeRepo: attributeRepo,
		sizeRepo:      sizeRepo,
		colorRepo:     colorRepo,
	}
}

// CreateAttribute creates a master data attribute of the given kind
func (s *MasterDataService) CreateAttribute(ctx context.Context, kind catalog.AttributeKind, req AttributeRequest) (*AttributeResponse, error) {
	existing, err := s.attributeRepo.FindByKindAndCode(ctx, kind, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Attribute with this code already exists")
	}

	attr, err := catalog.NewAttribute(kind, req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.attributeRepo.Save(ctx, attr); err != nil {
		return nil, err
	}

	response := ToAttributeResponse(attr)
	return &response, nil
}

// ListAttributes returns all attributes of one kind
func (s *MasterDataService) ListAttributes(ctx context.Context, kind catalog.AttributeKind) ([]AttributeResponse, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Unknown attribute kind")
	}
	attrs, err := s.attributeRepo.FindByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]AttributeResponse, 0, len(attrs))
	for idx := range attrs {
		out = append(out, ToAttributeResponse(&attrs[idx]))
	}
	return out, nil
}

// RenameAttribute renames an attribute
func (s *MasterDataService) RenameAttribute(ctx context.Context, id uuid.UUID, name string) (*AttributeResponse, error) {
	attr, err := s.attributeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := attr.Rename(name); err != nil {
		return nil, err
	}
	if err := s.attributeRepo.Save(ctx, attr); err != nil {
		return nil, err
	}

	response := ToAttributeResponse(attr)
	return &response, nil
}

// DeleteAttribute removes an attribute
func (s *MasterDataService) DeleteAttribute(ctx context.Context, id uuid.UUID) error {
	if _, err := s.attributeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.attributeRepo.Delete(ctx, id)
}

// CreateSize creates a size within a size category
func (s *MasterDataService) CreateSize(ctx context.Context, req SizeRequest) (*SizeResponse, error) {
	size, err := catalog.NewSize(req.Code, req.Name, req.Category, req.Position)
	if err != nil {
		return nil, err
	}
	if err := s.sizeRepo.Save(ctx, size); err != nil {
		return nil, err
	}

	response := ToSizeResponse(size)
	return &response, nil
}

// ListSizes returns the sizes of a category ordered by position
func (s *MasterDataService) ListSizes(ctx context.Context, category string) ([]SizeResponse, error) {
	sizes, err := s.sizeRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make([]SizeResponse, 0, len(sizes))
	for idx := range sizes {
		out = append(out, ToSizeResponse(&sizes[idx]))
	}
	return out, nil
}

// DeleteSize removes a size
func (s *MasterDataService) DeleteSize(ctx context.Context, id uuid.UUID) error {
	if _, err := s.sizeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.sizeRepo.Delete(ctx, id)
}

// CreateColor creates a color
func (s *MasterDataService) CreateColor(ctx context.Context, req ColorRequest) (*ColorResponse, error) {
	existing, err := s.colorRepo.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Color with this code already exists")
	}

	color, err := catalog.NewColor(req.Code, req.Name, req.Hex)
	if err != nil {
		return nil, err
	}
	if err := s.colorRepo.Save(ctx, color); err != nil {
		return nil, err
	}

	response := ToColorResponse(color)
	return &response, nil
}

// ListColors returns all colors
func (s *MasterDataService) ListColors(ctx context.Context) ([]ColorResponse, error) {
	colors, err := s.colorRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	out := make([]ColorResponse, 0, len(colors))
	for idx := range colors {
		out = append(out, ToColorResponse(&colors[idx]))
	}
	return out, nil
}

// DeleteColor removes a color
func (s *MasterDataService) DeleteColor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.colorRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.colorRepo.Delete(ctx, id)
}
