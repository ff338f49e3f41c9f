package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/atelier/backend/internal/domain/catalog"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAttributeRepository implements AttributeRepository using GORM
type GormAttributeRepository struct {
	db *gorm.DB
}

// NewGormAttributeRepository creates a new GormAttributeRepository
func NewGormAttributeRepository(db *gorm.DB) *GormAttributeRepository {
	return &GormAttributeRepository{db: db}
}

// FindByID finds an attribute by its ID
func (r *GormAttributeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Attribute, error) {
	var attribute catalog.Attribute
	if err := r.db.WithContext(ctx).First(&attribute, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &attribute, nil
}

// FindAll finds all attributes matching the filter
func (r *GormAttributeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Attribute, error) {
	var attributes []catalog.Attribute
	query := r.db.WithContext(ctx).Model(&catalog.Attribute{}).Order("kind ASC, code ASC")
	if kind, ok := filter.Filters["kind"]; ok {
		query = query.Where("kind = ?", kind)
	}
	if err := query.Find(&attributes).Error; err != nil {
		return nil, err
	}
	return attributes, nil
}

// FindByKind returns all attributes of one dimension ordered by code
func (r *GormAttributeRepository) FindByKind(ctx context.Context, kind catalog.AttributeKind) ([]catalog.Attribute, error) {
	var attributes []catalog.Attribute
	if err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("code ASC").
		Find(&attributes).Error; err != nil {
		return nil, err
	}
	return attributes, nil
}

// FindByKindAndCode returns a single attribute by its natural key
func (r *GormAttributeRepository) FindByKindAndCode(ctx context.Context, kind catalog.AttributeKind, code string) (*catalog.Attribute, error) {
	var attribute catalog.Attribute
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND code = ?", kind, strings.ToUpper(code)).
		First(&attribute).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &attribute, nil
}

// Save creates or updates an attribute
func (r *GormAttributeRepository) Save(ctx context.Context, attribute *catalog.Attribute) error {
	return r.db.WithContext(ctx).Save(attribute).Error
}

// Delete deletes an attribute
func (r *GormAttributeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Attribute{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts attributes matching the filter
func (r *GormAttributeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Attribute{})
	if kind, ok := filter.Filters["kind"]; ok {
		query = query.Where("kind = ?", kind)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormSizeRepository implements SizeRepository using GORM
type GormSizeRepository struct {
	db *gorm.DB
}

// NewGormSizeRepository creates a new GormSizeRepository
func NewGormSizeRepository(db *gorm.DB) *GormSizeRepository {
	return &GormSizeRepository{db: db}
}

// FindByID finds a size by its ID
func (r *GormSizeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Size, error) {
	var size catalog.Size
	if err := r.db.WithContext(ctx).First(&size, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &size, nil
}

// FindAll finds all sizes matching the filter
func (r *GormSizeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Size, error) {
	var sizes []catalog.Size
	query := r.db.WithContext(ctx).Model(&catalog.Size{}).Order("category ASC, position ASC")
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

// FindByCategory returns the sizes of a category ordered by position
func (r *GormSizeRepository) FindByCategory(ctx context.Context, category string) ([]catalog.Size, error) {
	var sizes []catalog.Size
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("position ASC, code ASC").
		Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

// Save creates or updates a size
func (r *GormSizeRepository) Save(ctx context.Context, size *catalog.Size) error {
	return r.db.WithContext(ctx).Save(size).Error
}

// Delete deletes a size
func (r *GormSizeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Size{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts sizes matching the filter
func (r *GormSizeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Size{})
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormColorRepository implements ColorRepository using GORM
type GormColorRepository struct {
	db *gorm.DB
}

// NewGormColorRepository creates a new GormColorRepository
func NewGormColorRepository(db *gorm.DB) *GormColorRepository {
	return &GormColorRepository{db: db}
}

// FindByID finds a color by its ID
func (r *GormColorRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Color, error) {
	var color catalog.Color
	if err := r.db.WithContext(ctx).First(&color, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &color, nil
}

// FindAll finds all colors
func (r *GormColorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Color, error) {
	var colors []catalog.Color
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

// FindByCode returns a color by its code
func (r *GormColorRepository) FindByCode(ctx context.Context, code string) (*catalog.Color, error) {
	var color catalog.Color
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToLower(code)).
		First(&color).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &color, nil
}

// Save creates or updates a color
func (r *GormColorRepository) Save(ctx context.Context, color *catalog.Color) error {
	return r.db.WithContext(ctx).Save(color).Error
}

// Delete deletes a color
func (r *GormColorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Color{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts colors
func (r *GormColorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Color{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure the master data repositories implement their interfaces
var (
	_ catalog.AttributeRepository = (*GormAttributeRepository)(nil)
	_ catalog.SizeRepository      = (*GormSizeRepository)(nil)
	_ catalog.ColorRepository     = (*GormColorRepository)(nil)
)
