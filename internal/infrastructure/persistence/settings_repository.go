package persistence

import (
	"context"
	"errors"

	"github.com/atelier/backend/internal/domain/settings"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSettingsRepository implements settings.Repository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// FindByID finds a setting by its ID
func (r *GormSettingsRepository) FindByID(ctx context.Context, id uuid.UUID) (*settings.Setting, error) {
	var setting settings.Setting
	if err := r.db.WithContext(ctx).First(&setting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// FindByKey returns the setting stored under key
func (r *GormSettingsRepository) FindByKey(ctx context.Context, key string) (*settings.Setting, error) {
	var setting settings.Setting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// FindAll finds all settings
func (r *GormSettingsRepository) FindAll(ctx context.Context, filter shared.Filter) ([]settings.Setting, error) {
	var all []settings.Setting
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}

// Save creates or updates a setting
func (r *GormSettingsRepository) Save(ctx context.Context, setting *settings.Setting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

// Delete deletes a setting
func (r *GormSettingsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&settings.Setting{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts settings
func (r *GormSettingsRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&settings.Setting{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSettingsRepository implements settings.Repository
var _ settings.Repository = (*GormSettingsRepository)(nil)
