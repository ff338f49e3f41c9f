package persistence

import (
	"context"
	"testing"

	"github.com/atelier/backend/internal/domain/identifier"
	"github.com/atelier/backend/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAllocatorTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&settings.Setting{})
	require.NoError(t, err)

	return db
}

func seedSetting(t *testing.T, db *gorm.DB, key string, value any) {
	setting, err := settings.NewSetting(key, value)
	require.NoError(t, err)
	require.NoError(t, db.Save(setting).Error)
}

func TestGormSequenceAllocator_NextSKU(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates sequential formatted SKUs", func(t *testing.T) {
		db := setupAllocatorTestDB(t)
		seedSetting(t, db, settings.KeySKUConfig, settings.SKUConfig{
			EnableAutoGeneration: true,
			Prefix:               "atl",
		})
		allocator := NewGormSequenceAllocator(db)

		first, err := allocator.NextSKU(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ATL-00001", first)

		second, err := allocator.NextSKU(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ATL-00002", second)
	})

	t.Run("persists the counter between allocations", func(t *testing.T) {
		db := setupAllocatorTestDB(t)
		seedSetting(t, db, settings.KeySKUConfig, settings.SKUConfig{
			EnableAutoGeneration: true,
			Prefix:               "ATL",
			SequenceCounter:      41,
		})
		allocator := NewGormSequenceAllocator(db)

		sku, err := allocator.NextSKU(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ATL-00042", sku)

		stored, err := NewGormSettingsRepository(db).FindByKey(ctx, settings.KeySKUConfig)
		require.NoError(t, err)
		cfg, err := stored.SKUConfig()
		require.NoError(t, err)
		assert.Equal(t, int64(42), cfg.SequenceCounter)
	})

	t.Run("fails when configuration is missing", func(t *testing.T) {
		db := setupAllocatorTestDB(t)
		allocator := NewGormSequenceAllocator(db)

		_, err := allocator.NextSKU(ctx)
		assert.ErrorIs(t, err, identifier.ErrMissingConfiguration)
	})

	t.Run("fails when prefix is empty", func(t *testing.T) {
		db := setupAllocatorTestDB(t)
		seedSetting(t, db, settings.KeySKUConfig, settings.SKUConfig{
			EnableAutoGeneration: true,
		})
		allocator := NewGormSequenceAllocator(db)

		_, err := allocator.NextSKU(ctx)
		assert.ErrorIs(t, err, identifier.ErrMissingConfiguration)
	})
}

func TestGormSequenceAllocator_NextBarcode(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates sequential codes with valid check digits", func(t *testing.T) {
		db := setupAllocatorTestDB(t)
		seedSetting(t, db, settings.KeyGS1Config, settings.GS1Config{
			CompanyPrefix: "1234567",
			Format:        identifier.FormatGTIN13,
		})
		allocator := NewGormSequenceAllocator(db)

		first, err := allocator.NextBarcode(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1234567000019", first)
		assert.True(t, identifier.Validate(first))

		second, err := allocator.NextBarcode(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1234567000028", second)
		assert.True(t, identifier.Validate(second))
	})

	t.Run("fails when configuration is missing", func(t *testing.T) {
		db := setupAllocatorTestDB(t)
		allocator := NewGormSequenceAllocator(db)

		_, err := allocator.NextBarcode(ctx)
		assert.ErrorIs(t, err, identifier.ErrMissingConfiguration)
	})

	t.Run("does not consume the counter when assembly fails", func(t *testing.T) {
		db := setupAllocatorTestDB(t)
		seedSetting(t, db, settings.KeyGS1Config, settings.GS1Config{
			CompanyPrefix: "1234567",
			Format:        identifier.FormatSSCC,
			// no location reference, so SSCC assembly fails
		})
		allocator := NewGormSequenceAllocator(db)

		_, err := allocator.NextBarcode(ctx)
		assert.ErrorIs(t, err, identifier.ErrMissingConfiguration)

		stored, err := NewGormSettingsRepository(db).FindByKey(ctx, settings.KeyGS1Config)
		require.NoError(t, err)
		cfg, err := stored.GS1Config()
		require.NoError(t, err)
		assert.Equal(t, int64(0), cfg.SequenceCounter)
	})
}
