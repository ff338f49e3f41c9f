package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atelier/backend/internal/domain/identifier"
	"github.com/atelier/backend/internal/domain/settings"
	"github.com/atelier/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// allocRetries bounds the optimistic-concurrency retry loop. Two
// concurrent allocations race on the settings row version; the loser
// re-reads and retries.
const allocRetries = 5

// GormSequenceAllocator allocates SKU and barcode sequence numbers
// from the counters stored in the settings rows. Counter increments
// use a compare-and-swap on the row version so concurrent allocations
// never hand out the same number.
type GormSequenceAllocator struct {
	db *gorm.DB
}

// NewGormSequenceAllocator creates a new GormSequenceAllocator
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// NextSKU allocates the next SKU from the configured counter and
// returns it formatted as PREFIX-NNNNN
func (a *GormSequenceAllocator) NextSKU(ctx context.Context) (string, error) {
	for attempt := 0; attempt < allocRetries; attempt++ {
		setting, err := a.loadSetting(ctx, settings.KeySKUConfig)
		if err != nil {
			return "", err
		}

		cfg, err := setting.SKUConfig()
		if err != nil {
			return "", err
		}
		if cfg.Prefix == "" {
			return "", identifier.ErrMissingConfiguration
		}

		cfg.SequenceCounter++
		ok, err := a.storeCounter(ctx, setting, cfg)
		if err != nil {
			return "", err
		}
		if ok {
			return fmt.Sprintf("%s-%05d", strings.ToUpper(cfg.Prefix), cfg.SequenceCounter), nil
		}
	}
	return "", shared.ErrConcurrencyConflict
}

// NextBarcode allocates the next barcode sequence and returns the
// assembled code in the configured format
func (a *GormSequenceAllocator) NextBarcode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < allocRetries; attempt++ {
		setting, err := a.loadSetting(ctx, settings.KeyGS1Config)
		if err != nil {
			return "", err
		}

		cfg, err := setting.GS1Config()
		if err != nil {
			return "", err
		}

		cfg.SequenceCounter++
		code, err := identifier.Generate(cfg.Format, cfg.IdentifierConfig(), cfg.SequenceCounter)
		if err != nil {
			return "", err
		}

		ok, err := a.storeCounter(ctx, setting, cfg)
		if err != nil {
			return "", err
		}
		if ok {
			return code, nil
		}
	}
	return "", shared.ErrConcurrencyConflict
}

// loadSetting reads the settings row backing a counter. A missing row
// means numbering has never been configured.
func (a *GormSequenceAllocator) loadSetting(ctx context.Context, key string) (*settings.Setting, error) {
	var setting settings.Setting
	if err := a.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identifier.ErrMissingConfiguration
		}
		return nil, err
	}
	return &setting, nil
}

// storeCounter writes the updated configuration back, guarded by the
// version the setting was read at. Returns false when another
// allocation won the race.
func (a *GormSequenceAllocator) storeCounter(ctx context.Context, setting *settings.Setting, cfg any) (bool, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return false, err
	}

	result := a.db.WithContext(ctx).
		Model(&settings.Setting{}).
		Where("id = ? AND version = ?", setting.ID, setting.Version).
		Updates(map[string]any{
			"value":      string(raw),
			"version":    setting.Version + 1,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Ensure GormSequenceAllocator implements SequenceAllocator
var _ identifier.SequenceAllocator = (*GormSequenceAllocator)(nil)
