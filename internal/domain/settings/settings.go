package settings

import (
	"encoding/json"
	"time"

	"github.com/atelier/backend/internal/domain/identifier"
	"github.com/atelier/backend/internal/domain/shared"
)

// Well-known setting keys
const (
	KeyEditorConfig = "editor_config"
	KeySKUConfig    = "sku_config"
	KeyGS1Config    = "gs1_config"
)

// Setting is a single keyed configuration document. Each key holds one
// JSON value; the typed accessors below interpret the well-known keys.
type Setting struct {
	shared.BaseAggregateRoot
	Key   string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Value string `gorm:"type:jsonb;not null;default:'{}'"`
}

// TableName returns the table name for GORM
func (Setting) TableName() string {
	return "settings"
}

// SKUConfig controls automatic SKU allocation
type SKUConfig struct {
	EnableAutoGeneration bool   `json:"enable_auto_generation"`
	Prefix               string `json:"prefix"`
	SequenceCounter      int64  `json:"sequence_counter"`
}

// GS1Config controls barcode assembly: the company prefix, the
// location reference used by SSCC codes, the target format, and the
// allocation counter.
type GS1Config struct {
	CompanyPrefix     string            `json:"company_prefix"`
	LocationReference string            `json:"location_reference"`
	Format            identifier.Format `json:"format"`
	SequenceCounter   int64             `json:"sequence_counter"`
}

// IdentifierConfig converts the stored configuration into the prefix
// configuration used by barcode generation
func (c GS1Config) IdentifierConfig() identifier.Config {
	return identifier.Config{
		CompanyPrefix:     c.CompanyPrefix,
		LocationReference: c.LocationReference,
	}
}

// NewSetting creates a setting for the given key with a JSON value
func NewSetting(key string, value any) (*Setting, error) {
	if key == "" {
		return nil, shared.NewDomainError("INVALID_KEY", "Setting key cannot be empty")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_VALUE", "Setting value must be JSON-serializable")
	}

	setting := &Setting{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Key:               key,
		Value:             string(raw),
	}

	setting.AddDomainEvent(NewSettingUpdatedEvent(setting))

	return setting, nil
}

// DefaultSKUConfig returns the initial SKU configuration
func DefaultSKUConfig() SKUConfig {
	return SKUConfig{EnableAutoGeneration: false, Prefix: "", SequenceCounter: 0}
}

// DefaultGS1Config returns the initial GS1 configuration
func DefaultGS1Config() GS1Config {
	return GS1Config{Format: identifier.FormatGTIN13, SequenceCounter: 0}
}

// Unmarshal decodes the stored value into out
func (s *Setting) Unmarshal(out any) error {
	if err := json.Unmarshal([]byte(s.Value), out); err != nil {
		return shared.NewDomainError("INVALID_VALUE", "Stored setting value is not valid JSON for this key")
	}
	return nil
}

// SetValue replaces the stored value wholesale
func (s *Setting) SetValue(value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return shared.NewDomainError("INVALID_VALUE", "Setting value must be JSON-serializable")
	}
	s.Value = string(raw)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSettingUpdatedEvent(s))

	return nil
}

// SKUConfig decodes the setting as a SKU configuration
func (s *Setting) SKUConfig() (SKUConfig, error) {
	var cfg SKUConfig
	if err := s.Unmarshal(&cfg); err != nil {
		return SKUConfig{}, err
	}
	return cfg, nil
}

// GS1Config decodes the setting as a GS1 configuration
func (s *Setting) GS1Config() (GS1Config, error) {
	var cfg GS1Config
	if err := s.Unmarshal(&cfg); err != nil {
		return GS1Config{}, err
	}
	return cfg, nil
}

// SetGS1Config updates the GS1 configuration. The stored sequence
// counter always survives the update: the counter is owned by the
// allocator and a client writing configuration must not reset it.
func (s *Setting) SetGS1Config(cfg GS1Config) error {
	current, err := s.GS1Config()
	if err != nil {
		return err
	}
	cfg.SequenceCounter = current.SequenceCounter
	return s.SetValue(cfg)
}

// SetSKUConfig replaces the SKU configuration, counter included
func (s *Setting) SetSKUConfig(cfg SKUConfig) error {
	return s.SetValue(cfg)
}
