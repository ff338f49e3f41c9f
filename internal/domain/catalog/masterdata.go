package catalog

import (
	"strings"
	"time"

	"github.com/atelier/backend/internal/domain/shared"
)

// AttributeKind identifies a master data dimension
type AttributeKind string

const (
	KindBrand       AttributeKind = "brand"
	KindCollection  AttributeKind = "collection"
	KindCategory    AttributeKind = "category"
	KindProductType AttributeKind = "product_type"
)

// IsValid checks if the kind is a known attribute dimension
func (k AttributeKind) IsValid() bool {
	switch k {
	case KindBrand, KindCollection, KindCategory, KindProductType:
		return true
	}
	return false
}

// Attribute is a named master data value (brand, collection, category
// or product type). Codes are unique per kind.
type Attribute struct {
	shared.BaseAggregateRoot
	Kind AttributeKind `gorm:"type:varchar(20);not null;uniqueIndex:idx_attribute_kind_code,priority:1"`
	Code string        `gorm:"type:varchar(50);not null;uniqueIndex:idx_attribute_kind_code,priority:2"`
	Name string        `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Attribute) TableName() string {
	return "catalog_attributes"
}

// NewAttribute creates a new master data attribute
func NewAttribute(kind AttributeKind, code, name string) (*Attribute, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Unknown attribute kind")
	}
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Attribute name cannot be empty")
	}

	return &Attribute{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Kind:              kind,
		Code:              strings.ToUpper(code),
		Name:              name,
	}, nil
}

// Rename changes the display name
func (a *Attribute) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Attribute name cannot be empty")
	}
	a.Name = name
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// Size is a master data size belonging to a size category. Generating
// all variants of a product walks the sizes of the product's category.
type Size struct {
	shared.BaseAggregateRoot
	Code     string `gorm:"type:varchar(20);not null;uniqueIndex:idx_size_category_code,priority:2"`
	Name     string `gorm:"type:varchar(50);not null"`
	Category string `gorm:"type:varchar(100);not null;uniqueIndex:idx_size_category_code,priority:1;index"`
	Position int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Size) TableName() string {
	return "sizes"
}

// NewSize creates a new size within a size category
func NewSize(code, name, category string, position int) (*Size, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Size name cannot be empty")
	}
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Size category cannot be empty")
	}

	return &Size{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Category:          category,
		Position:          position,
	}, nil
}

// Color is a master data color with an optional hex swatch
type Color struct {
	shared.BaseAggregateRoot
	Code string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name string `gorm:"type:varchar(50);not null"`
	Hex  string `gorm:"type:varchar(7)"`
}

// TableName returns the table name for GORM
func (Color) TableName() string {
	return "colors"
}

// NewColor creates a new color
func NewColor(code, name, hex string) (*Color, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Color name cannot be empty")
	}
	if hex != "" && !isHexColor(hex) {
		return nil, shared.NewDomainError("INVALID_HEX", "Hex value must look like #RRGGBB")
	}

	return &Color{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Hex:               strings.ToLower(hex),
	}, nil
}

func validateCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
