package partner

import (
	"strings"
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AddressType distinguishes the roles an address can play
type AddressType string

const (
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
	AddressTypeOther    AddressType = "other"
)

// IsValid checks if the address type is known
func (t AddressType) IsValid() bool {
	switch t {
	case AddressTypeBilling, AddressTypeShipping, AddressTypeOther:
		return true
	}
	return false
}

// Address is a supplier address
type Address struct {
	ID         uuid.UUID   `gorm:"type:uuid;primary_key"`
	SupplierID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Type       AddressType `gorm:"type:varchar(20);not null"`
	Street     string      `gorm:"type:varchar(200)"`
	PostalCode string      `gorm:"type:varchar(20)"`
	City       string      `gorm:"type:varchar(100)"`
	Country    string      `gorm:"type:varchar(100)"`
	IsDefault  bool        `gorm:"not null;default:false"`
	CreatedAt  time.Time   `gorm:"not null"`
	UpdatedAt  time.Time   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "supplier_addresses"
}

// Supplier represents a supplying partner
type Supplier struct {
	shared.BaseAggregateRoot
	SupplierNumber string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name           string    `gorm:"type:varchar(200);not null"`
	Email          string    `gorm:"type:varchar(200)"`
	Phone          string    `gorm:"type:varchar(50)"`
	Website        string    `gorm:"type:varchar(200)"`
	Notes          string    `gorm:"type:text"`
	Addresses      []Address `gorm:"foreignKey:SupplierID;references:ID"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(supplierNumber, name string) (*Supplier, error) {
	if supplierNumber == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NUMBER", "Supplier number cannot be empty")
	}
	if len(supplierNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NUMBER", "Supplier number cannot exceed 50 characters")
	}
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}

	supplier := &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupplierNumber:    strings.ToUpper(supplierNumber),
		Name:              name,
		Addresses:         make([]Address, 0),
	}

	supplier.AddDomainEvent(NewSupplierCreatedEvent(supplier))

	return supplier, nil
}

// Update updates the supplier's contact details
func (s *Supplier) Update(name, email, phone, website, notes string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}
	if email != "" && !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}

	s.Name = name
	s.Email = email
	s.Phone = phone
	s.Website = website
	s.Notes = notes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSupplierUpdatedEvent(s))

	return nil
}

// AddAddress adds an address of the given type. The first address is
// always the default; marking a later one default demotes the others.
func (s *Supplier) AddAddress(addrType AddressType, street, postalCode, city, country string, isDefault bool) (*Address, error) {
	if !addrType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ADDRESS_TYPE", "Unknown address type")
	}
	if street == "" && city == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address needs at least a street or a city")
	}

	if len(s.Addresses) == 0 {
		isDefault = true
	} else if isDefault {
		for idx := range s.Addresses {
			s.Addresses[idx].IsDefault = false
		}
	}

	now := time.Now()
	address := Address{
		ID:         uuid.New(),
		SupplierID: s.ID,
		Type:       addrType,
		Street:     street,
		PostalCode: postalCode,
		City:       city,
		Country:    country,
		IsDefault:  isDefault,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.Addresses = append(s.Addresses, address)
	s.UpdatedAt = now
	s.IncrementVersion()

	return &s.Addresses[len(s.Addresses)-1], nil
}

// RemoveAddress removes an address by ID. If the default address is
// removed the first remaining address becomes the default.
func (s *Supplier) RemoveAddress(addressID uuid.UUID) error {
	for idx, a := range s.Addresses {
		if a.ID == addressID {
			wasDefault := a.IsDefault
			s.Addresses = append(s.Addresses[:idx], s.Addresses[idx+1:]...)
			if wasDefault && len(s.Addresses) > 0 {
				s.Addresses[0].IsDefault = true
			}
			s.UpdatedAt = time.Now()
			s.IncrementVersion()
			return nil
		}
	}
	return shared.NewDomainError("ADDRESS_NOT_FOUND", "Address not found on supplier")
}

// DefaultAddress returns the default address, or nil when the supplier
// has none
func (s *Supplier) DefaultAddress() *Address {
	for idx := range s.Addresses {
		if s.Addresses[idx].IsDefault {
			return &s.Addresses[idx]
		}
	}
	return nil
}

// AddressOfType returns the first address of the given type, or nil
func (s *Supplier) AddressOfType(addrType AddressType) *Address {
	for idx := range s.Addresses {
		if s.Addresses[idx].Type == addrType {
			return &s.Addresses[idx]
		}
	}
	return nil
}

func validateSupplierName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	return nil
}
