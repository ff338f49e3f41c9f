package partner

import (
	"time"

	"github.com/atelier/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateSupplierRequest is the request to create a supplier
type CreateSupplierRequest struct {
	SupplierNumber string `json:"supplier_number" binding:"required,max=50"`
	Name           string `json:"name" binding:"required,max=200"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone" binding:"max=50"`
	Website        string `json:"website" binding:"max=200"`
	Notes          string `json:"notes"`
}

// UpdateSupplierRequest is the request to update a supplier
type UpdateSupplierRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"max=50"`
	Website string `json:"website" binding:"max=200"`
	Notes   string `json:"notes"`
}

// AddAddressRequest is the request to add a supplier address
type AddAddressRequest struct {
	Type       string `json:"type" binding:"required,oneof=billing shipping other"`
	Street     string `json:"street" binding:"max=200"`
	PostalCode string `json:"postal_code" binding:"max=20"`
	City       string `json:"city" binding:"max=100"`
	Country    string `json:"country" binding:"max=100"`
	IsDefault  bool   `json:"is_default"`
}

// SupplierListFilter is the filter for listing suppliers
type SupplierListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// AddressResponse is the response representation of an address
type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Street     string    `json:"street"`
	PostalCode string    `json:"postal_code"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"is_default"`
}

// SupplierResponse is the response representation of a supplier
type SupplierResponse struct {
	ID             uuid.UUID         `json:"id"`
	SupplierNumber string            `json:"supplier_number"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Website        string            `json:"website"`
	Notes          string            `json:"notes"`
	Addresses      []AddressResponse `json:"addresses"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ToAddressResponse converts a domain address to its response form
func ToAddressResponse(a *partner.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Type:       string(a.Type),
		Street:     a.Street,
		PostalCode: a.PostalCode,
		City:       a.City,
		Country:    a.Country,
		IsDefault:  a.IsDefault,
	}
}

// ToSupplierResponse converts a domain supplier to its response form
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	addresses := make([]AddressResponse, 0, len(s.Addresses))
	for idx := range s.Addresses {
		addresses = append(addresses, ToAddressResponse(&s.Addresses[idx]))
	}
	return SupplierResponse{
		ID:             s.ID,
		SupplierNumber: s.SupplierNumber,
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		Website:        s.Website,
		Notes:          s.Notes,
		Addresses:      addresses,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
