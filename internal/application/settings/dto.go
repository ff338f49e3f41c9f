package settings

import (
	"encoding/json"

	"github.com/atelier/backend/internal/domain/settings"
)

// SKUConfigRequest is the request to update the SKU configuration
type SKUConfigRequest struct {
	EnableAutoGeneration bool   `json:"enable_auto_generation"`
	Prefix               string `json:"prefix" binding:"max=20"`
	SequenceCounter      int64  `json:"sequence_counter" binding:"min=0"`
}

// GS1ConfigRequest is the request to update the GS1 configuration.
// The sequence counter field is accepted but never applied; the
// stored counter always wins.
type GS1ConfigRequest struct {
	CompanyPrefix     string `json:"company_prefix" binding:"max=12"`
	LocationReference string `json:"location_reference" binding:"max=5"`
	Format            string `json:"format" binding:"required,oneof=gtin13 gtin14 sscc"`
	SequenceCounter   int64  `json:"sequence_counter"`
}

// SKUConfigResponse mirrors the stored SKU configuration
type SKUConfigResponse struct {
	EnableAutoGeneration bool   `json:"enable_auto_generation"`
	Prefix               string `json:"prefix"`
	SequenceCounter      int64  `json:"sequence_counter"`
}

// GS1ConfigResponse mirrors the stored GS1 configuration
type GS1ConfigResponse struct {
	CompanyPrefix     string `json:"company_prefix"`
	LocationReference string `json:"location_reference"`
	Format            string `json:"format"`
	SequenceCounter   int64  `json:"sequence_counter"`
}

// EditorConfigResponse carries the opaque editor configuration document
type EditorConfigResponse struct {
	Value json.RawMessage `json:"value"`
}

// ToSKUConfigResponse converts a domain config to its response form
func ToSKUConfigResponse(cfg settings.SKUConfig) SKUConfigResponse {
	return SKUConfigResponse{
		EnableAutoGeneration: cfg.EnableAutoGeneration,
		Prefix:               cfg.Prefix,
		SequenceCounter:      cfg.SequenceCounter,
	}
}

// ToGS1ConfigResponse converts a domain config to its response form
func ToGS1ConfigResponse(cfg settings.GS1Config) GS1ConfigResponse {
	return GS1ConfigResponse{
		CompanyPrefix:     cfg.CompanyPrefix,
		LocationReference: cfg.LocationReference,
		Format:            string(cfg.Format),
		SequenceCounter:   cfg.SequenceCounter,
	}
}
