package settings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/atelier/backend/internal/domain/identifier"
	"github.com/atelier/backend/internal/domain/settings"
	"github.com/atelier/backend/internal/domain/shared"
)

// Service manages the keyed configuration documents
type Service struct {
	repo   settings.Repository
	events shared.EventPublisher
}

// NewService creates a new settings Service
func NewService(repo settings.Repository, events shared.EventPublisher) *Service {
	return &Service{repo: repo, events: events}
}

// GetSKUConfig returns the SKU configuration, falling back to the
// default when none has been stored yet
func (s *Service) GetSKUConfig(ctx context.Context) (*SKUConfigResponse, error) {
	setting, err := s.repo.FindByKey(ctx, settings.KeySKUConfig)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			resp := ToSKUConfigResponse(settings.DefaultSKUConfig())
			return &resp, nil
		}
		return nil, err
	}
	cfg, err := setting.SKUConfig()
	if err != nil {
		return nil, err
	}

	resp := ToSKUConfigResponse(cfg)
	return &resp, nil
}

// UpdateSKUConfig replaces the SKU configuration wholesale, the
// counter included
func (s *Service) UpdateSKUConfig(ctx context.Context, req SKUConfigRequest) (*SKUConfigResponse, error) {
	cfg := settings.SKUConfig{
		EnableAutoGeneration: req.EnableAutoGeneration,
		Prefix:               req.Prefix,
		SequenceCounter:      req.SequenceCounter,
	}

	setting, err := s.findOrCreate(ctx, settings.KeySKUConfig, settings.DefaultSKUConfig())
	if err != nil {
		return nil, err
	}
	if err := setting.SetSKUConfig(cfg); err != nil {
		return nil, err
	}
	if err := s.save(ctx, setting); err != nil {
		return nil, err
	}

	resp := ToSKUConfigResponse(cfg)
	return &resp, nil
}

// GetGS1Config returns the GS1 configuration, falling back to the
// default when none has been stored yet
func (s *Service) GetGS1Config(ctx context.Context) (*GS1ConfigResponse, error) {
	setting, err := s.repo.FindByKey(ctx, settings.KeyGS1Config)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			resp := ToGS1ConfigResponse(settings.DefaultGS1Config())
			return &resp, nil
		}
		return nil, err
	}
	cfg, err := setting.GS1Config()
	if err != nil {
		return nil, err
	}

	resp := ToGS1ConfigResponse(cfg)
	return &resp, nil
}

// UpdateGS1Config updates the GS1 configuration. The stored sequence
// counter is never overwritten: a counter value in the request is
// ignored, and a fresh configuration starts at zero.
func (s *Service) UpdateGS1Config(ctx context.Context, req GS1ConfigRequest) (*GS1ConfigResponse, error) {
	cfg := settings.GS1Config{
		CompanyPrefix:     req.CompanyPrefix,
		LocationReference: req.LocationReference,
		Format:            identifier.Format(req.Format),
	}

	setting, err := s.findOrCreate(ctx, settings.KeyGS1Config, settings.DefaultGS1Config())
	if err != nil {
		return nil, err
	}
	if err := setting.SetGS1Config(cfg); err != nil {
		return nil, err
	}
	if err := s.save(ctx, setting); err != nil {
		return nil, err
	}

	stored, err := setting.GS1Config()
	if err != nil {
		return nil, err
	}
	resp := ToGS1ConfigResponse(stored)
	return &resp, nil
}

// GetEditorConfig returns the opaque editor configuration
func (s *Service) GetEditorConfig(ctx context.Context) (*EditorConfigResponse, error) {
	setting, err := s.repo.FindByKey(ctx, settings.KeyEditorConfig)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &EditorConfigResponse{Value: json.RawMessage("{}")}, nil
		}
		return nil, err
	}
	return &EditorConfigResponse{Value: json.RawMessage(setting.Value)}, nil
}

// UpdateEditorConfig stores the opaque editor configuration document
func (s *Service) UpdateEditorConfig(ctx context.Context, value json.RawMessage) (*EditorConfigResponse, error) {
	var decoded any
	if err := json.Unmarshal(value, &decoded); err != nil {
		return nil, shared.NewDomainError("INVALID_VALUE", "Editor configuration must be valid JSON")
	}

	setting, err := s.findOrCreate(ctx, settings.KeyEditorConfig, map[string]any{})
	if err != nil {
		return nil, err
	}
	if err := setting.SetValue(decoded); err != nil {
		return nil, err
	}
	if err := s.save(ctx, setting); err != nil {
		return nil, err
	}

	return &EditorConfigResponse{Value: json.RawMessage(setting.Value)}, nil
}

func (s *Service) findOrCreate(ctx context.Context, key string, initial any) (*settings.Setting, error) {
	setting, err := s.repo.FindByKey(ctx, key)
	if err == nil {
		return setting, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	return settings.NewSetting(key, initial)
}

func (s *Service) save(ctx context.Context, setting *settings.Setting) error {
	if err := s.repo.Save(ctx, setting); err != nil {
		return err
	}
	if s.events != nil {
		if err := s.events.Publish(ctx, setting.GetDomainEvents()...); err != nil {
			return err
		}
	}
	setting.ClearDomainEvents()
	return nil
}
