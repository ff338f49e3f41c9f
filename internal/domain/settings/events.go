package settings

import "github.com/atelier/backend/internal/domain/shared"

// Event types for the settings domain
const (
	EventTypeSettingUpdated = "settings.setting.updated"
)

// SettingUpdatedEvent is raised when a setting value changes
type SettingUpdatedEvent struct {
	shared.BaseDomainEvent
	Key string `json:"key"`
}

// NewSettingUpdatedEvent creates a new SettingUpdatedEvent
func NewSettingUpdatedEvent(setting *Setting) *SettingUpdatedEvent {
	return &SettingUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSettingUpdated, "Setting", setting.ID),
		Key:             setting.Key,
	}
}
