package model

type EventType string

const (
	EventCatalogUpdated  EventType = "CATALOG_UPDATED"
	EventSettingsUpdated EventType = "SETTINGS_UPDATED"
	EventSessionStarted  EventType = "SESSION_STARTED"
	EventSessionEnded    EventType = "SESSION_ENDED"
)

type Event struct {
	Type    EventType      `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}
