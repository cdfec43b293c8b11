package events

import (
	"time"

	"github.com/offerly/console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventNavigationCompleted EventType = "navigation_completed"
	EventMenuItemClicked     EventType = "menu_item_clicked"
	EventOfferingRecorded    EventType = "offering_recorded"
	EventLoginSubmitted      EventType = "login_submitted"
	EventLoginCompleted      EventType = "login_completed"
)

// Event represents something that happened inside a console session.
type Event struct {
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NavigationCompletedPayload payload.
type NavigationCompletedPayload struct {
	URL string `json:"url"`
}

// MenuItemClickedPayload payload.
type MenuItemClickedPayload struct {
	Item domain.MenuItem `json:"item"`
}

// OfferingRecordedPayload payload.
type OfferingRecordedPayload struct {
	Record domain.OfferingRecord `json:"record"`
}

// LoginSubmittedPayload payload. The password is never carried.
type LoginSubmittedPayload struct {
	Email      string `json:"email"`
	RememberMe bool   `json:"remember_me"`
}

// LoginCompletedPayload payload.
type LoginCompletedPayload struct {
	Email      string `json:"email"`
	RememberMe bool   `json:"remember_me"`
}

// New stamps an event for the given session.
func New(sessionID string, eventType EventType, payload interface{}) Event {
	return Event{
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}
