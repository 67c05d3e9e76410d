package events

import "time"

// Topic is the in-process watermill topic mutations publish to.
const Topic = "entity.changed"

// Actions carried by change events.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "note.created").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// ChangeEvent records a mutation on a folder, note or label.
type ChangeEvent struct {
	Entity     string
	Action     string
	Id         int
	OccurredAt time.Time
}

// NewChange builds a change event for an entity mutation.
func NewChange(entity, action string, id int) ChangeEvent {
	return ChangeEvent{Entity: entity, Action: action, Id: id, OccurredAt: time.Now()}
}

func (e ChangeEvent) EventType() string {
	return e.Entity + "." + e.Action
}

func (e ChangeEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"entity": e.Entity,
		"action": e.Action,
		"id":     e.Id,
	}
}

func (e ChangeEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// BaseEvent is a generic event reconstructed from a wire payload, used
// on the consuming side where the concrete type is not known.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

// BaseFromPayload wraps a raw payload received off the bus.
func BaseFromPayload(eventType string, payload map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: payload, OccurredAt: time.Now()}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
