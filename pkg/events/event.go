package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PAINT_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
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

// Event type codes.
const (
	TypeUserRegistered    = "USER_REGISTERED"
	TypePaintCreated      = "PAINT_CREATED"
	TypePaintUpdated      = "PAINT_UPDATED"
	TypePaintDeleted      = "PAINT_DELETED"
	TypeChatTurnCompleted = "CHAT_TURN_COMPLETED"
)

func NewUserRegistered(userId uuid.UUID, email string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id": userId.String(),
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

func NewPaintCreated(paintId uuid.UUID, name string) Event {
	return BaseEvent{
		Type: TypePaintCreated,
		Data: map[string]interface{}{
			"paint_id": paintId.String(),
			"name":     name,
		},
		OccurredAt: time.Now(),
	}
}

func NewPaintUpdated(paintId uuid.UUID, name string) Event {
	return BaseEvent{
		Type: TypePaintUpdated,
		Data: map[string]interface{}{
			"paint_id": paintId.String(),
			"name":     name,
		},
		OccurredAt: time.Now(),
	}
}

func NewPaintDeleted(paintId uuid.UUID) Event {
	return BaseEvent{
		Type: TypePaintDeleted,
		Data: map[string]interface{}{
			"paint_id": paintId.String(),
		},
		OccurredAt: time.Now(),
	}
}

// NewChatTurnCompleted records one finished advisor turn for external
// audit or analytics consumers.
func NewChatTurnCompleted(userId uuid.UUID, mode string, paintIds []uuid.UUID, specialists []string) Event {
	ids := make([]string, len(paintIds))
	for i, id := range paintIds {
		ids[i] = id.String()
	}
	return BaseEvent{
		Type: TypeChatTurnCompleted,
		Data: map[string]interface{}{
			"user_id":     userId.String(),
			"mode":        mode,
			"paint_ids":   ids,
			"specialists": specialists,
		},
		OccurredAt: time.Now(),
	}
}
