package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurnMeta is the structured payload stored alongside an assistant
// message: which paints were mentioned, which specialists spoke up and
// which composition mode produced the text.
type ChatTurnMeta struct {
	PaintIds    []uuid.UUID `json:"paint_ids,omitempty"`
	Specialists []string    `json:"specialists,omitempty"`
	Mode        string      `json:"mode,omitempty"`
	Pending     string      `json:"pending,omitempty"`
}

type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Role      string
	Content   string
	Meta      *ChatTurnMeta
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
