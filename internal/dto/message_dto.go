package dto

import "github.com/google/uuid"

// PublishEmbedPaintMessage is the internal queue payload that asks the
// embedding worker to (re)index one paint.
type PublishEmbedPaintMessage struct {
	PaintId uuid.UUID `json:"paint_id"`
}
