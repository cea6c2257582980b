package mapper

import (
	"encoding/json"
	"time"

	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatMessageMapper struct{}

func NewChatMessageMapper() *ChatMessageMapper {
	return &ChatMessageMapper{}
}

func (m *ChatMessageMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	var meta *entity.ChatTurnMeta
	if len(c.Meta) > 0 {
		var parsed entity.ChatTurnMeta
		if err := json.Unmarshal(c.Meta, &parsed); err == nil {
			meta = &parsed
		}
	}

	return &entity.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Role:      c.Role,
		Content:   c.Content,
		Meta:      meta,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: c.DeletedAt.Valid,
	}
}

func (m *ChatMessageMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	var meta datatypes.JSON
	if c.Meta != nil {
		if raw, err := json.Marshal(c.Meta); err == nil {
			meta = raw
		}
	}

	return &model.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Role:      c.Role,
		Content:   c.Content,
		Meta:      meta,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *ChatMessageMapper) ToEntities(messages []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
