package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdvisorTurnRequest struct {
	Message string `json:"message" validate:"required"`
	// ResetConversation drops session memory and transcript before this turn.
	ResetConversation bool `json:"reset_conversation"`
}

// MentionedPaint is the short paint card attached to an advisor reply.
type MentionedPaint struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ColorName string    `json:"color_name"`
	Finish    string    `json:"finish"`
	Price     float64   `json:"price"`
}

type PendingActionResponse struct {
	Kind           string   `json:"kind"`
	RequestedColor string   `json:"requested_color,omitempty"`
	Alternatives   []string `json:"alternatives,omitempty"`
}

type AdvisorTurnResponse struct {
	Reply                string                 `json:"reply"`
	Paints               []MentionedPaint       `json:"paints_mentioned"`
	Mode                 string                 `json:"mode"` // "deterministic" | "enhanced"
	SpecialistsConsulted []string               `json:"specialists_consulted"`
	PendingAction        *PendingActionResponse `json:"pending_action,omitempty"`
}

type ChatHistoryItem struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	Messages []ChatHistoryItem `json:"messages"`
}

type AdvisorStatusResponse struct {
	Mode             string `json:"mode"` // "enhanced" when a writer is wired, else "deterministic"
	LlmProvider      string `json:"llm_provider"`
	LlmAvailable     bool   `json:"llm_available"`
	EmbeddingStatus  string `json:"embedding_status"`
	IndexedDocuments int64  `json:"indexed_documents"`
}
