package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePaintRequest struct {
	Name        string   `json:"name" validate:"required"`
	ColorName   string   `json:"color_name" validate:"required"`
	SurfaceType string   `json:"surface_type" validate:"required"`
	Environment string   `json:"environment" validate:"required,oneof=interior exterior both"`
	FinishType  string   `json:"finish_type" validate:"required"`
	Line        string   `json:"line" validate:"omitempty,oneof=Premium Standard Economy"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
}

type CreatePaintResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdatePaintRequest struct {
	Id          uuid.UUID
	Name        string   `json:"name" validate:"required"`
	ColorName   string   `json:"color_name" validate:"required"`
	SurfaceType string   `json:"surface_type" validate:"required"`
	Environment string   `json:"environment" validate:"required,oneof=interior exterior both"`
	FinishType  string   `json:"finish_type" validate:"required"`
	Line        string   `json:"line" validate:"omitempty,oneof=Premium Standard Economy"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
}

type UpdatePaintResponse struct {
	Id uuid.UUID `json:"id"`
}

type PaintResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	ColorName   string     `json:"color_name"`
	SurfaceType string     `json:"surface_type"`
	Environment string     `json:"environment"`
	FinishType  string     `json:"finish_type"`
	Line        string     `json:"line"`
	Features    []string   `json:"features"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ListPaintsRequest struct {
	Environment string `query:"environment"`
	Surface     string `query:"surface"`
	Color       string `query:"color"`
	Finish      string `query:"finish"`
	Line        string `query:"line"`
	Search      string `query:"search"`
	Limit       int    `query:"limit"`
	Offset      int    `query:"offset"`
}

type SemanticSearchPaintResponse struct {
	Paint          PaintResponse `json:"paint"`
	RelevanceScore float64       `json:"relevance_score"` // 0.0-1.0 cosine similarity
}
