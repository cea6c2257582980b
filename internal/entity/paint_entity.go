package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaintEnvironment string
type PaintFinish string
type PaintLine string

const (
	PaintEnvironmentInterior PaintEnvironment = "interior"
	PaintEnvironmentExterior PaintEnvironment = "exterior"
	PaintEnvironmentBoth     PaintEnvironment = "both"

	PaintFinishMatte     PaintFinish = "matte"
	PaintFinishSatin     PaintFinish = "satin"
	PaintFinishGloss     PaintFinish = "gloss"
	PaintFinishSemiGloss PaintFinish = "semi-gloss"

	PaintLinePremium  PaintLine = "Premium"
	PaintLineStandard PaintLine = "Standard"
	PaintLineEconomy  PaintLine = "Economy"
)

type Paint struct {
	Id          uuid.UUID
	Name        string
	ColorName   string
	SurfaceType string
	Environment PaintEnvironment
	FinishType  PaintFinish
	Line        PaintLine
	Features    string // comma-separated
	Description string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
