package specification

import (
	"strings"

	"gorm.io/gorm"
)

// ForEnvironment matches paints usable in an environment, counting "both"
// as usable everywhere. An empty environment matches everything.
type ForEnvironment struct {
	Environment string
}

func (s ForEnvironment) Apply(db *gorm.DB) *gorm.DB {
	if s.Environment == "" {
		return db
	}
	return db.Where("environment IN ?", []string{s.Environment, "both"})
}

// ForSurfaces matches any of the given surface labels, case-insensitively.
type ForSurfaces struct {
	Surfaces []string
}

func (s ForSurfaces) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Surfaces) == 0 {
		return db
	}
	lowered := make([]string, len(s.Surfaces))
	for i, surface := range s.Surfaces {
		lowered[i] = strings.ToLower(surface)
	}
	return db.Where("LOWER(surface_type) IN ?", lowered)
}

// ByColorLike matches the color name as a substring, so "blue" also finds
// "navy blue".
type ByColorLike struct {
	Color string
}

func (s ByColorLike) Apply(db *gorm.DB) *gorm.DB {
	if s.Color == "" {
		return db
	}
	return db.Where("color_name ILIKE ?", "%"+s.Color+"%")
}

// ByFinish matches the exact finish type.
type ByFinish struct {
	Finish string
}

func (s ByFinish) Apply(db *gorm.DB) *gorm.DB {
	if s.Finish == "" {
		return db
	}
	return db.Where("finish_type = ?", s.Finish)
}

// ByLine matches the product line.
type ByLine struct {
	Line string
}

func (s ByLine) Apply(db *gorm.DB) *gorm.DB {
	if s.Line == "" {
		return db
	}
	return db.Where("line = ?", s.Line)
}

// SearchText matches name, description or features.
type SearchText struct {
	Query string
}

func (s SearchText) Apply(db *gorm.DB) *gorm.DB {
	if s.Query == "" {
		return db
	}
	like := "%" + s.Query + "%"
	return db.Where("name ILIKE ? OR description ILIKE ? OR features ILIKE ?", like, like, like)
}
