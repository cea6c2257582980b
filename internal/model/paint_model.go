package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Paint struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"type:varchar(255);not null"`
	ColorName   string         `gorm:"type:varchar(100);not null;index"`
	SurfaceType string         `gorm:"type:varchar(100);not null;index"`
	Environment string         `gorm:"type:varchar(50);not null;index"`
	FinishType  string         `gorm:"type:varchar(50);not null"`
	Line        string         `gorm:"type:varchar(50);not null;default:'Standard'"`
	Features    string         `gorm:"type:text"`
	Description string         `gorm:"type:text"`
	Price       float64        `gorm:"type:numeric(10,2);default:0"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Paint) TableName() string {
	return "paints"
}
