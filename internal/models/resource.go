package models

import (
	"time"

	"gorm.io/gorm"
)

type ResourceType string

const (
	ResourceCrosshair ResourceType = "CROSSHAIR"
)

// Resource is extra community material that is not a routine or playlist,
// currently only crosshair images.
type Resource struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updatedAt" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deletedAt" json:"-"`

	Type ResourceType `gorm:"type:text;index" json:"type"`
	Name string       `json:"name"`
	URL  string       `gorm:"column:url" json:"url"`

	SubmittedByID string `gorm:"column:submittedById" json:"submittedById"`
	SubmittedBy   User   `gorm:"foreignKey:SubmittedByID" json:"-"`
}

func (Resource) TableName() string {
	return "Resource"
}
