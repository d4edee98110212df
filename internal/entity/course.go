package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseName string    `gorm:"size:100;uniqueIndex;not null" json:"courseName"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
