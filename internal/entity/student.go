package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string    `gorm:"size:50;not null" json:"firstName"`
	LastName    string    `gorm:"size:50;not null" json:"lastName"`
	Email       string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	DateOfBirth time.Time `gorm:"not null" json:"dateOfBirth"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
