package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Result is the grade a student earned in a course. At most one row exists
// per (student, course) pair; deleting either parent removes the row.
type Result struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_results_student_course;index" json:"studentId"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_results_student_course;index" json:"courseId"`
	Grade     string    `gorm:"size:1;not null" json:"grade"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Student Student `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Course  Course  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (r *Result) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
