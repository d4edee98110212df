package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateCourseRequest validates against the raw value so an all-whitespace
// name is rejected distinctly from a too-short one; Name() yields the
// trimmed form for storage.
type CreateCourseRequest struct {
	CourseName string `json:"courseName" validate:"required,notblank,trimmed_min=3,max=100,coursename"`
}

func (r *CreateCourseRequest) Name() string {
	return strings.TrimSpace(r.CourseName)
}

type CourseResponse struct {
	ID         uuid.UUID `json:"id"`
	CourseName string    `json:"courseName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
