package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertResultRequest struct {
	StudentID string `json:"studentId" validate:"required,uuid_rfc4122"`
	CourseID  string `json:"courseId" validate:"required,uuid_rfc4122"`
	Grade     string `json:"grade" validate:"required,oneof=A B C D E F"`
}

type ResultStudent struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

type ResultCourse struct {
	CourseName string `json:"courseName"`
}

// ResultResponse is the enriched row joined with the referenced student
// and course.
type ResultResponse struct {
	ID        uuid.UUID     `json:"id"`
	StudentID uuid.UUID     `json:"studentId"`
	CourseID  uuid.UUID     `json:"courseId"`
	Grade     string        `json:"grade"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Student   ResultStudent `json:"student"`
	Course    ResultCourse  `json:"course"`
}
