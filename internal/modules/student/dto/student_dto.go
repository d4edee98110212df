package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateStudentRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=50,personname"`
	LastName    string `json:"lastName" validate:"required,max=50,personname"`
	Email       string `json:"email" validate:"required,email,max=100,notdisposable"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,dob_date,dob_past,dob_max_age,dob_min_age"`
}

// Normalize trims the name fields and canonicalizes the email before
// validation, so stored values are already normalized.
func (r *CreateStudentRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
}

type StudentResponse struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
