package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	personNameRegex = regexp.MustCompile(`^[A-Za-z\s'-]+$`)
	courseNameRegex = regexp.MustCompile(`^[A-Za-z0-9\s\-&(),.]+$`)
)

const (
	minStudentAge = 10
	maxStudentAge = 100
)

// Validator wraps go-playground/validator with the domain rules for
// students, courses and results. The disposable-email denylist is injected
// at construction so it can be extended through configuration.
type Validator struct {
	validate          *validator.Validate
	disposableDomains map[string]struct{}
}

func New(disposableDomains []string) *Validator {
	v := &Validator{
		validate:          validator.New(),
		disposableDomains: make(map[string]struct{}, len(disposableDomains)),
	}

	for _, domain := range disposableDomains {
		v.disposableDomains[strings.ToLower(strings.TrimSpace(domain))] = struct{}{}
	}

	// Report fields under their JSON names
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.validate.RegisterValidation("personname", validatePersonName)
	v.validate.RegisterValidation("coursename", validateCourseName)
	v.validate.RegisterValidation("notblank", validateNotBlank)
	v.validate.RegisterValidation("trimmed_min", validateTrimmedMin)
	v.validate.RegisterValidation("notdisposable", v.validateNotDisposable)
	v.validate.RegisterValidation("dob_date", validateDOBDate)
	v.validate.RegisterValidation("dob_past", validateDOBPast)
	v.validate.RegisterValidation("dob_max_age", validateDOBMaxAge)
	v.validate.RegisterValidation("dob_min_age", validateDOBMinAge)

	return v
}

// Struct validates a request DTO and returns the full set of field errors,
// keyed by JSON field name, or nil when the value is valid.
func (v *Validator) Struct(s any) map[string][]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"root": {err.Error()}}
	}

	fieldErrors := make(map[string][]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		fieldErrors[field] = append(fieldErrors[field], messageFor(fieldError))
	}
	return fieldErrors
}

// UUIDParam validates a path-parameter id. Blank or malformed ids fail.
func (v *Validator) UUIDParam(id string) map[string][]string {
	if err := v.validate.Var(id, "required,uuid_rfc4122"); err != nil {
		return map[string][]string{"id": {"Invalid ID format"}}
	}
	return nil
}

func validatePersonName(fl validator.FieldLevel) bool {
	return personNameRegex.MatchString(fl.Field().String())
}

func validateCourseName(fl validator.FieldLevel) bool {
	return courseNameRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateTrimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len([]rune(strings.TrimSpace(fl.Field().String()))) >= min
}

func (v *Validator) validateNotDisposable(fl validator.FieldLevel) bool {
	email := fl.Field().String()
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return true
	}
	domain := strings.ToLower(email[at+1:])
	_, banned := v.disposableDomains[domain]
	return !banned
}

func validateDOBDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func validateDOBPast(fl validator.FieldLevel) bool {
	dob, err := ParseDate(fl.Field().String())
	if err != nil {
		return true // dob_date already reported
	}
	return !dob.After(time.Now())
}

func validateDOBMaxAge(fl validator.FieldLevel) bool {
	dob, err := ParseDate(fl.Field().String())
	if err != nil || dob.After(time.Now()) {
		return true
	}
	return ageInYears(dob, time.Now()) <= maxStudentAge
}

func validateDOBMinAge(fl validator.FieldLevel) bool {
	dob, err := ParseDate(fl.Field().String())
	if err != nil || dob.After(time.Now()) {
		return true
	}
	return ageInYears(dob, time.Now()) >= minStudentAge
}

// ParseDate accepts the date-only form used by the frontend and full
// RFC 3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ageInYears computes whole elapsed years, accounting for whether the
// birthday has occurred yet in the current year.
func ageInYears(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

func messageFor(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
	case "email":
		return "Invalid email format"
	case "notdisposable":
		return "Disposable email addresses are not allowed"
	case "personname":
		return fmt.Sprintf("%s can only contain letters, spaces, hyphens, and apostrophes", label)
	case "dob_date":
		return "Date of birth must be a valid date"
	case "dob_past":
		return "Date of birth cannot be in the future"
	case "dob_max_age":
		return "Student age cannot exceed 100 years"
	case "dob_min_age":
		return "Student must be at least 10 years old"
	case "notblank":
		return fmt.Sprintf("%s cannot be only whitespace", label)
	case "trimmed_min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "coursename":
		return "Course name contains invalid characters. Only letters, numbers, spaces, and basic punctuation allowed"
	case "uuid_rfc4122":
		switch fe.Field() {
		case "studentId":
			return "Invalid student ID format. Must be a valid UUID"
		case "courseId":
			return "Invalid course ID format. Must be a valid UUID"
		}
		return "Invalid ID format"
	case "oneof":
		if fe.Field() == "grade" {
			return "Grade must be one of: A, B, C, D, E, or F"
		}
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", label)
}

func fieldLabel(field string) string {
	fieldNames := map[string]string{
		"firstName":   "First name",
		"lastName":    "Last name",
		"email":       "Email",
		"dateOfBirth": "Date of birth",
		"courseName":  "Course name",
		"grade":       "Grade",
		"studentId":   "Student ID",
		"courseId":    "Course ID",
		"id":          "ID",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
