package validation

import (
	"strings"
	"testing"
	"time"

	courseDto "github.com/edava/student-records-api/internal/modules/course/dto"
	resultDto "github.com/edava/student-records-api/internal/modules/result/dto"
	studentDto "github.com/edava/student-records-api/internal/modules/student/dto"
)

var testDisposableDomains = []string{"tempmail.com", "mailinator.com"}

func yearsAgo(n int) string {
	return time.Now().AddDate(-n, 0, 0).Format("2006-01-02")
}

func validStudent() studentDto.CreateStudentRequest {
	return studentDto.CreateStudentRequest{
		FirstName:   "Alice",
		LastName:    "O'Brien-Smith",
		Email:       "alice@example.com",
		DateOfBirth: yearsAgo(20),
	}
}

func TestStudentValidation(t *testing.T) {
	v := New(testDisposableDomains)

	tests := []struct {
		name     string
		mutate   func(*studentDto.CreateStudentRequest)
		field    string
		message  string
		wantPass bool
	}{
		{name: "valid input", mutate: func(r *studentDto.CreateStudentRequest) {}, wantPass: true},
		{
			name:    "missing first name",
			mutate:  func(r *studentDto.CreateStudentRequest) { r.FirstName = "" },
			field:   "firstName",
			message: "First name is required",
		},
		{
			name:    "whitespace-only first name trims to empty",
			mutate:  func(r *studentDto.CreateStudentRequest) { r.FirstName = "   " },
			field:   "firstName",
			message: "First name is required",
		},
		{
			name:    "first name with digits",
			mutate:  func(r *studentDto.CreateStudentRequest) { r.FirstName = "Al1ce" },
			field:   "firstName",
			message: "First name can only contain letters, spaces, hyphens, and apostrophes",
		},
		{
			name:    "first name too long",
			mutate:  func(r *studentDto.CreateStudentRequest) { r.FirstName = strings.Repeat("a", 51) },
			field:   "firstName",
			message: "First name cannot exceed 50 characters",
		},
		{
			name:     "last name with apostrophe and hyphen",
			mutate:   func(r *studentDto.CreateStudentRequest) { r.LastName = "D'Arcy-Jones" },
			wantPass: true,
		},
		{
			name:    "malformed email",
			mutate:  func(r *studentDto.CreateStudentRequest) { r.Email = "not-an-email" },
			field:   "email",
			message: "Invalid email format",
		},
		{
			name:    "disposable email domain",
			mutate:  func(r *studentDto.CreateStudentRequest) { r.Email = "alice@tempmail.com" },
			field:   "email",
			message: "Disposable email addresses are not allowed",
		},
		{
			name: "disposable domain is case-insensitive after normalize",
			mutate: func(r *studentDto.CreateStudentRequest) {
				r.Email = "Alice@MAILINATOR.com"
			},
			field:   "email",
			message: "Disposable email addresses are not allowed",
		},
		{
			name: "email too long",
			mutate: func(r *studentDto.CreateStudentRequest) {
				r.Email = strings.Repeat("a", 95) + "@example.com"
			},
			field:   "email",
			message: "Email cannot exceed 100 characters",
		},
		{
			name:    "unparseable date of birth",
			mutate:  func(r *studentDto.CreateStudentRequest) { r.DateOfBirth = "not-a-date" },
			field:   "dateOfBirth",
			message: "Date of birth must be a valid date",
		},
		{
			name: "date of birth in the future",
			mutate: func(r *studentDto.CreateStudentRequest) {
				r.DateOfBirth = time.Now().AddDate(0, 0, 2).Format("2006-01-02")
			},
			field:   "dateOfBirth",
			message: "Date of birth cannot be in the future",
		},
		{
			name:    "born today is under the minimum age",
			mutate:  func(r *studentDto.CreateStudentRequest) { r.DateOfBirth = time.Now().Format("2006-01-02") },
			field:   "dateOfBirth",
			message: "Student must be at least 10 years old",
		},
		{
			name:    "101 years old exceeds the maximum age",
			mutate:  func(r *studentDto.CreateStudentRequest) { r.DateOfBirth = yearsAgo(101) },
			field:   "dateOfBirth",
			message: "Student age cannot exceed 100 years",
		},
		{
			name:     "exactly 10 years old is accepted",
			mutate:   func(r *studentDto.CreateStudentRequest) { r.DateOfBirth = yearsAgo(10) },
			wantPass: true,
		},
		{
			name:     "exactly 100 years old is accepted",
			mutate:   func(r *studentDto.CreateStudentRequest) { r.DateOfBirth = yearsAgo(100) },
			wantPass: true,
		},
		{
			name: "nine years old is rejected",
			mutate: func(r *studentDto.CreateStudentRequest) {
				r.DateOfBirth = time.Now().AddDate(-10, 0, 1).Format("2006-01-02")
			},
			field:   "dateOfBirth",
			message: "Student must be at least 10 years old",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStudent()
			tt.mutate(&req)
			req.Normalize()

			errs := v.Struct(&req)
			if tt.wantPass {
				if errs != nil {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if errs == nil {
				t.Fatalf("expected a %q error, got none", tt.field)
			}
			messages, ok := errs[tt.field]
			if !ok {
				t.Fatalf("expected errors on field %q, got %v", tt.field, errs)
			}
			if !contains(messages, tt.message) {
				t.Fatalf("expected message %q on %q, got %v", tt.message, tt.field, messages)
			}
		})
	}
}

func TestStudentValidationCollectsAllFieldErrors(t *testing.T) {
	v := New(testDisposableDomains)

	req := studentDto.CreateStudentRequest{
		FirstName:   "",
		LastName:    "123",
		Email:       "bad",
		DateOfBirth: "nope",
	}
	req.Normalize()

	errs := v.Struct(&req)
	if errs == nil {
		t.Fatal("expected errors")
	}
	for _, field := range []string{"firstName", "lastName", "email", "dateOfBirth"} {
		if len(errs[field]) == 0 {
			t.Errorf("expected an error on %q, got %v", field, errs)
		}
	}
}

func TestCourseValidation(t *testing.T) {
	v := New(nil)

	tests := []struct {
		name       string
		courseName string
		message    string
		wantPass   bool
	}{
		{name: "three-char alphanumeric accepted", courseName: "CS1", wantPass: true},
		{name: "punctuation allowed", courseName: "Maths & Stats (Hons), Yr-2.", wantPass: true},
		{name: "missing", courseName: "", message: "Course name is required"},
		{name: "two chars rejected", courseName: "CS", message: "Course name must be at least 3 characters"},
		{name: "padded two chars rejected", courseName: "  CS  ", message: "Course name must be at least 3 characters"},
		{
			name:       "whitespace-only rejected distinctly",
			courseName: "    ",
			message:    "Course name cannot be only whitespace",
		},
		{
			name:       "disallowed symbol rejected",
			courseName: "Chemistry@Night",
			message:    "Course name contains invalid characters. Only letters, numbers, spaces, and basic punctuation allowed",
		},
		{
			name:       "too long rejected",
			courseName: strings.Repeat("a", 101),
			message:    "Course name cannot exceed 100 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := courseDto.CreateCourseRequest{CourseName: tt.courseName}
			errs := v.Struct(&req)
			if tt.wantPass {
				if errs != nil {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if errs == nil {
				t.Fatal("expected errors, got none")
			}
			if !contains(errs["courseName"], tt.message) {
				t.Fatalf("expected message %q, got %v", tt.message, errs["courseName"])
			}
		})
	}
}

func TestResultValidation(t *testing.T) {
	v := New(nil)

	const (
		goodStudentID = "6f1b4f93-62f2-4c96-9f0a-50a4a60e5a5f"
		goodCourseID  = "0b9a7c52-8a52-43d5-9c5d-2f1d52a9e9b1"
	)

	for _, grade := range []string{"A", "B", "C", "D", "E", "F"} {
		req := resultDto.UpsertResultRequest{StudentID: goodStudentID, CourseID: goodCourseID, Grade: grade}
		if errs := v.Struct(&req); errs != nil {
			t.Errorf("grade %q: expected no errors, got %v", grade, errs)
		}
	}

	for _, grade := range []string{"a", "A+", "G", "85", ""} {
		req := resultDto.UpsertResultRequest{StudentID: goodStudentID, CourseID: goodCourseID, Grade: grade}
		errs := v.Struct(&req)
		if errs == nil {
			t.Errorf("grade %q: expected errors, got none", grade)
			continue
		}
		if len(errs["grade"]) == 0 {
			t.Errorf("grade %q: expected a grade field error, got %v", grade, errs)
		}
	}

	badIDs := []string{
		"invalid-id",
		"6f1b4f93-62f2-0c96-9f0a-50a4a60e5a5f", // version nibble out of range
		"6f1b4f93-62f2-4c96-0f0a-50a4a60e5a5f", // variant nibble out of range
		"6f1b4f9362f24c969f0a50a4a60e5a5f",     // missing separators
	}
	for _, id := range badIDs {
		req := resultDto.UpsertResultRequest{StudentID: id, CourseID: goodCourseID, Grade: "A"}
		errs := v.Struct(&req)
		if !contains(errs["studentId"], "Invalid student ID format. Must be a valid UUID") {
			t.Errorf("studentId %q: expected uuid error, got %v", id, errs)
		}

		req = resultDto.UpsertResultRequest{StudentID: goodStudentID, CourseID: id, Grade: "A"}
		errs = v.Struct(&req)
		if !contains(errs["courseId"], "Invalid course ID format. Must be a valid UUID") {
			t.Errorf("courseId %q: expected uuid error, got %v", id, errs)
		}
	}
}

func TestUUIDParam(t *testing.T) {
	v := New(nil)

	if errs := v.UUIDParam("6f1b4f93-62f2-4c96-9f0a-50a4a60e5a5f"); errs != nil {
		t.Fatalf("expected valid uuid to pass, got %v", errs)
	}

	for _, id := range []string{"", "   ", "abc", "123e4567"} {
		errs := v.UUIDParam(id)
		if errs == nil {
			t.Errorf("id %q: expected errors, got none", id)
			continue
		}
		if !contains(errs["id"], "Invalid ID format") {
			t.Errorf("id %q: expected invalid format message, got %v", id, errs)
		}
	}
}

func TestAgeInYears(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		dob  time.Time
		want int
	}{
		{time.Date(2016, time.June, 15, 0, 0, 0, 0, time.UTC), 10}, // birthday today
		{time.Date(2016, time.June, 16, 0, 0, 0, 0, time.UTC), 9},  // birthday tomorrow
		{time.Date(2016, time.June, 14, 0, 0, 0, 0, time.UTC), 10}, // birthday yesterday
		{time.Date(1926, time.July, 1, 0, 0, 0, 0, time.UTC), 99},
		{time.Date(1925, time.May, 1, 0, 0, 0, 0, time.UTC), 101},
	}

	for _, tt := range tests {
		if got := ageInYears(tt.dob, now); got != tt.want {
			t.Errorf("ageInYears(%s) = %d, want %d", tt.dob.Format("2006-01-02"), got, tt.want)
		}
	}
}

func contains(messages []string, want string) bool {
	for _, m := range messages {
		if m == want {
			return true
		}
	}
	return false
}
