package student

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/edava/student-records-api/internal/entity"
	"github.com/edava/student-records-api/internal/modules/student/dto"
	"github.com/edava/student-records-api/internal/modules/student/repository"
	"github.com/edava/student-records-api/pkg/apperror"
	"github.com/edava/student-records-api/pkg/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Get(ctx context.Context, id string) (*dto.StudentResponse, error)
	Create(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to retrieve students", err)
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, toResponse(&student))
	}
	return responses, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*dto.StudentResponse, error) {
	studentID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	student, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "Student not found", apperror.ErrNotFound)
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to retrieve student", err)
	}

	resp := toResponse(student)
	return &resp, nil
}

func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	dateOfBirth, err := validation.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, apperror.New(http.StatusBadRequest, "Date of birth must be a valid date", apperror.ErrBadRequest)
	}

	student := &entity.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: dateOfBirth,
	}

	if err := s.repo.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.WithFields(
				http.StatusConflict,
				"A student with this email already exists",
				apperror.ErrConflict,
				map[string][]string{"email": {"Email address is already registered"}},
			)
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to create student", err)
	}

	resp := toResponse(student)
	return &resp, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	studentID, err := parseID(id)
	if err != nil {
		return err
	}

	// The storage layer cascades the delete to this student's results.
	affected, err := s.repo.Delete(ctx, studentID)
	if err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to delete student", err)
	}
	if affected == 0 {
		return apperror.New(http.StatusNotFound, "Student not found", apperror.ErrNotFound)
	}
	return nil
}

// parseID rejects blank and malformed ids without a store round-trip.
func parseID(id string) (uuid.UUID, error) {
	if strings.TrimSpace(id) == "" {
		return uuid.Nil, apperror.New(http.StatusBadRequest, "Invalid student ID", apperror.ErrBadRequest)
	}
	studentID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.New(http.StatusBadRequest, "Invalid student ID", apperror.ErrBadRequest)
	}
	return studentID, nil
}

func toResponse(student *entity.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:          student.ID,
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		Email:       student.Email,
		DateOfBirth: student.DateOfBirth,
		CreatedAt:   student.CreatedAt,
		UpdatedAt:   student.UpdatedAt,
	}
}
