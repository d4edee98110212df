package result

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/edava/student-records-api/internal/entity"
	"github.com/edava/student-records-api/internal/modules/result/dto"
	"github.com/edava/student-records-api/internal/modules/result/repository"
	"github.com/edava/student-records-api/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResultService interface {
	List(ctx context.Context) ([]dto.ResultResponse, error)
	// Upsert creates the result for a fresh (student, course) pair or
	// updates the existing one's grade; created reports which happened.
	Upsert(ctx context.Context, req dto.UpsertResultRequest) (resp *dto.ResultResponse, created bool, err error)
	Delete(ctx context.Context, id string) error
}

type resultService struct {
	repo repository.ResultRepository
}

func NewResultService(repo repository.ResultRepository) ResultService {
	return &resultService{repo: repo}
}

func (s *resultService) List(ctx context.Context) ([]dto.ResultResponse, error) {
	results, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch results", err)
	}

	responses := make([]dto.ResultResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toResponse(&result))
	}
	return responses, nil
}

func (s *resultService) Upsert(ctx context.Context, req dto.UpsertResultRequest) (*dto.ResultResponse, bool, error) {
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, false, apperror.New(http.StatusBadRequest, "Invalid student ID format. Must be a valid UUID", apperror.ErrBadRequest)
	}
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return nil, false, apperror.New(http.StatusBadRequest, "Invalid course ID format. Must be a valid UUID", apperror.ErrBadRequest)
	}

	// Existence check only decides created-vs-updated; the write below is
	// a single atomic insert-or-update.
	existing, err := s.repo.FindByPair(ctx, studentID, courseID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperror.New(http.StatusInternalServerError, "Failed to create/update result", err)
	}

	result := &entity.Result{
		StudentID: studentID,
		CourseID:  courseID,
		Grade:     req.Grade,
	}

	if err := s.repo.Upsert(ctx, result); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, false, apperror.New(http.StatusBadRequest, "Invalid student or course ID", apperror.ErrInvalidReference)
		}
		return nil, false, apperror.New(http.StatusInternalServerError, "Failed to create/update result", err)
	}

	enriched, err := s.repo.FindEnrichedByPair(ctx, studentID, courseID)
	if err != nil {
		return nil, false, apperror.New(http.StatusInternalServerError, "Failed to create/update result", err)
	}

	resp := toResponse(enriched)
	return &resp, existing == nil, nil
}

func (s *resultService) Delete(ctx context.Context, id string) error {
	resultID, err := parseID(id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, resultID)
	if err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to delete result", err)
	}
	if affected == 0 {
		return apperror.New(http.StatusNotFound, "Result not found", apperror.ErrNotFound)
	}
	return nil
}

func parseID(id string) (uuid.UUID, error) {
	if strings.TrimSpace(id) == "" {
		return uuid.Nil, apperror.New(http.StatusBadRequest, "Invalid result ID", apperror.ErrBadRequest)
	}
	resultID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.New(http.StatusBadRequest, "Invalid result ID", apperror.ErrBadRequest)
	}
	return resultID, nil
}

func toResponse(result *entity.Result) dto.ResultResponse {
	return dto.ResultResponse{
		ID:        result.ID,
		StudentID: result.StudentID,
		CourseID:  result.CourseID,
		Grade:     result.Grade,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
		Student: dto.ResultStudent{
			FirstName: result.Student.FirstName,
			LastName:  result.Student.LastName,
			FullName:  result.Student.FirstName + " " + result.Student.LastName,
		},
		Course: dto.ResultCourse{
			CourseName: result.Course.CourseName,
		},
	}
}
