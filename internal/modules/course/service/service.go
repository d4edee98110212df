package course

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/edava/student-records-api/internal/entity"
	"github.com/edava/student-records-api/internal/modules/course/dto"
	"github.com/edava/student-records-api/internal/modules/course/repository"
	"github.com/edava/student-records-api/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseService interface {
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Get(ctx context.Context, id string) (*dto.CourseResponse, error)
	Create(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id string) error
}

type courseService struct {
	repo repository.CourseRepository
}

func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch courses", err)
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, toResponse(&course))
	}
	return responses, nil
}

func (s *courseService) Get(ctx context.Context, id string) (*dto.CourseResponse, error) {
	courseID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	course, err := s.repo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "Course not found", apperror.ErrNotFound)
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to fetch course", err)
	}

	resp := toResponse(course)
	return &resp, nil
}

func (s *courseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course := &entity.Course{CourseName: req.Name()}

	if err := s.repo.Create(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.WithFields(
				http.StatusConflict,
				"A course with this name already exists",
				apperror.ErrConflict,
				map[string][]string{"courseName": {"This course name is already registered. Please use a different name."}},
			)
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to create course", err)
	}

	resp := toResponse(course)
	return &resp, nil
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	courseID, err := parseID(id)
	if err != nil {
		return err
	}

	// The storage layer cascades the delete to this course's results.
	affected, err := s.repo.Delete(ctx, courseID)
	if err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to delete course", err)
	}
	if affected == 0 {
		return apperror.New(http.StatusNotFound, "Course not found", apperror.ErrNotFound)
	}
	return nil
}

func parseID(id string) (uuid.UUID, error) {
	if strings.TrimSpace(id) == "" {
		return uuid.Nil, apperror.New(http.StatusBadRequest, "Invalid course ID", apperror.ErrBadRequest)
	}
	courseID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.New(http.StatusBadRequest, "Invalid course ID", apperror.ErrBadRequest)
	}
	return courseID, nil
}

func toResponse(course *entity.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:         course.ID,
		CourseName: course.CourseName,
		CreatedAt:  course.CreatedAt,
		UpdatedAt:  course.UpdatedAt,
	}
}
