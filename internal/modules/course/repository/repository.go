package repository

import (
	"context"

	"github.com/edava/student-records-api/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository interface {
	FindAll(ctx context.Context) ([]entity.Course, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	Create(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) FindAll(ctx context.Context) ([]entity.Course, error) {
	var courses []entity.Course
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var course entity.Course
	if err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Course{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
