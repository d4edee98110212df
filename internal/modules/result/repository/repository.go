package repository

import (
	"context"

	"github.com/edava/student-records-api/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResultRepository interface {
	FindAll(ctx context.Context) ([]entity.Result, error)
	FindByPair(ctx context.Context, studentID, courseID uuid.UUID) (*entity.Result, error)
	FindEnrichedByPair(ctx context.Context, studentID, courseID uuid.UUID) (*entity.Result, error)
	Upsert(ctx context.Context, result *entity.Result) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) FindAll(ctx context.Context) ([]entity.Result, error) {
	var results []entity.Result
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Order("created_at DESC, id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) FindByPair(ctx context.Context, studentID, courseID uuid.UUID) (*entity.Result, error) {
	var result entity.Result
	if err := r.db.WithContext(ctx).
		First(&result, "student_id = ? AND course_id = ?", studentID, courseID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindEnrichedByPair(ctx context.Context, studentID, courseID uuid.UUID) (*entity.Result, error) {
	var result entity.Result
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		First(&result, "student_id = ? AND course_id = ?", studentID, courseID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// Upsert inserts the result or, when the (student_id, course_id) pair
// already exists, updates its grade and updated_at in the same statement.
// Concurrent identical upserts therefore cannot hit a duplicate-key error.
func (r *resultRepository) Upsert(ctx context.Context, result *entity.Result) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"grade", "updated_at"}),
	}).Create(result).Error
}

func (r *resultRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Result{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
