package repository

import (
	"context"

	"github.com/edava/student-records-api/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentRepository interface {
	FindAll(ctx context.Context) ([]entity.Student, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	Create(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindAll(ctx context.Context) ([]entity.Student, error) {
	var students []entity.Student
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id").
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var student entity.Student
	if err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Student{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
