package repository

import (
	"exam_platform_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) CreateStudent(s *model.Student) error {
	return r.DB.Create(s).Error
}

func (r *StudentRepository) FindStudentByID(id uint) (*model.Student, error) {
	var s model.Student
	err := r.DB.First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) FindStudentByEmail(email string) (*model.Student, error) {
	var s model.Student
	err := r.DB.Where("email = ?", email).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) StudentExists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Student{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *StudentRepository) ListStudents(page, limit int) ([]model.Student, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Student{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []model.Student
	offset := (page - 1) * limit
	err := r.DB.Order("created_at desc").Offset(offset).Limit(limit).Find(&students).Error
	return students, total, err
}
