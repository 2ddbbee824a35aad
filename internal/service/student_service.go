package service

import (
	"errors"

	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/util"

	"gorm.io/gorm"
)

type StudentService struct {
	Repo *repository.StudentRepository
}

func NewStudentService(repo *repository.StudentRepository) *StudentService {
	return &StudentService{Repo: repo}
}

type CreateStudentRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (s *StudentService) CreateStudent(req CreateStudentRequest) (*model.Student, error) {
	_, err := s.Repo.FindStudentByEmail(req.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	student := &model.Student{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.Repo.CreateStudent(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) GetStudent(id uint) (*model.Student, error) {
	student, err := s.Repo.FindStudentByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStudentNotFound
	}
	return student, err
}

func (s *StudentService) ListStudents(page, limit int) ([]model.Student, int64, error) {
	return s.Repo.ListStudents(page, limit)
}
