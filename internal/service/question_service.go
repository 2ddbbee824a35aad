package service

import (
	"errors"
	"fmt"

	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

type AlternativeInput struct {
	Option    int    `json:"option" binding:"required,oneof=1 2 3 4 5"`
	Content   string `json:"content" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type CreateQuestionRequest struct {
	Statement    string             `json:"statement" binding:"required"`
	Alternatives []AlternativeInput `json:"alternatives" binding:"required,min=2,dive"`
}

func (s *QuestionService) CreateQuestion(req CreateQuestionRequest) (*model.Question, error) {
	options := make(map[int]bool, len(req.Alternatives))
	for _, alt := range req.Alternatives {
		if options[alt.Option] {
			return nil, &ValidationError{
				Field:   "alternatives",
				Message: fmt.Sprintf("duplicate option %d", alt.Option),
			}
		}
		options[alt.Option] = true
	}

	q := &model.Question{Statement: req.Statement}
	for _, alt := range req.Alternatives {
		q.Alternatives = append(q.Alternatives, model.Alternative{
			Option:    alt.Option,
			Content:   alt.Content,
			IsCorrect: alt.IsCorrect,
		})
	}

	if err := s.Repo.CreateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) GetQuestion(id uint) (*model.Question, error) {
	q, err := s.Repo.FindQuestionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	return q, err
}

func (s *QuestionService) ListQuestions(page, limit int) ([]model.Question, int64, error) {
	return s.Repo.ListQuestions(page, limit)
}
