package service

import (
	"context"
	"errors"
	"fmt"

	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/util"

	"gorm.io/gorm"
)

type ExamService struct {
	ExamRepo     *repository.ExamRepository
	QuestionRepo *repository.QuestionRepository
	SchemaCache  *ExamSchemaCache
}

func NewExamService(examRepo *repository.ExamRepository, questionRepo *repository.QuestionRepository, schemaCache *ExamSchemaCache) *ExamService {
	return &ExamService{ExamRepo: examRepo, QuestionRepo: questionRepo, SchemaCache: schemaCache}
}

// ExamQuestionBinding attaches an existing question to a numbered exam slot.
type ExamQuestionBinding struct {
	QuestionID uint `json:"questionId" binding:"required,min=1"`
	Number     uint `json:"number" binding:"required,min=1"`
}

type CreateExamRequest struct {
	Name      string                `json:"name" binding:"required"`
	Questions []ExamQuestionBinding `json:"questions" binding:"omitempty,dive"`
}

func (s *ExamService) CreateExam(req CreateExamRequest) (*model.Exam, error) {
	if verr := s.checkBindings(req.Questions); verr != nil {
		return nil, verr
	}

	exam := &model.Exam{Name: req.Name}
	for _, b := range req.Questions {
		exam.Questions = append(exam.Questions, model.ExamQuestion{
			QuestionID: b.QuestionID,
			Number:     b.Number,
		})
	}

	// gorm persists the exam and its slots in one transaction.
	if err := s.ExamRepo.CreateExam(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) GetExam(id uint) (*model.Exam, error) {
	exam, err := s.ExamRepo.FindExamWithQuestions(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrExamNotFound
	}
	return exam, err
}

func (s *ExamService) ListExams(page, limit int) ([]model.Exam, int64, error) {
	return s.ExamRepo.ListExams(page, limit)
}

// AttachQuestion adds one question to an exam at a free slot number and
// drops the cached schema for that exam.
func (s *ExamService) AttachQuestion(ctx context.Context, examID uint, req ExamQuestionBinding) (*model.ExamQuestion, error) {
	exists, err := s.ExamRepo.ExamExists(examID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrExamNotFound
	}

	exists, err = s.QuestionRepo.QuestionExists(req.QuestionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrQuestionNotFound
	}

	taken, err := s.ExamRepo.SlotNumberTaken(examID, req.Number)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrSlotNumberTaken
	}

	eq := &model.ExamQuestion{
		ExamID:     examID,
		QuestionID: req.QuestionID,
		Number:     req.Number,
	}
	if err := s.ExamRepo.CreateExamQuestion(eq); err != nil {
		return nil, err
	}

	s.SchemaCache.Invalidate(ctx, examID)
	return eq, nil
}

// checkBindings rejects duplicate slot numbers or questions within one
// request and slots pointing at questions that do not exist.
func (s *ExamService) checkBindings(bindings []ExamQuestionBinding) *ValidationError {
	numbers := make(map[uint]bool, len(bindings))
	questions := make(map[uint]bool, len(bindings))
	var unknown []uint

	for _, b := range bindings {
		if numbers[b.Number] {
			return &ValidationError{Field: "questions", Message: fmt.Sprintf("duplicate slot number %d", b.Number)}
		}
		numbers[b.Number] = true

		if questions[b.QuestionID] {
			return &ValidationError{Field: "questions", Message: fmt.Sprintf("duplicate questionId %d", b.QuestionID)}
		}
		questions[b.QuestionID] = true

		exists, err := s.QuestionRepo.QuestionExists(b.QuestionID)
		if err == nil && !exists {
			unknown = append(unknown, b.QuestionID)
		}
	}

	if len(unknown) > 0 {
		sortIDs(unknown)
		return &ValidationError{Field: "questions", Message: fmt.Sprintf("unknown questionId: %v", unknown)}
	}
	return nil
}
