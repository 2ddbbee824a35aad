package service

import (
	"context"
	"errors"

	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/util"
)

type SubmissionService struct {
	ExamRepo       *repository.ExamRepository
	StudentRepo    *repository.StudentRepository
	QuestionRepo   *repository.QuestionRepository
	SubmissionRepo *repository.SubmissionRepository
	SchemaCache    *ExamSchemaCache
}

func NewSubmissionService(
	examRepo *repository.ExamRepository,
	studentRepo *repository.StudentRepository,
	questionRepo *repository.QuestionRepository,
	submissionRepo *repository.SubmissionRepository,
	schemaCache *ExamSchemaCache,
) *SubmissionService {
	return &SubmissionService{
		ExamRepo:       examRepo,
		StudentRepo:    studentRepo,
		QuestionRepo:   questionRepo,
		SubmissionRepo: submissionRepo,
		SchemaCache:    schemaCache,
	}
}

type SubmitExamRequest struct {
	ExamID    uint          `json:"examId" binding:"required,min=1"`
	StudentID uint          `json:"studentId" binding:"required,min=1"`
	Answers   []AnswerInput `json:"answers" binding:"required,min=1,dive"`
}

// SubmissionFilter narrows a fetch; nil fields mean no filter.
type SubmissionFilter struct {
	ExamID    *uint
	StudentID *uint
}

// SubmitExam validates the batch, persists it atomically and returns the
// freshly graded submission. Nothing is written unless every check passes.
func (s *SubmissionService) SubmitExam(ctx context.Context, req SubmitExamRequest) (*SubmissionView, error) {
	exists, err := s.ExamRepo.ExamExists(req.ExamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrExamNotFound
	}

	exists, err = s.StudentRepo.StudentExists(req.StudentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrStudentNotFound
	}

	slots, err := s.examQuestions(ctx, req.ExamID)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, util.ErrExamHasNoQuestions
	}

	slotIDByQuestion, verr := validateAnswerBatch(req.ExamID, slots, req.Answers)
	if verr != nil {
		return nil, verr
	}

	submission := &model.ExamSubmission{
		ExamID:    req.ExamID,
		StudentID: req.StudentID,
	}
	answers := make([]model.ExamSubmissionAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, model.ExamSubmissionAnswer{
			ExamQuestionID: slotIDByQuestion[a.QuestionID],
			Answer:         a.Answer,
		})
	}

	if err := s.SubmissionRepo.CreateSubmission(submission, answers); err != nil {
		return nil, err
	}

	persisted, err := s.SubmissionRepo.FindSubmissionByID(submission.ID)
	if err != nil {
		return nil, err
	}

	views, err := s.decorateSubmissions([]model.ExamSubmission{*persisted})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// ListSubmissions returns graded submissions newest-first, optionally
// filtered by exam and/or student.
func (s *SubmissionService) ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]SubmissionView, error) {
	if filter.StudentID != nil {
		exists, err := s.StudentRepo.StudentExists(*filter.StudentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, util.ErrStudentNotFound
		}
	}

	submissions, err := s.SubmissionRepo.ListSubmissions(filter.ExamID, filter.StudentID)
	if err != nil {
		return nil, err
	}

	return s.decorateSubmissions(submissions)
}

// decorateSubmissions grades a batch with a bounded number of queries: one
// slot count grouped by exam and one bulk answer-key load, regardless of how
// many submissions or answers are in the batch.
func (s *SubmissionService) decorateSubmissions(submissions []model.ExamSubmission) ([]SubmissionView, error) {
	views := make([]SubmissionView, 0, len(submissions))
	if len(submissions) == 0 {
		return views, nil
	}

	examIDSet := make(map[uint]bool)
	questionIDSet := make(map[uint]bool)
	for _, sub := range submissions {
		examIDSet[sub.ExamID] = true
		for _, a := range sub.Answers {
			if a.ExamQuestion != nil {
				questionIDSet[a.ExamQuestion.QuestionID] = true
			}
		}
	}

	examIDs := make([]uint, 0, len(examIDSet))
	for id := range examIDSet {
		examIDs = append(examIDs, id)
	}
	counts, err := s.ExamRepo.CountExamQuestionsByExams(examIDs)
	if err != nil {
		return nil, err
	}

	questionIDs := make([]uint, 0, len(questionIDSet))
	for id := range questionIDSet {
		questionIDs = append(questionIDs, id)
	}
	alternatives, err := s.QuestionRepo.FindCorrectAlternatives(questionIDs)
	if err != nil {
		return nil, err
	}
	correct := buildAnswerKeySet(alternatives)

	for i := range submissions {
		views = append(views, gradeSubmission(&submissions[i], int(counts[submissions[i].ExamID]), correct))
	}
	return views, nil
}

// examQuestions reads the exam's slots through the schema cache.
func (s *SubmissionService) examQuestions(ctx context.Context, examID uint) ([]model.ExamQuestion, error) {
	if slots, ok := s.SchemaCache.Get(ctx, examID); ok {
		return slots, nil
	}

	slots, err := s.ExamRepo.ListExamQuestions(examID)
	if err != nil {
		return nil, err
	}
	if len(slots) > 0 {
		s.SchemaCache.Put(ctx, examID, slots)
	}
	return slots, nil
}

// IsValidationError reports whether err is a field-scoped rejection rather
// than an infrastructure failure.
func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
