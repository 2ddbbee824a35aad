package repository

import (
	"exam_platform_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// CreateSubmission persists the header and all answer rows in one
// transaction. If any insert fails, including a (submission, exam_question)
// uniqueness violation, nothing is kept.
func (r *SubmissionRepository) CreateSubmission(submission *model.ExamSubmission, answers []model.ExamSubmissionAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].SubmissionID = submission.ID
		}
		return tx.Create(&answers).Error
	})
}

func (r *SubmissionRepository) FindSubmissionByID(id uint) (*model.ExamSubmission, error) {
	var submission model.ExamSubmission
	err := r.submissionQuery().First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// ListSubmissions applies the optional filters conjunctively and returns
// newest-first, id as the stable tie-break.
func (r *SubmissionRepository) ListSubmissions(examID, studentID *uint) ([]model.ExamSubmission, error) {
	query := r.submissionQuery()
	if examID != nil {
		query = query.Where("exam_id = ?", *examID)
	}
	if studentID != nil {
		query = query.Where("student_id = ?", *studentID)
	}

	var submissions []model.ExamSubmission
	err := query.Order("created_at desc, id desc").Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) submissionQuery() *gorm.DB {
	return r.DB.
		Preload("Exam").
		Preload("Student").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("Answers.ExamQuestion")
}
