package repository

import (
	"exam_platform_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) CreateExam(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

func (r *ExamRepository) FindExamByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExamRepository) FindExamWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("number asc")
		}).
		Preload("Questions.Question").
		First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExamRepository) ExamExists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Exam{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ExamRepository) ListExams(page, limit int) ([]model.Exam, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Exam{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exams []model.Exam
	offset := (page - 1) * limit
	err := r.DB.Order("created_at desc").Offset(offset).Limit(limit).Find(&exams).Error
	return exams, total, err
}

// ListExamQuestions returns the exam's question slots in number order.
func (r *ExamRepository) ListExamQuestions(examID uint) ([]model.ExamQuestion, error) {
	var qs []model.ExamQuestion
	err := r.DB.Where("exam_id = ?", examID).Order("number asc").Find(&qs).Error
	return qs, err
}

// CountExamQuestionsByExams counts slots for many exams in one query.
func (r *ExamRepository) CountExamQuestionsByExams(examIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(examIDs))
	if len(examIDs) == 0 {
		return counts, nil
	}

	type row struct {
		ExamID uint
		Total  int64
	}
	var rows []row
	err := r.DB.Model(&model.ExamQuestion{}).
		Select("exam_id, COUNT(*) as total").
		Where("exam_id IN ?", examIDs).
		Group("exam_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ExamID] = row.Total
	}
	return counts, nil
}

func (r *ExamRepository) CreateExamQuestion(eq *model.ExamQuestion) error {
	return r.DB.Create(eq).Error
}

func (r *ExamRepository) SlotNumberTaken(examID, number uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ExamQuestion{}).
		Where("exam_id = ? AND number = ?", examID, number).
		Count(&count).Error
	return count > 0, err
}
