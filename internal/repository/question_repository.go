package repository

import (
	"exam_platform_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) CreateQuestion(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindQuestionByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.
		Preload("Alternatives", func(db *gorm.DB) *gorm.DB {
			return db.Order("`option` asc")
		}).
		First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) QuestionExists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *QuestionRepository) ListQuestions(page, limit int) ([]model.Question, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Question{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var qs []model.Question
	offset := (page - 1) * limit
	err := r.DB.
		Preload("Alternatives", func(db *gorm.DB) *gorm.DB {
			return db.Order("`option` asc")
		}).
		Order("created_at desc").Offset(offset).Limit(limit).
		Find(&qs).Error
	return qs, total, err
}

// FindCorrectAlternatives loads the answer key for a set of questions in one
// query. Only (question_id, option) pairs flagged correct come back.
func (r *QuestionRepository) FindCorrectAlternatives(questionIDs []uint) ([]model.Alternative, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	var alts []model.Alternative
	err := r.DB.
		Select("question_id", "`option`").
		Where("question_id IN ? AND is_correct = ?", questionIDs, true).
		Find(&alts).Error
	return alts, err
}
