package model

// ExamQuestion binds a question-bank Question to a numbered slot within one
// exam. Answers always reference the slot, not the question itself, so the
// same question can be reused across exams.
type ExamQuestion struct {
	BaseModel
	ExamID     uint      `gorm:"index;uniqueIndex:idx_exam_question_number;type:bigint unsigned" json:"examId"`
	QuestionID uint      `gorm:"index;type:bigint unsigned" json:"questionId"`
	Number     uint      `gorm:"uniqueIndex:idx_exam_question_number;not null" json:"number"`
	Question   *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

func (ExamQuestion) TableName() string {
	return "exam_questions"
}
