package model

// ExamSubmissionAnswer stores the chosen option for one exam slot. The unique
// index on (submission_id, exam_question_id) is the store-level safety net
// behind the application-side duplicate check. Correctness is never stored; it
// is derived on read against the alternatives table.
type ExamSubmissionAnswer struct {
	BaseModel
	SubmissionID   uint          `gorm:"index;uniqueIndex:idx_submission_slot;type:bigint unsigned" json:"submissionId"`
	ExamQuestionID uint          `gorm:"index;uniqueIndex:idx_submission_slot;type:bigint unsigned" json:"examQuestionId"`
	Answer         int           `gorm:"not null" json:"answer"`
	ExamQuestion   *ExamQuestion `gorm:"foreignKey:ExamQuestionID" json:"examQuestion,omitempty"`
}

func (ExamSubmissionAnswer) TableName() string {
	return "exam_submission_answers"
}
