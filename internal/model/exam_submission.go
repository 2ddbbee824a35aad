package model

// ExamSubmission is one complete attempt by a student. The header and all its
// answer rows are created in a single transaction and never mutated afterward.
// A student may submit the same exam more than once.
type ExamSubmission struct {
	BaseModel
	ExamID    uint                   `gorm:"index;type:bigint unsigned" json:"examId"`
	StudentID uint                   `gorm:"index;type:bigint unsigned" json:"studentId"`
	Exam      *Exam                  `gorm:"foreignKey:ExamID" json:"exam,omitempty"`
	Student   *Student               `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Answers   []ExamSubmissionAnswer `gorm:"foreignKey:SubmissionID" json:"answers,omitempty"`
}

func (ExamSubmission) TableName() string {
	return "exam_submissions"
}
