package model

// swagger:model Exam
type Exam struct {
	BaseModel
	Name      string         `gorm:"size:100;not null" json:"name"`
	Questions []ExamQuestion `gorm:"foreignKey:ExamID" json:"questions,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}
