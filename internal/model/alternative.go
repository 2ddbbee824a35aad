package model

// Valid answer option codes. Every alternative of a question carries one of
// these, and submitted answers must use the same enumeration.
const (
	OptionA = 1
	OptionB = 2
	OptionC = 3
	OptionD = 4
	OptionE = 5
)

func IsValidOption(option int) bool {
	return option >= OptionA && option <= OptionE
}

// swagger:model Alternative
type Alternative struct {
	BaseModel
	QuestionID uint   `gorm:"index;uniqueIndex:idx_question_option;type:bigint unsigned" json:"questionId"`
	Option     int    `gorm:"uniqueIndex:idx_question_option;not null" json:"option"`
	Content    string `gorm:"type:text" json:"content"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"isCorrect"`
}

func (Alternative) TableName() string {
	return "alternatives"
}
