package model

// swagger:model Question
type Question struct {
	BaseModel
	Statement    string        `gorm:"type:text;not null" json:"statement"`
	Alternatives []Alternative `gorm:"foreignKey:QuestionID" json:"alternatives,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
