package model

// swagger:model Student
type Student struct {
	BaseModel
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
}

func (Student) TableName() string {
	return "students"
}
