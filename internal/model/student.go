package model

// Student 学生档案，首次报名时隐式创建
type Student struct {
	Model
	Email       string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	DisplayName string `gorm:"type:varchar(100)" json:"display_name"`
	GradeLevel  int    `gorm:"default:0" json:"grade_level"`
}
