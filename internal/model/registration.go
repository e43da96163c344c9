package model

// Registration 报名记录，一行对应一个学生在一个活动中的名额
// (activity_id, email) 唯一索引兜底防止重复报名，插入顺序即报名顺序
type Registration struct {
	Model
	ActivityID uint   `gorm:"uniqueIndex:idx_registration_activity_email;not null" json:"activity_id"`
	Email      string `gorm:"type:varchar(120);uniqueIndex:idx_registration_activity_email;not null" json:"email"`
}
