package model

// Teacher 教职工账号，用于报名管理和公告管理
// 密码按现状明文存储比对，是否引入哈希留待后续决定
type Teacher struct {
	Model
	Username    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	DisplayName string `gorm:"type:varchar(100);not null" json:"display_name"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"`
	Role        string `gorm:"type:varchar(20);default:teacher" json:"role"`
}
