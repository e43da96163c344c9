package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Announcement 横幅公告
// 过期的公告只从公开列表中过滤，不做删除
type Announcement struct {
	ID        string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Message   string     `gorm:"type:varchar(500);not null" json:"message"`
	StartsAt  *time.Time `json:"starts_at"`                    // 可选的生效时间，必须早于过期时间
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`   // 过期时间
	CreatedBy string     `gorm:"type:varchar(50)" json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ActiveAt 公告在给定时刻是否处于公开展示窗口内
func (a *Announcement) ActiveAt(now time.Time) bool {
	if !a.ExpiresAt.After(now) {
		return false
	}
	if a.StartsAt != nil && a.StartsAt.After(now) {
		return false
	}
	return true
}
