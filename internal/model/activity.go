package model

import "strings"

// Activity 课外活动，名称即业务主键
type Activity struct {
	Model
	Name            string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description     string `gorm:"type:varchar(500)" json:"description"`
	Schedule        string `gorm:"type:varchar(255)" json:"schedule"`  // 展示用的时间描述
	Days            string `gorm:"type:varchar(120)" json:"-"`         // 逗号分隔的星期名，空表示无结构化时间表
	StartMinutes    int    `gorm:"default:0" json:"-"`                 // 开始时间，自午夜起的分钟数
	EndMinutes      int    `gorm:"default:0" json:"-"`                 // 结束时间，自午夜起的分钟数
	MaxParticipants int    `gorm:"not null" json:"max_participants"`   // 人数上限
	Category        string `gorm:"type:varchar(20)" json:"category"`   // 创建时指定的分类，空则由关键词推断
	Registrations   []Registration `gorm:"foreignKey:ActivityID" json:"-"`
}

// HasStructuredSchedule 是否有结构化时间表，没有的活动不参与时间过滤
func (a *Activity) HasStructuredSchedule() bool {
	return a.Days != ""
}

// DayList 返回时间表覆盖的星期名列表
func (a *Activity) DayList() []string {
	if a.Days == "" {
		return nil
	}
	return strings.Split(a.Days, ",")
}
