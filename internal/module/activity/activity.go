package activity

import (
	"strconv"
	"strings"
	"time"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/global/sentry/tracing"
	"school-activities-system/internal/model"
	"school-activities-system/internal/module/activity/viewfilter"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityView 活动列表项，容量与分类字段由展示层逻辑实时派生
type activityView struct {
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	Schedule        string                  `json:"schedule"`
	Days            []string                `json:"days"`
	StartTime       string                  `json:"start_time,omitempty"`
	EndTime         string                  `json:"end_time,omitempty"`
	MaxParticipants int                     `json:"max_participants"`
	Participants    []string                `json:"participants"`
	Category        string                  `json:"category"`
	Availability    viewfilter.Availability `json:"availability"`
}

func buildView(row *model.Activity) activityView {
	participants := make([]string, 0, len(row.Registrations))
	for _, reg := range row.Registrations {
		participants = append(participants, reg.Email)
	}

	category := row.Category
	if category == "" {
		// 老数据没有落库分类，回退到关键字推断
		category = viewfilter.Categorize(row.Name, row.Description)
	}

	v := activityView{
		Name:            row.Name,
		Description:     row.Description,
		Schedule:        row.Schedule,
		Days:            row.DayList(),
		MaxParticipants: row.MaxParticipants,
		Participants:    participants,
		Category:        category,
		Availability:    viewfilter.Derive(len(participants), row.MaxParticipants),
	}
	if row.HasStructuredSchedule() {
		v.StartTime = formatClock(row.StartMinutes)
		v.EndTime = formatClock(row.EndMinutes)
	}
	return v
}

// List 活动列表
// day/start_time/end_time 只作用于有结构化时间表的活动，
// 没有结构化时间表的活动不参与筛选、始终返回
func (a *ModuleActivity) List(c *gin.Context) {
	day := strings.TrimSpace(c.Query("day"))

	reqStart, reqEnd := 0, minutesPerDay
	hasStart, hasEnd := false, false
	if s := c.Query("start_time"); s != "" {
		minutes, err := parseClock(s)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("Invalid start_time, expected HH:MM"))
			return
		}
		reqStart = minutes
		hasStart = true
	}
	if s := c.Query("end_time"); s != "" {
		minutes, err := parseClock(s)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("Invalid end_time, expected HH:MM"))
			return
		}
		reqEnd = minutes
		hasEnd = true
	}
	if reqStart >= reqEnd {
		// 单给 end_time=00:00 时窗口为空，此时没有 start_time 可指责
		if hasStart && hasEnd {
			response.Fail(c, response.ErrInvalidRequest.WithTips("start_time must be before end_time"))
		} else {
			response.Fail(c, response.ErrInvalidRequest.WithTips("Requested time window is empty"))
		}
		return
	}
	hasWindow := hasStart || hasEnd

	filter := viewfilter.Filter{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   c.Query("search"),
	}
	if s := c.Query("weekend"); s != "" {
		weekend, err := strconv.ParseBool(s)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("Invalid weekend, expected true or false"))
			return
		}
		filter.Weekend = &weekend
	}

	var rows []model.Activity
	err := database.DB.WithContext(tracing.ContextWithSpan(c)).
		Preload("Registrations", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	views := make([]activityView, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		if row.HasStructuredSchedule() {
			if day != "" && !containsDay(row.DayList(), day) {
				continue
			}
			if hasWindow && !overlaps(row.StartMinutes, row.EndMinutes, reqStart, reqEnd) {
				continue
			}
		}
		view := buildView(row)
		if !filter.Match(view.Name, view.Description, view.Schedule, view.Category, view.Days) {
			continue
		}
		views = append(views, view)
	}

	response.Success(c, views)
}

// weekdayOrder 星期排序，周一开头
var weekdayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if strings.EqualFold(d, day) {
			return true
		}
	}
	return false
}

// Days 返回结构化时间表中出现过的星期，按周一到周日排序
func (a *ModuleActivity) Days(c *gin.Context) {
	var rows []model.Activity
	if err := database.DB.Find(&rows).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	present := make(map[string]bool)
	for i := range rows {
		for _, day := range rows[i].DayList() {
			present[day] = true
		}
	}

	days := make([]string, 0, len(present))
	for _, day := range weekdayOrder {
		if present[day] {
			days = append(days, day)
		}
	}
	response.Success(c, days)
}

// Signup 报名
// 占座是一条带容量条件的插入，两个并发报名不会同时拿到最后一个名额
func (a *ModuleActivity) Signup(c *gin.Context) {
	name := c.Param("name")
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Email is required"))
		return
	}

	activity, ok := findActivity(c, name)
	if !ok {
		return
	}

	// 预检查给出友好提示，真正的唯一性由联合唯一索引兜底
	var enrolled int64
	err := database.DB.Model(&model.Registration{}).
		Where("activity_id = ? AND email = ?", activity.ID, email).
		Count(&enrolled).Error
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if enrolled > 0 {
		response.Fail(c, response.ErrConflict.WithTips("Already signed up for this activity"))
		return
	}

	now := time.Now()
	result := database.DB.Exec(
		`INSERT INTO registration (created_at, updated_at, activity_id, email)
		 SELECT ?, ?, ?, ? FROM (SELECT 1) AS seat
		 WHERE (SELECT COUNT(*) FROM registration
		        WHERE activity_id = ? AND deleted_at IS NULL) < ?`,
		now, now, activity.ID, email, activity.ID, activity.MaxParticipants,
	)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			response.Fail(c, response.ErrConflict.WithTips("Already signed up for this activity"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrConflict.WithTips("Activity is full"))
		return
	}

	// 首次报名的学生顺带建档，失败不影响报名结果
	student := model.Student{Email: email}
	if err := database.DB.Where(model.Student{Email: email}).FirstOrCreate(&student).Error; err != nil {
		log.Warn("学生建档失败", "email", email, "error", err)
	}

	log.Info("报名成功", "activity", activity.Name, "email", email)
	response.Success(c, gin.H{
		"message": "Signed up " + email + " for " + activity.Name,
	})
}

// Unregister 取消报名，报名记录直接物理删除
func (a *ModuleActivity) Unregister(c *gin.Context) {
	name := c.Param("name")
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Email is required"))
		return
	}

	activity, ok := findActivity(c, name)
	if !ok {
		return
	}

	result := database.DB.Unscoped().
		Where("activity_id = ? AND email = ?", activity.ID, email).
		Delete(&model.Registration{})
	if result.Error != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrConflict.WithTips("Not signed up for this activity"))
		return
	}

	log.Info("取消报名", "activity", activity.Name, "email", email)
	response.Success(c, gin.H{
		"message": "Unregistered " + email + " from " + activity.Name,
	})
}

// findActivity 按名称查活动，未找到时直接写入 404 响应
func findActivity(c *gin.Context, name string) (*model.Activity, bool) {
	var activity model.Activity
	err := database.DB.Where("name = ?", name).First(&activity).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("Activity not found"))
		return nil, false
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return nil, false
	}
	return &activity, true
}

// isDuplicateErr 识别唯一索引冲突，MySQL 报 Duplicate entry，sqlite 报 UNIQUE constraint failed
func isDuplicateErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}
