package announcement

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/identity"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const maxMessageLength = 500

// 无时区后缀时接受的格式，datetime-local 控件省略秒，日期选择器只给年月日
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTimestamp 解析时间参数
// 优先 RFC3339（带时区或 Z 后缀），其次无时区格式按 UTC 处理
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析时间: %q", s)
}

// announcementInput 创建与更新共用的参数校验
type announcementInput struct {
	Message   string
	StartsAt  *time.Time
	ExpiresAt time.Time
}

func parseInput(c *gin.Context) (*announcementInput, *response.Error) {
	message := strings.TrimSpace(c.Query("message"))
	if message == "" {
		return nil, response.ErrInvalidRequest.WithTips("Message is required")
	}
	if len(message) > maxMessageLength {
		return nil, response.ErrInvalidRequest.WithTips("Message must be 500 characters or less")
	}

	expiresRaw := strings.TrimSpace(c.Query("expires_at"))
	if expiresRaw == "" {
		return nil, response.ErrInvalidRequest.WithTips("Expiration date is required")
	}
	expiresAt, err := parseTimestamp(expiresRaw)
	if err != nil {
		return nil, response.ErrInvalidRequest.WithTips("Invalid expiration date format")
	}

	input := &announcementInput{
		Message:   message,
		ExpiresAt: expiresAt,
	}

	if startsRaw := strings.TrimSpace(c.Query("starts_at")); startsRaw != "" {
		startsAt, err := parseTimestamp(startsRaw)
		if err != nil {
			return nil, response.ErrInvalidRequest.WithTips("Invalid start date format")
		}
		if !startsAt.Before(expiresAt) {
			return nil, response.ErrInvalidRequest.WithTips("Start date must be before expiration date")
		}
		input.StartsAt = &startsAt
	}
	return input, nil
}

// ListActive 公开列表：未过期且已生效（或未设置生效时间），按过期时间升序
func (a *ModuleAnnouncement) ListActive(c *gin.Context) {
	rows, err := loadAll(c.Request.Context())
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	now := time.Now()
	active := make([]model.Announcement, 0, len(rows))
	for i := range rows {
		if rows[i].ActiveAt(now) {
			active = append(active, rows[i])
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].ExpiresAt.Before(active[j].ExpiresAt)
	})

	response.Success(c, active)
}

// ListAll 管理列表：全部公告，按创建时间倒序
func (a *ModuleAnnouncement) ListAll(c *gin.Context) {
	rows, err := loadAll(c.Request.Context())
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, rows)
}

func (a *ModuleAnnouncement) Create(c *gin.Context) {
	input, inputErr := parseInput(c)
	if inputErr != nil {
		response.Fail(c, inputErr)
		return
	}

	row := model.Announcement{
		Message:   input.Message,
		StartsAt:  input.StartsAt,
		ExpiresAt: input.ExpiresAt,
	}
	if staff, ok := identity.GetStaff(c); ok {
		row.CreatedBy = staff.Username
	}

	if err := database.DB.Create(&row).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	invalidate(c.Request.Context())

	log.Info("公告已创建", "id", row.ID, "by", row.CreatedBy)
	response.Success(c, row)
}

func (a *ModuleAnnouncement) Update(c *gin.Context) {
	input, inputErr := parseInput(c)
	if inputErr != nil {
		response.Fail(c, inputErr)
		return
	}

	id := c.Param("id")
	var row model.Announcement
	err := database.DB.Where("id = ?", id).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("Announcement not found"))
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	row.Message = input.Message
	row.StartsAt = input.StartsAt
	row.ExpiresAt = input.ExpiresAt
	if err := database.DB.Save(&row).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	invalidate(c.Request.Context())

	log.Info("公告已更新", "id", row.ID)
	response.Success(c, row)
}

func (a *ModuleAnnouncement) Delete(c *gin.Context) {
	id := c.Param("id")
	result := database.DB.Where("id = ?", id).Delete(&model.Announcement{})
	if result.Error != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound.WithTips("Announcement not found"))
		return
	}
	invalidate(c.Request.Context())

	log.Info("公告已删除", "id", id)
	response.Success(c, gin.H{"message": "Announcement deleted"})
}
