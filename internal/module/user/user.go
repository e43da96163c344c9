package user

import (
	"strings"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// staffProfile 登录成功后返回给前端的教职工信息，不含口令
type staffProfile struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Login 校验用户名与口令
// 用户不存在与口令错误返回同一个提示，避免暴露账号是否存在
func (u *ModuleUser) Login(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	password := c.Query("password")
	if username == "" || password == "" {
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	var teacher model.Teacher
	err := database.DB.Where("username = ?", username).First(&teacher).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrInvalidCredentials)
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if teacher.Password != password {
		log.Info("登录口令错误", "username", username, "client_ip", c.ClientIP())
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	response.Success(c, staffProfile{
		Username:    teacher.Username,
		DisplayName: teacher.DisplayName,
		Role:        teacher.Role,
	})
}

// CheckSession 按用户名查询教职工信息，供前端恢复页面状态
func (u *ModuleUser) CheckSession(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Username is required"))
		return
	}

	var teacher model.Teacher
	err := database.DB.Where("username = ?", username).First(&teacher).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("Teacher not found"))
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, staffProfile{
		Username:    teacher.Username,
		DisplayName: teacher.DisplayName,
		Role:        teacher.Role,
	})
}
