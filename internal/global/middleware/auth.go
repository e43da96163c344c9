package middleware

import (
	"strings"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/identity"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// StaffAuth 校验请求携带的 teacher_username 是否对应一个教职工账号
// 没有会话令牌，身份参数由客户端自报，这里只做存在性检查
func StaffAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.Query("teacher_username"))
		if username == "" {
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		}

		var teacher model.Teacher
		err := database.DB.Where("username = ?", username).First(&teacher).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		case err != nil:
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			c.Abort()
			return
		}

		identity.SetStaff(c, &teacher)
		c.Next()
	}
}
