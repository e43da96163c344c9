package identity

import (
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
)

// ContextKey 是 StaffAuth 中间件写入教职工记录的键
const ContextKey = "staff"

func SetStaff(c *gin.Context, teacher *model.Teacher) {
	c.Set(ContextKey, teacher)
}

func GetStaff(c *gin.Context) (teacher *model.Teacher, exist bool) {
	value, _ := c.Get(ContextKey)
	teacher, exist = value.(*model.Teacher)
	return
}
