package user

import (
	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", u.Login)
		auth.GET("/check-session", u.CheckSession)
	}
}
