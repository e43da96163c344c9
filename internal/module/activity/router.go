package activity

import (
	"school-activities-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (a *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	activities := r.Group("/activities")
	{
		activities.GET("", a.List)
		activities.GET("/days", a.Days)
		activities.GET("/export", middleware.StaffAuth(), a.Export)
		activities.POST("/:name/signup", middleware.StaffAuth(), a.Signup)
		activities.POST("/:name/unregister", middleware.StaffAuth(), a.Unregister)
	}
}
