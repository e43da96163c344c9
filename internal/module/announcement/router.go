package announcement

import (
	"school-activities-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (a *ModuleAnnouncement) InitRouter(r *gin.RouterGroup) {
	announcements := r.Group("/announcements")
	{
		announcements.GET("", a.ListActive)
		announcements.GET("/manage", middleware.StaffAuth(), a.ListAll)
		announcements.POST("", middleware.StaffAuth(), a.Create)
		announcements.PUT("/:id", middleware.StaffAuth(), a.Update)
		announcements.DELETE("/:id", middleware.StaffAuth(), a.Delete)
	}
}
