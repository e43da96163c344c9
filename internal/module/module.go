package module

import (
	"school-activities-system/internal/module/activity"
	"school-activities-system/internal/module/announcement"
	"school-activities-system/internal/module/ping"
	"school-activities-system/internal/module/user"

	"github.com/gin-gonic/gin"
)

// Module 业务模块接口，各模块在启动时依次初始化并挂载路由
type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules = []Module{
	&ping.ModulePing{},
	&user.ModuleUser{},
	&activity.ModuleActivity{},
	&announcement.ModuleAnnouncement{},
}
