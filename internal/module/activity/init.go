package activity

import (
	"log/slog"

	"school-activities-system/internal/global/logger"
)

type ModuleActivity struct{}

var log *slog.Logger

func (a *ModuleActivity) GetName() string {
	return "Activity"
}

func (a *ModuleActivity) Init() {
	log = logger.New("Activity")
}
