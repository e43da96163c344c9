package announcement

import (
	"log/slog"

	"school-activities-system/internal/global/logger"
)

type ModuleAnnouncement struct{}

var log *slog.Logger

func (a *ModuleAnnouncement) GetName() string {
	return "Announcement"
}

func (a *ModuleAnnouncement) Init() {
	log = logger.New("Announcement")
}
