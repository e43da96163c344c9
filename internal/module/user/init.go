package user

import (
	"log/slog"

	"school-activities-system/internal/global/logger"
)

type ModuleUser struct{}

var log *slog.Logger

func (u *ModuleUser) GetName() string {
	return "User"
}

func (u *ModuleUser) Init() {
	log = logger.New("User")
}
