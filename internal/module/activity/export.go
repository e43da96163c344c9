package activity

import (
	"os"
	"path/filepath"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/identity"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"
	"school-activities-system/internal/module/activity/viewfilter"
	"school-activities-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// rosterRow 导出表格的一行，列名取自 excel 标签
type rosterRow struct {
	Activity        string `excel:"Activity"`
	Category        string `excel:"Category"`
	Schedule        string `excel:"Schedule"`
	StudentEmail    string `excel:"Student Email"`
	MaxParticipants int    `excel:"Max Participants"`
	Enrolled        int    `excel:"Enrolled"`
}

// Export 导出全部活动的报名名册，xlsx 格式
func (a *ModuleActivity) Export(c *gin.Context) {
	var activities []model.Activity
	err := database.DB.
		Preload("Registrations", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("name ASC").
		Find(&activities).Error
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]rosterRow, 0, len(activities))
	for i := range activities {
		activity := &activities[i]
		category := activity.Category
		if category == "" {
			category = viewfilter.Categorize(activity.Name, activity.Description)
		}
		base := rosterRow{
			Activity:        activity.Name,
			Category:        category,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Enrolled:        len(activity.Registrations),
		}
		if len(activity.Registrations) == 0 {
			// 无人报名的活动也要出现在名册里
			rows = append(rows, base)
			continue
		}
		for _, reg := range activity.Registrations {
			row := base
			row.StudentEmail = reg.Email
			rows = append(rows, row)
		}
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := tools.ExportToExcel(f, "Roster", rows); err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	path := filepath.Join(os.TempDir(), "roster-"+uuid.NewString()+".xlsx")
	if err := f.SaveAs(path); err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	defer os.Remove(path)

	if staff, ok := identity.GetStaff(c); ok {
		log.Info("导出报名名册", "by", staff.Username, "rows", len(rows))
	}
	tools.SendStoredFile(c, path, "activity-roster.xlsx", tools.ExcelContentType)
}
