package database

import (
	"school-activities-system/internal/model"

	"gorm.io/gorm"
)

// Seed 在空库上写入初始的活动目录和教职工账号
// 任一表已有数据时跳过对应部分，不覆盖线上修改
func Seed(db *gorm.DB) error {
	var teacherCount int64
	if err := db.Model(&model.Teacher{}).Count(&teacherCount).Error; err != nil {
		return err
	}
	if teacherCount == 0 {
		teachers := seedTeachers()
		if err := db.Create(&teachers).Error; err != nil {
			return err
		}
	}

	var activityCount int64
	if err := db.Model(&model.Activity{}).Count(&activityCount).Error; err != nil {
		return err
	}
	if activityCount == 0 {
		activities := seedActivities()
		if err := db.Create(&activities).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedTeachers() []model.Teacher {
	return []model.Teacher{
		{Username: "mrodriguez", DisplayName: "Ms. Rodriguez", Password: "art123", Role: "teacher"},
		{Username: "mchen", DisplayName: "Mr. Chen", Password: "chess456", Role: "teacher"},
		{Username: "principal", DisplayName: "Principal Martinez", Password: "admin789", Role: "admin"},
	}
}

func seedActivities() []model.Activity {
	return []model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Mondays and Fridays, 3:15 PM - 4:45 PM",
			Days:            "Monday,Friday",
			StartMinutes:    15*60 + 15,
			EndMinutes:      16*60 + 45,
			MaxParticipants: 12,
			Category:        "academic",
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 7:00 AM - 8:00 AM",
			Days:            "Tuesday,Thursday",
			StartMinutes:    7 * 60,
			EndMinutes:      8 * 60,
			MaxParticipants: 20,
			Category:        "technology",
		},
		{
			Name:            "Morning Fitness",
			Description:     "Early morning physical training and fitness exercises",
			Schedule:        "Mondays, Wednesdays, Fridays, 6:30 AM - 7:45 AM",
			Days:            "Monday,Wednesday,Friday",
			StartMinutes:    6*60 + 30,
			EndMinutes:      7*60 + 45,
			MaxParticipants: 30,
			Category:        "sports",
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in local leagues",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			Days:            "Tuesday,Thursday",
			StartMinutes:    16 * 60,
			EndMinutes:      17*60 + 30,
			MaxParticipants: 22,
			Category:        "sports",
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice and compete in basketball tournaments",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			Days:            "Wednesday,Friday",
			StartMinutes:    15*60 + 30,
			EndMinutes:      17 * 60,
			MaxParticipants: 15,
			Category:        "sports",
		},
		{
			Name:            "Art Club",
			Description:     "Explore various art techniques and create masterpieces",
			Schedule:        "Thursdays, 3:15 PM - 5:00 PM",
			Days:            "Thursday",
			StartMinutes:    15*60 + 15,
			EndMinutes:      17 * 60,
			MaxParticipants: 15,
			Category:        "arts",
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:30 PM",
			Days:            "Monday,Wednesday",
			StartMinutes:    15*60 + 30,
			EndMinutes:      17*60 + 30,
			MaxParticipants: 20,
			Category:        "arts",
		},
		{
			Name:            "Math Club",
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 7:15 AM - 8:00 AM",
			Days:            "Tuesday",
			StartMinutes:    7*60 + 15,
			EndMinutes:      8 * 60,
			MaxParticipants: 10,
			Category:        "academic",
		},
		{
			Name:            "Debate Team",
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 3:30 PM - 5:30 PM",
			Days:            "Friday",
			StartMinutes:    15*60 + 30,
			EndMinutes:      17*60 + 30,
			MaxParticipants: 12,
			Category:        "academic",
		},
		{
			Name:            "Weekend Robotics Workshop",
			Description:     "Build and program robots in our state-of-the-art workshop",
			Schedule:        "Saturdays, 10:00 AM - 2:00 PM",
			Days:            "Saturday",
			StartMinutes:    10 * 60,
			EndMinutes:      14 * 60,
			MaxParticipants: 12,
			Category:        "technology",
		},
		{
			Name:            "Science Olympiad",
			Description:     "Weekend science competition preparation for regional and state events",
			Schedule:        "Saturdays, 1:00 PM - 4:00 PM",
			Days:            "Saturday",
			StartMinutes:    13 * 60,
			EndMinutes:      16 * 60,
			MaxParticipants: 18,
			Category:        "academic",
		},
		{
			Name:            "Sunday Chess Tournament",
			Description:     "Weekly tournament for serious chess players with rankings",
			Schedule:        "Sundays, 2:00 PM - 5:00 PM",
			Days:            "Sunday",
			StartMinutes:    14 * 60,
			EndMinutes:      17 * 60,
			MaxParticipants: 16,
			Category:        "academic",
		},
		{
			Name:            "Community Service Club",
			Description:     "Organize volunteer projects and outreach events around town",
			Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
			Days:            "Wednesday",
			StartMinutes:    15*60 + 30,
			EndMinutes:      16*60 + 30,
			MaxParticipants: 25,
			Category:        "community",
		},
	}
}
