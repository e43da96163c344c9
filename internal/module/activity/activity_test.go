package activity_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"
	"school-activities-system/internal/module/activity"
	"school-activities-system/test"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type availabilityView struct {
	SpotsLeft  int     `json:"spots_left"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

type listItem struct {
	Name            string           `json:"name"`
	Schedule        string           `json:"schedule"`
	Days            []string         `json:"days"`
	StartTime       string           `json:"start_time"`
	EndTime         string           `json:"end_time"`
	MaxParticipants int              `json:"max_participants"`
	Participants    []string         `json:"participants"`
	Category        string           `json:"category"`
	Availability    availabilityView `json:"availability"`
}

func seedStaff(t *testing.T, db *gorm.DB) {
	require.NoError(t, db.Create(&model.Teacher{
		Username:    "mrodriguez",
		DisplayName: "Ms. Rodriguez",
		Password:    "art123",
		Role:        "teacher",
	}).Error)
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	rows := []model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in tournaments",
			Schedule:        "Mondays and Fridays, 3:15 PM - 4:45 PM",
			Days:            "Monday,Friday",
			StartMinutes:    15*60 + 15,
			EndMinutes:      16*60 + 45,
			MaxParticipants: 12,
			Category:        "academic",
		},
		{
			Name:            "Weekend Robotics Workshop",
			Description:     "Build and program robots",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			Days:            "Saturday",
			StartMinutes:    10 * 60,
			EndMinutes:      12 * 60,
			MaxParticipants: 12,
			Category:        "technology",
		},
		{
			Name:            "Travel Chess Tournament",
			Description:     "Off-site tournament, schedule announced per event",
			Schedule:        "Dates vary",
			MaxParticipants: 8,
			Category:        "academic",
		},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func listWith(t *testing.T, r http.Handler, query string) []listItem {
	resp := test.DoRequest(t, r, http.MethodGet, "/api/activities"+query)
	test.NoError(t, resp)
	var items []listItem
	test.DecodeData(t, resp, &items)
	return items
}

func names(items []listItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestListFilters(t *testing.T) {
	db := test.SetupDB(t)
	seedCatalog(t, db)
	r := test.NewRouter(t, &activity.ModuleActivity{})

	// 无过滤条件返回全部，按名称排序
	items := listWith(t, r, "")
	require.Equal(t, []string{"Chess Club", "Travel Chess Tournament", "Weekend Robotics Workshop"}, names(items))

	// day 过滤只作用于有结构化时间表的活动，无时间表的活动直接通过
	items = listWith(t, r, "?day=Monday")
	require.Equal(t, []string{"Chess Club", "Travel Chess Tournament"}, names(items))

	items = listWith(t, r, "?day=saturday")
	require.Equal(t, []string{"Travel Chess Tournament", "Weekend Robotics Workshop"}, names(items))

	// 时间窗口按区间相交匹配：16:00 之后与 15:15-16:45 相交
	items = listWith(t, r, "?start_time=16:00")
	require.Equal(t, []string{"Chess Club", "Travel Chess Tournament"}, names(items))

	items = listWith(t, r, "?end_time=12:30")
	require.Equal(t, []string{"Travel Chess Tournament", "Weekend Robotics Workshop"}, names(items))

	items = listWith(t, r, "?day=Friday&start_time=15:00&end_time=17:00")
	require.Equal(t, []string{"Chess Club", "Travel Chess Tournament"}, names(items))

	// 展示层过滤
	items = listWith(t, r, "?weekend=true")
	require.Equal(t, []string{"Weekend Robotics Workshop"}, names(items))

	items = listWith(t, r, "?weekend=false")
	require.Equal(t, []string{"Chess Club", "Travel Chess Tournament"}, names(items))

	items = listWith(t, r, "?search=robot")
	require.Equal(t, []string{"Weekend Robotics Workshop"}, names(items))

	items = listWith(t, r, "?category=technology")
	require.Equal(t, []string{"Weekend Robotics Workshop"}, names(items))

	items = listWith(t, r, "?search=chess&category=academic")
	require.Equal(t, []string{"Chess Club", "Travel Chess Tournament"}, names(items))

	// 参数不合法
	resp := test.DoRequest(t, r, http.MethodGet, "/api/activities?start_time=25:00")
	test.ErrorEqual(t, response.ErrInvalidRequest.WithTips("Invalid start_time, expected HH:MM"), resp)

	resp = test.DoRequest(t, r, http.MethodGet, "/api/activities?start_time=16:00&end_time=15:00")
	test.ErrorEqual(t, response.ErrInvalidRequest.WithTips("start_time must be before end_time"), resp)

	// 只给 end_time=00:00 时窗口为空，提示不指责没传的参数
	resp = test.DoRequest(t, r, http.MethodGet, "/api/activities?end_time=00:00")
	test.ErrorEqual(t, response.ErrInvalidRequest.WithTips("Requested time window is empty"), resp)

	resp = test.DoRequest(t, r, http.MethodGet, "/api/activities?weekend=maybe")
	test.ErrorEqual(t, response.ErrInvalidRequest.WithTips("Invalid weekend, expected true or false"), resp)
}

func TestListAvailability(t *testing.T) {
	db := test.SetupDB(t)
	act := model.Activity{
		Name:            "Chess Club",
		Description:     "Learn strategies",
		Schedule:        "Mondays, 3:15 PM - 4:45 PM",
		Days:            "Monday",
		StartMinutes:    15*60 + 15,
		EndMinutes:      16*60 + 45,
		MaxParticipants: 10,
		Category:        "academic",
	}
	require.NoError(t, db.Create(&act).Error)
	for i := 0; i < 9; i++ {
		email := fmt.Sprintf("student%d@mergington.edu", i)
		require.NoError(t, db.Create(&model.Registration{ActivityID: act.ID, Email: email}).Error)
	}

	r := test.NewRouter(t, &activity.ModuleActivity{})
	items := listWith(t, r, "")
	require.Len(t, items, 1)

	item := items[0]
	require.Equal(t, 1, item.Availability.SpotsLeft)
	require.InDelta(t, 90.0, item.Availability.Percentage, 0.001)
	require.Equal(t, "near full", item.Availability.Status)
	require.Len(t, item.Participants, 9)
	require.Equal(t, "student0@mergington.edu", item.Participants[0])
	require.Equal(t, "15:15", item.StartTime)
	require.Equal(t, "16:45", item.EndTime)
}

func signupURL(name, email string) string {
	return "/api/activities/" + url.PathEscape(name) + "/signup?email=" + url.QueryEscape(email) + "&teacher_username=mrodriguez"
}

func unregisterURL(name, email string) string {
	return "/api/activities/" + url.PathEscape(name) + "/unregister?email=" + url.QueryEscape(email) + "&teacher_username=mrodriguez"
}

func TestSignupAndUnregister(t *testing.T) {
	db := test.SetupDB(t)
	seedStaff(t, db)
	require.NoError(t, db.Create(&model.Activity{
		Name:            "Art Club",
		Description:     "Painting and drawing",
		Schedule:        "Thursdays, 3:15 PM - 5:00 PM",
		Days:            "Thursday",
		StartMinutes:    15*60 + 15,
		EndMinutes:      17 * 60,
		MaxParticipants: 2,
		Category:        "arts",
	}).Error)
	r := test.NewRouter(t, &activity.ModuleActivity{})

	// 正常报名
	resp := test.DoRequest(t, r, http.MethodPost, signupURL("Art Club", "amy@mergington.edu"))
	test.NoError(t, resp)

	// 重复报名
	resp = test.DoRequest(t, r, http.MethodPost, signupURL("Art Club", "amy@mergington.edu"))
	test.ErrorEqual(t, response.ErrConflict.WithTips("Already signed up for this activity"), resp)

	// 占满最后一个名额
	resp = test.DoRequest(t, r, http.MethodPost, signupURL("Art Club", "ben@mergington.edu"))
	test.NoError(t, resp)

	// 满员后报名被拒
	resp = test.DoRequest(t, r, http.MethodPost, signupURL("Art Club", "cara@mergington.edu"))
	test.ErrorEqual(t, response.ErrConflict.WithTips("Activity is full"), resp)

	// 未报名的学生无法取消
	resp = test.DoRequest(t, r, http.MethodPost, unregisterURL("Art Club", "cara@mergington.edu"))
	test.ErrorEqual(t, response.ErrConflict.WithTips("Not signed up for this activity"), resp)

	// 取消报名后名额释放
	resp = test.DoRequest(t, r, http.MethodPost, unregisterURL("Art Club", "amy@mergington.edu"))
	test.NoError(t, resp)
	resp = test.DoRequest(t, r, http.MethodPost, signupURL("Art Club", "cara@mergington.edu"))
	test.NoError(t, resp)

	// 首次报名顺带建档
	var student model.Student
	require.NoError(t, db.Where("email = ?", "amy@mergington.edu").First(&student).Error)

	// 未知活动
	resp = test.DoRequest(t, r, http.MethodPost, signupURL("No Such Club", "amy@mergington.edu"))
	test.ErrorEqual(t, response.ErrNotFound.WithTips("Activity not found"), resp)

	// 缺少邮箱
	resp = test.DoRequest(t, r, http.MethodPost,
		"/api/activities/"+url.PathEscape("Art Club")+"/signup?teacher_username=mrodriguez")
	test.ErrorEqual(t, response.ErrInvalidRequest.WithTips("Email is required"), resp)
}

func TestSignupLastSeatConcurrent(t *testing.T) {
	db := test.SetupDB(t)
	seedStaff(t, db)
	act := model.Activity{
		Name:            "Photography Club",
		Description:     "Darkroom and digital photography",
		Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 3,
	}
	require.NoError(t, db.Create(&act).Error)
	require.NoError(t, db.Create(&model.Registration{ActivityID: act.ID, Email: "a@mergington.edu"}).Error)
	require.NoError(t, db.Create(&model.Registration{ActivityID: act.ID, Email: "b@mergington.edu"}).Error)

	r := test.NewRouter(t, &activity.ModuleActivity{})

	// 只剩一个名额，多个并发报名最多一个成功
	const attempts = 8
	codes := make(chan int32, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("racer%d@mergington.edu", i)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, signupURL("Photography Club", email), nil)
			r.ServeHTTP(w, req)

			var resp response.ResponseBody
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				codes <- -1
				return
			}
			codes <- resp.Code
		}(i)
	}
	wg.Wait()
	close(codes)

	var won, rejected int
	for code := range codes {
		switch code {
		case 200:
			won++
		case 409:
			rejected++
		default:
			t.Fatalf("unexpected response code %d", code)
		}
	}
	require.Equal(t, 1, won)
	require.Equal(t, attempts-1, rejected)

	// 容量不变式：成交后报名数恰好等于上限
	var count int64
	require.NoError(t, db.Model(&model.Registration{}).
		Where("activity_id = ?", act.ID).Count(&count).Error)
	require.EqualValues(t, act.MaxParticipants, count)
}

func TestSignupRequiresStaff(t *testing.T) {
	db := test.SetupDB(t)
	require.NoError(t, db.Create(&model.Activity{
		Name:            "Art Club",
		MaxParticipants: 5,
	}).Error)
	r := test.NewRouter(t, &activity.ModuleActivity{})

	// 不带身份参数
	resp := test.DoRequest(t, r, http.MethodPost,
		"/api/activities/"+url.PathEscape("Art Club")+"/signup?email=amy@mergington.edu")
	test.ErrorEqual(t, response.ErrUnauthorized, resp)

	// 身份参数对应的账号不存在
	resp = test.DoRequest(t, r, http.MethodPost,
		"/api/activities/"+url.PathEscape("Art Club")+"/signup?email=amy@mergington.edu&teacher_username=ghost")
	test.ErrorEqual(t, response.ErrUnauthorized, resp)
}

func TestDays(t *testing.T) {
	db := test.SetupDB(t)
	seedCatalog(t, db)
	r := test.NewRouter(t, &activity.ModuleActivity{})

	resp := test.DoRequest(t, r, http.MethodGet, "/api/activities/days")
	test.NoError(t, resp)

	var days []string
	test.DecodeData(t, resp, &days)
	require.Equal(t, []string{"Monday", "Friday", "Saturday"}, days)
}

func TestExport(t *testing.T) {
	db := test.SetupDB(t)
	seedStaff(t, db)
	seedCatalog(t, db)
	r := test.NewRouter(t, &activity.ModuleActivity{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/activities/export?teacher_username=mrodriguez", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	require.NotZero(t, w.Body.Len())
}
