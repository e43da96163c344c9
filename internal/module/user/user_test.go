package user_test

import (
	"net/http"
	"testing"

	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"
	"school-activities-system/internal/module/user"
	"school-activities-system/test"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type profile struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func seedTeacher(t *testing.T, db *gorm.DB) {
	require.NoError(t, db.Create(&model.Teacher{
		Username:    "mchen",
		DisplayName: "Mr. Chen",
		Password:    "chess456",
		Role:        "teacher",
	}).Error)
}

func TestLogin(t *testing.T) {
	db := test.SetupDB(t)
	seedTeacher(t, db)
	r := test.NewRouter(t, &user.ModuleUser{})

	// 登录成功，返回的资料不含口令
	resp := test.DoRequest(t, r, http.MethodPost, "/api/auth/login?username=mchen&password=chess456")
	test.NoError(t, resp)
	var p profile
	test.DecodeData(t, resp, &p)
	require.Equal(t, "mchen", p.Username)
	require.Equal(t, "Mr. Chen", p.DisplayName)
	require.Equal(t, "teacher", p.Role)

	// 口令错误与账号不存在返回同一个提示
	resp = test.DoRequest(t, r, http.MethodPost, "/api/auth/login?username=mchen&password=wrong")
	test.ErrorEqual(t, response.ErrInvalidCredentials, resp)

	resp = test.DoRequest(t, r, http.MethodPost, "/api/auth/login?username=ghost&password=chess456")
	test.ErrorEqual(t, response.ErrInvalidCredentials, resp)

	// 缺参也走同一个失败路径
	resp = test.DoRequest(t, r, http.MethodPost, "/api/auth/login?username=mchen")
	test.ErrorEqual(t, response.ErrInvalidCredentials, resp)
}

func TestCheckSession(t *testing.T) {
	db := test.SetupDB(t)
	seedTeacher(t, db)
	r := test.NewRouter(t, &user.ModuleUser{})

	resp := test.DoRequest(t, r, http.MethodGet, "/api/auth/check-session?username=mchen")
	test.NoError(t, resp)
	var p profile
	test.DecodeData(t, resp, &p)
	require.Equal(t, "Mr. Chen", p.DisplayName)

	// 账号不存在时会话无效
	resp = test.DoRequest(t, r, http.MethodGet, "/api/auth/check-session?username=ghost")
	test.ErrorEqual(t, response.ErrNotFound.WithTips("Teacher not found"), resp)

	resp = test.DoRequest(t, r, http.MethodGet, "/api/auth/check-session")
	test.ErrorEqual(t, response.ErrInvalidRequest.WithTips("Username is required"), resp)
}
