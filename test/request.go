package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"school-activities-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

// DoRequest 向测试路由发起一次请求并解出统一响应体
// 所有接口的参数都在查询串里，target 直接带上即可
func DoRequest(t *testing.T, r http.Handler, method, target string) response.ResponseBody {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)

	var resp response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

// DecodeData 把响应里的 data 字段重新解到目标类型
func DecodeData(t *testing.T, resp response.ResponseBody, out any) {
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
