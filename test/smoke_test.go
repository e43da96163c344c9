package test

import (
	"os"
	"testing"

	"school-activities-system/internal/global/httpclient"

	"github.com/stretchr/testify/require"
)

// TestLiveSmoke 对运行中的实例做连通性检查，平时跳过
// 用法：SMOKE_BASE_URL=http://127.0.0.1:8080 go test ./test/
func TestLiveSmoke(t *testing.T) {
	base := os.Getenv("SMOKE_BASE_URL")
	if base == "" {
		t.Skip("SMOKE_BASE_URL 未设置，跳过冒烟测试")
	}

	httpclient.Init()

	resp, err := httpclient.Client.R().Get(base + "/api/ping")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())

	resp, err = httpclient.Client.R().Get(base + "/api/activities")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
}
