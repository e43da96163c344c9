package tools

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
)

func PanicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}

const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SendStoredFile 以附件形式下发本地文件，文件名做 URL 转义以兼容非 ASCII 字符
func SendStoredFile(c *gin.Context, path, displayName, contentType string) {
	escaped := url.QueryEscape(displayName)

	c.Header("Content-Type", contentType)
	c.Header(
		"Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped),
	)

	c.File(path)
}
