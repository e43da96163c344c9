package activity

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// parseClock 把 "HH:MM" 解析为当天分钟数
func parseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("时间格式不合法: %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("小时不合法: %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("分钟不合法: %q", s)
	}
	return hour*60 + minute, nil
}

// formatClock 把当天分钟数格式化为 "HH:MM"
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// overlaps 判断两个 [start, end) 分钟区间是否相交
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
