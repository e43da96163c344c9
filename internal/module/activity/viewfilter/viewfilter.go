// Package viewfilter 实现活动列表的展示层派生逻辑：
// 分类归属、容量状态、关键字搜索与周末判定。
// 全部是纯函数，每次渲染时重新计算，不落库缓存。
package viewfilter

import "strings"

// 容量状态
const (
	StatusFull      = "full"
	StatusNearFull  = "near full"
	StatusAvailable = "available"
)

// 近满阈值（报名率百分比）
const nearFullThreshold = 75

// Availability 活动容量的派生视图
type Availability struct {
	SpotsLeft  int     `json:"spots_left"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

// Derive 根据已报名人数与容量上限计算容量视图
func Derive(enrolled, max int) Availability {
	a := Availability{
		SpotsLeft: max - enrolled,
	}
	if max > 0 {
		a.Percentage = float64(enrolled) / float64(max) * 100
	}
	switch {
	case a.SpotsLeft <= 0:
		a.Status = StatusFull
	case a.Percentage >= nearFullThreshold:
		a.Status = StatusNearFull
	default:
		a.Status = StatusAvailable
	}
	return a
}

// 分类关键字表，匹配顺序即优先级
var categoryOrder = []string{"sports", "arts", "academic", "community", "technology"}

var categoryKeywords = map[string][]string{
	"sports":     {"sport", "fitness", "soccer", "basketball", "gym", "athletic", "team"},
	"arts":       {"art", "drama", "music", "theater", "paint", "drawing", "craft"},
	"academic":   {"academic", "math", "science", "debate", "chess", "olympiad", "study"},
	"community":  {"community", "volunteer", "service", "charity"},
	"technology": {"tech", "programming", "coding", "computer", "robot", "software"},
}

// Categorize 根据名称与描述推断活动分类，无命中时归入 academic
func Categorize(name, description string) string {
	haystack := strings.ToLower(name + " " + description)
	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(haystack, keyword) {
				return category
			}
		}
	}
	return "academic"
}

// MatchesSearch 不区分大小写的子串匹配，任一字段命中即为真
// 空查询匹配所有活动
func MatchesSearch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// IsWeekend 判断活动是否安排在周六或周日
func IsWeekend(days []string) bool {
	for _, day := range days {
		switch strings.ToLower(day) {
		case "saturday", "sunday":
			return true
		}
	}
	return false
}

// Filter 展示层过滤条件，零值表示不过滤
type Filter struct {
	Category string
	Search   string
	Weekend  *bool
}

// Match 判断一个活动是否通过过滤条件
func (f Filter) Match(name, description, schedule, category string, days []string) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, category) {
		return false
	}
	if !MatchesSearch(f.Search, name, description, schedule) {
		return false
	}
	if f.Weekend != nil && *f.Weekend != IsWeekend(days) {
		return false
	}
	return true
}
