package viewfilter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	// 9/10 报名率 90%，剩 1 个名额，近满
	a := Derive(9, 10)
	require.Equal(t, 1, a.SpotsLeft)
	require.InDelta(t, 90.0, a.Percentage, 0.001)
	require.Equal(t, StatusNearFull, a.Status)

	// 刚好达到 75% 阈值
	a = Derive(3, 4)
	require.Equal(t, StatusNearFull, a.Status)

	a = Derive(10, 10)
	require.Equal(t, 0, a.SpotsLeft)
	require.Equal(t, StatusFull, a.Status)

	a = Derive(2, 20)
	require.Equal(t, 18, a.SpotsLeft)
	require.InDelta(t, 10.0, a.Percentage, 0.001)
	require.Equal(t, StatusAvailable, a.Status)

	// 容量为 0 时视为已满，不做除法
	a = Derive(0, 0)
	require.Equal(t, StatusFull, a.Status)
	require.Zero(t, a.Percentage)
}

func TestCategorize(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        string
	}{
		{"Soccer Team", "Join the school soccer team", "sports"},
		{"Art Club", "Explore painting and drawing", "arts"},
		{"Chess Club", "Learn strategies and compete", "academic"},
		{"Community Service Club", "Volunteer in the local community", "community"},
		{"Programming Class", "Learn coding fundamentals", "technology"},
		// 同时命中 sports 与 academic 关键字时，sports 优先
		{"Debate Team", "Weekly debate practice", "sports"},
		// 无任何关键字命中，归入 academic
		{"Reading Circle", "Books and discussion", "academic"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Categorize(tc.name, tc.description), tc.name)
	}
}

func TestMatchesSearch(t *testing.T) {
	require.True(t, MatchesSearch("", "anything"))
	require.True(t, MatchesSearch("  ", "anything"))
	require.True(t, MatchesSearch("chess", "Chess Club", "Learn strategies"))
	require.True(t, MatchesSearch("STRATEG", "Chess Club", "Learn strategies"))
	require.True(t, MatchesSearch("friday", "Chess Club", "desc", "Mondays and Fridays, 3:15 PM"))
	require.False(t, MatchesSearch("soccer", "Chess Club", "Learn strategies"))
}

func TestIsWeekend(t *testing.T) {
	require.False(t, IsWeekend(nil))
	require.False(t, IsWeekend([]string{"Monday", "Friday"}))
	require.True(t, IsWeekend([]string{"Saturday"}))
	require.True(t, IsWeekend([]string{"Friday", "Sunday"}))
	require.True(t, IsWeekend([]string{"saturday"}))
}

func TestFilterMatch(t *testing.T) {
	days := []string{"Monday", "Friday"}

	require.True(t, Filter{}.Match("Chess Club", "desc", "sched", "academic", days))
	require.True(t, Filter{Category: "Academic"}.Match("Chess Club", "desc", "sched", "academic", days))
	require.False(t, Filter{Category: "sports"}.Match("Chess Club", "desc", "sched", "academic", days))
	require.False(t, Filter{Search: "soccer"}.Match("Chess Club", "desc", "sched", "academic", days))

	weekend := true
	require.False(t, Filter{Weekend: &weekend}.Match("Chess Club", "desc", "sched", "academic", days))
	require.True(t, Filter{Weekend: &weekend}.Match("Robotics", "desc", "sched", "technology", []string{"Saturday"}))
	weekday := false
	require.True(t, Filter{Weekend: &weekday}.Match("Chess Club", "desc", "sched", "academic", days))
}
