package worker

import (
	"sort"
	"strings"
)

var monthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MinGraphScale is the floor for the detail view's cost graph.
const MinGraphScale = 100

type MonthGroup struct {
	Month  string  `json:"month"`
	Events []Event `json:"events"`
}

func monthIndex(token string) int {
	for i, m := range monthOrder {
		if m == token {
			return i
		}
	}
	return -1
}

// MonthToken is the part of a date string before the first space.
func MonthToken(date string) string {
	token, _, _ := strings.Cut(date, " ")
	return token
}

// GroupEventsByMonth buckets events by month name, latest month first.
// The year is not part of the key, so "Feb" events from different years land
// in one group. Unrecognised tokens sort last in first-seen order.
func GroupEventsByMonth(events []Event) []MonthGroup {
	groups := make([]MonthGroup, 0)
	index := make(map[string]int)

	for _, e := range events {
		token := MonthToken(e.Date)
		i, ok := index[token]
		if !ok {
			i = len(groups)
			index[token] = i
			groups = append(groups, MonthGroup{Month: token})
		}
		groups[i].Events = append(groups[i].Events, e)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return monthIndex(groups[a].Month) > monthIndex(groups[b].Month)
	})
	return groups
}

// MaxCost is the largest event cost, never below MinGraphScale.
func MaxCost(events []Event) float64 {
	max := float64(MinGraphScale)
	for _, e := range events {
		if e.Cost > max {
			max = e.Cost
		}
	}
	return max
}
