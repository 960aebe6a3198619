package activity

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/frahmantamala/manager-dashboard/internal/core/search"
)

type StatusType string

const (
	StatusTypePending  StatusType = "pending"
	StatusTypeApproved StatusType = "approved"
	StatusTypeRejected StatusType = "rejected"
)

// Activity is one submitted expense report shown in the dashboard feed.
type Activity struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Initials   string     `json:"initials"`
	ReportID   int64      `json:"report_id"`
	Time       string     `json:"time"`
	Amount     float64    `json:"amount"`
	Status     string     `json:"status"`
	StatusType StatusType `json:"status_type"`
}

// Initials takes the first letter of every word, upper-cased.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// StatusTypeOf maps a display status to its badge type. Anything unknown is
// shown as approved.
func StatusTypeOf(status string) StatusType {
	switch strings.ToLower(status) {
	case "pending":
		return StatusTypePending
	case "rejected":
		return StatusTypeRejected
	default:
		return StatusTypeApproved
	}
}

// Feed is the read-only list of recent activities.
type Feed struct {
	items []Activity
}

func NewFeed(items []Activity) *Feed {
	cp := make([]Activity, len(items))
	copy(cp, items)
	return &Feed{items: cp}
}

func (f *Feed) All() []Activity {
	cp := make([]Activity, len(f.items))
	copy(cp, f.items)
	return cp
}

// Search matches query against the person's name and the report id.
func (f *Feed) Search(query string, viewAll bool) search.Page[Activity] {
	matched := search.Filter(f.items, query, func(a Activity) (string, int64) {
		return a.Name, a.ReportID
	})
	return search.Preview(query, matched, viewAll)
}
