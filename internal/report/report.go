package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Overall selects the organization-wide report.
const Overall = "overall"

const overallTitle = "Overall Organization"

type Spender struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Initials string  `json:"initials"`
	Amount   float64 `json:"amount"`
}

type CategoryShare struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// Breakdown is the chart data for one selection: a weekly spending trend as
// percentages of the chart height and a category split.
type Breakdown struct {
	Weekly     []float64       `json:"weekly"`
	Categories []CategoryShare `json:"categories"`
}

type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Report is what the reports page renders for the current selection.
type Report struct {
	Selection  string          `json:"selection"`
	Title      string          `json:"title"`
	Trend      []Point         `json:"trend"`
	Categories []CategoryShare `json:"categories"`
	Spenders   []Spender       `json:"spenders"`
}

// Fixtures holds breakdowns keyed by Overall or a spender id in decimal.
type Fixtures struct {
	Spenders   []Spender
	Breakdowns map[string]Breakdown
}

type Service struct {
	spenders   []Spender
	breakdowns map[string]Breakdown
}

// NewService sorts spenders by amount, highest first.
func NewService(f Fixtures) *Service {
	spenders := append([]Spender(nil), f.Spenders...)
	sort.SliceStable(spenders, func(i, j int) bool {
		return spenders[i].Amount > spenders[j].Amount
	})
	return &Service{spenders: spenders, breakdowns: f.Breakdowns}
}

func (s *Service) Spenders() []Spender {
	return append([]Spender(nil), s.spenders...)
}

// Normalize turns a raw selection into Overall or the id of a known spender.
// Anything else selects Overall.
func (s *Service) Normalize(selection string) string {
	selection = strings.TrimSpace(selection)
	if selection == "" || strings.EqualFold(selection, Overall) {
		return Overall
	}
	id, err := strconv.ParseInt(selection, 10, 64)
	if err != nil {
		return Overall
	}
	if _, ok := s.spender(id); !ok {
		return Overall
	}
	return strconv.FormatInt(id, 10)
}

func (s *Service) spender(id int64) (Spender, bool) {
	for _, sp := range s.spenders {
		if sp.ID == id {
			return sp, true
		}
	}
	return Spender{}, false
}

// Build assembles the report for selection. Spenders without their own
// breakdown get the overall numbers under their own name.
func (s *Service) Build(selection string) Report {
	selection = s.Normalize(selection)

	title := overallTitle
	if selection != Overall {
		id, _ := strconv.ParseInt(selection, 10, 64)
		sp, _ := s.spender(id)
		title = sp.Name
	}

	data, ok := s.breakdowns[selection]
	if !ok {
		data = s.breakdowns[Overall]
	}

	trend := make([]Point, len(data.Weekly))
	for i, v := range data.Weekly {
		trend[i] = Point{Label: fmt.Sprintf("Week %d", i+1), Value: v}
	}

	return Report{
		Selection:  selection,
		Title:      title,
		Trend:      trend,
		Categories: append([]CategoryShare(nil), data.Categories...),
		Spenders:   s.Spenders(),
	}
}
