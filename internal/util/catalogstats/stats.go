// Package catalogstats derives the moderation dashboard figures from a snapshot of the catalog.
package catalogstats

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
)

const HealthyMessage = "catalog coverage is healthy"

const EmptyMessage = "catalog is empty"

type Tally map[string]int

type Gap struct {
	Facet   string `json:"facet"`
	Tag     string `json:"tag"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

type Stats struct {
	Total       int    `json:"total" msgpack:"total"`
	Pending     int    `json:"pending" msgpack:"pending"`
	Categories  Tally  `json:"categories" msgpack:"categories"`
	AgeGroups   Tally  `json:"ageGroups" msgpack:"ageGroups"`
	GroupSizes  Tally  `json:"groupSizes" msgpack:"groupSizes"`
	Materials   Tally  `json:"materials" msgpack:"materials"`
	TopCategory string `json:"topCategory" msgpack:"topCategory"`
	Gaps        []*Gap `json:"gaps" msgpack:"gaps"`
	// Report is the list of human readable gap messages, or a single healthy message.
	Report []string `json:"report" msgpack:"report"`
}

// Partition splits activities into approved and pending in a single pass, preserving order.
func Partition(activities []*model.Activity) (approved, pending []*model.Activity) {
	approved = make([]*model.Activity, 0, len(activities))
	pending = make([]*model.Activity, 0)
	for _, a := range activities {
		if a.IsApproved() {
			approved = append(approved, a)
		} else {
			pending = append(pending, a)
		}
	}
	return approved, pending
}

// Count flattens the tag sets selected by fn and tallies every occurrence.
func Count(activities []*model.Activity, fn func(a *model.Activity) []string) Tally {
	t := make(Tally)
	for _, tag := range lo.FlatMap(activities, func(a *model.Activity, _ int) []string { return fn(a) }) {
		t[tag]++
	}
	return t
}

// Sum returns the total number of occurrences in t.
func (t Tally) Sum() int {
	return lo.Sum(lo.Values(t))
}

// Mode returns the most frequent tag in t. Ties go to the tag that sorts first.
// An empty tally yields constant.TopCategoryNone.
func Mode(t Tally) string {
	if len(t) == 0 {
		return constant.TopCategoryNone
	}
	tags := lo.Keys(t)
	sort.Strings(tags)
	top := tags[0]
	for _, tag := range tags[1:] {
		if t[tag] > t[top] {
			top = tag
		}
	}
	return top
}

type facet struct {
	name      string
	tags      []string
	tally     Tally
	universal bool
}

// Gaps reports every tracked facet value whose count falls under threshold * total.
// Rows tagged with the universal tag count towards every value of their facet.
func Gaps(s *Stats, threshold float64) []*Gap {
	if s.Total == 0 {
		return []*Gap{}
	}
	facets := []facet{
		{name: constant.FacetCategory, tags: constant.Categories, tally: s.Categories},
		{name: constant.FacetAgeGroup, tags: constant.AgeGroups, tally: s.AgeGroups, universal: true},
		{name: constant.FacetGroupSize, tags: constant.GroupSizes, tally: s.GroupSizes, universal: true},
	}
	limit := threshold * float64(s.Total)

	gaps := make([]*Gap, 0)
	for _, f := range facets {
		for _, tag := range f.tags {
			count := f.tally[tag]
			if f.universal {
				count += f.tally[constant.UniversalTag]
			}
			if float64(count) < limit {
				gaps = append(gaps, &Gap{
					Facet:   f.name,
					Tag:     tag,
					Count:   count,
					Message: fmt.Sprintf("low on %s activities (%d of %d)", tag, count, s.Total),
				})
			}
		}
	}
	return gaps
}

// Compute derives the dashboard figures. approved must only hold approved activities.
func Compute(approved []*model.Activity, pending int, threshold float64) *Stats {
	s := &Stats{
		Total:      len(approved),
		Pending:    pending,
		Categories: Count(approved, func(a *model.Activity) []string { return a.Category }),
		AgeGroups:  Count(approved, func(a *model.Activity) []string { return a.AgeGroup }),
		GroupSizes: Count(approved, func(a *model.Activity) []string { return a.GroupSize }),
		Materials:  Count(approved, func(a *model.Activity) []string { return []string{a.Materials} }),
	}
	s.TopCategory = Mode(s.Categories)
	s.Gaps = Gaps(s, threshold)

	switch {
	case s.Total == 0:
		s.Report = []string{EmptyMessage}
	case len(s.Gaps) == 0:
		s.Report = []string{HealthyMessage}
	default:
		s.Report = lo.Map(s.Gaps, func(g *Gap, _ int) string { return g.Message })
	}
	return s
}
