package types

// CatalogQuery is the set of facet filters and the free-text term of a catalog search.
// Empty facet lists and a materials value of "" or "any" impose no restriction.
type CatalogQuery struct {
	Ages       []string `json:"age" validate:"max=16,dive,agegroup"`
	Categories []string `json:"category" validate:"max=16,dive,category"`
	GroupSizes []string `json:"groupSize" validate:"max=16,dive,groupsize"`
	Materials  string   `json:"materials" validate:"omitempty,materialsfilter"`
	Term       string   `json:"q" validate:"max=128"`
}

type Facets struct {
	AgeGroups     []string `json:"ageGroups"`
	Categories    []string `json:"categories"`
	GroupSizes    []string `json:"groupSizes"`
	Materials     []string `json:"materials"`
	QuickSearches []string `json:"quickSearches"`
}

// PopularityTask is published for every non-empty search result and consumed by the popularity worker.
type PopularityTask struct {
	ActivityIDs []int64 `json:"ids"`
	// CreatedAt is in microseconds
	CreatedAt int64 `json:"createdAt"`
}
