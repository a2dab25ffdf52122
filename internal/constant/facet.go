package constant

// UniversalTag marks an activity as suitable for every value of the age or group size facet.
const UniversalTag = "any"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

const (
	MaterialsNoPrep   = "No Prep"
	MaterialsLowPrep  = "Low Prep"
	MaterialsHighPrep = "High Prep"

	DefaultMaterials = MaterialsLowPrep
)

const (
	FacetAgeGroup  = "ageGroup"
	FacetCategory  = "category"
	FacetGroupSize = "groupSize"
	FacetMaterials = "materials"
)

var AgeGroups = []string{"4-5", "6-8", "9-12", "13+"}

var Categories = []string{
	"Active Sport",
	"Art",
	"Icebreaker",
	"Quiet / Indoor",
	"Learning Lab",
	"Adapted / Sensory",
}

var GroupSizes = []string{"2-10", "11-24", "25+"}

var Materials = []string{MaterialsNoPrep, MaterialsLowPrep, MaterialsHighPrep}

// QuickSearches are the suggested free-text chips shown next to the search box.
var QuickSearches = []string{
	"No Prep",
	"Teamwork",
	"Relay",
	"Circle Game",
	"Quiet",
	"Funny",
	"Competitive",
	"Trust",
}

const (
	// DefaultGapThreshold is the share of approved activities under which a facet value is reported as a gap
	DefaultGapThreshold = 0.15

	TopCategoryNone = "None"

	DefaultModerationPageSize = 100
	MaxModerationPageSize     = 500
)
