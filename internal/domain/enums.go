package domain

type Category string

const (
	CategoryFoundation  Category = "foundation"
	CategoryCore        Category = "core"
	CategoryAdvanced    Category = "advanced"
	CategorySpecialized Category = "specialized"
)

// CategoryRank returns a sort rank (lower = earlier in a plan).
func CategoryRank(c Category) int {
	switch c {
	case CategoryFoundation:
		return 0
	case CategoryCore:
		return 1
	case CategoryAdvanced:
		return 2
	case CategorySpecialized:
		return 3
	default:
		return 4
	}
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"foundation": true, "core": true, "advanced": true, "specialized": true,
}

type ResourceType string

const (
	ResourceBook    ResourceType = "book"
	ResourceVideo   ResourceType = "video"
	ResourceCourse  ResourceType = "course"
	ResourceArticle ResourceType = "article"
)

// ValidResourceTypes is the canonical set of accepted resource type strings.
var ValidResourceTypes = map[string]bool{
	"book": true, "video": true, "course": true, "article": true,
}

type Granularity string

const (
	GranularityWeek     Granularity = "week"
	GranularitySemester Granularity = "semester"
)

// ValidGranularities is the canonical set of accepted period granularity strings.
var ValidGranularities = map[string]bool{
	"week": true, "semester": true,
}
