package catalog

// Stage is one step of a service category offering.
type Stage struct {
	Name     string
	Features []string
	Outputs  []string
	Cost     int64
}

// Category is a named bundle of staged service offerings.
type Category struct {
	ID     string
	Stages []Stage
}

// Category identifiers. DefaultCategoryID is used when inference finds nothing.
const (
	CategoryVisualization   = "시각화_대시보드"
	CategoryChatbot         = "AI_챗봇"
	CategoryDataEngineering = "데이터_엔지니어링"
	CategoryPlatform        = "플랫폼"
	CategoryMobileApp       = "모바일_앱"

	DefaultCategoryID = CategoryPlatform
)

// Get returns the category for id.
func Get(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// IDs returns all category identifiers in catalog order.
func IDs() []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}

// TotalCost sums every stage cost across the given categories.
// Unknown identifiers contribute nothing.
func TotalCost(ids []string) int64 {
	var total int64
	for _, id := range ids {
		c, ok := Get(id)
		if !ok {
			continue
		}
		for _, s := range c.Stages {
			total += s.Cost
		}
	}
	return total
}

// MinStageCost returns the cheapest non-zero stage cost across the given
// categories; zero when none of them has a priced stage.
func MinStageCost(ids []string) int64 {
	var min int64
	for _, id := range ids {
		c, ok := Get(id)
		if !ok {
			continue
		}
		for _, s := range c.Stages {
			if s.Cost == 0 {
				continue
			}
			if min == 0 || s.Cost < min {
				min = s.Cost
			}
		}
	}
	return min
}
