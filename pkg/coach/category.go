package coach

// Category describes one of the fixed activity categories and the symbol
// used when rendering it.
type Category struct {
	Key     string
	Symbol  string
	Title   string
	Meaning string
}

const (
	CategoryApplications = "applications"
	CategoryPortfolio    = "portfolio"
	CategoryProjects     = "projects"
	CategorySkills       = "skills"
)

// DefaultCategories returns the fixed category set in display order.
func DefaultCategories() []Category {
	return []Category{
		{
			Key:     CategoryApplications,
			Symbol:  "✎",
			Title:   "Applications",
			Meaning: "applying and following up",
		},
		{
			Key:     CategoryPortfolio,
			Symbol:  "▣",
			Title:   "Portfolio",
			Meaning: "portfolio and writing",
		},
		{
			Key:     CategoryProjects,
			Symbol:  "▲",
			Title:   "Projects",
			Meaning: "building and shipping",
		},
		{
			Key:     CategorySkills,
			Symbol:  "✦",
			Title:   "Skills",
			Meaning: "practice and study",
		},
	}
}

// CategoryFor looks up a category by key. The second return reports whether
// the key names a known category.
func CategoryFor(key string) (Category, bool) {
	for _, c := range DefaultCategories() {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// ValidCategory reports whether key names one of the fixed categories.
func ValidCategory(key string) bool {
	_, ok := CategoryFor(key)
	return ok
}
