package coach

import "github.com/google/uuid"

// NewSuggestionID mints a stable identifier for a suggestion.
func NewSuggestionID() string {
	return uuid.NewString()
}

func suggest(text, time string) *Suggestion {
	return &Suggestion{ID: NewSuggestionID(), Text: text, Time: time}
}

// DefaultActivities returns the seed catalog. Each call mints fresh
// suggestion IDs so a reset never aliases a previously deleted entry.
func DefaultActivities() map[string]*Activity {
	return map[string]*Activity{
		CategoryApplications: {
			Title: "Applications",
			Icon:  CategoryApplications,
			Suggestions: []*Suggestion{
				suggest("Apply to 2-3 companies", "30 min"),
				suggest("Tailor resume for target role", "20 min"),
				suggest("Follow up on applications from last week", "15 min"),
				suggest("Connect with recruiter on LinkedIn", "10 min"),
				suggest("Check Simplify for new postings", "15 min"),
			},
		},
		CategoryPortfolio: {
			Title: "Portfolio",
			Icon:  CategoryPortfolio,
			Suggestions: []*Suggestion{
				suggest("Add case study", "60 min"),
				suggest("Update project descriptions", "30 min"),
				suggest("Write blog post about a project", "60 min"),
				suggest("Polish homepage copy", "20 min"),
				suggest("Add new project screenshots", "15 min"),
			},
		},
		CategoryProjects: {
			Title: "Projects",
			Icon:  CategoryProjects,
			Suggestions: []*Suggestion{
				suggest("Code for 30 minutes on current project", "30 min"),
				suggest("Deploy a new feature", "45 min"),
				suggest("Start a Chrome extension idea", "60 min"),
				suggest("Add tests to existing project", "30 min"),
				suggest("Refactor messy code", "45 min"),
			},
		},
		CategorySkills: {
			Title: "Skills",
			Icon:  CategorySkills,
			Suggestions: []*Suggestion{
				suggest("Do 2 LeetCode problems", "30 min"),
				suggest("Practice system design", "45 min"),
				suggest("Learn new React pattern", "30 min"),
				suggest("Read documentation", "20 min"),
			},
		},
	}
}
