// Package careers maps subjects a student is strong in to career
// suggestions. The catalog is content, not logic; the engine only needs
// the Resolver contract.
package careers

import "assessment-service/internal/models"

// Resolver yields career suggestions for a subject. Implementations
// must be deterministic for a given subject.
type Resolver interface {
	SuggestionsFor(subjectID string) []models.CareerSuggestion
}

// StaticResolver serves suggestions from an in-memory catalog keyed by
// subject id.
type StaticResolver struct {
	catalog map[string][]models.CareerSuggestion
}

func NewStaticResolver(catalog map[string][]models.CareerSuggestion) *StaticResolver {
	if catalog == nil {
		catalog = defaultCatalog
	}
	return &StaticResolver{catalog: catalog}
}

func (r *StaticResolver) SuggestionsFor(subjectID string) []models.CareerSuggestion {
	return r.catalog[subjectID]
}

var defaultCatalog = map[string][]models.CareerSuggestion{
	"mathematics": {
		{
			Title:       "Data Scientist",
			Description: "Analyze complex data patterns and build predictive models",
			Tags:        []string{"Analytics", "Mathematics", "Research", "AI"},
			Match:       88,
		},
		{
			Title:       "Actuary",
			Description: "Quantify financial risk with statistical models",
			Tags:        []string{"Statistics", "Finance", "Analysis"},
			Match:       81,
		},
	},
	"physics": {
		{
			Title:       "Engineer",
			Description: "Design and build technological systems and infrastructure",
			Tags:        []string{"Design", "Physics", "Mathematics", "Innovation"},
			Match:       85,
		},
		{
			Title:       "Research Scientist",
			Description: "Investigate physical phenomena and publish findings",
			Tags:        []string{"Research", "Physics", "Academia"},
			Match:       79,
		},
	},
	"computer_science": {
		{
			Title:       "Software Engineer",
			Description: "Develop innovative software solutions and applications",
			Tags:        []string{"Technology", "Problem Solving", "Innovation", "Programming"},
			Match:       92,
		},
		{
			Title:       "Cybersecurity Analyst",
			Description: "Protect systems and data from digital threats",
			Tags:        []string{"Security", "Technology", "Analysis"},
			Match:       83,
		},
	},
	"biology": {
		{
			Title:       "Biomedical Researcher",
			Description: "Study living systems to advance medicine",
			Tags:        []string{"Biology", "Research", "Medicine"},
			Match:       86,
		},
		{
			Title:       "Environmental Scientist",
			Description: "Study ecosystems and guide conservation policy",
			Tags:        []string{"Biology", "Environment", "Field Work"},
			Match:       78,
		},
	},
	"chemistry": {
		{
			Title:       "Chemical Engineer",
			Description: "Turn laboratory chemistry into industrial processes",
			Tags:        []string{"Chemistry", "Engineering", "Industry"},
			Match:       84,
		},
		{
			Title:       "Pharmacologist",
			Description: "Develop and test new medicines",
			Tags:        []string{"Chemistry", "Medicine", "Research"},
			Match:       80,
		},
	},
	"literature": {
		{
			Title:       "Content Strategist",
			Description: "Shape how organizations tell their stories",
			Tags:        []string{"Writing", "Communication", "Media"},
			Match:       82,
		},
		{
			Title:       "Editor",
			Description: "Refine written work for clarity and impact",
			Tags:        []string{"Writing", "Language", "Publishing"},
			Match:       77,
		},
	},
	"history": {
		{
			Title:       "Policy Analyst",
			Description: "Apply historical context to public decision making",
			Tags:        []string{"Research", "Writing", "Government"},
			Match:       79,
		},
	},
	"languages": {
		{
			Title:       "Translator",
			Description: "Bridge languages for business and culture",
			Tags:        []string{"Language", "Communication", "Culture"},
			Match:       83,
		},
	},
}
