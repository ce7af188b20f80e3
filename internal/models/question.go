package models

type Option struct {
	ID           string            `bson:"id" json:"id"`
	Texts        map[string]string `bson:"option_text" json:"option_text"`
	IsCorrect    bool              `bson:"is_correct" json:"is_correct"`
	PointsValue  float64           `bson:"points_value" json:"points_value"`
	InterestTags []string          `bson:"interest_tags,omitempty" json:"interest_tags,omitempty"`

	// DisplayText is resolved per request language, never persisted.
	DisplayText string `bson:"-" json:"display_text,omitempty"`
}

// Question is immutable content authored outside the engine; the engine
// only reads it. Texts and Explanations map a language code to the
// authored variant for that language.
type Question struct {
	ID               string            `bson:"_id,omitempty" json:"id"`
	SubjectID        string            `bson:"subject_id" json:"subject_id"`
	Difficulty       int               `bson:"difficulty" json:"difficulty"`
	Texts            map[string]string `bson:"question_text" json:"question_text"`
	Explanations     map[string]string `bson:"explanation_text,omitempty" json:"explanation_text,omitempty"`
	RealWorldContext string            `bson:"real_world_context,omitempty" json:"real_world_context,omitempty"`
	Options          []Option          `bson:"options" json:"options"`

	DisplayText        string `bson:"-" json:"display_text,omitempty"`
	DisplayExplanation string `bson:"-" json:"display_explanation,omitempty"`
}

// OptionByID returns the option with the given id, or nil when the id
// does not belong to this question.
func (q *Question) OptionByID(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// CorrectOption returns the first option marked correct. A well-formed
// question has exactly one.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}

// InterestTags collects the distinct interest tags carried by the
// question's options, in option order.
func (q *Question) InterestTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, opt := range q.Options {
		for _, tag := range opt.InterestTags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
