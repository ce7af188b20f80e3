package models

// Subject is a taught area a question belongs to. Names and
// Descriptions map a language code to display text.
type Subject struct {
	ID           string            `bson:"_id,omitempty" json:"id"`
	Names        map[string]string `bson:"name" json:"name"`
	Descriptions map[string]string `bson:"description,omitempty" json:"description,omitempty"`
	IsActive     bool              `bson:"is_active" json:"is_active"`
}
