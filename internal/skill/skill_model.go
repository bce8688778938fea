package skill

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// Category is a static grouping of skills used for rollup reporting.
// Reference data: seeded at startup, never mutated through the API.
type Category struct {
	gorm.Model
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Label       string `json:"label" gorm:"not null"`
	Description string `json:"description"`
}

// LevelDetail describes what one rung of the 0-5 ladder means for a skill.
type LevelDetail struct {
	Level       int    `json:"level"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type LevelDetails []LevelDetail

func (l LevelDetails) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan unmarshals a JSON column into the slice.
func (l *LevelDetails) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		if s, ok := src.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("LevelDetails: expected []byte, got %T", src)
		}
	}
	return json.Unmarshal(b, l)
}

// Skill is one ratable competence. NormalizedName is the diacritic-stripped
// lowercase form used to resolve free-text titles from older form variants.
type Skill struct {
	gorm.Model
	Name           string       `json:"name" gorm:"uniqueIndex;not null"`
	NormalizedName string       `json:"-" gorm:"index"`
	Description    string       `json:"description"`
	CategorySlug   string       `json:"category" gorm:"index"`
	Levels         LevelDetails `json:"levels" gorm:"type:json"`
}

// BeforeSave keeps the normalized lookup column in sync with the name.
func (s *Skill) BeforeSave(tx *gorm.DB) error {
	s.NormalizedName = NormalizeName(s.Name)
	return nil
}

// LevelLabels are the six fixed rung labels shared by every skill.
var LevelLabels = [6]string{
	"No familiarizado",
	"Comprendo",
	"En desarrollo",
	"Autónomo",
	"Promuevo",
	"Transformo",
}

// BuildLevels pairs the six fixed labels with per-skill descriptions.
func BuildLevels(descriptions [6]string) LevelDetails {
	levels := make(LevelDetails, 0, len(descriptions))
	for i, d := range descriptions {
		levels = append(levels, LevelDetail{Level: i, Label: LevelLabels[i], Description: d})
	}
	return levels
}
