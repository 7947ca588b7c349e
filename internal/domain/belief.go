package domain

import (
	"fmt"
	"strings"
)

// BeliefsPerCategory is the exact number of beliefs every category must hold.
const BeliefsPerCategory = 5

// Belief is one empowering statement with its tense label and Vietnamese translation.
type Belief struct {
	Text        string `json:"text"`
	Tense       string `json:"tense"`
	Translation string `json:"translation"`
}

// Category names one of the three "brains" a belief is grouped under.
type Category string

const (
	CategoryLogic   Category = "logic"
	CategoryEmotion Category = "emotion"
	CategoryAnimal  Category = "animal"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryLogic, CategoryEmotion, CategoryAnimal}

// Title returns the bilingual heading used when rendering the category.
func (c Category) Title() string {
	switch c {
	case CategoryLogic:
		return "Logic Brain (Lý trí)"
	case CategoryEmotion:
		return "Emotion Brain (Cảm xúc)"
	case CategoryAnimal:
		return "Animal Brain (Não thú)"
	default:
		return string(c)
	}
}

// TransformedBeliefs is the full result of one transformation: five beliefs per category.
type TransformedBeliefs struct {
	Logic   []Belief `json:"logic"`
	Emotion []Belief `json:"emotion"`
	Animal  []Belief `json:"animal"`
}

// Beliefs returns the list stored under the given category.
func (t *TransformedBeliefs) Beliefs(c Category) []Belief {
	switch c {
	case CategoryLogic:
		return t.Logic
	case CategoryEmotion:
		return t.Emotion
	case CategoryAnimal:
		return t.Animal
	default:
		return nil
	}
}

// Count returns the total number of beliefs across all categories.
func (t *TransformedBeliefs) Count() int {
	return len(t.Logic) + len(t.Emotion) + len(t.Animal)
}

// Tenses returns the distinct tense labels in first-seen order.
func (t *TransformedBeliefs) Tenses() []string {
	seen := make(map[string]struct{})
	var tenses []string
	for _, c := range Categories {
		for _, b := range t.Beliefs(c) {
			if _, ok := seen[b.Tense]; ok {
				continue
			}
			seen[b.Tense] = struct{}{}
			tenses = append(tenses, b.Tense)
		}
	}
	return tenses
}

// Validate checks the shape invariants: every category holds exactly
// BeliefsPerCategory beliefs and no belief has a blank field.
func (t *TransformedBeliefs) Validate() error {
	for _, c := range Categories {
		beliefs := t.Beliefs(c)
		if beliefs == nil {
			return fmt.Errorf("missing %s beliefs", c)
		}
		if len(beliefs) != BeliefsPerCategory {
			return fmt.Errorf("expected %d %s beliefs, got %d", BeliefsPerCategory, c, len(beliefs))
		}
		for i, b := range beliefs {
			if err := b.validate(); err != nil {
				return fmt.Errorf("%s belief %d: %w", c, i, err)
			}
		}
	}
	return nil
}

func (b Belief) validate() error {
	switch {
	case strings.TrimSpace(b.Text) == "":
		return fmt.Errorf("text is empty")
	case strings.TrimSpace(b.Tense) == "":
		return fmt.Errorf("tense is empty")
	case strings.TrimSpace(b.Translation) == "":
		return fmt.Errorf("translation is empty")
	}
	return nil
}
