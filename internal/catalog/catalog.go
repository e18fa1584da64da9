// Package catalog holds the static seasonal roster and quiz question bank.
package catalog

import (
	"embed"
	"fauna/internal/models"
	"fmt"

	json "github.com/goccy/go-json"
)

//go:embed data/*.json
var files embed.FS

type Catalog struct {
	Seasonal  []models.SeasonalEntry
	Questions []models.QuizQuestion
	byID      map[int]int
}

// Load decodes and validates the embedded catalog.
func Load() (*Catalog, error) {
	seasonal, err := files.ReadFile("data/seasonal.json")
	if err != nil {
		return nil, err
	}
	questions, err := files.ReadFile("data/questions.json")
	if err != nil {
		return nil, err
	}
	return Parse(seasonal, questions)
}

func Parse(seasonalJSON, questionsJSON []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := json.Unmarshal(seasonalJSON, &c.Seasonal); err != nil {
		return nil, fmt.Errorf("decode seasonal roster: %w", err)
	}
	if err := json.Unmarshal(questionsJSON, &c.Questions); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	for i := range c.Seasonal {
		if err := validateSeasonal(&c.Seasonal[i]); err != nil {
			return nil, err
		}
	}

	c.byID = make(map[int]int, len(c.Questions))
	for i := range c.Questions {
		q := &c.Questions[i]
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("question %d: duplicate id", q.ID)
		}
		c.byID[q.ID] = i
	}
	return c, nil
}

func validateSeasonal(e *models.SeasonalEntry) error {
	switch e.Season {
	case models.SeasonSpring, models.SeasonSummer, models.SeasonFall, models.SeasonWinter:
	default:
		return fmt.Errorf("seasonal entry %q: unknown season %q", e.Name, e.Season)
	}
	if len(e.Months) == 0 {
		return fmt.Errorf("seasonal entry %q: no months", e.Name)
	}
	for _, m := range e.Months {
		if m < 1 || m > 12 {
			return fmt.Errorf("seasonal entry %q: month %d out of range", e.Name, m)
		}
	}
	return nil
}

func (c *Catalog) QuestionByID(id int) (models.QuizQuestion, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.QuizQuestion{}, false
	}
	return c.Questions[i], true
}
