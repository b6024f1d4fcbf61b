package collection

import (
	"errors"
	"strings"
	"time"
)

// Field names in the persisted JSON keep the original Portuguese keys
// (pergunta/resposta) so existing data files stay readable.

const (
	// DefaultTag is assigned to cards authored without a tag.
	DefaultTag = "geral"
	// ImportTag is assigned to imported entries that carry no tag.
	ImportTag = "importado"
)

// Difficulty records the self-assessed recall outcome of a card.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid reports whether d is one of the known difficulty values.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Flashcard is a single study unit. ID and CreatedAt are assigned once at
// creation and never change afterwards. Timestamps are epoch milliseconds.
type Flashcard struct {
	ID           string     `json:"id" yaml:"id"`
	Question     string     `json:"pergunta" yaml:"pergunta"`
	Answer       string     `json:"resposta" yaml:"resposta"`
	Tag          string     `json:"tag" yaml:"tag"`
	CreatedAt    int64      `json:"createdAt" yaml:"created_at"`
	LastReviewed int64      `json:"lastReviewed,omitempty" yaml:"last_reviewed,omitempty"`
	Difficulty   Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// Draft holds a flashcard's content fields before identity assignment.
type Draft struct {
	Question string
	Answer   string
	Tag      string
}

var (
	ErrEmptyQuestion = errors.New("flashcard question must not be empty")
	ErrEmptyAnswer   = errors.New("flashcard answer must not be empty")
)

// normalize trims the draft's fields and applies the default tag.
// It returns a validation error when the question or answer is blank.
func (d Draft) normalize(defaultTag string) (Draft, error) {
	d.Question = strings.TrimSpace(d.Question)
	d.Answer = strings.TrimSpace(d.Answer)
	d.Tag = strings.TrimSpace(d.Tag)
	if d.Question == "" {
		return Draft{}, ErrEmptyQuestion
	}
	if d.Answer == "" {
		return Draft{}, ErrEmptyAnswer
	}
	if d.Tag == "" {
		d.Tag = defaultTag
	}
	return d, nil
}

// newFlashcard builds a card from a normalized draft.
func newFlashcard(d Draft, id string, now time.Time) Flashcard {
	return Flashcard{
		ID:        id,
		Question:  d.Question,
		Answer:    d.Answer,
		Tag:       d.Tag,
		CreatedAt: now.UnixMilli(),
	}
}
