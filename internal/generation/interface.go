// Package generation defines the flashcard generation collaborator: given a
// topic, a count and a style, it asynchronously yields candidate cards.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

//go:generate mockgen -source=interface.go -destination=../mocks/generation/mock_service.go -package=mock_generation Service

// Style selects the content strategy for generated cards. The core passes
// it through without interpreting it.
type Style string

const (
	StyleDefinition Style = "definition"
	StyleQuestion   Style = "question"
	StyleExample    Style = "example"
	StyleAnalogy    Style = "analogy"
)

// ParseStyle converts a user-supplied string into a Style.
func ParseStyle(value string) (Style, error) {
	switch Style(value) {
	case StyleDefinition, StyleQuestion, StyleExample, StyleAnalogy:
		return Style(value), nil
	}
	return "", fmt.Errorf("unknown flashcard style %q", value)
}

// ErrGenerationFailed signals that the generation service could not produce
// cards. No partial results are returned alongside it.
var ErrGenerationFailed = errors.New("flashcard generation failed")

// Request asks for up to Quantity cards about Topic.
type Request struct {
	Topic    string
	Quantity int
	Style    Style
}

// Validate checks the request against the service contract.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return errors.New("generation topic must not be empty")
	}
	if r.Quantity <= 0 {
		return errors.New("generation quantity must be positive")
	}
	if _, err := ParseStyle(string(r.Style)); err != nil {
		return err
	}
	return nil
}

// Card is a generated question/answer pair with a suggested tag.
type Card struct {
	Question string `json:"pergunta"`
	Answer   string `json:"resposta"`
	Tag      string `json:"tag"`
}

// Service produces candidate flashcards. Implementations return at most
// Request.Quantity cards or fail with an error wrapping
// ErrGenerationFailed.
type Service interface {
	Generate(ctx context.Context, req Request) ([]Card, error)
}
