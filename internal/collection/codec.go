package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedImport signals import text that is not a JSON array at the top
// level. The collection is left unchanged in that case.
var ErrMalformedImport = errors.New("import text is not a flashcard array")

// ExportText serializes the full collection as an indented JSON array. The
// output round-trips through ImportText.
func (s *Store) ExportText() (string, error) {
	cards := s.cards
	if cards == nil {
		cards = []Flashcard{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json.MarshalIndent() > %w", err)
	}
	return string(data), nil
}

// importEntry is the loosely-shaped wire form of an imported card. Parsing
// it never lets a partially-typed value past this package: parseImportEntry
// either produces a complete Flashcard or a rejection.
type importEntry struct {
	ID           string `json:"id"`
	Question     string `json:"pergunta"`
	Answer       string `json:"resposta"`
	Tag          string `json:"tag"`
	CreatedAt    int64  `json:"createdAt"`
	LastReviewed int64  `json:"lastReviewed"`
	Difficulty   string `json:"difficulty"`
}

// parseImportEntry validates a single raw entry. Missing id, tag and
// createdAt are defaulted; an empty question or answer rejects the entry.
func (s *Store) parseImportEntry(raw json.RawMessage) (Flashcard, bool) {
	var entry importEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Flashcard{}, false
	}

	entry.Question = strings.TrimSpace(entry.Question)
	entry.Answer = strings.TrimSpace(entry.Answer)
	if entry.Question == "" || entry.Answer == "" {
		return Flashcard{}, false
	}

	card := Flashcard{
		ID:           entry.ID,
		Question:     entry.Question,
		Answer:       entry.Answer,
		Tag:          strings.TrimSpace(entry.Tag),
		CreatedAt:    entry.CreatedAt,
		LastReviewed: entry.LastReviewed,
		Difficulty:   Difficulty(entry.Difficulty),
	}
	if card.ID == "" {
		card.ID = s.newID()
	}
	if card.Tag == "" {
		card.Tag = ImportTag
	}
	if card.CreatedAt == 0 {
		card.CreatedAt = s.now().UnixMilli()
	}
	if !card.Difficulty.IsValid() {
		card.Difficulty = ""
	}
	return card, true
}

// ImportText parses text as a JSON array of flashcards and prepends the
// valid entries to the collection, preserving their input order. Individual
// malformed entries are dropped; the import still succeeds. A non-array
// top-level shape returns ErrMalformedImport and leaves the collection
// unchanged. The number of imported cards is returned.
func (s *Store) ImportText(text string) (int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}
	if raw == nil {
		// "null" decodes without error but is not a sequence.
		return 0, ErrMalformedImport
	}

	imported := make([]Flashcard, 0, len(raw))
	for _, entry := range raw {
		card, ok := s.parseImportEntry(entry)
		if !ok {
			continue
		}
		imported = append(imported, card)
	}

	next := append(append([]Flashcard(nil), imported...), s.cards...)
	if err := s.commit(next); err != nil {
		return 0, err
	}
	return len(imported), nil
}
