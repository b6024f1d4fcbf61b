package collection

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Store is the sole owner of the flashcard collection. Every mutation
// persists the full collection before it is considered applied, so a failed
// write leaves the in-memory state untouched.
//
// The collection is ordered newest-first: Add, AddMany and ImportText all
// prepend.
type Store struct {
	persistence Persistence
	cards       []Flashcard

	now   func() time.Time
	newID func() string
}

// NewStore loads the initial collection from the persistence surface. An
// empty, unreadable or malformed surface yields an empty collection rather
// than a failure.
func NewStore(persistence Persistence) *Store {
	cards, err := persistence.Load()
	if err != nil {
		slog.Warn("could not load the flashcard collection, starting empty", "error", err)
		cards = nil
	}
	return &Store{
		persistence: persistence,
		cards:       cards,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
}

// commit persists next and only then replaces the in-memory collection.
func (s *Store) commit(next []Flashcard) error {
	if err := s.persistence.Save(next); err != nil {
		return fmt.Errorf("persistence.Save() > %w", err)
	}
	s.cards = next
	return nil
}

// Add validates and stores a new card, prepending it to the collection.
func (s *Store) Add(draft Draft) (Flashcard, error) {
	normalized, err := draft.normalize(DefaultTag)
	if err != nil {
		return Flashcard{}, err
	}

	card := newFlashcard(normalized, s.newID(), s.now())
	next := append([]Flashcard{card}, s.cards...)
	if err := s.commit(next); err != nil {
		return Flashcard{}, err
	}
	return card, nil
}

// AddMany stores all drafts as a single collection update with one
// persistence write. The drafts keep their relative order and are prepended
// as a block. If any draft fails validation, nothing is added.
func (s *Store) AddMany(drafts []Draft) ([]Flashcard, error) {
	if len(drafts) == 0 {
		return nil, nil
	}

	now := s.now()
	cards := make([]Flashcard, 0, len(drafts))
	for _, draft := range drafts {
		normalized, err := draft.normalize(DefaultTag)
		if err != nil {
			return nil, fmt.Errorf("draft %q > %w", draft.Question, err)
		}
		cards = append(cards, newFlashcard(normalized, s.newID(), now))
	}

	next := append(append([]Flashcard(nil), cards...), s.cards...)
	if err := s.commit(next); err != nil {
		return nil, err
	}
	return cards, nil
}

// Patch holds the updatable fields of a card. Nil fields are left alone.
// ID and CreatedAt are immutable and cannot appear in a patch.
type Patch struct {
	Question     *string
	Answer       *string
	Tag          *string
	LastReviewed *int64
	Difficulty   *Difficulty
}

// Update merges the patch into the card with the given id. An unknown id is
// a harmless no-op.
func (s *Store) Update(id string, patch Patch) error {
	index := -1
	for i, card := range s.cards {
		if card.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil
	}

	next := append([]Flashcard(nil), s.cards...)
	card := &next[index]
	if patch.Question != nil {
		card.Question = *patch.Question
	}
	if patch.Answer != nil {
		card.Answer = *patch.Answer
	}
	if patch.Tag != nil {
		card.Tag = *patch.Tag
	}
	if patch.LastReviewed != nil {
		card.LastReviewed = *patch.LastReviewed
	}
	if patch.Difficulty != nil {
		card.Difficulty = *patch.Difficulty
	}
	return s.commit(next)
}

// Remove deletes the card with the given id. An unknown id is a no-op.
func (s *Store) Remove(id string) error {
	next := lo.Reject(s.cards, func(card Flashcard, _ int) bool {
		return card.ID == id
	})
	if len(next) == len(s.cards) {
		return nil
	}
	return s.commit(next)
}

// Clear empties the collection.
func (s *Store) Clear() error {
	return s.commit(nil)
}

// Replace swaps the whole collection, e.g. when restoring a backup snapshot.
func (s *Store) Replace(cards []Flashcard) error {
	return s.commit(append([]Flashcard(nil), cards...))
}

// List returns a copy of the collection in its current order.
func (s *Store) List() []Flashcard {
	return append([]Flashcard(nil), s.cards...)
}

// Len returns the number of cards in the collection.
func (s *Store) Len() int {
	return len(s.cards)
}

// Get returns the card with the given id.
func (s *Store) Get(id string) (Flashcard, bool) {
	return lo.Find(s.cards, func(card Flashcard) bool {
		return card.ID == id
	})
}

// FilterByTag returns the cards carrying the given tag, in collection order.
func (s *Store) FilterByTag(tag string) []Flashcard {
	return lo.Filter(s.cards, func(card Flashcard, _ int) bool {
		return card.Tag == tag
	})
}

// Tags returns every tag in use with its card count.
func (s *Store) Tags() map[string]int {
	return lo.CountValuesBy(s.cards, func(card Flashcard) string {
		return card.Tag
	})
}
