// Package study drives the sequential reveal-and-score loop over a list of
// flashcards. The caller filters and shuffles the list before starting;
// the engine only walks it in order.
package study

import (
	"errors"
	"math"

	"github.com/fcoelho/flashdeck/internal/collection"
)

// GoodThreshold is the minimum percentage for a run to count as a good
// outcome.
const GoodThreshold = 70

var (
	ErrNoCards           = errors.New("a study session needs at least one card")
	ErrNotRevealed       = errors.New("the answer must be revealed before scoring the card")
	ErrSessionComplete   = errors.New("the session is already complete")
	ErrSessionInProgress = errors.New("the session is still in progress")
)

// Outcome records the self-assessment for one card, in presentation order.
type Outcome struct {
	ID         string
	Remembered bool
}

// Session accumulates the result of one run through a card list.
type Session struct {
	Total              int
	Remembered         int
	NeedsReinforcement int
	Cards              []Outcome
}

// Percentage returns the remembered share of the run, rounded to the
// nearest integer.
func (s Session) Percentage() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.Remembered) / float64(s.Total)))
}

// IsGood reports whether the run reached the good-outcome threshold.
func (s Session) IsGood() bool {
	return s.Percentage() >= GoodThreshold
}

// State is the lifecycle phase of an Engine.
type State int

const (
	StateInProgress State = iota
	StateComplete
)

// Engine is the study-session state machine. It starts at the first card
// with the answer hidden, strictly alternates reveal and score, and becomes
// complete after the last card is answered. Invalid transitions fail
// instead of being silently absorbed.
type Engine struct {
	cards    []collection.Flashcard
	index    int
	revealed bool
	state    State
	session  Session
}

// NewEngine starts a session over the given cards. The list must not be
// empty; that check is the caller's responsibility and treated here as a
// precondition violation.
func NewEngine(cards []collection.Flashcard) (*Engine, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	return &Engine{
		cards:   append([]collection.Flashcard(nil), cards...),
		session: Session{Total: len(cards)},
	}, nil
}

// State returns the current lifecycle phase.
func (e *Engine) State() State {
	return e.state
}

// Index returns the zero-based position of the current card.
func (e *Engine) Index() int {
	return e.index
}

// Total returns the number of cards in the run.
func (e *Engine) Total() int {
	return len(e.cards)
}

// Current returns the card being studied. It reports false once the
// session is complete.
func (e *Engine) Current() (collection.Flashcard, bool) {
	if e.state == StateComplete {
		return collection.Flashcard{}, false
	}
	return e.cards[e.index], true
}

// Revealed reports whether the current card's answer is shown.
func (e *Engine) Revealed() bool {
	return e.revealed
}

// Flip toggles the current card between hidden and revealed. It has no
// effect on the session counters.
func (e *Engine) Flip() error {
	if e.state == StateComplete {
		return ErrSessionComplete
	}
	e.revealed = !e.revealed
	return nil
}

// Answer scores the current card and advances. It is only valid while the
// card is revealed. When the last card is answered, the session becomes
// complete and done is true exactly once.
func (e *Engine) Answer(remembered bool) (done bool, err error) {
	if e.state == StateComplete {
		return false, ErrSessionComplete
	}
	if !e.revealed {
		return false, ErrNotRevealed
	}

	card := e.cards[e.index]
	e.session.Cards = append(e.session.Cards, Outcome{ID: card.ID, Remembered: remembered})
	if remembered {
		e.session.Remembered++
	} else {
		e.session.NeedsReinforcement++
	}

	if e.index+1 == len(e.cards) {
		e.state = StateComplete
		return true, nil
	}
	e.index++
	e.revealed = false
	return false, nil
}

// Restart begins a fresh run over the same card list. It is only valid
// from the complete state; reshuffling is the caller's concern.
func (e *Engine) Restart() error {
	if e.state != StateComplete {
		return ErrSessionInProgress
	}
	e.index = 0
	e.revealed = false
	e.state = StateInProgress
	e.session = Session{Total: len(e.cards)}
	return nil
}

// Result returns a copy of the accumulated session.
func (e *Engine) Result() Session {
	result := e.session
	result.Cards = append([]Outcome(nil), e.session.Cards...)
	return result
}
