package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/fcoelho/flashdeck/internal/collection"
	"github.com/fcoelho/flashdeck/internal/study"
)

// StudyCLI runs the interactive study loop: show the question, reveal the
// answer, score the card, and on completion fold the outcomes back into the
// collection and offer a restart.
type StudyCLI struct {
	*InteractiveCLI
	store  *collection.Store
	engine *study.Engine
	now    func() time.Time
}

// NewStudyCLI starts a study session over cards. The caller has already
// filtered and shuffled the list; an empty list is rejected here.
func NewStudyCLI(
	base *InteractiveCLI,
	store *collection.Store,
	cards []collection.Flashcard,
) (*StudyCLI, error) {
	engine, err := study.NewEngine(cards)
	if err != nil {
		return nil, fmt.Errorf("study.NewEngine() > %w", err)
	}
	return &StudyCLI{
		InteractiveCLI: base,
		store:          store,
		engine:         engine,
		now:            time.Now,
	}, nil
}

// Session handles one card per call, or the completion summary once the
// last card has been answered.
func (r *StudyCLI) Session(ctx context.Context) error {
	if r.engine.State() == study.StateComplete {
		return r.completeSession()
	}

	card, ok := r.engine.Current()
	if !ok {
		return errEnd
	}

	fmt.Fprintf(r.stdoutWriter, "Card %d of %d", r.engine.Index()+1, r.engine.Total())
	if card.Tag != "" {
		fmt.Fprintf(r.stdoutWriter, "  [%s]", r.italic.Sprint(card.Tag))
	}
	fmt.Fprintln(r.stdoutWriter)
	fmt.Fprintf(r.stdoutWriter, "%s\n", r.bold.Sprint(card.Question))

	fmt.Fprint(r.stdoutWriter, "Press ENTER to reveal the answer (q to quit): ")
	input, err := r.readLine()
	if err != nil {
		return err
	}
	if input == "q" {
		return errEnd
	}

	if err := r.engine.Flip(); err != nil {
		return fmt.Errorf("engine.Flip() > %w", err)
	}
	fmt.Fprintf(r.stdoutWriter, "%s\n", r.italic.Sprint(card.Answer))

	remembered, err := r.confirm("Did you remember it?")
	if err != nil {
		return err
	}

	done, err := r.engine.Answer(remembered)
	if err != nil {
		return fmt.Errorf("engine.Answer() > %w", err)
	}
	fmt.Fprintln(r.stdoutWriter)

	if done {
		if err := study.RecordResults(r.store, r.engine.Result(), r.now()); err != nil {
			return fmt.Errorf("study.RecordResults() > %w", err)
		}
	}
	return nil
}

func (r *StudyCLI) completeSession() error {
	session := r.engine.Result()

	if session.IsGood() {
		verdict := color.New(color.FgGreen).Sprintf("Excellent! %d%% remembered", session.Percentage())
		fmt.Fprintf(r.stdoutWriter, "✅ %s\n", verdict)
	} else {
		verdict := color.New(color.FgRed).Sprintf("Keep practicing! %d%% remembered", session.Percentage())
		fmt.Fprintf(r.stdoutWriter, "❌ %s\n", verdict)
	}
	fmt.Fprintf(r.stdoutWriter, "Remembered: %d    Needs reinforcement: %d\n",
		session.Remembered, session.NeedsReinforcement)

	again, err := r.confirm("Study again?")
	if err != nil {
		return err
	}
	if !again {
		return errEnd
	}

	if err := r.engine.Restart(); err != nil {
		return fmt.Errorf("engine.Restart() > %w", err)
	}
	fmt.Fprintln(r.stdoutWriter)
	return nil
}
