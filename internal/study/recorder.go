package study

import (
	"fmt"
	"time"

	"github.com/fcoelho/flashdeck/internal/collection"
)

// RecordResults folds a finished session back into the collection: each
// answered card gets its last-reviewed timestamp and a difficulty of easy
// when remembered, hard otherwise. This is the only place those two fields
// are written.
func RecordResults(store *collection.Store, session Session, now time.Time) error {
	reviewedAt := now.UnixMilli()
	for _, outcome := range session.Cards {
		difficulty := collection.DifficultyHard
		if outcome.Remembered {
			difficulty = collection.DifficultyEasy
		}
		err := store.Update(outcome.ID, collection.Patch{
			LastReviewed: &reviewedAt,
			Difficulty:   &difficulty,
		})
		if err != nil {
			return fmt.Errorf("store.Update(%s) > %w", outcome.ID, err)
		}
	}
	return nil
}
