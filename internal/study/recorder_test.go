package study_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcoelho/flashdeck/internal/collection"
	"github.com/fcoelho/flashdeck/internal/study"
)

func TestRecordResults(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cards := []collection.Flashcard{
		{ID: "card-1", Question: "Q1", Answer: "A1", Tag: "geral", CreatedAt: 100},
		{ID: "card-2", Question: "Q2", Answer: "A2", Tag: "geral", CreatedAt: 200, LastReviewed: 50, Difficulty: collection.DifficultyEasy},
		{ID: "card-3", Question: "Q3", Answer: "A3", Tag: "geral", CreatedAt: 300},
	}

	t.Run("stamps each answered card", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryPersistence(cards))
		session := study.Session{
			Total:              3,
			Remembered:         2,
			NeedsReinforcement: 1,
			Cards: []study.Outcome{
				{ID: "card-1", Remembered: true},
				{ID: "card-2", Remembered: false},
				{ID: "card-3", Remembered: true},
			},
		}

		require.NoError(t, study.RecordResults(store, session, now))

		card1, ok := store.Get("card-1")
		require.True(t, ok)
		assert.Equal(t, now.UnixMilli(), card1.LastReviewed)
		assert.Equal(t, collection.DifficultyEasy, card1.Difficulty)

		card2, ok := store.Get("card-2")
		require.True(t, ok)
		assert.Equal(t, now.UnixMilli(), card2.LastReviewed)
		assert.Equal(t, collection.DifficultyHard, card2.Difficulty)

		card3, ok := store.Get("card-3")
		require.True(t, ok)
		assert.Equal(t, now.UnixMilli(), card3.LastReviewed)
		assert.Equal(t, collection.DifficultyEasy, card3.Difficulty)
	})

	t.Run("leaves unanswered cards untouched", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryPersistence(cards))
		session := study.Session{
			Total:      3,
			Remembered: 1,
			Cards:      []study.Outcome{{ID: "card-1", Remembered: true}},
		}

		require.NoError(t, study.RecordResults(store, session, now))

		card3, ok := store.Get("card-3")
		require.True(t, ok)
		assert.Zero(t, card3.LastReviewed)
		assert.Empty(t, card3.Difficulty)
	})

	t.Run("a card removed mid-session is skipped", func(t *testing.T) {
		store := collection.NewStore(collection.NewMemoryPersistence(cards))
		session := study.Session{
			Total:      2,
			Remembered: 2,
			Cards: []study.Outcome{
				{ID: "card-1", Remembered: true},
				{ID: "gone", Remembered: true},
			},
		}

		require.NoError(t, study.RecordResults(store, session, now))

		card1, ok := store.Get("card-1")
		require.True(t, ok)
		assert.Equal(t, now.UnixMilli(), card1.LastReviewed)
	})
}
