package collection

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDBPersistenceForTest(t *testing.T) (*DBPersistence, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS flashcards").
		WillReturnResult(sqlmock.NewResult(0, 0))

	persistence, err := NewDBPersistence(sqlx.NewDb(db, "mysql"))
	require.NoError(t, err)
	return persistence, mock
}

func TestDBPersistence_Load(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []Flashcard
		wantErr   bool
	}{
		{
			name: "returns cards in position order",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{
					"position", "id", "pergunta", "resposta", "tag", "created_at", "last_reviewed", "difficulty",
				}).
					AddRow(0, "c-1", "Q1", "A1", "geral", 100, 300, "easy").
					AddRow(1, "c-2", "Q2", "A2", "história", 200, 0, "")
				mock.ExpectQuery("SELECT \\* FROM flashcards ORDER BY position").WillReturnRows(rows)
			},
			want: []Flashcard{
				{ID: "c-1", Question: "Q1", Answer: "A1", Tag: "geral", CreatedAt: 100, LastReviewed: 300, Difficulty: DifficultyEasy},
				{ID: "c-2", Question: "Q2", Answer: "A2", Tag: "história", CreatedAt: 200},
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM flashcards ORDER BY position").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			persistence, mock := newDBPersistenceForTest(t)
			tt.setupMock(mock)

			got, err := persistence.Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBPersistence_Save(t *testing.T) {
	cards := []Flashcard{
		{ID: "c-1", Question: "Q1", Answer: "A1", Tag: "geral", CreatedAt: 100},
		{ID: "c-2", Question: "Q2", Answer: "A2", Tag: "história", CreatedAt: 200, LastReviewed: 300, Difficulty: DifficultyHard},
	}

	t.Run("rewrites the table in one transaction", func(t *testing.T) {
		persistence, mock := newDBPersistenceForTest(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM flashcards").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO flashcards").
			WithArgs(0, "c-1", "Q1", "A1", "geral", int64(100), int64(0), "").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO flashcards").
			WithArgs(1, "c-2", "Q2", "A2", "história", int64(200), int64(300), "hard").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, persistence.Save(cards))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("an insert failure rolls back", func(t *testing.T) {
		persistence, mock := newDBPersistenceForTest(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM flashcards").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO flashcards").
			WillReturnError(fmt.Errorf("duplicate key"))
		mock.ExpectRollback()

		assert.Error(t, persistence.Save(cards))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
