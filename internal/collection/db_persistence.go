package collection

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DBPersistence stores the collection in a MySQL table. Each Save rewrites
// the whole table inside one transaction, mirroring the file surface's
// full-collection writes; the position column keeps the collection order.
type DBPersistence struct {
	db *sqlx.DB
}

const flashcardsSchema = `
CREATE TABLE IF NOT EXISTS flashcards (
	position INT NOT NULL,
	id VARCHAR(64) NOT NULL,
	pergunta TEXT NOT NULL,
	resposta TEXT NOT NULL,
	tag VARCHAR(255) NOT NULL,
	created_at BIGINT NOT NULL,
	last_reviewed BIGINT NOT NULL DEFAULT 0,
	difficulty VARCHAR(16) NOT NULL DEFAULT '',
	PRIMARY KEY (id),
	INDEX idx_flashcards_position (position)
)`

// NewDBPersistence initializes the schema and returns a database-backed
// persistence surface.
func NewDBPersistence(db *sqlx.DB) (*DBPersistence, error) {
	if _, err := db.Exec(flashcardsSchema); err != nil {
		return nil, fmt.Errorf("db.Exec(create flashcards) > %w", err)
	}
	return &DBPersistence{db: db}, nil
}

// flashcardRow maps a table row to the Flashcard model.
type flashcardRow struct {
	Position     int    `db:"position"`
	ID           string `db:"id"`
	Question     string `db:"pergunta"`
	Answer       string `db:"resposta"`
	Tag          string `db:"tag"`
	CreatedAt    int64  `db:"created_at"`
	LastReviewed int64  `db:"last_reviewed"`
	Difficulty   string `db:"difficulty"`
}

func (p *DBPersistence) Load() ([]Flashcard, error) {
	var rows []flashcardRow
	if err := p.db.Select(&rows, "SELECT * FROM flashcards ORDER BY position"); err != nil {
		return nil, fmt.Errorf("db.Select(flashcards) > %w", err)
	}

	cards := make([]Flashcard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, Flashcard{
			ID:           row.ID,
			Question:     row.Question,
			Answer:       row.Answer,
			Tag:          row.Tag,
			CreatedAt:    row.CreatedAt,
			LastReviewed: row.LastReviewed,
			Difficulty:   Difficulty(row.Difficulty),
		})
	}
	return cards, nil
}

func (p *DBPersistence) Save(cards []Flashcard) error {
	tx, err := p.db.Beginx()
	if err != nil {
		return fmt.Errorf("db.Beginx() > %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM flashcards"); err != nil {
		return fmt.Errorf("tx.Exec(delete flashcards) > %w", err)
	}

	for position, card := range cards {
		_, err := tx.Exec(
			`INSERT INTO flashcards (position, id, pergunta, resposta, tag, created_at, last_reviewed, difficulty)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			position, card.ID, card.Question, card.Answer, card.Tag,
			card.CreatedAt, card.LastReviewed, string(card.Difficulty),
		)
		if err != nil {
			return fmt.Errorf("tx.Exec(insert flashcard %s) > %w", card.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
