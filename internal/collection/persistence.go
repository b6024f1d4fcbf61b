package collection

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Persistence is the storage surface behind a Store. Save always receives
// the full collection; there are no partial writes.
type Persistence interface {
	Load() ([]Flashcard, error)
	Save(cards []Flashcard) error
}

// FilePersistence stores the collection as an indented JSON array in a
// single file. A missing file loads as an empty collection.
type FilePersistence struct {
	path string
}

func NewFilePersistence(path string) *FilePersistence {
	return &FilePersistence{path: path}
}

func (p *FilePersistence) Load() ([]Flashcard, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", p.path, err)
	}

	var cards []Flashcard
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", p.path, err)
	}
	return cards, nil
}

func (p *FilePersistence) Save(cards []Flashcard) error {
	if cards == nil {
		cards = []Flashcard{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent() > %w", err)
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(p.path, data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", p.path, err)
	}
	return nil
}

// MemoryPersistence keeps the collection in memory. It exists for tests and
// for callers that want a store without a durable surface.
type MemoryPersistence struct {
	cards []Flashcard
	saves int
}

func NewMemoryPersistence(initial []Flashcard) *MemoryPersistence {
	return &MemoryPersistence{cards: append([]Flashcard(nil), initial...)}
}

func (p *MemoryPersistence) Load() ([]Flashcard, error) {
	return append([]Flashcard(nil), p.cards...), nil
}

func (p *MemoryPersistence) Save(cards []Flashcard) error {
	p.cards = append([]Flashcard(nil), cards...)
	p.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (p *MemoryPersistence) Saves() int {
	return p.saves
}
