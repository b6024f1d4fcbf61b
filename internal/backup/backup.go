// Package backup writes and restores YAML snapshots of the flashcard
// collection. Snapshots are an escape hatch next to the primary storage
// surface, not part of the study flow.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fcoelho/flashdeck/internal/collection"
)

const snapshotPrefix = "flashcards-"

// WriteSnapshot serializes the cards into a timestamped YAML file inside
// dir and returns the snapshot path.
func WriteSnapshot(dir string, cards []collection.Flashcard, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s%s.yml", snapshotPrefix, now.Format("20060102-150405")))
	if err := writeYamlFile(path, cards); err != nil {
		return "", fmt.Errorf("writeYamlFile(%s) > %w", path, err)
	}
	return path, nil
}

// ReadSnapshot loads the cards stored in a snapshot file.
func ReadSnapshot(path string) ([]collection.Flashcard, error) {
	cards, err := readYamlFile[[]collection.Flashcard](path)
	if err != nil {
		return nil, fmt.Errorf("readYamlFile(%s) > %w", path, err)
	}
	return cards, nil
}

// LatestSnapshot returns the most recent snapshot path in dir. The
// timestamped names sort chronologically.
func LatestSnapshot(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("os.ReadDir(%s) > %w", dir, err)
	}

	var snapshots []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".yml" || len(name) <= len(snapshotPrefix) || name[:len(snapshotPrefix)] != snapshotPrefix {
			continue
		}
		snapshots = append(snapshots, name)
	}
	if len(snapshots) == 0 {
		return "", fmt.Errorf("no snapshots found in %s", dir)
	}

	sort.Strings(snapshots)
	return filepath.Join(dir, snapshots[len(snapshots)-1]), nil
}
