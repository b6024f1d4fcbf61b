// Package testutil provides shared test helpers for creating config files and collection fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fcoelho/flashdeck/internal/collection"
)

// SetupTestConfig creates a minimal config file with file storage and all
// required directories under tmpDir. Returns the path to the generated
// config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "data"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "backups"), 0755))

	configContent := fmt.Sprintf(`storage:
  driver: file
  file: %s
backups:
  directory: %s
generation:
  mode: mock
`,
		CollectionPath(tmpDir),
		filepath.Join(tmpDir, "backups"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CollectionPath returns the collection file path used by SetupTestConfig.
func CollectionPath(tmpDir string) string {
	return filepath.Join(tmpDir, "data", "flashcards.json")
}

// WriteCollection writes cards to the collection file that SetupTestConfig
// points the storage driver at.
func WriteCollection(t *testing.T, tmpDir string, cards []collection.Flashcard) {
	t.Helper()

	data, err := json.MarshalIndent(cards, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(CollectionPath(tmpDir), data, 0644))
}

// ReadCollection reads the collection file back for assertions.
func ReadCollection(t *testing.T, tmpDir string) []collection.Flashcard {
	t.Helper()

	data, err := os.ReadFile(CollectionPath(tmpDir))
	require.NoError(t, err)

	var cards []collection.Flashcard
	require.NoError(t, json.Unmarshal(data, &cards))
	return cards
}
