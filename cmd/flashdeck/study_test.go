package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fcoelho/flashdeck/internal/testutil"
)

func TestNewStudyCommand_RunE_InvalidConfig(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	cmd := newStudyCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewStudyCommand_RunE_EmptyCollection(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	cmd := newStudyCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no flashcards to study")
}

func TestNewStudyCommand_RunE_TagWithoutCards(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	cmd := newStudyCommand()
	cmd.SetArgs([]string{"--tag", "nonexistent"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no flashcards to study")
}
