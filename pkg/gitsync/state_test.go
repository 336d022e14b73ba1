// pkg/gitsync/state_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: temp directories
// PURPOSE: Test the pull state file and the in-progress guard

package gitsync

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInProgress(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		assert.Equal(t, "", inProgress(t.TempDir()))
	})

	for _, dir := range []string{"rebase-merge", "rebase-apply"} {
		t.Run(dir, func(t *testing.T) {
			gitDir := t.TempDir()
			require.NoError(t, os.Mkdir(filepath.Join(gitDir, dir), 0755))
			assert.Equal(t, "git", inProgress(gitDir))
		})
	}

	t.Run("own_state", func(t *testing.T) {
		gitDir := t.TempDir()
		require.NoError(t, saveState(gitDir, &rebaseState{HeadName: "refs/heads/main"}))
		assert.Equal(t, "savesync", inProgress(gitDir))

		require.NoError(t, removeState(gitDir))
		assert.Equal(t, "", inProgress(gitDir))
	})
}

func TestStateProgressSurvivesReload(t *testing.T) {
	gitDir := t.TempDir()
	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s := &rebaseState{
		HeadName: "refs/heads/main",
		OrigHead: "1111111111111111111111111111111111111111",
		Onto:     "2222222222222222222222222222222222222222",
		Steps:    []string{"3333333333333333333333333333333333333333", "4444444444444444444444444444444444444444"},
		Started:  started,
	}
	require.NoError(t, saveState(gitDir, s))

	s.Done++
	require.NoError(t, saveState(gitDir, s))

	loaded, err := loadState(gitDir)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Done)
	assert.Equal(t, s.Steps, loaded.Steps)
	assert.True(t, started.Equal(loaded.Started))
	assert.NoFileExists(t, statePath(gitDir)+".tmp")
}

func TestRemoveStateMissingIsFine(t *testing.T) {
	assert.NoError(t, removeState(t.TempDir()))
}
