//go:build unix

package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)
	assert.True(t, fs.SupportsSymlinks(), "unix builds should support symlinks")

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "save.dat")
	testContent := []byte("slot 1")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "save.dat", info.Name())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(tmpDir, "repo", "game")
	require.NoError(t, fs.MkdirAll(subDir, 0755))

	moved := filepath.Join(subDir, "save.dat")
	require.NoError(t, fs.Rename(testFile, moved))
	_, err = fs.Lstat(testFile)
	assert.True(t, os.IsNotExist(err), "rename should remove the old path")
}

func TestOSFS_Symlink(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "target")
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, fs.WriteFile(target, []byte("data"), 0644))

	require.NoError(t, fs.Symlink(target, link))

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode()&os.ModeSymlink != 0, "Lstat should not follow the link")

	dest, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, dest)

	info, err = fs.Stat(link)
	require.NoError(t, err)
	assert.False(t, info.Mode()&os.ModeSymlink != 0, "Stat should follow the link")
}
