// pkg/backup/backup_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (symlinks), afero in-memory filesystem
// PURPOSE: Test backup directory provisioning and backup-then-remove

package backup_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/seshanpillay25/contexthub/pkg/backup"
	"github.com/seshanpillay25/contexthub/pkg/errors"
	"github.com/seshanpillay25/contexthub/pkg/filesystem"
	"github.com/seshanpillay25/contexthub/pkg/testutil"
	"github.com/seshanpillay25/contexthub/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.Local)

func newManager(fs types.FS, root string) *backup.Manager {
	m := backup.New(fs, root, ".ai-tools-backup", ".gitignore")
	m.Now = func() time.Time { return fixedNow }
	return m
}

func TestEnsureDir(t *testing.T) {
	tests := []struct {
		name            string
		gitignore       *string
		preexistingDir  bool
		wantCreated     bool
		wantIgnoreAdded bool
		wantGitignore   string
	}{
		{
			name:        "no_gitignore",
			wantCreated: true,
		},
		{
			name:            "appends_to_gitignore",
			gitignore:       strPtr("node_modules/\n"),
			wantCreated:     true,
			wantIgnoreAdded: true,
			wantGitignore:   "node_modules/\n\n# AI tools backup\n.ai-tools-backup/\n",
		},
		{
			name:          "gitignore_already_has_entry",
			gitignore:     strPtr(".ai-tools-backup/\n"),
			wantCreated:   true,
			wantGitignore: ".ai-tools-backup/\n",
		},
		{
			name:           "existing_dir_leaves_gitignore_alone",
			gitignore:      strPtr("dist/\n"),
			preexistingDir: true,
			wantGitignore:  "dist/\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memFS := afero.NewMemMapFs()
			fs := filesystem.NewAferoFS(memFS)
			require.NoError(t, fs.MkdirAll("/project", 0755))
			if tt.gitignore != nil {
				require.NoError(t, fs.WriteFile("/project/.gitignore", []byte(*tt.gitignore), 0644))
			}
			if tt.preexistingDir {
				require.NoError(t, fs.MkdirAll("/project/.ai-tools-backup", 0755))
			}

			result, err := newManager(fs, "/project").EnsureDir()
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, result.Created)
			assert.Equal(t, tt.wantIgnoreAdded, result.IgnoreUpdated)

			info, err := fs.Stat("/project/.ai-tools-backup")
			require.NoError(t, err)
			assert.True(t, info.IsDir())

			if tt.gitignore != nil {
				content, err := fs.ReadFile("/project/.gitignore")
				require.NoError(t, err)
				assert.Equal(t, tt.wantGitignore, string(content))
			} else {
				_, err := fs.Stat("/project/.gitignore")
				assert.True(t, os.IsNotExist(err), "gitignore must not be created")
			}
		})
	}
}

func TestEnsureDir_NoDuplicateEntry(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.WriteFile("/project/.gitignore", []byte("bin/\n"), 0644))
	m := newManager(fs, "/project")

	_, err := m.EnsureDir()
	require.NoError(t, err)

	// Simulate a user deleting the directory between runs.
	require.NoError(t, fs.RemoveAll("/project/.ai-tools-backup"))
	_, err = m.EnsureDir()
	require.NoError(t, err)

	content, err := fs.ReadFile("/project/.gitignore")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), ".ai-tools-backup/"))
}

func TestEnsureDir_PathIsFile(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.WriteFile("/project/.ai-tools-backup", []byte("oops"), 0644))
	require.NoError(t, fs.WriteFile("/project/CLAUDE.md", []byte("notes"), 0644))
	m := newManager(fs, "/project")

	result, err := m.EnsureDir()
	require.NoError(t, err, "a blocked backup path must not abort the run")
	assert.True(t, result.Blocked)
	assert.False(t, result.Created)
	assert.False(t, result.IgnoreUpdated)

	_, err = m.Backup("/project/CLAUDE.md")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))

	content, err := fs.ReadFile("/project/CLAUDE.md")
	require.NoError(t, err)
	assert.Equal(t, "notes", string(content), "target must be left in place")

	content, err = fs.ReadFile("/project/.ai-tools-backup")
	require.NoError(t, err)
	assert.Equal(t, "oops", string(content))
}

func TestBackup_RegularFile(t *testing.T) {
	root := t.TempDir()
	fs := filesystem.NewOS()
	target := testutil.CreateFile(t, root, "CLAUDE.md", "original claude notes")
	mtime := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(target, mtime, mtime))
	require.NoError(t, os.Chmod(target, 0640))

	result, ok := newManager(fs, root).BackupAndRemove(target)
	require.True(t, ok)
	assert.Equal(t, backup.ActionBackedUp, result.Action)

	wantBackup := filepath.Join(root, ".ai-tools-backup", "CLAUDE.md_20250314_150926")
	assert.Equal(t, wantBackup, result.BackupPath)

	content, err := os.ReadFile(wantBackup)
	require.NoError(t, err)
	assert.Equal(t, "original claude notes", string(content))

	info, err := os.Stat(wantBackup)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime), "modification time should be preserved")
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())

	_, err = os.Lstat(target)
	assert.True(t, os.IsNotExist(err), "original should be removed")
}

func TestBackup_SameSecondCollision(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	m := newManager(fs, "/project")

	require.NoError(t, fs.WriteFile("/project/.cursorrules", []byte("one"), 0644))
	first, err := m.Backup("/project/.cursorrules")
	require.NoError(t, err)

	require.NoError(t, fs.WriteFile("/project/.cursorrules", []byte("two"), 0644))
	second, err := m.Backup("/project/.cursorrules")
	require.NoError(t, err)

	assert.NotEqual(t, first.BackupPath, second.BackupPath)
	content, err := fs.ReadFile(first.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, "one", string(content))
	content, err = fs.ReadFile(second.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, "two", string(content))
}

func TestBackup_Symlink(t *testing.T) {
	testutil.SkipOnWindows(t)
	root := t.TempDir()
	fs := filesystem.NewOS()
	master := testutil.CreateFile(t, root, ".ai-context.md", "master")
	link := filepath.Join(root, ".cursorrules")
	testutil.CreateSymlink(t, master, link)

	result, ok := newManager(fs, root).BackupAndRemove(link)
	require.True(t, ok)
	assert.Equal(t, backup.ActionRemovedLink, result.Action)
	assert.Empty(t, result.BackupPath)

	_, err := os.Lstat(link)
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(root, ".ai-tools-backup"))
	assert.True(t, os.IsNotExist(err), "removing a link must not create backups")

	content, err := os.ReadFile(master)
	require.NoError(t, err)
	assert.Equal(t, "master", string(content), "master file must survive")
}

func TestBackup_DanglingSymlink(t *testing.T) {
	testutil.SkipOnWindows(t)
	root := t.TempDir()
	link := filepath.Join(root, "CLAUDE.md")
	testutil.CreateSymlink(t, filepath.Join(root, "gone.md"), link)

	result, ok := newManager(filesystem.NewOS(), root).BackupAndRemove(link)
	require.True(t, ok)
	assert.Equal(t, backup.ActionRemovedLink, result.Action)
}

func TestBackup_Missing(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	result, ok := newManager(fs, "/project").BackupAndRemove("/project/CLAUDE.md")
	assert.True(t, ok)
	assert.Equal(t, backup.ActionNone, result.Action)
}

func TestBackup_DirectoryFails(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/project/CLAUDE.md", 0755))

	_, ok := newManager(fs, "/project").BackupAndRemove("/project/CLAUDE.md")
	assert.False(t, ok)
}

func strPtr(s string) *string { return &s }
