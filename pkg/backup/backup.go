// Package backup moves displaced target files out of the way before they
// are replaced, and provisions the directory that holds them.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/seshanpillay25/contexthub/pkg/errors"
	"github.com/seshanpillay25/contexthub/pkg/filesystem"
	"github.com/seshanpillay25/contexthub/pkg/logging"
	"github.com/seshanpillay25/contexthub/pkg/types"
)

// TimestampFormat is appended to backup file names.
const TimestampFormat = "20060102_150405"

// Action describes what Backup did with a path.
type Action int

const (
	// ActionNone means the path did not exist.
	ActionNone Action = iota
	// ActionRemovedLink means a symlink was removed without a backup.
	ActionRemovedLink
	// ActionBackedUp means a regular file was copied aside and removed.
	ActionBackedUp
)

// Result reports the outcome of a single Backup call.
type Result struct {
	Path       string
	Action     Action
	BackupPath string
}

// DirResult reports the outcome of EnsureDir.
type DirResult struct {
	Created        bool
	IgnoreUpdated  bool
	IgnoreFilePath string

	// Blocked is set when something other than a directory occupies the
	// backup path.
	Blocked bool
}

// Manager owns the backup directory of one project.
type Manager struct {
	FS types.FS
	// Root is the project root; Dir and IgnoreFile are relative to it.
	Root       string
	Dir        string
	IgnoreFile string
	Now        func() time.Time
}

// New creates a Manager using the wall clock.
func New(fs types.FS, root, dir, ignoreFile string) *Manager {
	return &Manager{
		FS:         fs,
		Root:       root,
		Dir:        dir,
		IgnoreFile: ignoreFile,
		Now:        time.Now,
	}
}

// DirPath returns the backup directory location.
func (m *Manager) DirPath() string {
	return filepath.Join(m.Root, m.Dir)
}

// IgnoreEntry is the line registered in the ignore file.
func (m *Manager) IgnoreEntry() string {
	return filepath.ToSlash(filepath.Clean(m.Dir)) + "/"
}

// EnsureDir creates the backup directory if it is missing. On creation it
// also registers the directory in the ignore file, when that file exists
// and does not mention the directory yet. A non-directory already sitting
// at the backup path is only logged; Backup then fails for each target
// that needs a copy while the others are still linked.
func (m *Manager) EnsureDir() (DirResult, error) {
	logger := logging.GetLogger("backup")
	dir := m.DirPath()
	var result DirResult

	if info, err := m.FS.Stat(dir); err == nil {
		if !info.IsDir() {
			logger.Warn().Str("path", dir).Msg("Backup path exists and is not a directory")
			result.Blocked = true
		}
		return result, nil
	} else if !os.IsNotExist(err) {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "failed to check backup directory %s", dir)
	}

	if err := m.FS.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create backup directory %s", dir)
	}
	result.Created = true
	logger.Info().Str("path", dir).Msg("Created backup directory")

	updated, err := m.registerIgnore()
	if err != nil {
		return result, err
	}
	result.IgnoreUpdated = updated
	if updated {
		result.IgnoreFilePath = filepath.Join(m.Root, m.IgnoreFile)
	}

	return result, nil
}

func (m *Manager) registerIgnore() (bool, error) {
	if m.IgnoreFile == "" {
		return false, nil
	}
	path := filepath.Join(m.Root, m.IgnoreFile)

	content, err := m.FS.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	name := filepath.ToSlash(filepath.Clean(m.Dir))
	if strings.Contains(string(content), name) {
		return false, nil
	}

	info, err := m.FS.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}

	updated := append(content, []byte(fmt.Sprintf("\n# AI tools backup\n%s\n", m.IgnoreEntry()))...)
	if err := m.FS.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to update %s", path)
	}

	logger := logging.GetLogger("backup")
	logger.Info().Str("path", path).Str("entry", m.IgnoreEntry()).Msg("Registered backup directory in ignore file")
	return true, nil
}

// Backup clears path so it can be replaced. Symlinks are removed outright
// because the master file stays the source of truth. Regular files are
// copied into the backup directory as <name>_<timestamp> with their mode
// and modification time, then removed. A missing path is a no-op.
func (m *Manager) Backup(path string) (Result, error) {
	result := Result{Path: path}

	info, err := m.FS.Lstat(path)
	if os.IsNotExist(err) {
		return result, nil
	} else if err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", path)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if err := m.FS.Remove(path); err != nil {
			return result, errors.Wrapf(err, errors.ErrBackupFailed, "failed to remove existing symlink %s", path)
		}
		result.Action = ActionRemovedLink
		return result, nil
	}

	if info.IsDir() {
		return result, errors.Newf(errors.ErrBackupFailed, "%s is a directory", path)
	}

	if err := m.makeDir(); err != nil {
		return result, err
	}

	backupPath := m.backupPath(filepath.Base(path))
	if err := filesystem.CopyFile(m.FS, path, backupPath); err != nil {
		return result, errors.Wrapf(err, errors.ErrBackupFailed, "failed to back up %s", path).
			WithDetail("backup", backupPath)
	}
	if err := m.FS.Remove(path); err != nil {
		return result, errors.Wrapf(err, errors.ErrBackupFailed, "failed to remove %s after backup", path).
			WithDetail("backup", backupPath)
	}

	result.Action = ActionBackedUp
	result.BackupPath = backupPath
	return result, nil
}

// BackupAndRemove is Backup for callers that only need a success flag.
// Failures are logged at error level.
func (m *Manager) BackupAndRemove(path string) (Result, bool) {
	result, err := m.Backup(path)
	if err != nil {
		logger := logging.GetLogger("backup")
		logger.Error().Err(err).Str("path", path).Msg("Failed to back up file")
		return result, false
	}
	return result, true
}

func (m *Manager) makeDir() error {
	dir := m.DirPath()
	if info, err := m.FS.Stat(dir); err == nil && !info.IsDir() {
		return errors.Newf(errors.ErrDirCreate, "backup path %s exists and is not a directory", dir)
	}
	if err := m.FS.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create backup directory %s", dir)
	}
	return nil
}

// backupPath picks a free name for base. A numeric suffix is added when a
// backup with the same second-granularity timestamp already exists.
func (m *Manager) backupPath(base string) string {
	stamp := m.Now().Format(TimestampFormat)
	candidate := filepath.Join(m.DirPath(), fmt.Sprintf("%s_%s", base, stamp))
	for i := 1; ; i++ {
		if _, err := m.FS.Lstat(candidate); err != nil {
			return candidate
		}
		candidate = filepath.Join(m.DirPath(), fmt.Sprintf("%s_%s_%d", base, stamp, i))
	}
}
