// Package linker materializes ManagedLinks: it clears the target path
// through the backup manager and then creates a symlink to, or a copy of,
// the master file.
package linker

import (
	"os"
	"path/filepath"

	"github.com/seshanpillay25/contexthub/pkg/backup"
	"github.com/seshanpillay25/contexthub/pkg/errors"
	"github.com/seshanpillay25/contexthub/pkg/filesystem"
	"github.com/seshanpillay25/contexthub/pkg/logging"
	"github.com/seshanpillay25/contexthub/pkg/types"
)

// Outcome describes what Materialize did for one target.
type Outcome struct {
	Target      string
	Source      string
	Description string
	Strategy    types.Strategy
	// CreatedDir is the parent directory created for the target, if any.
	CreatedDir string
	Backup     backup.Result
}

// Linker creates symlinks or copies of the master file.
type Linker struct {
	FS     types.FS
	Backup *backup.Manager
}

// New creates a Linker.
func New(fs types.FS, b *backup.Manager) *Linker {
	return &Linker{FS: fs, Backup: b}
}

// Materialize makes target a symlink to, or a copy of, source. An existing
// target is backed up and removed first; if that fails the target is left
// alone and an ErrBackupFailed error is returned.
func (l *Linker) Materialize(target, source, description string, strategy types.Strategy) (Outcome, error) {
	logger := logging.GetLogger("linker").With().
		Str("target", target).
		Str("strategy", strategy.String()).
		Logger()
	done := logging.LogOperationStart(logger, "materialize")
	defer done()

	outcome := Outcome{
		Target:      target,
		Source:      source,
		Description: description,
		Strategy:    strategy,
	}

	created, err := l.ensureParent(target)
	if err != nil {
		return outcome, err
	}
	outcome.CreatedDir = created

	result, err := l.Backup.Backup(target)
	outcome.Backup = result
	if err != nil {
		return outcome, errors.Wrapf(err, errors.ErrBackupFailed, "failed to clear %s", target)
	}

	absSource, err := filepath.Abs(source)
	if err != nil {
		return outcome, errors.Wrapf(err, errors.ErrPathResolve, "failed to resolve %s", source)
	}
	outcome.Source = absSource

	switch strategy {
	case types.StrategySymlink:
		if err := l.FS.Symlink(absSource, target); err != nil {
			return outcome, errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to create link: %s → %s", target, absSource)
		}
	case types.StrategyCopy:
		if err := filesystem.CopyFile(l.FS, absSource, target); err != nil {
			return outcome, errors.Wrapf(err, errors.ErrFileCopy, "failed to copy %s to %s", absSource, target)
		}
	default:
		return outcome, errors.Newf(errors.ErrInternal, "unknown strategy %d", strategy)
	}

	logger.Debug().Str("source", absSource).Msg("Materialized link")
	return outcome, nil
}

// ensureParent creates the target's parent directory and returns it when
// it did not exist before.
func (l *Linker) ensureParent(target string) (string, error) {
	parent := filepath.Dir(target)
	if _, err := l.FS.Stat(parent); err == nil {
		return "", nil
	} else if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", parent)
	}

	if err := l.FS.MkdirAll(parent, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", parent)
	}
	return parent, nil
}
