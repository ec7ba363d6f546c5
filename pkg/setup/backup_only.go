package setup

import (
	"github.com/seshanpillay25/contexthub/pkg/logging"
)

// BackupOnly provisions the backup directory and moves every existing
// ManagedLink target out of the way. The master and auxiliary files are
// never touched. Per-target failures are reported but do not fail the
// pass.
func (r *Runner) BackupOnly() error {
	logger := logging.GetLogger("setup")
	done := logging.LogOperationStart(logger, "backup-only")
	defer done()

	r.Reporter.Info("Creating backup directory and files...")

	manager := r.backupManager()
	if _, err := r.ensureBackupDir(manager); err != nil {
		return err
	}

	failed := 0
	for _, link := range r.Config.Links {
		res, ok := manager.BackupAndRemove(r.path(link.Path))
		if !ok {
			failed++
			r.Reporter.Error("Failed to backup %s", link.Path)
			continue
		}
		r.reportBackup(res, link.Path)
	}

	logger.Info().Int("failed", failed).Msg("Backup pass finished")
	r.Reporter.Success("Backup completed")
	return nil
}
