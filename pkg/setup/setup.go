// Package setup runs the ContextHub workflows: the full setup, the
// read-only verification and the backup-only pass. It sequences the
// probe, strategy, templates, backup, linker and verify packages and
// reports progress through a style.Reporter.
package setup

import (
	"path/filepath"
	"runtime"
	"time"

	"github.com/seshanpillay25/contexthub/pkg/backup"
	"github.com/seshanpillay25/contexthub/pkg/config"
	"github.com/seshanpillay25/contexthub/pkg/errors"
	"github.com/seshanpillay25/contexthub/pkg/filesystem"
	"github.com/seshanpillay25/contexthub/pkg/linker"
	"github.com/seshanpillay25/contexthub/pkg/logging"
	"github.com/seshanpillay25/contexthub/pkg/probe"
	"github.com/seshanpillay25/contexthub/pkg/strategy"
	"github.com/seshanpillay25/contexthub/pkg/style"
	"github.com/seshanpillay25/contexthub/pkg/templates"
	"github.com/seshanpillay25/contexthub/pkg/types"
	"github.com/seshanpillay25/contexthub/pkg/verify"
)

// Runner holds everything a workflow needs. All paths in Config are
// relative to Root.
type Runner struct {
	FS       types.FS
	Root     string
	Config   *config.Config
	Prober   probe.Prober
	Platform string
	Reporter *style.Reporter
	Now      func() time.Time
}

// New returns a Runner for the real filesystem and the current platform.
func New(root string, cfg *config.Config, reporter *style.Reporter) *Runner {
	return &Runner{
		FS:       filesystem.NewOS(),
		Root:     root,
		Config:   cfg,
		Prober:   probe.New(root),
		Platform: runtime.GOOS,
		Reporter: reporter,
		Now:      time.Now,
	}
}

// Options tune a full setup run.
type Options struct {
	ForceCopy bool
	Banner    bool
}

// LinkResult is the per-target outcome of a run.
type LinkResult struct {
	Link    types.ManagedLink
	Outcome linker.Outcome
	Err     error
}

// Result summarizes a full setup run.
type Result struct {
	Strategy      types.Strategy
	MasterCreated bool
	AuxCreated    bool
	BackupDir     backup.DirResult
	Links         []LinkResult
	SuccessCount  int
	Total         int
	Verification  *verify.Report
}

// Succeeded is true when every target was materialized and verification
// passed.
func (r *Result) Succeeded() bool {
	return r.SuccessCount == r.Total && r.Verification != nil && r.Verification.OK()
}

// Run performs the full setup. Per-target failures are reported and
// counted; only failures that make the rest of the run meaningless are
// returned as errors.
func (r *Runner) Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("setup")
	done := logging.LogOperationStart(logger, "setup")
	defer done()

	out := r.Reporter
	if opts.Banner {
		out.Banner()
	}
	out.Info("Starting ContextHub setup...")
	out.Blank()

	in := strategy.Input{
		ForceCopy:        opts.ForceCopy,
		Platform:         r.Platform,
		SymlinkSupported: r.Prober.SupportsSymlinks(),
		Privileged:       r.Prober.IsPrivileged(),
	}
	result := &Result{
		Strategy: strategy.Select(in),
		Total:    len(r.Config.Links),
	}
	logger.Info().
		Str("platform", in.Platform).
		Bool("symlinks", in.SymlinkSupported).
		Bool("privileged", in.Privileged).
		Bool("forceCopy", in.ForceCopy).
		Str("strategy", result.Strategy.String()).
		Msg("Selected strategy")

	if result.Strategy == types.StrategySymlink {
		out.Info("Using symlinks")
	} else {
		out.Info("Using file copying (compatibility mode)")
		if strategy.NeedsElevationHint(in) {
			out.Warning("Symlinks require administrator privileges on Windows")
			out.Warning("Consider running as administrator for symlink support")
		}
	}

	created, err := r.ensureMaster()
	if err != nil {
		return result, err
	}
	result.MasterCreated = created

	manager := r.backupManager()
	dirResult, err := r.ensureBackupDir(manager)
	if err != nil {
		return result, err
	}
	result.BackupDir = dirResult

	out.Info("Creating configurations for AI tools...")
	lk := linker.New(r.FS, manager)
	master := r.path(r.Config.Files.Master)
	for _, link := range r.Config.Links {
		lr := r.materialize(lk, link, master, result.Strategy)
		if lr.Err == nil {
			result.SuccessCount++
		}
		result.Links = append(result.Links, lr)
	}

	auxCreated, err := r.ensureAux()
	if err != nil {
		return result, err
	}
	result.AuxCreated = auxCreated

	out.Blank()
	out.Info("Setup Summary:")
	out.Info("- Master file: %s", r.Config.Files.Master)
	out.Info("- Successful configurations: %d/%d", result.SuccessCount, result.Total)
	out.Info("- Backup directory: %s", r.Config.Files.BackupDir)
	out.Info("- Method: %s", result.Strategy.Method())

	out.Blank()
	result.Verification = r.Verify()

	out.Blank()
	if result.Succeeded() {
		out.Success("🎉 ContextHub setup completed successfully!")
		out.Blank()
		out.Markdown(NextSteps(r.Config.Files.Master))
	} else {
		out.Warning("Setup completed with some issues. Please check the logs above.")
		out.Blank()
		out.Markdown(Troubleshooting())
	}

	logger.Info().
		Int("succeeded", result.SuccessCount).
		Int("total", result.Total).
		Bool("verified", result.Verification.OK()).
		Msg("Setup finished")
	return result, nil
}

func (r *Runner) materialize(lk *linker.Linker, link types.ManagedLink, master string, s types.Strategy) LinkResult {
	out := r.Reporter
	target := r.path(link.Path)

	outcome, err := lk.Materialize(target, master, link.Description, s)
	lr := LinkResult{Link: link, Outcome: outcome, Err: err}

	if outcome.CreatedDir != "" {
		out.Info("Created directory: %s", r.rel(outcome.CreatedDir))
	}
	if err != nil {
		logger := logging.GetLogger("setup")
		logger.Error().Err(err).Str("target", link.Path).Msg("Failed to materialize link")
		if errors.IsErrorCode(err, errors.ErrBackupFailed) {
			out.Error("Failed to backup %s: %v", link.Path, err)
		} else {
			out.Error("Failed to create link: %s → %s: %v", link.Path, r.Config.Files.Master, err)
		}
		return lr
	}

	r.reportBackup(outcome.Backup, link.Path)
	if s == types.StrategySymlink {
		out.Success("Created symlink: %s → %s (%s)", link.Path, r.Config.Files.Master, link.Description)
	} else {
		out.Success("Created copy: %s ← %s (%s)", link.Path, r.Config.Files.Master, link.Description)
	}
	return lr
}

func (r *Runner) reportBackup(res backup.Result, display string) {
	switch res.Action {
	case backup.ActionRemovedLink:
		r.Reporter.Info("Removed existing symlink: %s", display)
	case backup.ActionBackedUp:
		r.Reporter.Info("Backed up existing %s to %s", display, r.rel(res.BackupPath))
	}
}

func (r *Runner) ensureMaster() (bool, error) {
	name := r.Config.Files.Master
	created, err := templates.EnsureFile(r.FS, r.path(name), templates.MasterContent())
	if err != nil {
		return false, err
	}
	if created {
		r.Reporter.Info("Creating master configuration file: %s", name)
		r.Reporter.Success("Created %s with basic template", name)
	} else {
		r.Reporter.Info("Master configuration file already exists: %s", name)
	}
	return created, nil
}

func (r *Runner) ensureAux() (bool, error) {
	name := r.Config.Files.Aux
	content, err := templates.AiderContent(r.Config.Files.Master)
	if err != nil {
		return false, err
	}
	created, err := templates.EnsureFile(r.FS, r.path(name), content)
	if err != nil {
		return false, err
	}
	if created {
		r.Reporter.Info("Creating Aider configuration: %s", name)
		r.Reporter.Success("Created %s", name)
	} else {
		r.Reporter.Info("Aider configuration already exists: %s", name)
	}
	return created, nil
}

func (r *Runner) backupManager() *backup.Manager {
	m := backup.New(r.FS, r.Root, r.Config.Files.BackupDir, r.Config.Files.Ignore)
	if r.Now != nil {
		m.Now = r.Now
	}
	return m
}

func (r *Runner) ensureBackupDir(m *backup.Manager) (backup.DirResult, error) {
	res, err := m.EnsureDir()
	if err != nil {
		return res, err
	}
	if res.Created {
		r.Reporter.Info("Created backup directory: %s", r.Config.Files.BackupDir)
	}
	if res.Blocked {
		r.Reporter.Warning("%s exists and is not a directory; existing files cannot be backed up", r.Config.Files.BackupDir)
	}
	if res.IgnoreUpdated {
		r.Reporter.Info("Added %s to %s", r.Config.Files.BackupDir, r.Config.Files.Ignore)
	}
	return res, nil
}

func (r *Runner) path(rel string) string {
	return filepath.Join(r.Root, filepath.FromSlash(rel))
}

// rel shortens an absolute path under Root for display.
func (r *Runner) rel(path string) string {
	if rel, err := filepath.Rel(r.Root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}
