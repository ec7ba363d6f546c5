// Package verify scans a project and reports how each managed file is
// materialized. It never writes.
package verify

import (
	"os"
	"path/filepath"

	"github.com/seshanpillay25/contexthub/pkg/config"
	"github.com/seshanpillay25/contexthub/pkg/logging"
	"github.com/seshanpillay25/contexthub/pkg/types"
)

// LinkStatus is the observed state of one ManagedLink.
type LinkStatus struct {
	Link types.ManagedLink
	Path string
	Kind types.LinkKind
	// Target is the raw link target when Kind is KindSymlink or Dangling.
	Target string
	// Dangling marks a symlink whose target does not exist. It counts as
	// absent.
	Dangling bool
}

// Report is the result of a verification scan.
type Report struct {
	MasterPath   string
	MasterExists bool
	Links        []LinkStatus
	AuxPath      string
	AuxExists    bool
}

// OK is true when the master file and every ManagedLink target exist,
// whether as symlinks or copies. The auxiliary file does not count.
func (r *Report) OK() bool {
	return r.Failures() == 0
}

// Failures counts the missing master file and missing targets.
func (r *Report) Failures() int {
	failed := 0
	if !r.MasterExists {
		failed++
	}
	for _, link := range r.Links {
		if link.Kind == types.KindAbsent {
			failed++
		}
	}
	return failed
}

// Verify scans the project rooted at root.
func Verify(fs types.FS, root string, cfg *config.Config) *Report {
	logger := logging.GetLogger("verify")

	report := &Report{
		MasterPath: filepath.Join(root, cfg.Files.Master),
		AuxPath:    filepath.Join(root, cfg.Files.Aux),
	}
	report.MasterExists = exists(fs, report.MasterPath)
	report.AuxExists = exists(fs, report.AuxPath)

	for _, link := range cfg.Links {
		status := inspect(fs, filepath.Join(root, filepath.FromSlash(link.Path)))
		status.Link = link
		report.Links = append(report.Links, status)
	}

	logger.Debug().
		Bool("master", report.MasterExists).
		Bool("aux", report.AuxExists).
		Int("failures", report.Failures()).
		Msg("Verification finished")
	return report
}

func inspect(fs types.FS, path string) LinkStatus {
	status := LinkStatus{Path: path}

	info, err := fs.Lstat(path)
	if err != nil {
		return status
	}

	if info.Mode()&os.ModeSymlink != 0 {
		status.Target, _ = fs.Readlink(path)
		if !exists(fs, path) {
			status.Dangling = true
			return status
		}
		status.Kind = types.KindSymlink
		return status
	}

	status.Kind = types.KindCopy
	return status
}

func exists(fs types.FS, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}
