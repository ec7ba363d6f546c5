package probe

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/seshanpillay25/contexthub/pkg/logging"
)

// Prober reports the capabilities used to pick a materialization strategy.
type Prober interface {
	IsPrivileged() bool
	SupportsSymlinks() bool
}

// Native probes the real system. Symlink support is tested empirically
// inside Dir, so the answer reflects the filesystem the links will live on.
type Native struct {
	Dir string
}

// New returns a Native prober that tests symlinks under dir.
func New(dir string) *Native {
	return &Native{Dir: dir}
}

// IsPrivileged reports elevated privileges using the platform check.
func (n *Native) IsPrivileged() bool {
	return isPrivileged()
}

// SupportsSymlinks creates a file and a link to it in a scratch directory
// and checks the link is recognized as one. The scratch directory is always
// removed.
func (n *Native) SupportsSymlinks() bool {
	logger := logging.GetLogger("probe")

	dir := n.Dir
	if dir == "" {
		dir = "."
	}

	scratch, err := os.MkdirTemp(dir, ".contexthub-symlink-test-")
	if err != nil {
		logger.Debug().Err(err).Msg("Cannot create scratch directory, assuming no symlink support")
		return false
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			logger.Warn().Err(err).Str("path", scratch).Msg("Failed to clean up symlink probe")
		}
	}()

	testFile := filepath.Join(scratch, "test.txt")
	testLink := filepath.Join(scratch, "test_link.txt")

	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		logger.Debug().Err(err).Msg("Cannot write probe file")
		return false
	}
	if err := os.Symlink(testFile, testLink); err != nil {
		logger.Debug().Err(err).Msg("Symlink creation failed")
		return false
	}

	info, err := os.Lstat(testLink)
	if err != nil {
		return false
	}
	if _, err := os.Stat(testLink); err != nil {
		return false
	}

	supported := info.Mode()&os.ModeSymlink != 0
	logger.Debug().Bool("supported", supported).Str("os", runtime.GOOS).Msg("Symlink probe finished")
	return supported
}

// Static is a Prober with fixed answers.
type Static struct {
	Privileged bool
	Symlinks   bool
}

func (s Static) IsPrivileged() bool     { return s.Privileged }
func (s Static) SupportsSymlinks() bool { return s.Symlinks }

var (
	_ Prober = (*Native)(nil)
	_ Prober = Static{}
)
