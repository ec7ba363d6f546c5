package filesystem

import (
	"fmt"

	"github.com/seshanpillay25/contexthub/pkg/types"
)

// CopyFile copies src to dst byte for byte and carries over the permission
// bits and modification time. src is followed if it is a symlink.
func CopyFile(fs types.FS, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot copy directory %s", src)
	}

	data, err := fs.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	if err := fs.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	// WriteFile is subject to umask and keeps the mode of an existing file.
	if err := fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", dst, err)
	}
	if err := fs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("failed to set times on %s: %w", dst, err)
	}

	return nil
}
