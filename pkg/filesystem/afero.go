package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/seshanpillay25/contexthub/pkg/types"
	"github.com/spf13/afero"
)

// maxLinkHops bounds symlink resolution on filesystems without native links.
const maxLinkHops = 40

// aferoFS implements types.FS using afero. Backends that are not an
// afero.Linker (MemMapFs) get symlinks emulated in a link table, so Lstat,
// Readlink and link-following reads behave as they do on disk.
type aferoFS struct {
	fs afero.Fs

	mu    sync.RWMutex
	links map[string]string
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs, links: make(map[string]string)}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	resolved, err := a.resolve("stat", name)
	if err != nil {
		return nil, err
	}
	return a.fs.Stat(resolved)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	resolved, err := a.resolve("read", name)
	if err != nil {
		return nil, err
	}
	info, err := a.fs.Stat(resolved)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, resolved)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	resolved, err := a.resolve("write", name)
	if err != nil {
		return err
	}
	return afero.WriteFile(a.fs, resolved, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	if linker, ok := a.fs.(afero.Linker); ok {
		return linker.SymlinkIfPossible(oldname, newname)
	}

	if _, err := a.Lstat(newname); err == nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: fs.ErrExist}
	}
	if info, err := a.fs.Stat(filepath.Dir(newname)); err != nil || !info.IsDir() {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: fs.ErrNotExist}
	}

	a.mu.Lock()
	a.links[filepath.Clean(newname)] = oldname
	a.mu.Unlock()
	return nil
}

func (a *aferoFS) Readlink(name string) (string, error) {
	if target, ok := a.link(name); ok {
		return target, nil
	}
	if reader, ok := a.fs.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	if _, err := a.fs.Stat(name); err != nil {
		return "", err
	}
	return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
}

func (a *aferoFS) Chmod(name string, mode fs.FileMode) error {
	resolved, err := a.resolve("chmod", name)
	if err != nil {
		return err
	}
	return a.fs.Chmod(resolved, mode)
}

func (a *aferoFS) Chtimes(name string, atime, mtime time.Time) error {
	resolved, err := a.resolve("chtimes", name)
	if err != nil {
		return err
	}
	return a.fs.Chtimes(resolved, atime, mtime)
}

func (a *aferoFS) Remove(name string) error {
	a.mu.Lock()
	key := filepath.Clean(name)
	if _, ok := a.links[key]; ok {
		delete(a.links, key)
		a.mu.Unlock()
		return nil
	}
	a.mu.Unlock()
	return a.fs.Remove(name)
}

func (a *aferoFS) RemoveAll(path string) error {
	a.mu.Lock()
	root := filepath.Clean(path)
	for key := range a.links {
		if key == root || strings.HasPrefix(key, root+string(filepath.Separator)) {
			delete(a.links, key)
		}
	}
	a.mu.Unlock()
	return a.fs.RemoveAll(path)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if target, ok := a.link(name); ok {
		return &linkInfo{name: filepath.Base(name), target: target}, nil
	}
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) link(name string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	target, ok := a.links[filepath.Clean(name)]
	return target, ok
}

// resolve follows emulated links until it reaches a path the backend owns.
func (a *aferoFS) resolve(op, name string) (string, error) {
	current := filepath.Clean(name)
	for i := 0; i < maxLinkHops; i++ {
		target, ok := a.link(current)
		if !ok {
			return current, nil
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		current = filepath.Clean(target)
	}
	return "", &fs.PathError{Op: op, Path: name, Err: fmt.Errorf("too many levels of symbolic links")}
}

// linkInfo describes an emulated symlink.
type linkInfo struct {
	name   string
	target string
}

func (l *linkInfo) Name() string       { return l.name }
func (l *linkInfo) Size() int64        { return int64(len(l.target)) }
func (l *linkInfo) Mode() fs.FileMode  { return fs.ModeSymlink | 0777 }
func (l *linkInfo) ModTime() time.Time { return time.Time{} }
func (l *linkInfo) IsDir() bool        { return false }
func (l *linkInfo) Sys() interface{}   { return nil }
