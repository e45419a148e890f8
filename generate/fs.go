package generate

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// CreateFS defines a file system interface that supports creating files and
// directories, so generated sources can be written to disk or to memory.
type CreateFS interface {
	// Sub returns a filesystem for a subdirectory.
	Sub(name string) (sub CreateFS, err error)
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
	// Mkdir creates a new directory with the specified permissions.
	Mkdir(name string, filemode fs.FileMode) (err error)
}

// MkdirAll creates the directory name and any missing parents.
func MkdirAll(filesys CreateFS, name string, filemode fs.FileMode) (err error) {
	name = filepath.Clean(name)

	var dir string
	if filepath.IsAbs(name) {
		dir = string(filepath.Separator)
	}

	for _, part := range strings.Split(name, string(filepath.Separator)) {
		if len(part) == 0 || part == "." {
			continue
		}
		dir = filepath.Join(dir, part)
		err = filesys.Mkdir(dir, filemode)
		if err != nil && !errors.Is(err, fs.ErrExist) {
			return
		}
	}

	err = nil

	return
}

// WriteFile creates name on filesys and fills it with fn. The path is only
// used to report errors.
func WriteFile(filesys CreateFS, name string, path string, fn func(w io.Writer) error) (err error) {
	defer func() {
		if err != nil {
			err = &ErrWrite{Path: path, Err: err}
		}
	}()

	file, err := filesys.Create(name)
	if err != nil {
		return
	}

	err = fn(file)
	if err != nil {
		file.Close()
		return
	}

	err = file.Close()

	return
}

// OsFS is a CreateFS on the host file system, rooted at a directory.
// An empty root resolves names against the working directory.
type OsFS string

func (root OsFS) path(name string) string {
	if len(root) == 0 || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(string(root), name)
}

func (root OsFS) Sub(name string) (sub CreateFS, err error) {
	dir := root.path(name)
	info, err := os.Stat(dir)
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = &fs.PathError{Op: "sub", Path: dir, Err: fs.ErrInvalid}
		return
	}

	sub = OsFS(dir)

	return
}

func (root OsFS) Create(name string) (file io.WriteCloser, err error) {
	return os.Create(root.path(name))
}

func (root OsFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	return os.Mkdir(root.path(name), filemode)
}

// MemFS is an in-memory CreateFS. Files become visible once closed.
type MemFS struct {
	prefix string
	store  *memStore
}

type memStore struct {
	dirs  map[string]bool
	files map[string][]byte
}

// NewMemFS returns an empty in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		prefix: ".",
		store: &memStore{
			dirs:  map[string]bool{".": true, "/": true},
			files: map[string][]byte{},
		},
	}
}

func (mfs *MemFS) path(name string) string {
	name = filepath.ToSlash(name)
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Join(mfs.prefix, name)
}

func (mfs *MemFS) Sub(name string) (sub CreateFS, err error) {
	dir := mfs.path(name)
	if !mfs.store.dirs[dir] {
		err = &fs.PathError{Op: "sub", Path: dir, Err: fs.ErrNotExist}
		return
	}

	sub = &MemFS{prefix: dir, store: mfs.store}

	return
}

func (mfs *MemFS) Create(name string) (file io.WriteCloser, err error) {
	full := mfs.path(name)
	if !mfs.store.dirs[path.Dir(full)] {
		err = &fs.PathError{Op: "create", Path: full, Err: fs.ErrNotExist}
		return
	}
	if mfs.store.dirs[full] {
		err = &fs.PathError{Op: "create", Path: full, Err: fs.ErrInvalid}
		return
	}

	file = &memFile{name: full, store: mfs.store}

	return
}

func (mfs *MemFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	full := mfs.path(name)
	switch {
	case mfs.store.dirs[full]:
		err = &fs.PathError{Op: "mkdir", Path: full, Err: fs.ErrExist}
	case !mfs.store.dirs[path.Dir(full)]:
		err = &fs.PathError{Op: "mkdir", Path: full, Err: fs.ErrNotExist}
	default:
		mfs.store.dirs[full] = true
	}
	return
}

// ReadFile returns the content of a closed file.
func (mfs *MemFS) ReadFile(name string) (data []byte, err error) {
	full := mfs.path(name)
	data, ok := mfs.store.files[full]
	if !ok {
		err = &fs.PathError{Op: "read", Path: full, Err: fs.ErrNotExist}
		return
	}
	return bytes.Clone(data), nil
}

// Files lists every file in the file system, sorted.
func (mfs *MemFS) Files() []string {
	return slices.Sorted(maps.Keys(mfs.store.files))
}

// IsDir returns true if the directory exists.
func (mfs *MemFS) IsDir(name string) bool {
	return mfs.store.dirs[mfs.path(name)]
}

type memFile struct {
	name  string
	store *memStore
	buf   bytes.Buffer
}

func (file *memFile) Write(data []byte) (n int, err error) {
	return file.buf.Write(data)
}

func (file *memFile) Close() (err error) {
	file.store.files[file.name] = file.buf.Bytes()
	return
}
