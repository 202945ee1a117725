package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Engine stores objects as files under a single root directory.
type Engine struct {
	root string
}

// NewEngine ensures root and all of its missing ancestors exist and returns
// an engine bound to it.
func NewEngine(root string) (*Engine, error) {
	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, ioError("create root", err)
	}
	return &Engine{root: root}, nil
}

// Root returns the directory the engine is bound to.
func (e *Engine) Root() string {
	return e.root
}

// Put writes data under key, replacing any existing object.
func (e *Engine) Put(key string, data []byte) error {
	path, err := e.pathFor(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return ioError("mkdir", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return ioError("write", err)
	}
	return nil
}

// Get returns the full contents of the object stored under key.
func (e *Engine) Get(key string) ([]byte, error) {
	path, err := e.pathFor(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Key: key}
		}
		return nil, ioError("read", err)
	}
	return data, nil
}

// Delete removes the object stored under key. Parent directories are left in
// place even when they become empty.
func (e *Engine) Delete(key string) error {
	path, err := e.pathFor(key)
	if err != nil {
		return err
	}

	// os.Remove would also drop an empty directory, which is never an object.
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Key: key}
		}
		return ioError("remove", err)
	}
	if info.IsDir() {
		return ioError("remove", &fs.PathError{Op: "remove", Path: path, Err: errIsDir})
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Key: key}
		}
		return ioError("remove", err)
	}
	return nil
}

var errIsDir = errors.New("is a directory")

// Walk calls fn for every stored object in lexical key order. Keys are
// reported with forward slashes regardless of platform. An error returned by
// fn stops the walk and is returned unchanged.
func (e *Engine) Walk(fn func(key string, size int64) error) error {
	return filepath.WalkDir(e.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return ioError("walk", err)
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// Removed between listing and stat.
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return ioError("stat", err)
		}

		rel, err := filepath.Rel(e.root, path)
		if err != nil {
			return ioError("walk", err)
		}
		return fn(filepath.ToSlash(rel), info.Size())
	})
}

func (e *Engine) pathFor(key string) (string, error) {
	segments, err := splitKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{e.root}, segments...)...), nil
}
