package filesystem

import (
	"os"
	"path/filepath"

	"github.com/zeebo/errs/v2"
)

// T resolves relative paths against Base. The zero value uses the working
// directory.
type T struct {
	_ [0]func() // no equality

	Base string
}

func (t *T) child(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(t.Base, path)
}

func (t *T) Create(path string) (fh H, err error) {
	path = t.child(path)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	return H{fs: t, fh: f}, errs.Wrap(err)
}

func (t *T) OpenRead(path string) (fh H, err error) {
	path = t.child(path)

	f, err := os.Open(path)
	return H{fs: t, fh: f}, errs.Wrap(err)
}

func (t *T) Remove(path string) error {
	path = t.child(path)

	return errs.Wrap(os.Remove(path))
}

// ReadFile reads the whole file at path into memory.
func (t *T) ReadFile(path string) (data []byte, err error) {
	fh, err := t.OpenRead(path)
	if err != nil {
		return nil, err
	}
	defer func() { err = errs.Combine(err, fh.Close()) }()

	return fh.ReadAll()
}

// WriteFile replaces the contents of the file at path with data.
func (t *T) WriteFile(path string, data []byte) (err error) {
	fh, err := t.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errs.Combine(err, fh.Close()) }()

	_, err = fh.Write(data)
	return err
}
