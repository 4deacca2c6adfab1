package filesystem

import (
	"io"
	"os"

	"github.com/zeebo/errs/v2"
)

type H struct {
	_ [0]func() // no equality

	fs *T
	fh *os.File
}

func wrap(err error) error {
	if err != nil && err != io.EOF {
		return errs.Wrap(err)
	}
	return err
}

func (h H) Valid() bool { return h.fs != nil && h.fh != nil }

func (h H) Close() (err error) {
	if !h.Valid() {
		return nil
	}
	return wrap(h.fh.Close())
}

func (h H) Write(p []byte) (n int, err error) {
	n, err = h.fh.Write(p)
	return n, wrap(err)
}

func (h H) Read(p []byte) (n int, err error) {
	n, err = h.fh.Read(p)
	return n, wrap(err)
}

func (h H) Size() (int64, error) {
	fi, err := h.fh.Stat()
	if err != nil {
		return 0, wrap(err)
	}
	return fi.Size(), nil
}

// ReadAll reads from the current position to the end of the file. The
// buffer is sized from Stat so the common case is a single read.
func (h H) ReadAll() ([]byte, error) {
	size, err := h.Size()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, size+1)
	for {
		n, err := h.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err == io.EOF {
			return buf, nil
		} else if err != nil {
			return nil, err
		}
		if len(buf) == cap(buf) {
			buf = append(buf, 0)[:len(buf)]
		}
	}
}
