package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// staged is a set of output files written to temporary names next to
// their destinations. Nothing becomes visible until commit.
type staged struct {
	files []stagedFile
}

type stagedFile struct {
	tmp, path string
}

// add writes the output of write to a temporary file beside path.
func (s *staged) add(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	s.files = append(s.files, stagedFile{tmp: tmp.Name(), path: path})

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Chmod(tmp.Name(), 0o644)
}

// addBytes stages data for path.
func (s *staged) addBytes(path string, data []byte) error {
	return s.add(path, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(data))
		return err
	})
}

// commit renames every staged file into place. Files not yet renamed when
// a rename fails are removed.
func (s *staged) commit() error {
	for i, f := range s.files {
		if err := os.Rename(f.tmp, f.path); err != nil {
			s.files = s.files[i:]
			return errors.Join(err, s.abort())
		}
	}
	s.files = nil
	return nil
}

// abort removes every file that has not been committed.
func (s *staged) abort() error {
	var errs []error
	for _, f := range s.files {
		if err := os.Remove(f.tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	s.files = nil
	return errors.Join(errs...)
}
