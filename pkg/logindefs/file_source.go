package logindefs

import (
	"errors"

	"github.com/spf13/afero"
)

// FileSource implements Source by reading a login.defs file from a
// filesystem. The filesystem is abstracted so tests can run against an
// in-memory one.
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a FileSource for the given path. Pass
// DefaultPath for the system login.defs.
func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{
		fs:   fs,
		path: path,
	}
}

// LoadUIDRange implements Source. Open failures and read failures are
// reported as distinct SourceError operations; parse failures pass
// through as DefinitionError.
func (s *FileSource) LoadUIDRange() (UIDRange, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return UIDRange{}, &SourceError{Op: "open", Path: s.path, Err: err}
	}
	defer f.Close()

	r, err := Parse(f)
	if err != nil {
		var defErr *DefinitionError
		if errors.As(err, &defErr) {
			return UIDRange{}, err
		}
		return UIDRange{}, &SourceError{Op: "read", Path: s.path, Err: err}
	}
	return r, nil
}
