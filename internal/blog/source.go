package blog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ErrContentNotFound is returned when a post's ContentRef has no file behind it.
var ErrContentNotFound = errors.New("blog: content not found")

// Source loads post bodies by ContentRef.
type Source struct {
	fsys fs.FS
}

// NewSource reads content from fsys. ContentRefs are resolved relative to its root.
func NewSource(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// Load returns the raw markdown for p.
func (s *Source) Load(p Post) ([]byte, error) {
	name := strings.TrimPrefix(path.Clean("/"+p.ContentRef), "/")
	if name == "" || !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: invalid ref %q", ErrContentNotFound, p.ContentRef)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrContentNotFound, p.ContentRef)
		}
		return nil, fmt.Errorf("reading %s: %w", p.ContentRef, err)
	}
	return data, nil
}
