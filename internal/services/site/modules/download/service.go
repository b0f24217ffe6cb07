package download

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var errBrochureMissing = errors.New("brochure file not found")

// brochure locates the downloadable brochure inside the public directory.
type brochure struct {
	dir  string
	name string
}

func newBrochure(dir, name string) brochure {
	return brochure{dir: strings.TrimSpace(dir), name: filepath.Base(strings.TrimSpace(name))}
}

// file is an opened brochure ready to stream.
type file struct {
	*os.File
	name        string
	contentType string
}

func (b brochure) open() (*file, error) {
	if b.name == "" || b.name == "." || b.name == string(filepath.Separator) {
		return nil, errBrochureMissing
	}
	path := filepath.Join(b.dir, b.name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errBrochureMissing
		}
		return nil, fmt.Errorf("open brochure: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat brochure: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, errBrochureMissing
	}
	detected, err := mimetype.DetectReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("detect brochure type: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rewind brochure: %w", err)
	}
	return &file{File: f, name: b.name, contentType: detected.String()}, nil
}
