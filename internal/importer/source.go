package importer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirSource serves statement files from a single directory. File names are
// flattened to their base name, so statements cannot reference paths outside
// the directory.
type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Open(_ context.Context, fileName string) (io.ReadCloser, error) {
	path := filepath.Join(s.dir, filepath.Base(fileName))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return f, nil
}
