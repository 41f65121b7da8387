// Package fs implements the filesystem operations behind the package copy step.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceWalker = (*Walker)(nil)

// Walker lists package source files.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// ListSources returns the files directly inside dir ending in ext.
// Symlinks count when they resolve to a regular file; names starting with a
// dot are skipped. os.ReadDir already sorts entries by name.
func (w *Walker) ListSources(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageSourceMissing.Error()), "path", dir)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ext) {
			continue
		}
		if !isRegularFile(dir, entry) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func isRegularFile(dir string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	// Dangling links are not files.
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}
