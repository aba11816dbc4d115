package transfer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// disambiguate returns name if it is free in dir, otherwise the first
// "stem-N.ext" variant that does not exist yet. The pre-existing entry is
// never touched.
func disambiguate(dir, name string) string {
	if !exists(filepath.Join(dir, name)) {
		return name
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		alt := fmt.Sprintf("%s-%d%s", stem, n, ext)
		if !exists(filepath.Join(dir, alt)) {
			return alt
		}
	}
}

// exists treats only a confirmed absence as free: an unreadable entry still
// occupies its name, a rename over it must not clobber it.
func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
