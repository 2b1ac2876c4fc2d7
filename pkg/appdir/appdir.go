// Package appdir resolves the per-user application directory used for the
// config file and the optional log database.
package appdir

import (
	"os"
	"path/filepath"
	"sync"
)

const dirName = ".aria-go"

var (
	once   sync.Once
	cached string
)

// AppDir returns ~/.aria-go, falling back to the working directory when
// the home directory cannot be resolved.
func AppDir() string {
	once.Do(func() {
		home, err := os.UserHomeDir()
		if err != nil {
			cached = "."
			return
		}
		cached = filepath.Join(home, dirName)
	})
	return cached
}

// Ensure creates the application directory if it does not exist.
func Ensure() error {
	return os.MkdirAll(AppDir(), 0o755)
}
