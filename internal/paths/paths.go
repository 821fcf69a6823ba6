package paths

import (
	"os"
	"path/filepath"
)

// OutputName is the file name of the rendered ambience.
const OutputName = "night-wind-chimes.wav"

// workDir returns the directory project discovery starts from.
var workDir = os.Getwd

// SetWorkDir overrides the starting directory used by Root.
// Intended for testing. Returns a restore function.
func SetWorkDir(dir string) func() {
	old := workDir
	workDir = func() (string, error) { return dir, nil }
	return func() { workDir = old }
}

// ProjectRoot walks up from start to the nearest directory holding a go.mod.
// If there is none, start itself is returned.
func ProjectRoot(start string) string {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// Root returns the project root of the working directory.
func Root() (string, error) {
	wd, err := workDir()
	if err != nil {
		return "", err
	}
	return ProjectRoot(wd), nil
}

// PublicDir returns <root>/public/
func PublicDir(root string) string {
	return filepath.Join(root, "public")
}

// DefaultOutput returns <root>/public/night-wind-chimes.wav
func DefaultOutput(root string) string {
	return filepath.Join(PublicDir(root), OutputName)
}
