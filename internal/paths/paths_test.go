package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	deep := filepath.Join(root, "scripts", "audio")
	if err := os.MkdirAll(deep, 0755); err != nil {
		t.Fatal(err)
	}

	if got := ProjectRoot(deep); got != root {
		t.Errorf("ProjectRoot(%s) = %s, want %s", deep, got, root)
	}
	if got := ProjectRoot(root); got != root {
		t.Errorf("ProjectRoot(root) = %s", got)
	}
}

func TestProjectRootFallback(t *testing.T) {
	dir := t.TempDir()
	got := ProjectRoot(dir)
	if got == dir {
		return
	}
	// only an enclosing module may win over the start directory
	if _, err := os.Stat(filepath.Join(got, "go.mod")); err != nil {
		t.Errorf("ProjectRoot(%s) = %s without a go.mod", dir, got)
	}
}

func TestRootAndDefaultOutput(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	defer SetWorkDir(filepath.Join(root, "cmd"))()

	got, err := Root()
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("Root() = %s, want %s", got, root)
	}

	want := filepath.Join(root, "public", "night-wind-chimes.wav")
	if out := DefaultOutput(got); out != want {
		t.Errorf("DefaultOutput = %s, want %s", out, want)
	}
}
