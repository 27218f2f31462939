package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsWatchedFile(t *testing.T) {
	cases := map[string]bool{
		"keyboard.yaml":        true,
		"scripts/layout.tengo": true,
		"levels/keyboard.json": true,
		"notes.txt":            false,
		"KEYBOARD.YML":         true,
	}
	for path, want := range cases {
		if got := IsWatchedFile(path); got != want {
			t.Fatalf("IsWatchedFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "keyboard.yaml")
	if err := os.WriteFile(target, []byte("name: k\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}
