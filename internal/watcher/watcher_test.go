package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStartWatcherFollowsNewFolders(t *testing.T) {
	root := t.TempDir()

	updates, err := StartWatcher(root)
	if err != nil {
		t.Fatalf("start watcher: %v", err)
	}

	dir := filepath.Join(root, "light")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	file := filepath.Join(dir, "bell.svg")
	timeout := time.After(5 * time.Second)
	written := false
	for {
		select {
		case path := <-updates:
			if path == dir && !written {
				// give the watcher time to register the new folder
				time.Sleep(100 * time.Millisecond)
				if err := os.WriteFile(file, []byte("<svg/>"), 0644); err != nil {
					t.Fatalf("write: %v", err)
				}
				written = true
			}
			if path == file {
				return
			}
		case <-timeout:
			t.Fatalf("no event for %s", file)
		}
	}
}
