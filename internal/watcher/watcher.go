package watcher

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/toastate/icongen/internal/tlogger"
)

// StartWatcher reports every path created, written, removed or renamed under
// folder. Folders created later are watched too.
func StartWatcher(folder string) (<-chan string, error) {
	wch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	outCh := make(chan string, 100)

	go func() {
		for {
			select {
			case event, ok := <-wch.Events:
				if !ok {
					return
				}
				tlogger.Debug("msg", "Watcher event", "event", event.String())
				if event.Has(fsnotify.Create) {
					if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
						if err := wch.Add(event.Name); err != nil {
							tlogger.Warn("msg", "Could not watch folder", "path", event.Name, "err", err)
						}
					}
				}
				if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					tlogger.Info("msg", "Detected change", "path", event.Name)
					outCh <- event.Name
				}
			case err, ok := <-wch.Errors:
				if !ok {
					return
				}
				tlogger.Warn("msg", "Watcher error", "err", err)
			}
		}
	}()

	err = filepath.Walk(folder, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return wch.Add(path)
		}
		return nil
	})
	if err != nil {
		wch.Close()
		return nil, err
	}

	return outCh, nil
}
