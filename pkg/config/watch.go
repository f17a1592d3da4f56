package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the config file and invokes onReload after every
// successful reload of the global configuration. It blocks until stop is
// closed. Editors often replace files instead of writing them in place, so
// the parent directory is watched and events are filtered by name.
func Watch(path string, onReload func(*Config), stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := Reload(); err != nil {
				log.Printf("config reload failed, keeping previous configuration: %v", err)
				continue
			}
			log.Printf("configuration reloaded from %s", path)
			if onReload != nil {
				onReload(Get())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("config watch error: %v", err)

		case <-stop:
			return nil
		}
	}
}
