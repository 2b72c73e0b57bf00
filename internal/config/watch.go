package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file whenever it changes on disk and delivers
// the result on the returned channel (capacity 1, latest wins). Close the
// returned stop function to end watching. Editors that replace the file
// (rename+create) are handled by watching the parent directory.
func Watch(path string) (<-chan *Config, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, nil, err
	}

	out := make(chan *Config, 1)
	go func() {
		defer close(out)
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadFile(path)
				if err != nil {
					log.Printf("config reload: %v", err)
					continue
				}
				// Latest reload wins; drop a stale pending one.
				select {
				case <-out:
				default:
				}
				out <- cfg
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("config watch: %v", err)
			}
		}
	}()
	return out, func() { watcher.Close() }, nil
}
