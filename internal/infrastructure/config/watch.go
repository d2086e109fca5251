package config

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watch reloads live whenever a YAML file under dir or dir/stages changes.
// It blocks until ctx is done. onReload, if set, is called after each
// successful reload from the watcher goroutine.
func Watch(ctx context.Context, live *Live, dir string, onReload func(version int)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	for _, d := range []string{dir, filepath.Join(dir, "stages")} {
		if err := w.Add(d); err != nil {
			return err
		}
	}

	// Editors write files in several steps; reload once the burst settles.
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		changed string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isConfigFile(event.Name) {
				continue
			}
			changed = event.Name
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := live.Reload(); err != nil {
				log.Printf("[Config] reload after %s failed: %v", filepath.Base(changed), err)
				continue
			}
			v := live.Version()
			log.Printf("[Config] reloaded %s (version %d)", filepath.Base(changed), v)
			if onReload != nil {
				onReload(v)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("[Config] watcher error: %v", err)
		}
	}
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
