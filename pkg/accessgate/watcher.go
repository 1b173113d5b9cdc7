package accessgate

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the allow-list whenever its file changes, until ctx is done.
// The parent directory is watched so editors that replace the file are seen.
func (g *Gate) Watch(ctx context.Context, debounce time.Duration) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(g.path)); err != nil {
		fsw.Close()
		return err
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	go func() {
		defer fsw.Close()
		target := filepath.Clean(g.path)
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return

			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C

			case <-fire:
				fire = nil
				if err := g.Reload(); err != nil {
					log.Printf("accessgate: keeping previous allow-list: %v", err)
					continue
				}
				log.Printf("accessgate: allow-list reloaded from %s", g.path)

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				log.Printf("accessgate: watcher error: %v", err)
			}
		}
	}()
	return nil
}
