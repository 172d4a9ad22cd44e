package server

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/asif-cs/portfolio/internal/content"
)

// reloadDebounce coalesces bursts of file events into one reload.
const reloadDebounce = 500 * time.Millisecond

// watcher reloads content when the content file or an asset changes.
type watcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup
}

// watch starts watching the content file's directory and the assets tree.
func (s *Server) watch() (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	w := &watcher{fw: fw, done: make(chan struct{})}

	contentPath, err := filepath.Abs(s.cfg.ContentFile)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("resolving content path: %w", err)
	}
	// Editors often replace files on save, so watch the directory.
	if err := fw.Add(filepath.Dir(contentPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(contentPath), err)
	}

	assetsRoot := ""
	if s.cfg.AssetsDir != "" {
		if assetsRoot, err = filepath.Abs(s.cfg.AssetsDir); err == nil {
			addTree(fw, assetsRoot, s.log)
		}
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		s.watchLoop(w, contentPath, assetsRoot)
	}()

	s.log.Info("watching for changes", zap.String("content", contentPath), zap.String("assets", assetsRoot))
	return w, nil
}

func (s *Server) watchLoop(w *watcher, contentPath, assetsRoot string) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			path, _ := filepath.Abs(event.Name)
			inAssets := assetsRoot != "" && isWithin(assetsRoot, path)
			if path != contentPath && !inAssets {
				continue
			}
			s.log.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			if inAssets && event.Has(fsnotify.Create) && isDir(path) {
				addTree(w.fw, path, s.log)
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, s.reload)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			s.log.Warn("watcher error", zap.Error(err))
		}
	}
}

// reload re-reads the content file. A broken file keeps the previous
// content in place.
func (s *Server) reload() {
	g, err := content.Load(s.cfg.ContentFile)
	if err != nil {
		s.log.Error("reloading content", zap.Error(err))
		return
	}
	s.log.Info("content reloaded", zap.Int("sections", len(g.Sections)))
	s.SetGraph(g)
}

// Close stops the watcher and waits for its loop to exit.
func (w *watcher) Close() error {
	close(w.done)
	err := w.fw.Close()
	w.wg.Wait()
	return err
}

func addTree(fw *fsnotify.Watcher, root string, log *zap.Logger) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug("walking for watch", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				log.Warn("watching directory", zap.String("path", path), zap.Error(err))
			}
		}
		return nil
	})
}

func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !filepath.IsAbs(rel) && (len(rel) < 3 || rel[:3] != ".."+string(filepath.Separator))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
