package catalogsource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yuzvak/nhh-storefront/internal/domain/catalog"
	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/monitoring"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

const debounce = 250 * time.Millisecond

// FileSource serves the catalog scanned from an HTML page on disk and can
// rescan it whenever the file changes. A failed rescan keeps the previous
// catalog.
type FileSource struct {
	path   string
	table  pricing.Table
	logger *logger.Logger

	current atomic.Pointer[catalog.Catalog]
}

func NewFileSource(path string, table pricing.Table, logger *logger.Logger) *FileSource {
	s := &FileSource{
		path:   path,
		table:  table,
		logger: logger,
	}
	s.current.Store(catalog.New(nil))
	return s
}

func (s *FileSource) Catalog() *catalog.Catalog {
	return s.current.Load()
}

func (s *FileSource) Reload() error {
	c, err := ScanFile(s.path, s.table)
	if err != nil {
		monitoring.RecordCatalogReload(0, err)
		return err
	}

	s.current.Store(c)
	monitoring.RecordCatalogReload(c.Len(), nil)
	s.logger.Info("Catalog loaded", "path", s.path, "products", c.Len())
	return nil
}

// Watch reloads the catalog after the page settles from a burst of writes.
// The parent directory is watched so editors that replace the file by
// renaming are picked up too.
func (s *FileSource) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()

	var pendingSince time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pendingSince = time.Now()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("Catalog watcher error", "error", err)
		case <-ticker.C:
			if pendingSince.IsZero() || time.Since(pendingSince) < debounce {
				continue
			}
			pendingSince = time.Time{}
			if err := s.Reload(); err != nil {
				s.logger.Warn("Catalog reload failed, keeping previous catalog", "path", s.path, "error", err)
			}
		}
	}
}

func ScanFile(path string, table pricing.Table) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return catalog.Scan(f, table)
}
