package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/ziadkadry99/foodee/internal/dom"
)

// ShellFile is the page shell's file name inside the site directory.
const ShellFile = "index.html"

// Shell provides fresh copies of the page shell. The markup is read once and
// cached until Invalidate is called.
type Shell struct {
	dir    string
	logger *slog.Logger

	mu   sync.RWMutex
	data []byte
}

// NewShell returns a Shell reading index.html from dir. An empty dir, or a
// dir without index.html, yields the built-in default shell.
func NewShell(dir string, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{dir: dir, logger: logger}
}

// Path returns the shell file path, or "" when no site dir is set.
func (s *Shell) Path() string {
	if s.dir == "" {
		return ""
	}
	return filepath.Join(s.dir, ShellFile)
}

// Bytes returns the shell markup.
func (s *Shell) Bytes() ([]byte, error) {
	s.mu.RLock()
	data := s.data
	s.mu.RUnlock()
	if data != nil {
		return data, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data != nil {
		return s.data, nil
	}

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	s.data = data
	return data, nil
}

func (s *Shell) read() ([]byte, error) {
	path := s.Path()
	if path == "" {
		return []byte(DefaultShell), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("no page shell found, using the built-in shell", "path", path)
		return []byte(DefaultShell), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading page shell: %w", err)
	}
	return data, nil
}

// Page parses a fresh page from the shell.
func (s *Shell) Page() (*dom.Page, error) {
	data, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	page, err := dom.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing page shell: %w", err)
	}
	return page, nil
}

// Invalidate drops the cached markup.
func (s *Shell) Invalidate() {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
}

// Watch invalidates the cache whenever the shell file changes, until ctx is
// done. The directory is watched so that editors replacing the file by rename
// are noticed.
func (s *Shell) Watch(ctx context.Context) error {
	if s.dir == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watching %s: %w", s.dir, err)
	}
	s.logger.Info("watching page shell", "path", s.Path())

	target := filepath.Clean(s.Path())
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
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				s.logger.Info("page shell changed", "path", event.Name, "op", event.Op.String())
				s.Invalidate()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", "error", err)
		}
	}
}
