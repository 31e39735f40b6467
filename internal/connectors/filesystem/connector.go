// Package filesystem loads candidate documents from local files and
// folders and watches folders for changes.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/logger"
)

// Load reads the given paths into candidates. Explicit files are always
// loaded, whatever their extension, so unsupported files surface as ranking
// exclusions. Folders are walked recursively for supported, non-hidden files
// in lexical order. Candidate IDs are the cleaned paths.
func Load(ctx context.Context, paths []string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	seen := make(map[string]struct{})

	add := func(path string) error {
		path = filepath.Clean(path)
		if _, dup := seen[path]; dup {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		seen[path] = struct{}{}
		candidates = append(candidates, domain.NewCandidate(path, content))
		return nil
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if err := add(p); err != nil {
				return nil, err
			}
			continue
		}
		files, err := List(p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if err := add(f); err != nil {
				return nil, err
			}
		}
	}
	return candidates, nil
}

// TextExtractor extracts the text of one candidate.
type TextExtractor interface {
	Extract(ctx context.Context, candidate domain.Candidate) (*domain.Extraction, error)
}

// ReadQuery reads a job description file. PDF and DOCX files are run
// through ex; any other file is read as plain text.
func ReadQuery(ctx context.Context, path string, ex TextExtractor) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read query: %w", err)
	}
	candidate := domain.NewCandidate(path, content)
	if !candidate.Format.IsSupported() {
		candidate.Format = domain.FormatText
	}
	extraction, err := ex.Extract(ctx, candidate)
	if err != nil {
		return "", fmt.Errorf("read query: %w", err)
	}
	return extraction.Text, nil
}

// List returns the supported, non-hidden files under root, sorted.
func List(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && domain.DetectFormat(path).IsSupported() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// isHidden reports whether any element of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part != "." && part != ".." && strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// Watcher reports changes to candidate files under a folder.
type Watcher struct {
	root string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for root.
func NewWatcher(root string) *Watcher {
	return &Watcher{root: root}
}

// Watch starts watching root and its subfolders. The channel is closed when
// ctx is cancelled or Close is called.
func (w *Watcher) Watch(ctx context.Context) (<-chan domain.CandidateChange, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.root, err)
	}

	w.mu.Lock()
	w.watcher = fw
	w.mu.Unlock()

	changes := make(chan domain.CandidateChange)
	go func() {
		defer close(changes)
		defer fw.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				w.trackNewDir(fw, event)
				change := w.handleFsEvent(event)
				if change == nil {
					continue
				}
				select {
				case changes <- *change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
			}
		}
	}()
	return changes, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}

// trackNewDir adds newly created subfolders to the watch list.
func (w *Watcher) trackNewDir(fw *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) || isHidden(filepath.Base(event.Name)) {
		return
	}
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		if err := fw.Add(event.Name); err != nil {
			logger.Warn("Cannot watch %s: %v", event.Name, err)
		}
	}
}

// handleFsEvent maps an fsnotify event to a candidate change, or nil for
// events that do not concern a supported, visible file.
func (w *Watcher) handleFsEvent(event fsnotify.Event) *domain.CandidateChange {
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		rel = event.Name
	}
	if isHidden(rel) || !domain.DetectFormat(event.Name).IsSupported() {
		return nil
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.CandidateChange{Type: domain.ChangeDeleted, Path: event.Name}
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if errors.Is(err, os.ErrNotExist) {
			return &domain.CandidateChange{Type: domain.ChangeDeleted, Path: event.Name}
		}
		if err != nil || info.IsDir() {
			return nil
		}
		changeType := domain.ChangeUpdated
		if event.Has(fsnotify.Create) {
			changeType = domain.ChangeCreated
		}
		return &domain.CandidateChange{Type: changeType, Path: event.Name}
	default:
		return nil
	}
}
