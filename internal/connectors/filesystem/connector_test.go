package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "a.PDF"), "a")
	writeFile(t, filepath.Join(dir, "nested", "c.docx"), "c")
	writeFile(t, filepath.Join(dir, "photo.png"), "x")
	writeFile(t, filepath.Join(dir, ".hidden.txt"), "x")
	writeFile(t, filepath.Join(dir, ".git", "d.txt"), "x")

	files, err := List(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.PDF"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "nested", "c.docx"),
	}, files)
}

func TestList_MissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "folder", "a.txt"), "alpha")
	writeFile(t, filepath.Join(dir, "folder", "skip.png"), "x")
	writeFile(t, filepath.Join(dir, "explicit.png"), "png")

	candidates, err := Load(context.Background(), []string{
		filepath.Join(dir, "folder"),
		filepath.Join(dir, "explicit.png"),
		filepath.Join(dir, "folder", "a.txt"), // duplicate of the walked file
	})
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, filepath.Join(dir, "folder", "a.txt"), candidates[0].ID)
	assert.Equal(t, domain.FormatText, candidates[0].Format)
	assert.Equal(t, []byte("alpha"), candidates[0].Content)
	assert.Equal(t, filepath.Join(dir, "explicit.png"), candidates[1].ID)
	assert.Equal(t, domain.FormatUnknown, candidates[1].Format)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(context.Background(), []string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, []string{t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{".hidden", true},
		{"path/to/.hidden", true},
		{"dir/.git/config", true},
		{"file.txt", false},
		{"path/to/file.txt", false},
		{".", false},
		{"..", false},
		{"path/../file", false},
		{"", false},
		{"file.hidden", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, isHidden(tt.path))
		})
	}
}

func TestHandleFsEvent(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		create       bool
		dir          bool
		op           fsnotify.Op
		expectChange bool
		expectedType domain.ChangeType
	}{
		{"create file", "cv.txt", true, false, fsnotify.Create, true, domain.ChangeCreated},
		{"write file", "cv.pdf", true, false, fsnotify.Write, true, domain.ChangeUpdated},
		{"write and chmod", "cv.docx", true, false, fsnotify.Write | fsnotify.Chmod, true, domain.ChangeUpdated},
		{"remove file", "gone.txt", false, false, fsnotify.Remove, true, domain.ChangeDeleted},
		{"rename away", "moved.txt", false, false, fsnotify.Rename, true, domain.ChangeDeleted},
		{"write of vanished file", "raced.txt", false, false, fsnotify.Write, true, domain.ChangeDeleted},
		{"chmod only", "cv.txt", true, false, fsnotify.Chmod, false, 0},
		{"unsupported extension", "photo.png", true, false, fsnotify.Create, false, 0},
		{"hidden file", ".draft.txt", true, false, fsnotify.Create, false, 0},
		{"directory named like a file", "folder.txt", false, true, fsnotify.Create, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.file)
			if tt.create {
				writeFile(t, path, "content")
			}
			if tt.dir {
				require.NoError(t, os.Mkdir(path, 0755))
			}

			change := NewWatcher(dir).handleFsEvent(fsnotify.Event{Name: path, Op: tt.op})

			if !tt.expectChange {
				assert.Nil(t, change)
				return
			}
			require.NotNil(t, change)
			assert.Equal(t, tt.expectedType, change.Type)
			assert.Equal(t, path, change.Path)
		})
	}
}

func TestWatcher_Watch(t *testing.T) {
	dir := t.TempDir()
	w := NewWatcher(dir)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := w.Watch(ctx)
	require.NoError(t, err)

	path := filepath.Join(dir, "new.txt")
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path, []byte("python"), 0644)
	}()

	select {
	case change := <-changes:
		assert.Equal(t, path, change.Path)
		assert.NotEqual(t, domain.ChangeDeleted, change.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for file change event")
	}

	cancel()
	for range changes {
		// drain until closed
	}
	assert.NoError(t, w.Close())
}

func TestWatcher_MissingRoot(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	_, err := w.Watch(context.Background())
	assert.Error(t, err)
}

func TestWatcher_CloseWithoutWatch(t *testing.T) {
	assert.NoError(t, NewWatcher(t.TempDir()).Close())
}

func TestChangeType_String(t *testing.T) {
	assert.Equal(t, "created", domain.ChangeCreated.String())
	assert.Equal(t, "updated", domain.ChangeUpdated.String())
	assert.Equal(t, "deleted", domain.ChangeDeleted.String())
	assert.Equal(t, "unknown", domain.ChangeType(9).String())
}

// stubExtractor echoes content and records the format it was asked for.
type stubExtractor struct {
	format domain.Format
	err    error
}

func (s *stubExtractor) Extract(_ context.Context, c domain.Candidate) (*domain.Extraction, error) {
	s.format = c.Format
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Extraction{Text: string(c.Content)}, nil
}

func TestReadQuery(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "jd.md"), "# Python developer")
	writeFile(t, filepath.Join(dir, "jd.pdf"), "pdf bytes")

	ex := &stubExtractor{}
	text, err := ReadQuery(context.Background(), filepath.Join(dir, "jd.md"), ex)
	require.NoError(t, err)
	assert.Equal(t, "# Python developer", text)
	assert.Equal(t, domain.FormatText, ex.format)

	_, err = ReadQuery(context.Background(), filepath.Join(dir, "jd.pdf"), ex)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatPDF, ex.format)

	_, err = ReadQuery(context.Background(), filepath.Join(dir, "missing.txt"), ex)
	assert.Error(t, err)

	_, err = ReadQuery(context.Background(), filepath.Join(dir, "jd.pdf"), &stubExtractor{err: domain.ErrInvalidInput})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
