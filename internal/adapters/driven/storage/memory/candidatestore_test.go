package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resrank/internal/core/domain"
)

func TestNewCandidateStore(t *testing.T) {
	store := NewCandidateStore()
	require.NotNil(t, store)
	assert.Equal(t, 0, store.Len())
}

func TestCandidateStore_PutAndGet(t *testing.T) {
	store := NewCandidateStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.NewCandidate("alice.pdf", []byte("%PDF"))))

	got, err := store.Get(ctx, "alice.pdf")
	require.NoError(t, err)
	assert.Equal(t, "alice.pdf", got.ID)
	assert.Equal(t, domain.FormatPDF, got.Format)
	assert.Equal(t, []byte("%PDF"), got.Content)
}

func TestCandidateStore_Put_EmptyID(t *testing.T) {
	store := NewCandidateStore()

	err := store.Put(context.Background(), domain.Candidate{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, store.Len())
}

func TestCandidateStore_Get_NotFound(t *testing.T) {
	store := NewCandidateStore()

	_, err := store.Get(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCandidateStore_ListKeepsInsertionOrder(t *testing.T) {
	store := NewCandidateStore()
	ctx := context.Background()

	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		require.NoError(t, store.Put(ctx, domain.NewCandidate(name, []byte(name))))
	}
	// Replacing keeps the original position
	require.NoError(t, store.Put(ctx, domain.NewCandidate("c.txt", []byte("updated"))))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c.txt", list[0].ID)
	assert.Equal(t, []byte("updated"), list[0].Content)
	assert.Equal(t, "a.txt", list[1].ID)
	assert.Equal(t, "b.txt", list[2].ID)
}

func TestCandidateStore_Remove(t *testing.T) {
	store := NewCandidateStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.NewCandidate("a.txt", nil)))
	require.NoError(t, store.Put(ctx, domain.NewCandidate("b.txt", nil)))

	require.NoError(t, store.Remove(ctx, "a.txt"))
	assert.Equal(t, 1, store.Len())

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b.txt", list[0].ID)

	assert.ErrorIs(t, store.Remove(ctx, "a.txt"), domain.ErrNotFound)
}

func TestCandidateStore_ListEmpty(t *testing.T) {
	list, err := NewCandidateStore().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCandidateStore_ConcurrentPut(t *testing.T) {
	store := NewCandidateStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Put(ctx, domain.NewCandidate(fmt.Sprintf("cv-%d.txt", n), nil))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, store.Len())
	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 100)
}
