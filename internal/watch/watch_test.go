package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRunsImmediatelyAndOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("first_name: Ada\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, func() error {
			calls <- struct{}{}
			return nil
		})
	}()

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate first run")
	}

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("first_name: Grace\n"), 0o644))

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a re-run after the file changed")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop on context cancellation")
	}
}

func TestFileIgnoresSiblingChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, func() error {
			calls <- struct{}{}
			return nil
		})
	}()

	<-calls

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("b: 2\n"), 0o644))

	select {
	case <-calls:
		t.Fatal("a sibling file change must not trigger a re-run")
	case <-time.After(600 * time.Millisecond):
	}

	cancel()
	<-done
}

func TestFileStopsWhenFnFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	wantErr := errors.New("record no longer parses")
	err := File(context.Background(), path, func() error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}
