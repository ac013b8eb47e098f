package budget_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/randalmurphal/budgetkit/budget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfig_DeliversReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "budget.yaml")
	require.NoError(t, os.WriteFile(path, []byte("total_budget: 1000\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := budget.WatchConfig(ctx, path)

	// Give the watcher a moment to attach before writing.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("total_budget: 2000\n"), 0o644))

	select {
	case cfg, ok := <-ch:
		require.True(t, ok)
		assert.Equal(t, 2000, cfg.TotalBudget)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatchConfig_SkipsInvalidReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "budget.yaml")
	require.NoError(t, os.WriteFile(path, []byte("total_budget: 1000\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := budget.WatchConfig(ctx, path)

	time.Sleep(200 * time.Millisecond)
	// An invalid strategy must not be delivered.
	require.NoError(t, os.WriteFile(path, []byte("allocation_strategy: fastest\n"), 0o644))
	time.Sleep(300 * time.Millisecond)
	// A valid follow-up write is.
	require.NoError(t, os.WriteFile(path, []byte("total_budget: 3000\n"), 0o644))

	select {
	case cfg, ok := <-ch:
		require.True(t, ok)
		assert.Equal(t, 3000, cfg.TotalBudget)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatchConfig_ClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "budget.yaml")
	require.NoError(t, os.WriteFile(path, []byte("total_budget: 1000\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	ch := budget.WatchConfig(ctx, path)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close after cancellation")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
