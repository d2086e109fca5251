package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGameYAML = `
display: { screenWidth: 800, screenHeight: 600, framerate: 60 }
player: { frame: { width: 32, height: 48 }, hitTint: "#ff0000" }
stars: { points: 10, bounceMin: 0.4, bounceMax: 0.8 }
bombs: { minX: 0, splitX: 400, maxX: 800, minSpeed: -200, maxSpeed: 200 }
platform: { width: 400, height: 32 }
`

func writeStage(t *testing.T, dir, name string) {
	t.Helper()
	data := "id: test\nname: " + name + "\nworld: { width: 800, height: 600 }\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stages", "test.yaml"), []byte(data), 0o644))
}

func setupConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "stages"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "game.yaml"), []byte(testGameYAML), 0o644))
	writeStage(t, dir, "first")
	return dir
}

func TestLive_Reload(t *testing.T) {
	dir := setupConfigDir(t)

	live, err := NewLive(NewLoader(dir), "test")
	require.NoError(t, err)
	assert.Equal(t, 1, live.Version())

	_, stage := live.Snapshot()
	assert.Equal(t, "first", stage.Name)

	writeStage(t, dir, "second")
	require.NoError(t, live.Reload())

	_, stage = live.Snapshot()
	assert.Equal(t, "second", stage.Name)
	assert.Equal(t, 2, live.Version())
}

func TestLive_ReloadKeepsSnapshotOnError(t *testing.T) {
	dir := setupConfigDir(t)

	live, err := NewLive(NewLoader(dir), "test")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "stages", "test.yaml"), []byte("world: [oops"), 0o644))
	assert.Error(t, live.Reload())

	_, stage := live.Snapshot()
	assert.Equal(t, "first", stage.Name)
	assert.Equal(t, 1, live.Version())
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := setupConfigDir(t)

	live, err := NewLive(NewLoader(dir), "test")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, live, dir, func(int) { reloads.Add(1) })
	}()

	// Give the watcher time to register its directories.
	time.Sleep(100 * time.Millisecond)
	writeStage(t, dir, "watched")

	assert.Eventually(t, func() bool {
		_, stage := live.Snapshot()
		return stage.Name == "watched"
	}, 3*time.Second, 20*time.Millisecond)
	assert.GreaterOrEqual(t, reloads.Load(), int32(1))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatch_MissingDir(t *testing.T) {
	dir := setupConfigDir(t)
	live, err := NewLive(NewLoader(dir), "test")
	require.NoError(t, err)

	err = Watch(context.Background(), live, filepath.Join(dir, "nope"), nil)
	assert.Error(t, err)
}
