package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"snake/internal/domain"
	"snake/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, Config) {
	t.Helper()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.SavePath = filepath.Join(dir, "savegame.dat")
	cfg.ScoresPath = filepath.Join(dir, "scores.txt")
	cfg.GameplaySeed = 5
	cfg.CosmeticSeed = 6

	application, err := NewApp(cfg)
	require.NoError(t, err)

	require.NoError(t, application.Start(context.Background()))
	t.Cleanup(application.Stop)

	return application, cfg
}

func waitForEvent(t *testing.T, application *App, typ AppEventType) AppEvent {
	t.Helper()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-application.Events():
			if ev.Type == typ {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for event %d", typ)
			return AppEvent{}
		}
	}
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Game.TileSize = 30

	_, err := NewApp(cfg)
	assert.Error(t, err)
}

func TestAppRoutesInputToController(t *testing.T) {
	application, _ := newTestApp(t)

	application.Input() <- InputEvent{Type: InputStart}
	require.Eventually(t, func() bool {
		return application.Frame().Status == game.StatusRunning
	}, 2*time.Second, 5*time.Millisecond)

	application.Input() <- InputEvent{Type: InputPause}
	require.Eventually(t, func() bool {
		return application.Frame().Status == game.StatusPaused
	}, 2*time.Second, 5*time.Millisecond)

	application.Input() <- InputEvent{Type: InputSpeed, Payload: int32(250)}
	require.Eventually(t, func() bool {
		return application.Frame().DelayMs == 250
	}, 2*time.Second, 5*time.Millisecond)

	application.Input() <- InputEvent{Type: InputSteer, Payload: domain.DirectionDown}
	application.Input() <- InputEvent{Type: InputTogglePause}
	require.Eventually(t, func() bool {
		return application.Frame().View.Heading == domain.DirectionDown
	}, 2*time.Second, 5*time.Millisecond)
}

func TestAppSaveReportsMessage(t *testing.T) {
	application, cfg := newTestApp(t)

	application.Input() <- InputEvent{Type: InputStart}
	application.Input() <- InputEvent{Type: InputPause}
	application.Input() <- InputEvent{Type: InputSave}

	ev := waitForEvent(t, application, AppEventMessage)
	assert.Equal(t, "Game saved", ev.Payload)

	_, err := os.Stat(cfg.SavePath)
	assert.NoError(t, err)
}

func TestAppLoadWithoutSaveReportsError(t *testing.T) {
	application, _ := newTestApp(t)

	application.Input() <- InputEvent{Type: InputLoad}

	ev := waitForEvent(t, application, AppEventError)
	assert.Equal(t, "Load failed", ev.Payload)
	assert.Equal(t, game.StatusStopped, application.Frame().Status)
}
