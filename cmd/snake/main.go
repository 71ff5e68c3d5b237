package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/storage"
	"snake/internal/ui/graphics"
	"snake/internal/ui/graphics/screens"
	"snake/internal/ui/types"

	log "github.com/sirupsen/logrus"
)

func main() {
	defaults := domain.DefaultGameConfig()

	tile := flag.Int("tile", int(defaults.TileSize), "tile size in pixels")
	width := flag.Int("width", int(defaults.Width), "field width in pixels, a multiple of -tile")
	height := flag.Int("height", int(defaults.Height), "field height in pixels, a multiple of -tile")
	length := flag.Int("length", defaults.InitialLength, "initial snake length")
	delay := flag.Int("delay", int(defaults.DelayMs), "tick delay in milliseconds")
	savePath := flag.String("save", storage.DefaultSavePath, "session save file")
	scoresPath := flag.String("scores", storage.DefaultScoresPath, "score ledger file")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", *logLevel, err)
	}
	log.SetLevel(level)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	cfg := app.DefaultConfig()
	cfg.Game = &domain.GameConfig{
		TileSize:      int32(*tile),
		Width:         int32(*width),
		Height:        int32(*height),
		InitialLength: *length,
		DelayMs:       domain.ClampDelay(int32(*delay)),
	}
	cfg.SavePath = *savePath
	cfg.ScoresPath = *scoresPath
	cfg.GameplaySeed = *seed
	cfg.CosmeticSeed = *seed ^ 0x9e3779b97f4a7c15

	log.WithFields(log.Fields{
		"tile":   cfg.Game.TileSize,
		"width":  cfg.Game.Width,
		"height": cfg.Game.Height,
		"seed":   *seed,
	}).Info("Starting snake")

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	engine := graphics.NewEngine()

	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewGameScreen(engine),
	)
	engine.SetFrame(application.Frame())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("Shutting down...")
		application.Stop()
		cancel()
		os.Exit(0)
	}()

	go handleAppEvents(application, engine)
	go handleUIEvents(application, engine)

	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}

	application.Stop()
}

func handleAppEvents(application *app.App, engine *graphics.Engine) {
	for event := range application.Events() {
		switch event.Type {
		case app.AppEventStateUpdated, app.AppEventGameOver:
			engine.SetFrame(application.Frame())

		case app.AppEventMessage:
			if msg, ok := event.Payload.(string); ok {
				engine.SetMessage(msg)
			}

		case app.AppEventError:
			if msg, ok := event.Payload.(string); ok {
				engine.SetError(msg)
			}
		}
	}
}

func handleUIEvents(application *app.App, engine *graphics.Engine) {
	input := application.Input()

	for event := range engine.Events() {
		switch event.Type {
		case types.UIEventStart:
			input <- app.InputEvent{Type: app.InputStart}

		case types.UIEventTogglePause:
			input <- app.InputEvent{Type: app.InputTogglePause}

		case types.UIEventPause:
			input <- app.InputEvent{Type: app.InputPause}

		case types.UIEventRestart:
			input <- app.InputEvent{Type: app.InputRestart}

		case types.UIEventSteer:
			data := event.Payload.(types.SteerData)
			input <- app.InputEvent{Type: app.InputSteer, Payload: data.Direction}

		case types.UIEventSpeed:
			data := event.Payload.(types.SpeedData)
			input <- app.InputEvent{Type: app.InputSpeed, Payload: data.DelayMs}

		case types.UIEventSave:
			input <- app.InputEvent{Type: app.InputSave}

		case types.UIEventLoad:
			input <- app.InputEvent{Type: app.InputLoad}

		case types.UIEventQuit:
			log.Info("Quit requested")
			application.Stop()
			os.Exit(0)
		}
	}
}
