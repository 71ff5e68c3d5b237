package app

import (
	"context"
	"fmt"
	"sync"

	"snake/internal/domain"
	"snake/internal/game"
	"snake/internal/storage"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	Game         *domain.GameConfig
	SavePath     string
	ScoresPath   string
	GameplaySeed uint64
	CosmeticSeed uint64
}

func DefaultConfig() Config {
	return Config{
		Game:       domain.DefaultGameConfig(),
		SavePath:   storage.DefaultSavePath,
		ScoresPath: storage.DefaultScoresPath,
	}
}

type App struct {
	controller *game.Controller

	gameEventCh chan game.Event

	eventCh chan AppEvent
	inputCh chan InputEvent

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventStateUpdated AppEventType = iota
	AppEventGameOver
	AppEventMessage
	AppEventError
)

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputStart InputEventType = iota
	InputTogglePause
	InputPause
	InputRestart
	InputSteer
	InputSpeed
	InputSave
	InputLoad
	InputQuit
)

func NewApp(cfg Config) (*App, error) {
	if cfg.Game == nil {
		cfg.Game = domain.DefaultGameConfig()
	}
	if err := cfg.Game.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	gameEventCh := make(chan game.Event, 100)

	controller, err := game.NewController(game.ControllerConfig{
		Game:    cfg.Game,
		Spawner: domain.NewSpawner(cfg.GameplaySeed, cfg.CosmeticSeed),
		Saves:   storage.NewSaveFile(cfg.SavePath),
		Scores:  storage.NewLedger(cfg.ScoresPath),
		EventCh: gameEventCh,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}

	return &App{
		controller:  controller,
		gameEventCh: gameEventCh,
		eventCh:     make(chan AppEvent, 100),
		inputCh:     make(chan InputEvent, 100),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.controller.Run(a.ctx)
	}()

	a.wg.Add(1)
	go a.eventLoop()

	a.wg.Add(1)
	go a.inputLoop()

	log.Println("App started")

	return nil
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Input() chan<- InputEvent {
	return a.inputCh
}

func (a *App) Frame() game.Frame {
	return a.controller.Snapshot()
}

func (a *App) eventLoop() {
	defer a.wg.Done()

	for {
		select {
		case <-a.ctx.Done():
			return

		case event := <-a.gameEventCh:
			a.handleGameEvent(event)
		}
	}
}

func (a *App) handleGameEvent(event game.Event) {
	switch event.Type {
	case game.EventStateUpdated:
		a.publish(AppEvent{Type: AppEventStateUpdated})

	case game.EventGameOver:
		if payload, ok := event.Payload.(game.GameOverPayload); ok {
			log.Printf("Game over: score=%d reason=%v", payload.Score, payload.Reason)
		}
		a.publish(AppEvent{Type: AppEventGameOver, Payload: event.Payload})

	case game.EventSaved:
		a.publish(AppEvent{Type: AppEventMessage, Payload: "Game saved"})

	case game.EventLoaded:
		a.publish(AppEvent{Type: AppEventMessage, Payload: "Game loaded"})

	case game.EventError:
		if payload, ok := event.Payload.(game.ErrorPayload); ok {
			a.publish(AppEvent{Type: AppEventError, Payload: payload.Message})
		}
	}
}

func (a *App) publish(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Println("App event channel full, dropping event")
	}
}

func (a *App) inputLoop() {
	defer a.wg.Done()

	for {
		select {
		case <-a.ctx.Done():
			return

		case input := <-a.inputCh:
			a.handleInput(input)
		}
	}
}

func (a *App) handleInput(input InputEvent) {
	switch input.Type {
	case InputStart:
		a.controller.Start()

	case InputTogglePause:
		a.controller.TogglePause()

	case InputPause:
		a.controller.Pause()

	case InputRestart:
		a.controller.Restart()

	case InputSteer:
		if dir, ok := input.Payload.(domain.Direction); ok {
			a.controller.Steer(dir)
		}

	case InputSpeed:
		if delay, ok := input.Payload.(int32); ok {
			a.controller.SetSpeed(delay)
		}

	case InputSave:
		if err := a.controller.Save(); err != nil {
			log.Printf("Failed to save game: %v", err)
		}

	case InputLoad:
		if err := a.controller.Load(); err != nil {
			log.Printf("Failed to load game: %v", err)
		}

	case InputQuit:
		if a.cancel != nil {
			a.cancel()
		}
	}
}
