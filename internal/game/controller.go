package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"snake/internal/domain"
	"snake/internal/storage"

	log "github.com/sirupsen/logrus"
)

// TopScoreCount is how many ledger entries the display receives.
const TopScoreCount = 5

type ControllerConfig struct {
	Game    *domain.GameConfig
	Spawner *domain.Spawner
	Saves   SessionStore
	Scores  ScoreLedger
	EventCh chan<- Event
}

// Controller owns the session and the tick timer. Every state change goes
// through mu, so at most one tick or user action touches the session at a time.
type Controller struct {
	mu sync.Mutex

	session *domain.Session
	status  Status

	delay  time.Duration
	ticker *time.Ticker

	saves     SessionStore
	scores    ScoreLedger
	topScores []int

	eventCh chan<- Event
}

// Frame is everything a renderer needs for one draw call.
type Frame struct {
	View      domain.View
	Status    Status
	TopScores []int
	DelayMs   int32
}

func NewController(cfg ControllerConfig) (*Controller, error) {
	session, err := domain.NewSession(cfg.Game, cfg.Spawner)
	if err != nil {
		return nil, err
	}

	delay := time.Duration(cfg.Game.DelayMs) * time.Millisecond
	ticker := time.NewTicker(delay)
	ticker.Stop()

	c := &Controller{
		session: session,
		status:  StatusStopped,
		delay:   delay,
		ticker:  ticker,
		saves:   cfg.Saves,
		scores:  cfg.Scores,
		eventCh: cfg.EventCh,
	}
	c.refreshScoresLocked()

	return c, nil
}

// Run drives ticks until ctx is cancelled. Ticks are only delivered while the
// controller is running; pause and game over stop the ticker.
func (c *Controller) Run(ctx context.Context) {
	defer c.ticker.Stop()

	log.Printf("Controller: tick loop started, delay=%s", c.Delay())

	for {
		select {
		case <-ctx.Done():
			log.Println("Controller: tick loop stopped")
			return
		case <-c.ticker.C:
			c.Step()
		}
	}
}

// Step runs one tick synchronously. It is a no-op unless the controller is
// running.
func (c *Controller) Step() domain.TickResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusRunning {
		return domain.TickResult{}
	}

	result := c.session.Tick()

	if result.Ate {
		log.WithField("score", c.session.ApplesEaten).Debug("Controller: apple eaten")
	}

	if result.Lost {
		c.finishLocked(result.Reason)
		return result
	}

	c.emit(Event{Type: EventStateUpdated})
	return result
}

func (c *Controller) finishLocked(reason domain.LossReason) {
	c.status = StatusGameOver
	c.ticker.Stop()

	score := c.session.ApplesEaten
	log.WithFields(log.Fields{
		"score":  score,
		"reason": reason,
	}).Info("Controller: game over")

	if err := c.scores.Append(score); err != nil {
		log.WithError(err).Error("Controller: failed to record score")
		c.emit(Event{Type: EventError, Payload: ErrorPayload{Message: "Could not record score"}})
	}
	c.refreshScoresLocked()

	c.emit(Event{
		Type: EventGameOver,
		Payload: GameOverPayload{
			Score:     score,
			Reason:    reason,
			TopScores: c.copyScoresLocked(),
		},
	})
	c.emit(Event{Type: EventStateUpdated})
}

func (c *Controller) refreshScoresLocked() {
	top, err := c.scores.Top(TopScoreCount)
	if err != nil {
		log.WithError(err).Error("Controller: failed to read scores")
		c.topScores = nil
		return
	}
	c.topScores = top
}

func (c *Controller) copyScoresLocked() []int {
	scores := make([]int, len(c.topScores))
	copy(scores, c.topScores)
	return scores
}

// Start begins a new session from Stopped or GameOver, resumes a paused one
// and leaves a running one alone.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.status {
	case StatusStopped, StatusGameOver:
		c.newSessionLocked()
	case StatusPaused:
		c.resumeLocked()
	default:
		return
	}
	c.emit(Event{Type: EventStateUpdated})
}

// TogglePause starts a session when none is active and otherwise flips
// between running and paused.
func (c *Controller) TogglePause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.status {
	case StatusStopped, StatusGameOver:
		c.newSessionLocked()
	case StatusRunning:
		c.pauseLocked()
	case StatusPaused:
		c.resumeLocked()
	}
	c.emit(Event{Type: EventStateUpdated})
}

// Pause suspends a running session and does nothing otherwise.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusRunning {
		return
	}
	c.pauseLocked()
	c.emit(Event{Type: EventStateUpdated})
}

// Restart always discards the current session.
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.newSessionLocked()
	c.emit(Event{Type: EventStateUpdated})
}

func (c *Controller) newSessionLocked() {
	c.session.Reset()
	c.status = StatusRunning
	c.ticker.Reset(c.delay)
	log.Printf("Controller: new session, apple at %v", c.session.Apple.Pos)
}

func (c *Controller) pauseLocked() {
	c.session.Paused = true
	c.status = StatusPaused
	c.ticker.Stop()
	log.Println("Controller: paused")
}

func (c *Controller) resumeLocked() {
	c.session.Paused = false
	c.status = StatusRunning
	c.ticker.Reset(c.delay)
	log.Println("Controller: resumed")
}

// Steer queues a heading for the next tick. Reversals are rejected.
func (c *Controller) Steer(dir domain.Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusRunning && c.status != StatusPaused {
		return false
	}
	return c.session.SetHeading(dir)
}

// SetSpeed changes the tick delay, clamped to the supported range. Only the
// cadence changes; no tick is skipped or repeated.
func (c *Controller) SetSpeed(delayMs int32) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	clamped := domain.ClampDelay(delayMs)
	c.delay = time.Duration(clamped) * time.Millisecond

	if c.status == StatusRunning {
		c.ticker.Reset(c.delay)
	}

	log.WithField("delay_ms", clamped).Debug("Controller: speed changed")
	return clamped
}

func (c *Controller) Delay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delay
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Save writes the session to the save store. Game state is unaffected either way.
func (c *Controller) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.saves.Save(c.session.Save()); err != nil {
		log.WithError(err).Error("Controller: save failed")
		c.emit(Event{Type: EventError, Payload: ErrorPayload{Message: "Save failed"}})
		return fmt.Errorf("save session: %w", err)
	}

	log.Println("Controller: session saved")
	c.emit(Event{Type: EventSaved})
	return nil
}

// Load replaces the session with the saved one and resumes ticking. On any
// error the current session is left untouched.
func (c *Controller) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	saved, err := c.saves.Load()
	if err != nil {
		log.WithError(err).Error("Controller: load failed")
		c.emit(Event{Type: EventError, Payload: ErrorPayload{Message: "Load failed"}})
		return fmt.Errorf("load session: %w", err)
	}

	if err := c.session.Restore(saved); err != nil {
		log.WithError(err).Error("Controller: save file rejected")
		c.emit(Event{Type: EventError, Payload: ErrorPayload{Message: "Save file is corrupt"}})
		return fmt.Errorf("load session: %w: %w", storage.ErrMalformedSave, err)
	}

	if saved.Running {
		c.status = StatusRunning
		c.ticker.Reset(c.delay)
	} else {
		c.status = StatusGameOver
		c.ticker.Stop()
		c.refreshScoresLocked()
	}

	log.WithFields(log.Fields{
		"length": saved.Length,
		"score":  saved.ApplesEaten,
		"status": c.status,
	}).Info("Controller: session loaded")

	c.emit(Event{Type: EventLoaded})
	c.emit(Event{Type: EventStateUpdated})
	return nil
}

func (c *Controller) Snapshot() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Frame{
		View:      c.session.Snapshot(),
		Status:    c.status,
		TopScores: c.copyScoresLocked(),
		DelayMs:   int32(c.delay / time.Millisecond),
	}
}

func (c *Controller) emit(event Event) {
	if c.eventCh == nil {
		return
	}
	select {
	case c.eventCh <- event:
	default:
		log.Println("Controller: event channel full, dropping event")
	}
}
