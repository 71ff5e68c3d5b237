package graphics

import (
	"sync"

	"snake/internal/game"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultWidth  = 820
	DefaultHeight = 920
)

type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	frame    game.Frame
	hasFrame bool
	errorMsg string
	message  string
	dataMu   sync.RWMutex

	eventCh chan types.UIEvent
}

func NewEngine() *Engine {
	types.InitFonts()

	return &Engine{
		width:         DefaultWidth,
		height:        DefaultHeight,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		eventCh:       make(chan types.UIEvent, 100),
	}
}

func (e *Engine) RegisterScreens(menu types.Screen, play types.Screen) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenGame] = play
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	e.width, e.height = ebiten.WindowSize()

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}

	e.deliver(screen)

	e.handleEvent(screen.Update())

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}
	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

// SetFrame stores the latest controller snapshot; screens pick it up on
// their next update.
func (e *Engine) SetFrame(frame game.Frame) {
	e.dataMu.Lock()
	e.frame = frame
	e.hasFrame = true
	e.dataMu.Unlock()
}

// SetError and SetMessage may be called from any goroutine; the text is
// handed to the game screen on the next update.
func (e *Engine) SetError(err string) {
	e.dataMu.Lock()
	e.errorMsg = err
	e.message = ""
	e.dataMu.Unlock()
}

func (e *Engine) SetMessage(msg string) {
	e.dataMu.Lock()
	e.message = msg
	e.errorMsg = ""
	e.dataMu.Unlock()
}

func (e *Engine) deliver(screen types.Screen) {
	e.dataMu.Lock()
	defer e.dataMu.Unlock()

	if updater, ok := screen.(FrameUpdater); ok && e.hasFrame {
		updater.SetFrame(e.frame)
	}

	if e.errorMsg != "" {
		if s, ok := e.screenMap[types.ScreenGame].(ErrorSetter); ok {
			s.SetError(e.errorMsg)
		}
		e.errorMsg = ""
	}
	if e.message != "" {
		if s, ok := e.screenMap[types.ScreenGame].(MessageSetter); ok {
			s.SetMessage(e.message)
		}
		e.message = ""
	}
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventShowMenu:
		e.SetScreen(types.ScreenMenu)
		e.forward(types.UIEvent{Type: types.UIEventPause})

	case types.UIEventStart, types.UIEventLoad:
		e.SetScreen(types.ScreenGame)
		e.forward(event)

	default:
		e.forward(event)
	}
}

func (e *Engine) forward(event types.UIEvent) {
	select {
	case e.eventCh <- event:
	default:
		log.Warn("UI: event channel full, dropping event")
	}
}

func (e *Engine) GetCurrentScreen() types.ScreenType {
	return e.currentScreen
}

type FrameUpdater interface {
	SetFrame(frame game.Frame)
}

type ErrorSetter interface {
	SetError(err string)
}

type MessageSetter interface {
	SetMessage(msg string)
}
