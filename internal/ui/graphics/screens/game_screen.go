package screens

import (
	"fmt"
	"image/color"

	"snake/internal/domain"
	"snake/internal/game"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
	keyboard      *input.KeyboardHandler

	btnStartPause *components.Button
	btnSave       *components.Button
	btnLoad       *components.Button
	btnRestart    *components.Button
	btnScores     *components.Button
	speed         *components.Slider

	frame     game.Frame
	hasFrame  bool
	showScore bool

	message  string
	errorMsg string
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		scoreboard:    components.NewScoreboard(0, 0, 160),
		keyboard:      input.NewKeyboardHandler(),
		btnStartPause: components.NewButton(0, 0, 120, 30, "Start"),
		btnSave:       components.NewButton(0, 0, 90, 30, "Save"),
		btnLoad:       components.NewButton(0, 0, 90, 30, "Load"),
		btnRestart:    components.NewButton(0, 0, 90, 30, "Restart"),
		btnScores:     components.NewButton(0, 0, 130, 30, "Hide ranking"),
		speed: components.NewSlider(0, 0, 250, 24, "Delay",
			domain.MinDelayMs, domain.MaxDelayMs, domain.DefaultDelayMs),
		showScore: true,
	}
}

func (s *GameScreen) SetFrame(frame game.Frame) {
	s.frame = frame
	s.hasFrame = true
	if !s.speed.Dragging() {
		s.speed.Value = frame.DelayMs
	}
	s.fieldRenderer.SetSnakeColor(frame.View.SnakeColor)
}

func (s *GameScreen) layout() {
	x := 10
	for _, b := range []*components.Button{s.btnStartPause, s.btnSave, s.btnLoad, s.btnRestart, s.btnScores} {
		b.SetPosition(x, 10)
		x += b.Width + 10
	}
	s.speed.SetPosition(20, 50)
}

func (s *GameScreen) Update() types.UIEvent {
	s.layout()
	s.fieldRenderer.Update(1 / float32(ebiten.TPS()))

	switch s.frame.Status {
	case game.StatusRunning:
		s.btnStartPause.Text = "Pause"
	case game.StatusPaused:
		s.btnStartPause.Text = "Resume"
	default:
		s.btnStartPause.Text = "Start"
	}

	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if dir := s.keyboard.Update(); dir != 0 {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	}

	if s.btnScores.Update() || input.IsTabPressed() {
		s.showScore = !s.showScore
	}
	if s.showScore {
		s.btnScores.Text = "Hide ranking"
	} else {
		s.btnScores.Text = "Show ranking"
	}
	s.btnScores.Active = s.showScore

	if s.btnStartPause.Update() || input.IsPausePressed() {
		return types.UIEvent{Type: types.UIEventTogglePause}
	}
	if s.btnSave.Update() || input.IsSavePressed() {
		return types.UIEvent{Type: types.UIEventSave}
	}
	if s.btnLoad.Update() || input.IsLoadPressed() {
		return types.UIEvent{Type: types.UIEventLoad}
	}
	if s.btnRestart.Update() || input.IsRestartPressed() {
		return types.UIEvent{Type: types.UIEventRestart}
	}

	changed := s.speed.Update()
	if delta := input.SpeedDelta(); delta != 0 {
		changed = s.speed.Nudge(delta) || changed
	}
	if changed {
		return types.UIEvent{
			Type:    types.UIEventSpeed,
			Payload: types.SpeedData{DelayMs: s.speed.Value},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()

	s.btnStartPause.Draw(screen)
	s.btnSave.Draw(screen)
	s.btnLoad.Draw(screen)
	s.btnRestart.Draw(screen)
	s.btnScores.Draw(screen)
	s.speed.Draw(screen)

	if !s.hasFrame {
		s.drawCentered(screen, "Waiting for game state...", h/2, types.ColorTextDim)
		return
	}

	view := s.frame.View
	s.fieldRenderer.CalculateLayout(w, h, view.Grid)
	s.fieldRenderer.DrawField(screen, view.Grid)

	switch s.frame.Status {
	case game.StatusRunning, game.StatusPaused:
		if view.HasApple {
			s.fieldRenderer.DrawApple(screen, view.Apple, view.Grid.TileSize)
		}
		s.fieldRenderer.DrawSnake(screen, view.Snake, view.Grid)
		if s.frame.Status == game.StatusPaused {
			s.drawCentered(screen, "PAUSED", h/2, types.ColorTextDark)
		}
	case game.StatusStopped:
		s.drawCentered(screen, "Press Space or Start to play", h/2, types.ColorTextDark)
	case game.StatusGameOver:
		s.drawGameOver(screen, w, h)
	}

	if s.showScore && s.frame.Status != game.StatusGameOver {
		s.scoreboard.X = int(s.fieldRenderer.OffsetX) + 10
		s.scoreboard.Y = int(s.fieldRenderer.OffsetY) + 10
		s.scoreboard.Draw(screen, s.frame.TopScores)
	}

	s.drawFooter(screen, w, h)
}

func (s *GameScreen) drawCentered(screen *ebiten.Image, msg string, y int, clr color.Color) {
	w, _ := s.ctx.Size()
	face := types.GetFonts().Normal
	text.Draw(screen, msg, face, types.CenteredX(face, msg, w), y, clr)
}

func (s *GameScreen) drawGameOver(screen *ebiten.Image, w, h int) {
	boxW, boxH := 260, 110+20*len(s.frame.TopScores)
	x := (w - boxW) / 2
	y := h/2 - boxH/2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), types.ColorOverlay, false)

	s.drawCentered(screen, "GAME OVER", y+30, types.ColorGameOver)
	s.drawCentered(screen, fmt.Sprintf("Score: %d", s.frame.View.ApplesEaten), y+55, types.ColorText)
	s.drawCentered(screen, "Ranking:", y+85, types.ColorTextHighlight)

	for i, score := range s.frame.TopScores {
		s.drawCentered(screen, fmt.Sprintf("%d. %d", i+1, score), y+105+i*20, types.ColorText)
	}
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	status := fmt.Sprintf("Score: %d  |  %s", s.frame.View.ApplesEaten, s.frame.Status)
	text.Draw(screen, status, fonts.Normal, 20, h-10, types.ColorText)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, w-bounds.Dx()-20, h-10, types.ColorError)
	} else if s.message != "" {
		bounds := text.BoundString(fonts.Normal, s.message)
		text.Draw(screen, s.message, fonts.Normal, w-bounds.Dx()-20, h-10, types.ColorSuccess)
	}
}

func (s *GameScreen) OnEnter() {
	s.errorMsg = ""
	s.message = ""
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
	s.message = ""
}

func (s *GameScreen) SetMessage(msg string) {
	s.message = msg
	s.errorMsg = ""
}
