package screens

import (
	"snake/internal/game"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type MenuScreen struct {
	ctx types.ScreenContext

	btnStart *components.Button
	btnLoad  *components.Button
	btnQuit  *components.Button

	status game.Status
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{
		ctx:      ctx,
		btnStart: components.NewButton(0, 0, 250, 50, "New Game"),
		btnLoad:  components.NewButton(0, 0, 250, 50, "Load Game"),
		btnQuit:  components.NewButton(0, 0, 250, 50, "Quit"),
	}
}

func (s *MenuScreen) SetFrame(frame game.Frame) {
	s.status = frame.Status
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	centerY := h / 2

	s.btnStart.SetPosition(centerX-125, centerY-80)
	s.btnLoad.SetPosition(centerX-125, centerY-20)
	s.btnQuit.SetPosition(centerX-125, centerY+40)

	if s.status == game.StatusPaused {
		s.btnStart.Text = "Continue"
	} else {
		s.btnStart.Text = "New Game"
	}

	if s.btnStart.Update() || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventStart}
	}

	if s.btnLoad.Update() {
		return types.UIEvent{Type: types.UIEventLoad}
	}

	if s.btnQuit.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SNAKE"
	x := types.CenteredX(fonts.Normal, title, w)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Normal, x+dx, 100+dy, types.ColorTextHighlight)
		}
	}
	text.Draw(screen, title, fonts.Normal, x, 100, types.ColorTextHighlight)

	subtitle := "Eat the apples, avoid the walls and your own tail"
	text.Draw(screen, subtitle, fonts.Normal, types.CenteredX(fonts.Normal, subtitle, w), 130, types.ColorTextDim)

	s.btnStart.Draw(screen)
	s.btnLoad.Draw(screen)
	s.btnQuit.Draw(screen)

	keys := "Arrows/WASD steer, Space pause, F5 save, F9 load, R restart, Tab ranking, -/+ delay"
	text.Draw(screen, keys, fonts.Small, types.CenteredX(fonts.Small, keys, w), h-50, types.ColorTextDim)

	hint := "Enter to play, ESC to quit"
	text.Draw(screen, hint, fonts.Small, types.CenteredX(fonts.Small, hint, w), h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
