package components

import (
	"fmt"

	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider picks an integer in [Min, Max] by dragging along its track.
type Slider struct {
	X, Y          int
	Width, Height int
	Label         string
	Min, Max      int32
	Value         int32
	dragging      bool
}

func NewSlider(x, y, width, height int, label string, lo, hi, value int32) *Slider {
	return &Slider{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Label:  label,
		Min:    lo,
		Max:    hi,
		Value:  value,
	}
}

// Update reports whether the value changed this frame.
func (s *Slider) Update() bool {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.dragging = mx >= s.X && mx < s.X+s.Width && my >= s.Y && my < s.Y+s.Height
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}

	v := s.valueAt(mx)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

func (s *Slider) valueAt(mx int) int32 {
	if s.Width <= 0 {
		return s.Min
	}
	offset := mx - s.X
	if offset < 0 {
		offset = 0
	}
	if offset > s.Width {
		offset = s.Width
	}
	return s.Min + int32(int64(offset)*int64(s.Max-s.Min)/int64(s.Width))
}

// Nudge moves the value by delta, clamped to the range.
func (s *Slider) Nudge(delta int32) bool {
	v := s.Value + delta
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

func (s *Slider) Draw(screen *ebiten.Image) {
	trackY := float32(s.Y + s.Height/2)

	vector.DrawFilledRect(screen,
		float32(s.X), trackY-2,
		float32(s.Width), 4,
		types.ColorSliderTrack, false)

	ratio := float32(0)
	if s.Max > s.Min {
		ratio = float32(s.Value-s.Min) / float32(s.Max-s.Min)
	}
	knobX := float32(s.X) + ratio*float32(s.Width)
	vector.DrawFilledCircle(screen, knobX, trackY, float32(s.Height)/3, types.ColorSliderKnob, true)

	fonts := types.GetFonts()
	label := fmt.Sprintf("%s: %d ms", s.Label, s.Value)
	text.Draw(screen, label, fonts.Small, s.X+s.Width+12, s.Y+s.Height/2+4, types.ColorText)
}

func (s *Slider) SetPosition(x, y int) {
	s.X = x
	s.Y = y
}

func (s *Slider) Dragging() bool {
	return s.dragging
}
