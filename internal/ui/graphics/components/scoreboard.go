package components

import (
	"fmt"

	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scoreboard lists the best historical scores, highest first.
type Scoreboard struct {
	X, Y  int
	Width int
}

func NewScoreboard(x, y, width int) *Scoreboard {
	return &Scoreboard{
		X:     x,
		Y:     y,
		Width: width,
	}
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, scores []int) {
	const lineHeight = 20

	height := 35 + lineHeight*len(scores)
	if len(scores) == 0 {
		height += lineHeight
	}

	vector.DrawFilledRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(height),
		types.ColorOverlay, false)

	vector.StrokeRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(height),
		1, types.ColorInputBorder, false)

	fonts := types.GetFonts()
	text.Draw(screen, "RANKING", fonts.Normal, sb.X+10, sb.Y+20, types.ColorTextHighlight)

	y := sb.Y + 20 + lineHeight
	if len(scores) == 0 {
		text.Draw(screen, "no scores yet", fonts.Small, sb.X+10, y, types.ColorTextDim)
		return
	}

	for i, score := range scores {
		line := fmt.Sprintf("%d. %d", i+1, score)
		text.Draw(screen, line, fonts.Normal, sb.X+10, y, types.ColorText)
		y += lineHeight
	}
}
