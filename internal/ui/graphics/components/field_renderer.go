package components

import (
	"image/color"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const colorFadeSeconds = 0.4

// FieldRenderer draws the grid, apple and snake scaled to the space left by
// the controls bar and the status line.
type FieldRenderer struct {
	Scale   float32
	OffsetX float32
	OffsetY float32

	TopMargin    int
	BottomMargin int

	snakeFrom color.NRGBA
	snakeTo   color.NRGBA
	fade      *gween.Tween
	fadeValue float32
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{
		Scale:        1,
		TopMargin:    90,
		BottomMargin: 30,
		snakeFrom:    domain.DefaultSnakeColor,
		snakeTo:      domain.DefaultSnakeColor,
		fadeValue:    1,
	}
}

func (fr *FieldRenderer) CalculateLayout(screenWidth, screenHeight int, grid domain.Grid) {
	if grid.Width <= 0 || grid.Height <= 0 {
		return
	}

	availableWidth := float32(screenWidth - 20)
	availableHeight := float32(screenHeight - fr.TopMargin - fr.BottomMargin)

	scaleW := availableWidth / float32(grid.Width)
	scaleH := availableHeight / float32(grid.Height)

	fr.Scale = scaleW
	if scaleH < scaleW {
		fr.Scale = scaleH
	}
	if fr.Scale < 0.1 {
		fr.Scale = 0.1
	}

	fieldWidth := fr.Scale * float32(grid.Width)
	fieldHeight := fr.Scale * float32(grid.Height)
	fr.OffsetX = (float32(screenWidth) - fieldWidth) / 2
	fr.OffsetY = float32(fr.TopMargin) + (availableHeight-fieldHeight)/2
}

// Update advances the snake color fade by dt seconds.
func (fr *FieldRenderer) Update(dt float32) {
	if fr.fade == nil {
		return
	}
	value, finished := fr.fade.Update(dt)
	fr.fadeValue = value
	if finished {
		fr.fade = nil
		fr.fadeValue = 1
	}
}

// SetSnakeColor starts a fade toward c when it differs from the current target.
func (fr *FieldRenderer) SetSnakeColor(c color.NRGBA) {
	if c == fr.snakeTo {
		return
	}
	fr.snakeFrom = fr.currentSnakeColor()
	fr.snakeTo = c
	fr.fadeValue = 0
	fr.fade = gween.New(0, 1, colorFadeSeconds, ease.OutQuad)
}

func (fr *FieldRenderer) currentSnakeColor() color.NRGBA {
	return types.Mix(fr.snakeFrom, fr.snakeTo, fr.fadeValue)
}

func (fr *FieldRenderer) cellRect(c domain.Coord, tile int32) (x, y, size float32) {
	return fr.OffsetX + float32(c.X)*fr.Scale,
		fr.OffsetY + float32(c.Y)*fr.Scale,
		float32(tile) * fr.Scale
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, grid domain.Grid) {
	w := float32(grid.Width) * fr.Scale
	h := float32(grid.Height) * fr.Scale

	vector.DrawFilledRect(screen, fr.OffsetX, fr.OffsetY, w, h, types.ColorFieldBg, false)

	for x := int32(0); x <= grid.Width; x += grid.TileSize {
		x1 := fr.OffsetX + float32(x)*fr.Scale
		vector.StrokeLine(screen, x1, fr.OffsetY, x1, fr.OffsetY+h, 1, types.ColorGrid, false)
	}
	for y := int32(0); y <= grid.Height; y += grid.TileSize {
		y1 := fr.OffsetY + float32(y)*fr.Scale
		vector.StrokeLine(screen, fr.OffsetX, y1, fr.OffsetX+w, y1, 1, types.ColorGrid, false)
	}
}

func (fr *FieldRenderer) DrawApple(screen *ebiten.Image, apple domain.Apple, tile int32) {
	x, y, size := fr.cellRect(apple.Pos, tile)
	vector.DrawFilledCircle(screen, x+size/2, y+size/2, size/2, apple.Color, true)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, cells []domain.Coord, grid domain.Grid) {
	base := fr.currentSnakeColor()

	// tail first so the head stays on top of stacked segments
	for i := len(cells) - 1; i >= 0; i-- {
		if !grid.Contains(cells[i]) {
			continue
		}
		x, y, size := fr.cellRect(cells[i], grid.TileSize)

		cellColor := base
		if i == 0 {
			cellColor = types.DarkenN(base, 0.7)
		}

		vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, cellColor, false)
	}
}
