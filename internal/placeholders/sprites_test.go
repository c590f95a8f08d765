package placeholders

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerSprite(t *testing.T) {
	img := PlayerSprite(25)
	assert.Equal(t, 25, img.Bounds().Dx())
	assert.Equal(t, 25, img.Bounds().Dy())

	assert.Equal(t, color.RGBA{0, 0, 0, 0}, img.RGBAAt(0, 0), "corners are transparent")
	assert.Equal(t, Palette.PlayerBody, img.RGBAAt(12, 6))

	eyes := 0
	for y := 0; y < 25; y++ {
		for x := 0; x < 25; x++ {
			if img.RGBAAt(x, y) == Palette.PlayerEyes {
				eyes++
			}
		}
	}
	assert.Equal(t, 2*3*3, eyes, "two 3x3 eyes")
}

func TestPlayerSpriteMinimumSize(t *testing.T) {
	assert.Equal(t, 8, PlayerSprite(2).Bounds().Dx())
}

func TestStackColorRamp(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 40, 50, 255}, StackColor(0))
	assert.Equal(t, color.RGBA{0, 70, 50, 255}, StackColor(30))
	assert.Equal(t, color.RGBA{0, 100, 50, 255}, StackColor(500))
}

func TestDarkPaletteEntries(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 25, 0, 128}, Darken(color.RGBA{100, 50, 0, 128}, 0.5))
	assert.Equal(t, color.RGBA{17, 32, 57, 255}, Palette.PlayerOutline)
	assert.Equal(t, color.RGBA{23, 39, 39, 255}, Palette.HUDBacking)
}
