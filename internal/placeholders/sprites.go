// Package placeholders draws the game's sprites procedurally so the game
// runs without any image assets on disk.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	background = color.RGBA{47, 79, 79, 255} // Dark slate gray
	playerBody = color.RGBA{70, 130, 230, 255}
)

// Palette defines the colors used by the maze screens.
var Palette = struct {
	Background color.RGBA
	Visited    color.RGBA
	Wall       color.RGBA
	Cursor     color.RGBA
	Goal       color.RGBA
	Collider   color.RGBA
	Text       color.RGBA
	HUDBacking color.RGBA

	PlayerBody    color.RGBA
	PlayerOutline color.RGBA
	PlayerEyes    color.RGBA
}{
	Background: background,
	Visited:    color.RGBA{0, 0, 0, 255},     // Black floor once carved
	Wall:       color.RGBA{255, 140, 0, 255}, // Dark orange
	Cursor:     color.RGBA{139, 69, 19, 255}, // Saddle brown
	Goal:       color.RGBA{0, 255, 0, 255},   // Green
	Collider:   color.RGBA{255, 0, 255, 110}, // Translucent magenta (debug)
	Text:       color.RGBA{255, 255, 255, 255},
	HUDBacking: Darken(background, 0.5),

	PlayerBody:    playerBody,
	PlayerOutline: Darken(playerBody, 0.25),
	PlayerEyes:    color.RGBA{255, 255, 255, 255},
}

// StackColor returns the fill for the stack entry at depth i: a green ramp
// that saturates after sixty entries.
func StackColor(i int) color.RGBA {
	g := 40 + i
	if g > 100 {
		g = 100
	}
	return color.RGBA{0, uint8(g), 50, 255}
}

// CreateCircle creates a circular sprite of the given size on a transparent background.
func CreateCircle(size int, fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	center := size / 2
	radius := size/2 - 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// PlayerSprite draws the player token facing down: a round body with two eyes.
func PlayerSprite(size int) *image.RGBA {
	if size < 8 {
		size = 8
	}
	img := CreateCircle(size, Palette.PlayerBody, Palette.PlayerOutline)

	eye := size / 8
	if eye < 1 {
		eye = 1
	}
	eyeY := size/2 + size/10
	for _, eyeX := range []int{size/2 - size/5, size/2 + size/5 - eye} {
		draw.Draw(img, image.Rect(eyeX, eyeY, eyeX+eye, eyeY+eye),
			&image.Uniform{Palette.PlayerEyes}, image.Point{}, draw.Src)
	}
	return img
}

// Darken scales the color channels of c by factor in [0, 1], keeping alpha.
func Darken(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float64(v) * factor) }
	c.R, c.G, c.B = scale(c.R), scale(c.G), scale(c.B)
	return c
}
