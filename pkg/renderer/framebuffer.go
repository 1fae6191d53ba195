package renderer

import (
	"image"
	"image/color"
	"sync"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Framebuffer is the image shared by every worker of one render.
// A single mutex covers the whole image; workers write disjoint pixels but still serialize.
type Framebuffer struct {
	mu  sync.Mutex
	img *image.RGBA
}

// NewFramebuffer creates an all-black, fully transparent framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Bounds returns the image rectangle
func (fb *Framebuffer) Bounds() image.Rectangle {
	return fb.img.Bounds()
}

// Set stores an 8-bit color at (x, y); y counts rows from the top
func (fb *Framebuffer) Set(x, y int, c color.RGBA) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.img.SetRGBA(x, y, c)
}

// At returns the color stored at (x, y)
func (fb *Framebuffer) At(x, y int) color.RGBA {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.img.RGBAAt(x, y)
}

// Image returns the underlying image. Callers must not write to the framebuffer afterwards.
func (fb *Framebuffer) Image() *image.RGBA {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.img
}

// vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
