package preview

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCanvas(w, h int) (*image.RGBA, []float64) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	zbuffer := make([]float64, w*h)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}
	return img, zbuffer
}

func TestFillTriangleRespectsDepth(t *testing.T) {
	img, zbuffer := newCanvas(20, 20)
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	near := [3]screenPoint{{X: 0, Y: 0, Z: 1}, {X: 19, Y: 0, Z: 1}, {X: 10, Y: 19, Z: 1}}
	far := [3]screenPoint{{X: 0, Y: 0, Z: 5}, {X: 19, Y: 0, Z: 5}, {X: 10, Y: 19, Z: 5}}

	fillTriangle(img, zbuffer, near[0], near[1], near[2], red)
	fillTriangle(img, zbuffer, far[0], far[1], far[2], blue)

	assert.Equal(t, red, img.RGBAAt(10, 10), "nearer fill must survive a later farther one")
}

func TestFillTriangleClipsToImage(t *testing.T) {
	img, zbuffer := newCanvas(10, 10)
	col := color.RGBA{G: 255, A: 255}

	fillTriangle(img, zbuffer,
		screenPoint{X: -20, Y: -20, Z: 1},
		screenPoint{X: 30, Y: -20, Z: 1},
		screenPoint{X: 5, Y: 30, Z: 1},
		col)

	assert.Equal(t, col, img.RGBAAt(5, 5))
}

func TestFillTriangleSkipsDegenerate(t *testing.T) {
	img, zbuffer := newCanvas(10, 10)
	col := color.RGBA{G: 255, A: 255}

	// All three points on one scanline
	fillTriangle(img, zbuffer,
		screenPoint{X: 1, Y: 5, Z: 1},
		screenPoint{X: 4, Y: 5, Z: 1},
		screenPoint{X: 8, Y: 5, Z: 1},
		col)

	for x := 0; x < 10; x++ {
		assert.Equal(t, color.RGBA{}, img.RGBAAt(x, 4), "row above")
		assert.Equal(t, color.RGBA{}, img.RGBAAt(x, 6), "row below")
	}
}

func TestScanlineCross(t *testing.T) {
	a := screenPoint{X: 0, Y: 0, Z: 2}
	b := screenPoint{X: 10, Y: 10, Z: 4}

	hit, ok := scanlineCross(5, a, b)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, hit.X, 1e-9)
	assert.InDelta(t, 3.0, hit.Z, 1e-9)

	_, ok = scanlineCross(11, a, b)
	assert.False(t, ok, "scanline below the segment")

	_, ok = scanlineCross(5, screenPoint{X: 0, Y: 5}, screenPoint{X: 10, Y: 5})
	assert.False(t, ok, "horizontal segments are covered by their neighbors")
}

func TestDrawLineStaysInBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	col := color.RGBA{R: 255, A: 255}

	drawLine(img, -5, -5, 12, 12, col)

	assert.Equal(t, col, img.RGBAAt(4, 4))
}
