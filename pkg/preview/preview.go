// Package preview renders meshes to images for a quick look at an
// import result without opening a 3D tool.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/csvmesh/pkg/geometry"
	"github.com/philipparndt/csvmesh/pkg/mesh"
)

// Options controls the rendered image. The zero value renders an
// 800x600 front view on a dark background.
type Options struct {
	Width  int
	Height int

	// Pitch and Yaw orbit the camera around the mesh center, in
	// radians. Both zero looks straight down the Z axis.
	Pitch float64
	Yaw   float64

	// Zoom scales the viewing distance. Values above 1 move the
	// camera closer. Zero means 1.
	Zoom float64

	Background color.RGBA
	FaceColor  color.RGBA
	EdgeColor  color.RGBA
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.Zoom == 0 {
		o.Zoom = 1
	}
	if o.Background == (color.RGBA{}) {
		o.Background = color.RGBA{R: 30, G: 30, B: 34, A: 255}
	}
	if o.FaceColor == (color.RGBA{}) {
		o.FaceColor = color.RGBA{R: 204, G: 128, B: 204, A: 255}
	}
	if o.EdgeColor == (color.RGBA{}) {
		o.EdgeColor = color.RGBA{R: 255, G: 204, B: 102, A: 255}
	}
	return o
}

// Render draws the mesh into a new image. Faces are flat shaded by
// their angle to the view direction, loose edges are drawn as lines
// on top.
func Render(m *mesh.Mesh, opts Options) *image.RGBA {
	opts = opts.withDefaults()

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	zbuffer := make([]float64, opts.Width*opts.Height)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	camera := NewCamera(m.BoundingBox())
	camera.RotationX = opts.Pitch
	camera.RotationY = opts.Yaw
	camera.UpdatePosition()
	if opts.Zoom != 1 {
		camera.Zoom(1/opts.Zoom - 1)
	}

	width := float64(opts.Width)
	height := float64(opts.Height)
	view := camera.Target.Sub(camera.Position).Normalize()

	for i := range m.Faces {
		t := m.Triangle(i)

		var p [3]screenPoint
		for j, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			x, y, z := camera.Project(v, width, height)
			p[j] = screenPoint{X: x, Y: y, Z: z}
		}

		shade := faceShade(t.Normal(), view)
		fillTriangle(img, zbuffer, p[0], p[1], p[2], scaleColor(opts.FaceColor, shade))
	}

	for _, e := range m.LooseEdges() {
		x1, y1, _ := camera.Project(m.Vertices[e[0]], width, height)
		x2, y2, _ := camera.Project(m.Vertices[e[1]], width, height)
		drawLine(img, int(x1), int(y1), int(x2), int(y2), opts.EdgeColor)
	}

	return img
}

// faceShade maps the angle between a face and the view direction to a
// brightness factor. Both sides shade alike, so patches that face away
// stay visible.
func faceShade(normal, view geometry.Vector3) float64 {
	return 0.25 + 0.75*math.Abs(normal.Dot(view))
}

func scaleColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * f)),
		G: uint8(math.Round(float64(c.G) * f)),
		B: uint8(math.Round(float64(c.B) * f)),
		A: c.A,
	}
}
