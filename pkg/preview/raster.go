package preview

import (
	"image"
	"image/color"
	"math"
)

// screenPoint is a projected vertex with its view depth.
type screenPoint struct {
	X, Y, Z float64
}

// fillTriangle rasterizes a projected triangle with scanline z-buffering.
// Depth is interpolated linearly in screen space, which is close enough
// for a preview.
func fillTriangle(img *image.RGBA, zbuffer []float64, p1, p2, p3 screenPoint, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Max.X

	yTop := int(math.Max(0, math.Ceil(math.Min(p1.Y, math.Min(p2.Y, p3.Y)))))
	yBottom := int(math.Min(float64(bounds.Max.Y-1), math.Floor(math.Max(p1.Y, math.Max(p2.Y, p3.Y)))))

	for y := yTop; y <= yBottom; y++ {
		fy := float64(y)

		var hits [3]screenPoint
		n := 0
		for _, seg := range [3][2]screenPoint{{p1, p2}, {p2, p3}, {p1, p3}} {
			if hit, ok := scanlineCross(fy, seg[0], seg[1]); ok {
				hits[n] = hit
				n++
			}
		}
		if n < 2 {
			continue
		}

		start, end := hits[0], hits[0]
		for i := 1; i < n; i++ {
			if hits[i].X < start.X {
				start = hits[i]
			}
			if hits[i].X > end.X {
				end = hits[i]
			}
		}

		xStart := int(math.Max(0, math.Ceil(start.X)))
		xEnd := int(math.Min(float64(width-1), math.Floor(end.X)))

		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if end.X != start.X {
				t = (float64(x) - start.X) / (end.X - start.X)
			}
			z := start.Z + t*(end.Z-start.Z)

			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// scanlineCross intersects a horizontal scanline with the segment a-b.
func scanlineCross(fy float64, a, b screenPoint) (screenPoint, bool) {
	if a.Y == b.Y || fy < math.Min(a.Y, b.Y) || fy > math.Max(a.Y, b.Y) {
		return screenPoint{}, false
	}
	t := (fy - a.Y) / (b.Y - a.Y)
	return screenPoint{
		X: a.X + t*(b.X-a.X),
		Y: fy,
		Z: a.Z + t*(b.Z-a.Z),
	}, true
}

// drawLine draws a line using Bresenham's algorithm.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	bounds := img.Bounds()
	for {
		if x1 >= bounds.Min.X && x1 < bounds.Max.X && y1 >= bounds.Min.Y && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
