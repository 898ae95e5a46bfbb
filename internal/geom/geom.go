// Package geom provides the float pixel geometry shared by the input,
// overlay and surface packages.
package geom

import (
	"fmt"
	"image"
	"math"
)

// Point is a pixel coordinate. Viewport points are relative to the window,
// surface points are relative to the composition surface's top-left.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Image rounds p to the nearest integer point.
func (p Point) Image() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Rect is an axis aligned rectangle. Max is exclusive, as with image.Rectangle.
type Rect struct {
	Min, Max Point
}

// RectOf returns the rectangle with origin min and the given width and height.
func RectOf(min Point, w, h float64) Rect {
	return Rect{Min: min, Max: Point{min.X + w, min.Y + h}}
}

// FromImage converts an integer rectangle.
func FromImage(r image.Rectangle) Rect {
	return Rect{
		Min: Point{float64(r.Min.X), float64(r.Min.Y)},
		Max: Point{float64(r.Max.X), float64(r.Max.Y)},
	}
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Add translates r by p.
func (r Rect) Add(p Point) Rect { return Rect{r.Min.Add(p), r.Max.Add(p)} }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Image rounds r to an integer rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rectangle{Min: r.Min.Image(), Max: r.Max.Image()}
}

func (r Rect) String() string { return fmt.Sprintf("%v-%v", r.Min, r.Max) }

// ClampAxis limits v to [0, max]. A negative max, which happens when the
// element is larger than its container, pins the result to 0.
func ClampAxis(v, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}

// ClampInto keeps an element of size (w, h) at p fully inside a container of
// size (cw, ch), clamping each axis independently.
func ClampInto(p Point, w, h, cw, ch float64) Point {
	return Point{
		X: ClampAxis(p.X, cw-w),
		Y: ClampAxis(p.Y, ch-h),
	}
}
