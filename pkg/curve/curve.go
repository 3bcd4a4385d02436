// Package curve описывает геометрию пути врагов: ломаную из точек
// с параметризацией по доле пройденной длины.
package curve

import "math"

// Point - точка в пиксельных координатах.
type Point struct {
	X, Y float64
}

// Path is a polyline. Progress 0 is the first point, 1 is the last one.
type Path struct {
	points     []Point
	cumulative []float64 // длина пути до каждой точки
	length     float64
}

// New builds a path from waypoints. The slice is copied.
func New(points []Point) *Path {
	p := &Path{
		points:     append([]Point(nil), points...),
		cumulative: make([]float64, len(points)),
	}
	for i := 1; i < len(p.points); i++ {
		p.length += Distance(p.points[i-1], p.points[i])
		p.cumulative[i] = p.length
	}
	return p
}

// Length возвращает полную длину пути в пикселях.
func (p *Path) Length() float64 {
	return p.length
}

// Points возвращает копию опорных точек.
func (p *Path) Points() []Point {
	return append([]Point(nil), p.points...)
}

func (p *Path) Start() Point {
	if len(p.points) == 0 {
		return Point{}
	}
	return p.points[0]
}

func (p *Path) End() Point {
	if len(p.points) == 0 {
		return Point{}
	}
	return p.points[len(p.points)-1]
}

// PointAt returns the point at the given fraction of the path length.
// t is clamped to [0, 1].
func (p *Path) PointAt(t float64) Point {
	if len(p.points) == 0 {
		return Point{}
	}
	if t <= 0 || p.length == 0 {
		return p.points[0]
	}
	if t >= 1 {
		return p.End()
	}

	target := t * p.length
	for i := 1; i < len(p.points); i++ {
		if p.cumulative[i] < target {
			continue
		}
		segment := p.cumulative[i] - p.cumulative[i-1]
		if segment == 0 {
			return p.points[i]
		}
		f := (target - p.cumulative[i-1]) / segment
		a, b := p.points[i-1], p.points[i]
		return Point{X: a.X + (b.X-a.X)*f, Y: a.Y + (b.Y-a.Y)*f}
	}
	return p.End()
}

// Distance - евклидово расстояние между точками.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
