package geometry

import "github.com/go-gl/mathgl/mgl64"

// Rect3 параллелепипед, выровненный по осям. Pos — минимальный угол.
type Rect3 struct {
	Pos mgl64.Vec3
	Dim mgl64.Vec3
}

// Corners возвращает восемь вершин параллелепипеда
func (r Rect3) Corners() [8]mgl64.Vec3 {
	x, y, z := r.Pos[0], r.Pos[1], r.Pos[2]
	dx, dy, dz := r.Dim[0], r.Dim[1], r.Dim[2]
	return [8]mgl64.Vec3{
		{x, y, z},
		{x + dx, y, z},
		{x, y + dy, z},
		{x + dx, y + dy, z},
		{x, y, z + dz},
		{x + dx, y, z + dz},
		{x, y + dy, z + dz},
		{x + dx, y + dy, z + dz},
	}
}

// Max возвращает максимальный угол
func (r Rect3) Max() mgl64.Vec3 {
	return r.Pos.Add(r.Dim)
}

// MoveTo возвращает копию с минимальным углом в pos
func (r Rect3) MoveTo(pos mgl64.Vec3) Rect3 {
	return Rect3{Pos: pos, Dim: r.Dim}
}

// CornerPaths возвращает отрезки, которые проходят вершины при сдвиге на delta
func (r Rect3) CornerPaths(delta mgl64.Vec3) [8]LineSegment {
	var out [8]LineSegment
	for i, c := range r.Corners() {
		out[i] = LineSegment{Start: c, End: c.Add(delta)}
	}
	return out
}
