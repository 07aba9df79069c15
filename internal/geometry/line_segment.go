package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// LineSegment отрезок между двумя точками мира
type LineSegment struct {
	Start mgl64.Vec3
	End   mgl64.Vec3
}

// IntersectionInfo описывает пересечение отрезка с гранью
type IntersectionInfo struct {
	Point    mgl64.Vec3
	Plane    WorldPlane
	Distance float64 // От начала отрезка до точки
}

// Length возвращает длину отрезка
func (s LineSegment) Length() float64 {
	return s.End.Sub(s.Start).Len()
}

// Delta возвращает вектор от начала к концу
func (s LineSegment) Delta() mgl64.Vec3 {
	return s.End.Sub(s.Start)
}

// FindIntersection возвращает точку пересечения отрезка с гранью.
// Отрезок, целиком лежащий по одну сторону плоскости, не пересекает её.
func (s LineSegment) FindIntersection(plane WorldPlane) (mgl64.Vec3, bool) {
	axis := plane.Dir.Axis()
	start, end := s.Start[axis], s.End[axis]
	offset := plane.RelativeOffset()

	if start < offset && end < offset {
		return mgl64.Vec3{}, false
	}
	if start > offset && end > offset {
		return mgl64.Vec3{}, false
	}
	if end == start {
		return mgl64.Vec3{}, false
	}

	t := (offset - start) / (end - start)
	point := s.Start.Add(s.Delta().Mul(t))

	if !plane.Contains(point) {
		return mgl64.Vec3{}, false
	}
	return point, true
}

// FindIntersectionWithBlockMesh возвращает ближайшее к началу пересечение
// с видимыми гранями блока. При равных расстояниях выигрывает грань,
// чей центр ближе к началу отрезка.
func (s LineSegment) FindIntersectionWithBlockMesh(mesh BlockMesh) (IntersectionInfo, bool) {
	var (
		best  IntersectionInfo
		found bool
	)

	for _, plane := range mesh.Planes() {
		point, ok := s.FindIntersection(plane)
		if !ok {
			continue
		}
		info := IntersectionInfo{
			Point:    point,
			Plane:    plane,
			Distance: s.Start.Sub(point).Len(),
		}
		if !found || s.closer(info, best) {
			best = info
			found = true
		}
	}
	return best, found
}

func (s LineSegment) closer(a, b IntersectionInfo) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Plane.Center().Sub(s.Start).Len() < b.Plane.Center().Sub(s.Start).Len()
}

// String возвращает описание отрезка для логов
func (s LineSegment) String() string {
	return fmt.Sprintf("[%v -> %v]", s.Start, s.End)
}
