package physics

import (
	"github.com/annel0/blockverse/internal/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// CollisionEpsilon зазор между упёршейся гранью параллелепипеда и поверхностью.
// Больше PlaneEpsilon, чтобы лежащий на блоке объект не задевал боковые грани соседей.
const CollisionEpsilon = 0.03

// sweepHit ближайшее пересечение при сдвиге параллелепипеда
type sweepHit struct {
	info   geometry.IntersectionInfo
	corner mgl64.Vec3 // Смещение упёршейся вершины от минимального угла
}

// MoveRect3 сдвигает параллелепипед к dest и возвращает новую позицию
// минимального угла.
//
// Пути всех восьми вершин проверяются на пересечение с видимыми гранями.
// При столкновении координата по оси нормали грани ставится так, чтобы вершина
// осталась на CollisionEpsilon перед поверхностью, остальные оси берутся из dest.
// Затем выполняется ровно один дополнительный проход: скольжение от точки
// касания к исправленной позиции. Угол из трёх граней за два прохода может
// разрешиться не полностью.
func MoveRect3(src BlockSource, rect geometry.Rect3, dest mgl64.Vec3) mgl64.Vec3 {
	delta := dest.Sub(rect.Pos)

	first, ok := sweep(src, rect, delta)
	if !ok {
		return dest
	}

	axis := first.info.Plane.Dir.Axis()
	corrected := dest
	corrected[axis] = clampedCoordinate(first)

	// Позиция минимального угла в момент касания, прижатая по оси удара
	contact := first.info.Point.Sub(first.corner)
	contact[axis] = corrected[axis]

	second, ok := sweep(src, rect.MoveTo(contact), corrected.Sub(contact))
	if !ok {
		return corrected
	}

	corrected[second.info.Plane.Dir.Axis()] = clampedCoordinate(second)
	return corrected
}

// sweep находит ближайшее пересечение путей вершин со сдвигом delta
func sweep(src BlockSource, rect geometry.Rect3, delta mgl64.Vec3) (sweepHit, bool) {
	var (
		best  sweepHit
		found bool
	)

	for _, path := range rect.CornerPaths(delta) {
		info, ok := GetLineSegmentIntersectionInfo(src, path)
		if !ok {
			continue
		}
		if !found || info.Distance < best.info.Distance {
			best = sweepHit{info: info, corner: path.Start.Sub(rect.Pos)}
			found = true
		}
	}
	return best, found
}

// clampedCoordinate возвращает координату минимального угла по оси удара,
// при которой упёршаяся вершина отстоит от грани на CollisionEpsilon.
func clampedCoordinate(hit sweepHit) float64 {
	plane := hit.info.Plane
	axis := plane.Dir.Axis()

	surface := plane.RelativeOffset()
	if plane.Dir.IsOutward() {
		surface += CollisionEpsilon
	} else {
		surface -= CollisionEpsilon
	}
	return surface - hit.corner[axis]
}
