package geometry

import (
	"math"

	"github.com/annel0/blockverse/internal/vec"
	"github.com/go-gl/mathgl/mgl64"
)

// parallelEpsilon ниже этого значения компонента направления считается нулевой
const parallelEpsilon = 1e-9

// Ray луч взгляда из точки Pos с поворотом Rot
type Ray struct {
	Pos mgl64.Vec3
	Rot vec.SphericalRotation
}

// NewRay создаёт луч, смотрящий вдоль направления грани
func NewRay(pos mgl64.Vec3, dir vec.Direction) Ray {
	return Ray{Pos: pos, Rot: vec.RotationFromDirection(dir)}
}

// Dir возвращает единичный вектор направления луча
func (r Ray) Dir() mgl64.Vec3 {
	return r.Rot.UnitVector()
}

// MoveForward возвращает луч, сдвинутый вперёд на amount
func (r Ray) MoveForward(amount float64) Ray {
	return Ray{Pos: r.Pos.Add(r.Dir().Mul(amount)), Rot: r.Rot}
}

// DistanceFromPlane возвращает расстояние от начала луча до грани.
// Прямая луча рассматривается целиком: грань позади начала тоже находится.
func (r Ray) DistanceFromPlane(plane WorldPlane) (float64, bool) {
	dir := r.Dir()
	axis := plane.Dir.Axis()

	if math.Abs(dir[axis]) < parallelEpsilon {
		return 0, false
	}

	t := (plane.RelativeOffset() - r.Pos[axis]) / dir[axis]
	point := r.Pos.Add(dir.Mul(t))

	if !plane.Contains(point) {
		return 0, false
	}
	return r.Pos.Sub(point).Len(), true
}

// DistanceFromBlockMesh возвращает ближайшую видимую грань блока.
// При равных расстояниях выигрывает грань, идущая раньше в порядке направлений.
func (r Ray) DistanceFromBlockMesh(mesh BlockMesh) (WorldPlane, float64, bool) {
	var (
		bestPlane WorldPlane
		bestDist  float64
		found     bool
	)

	for _, plane := range mesh.Planes() {
		dist, ok := r.DistanceFromPlane(plane)
		if !ok {
			continue
		}
		if !found || dist < bestDist {
			bestPlane, bestDist, found = plane, dist, true
		}
	}
	return bestPlane, bestDist, found
}
