package physics

import (
	"github.com/annel0/blockverse/internal/geometry"
	"github.com/annel0/blockverse/internal/vec"
	"github.com/annel0/blockverse/internal/world"
)

// MaxReach количество единичных шагов, на которое луч ищет блок
const MaxReach = 13

// LookingAt описывает грань, на которую указывает луч
type LookingAt struct {
	Block    world.WorldBlock
	Face     vec.Direction
	Distance float64
}

// GetPointedAtBlock идёт вдоль луча единичными шагами и на каждом шаге
// проверяет видимые грани в кубе 3x3x3 вокруг текущей точки.
// Возвращает ближайшую грань на первом шаге, где нашлось хоть одно пересечение.
func GetPointedAtBlock(src BlockSource, ray geometry.Ray) (LookingAt, bool) {
	for n := 0; n < MaxReach; n++ {
		marched := vec.FloorVec3(ray.MoveForward(float64(n)).Pos)

		var (
			best  LookingAt
			found bool
		)
		for _, pos := range marched.Cube() {
			mesh, ok := meshAt(src, pos)
			if !ok {
				continue
			}
			plane, dist, ok := ray.DistanceFromBlockMesh(mesh)
			if !ok {
				continue
			}
			if !found || dist < best.Distance {
				best = LookingAt{Block: src.GetBlock(pos), Face: plane.Dir, Distance: dist}
				found = true
			}
		}

		if found {
			return best, true
		}
	}
	return LookingAt{}, false
}
