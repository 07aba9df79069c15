package physics

import (
	"github.com/annel0/blockverse/internal/geometry"
	"github.com/annel0/blockverse/internal/vec"
)

// GetLineSegmentIntersectionInfo находит первую видимую грань, которую
// пересекает отрезок. Отрезок проходится единичными шагами (длина + 2),
// на каждом шаге проверяется куб 3x3x3 вокруг текущей точки.
func GetLineSegmentIntersectionInfo(src BlockSource, segment geometry.LineSegment) (geometry.IntersectionInfo, bool) {
	length := segment.Length()
	if length == 0 {
		return geometry.IntersectionInfo{}, false
	}
	step := segment.Delta().Mul(1 / length)

	for n := 0; n < int(length+2); n++ {
		marched := vec.FloorVec3(segment.Start.Add(step.Mul(float64(n))))

		var (
			best  geometry.IntersectionInfo
			found bool
		)
		for _, pos := range marched.Cube() {
			mesh, ok := meshAt(src, pos)
			if !ok {
				continue
			}
			info, ok := segment.FindIntersectionWithBlockMesh(mesh)
			if !ok {
				continue
			}
			if !found || info.Distance < best.Distance {
				best, found = info, true
			}
		}

		if found {
			return best, true
		}
	}
	return geometry.IntersectionInfo{}, false
}
