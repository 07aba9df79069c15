// Package physics отвечает на запросы к воксельному полю: на какую грань
// смотрит луч и куда доедет движущийся параллелепипед.
package physics

import (
	"github.com/annel0/blockverse/internal/geometry"
	"github.com/annel0/blockverse/internal/vec"
	"github.com/annel0/blockverse/internal/world"
)

// BlockSource данные мира, нужные запросам. *world.World реализует его.
type BlockSource interface {
	GetBlock(pos world.WorldPos) world.WorldBlock
	GetMeshAt(pos world.WorldPos) (vec.Directions, error)
}

var _ BlockSource = (*world.World)(nil)

// meshAt возвращает сетку блока; незагруженные позиции и блоки
// без видимых граней пропускаются.
func meshAt(src BlockSource, pos vec.Vec3) (geometry.BlockMesh, bool) {
	faces, err := src.GetMeshAt(pos)
	if err != nil || faces.IsEmpty() {
		return geometry.BlockMesh{}, false
	}
	return geometry.BlockMesh{Pos: pos, Faces: faces}, true
}
