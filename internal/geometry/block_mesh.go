package geometry

import "github.com/annel0/blockverse/internal/vec"

// BlockMesh видимые грани одного блока
type BlockMesh struct {
	Pos   vec.Vec3
	Faces vec.Directions
}

// Planes возвращает плоскости видимых граней в порядке направлений
func (m BlockMesh) Planes() []WorldPlane {
	dirs := m.Faces.List()
	planes := make([]WorldPlane, len(dirs))
	for i, d := range dirs {
		planes[i] = WorldPlane{Pos: m.Pos, Dir: d}
	}
	return planes
}
