package world

import (
	"sort"

	"github.com/annel0/blockverse/internal/vec"
)

// ChunkMesh хранит видимые грани непустых блоков одного чанка
type ChunkMesh struct {
	pos   ChunkPos
	faces map[uint16]vec.Directions
}

// NewChunkMesh создаёт пустую сетку чанка
func NewChunkMesh(pos ChunkPos) *ChunkMesh {
	return &ChunkMesh{pos: pos, faces: make(map[uint16]vec.Directions)}
}

// Pos возвращает координаты чанка сетки
func (m *ChunkMesh) Pos() ChunkPos {
	return m.pos
}

// Insert записывает набор граней для позиции
func (m *ChunkMesh) Insert(pos WorldPos, faces vec.Directions) {
	m.faces[pos.LocalInChunk().Index()] = faces
}

// Get возвращает набор граней; пустой набор, если записи нет
func (m *ChunkMesh) Get(pos WorldPos) vec.Directions {
	return m.faces[pos.LocalInChunk().Index()]
}

// Delete удаляет запись позиции
func (m *ChunkMesh) Delete(pos WorldPos) {
	delete(m.faces, pos.LocalInChunk().Index())
}

// Len возвращает количество записей
func (m *ChunkMesh) Len() int {
	return len(m.faces)
}

// Each обходит записи в порядке возрастания упакованного индекса
func (m *ChunkMesh) Each(fn func(pos WorldPos, faces vec.Directions)) {
	indices := make([]uint16, 0, len(m.faces))
	for index := range m.faces {
		indices = append(indices, index)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	for _, index := range indices {
		fn(vec.LocalFromIndex(index).ToWorld(m.pos), m.faces[index])
	}
}
