package world

import (
	"fmt"

	"github.com/annel0/blockverse/internal/vec"
	"github.com/annel0/blockverse/internal/world/block"
)

// ChunkBlock блок, адресованный внутри чанка
type ChunkBlock struct {
	Type block.Type
	Data block.Data
	Pos  InnerChunkPos
}

// ToWorld переводит блок в мировые координаты чанка chunk
func (b ChunkBlock) ToWorld(chunk ChunkPos) WorldBlock {
	return WorldBlock{Type: b.Type, Data: b.Data, Pos: b.Pos.ToWorld(chunk)}
}

// WorldBlock блок, адресованный мировой позицией
type WorldBlock struct {
	Type block.Type
	Data block.Data
	Pos  WorldPos
}

// NewWorldBlock создаёт блок без дополнительных данных
func NewWorldBlock(t block.Type, pos WorldPos) WorldBlock {
	return WorldBlock{Type: t, Pos: pos}
}

// ToChunkBlock переводит блок в координаты его чанка
func (b WorldBlock) ToChunkBlock() ChunkBlock {
	return ChunkBlock{Type: b.Type, Data: b.Data, Pos: b.Pos.LocalInChunk()}
}

// Metadata возвращает свойства типа блока
func (b WorldBlock) Metadata() block.Metadata {
	return block.MetadataFor(b.Type)
}

// IsVoid проверяет, что на позиции нет блока
func (b WorldBlock) IsVoid() bool {
	return b.Type == block.Void
}

// String возвращает описание блока для логов
func (b WorldBlock) String() string {
	if b.Data.IsNone() {
		return fmt.Sprintf("%s@%s", b.Type, b.Pos)
	}
	return fmt.Sprintf("%s@%s[%s]", b.Type, b.Pos, b.Data)
}

// Faces возвращает грани, которые блок вообще может показать.
// Плоский блок с направлением картинки показывает одну грань.
func (b WorldBlock) Faces() vec.Directions {
	if b.Metadata().Shape == block.ShapeFlat {
		if dir, ok := b.Data.Image(); ok {
			return vec.DirectionsOf(dir)
		}
	}
	return vec.AllFaces
}

// VisibleFaces вычисляет видимые грани блока по его соседям.
// Отсутствующий в adjacent сосед считается пустым.
func (b WorldBlock) VisibleFaces(adjacent map[vec.Direction]WorldBlock) vec.Directions {
	if b.IsVoid() {
		return vec.NoDirections
	}

	self := b.Metadata()
	visible := vec.NoDirections

	for _, dir := range b.Faces().List() {
		if faceVisible(self, adjacent, dir) {
			visible = visible.With(dir)
		}
	}
	return visible
}

func faceVisible(self block.Metadata, adjacent map[vec.Direction]WorldBlock, dir vec.Direction) bool {
	neighbour, ok := adjacent[dir]
	if !ok || neighbour.IsVoid() {
		return true
	}

	other := neighbour.Metadata()
	// жидкость не рисует границу с другой жидкостью
	if self.Fluid && other.Fluid {
		return false
	}
	return other.Transparent
}
