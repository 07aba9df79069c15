package world

import (
	"errors"

	"github.com/annel0/blockverse/internal/vec"
)

// Позиции мира. Хранятся в пакете vec, чтобы геометрия и мир
// пользовались одними типами без взаимных импортов.
type (
	// WorldPos целочисленная позиция блока в мире
	WorldPos = vec.Vec3
	// ChunkPos координаты колонны-чанка; поле Y хранит мировую Z
	ChunkPos = vec.Vec2
	// InnerChunkPos позиция внутри чанка
	InnerChunkPos = vec.Local
)

var (
	// ErrChunkNotLoaded возвращается, когда чанк позиции не загружен
	ErrChunkNotLoaded = errors.New("chunk not loaded")
	// ErrPositionOutOfRange возвращается для позиций вне высоты мира
	ErrPositionOutOfRange = errors.New("position out of range")
)
