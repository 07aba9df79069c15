package world

import (
	"math/rand"

	"github.com/annel0/blockverse/internal/vec"
	"github.com/annel0/blockverse/internal/world/block"
)

// Generator создаёт содержимое чанка по его координатам.
// Реализация обязана быть детерминированной для одной позиции.
type Generator interface {
	Generate(pos ChunkPos) *Chunk
}

// GeneratorFunc позволяет использовать функцию как Generator
type GeneratorFunc func(pos ChunkPos) *Chunk

// Generate вызывает f(pos)
func (f GeneratorFunc) Generate(pos ChunkPos) *Chunk {
	return f(pos)
}

// DefaultGroundHeight высота поверхности плоского мира по умолчанию
const DefaultGroundHeight = 8

// FlatGenerator генерирует плоский мир: каменное основание,
// слой травы сверху и редкие цветы на поверхности.
type FlatGenerator struct {
	Seed          int64   // Сид для расстановки цветов
	GroundHeight  int     // Количество заполненных слоёв (трава — верхний)
	FlowerDensity float64 // Вероятность цветка на колонне (от 0 до 1)
}

// NewFlatGenerator создаёт генератор с настройками по умолчанию
func NewFlatGenerator(seed int64) *FlatGenerator {
	return &FlatGenerator{
		Seed:          seed,
		GroundHeight:  DefaultGroundHeight,
		FlowerDensity: 0.02,
	}
}

// Generate генерирует чанк по его координатам
func (g *FlatGenerator) Generate(pos ChunkPos) *Chunk {
	chunk := NewChunk(pos)

	height := g.GroundHeight
	if height < 1 {
		return chunk
	}
	if height >= vec.ChunkHeight {
		height = vec.ChunkHeight - 1
	}

	// Уникальный сид для каждого чанка, чтобы результат не зависел от порядка генерации
	chunkSeed := g.Seed + int64(pos.X)*31 + int64(pos.Y)*17
	rng := rand.New(rand.NewSource(chunkSeed))

	for x := uint8(0); x < vec.ChunkWidth; x++ {
		for z := uint8(0); z < vec.ChunkWidth; z++ {
			for y := 0; y < height-1; y++ {
				chunk.AddBlock(ChunkBlock{Type: block.Stone, Pos: InnerChunkPos{X: x, Y: uint8(y), Z: z}})
			}
			chunk.AddBlock(ChunkBlock{Type: block.Grass, Pos: InnerChunkPos{X: x, Y: uint8(height - 1), Z: z}})

			if rng.Float64() < g.FlowerDensity {
				chunk.AddBlock(ChunkBlock{Type: block.RedFlower, Pos: InnerChunkPos{X: x, Y: uint8(height), Z: z}})
			}
		}
	}

	return chunk
}
