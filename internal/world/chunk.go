package world

import (
	"github.com/annel0/blockverse/internal/vec"
	"github.com/annel0/blockverse/internal/world/block"
)

// Chunk представляет колонну мира 16x64x16 блоков.
// Хранение плотное: индекс блока получается упаковкой InnerChunkPos.
type Chunk struct {
	pos   ChunkPos
	types [vec.ChunkVolume]block.Type
	data  [vec.ChunkVolume]block.Data
	count int
}

// ChunkData плоское представление чанка для кодеков.
// Data содержит только позиции с непустыми дополнительными данными.
type ChunkData struct {
	Pos   ChunkPos
	Types [vec.ChunkVolume]block.Type
	Data  map[uint16]block.Data
}

// NewChunk создаёт пустой чанк с указанными координатами
func NewChunk(pos ChunkPos) *Chunk {
	return &Chunk{pos: pos}
}

// NewChunkFromBlocks восстанавливает чанк из плоского представления.
// Индексы вне объёма чанка и данные для пустых блоков пропускаются.
func NewChunkFromBlocks(d *ChunkData) *Chunk {
	c := NewChunk(d.Pos)
	c.types = d.Types
	for _, t := range c.types {
		if t != block.Void {
			c.count++
		}
	}
	for index, extra := range d.Data {
		if int(index) >= vec.ChunkVolume || c.types[index] == block.Void {
			continue
		}
		c.data[index] = extra
	}
	return c
}

// Pos возвращает координаты чанка
func (c *Chunk) Pos() ChunkPos {
	return c.pos
}

// BlockCount возвращает количество непустых блоков
func (c *Chunk) BlockCount() int {
	return c.count
}

// AddBlock записывает блок, перезаписывая прежний.
// Запись Void эквивалентна RemoveBlock.
func (c *Chunk) AddBlock(b ChunkBlock) {
	if b.Type == block.Void {
		c.RemoveBlock(b.Pos)
		return
	}

	index := b.Pos.Index()
	if c.types[index] == block.Void {
		c.count++
	}
	c.types[index] = b.Type
	c.data[index] = b.Data
}

// RemoveBlock очищает позицию
func (c *Chunk) RemoveBlock(pos InnerChunkPos) {
	index := pos.Index()
	if c.types[index] != block.Void {
		c.count--
	}
	c.types[index] = block.Void
	c.data[index] = block.NoData
}

// GetBlock возвращает блок по локальной позиции; Void, если там пусто
func (c *Chunk) GetBlock(pos InnerChunkPos) ChunkBlock {
	index := pos.Index()
	return ChunkBlock{Type: c.types[index], Data: c.data[index], Pos: pos}
}

// GetWorldBlock возвращает блок по локальной позиции в мировых координатах
func (c *Chunk) GetWorldBlock(pos InnerChunkPos) WorldBlock {
	return c.GetBlock(pos).ToWorld(c.pos)
}

// GetAllBlocks возвращает все непустые блоки в порядке возрастания индекса
func (c *Chunk) GetAllBlocks() []ChunkBlock {
	out := make([]ChunkBlock, 0, c.count)
	for i, t := range c.types {
		if t == block.Void {
			continue
		}
		out = append(out, ChunkBlock{
			Type: t,
			Data: c.data[i],
			Pos:  vec.LocalFromIndex(uint16(i)),
		})
	}
	return out
}

// Blocks возвращает копию содержимого чанка
func (c *Chunk) Blocks() *ChunkData {
	d := &ChunkData{
		Pos:   c.pos,
		Types: c.types,
		Data:  make(map[uint16]block.Data),
	}
	for i := range c.data {
		if !c.data[i].IsNone() {
			d.Data[uint16(i)] = c.data[i]
		}
	}
	return d
}
