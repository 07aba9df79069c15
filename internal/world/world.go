package world

import (
	"fmt"
	"sort"

	"github.com/annel0/blockverse/internal/logging"
	"github.com/annel0/blockverse/internal/vec"
)

// World владеет загруженными чанками и их сетками видимости.
// Сетка чанка существует тогда и только тогда, когда чанк загружен,
// и всегда совпадает с результатом полного пересчёта.
//
// World не синхронизирован: вызывающий код сериализует доступ.
type World struct {
	chunks    map[ChunkPos]*Chunk
	meshes    map[ChunkPos]*ChunkMesh
	metrics   *Metrics
	logger    *logging.Logger
	listeners []ChangeListener
}

// Option настраивает World при создании
type Option func(*World)

// WithMetrics подключает Prometheus-метрики
func WithMetrics(m *Metrics) Option {
	return func(w *World) { w.metrics = m }
}

// WithLogger подключает логгер компонента
func WithLogger(l *logging.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithChangeListener добавляет подписчика на изменения сеток
func WithChangeListener(fn ChangeListener) Option {
	return func(w *World) {
		if fn != nil {
			w.listeners = append(w.listeners, fn)
		}
	}
}

// NewWorld создаёт пустой мир
func NewWorld(opts ...Option) *World {
	w := &World{
		chunks: make(map[ChunkPos]*Chunk),
		meshes: make(map[ChunkPos]*ChunkMesh),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// InsertChunk регистрирует чанк, строит его сетку и пересчитывает граничные
// столбцы загруженных соседей. Уже загруженный чанк с той же позицией заменяется.
func (w *World) InsertChunk(c *Chunk) ChangeSet {
	pos := c.Pos()
	w.chunks[pos] = c

	changed := NewChangeSet(pos)
	w.rebuildMesh(pos)

	for _, n := range pos.Adjacent() {
		if _, ok := w.chunks[n]; ok {
			w.refreshBoundary(n, pos)
			changed.Add(n)
		}
	}

	w.metrics.setChunks(len(w.chunks))
	w.logger.Debug("чанк %s загружен: %d блоков, обновлено сеток %d", pos, c.BlockCount(), len(changed))
	w.notify(ChangeOpInsertChunk, pos, changed)
	return changed
}

// LoadChunk загружает пустой чанк, если его ещё нет, и возвращает его.
// Возвращённый чанк только читается, как и у GetChunk.
func (w *World) LoadChunk(pos ChunkPos) *Chunk {
	if c, ok := w.chunks[pos]; ok {
		return c
	}
	c := NewChunk(pos)
	w.InsertChunk(c)
	return c
}

// LoadGenerated загружает чанки, созданные генератором.
// Уже загруженные позиции пропускаются.
func (w *World) LoadGenerated(gen Generator, positions ...ChunkPos) ChangeSet {
	changed := make(ChangeSet)
	for _, pos := range positions {
		if _, ok := w.chunks[pos]; ok {
			continue
		}
		changed.Merge(w.InsertChunk(gen.Generate(pos)))
	}
	return changed
}

// UnloadChunk выгружает чанк вместе с сеткой и пересчитывает граничные
// столбцы соседей.
// Результат включает выгруженный чанк.
func (w *World) UnloadChunk(pos ChunkPos) (ChangeSet, error) {
	if _, ok := w.chunks[pos]; !ok {
		return nil, fmt.Errorf("unload chunk %s: %w", pos, ErrChunkNotLoaded)
	}

	delete(w.chunks, pos)
	delete(w.meshes, pos)

	changed := NewChangeSet(pos)
	for _, n := range pos.Adjacent() {
		if _, ok := w.chunks[n]; ok {
			w.refreshBoundary(n, pos)
			changed.Add(n)
		}
	}

	w.metrics.setChunks(len(w.chunks))
	w.logger.Debug("чанк %s выгружен", pos)
	w.notify(ChangeOpUnloadChunk, pos, changed)
	return changed, nil
}

// UpdateChunkMesh полностью пересчитывает сетку чанка
func (w *World) UpdateChunkMesh(pos ChunkPos) error {
	if _, ok := w.chunks[pos]; !ok {
		return fmt.Errorf("update mesh %s: %w", pos, ErrChunkNotLoaded)
	}
	w.rebuildMesh(pos)
	w.notify(ChangeOpUpdateMesh, pos, NewChangeSet(pos))
	return nil
}

// AddBlock записывает блок и пересчитывает сетку на позиции и у шести соседей.
// Соседи в незагруженных чанках пропускаются.
func (w *World) AddBlock(b WorldBlock) (ChangeSet, error) {
	chunk, err := w.chunkForMutation(b.Pos)
	if err != nil {
		w.logger.Warn("блок %s не установлен: %v", b, err)
		return nil, fmt.Errorf("add block %s: %w", b.Pos, err)
	}

	chunk.AddBlock(b.ToChunkBlock())
	changed := w.refreshCross(b.Pos)

	w.metrics.mutation(ChangeOpAddBlock)
	w.notify(ChangeOpAddBlock, chunk.Pos(), changed)
	return changed, nil
}

// RemoveBlock очищает позицию и пересчитывает сетку так же, как AddBlock
func (w *World) RemoveBlock(pos WorldPos) (ChangeSet, error) {
	chunk, err := w.chunkForMutation(pos)
	if err != nil {
		w.logger.Warn("блок %s не удалён: %v", pos, err)
		return nil, fmt.Errorf("remove block %s: %w", pos, err)
	}

	chunk.RemoveBlock(pos.LocalInChunk())
	changed := w.refreshCross(pos)

	w.metrics.mutation(ChangeOpRemoveBlock)
	w.notify(ChangeOpRemoveBlock, chunk.Pos(), changed)
	return changed, nil
}

// GetBlock возвращает блок на позиции. Для незагруженных позиций
// возвращается Void с этой позицией.
func (w *World) GetBlock(pos WorldPos) WorldBlock {
	if !pos.IsValid() {
		return WorldBlock{Pos: pos}
	}
	chunk, ok := w.chunks[pos.ToChunkCoords()]
	if !ok {
		return WorldBlock{Pos: pos}
	}
	return chunk.GetWorldBlock(pos.LocalInChunk())
}

// IsBlockLoaded проверяет, загружен ли чанк позиции
func (w *World) IsBlockLoaded(pos WorldPos) bool {
	if !pos.IsValid() {
		return false
	}
	_, ok := w.chunks[pos.ToChunkCoords()]
	return ok
}

// GetMeshAt возвращает видимые грани блока на позиции
func (w *World) GetMeshAt(pos WorldPos) (vec.Directions, error) {
	if !pos.IsValid() {
		return vec.NoDirections, fmt.Errorf("mesh at %s: %w", pos, ErrChunkNotLoaded)
	}
	mesh, ok := w.meshes[pos.ToChunkCoords()]
	if !ok {
		return vec.NoDirections, fmt.Errorf("mesh at %s: %w", pos, ErrChunkNotLoaded)
	}
	return mesh.Get(pos), nil
}

// GetChunk возвращает загруженный чанк. Чанк принадлежит миру и только
// читается: блоки меняются через AddBlock и RemoveBlock, иначе сетка разойдётся.
func (w *World) GetChunk(pos ChunkPos) (*Chunk, bool) {
	c, ok := w.chunks[pos]
	return c, ok
}

// HasChunk проверяет, загружен ли чанк
func (w *World) HasChunk(pos ChunkPos) bool {
	_, ok := w.chunks[pos]
	return ok
}

// GetChunkMesh возвращает сетку загруженного чанка
func (w *World) GetChunkMesh(pos ChunkPos) (*ChunkMesh, bool) {
	m, ok := w.meshes[pos]
	return m, ok
}

// ChunkCount возвращает количество загруженных чанков
func (w *World) ChunkCount() int {
	return len(w.chunks)
}

// ChunkPositions возвращает отсортированные позиции загруженных чанков
func (w *World) ChunkPositions() []ChunkPos {
	out := make([]ChunkPos, 0, len(w.chunks))
	for p := range w.chunks {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (w *World) chunkForMutation(pos WorldPos) (*Chunk, error) {
	if !pos.IsValid() {
		return nil, ErrPositionOutOfRange
	}
	chunk, ok := w.chunks[pos.ToChunkCoords()]
	if !ok {
		w.metrics.chunkNotLoaded()
		return nil, ErrChunkNotLoaded
	}
	return chunk, nil
}

// refreshCross пересчитывает записи сетки на позиции и у её соседей
func (w *World) refreshCross(pos WorldPos) ChangeSet {
	changed := make(ChangeSet)
	adjacent := make(map[vec.Direction]WorldBlock, vec.DirectionCount)
	updated := 0

	for _, p := range pos.Cross() {
		mesh, ok := w.meshes[p.ToChunkCoords()]
		if !ok || !p.IsValid() {
			continue
		}
		w.updateEntry(mesh, w.GetBlock(p), adjacent)
		changed.Add(mesh.Pos())
		updated++
	}

	w.metrics.meshRecomputed(updated)
	return changed
}

// rebuildMesh строит сетку чанка с нуля
func (w *World) rebuildMesh(pos ChunkPos) {
	chunk := w.chunks[pos]
	mesh := NewChunkMesh(pos)
	adjacent := make(map[vec.Direction]WorldBlock, vec.DirectionCount)

	blocks := chunk.GetAllBlocks()
	for _, b := range blocks {
		w.updateEntry(mesh, b.ToWorld(pos), adjacent)
	}

	w.meshes[pos] = mesh
	w.metrics.meshRecomputed(len(blocks))
}

// refreshBoundary пересчитывает записи сетки n в слое 16x64, который
// граничит с соседним чанком toward. Остальные записи n от toward не зависят.
func (w *World) refreshBoundary(n, toward ChunkPos) {
	mesh := w.meshes[n]
	adjacent := make(map[vec.Direction]WorldBlock, vec.DirectionCount)
	const last = vec.ChunkWidth - 1

	for i := uint8(0); i < vec.ChunkWidth; i++ {
		for y := uint8(0); y < vec.ChunkHeight; y++ {
			var local InnerChunkPos
			switch {
			case toward.X > n.X:
				local = InnerChunkPos{X: last, Y: y, Z: i}
			case toward.X < n.X:
				local = InnerChunkPos{X: 0, Y: y, Z: i}
			case toward.Y > n.Y:
				local = InnerChunkPos{X: i, Y: y, Z: last}
			default:
				local = InnerChunkPos{X: i, Y: y, Z: 0}
			}
			w.updateEntry(mesh, w.GetBlock(local.ToWorld(n)), adjacent)
		}
	}
	w.metrics.meshRecomputed(vec.ChunkWidth * vec.ChunkHeight)
}

// updateEntry записывает в сетку видимые грани блока b.
// adjacent переиспользуется между вызовами.
func (w *World) updateEntry(mesh *ChunkMesh, b WorldBlock, adjacent map[vec.Direction]WorldBlock) {
	if b.IsVoid() {
		mesh.Delete(b.Pos)
		return
	}

	clear(adjacent)
	for _, dir := range vec.AllDirections {
		n := b.Pos.Move(dir)
		if w.IsBlockLoaded(n) {
			adjacent[dir] = w.GetBlock(n)
		}
	}
	mesh.Insert(b.Pos, b.VisibleFaces(adjacent))
}

func (w *World) notify(op ChangeOp, origin ChunkPos, changed ChangeSet) {
	if len(w.listeners) == 0 || len(changed) == 0 {
		return
	}
	ev := ChangeEvent{Op: op, Origin: origin, Changed: changed}
	for _, fn := range w.listeners {
		fn(ev)
	}
}
