package world

import "sort"

// ChangeSet множество чанков, чья сетка изменилась после операции.
// Потребитель перерисовывает или пересылает эти чанки.
type ChangeSet map[ChunkPos]struct{}

// NewChangeSet создаёт множество из перечисленных чанков
func NewChangeSet(positions ...ChunkPos) ChangeSet {
	cs := make(ChangeSet, len(positions))
	for _, p := range positions {
		cs.Add(p)
	}
	return cs
}

// Add добавляет чанк
func (cs ChangeSet) Add(pos ChunkPos) {
	cs[pos] = struct{}{}
}

// Has проверяет наличие чанка
func (cs ChangeSet) Has(pos ChunkPos) bool {
	_, ok := cs[pos]
	return ok
}

// Merge добавляет все чанки другого множества
func (cs ChangeSet) Merge(other ChangeSet) {
	for p := range other {
		cs.Add(p)
	}
}

// Sorted возвращает чанки по возрастанию (X, затем Y)
func (cs ChangeSet) Sorted() []ChunkPos {
	out := make([]ChunkPos, 0, len(cs))
	for p := range cs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// IDs возвращает строковые идентификаторы чанков ("x z") в порядке Sorted
func (cs ChangeSet) IDs() []string {
	sorted := cs.Sorted()
	out := make([]string, len(sorted))
	for i, p := range sorted {
		out[i] = p.String()
	}
	return out
}

// ChangeOp определяет операцию, вызвавшую изменение
type ChangeOp uint8

const (
	ChangeOpInsertChunk ChangeOp = iota // Загрузка чанка
	ChangeOpUnloadChunk                 // Выгрузка чанка
	ChangeOpAddBlock                    // Установка блока
	ChangeOpRemoveBlock                 // Удаление блока
	ChangeOpUpdateMesh                  // Полный пересчёт сетки
)

// String возвращает имя операции
func (op ChangeOp) String() string {
	switch op {
	case ChangeOpInsertChunk:
		return "insert_chunk"
	case ChangeOpUnloadChunk:
		return "unload_chunk"
	case ChangeOpAddBlock:
		return "add_block"
	case ChangeOpRemoveBlock:
		return "remove_block"
	case ChangeOpUpdateMesh:
		return "update_mesh"
	default:
		return "unknown"
	}
}

// ChangeEvent описывает одно изменение сеток мира
type ChangeEvent struct {
	Op      ChangeOp
	Origin  ChunkPos // Чанк, в котором произошла операция
	Changed ChangeSet
}

// ChangeListener получает события изменения сеток. Вызывается синхронно
// из мутирующего метода World и не должен обращаться к World обратно.
type ChangeListener func(ev ChangeEvent)
