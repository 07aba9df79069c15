package vec

// Размеры колонны чанка. Упаковка индекса опирается на то, что ширина
// равна 2^4, а высота 2^6: x занимает биты 10..13, y — 4..9, z — 0..3.
const (
	ChunkWidth  = 16
	ChunkHeight = 64
	ChunkVolume = ChunkWidth * ChunkHeight * ChunkWidth

	zBits  = 4
	yBits  = 6
	yShift = zBits
	xShift = zBits + yBits

	zMask = 1<<zBits - 1
	yMask = (1<<yBits - 1) << yShift
)

// Local позиция блока внутри чанка: x,z ∈ [0,16), y ∈ [0,64)
type Local struct {
	X, Y, Z uint8
}

// Index упаковывает локальную позицию в линейный индекс [0, ChunkVolume)
func (l Local) Index() uint16 {
	return uint16(l.X)<<xShift | uint16(l.Y)<<yShift | uint16(l.Z)
}

// LocalFromIndex распаковывает индекс обратно в локальную позицию
func LocalFromIndex(index uint16) Local {
	return Local{
		X: uint8(index >> xShift),
		Y: uint8((index & yMask) >> yShift),
		Z: uint8(index & zMask),
	}
}

// Valid проверяет, что компоненты лежат в границах чанка
func (l Local) Valid() bool {
	return l.X < ChunkWidth && l.Y < ChunkHeight && l.Z < ChunkWidth
}

// ToWorld возвращает мировую позицию для чанка chunk
func (l Local) ToWorld(chunk Vec2) Vec3 {
	return chunk.ToWorldOrigin().Add(Vec3{X: int32(l.X), Y: int32(l.Y), Z: int32(l.Z)})
}
