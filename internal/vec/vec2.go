package vec

import "fmt"

// Vec2 представляет координаты колонны-чанка. Y хранит мировую ось Z:
// чанк занимает всю высоту мира, поэтому вторая координата — это глубина.
type Vec2 struct {
	X, Y int16
}

// ToWorldOrigin возвращает мировую позицию угла чанка (x, 0, z)
func (v Vec2) ToWorldOrigin() Vec3 {
	return Vec3{
		X: int32(v.X) * ChunkWidth,
		Y: 0,
		Z: int32(v.Y) * ChunkWidth,
	}
}

// Adjacent возвращает четыре соседних чанка в плоскости (N, S, E, W)
func (v Vec2) Adjacent() [4]Vec2 {
	return [4]Vec2{
		{X: v.X, Y: v.Y + 1}, // North
		{X: v.X, Y: v.Y - 1}, // South
		{X: v.X + 1, Y: v.Y}, // East
		{X: v.X - 1, Y: v.Y}, // West
	}
}

// String возвращает идентификатор чанка в формате "x y"
func (v Vec2) String() string {
	return fmt.Sprintf("%d %d", v.X, v.Y)
}

// Less задаёт порядок чанков: сначала по X, затем по Y
func (v Vec2) Less(other Vec2) bool {
	if v.X != other.X {
		return v.X < other.X
	}
	return v.Y < other.Y
}
