package vec

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 представляет целочисленную позицию блока в мире
type Vec3 struct {
	X int32
	Y int32
	Z int32
}

// FloorVec3 возвращает позицию блока, содержащего точку p
func FloorVec3(p mgl64.Vec3) Vec3 {
	return Vec3{
		X: int32(math.Floor(p[0])),
		Y: int32(math.Floor(p[1])),
		Z: int32(math.Floor(p[2])),
	}
}

// ToChunkCoords преобразует мировые координаты в координаты чанка.
// Деление с округлением вниз: -1 попадает в чанк -1, а не 0.
func (v Vec3) ToChunkCoords() Vec2 {
	return Vec2{
		X: int16(floorDiv(v.X, ChunkWidth)),
		Y: int16(floorDiv(v.Z, ChunkWidth)),
	}
}

// LocalInChunk возвращает локальные координаты внутри чанка.
// Вызывать только для позиций с IsValid() == true.
func (v Vec3) LocalInChunk() Local {
	return Local{
		X: uint8(floorMod(v.X, ChunkWidth)),
		Y: uint8(v.Y),
		Z: uint8(floorMod(v.Z, ChunkWidth)),
	}
}

// IsValid проверяет, что высота лежит внутри колонны чанка
func (v Vec3) IsValid() bool {
	return v.Y >= 0 && v.Y < ChunkHeight
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Move сдвигает позицию на один блок в направлении
func (v Vec3) Move(d Direction) Vec3 {
	return v.Add(d.Offset())
}

// Component возвращает координату по оси
func (v Vec3) Component(a Axis) int32 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Float возвращает позицию угла блока как точку с плавающей запятой
func (v Vec3) Float() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Adjacent возвращает шесть соседей по граням в порядке AllDirections
func (v Vec3) Adjacent() [DirectionCount]Vec3 {
	var out [DirectionCount]Vec3
	for i, d := range AllDirections {
		out[i] = v.Move(d)
	}
	return out
}

// Cross возвращает саму позицию и её шесть соседей
func (v Vec3) Cross() []Vec3 {
	out := make([]Vec3, 0, DirectionCount+1)
	out = append(out, v)
	for _, d := range AllDirections {
		out = append(out, v.Move(d))
	}
	return out
}

// Cube возвращает 27 позиций куба 3x3x3 с центром в v
func (v Vec3) Cube() []Vec3 {
	out := make([]Vec3, 0, 27)
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dz := int32(-1); dz <= 1; dz++ {
				out = append(out, Vec3{X: v.X + dx, Y: v.Y + dy, Z: v.Z + dz})
			}
		}
	}
	return out
}

// DistanceTo возвращает квадрат расстояния до другого вектора
func (v Vec3) DistanceTo(other Vec3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return float64(dx*dx + dy*dy + dz*dz)
}

// String возвращает позицию в формате "x,y,z"
func (v Vec3) String() string {
	return fmt.Sprintf("%d,%d,%d", v.X, v.Y, v.Z)
}

func floorDiv(a, b int32) int32 {
	if a >= 0 {
		return a / b
	}
	return (a+1)/b - 1
}

func floorMod(a, b int32) int32 {
	return ((a % b) + b) % b
}
