package vec

import "strings"

// Axis обозначает одну из трёх осей мира. Значение совпадает с индексом
// компоненты в mgl64.Vec3.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String возвращает имя оси
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Direction представляет одно из шести направлений грани куба.
// North = +Z, East = +X, Up = +Y.
type Direction uint8

// Порядок констант задаёт номер бита в Directions.
const (
	North Direction = iota // 0
	South                  // 1
	Up                     // 2
	Down                   // 3
	East                   // 4
	West                   // 5
)

// DirectionCount количество направлений
const DirectionCount = 6

// AllDirections перечисляет направления в порядке битов
var AllDirections = [DirectionCount]Direction{North, South, Up, Down, East, West}

// String возвращает имя направления
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Valid проверяет, что значение является одним из шести направлений
func (d Direction) Valid() bool {
	return d < DirectionCount
}

// Axis возвращает ось нормали грани
func (d Direction) Axis() Axis {
	switch d {
	case North, South:
		return AxisZ
	case East, West:
		return AxisX
	default:
		return AxisY
	}
}

// IsOutward возвращает true для направлений вдоль положительной полуоси
// (East, North, Up). Плоскость такой грани лежит на pos+1.
func (d Direction) IsOutward() bool {
	return d == North || d == East || d == Up
}

// Opposite возвращает противоположное направление
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case Up:
		return Down
	case Down:
		return Up
	case East:
		return West
	default:
		return East
	}
}

// PerpendicularAxes возвращает две оси, лежащие в плоскости грани
func (d Direction) PerpendicularAxes() (Axis, Axis) {
	switch d.Axis() {
	case AxisZ:
		return AxisX, AxisY
	case AxisX:
		return AxisY, AxisZ
	default:
		return AxisX, AxisZ
	}
}

// Offset возвращает единичный сдвиг в направлении
func (d Direction) Offset() Vec3 {
	switch d {
	case North:
		return Vec3{Z: 1}
	case South:
		return Vec3{Z: -1}
	case Up:
		return Vec3{Y: 1}
	case Down:
		return Vec3{Y: -1}
	case East:
		return Vec3{X: 1}
	default:
		return Vec3{X: -1}
	}
}

// Directions набор граней, упакованный в 6 бит
type Directions uint8

const (
	// NoDirections пустой набор
	NoDirections Directions = 0
	// AllFaces все шесть граней
	AllFaces Directions = 1<<DirectionCount - 1
)

// DirectionsOf собирает набор из перечисленных направлений
func DirectionsOf(dirs ...Direction) Directions {
	var set Directions
	for _, d := range dirs {
		set = set.With(d)
	}
	return set
}

// Has проверяет наличие направления в наборе
func (s Directions) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// With возвращает набор с добавленным направлением
func (s Directions) With(d Direction) Directions {
	return s | 1<<d
}

// Without возвращает набор без указанного направления
func (s Directions) Without(d Direction) Directions {
	return s &^ (1 << d)
}

// Len количество направлений в наборе
func (s Directions) Len() int {
	n := 0
	for _, d := range AllDirections {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// IsEmpty проверяет, что набор пуст
func (s Directions) IsEmpty() bool {
	return s&AllFaces == 0
}

// List возвращает направления набора в порядке битов
func (s Directions) List() []Direction {
	out := make([]Direction, 0, DirectionCount)
	for _, d := range AllDirections {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String возвращает набор в виде "{North,Up}"
func (s Directions) String() string {
	names := make([]string, 0, DirectionCount)
	for _, d := range s.List() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
