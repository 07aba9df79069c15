// Package sim двигает тела с хитбоксами по миру блоков: гравитация,
// скользящие столкновения и взаимодействие с блоками через луч взгляда.
package sim

import (
	"fmt"

	"github.com/annel0/blockverse/internal/geometry"
	"github.com/annel0/blockverse/internal/vec"
	"github.com/go-gl/mathgl/mgl64"
)

// Body представляет тело в мире
type Body struct {
	ID       uint64                // Уникальный идентификатор
	Box      geometry.Rect3        // Хитбокс, Pos — минимальный угол
	Velocity mgl64.Vec3            // Скорость в блоках в секунду
	Look     vec.SphericalRotation // Направление взгляда
	EyeLevel float64               // Высота глаз над нижней гранью хитбокса
	OnGround bool                  // Стоит ли тело на поверхности после последнего шага
}

// DefaultBodySize размер хитбокса по умолчанию
var DefaultBodySize = mgl64.Vec3{0.6, 1.8, 0.6}

// NewBody создаёт тело с минимальным углом в pos
func NewBody(pos mgl64.Vec3, size mgl64.Vec3) *Body {
	return &Body{
		Box:      geometry.Rect3{Pos: pos, Dim: size},
		EyeLevel: size[1] * 0.9,
	}
}

// Eye возвращает точку глаз: центр хитбокса по X/Z на высоте EyeLevel
func (b *Body) Eye() mgl64.Vec3 {
	return b.Box.Pos.Add(mgl64.Vec3{b.Box.Dim[0] / 2, b.EyeLevel, b.Box.Dim[2] / 2})
}

// Ray возвращает луч взгляда
func (b *Body) Ray() geometry.Ray {
	return geometry.Ray{Pos: b.Eye(), Rot: b.Look}
}

// Occupies проверяет, пересекает ли хитбокс ячейку блока
func (b *Body) Occupies(pos vec.Vec3) bool {
	lo, hi := b.Box.Pos, b.Box.Max()
	cell := pos.Float()
	for axis := 0; axis < 3; axis++ {
		if hi[axis] <= cell[axis] || lo[axis] >= cell[axis]+1 {
			return false
		}
	}
	return true
}

func (b *Body) String() string {
	return fmt.Sprintf("body#%d@(%.2f,%.2f,%.2f)", b.ID, b.Box.Pos[0], b.Box.Pos[1], b.Box.Pos[2])
}
