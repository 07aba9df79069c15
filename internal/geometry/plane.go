// Package geometry содержит примитивы для пересечений с гранями блоков:
// плоскости граней, отрезки, лучи и параллелепипеды.
package geometry

import (
	"fmt"
	"math"

	"github.com/annel0/blockverse/internal/vec"
	"github.com/go-gl/mathgl/mgl64"
)

// PlaneEpsilon допуск принадлежности точки плоскости грани.
// Поглощает ошибку округления при решении параметрических уравнений.
const PlaneEpsilon = 0.01

// WorldPlane единичный квадрат, одна грань куба на позиции Pos
type WorldPlane struct {
	Pos vec.Vec3
	Dir vec.Direction
}

// NewWorldPlane создаёт плоскость грани
func NewWorldPlane(pos vec.Vec3, dir vec.Direction) WorldPlane {
	return WorldPlane{Pos: pos, Dir: dir}
}

// RelativeOffset возвращает координату плоскости по оси нормали
func (p WorldPlane) RelativeOffset() float64 {
	offset := float64(p.Pos.Component(p.Dir.Axis()))
	if p.Dir.IsOutward() {
		offset++
	}
	return offset
}

// Contains проверяет, лежит ли точка на грани с допуском PlaneEpsilon
func (p WorldPlane) Contains(point mgl64.Vec3) bool {
	if math.Abs(point[p.Dir.Axis()]-p.RelativeOffset()) >= PlaneEpsilon {
		return false
	}

	a, b := p.Dir.PerpendicularAxes()
	return p.withinCell(point, a) && p.withinCell(point, b)
}

func (p WorldPlane) withinCell(point mgl64.Vec3, axis vec.Axis) bool {
	origin := float64(p.Pos.Component(axis))
	value := point[axis]
	return origin-PlaneEpsilon <= value && value <= origin+1+PlaneEpsilon
}

// Center возвращает центр грани
func (p WorldPlane) Center() mgl64.Vec3 {
	center := p.Pos.Float().Add(mgl64.Vec3{0.5, 0.5, 0.5})
	center[p.Dir.Axis()] = p.RelativeOffset()
	return center
}

// String возвращает описание плоскости для логов
func (p WorldPlane) String() string {
	return fmt.Sprintf("%s:%s", p.Pos, p.Dir)
}
