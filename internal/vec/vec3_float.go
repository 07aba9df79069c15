package vec

import "github.com/go-gl/mathgl/mgl64"

// Component возвращает координату точки по оси
func Component(p mgl64.Vec3, a Axis) float64 {
	return p[a]
}

// WithComponent возвращает копию p с заменённой координатой
func WithComponent(p mgl64.Vec3, a Axis, value float64) mgl64.Vec3 {
	p[a] = value
	return p
}

// DirectionVector возвращает единичный вектор направления
func DirectionVector(d Direction) mgl64.Vec3 {
	return d.Offset().Float()
}

// Distance возвращает евклидово расстояние между точками
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}
