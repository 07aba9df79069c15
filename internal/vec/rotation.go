package vec

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphericalRotation описывает направление взгляда.
// Theta угол в горизонтальной плоскости [0, 2π), Phi — наклон [-π/2, π/2].
// Theta = 0 смотрит на North, π/2 — на East; Phi < 0 поднимает взгляд вверх.
type SphericalRotation struct {
	Theta float64
	Phi   float64
}

// RotationFromDirection возвращает поворот, смотрящий вдоль направления
func RotationFromDirection(d Direction) SphericalRotation {
	switch d {
	case North:
		return SphericalRotation{Theta: 0, Phi: 0}
	case South:
		return SphericalRotation{Theta: math.Pi, Phi: 0}
	case East:
		return SphericalRotation{Theta: math.Pi / 2, Phi: 0}
	case West:
		return SphericalRotation{Theta: 3 * math.Pi / 2, Phi: 0}
	case Up:
		return SphericalRotation{Theta: 0, Phi: -math.Pi / 2}
	default:
		return SphericalRotation{Theta: 0, Phi: math.Pi / 2}
	}
}

// Add складывает повороты, нормализуя Theta и ограничивая Phi
func (r SphericalRotation) Add(other SphericalRotation) SphericalRotation {
	theta := r.Theta + other.Theta
	phi := r.Phi + other.Phi

	if theta < 0 {
		theta += 2 * math.Pi
	} else if theta >= 2*math.Pi {
		theta -= 2 * math.Pi
	}

	phi = mgl64.Clamp(phi, -math.Pi/2, math.Pi/2)

	return SphericalRotation{Theta: theta, Phi: phi}
}

// UnitVector переводит поворот в единичный вектор
func (r SphericalRotation) UnitVector() mgl64.Vec3 {
	phiOffset := math.Pi/2 - r.Phi
	thetaOffset := r.Theta + math.Pi/2

	return mgl64.Vec3{
		-math.Cos(thetaOffset) * math.Sin(phiOffset),
		-math.Cos(phiOffset),
		math.Sin(thetaOffset) * math.Sin(phiOffset),
	}
}
