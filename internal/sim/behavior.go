package sim

import (
	"math"

	"github.com/annel0/blockverse/internal/world"
	"github.com/annel0/blockverse/internal/world/block"
)

// Behavior определяет поведение тела. Update вызывается перед физическим шагом.
type Behavior interface {
	Update(s *Sim, body *Body, dt float64)
}

// BehaviorFunc позволяет использовать функцию как Behavior
type BehaviorFunc func(s *Sim, body *Body, dt float64)

func (f BehaviorFunc) Update(s *Sim, body *Body, dt float64) { f(s, body, dt) }

// Walker идёт по горизонтали в сторону взгляда
type Walker struct {
	Speed float64 // Блоков в секунду
}

func (w *Walker) Update(s *Sim, body *Body, dt float64) {
	theta := body.Look.Theta
	// Theta = 0 смотрит на North (+Z), π/2 — на East (+X)
	body.Velocity[0] = math.Sin(theta) * w.Speed
	body.Velocity[2] = math.Cos(theta) * w.Speed
}

// Builder раз в Every шагов ставит блок перед гранью, на которую смотрит,
// а на следующем действии убирает поставленный блок.
type Builder struct {
	Every int
	Block block.Type

	ticks  int
	placed *world.WorldPos
}

// NewBuilder создаёт строителя
func NewBuilder(every int, t block.Type) *Builder {
	if every < 1 {
		every = 1
	}
	return &Builder{Every: every, Block: t}
}

func (b *Builder) Update(s *Sim, body *Body, dt float64) {
	b.ticks++
	if b.ticks%b.Every != 0 {
		return
	}

	if b.placed != nil {
		pos := *b.placed
		b.placed = nil
		if _, err := s.world.RemoveBlock(pos); err != nil {
			s.logger.Warn("%s: не удалось убрать блок %s: %v", body, pos, err)
			return
		}
		s.logger.Debug("%s убрал %s", body, pos)
		return
	}

	target, ok := s.LookingAt(body.ID)
	if !ok {
		return
	}

	pos := target.Block.Pos.Move(target.Face)
	if !pos.IsValid() || !s.world.GetBlock(pos).IsVoid() || s.occupied(pos) {
		return
	}
	if _, err := s.world.AddBlock(world.NewWorldBlock(b.Block, pos)); err != nil {
		s.logger.Warn("%s: не удалось поставить блок %s: %v", body, pos, err)
		return
	}
	b.placed = &pos
	s.logger.Debug("%s поставил %s на грань %s блока %s", body, b.Block, target.Face, target.Block)
}
