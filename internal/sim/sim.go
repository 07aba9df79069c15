package sim

import (
	"math"
	"sort"

	"github.com/annel0/blockverse/internal/logging"
	"github.com/annel0/blockverse/internal/physics"
	"github.com/annel0/blockverse/internal/vec"
	"github.com/annel0/blockverse/internal/world"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Gravity ускорение свободного падения, блоков/с²
	Gravity = 20.0
	// TerminalVelocity предельная скорость падения
	TerminalVelocity = 50.0
	// clampEpsilon минимальное расхождение, при котором ось считается упёршейся
	clampEpsilon = 1e-9
)

// Sim управляет телами в мире. Как и World, не синхронизирован.
type Sim struct {
	world     *world.World
	bodies    map[uint64]*Body
	behaviors map[uint64]Behavior
	nextID    uint64
	logger    *logging.Logger
	gravity   float64
}

// Option настраивает Sim при создании
type Option func(*Sim)

// WithLogger подключает логгер компонента
func WithLogger(l *logging.Logger) Option {
	return func(s *Sim) { s.logger = l }
}

// WithGravity заменяет ускорение свободного падения
func WithGravity(g float64) Option {
	return func(s *Sim) { s.gravity = g }
}

// New создаёт симуляцию поверх мира
func New(w *world.World, opts ...Option) *Sim {
	s := &Sim{
		world:     w,
		bodies:    make(map[uint64]*Body),
		behaviors: make(map[uint64]Behavior),
		nextID:    1,
		gravity:   Gravity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// World возвращает мир симуляции
func (s *Sim) World() *world.World {
	return s.world
}

// Spawn добавляет тело и возвращает его ID. behavior может быть nil.
func (s *Sim) Spawn(body *Body, behavior Behavior) uint64 {
	body.ID = s.nextID
	s.nextID++
	s.bodies[body.ID] = body
	if behavior != nil {
		s.behaviors[body.ID] = behavior
	}
	s.logger.Debug("spawn %s", body)
	return body.ID
}

// Despawn удаляет тело
func (s *Sim) Despawn(id uint64) bool {
	if _, ok := s.bodies[id]; !ok {
		return false
	}
	delete(s.bodies, id)
	delete(s.behaviors, id)
	return true
}

// Body возвращает тело по ID
func (s *Sim) Body(id uint64) (*Body, bool) {
	b, ok := s.bodies[id]
	return b, ok
}

// Bodies возвращает тела в порядке ID
func (s *Sim) Bodies() []*Body {
	out := make([]*Body, 0, len(s.bodies))
	for _, b := range s.bodies {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LookingAt возвращает грань, на которую смотрит тело
func (s *Sim) LookingAt(id uint64) (physics.LookingAt, bool) {
	b, ok := s.bodies[id]
	if !ok {
		return physics.LookingAt{}, false
	}
	return physics.GetPointedAtBlock(s.world, b.Ray())
}

// Step продвигает симуляцию на dt секунд: сначала поведения, затем физика.
// Тела обрабатываются в порядке ID, поэтому шаг детерминирован.
func (s *Sim) Step(dt float64) {
	for _, b := range s.Bodies() {
		if behavior, ok := s.behaviors[b.ID]; ok {
			behavior.Update(s, b, dt)
		}
	}
	for _, b := range s.Bodies() {
		s.move(b, dt)
	}
}

// move применяет гравитацию и сдвигает тело со столкновениями.
// Тело в незагруженном чанке не двигается.
func (s *Sim) move(b *Body, dt float64) {
	if !s.world.HasChunk(vec.FloorVec3(b.Box.Pos).ToChunkCoords()) {
		b.Velocity = mgl64.Vec3{}
		b.OnGround = false
		return
	}

	b.Velocity[1] = math.Max(b.Velocity[1]-s.gravity*dt, -TerminalVelocity)

	dest := b.Box.Pos.Add(b.Velocity.Mul(dt))
	pos := physics.MoveRect3(s.world, b.Box, dest)

	b.OnGround = false
	for axis := 0; axis < 3; axis++ {
		if math.Abs(pos[axis]-dest[axis]) <= clampEpsilon {
			continue
		}
		if axis == 1 && b.Velocity[1] <= 0 {
			b.OnGround = true
		}
		b.Velocity[axis] = 0
	}
	b.Box = b.Box.MoveTo(pos)
}

func (s *Sim) occupied(pos world.WorldPos) bool {
	for _, b := range s.bodies {
		if b.Occupies(pos) {
			return true
		}
	}
	return false
}
