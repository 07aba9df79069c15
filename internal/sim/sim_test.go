package sim

import (
	"math"
	"testing"

	"github.com/annel0/blockverse/internal/physics"
	"github.com/annel0/blockverse/internal/vec"
	"github.com/annel0/blockverse/internal/world"
	"github.com/annel0/blockverse/internal/world/block"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	groundTop = 3.0
	dt        = 0.05
)

// newFlatWorld создаёт мир с одним плоским чанком (0,0): верхний слой на y=2
func newFlatWorld(t *testing.T, extra ...world.WorldPos) *world.World {
	t.Helper()
	w := world.NewWorld()
	w.LoadGenerated(&world.FlatGenerator{GroundHeight: int(groundTop)}, world.ChunkPos{})
	for _, p := range extra {
		_, err := w.AddBlock(world.NewWorldBlock(block.Stone, p))
		require.NoError(t, err)
	}
	return w
}

func TestBodyFallsOntoGround(t *testing.T) {
	s := New(newFlatWorld(t))
	id := s.Spawn(NewBody(mgl64.Vec3{4.2, 6, 4.2}, DefaultBodySize), nil)

	for i := 0; i < 40; i++ {
		s.Step(dt)
	}

	body, ok := s.Body(id)
	require.True(t, ok)
	assert.True(t, body.OnGround)
	assert.InDelta(t, groundTop+physics.CollisionEpsilon, body.Box.Pos[1], 1e-9)
	assert.InDelta(t, 4.2, body.Box.Pos[0], 1e-9)
	assert.Zero(t, body.Velocity[1])
}

func TestWalkerStopsAtWall(t *testing.T) {
	s := New(newFlatWorld(t,
		world.WorldPos{X: 8, Y: 3, Z: 4},
		world.WorldPos{X: 8, Y: 4, Z: 4},
	))

	body := NewBody(mgl64.Vec3{4.2, groundTop + physics.CollisionEpsilon, 4.2}, DefaultBodySize)
	body.Look = vec.RotationFromDirection(vec.East)
	id := s.Spawn(body, &Walker{Speed: 4})

	for i := 0; i < 40; i++ {
		s.Step(dt)
	}

	got, _ := s.Body(id)
	assert.InDelta(t, 8-physics.CollisionEpsilon-DefaultBodySize[0], got.Box.Pos[0], 1e-9)
	assert.InDelta(t, groundTop+physics.CollisionEpsilon, got.Box.Pos[1], 1e-9)
	assert.InDelta(t, 4.2, got.Box.Pos[2], 1e-9)
	assert.True(t, got.OnGround)
}

func TestBuilderPlacesAndRemoves(t *testing.T) {
	w := newFlatWorld(t,
		world.WorldPos{X: 8, Y: 3, Z: 4},
		world.WorldPos{X: 8, Y: 4, Z: 4},
	)
	s := New(w)

	body := NewBody(mgl64.Vec3{4.2, groundTop + physics.CollisionEpsilon, 4.2}, DefaultBodySize)
	body.Look = vec.RotationFromDirection(vec.East)
	id := s.Spawn(body, NewBuilder(1, block.Planks))

	target, ok := s.LookingAt(id)
	require.True(t, ok)
	assert.Equal(t, world.WorldPos{X: 8, Y: 4, Z: 4}, target.Block.Pos)
	assert.Equal(t, vec.West, target.Face)

	placed := world.WorldPos{X: 7, Y: 4, Z: 4}

	s.Step(dt)
	assert.Equal(t, block.Planks, w.GetBlock(placed).Type)
	faces, err := w.GetMeshAt(placed)
	require.NoError(t, err)
	assert.True(t, faces.Has(vec.West))

	s.Step(dt)
	assert.True(t, w.GetBlock(placed).IsVoid())
}

func TestBuilderDoesNotBuildInsideBody(t *testing.T) {
	w := newFlatWorld(t)
	s := New(w)

	body := NewBody(mgl64.Vec3{4.2, groundTop + physics.CollisionEpsilon, 4.2}, DefaultBodySize)
	body.Look = vec.RotationFromDirection(vec.Down)
	s.Spawn(body, NewBuilder(1, block.Planks))

	s.Step(dt)
	assert.True(t, w.GetBlock(world.WorldPos{X: 4, Y: 3, Z: 4}).IsVoid())
}

func TestBodyInUnloadedChunkStays(t *testing.T) {
	s := New(newFlatWorld(t))
	start := mgl64.Vec3{-5, 10, -5}
	id := s.Spawn(NewBody(start, DefaultBodySize), nil)

	s.Step(dt)

	body, _ := s.Body(id)
	assert.Equal(t, start, body.Box.Pos)
	assert.False(t, body.OnGround)
}

func TestSpawnDespawn(t *testing.T) {
	s := New(world.NewWorld(), WithGravity(0))

	a := s.Spawn(NewBody(mgl64.Vec3{}, DefaultBodySize), nil)
	b := s.Spawn(NewBody(mgl64.Vec3{1, 0, 0}, DefaultBodySize), nil)
	assert.Less(t, a, b)

	bodies := s.Bodies()
	require.Len(t, bodies, 2)
	assert.Equal(t, a, bodies[0].ID)

	assert.True(t, s.Despawn(a))
	assert.False(t, s.Despawn(a))
	_, ok := s.LookingAt(a)
	assert.False(t, ok)
	assert.Len(t, s.Bodies(), 1)
}

func TestWalkerHeading(t *testing.T) {
	body := NewBody(mgl64.Vec3{}, DefaultBodySize)
	body.Look = vec.RotationFromDirection(vec.North)
	(&Walker{Speed: 2}).Update(nil, body, dt)
	assert.InDelta(t, 0, body.Velocity[0], 1e-9)
	assert.InDelta(t, 2, body.Velocity[2], 1e-9)

	// направление ходьбы совпадает с горизонтальной проекцией взгляда
	body.Look = vec.SphericalRotation{Theta: math.Pi / 4}
	(&Walker{Speed: 1}).Update(nil, body, dt)
	dir := body.Look.UnitVector()
	assert.InDelta(t, dir[0], body.Velocity[0], 1e-9)
	assert.InDelta(t, dir[2], body.Velocity[2], 1e-9)
}

func TestOccupies(t *testing.T) {
	body := NewBody(mgl64.Vec3{4.2, 3.03, 4.2}, DefaultBodySize)
	assert.True(t, body.Occupies(world.WorldPos{X: 4, Y: 3, Z: 4}))
	assert.True(t, body.Occupies(world.WorldPos{X: 4, Y: 4, Z: 4}))
	assert.False(t, body.Occupies(world.WorldPos{X: 4, Y: 2, Z: 4}))
	assert.False(t, body.Occupies(world.WorldPos{X: 5, Y: 3, Z: 4}))
}
