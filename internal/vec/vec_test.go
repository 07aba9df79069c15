package vec

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalIndexBijection(t *testing.T) {
	seen := make(map[uint16]struct{}, ChunkVolume)
	for x := uint8(0); x < ChunkWidth; x++ {
		for y := uint8(0); y < ChunkHeight; y++ {
			for z := uint8(0); z < ChunkWidth; z++ {
				l := Local{X: x, Y: y, Z: z}
				idx := l.Index()
				require.Less(t, int(idx), ChunkVolume)
				require.Equal(t, l, LocalFromIndex(idx))
				seen[idx] = struct{}{}
			}
		}
	}
	assert.Len(t, seen, ChunkVolume, "каждая позиция должна получить уникальный индекс")
}

func TestLocalIndexLayout(t *testing.T) {
	assert.Equal(t, uint16(1024+32+3), Local{X: 1, Y: 2, Z: 3}.Index())
	assert.Equal(t, uint16(0), Local{}.Index())
	assert.Equal(t, uint16(ChunkVolume-1), Local{X: 15, Y: 63, Z: 15}.Index())
}

func TestWorldToChunkCoords(t *testing.T) {
	tests := []struct {
		pos   Vec3
		chunk Vec2
		local Local
	}{
		{Vec3{1, 2, 3}, Vec2{0, 0}, Local{1, 2, 3}},
		{Vec3{-1, 0, -1}, Vec2{-1, -1}, Local{15, 0, 15}},
		{Vec3{16, 5, 0}, Vec2{1, 0}, Local{0, 5, 0}},
		{Vec3{-16, 0, -17}, Vec2{-1, -2}, Local{0, 0, 15}},
		{Vec3{15, 63, 15}, Vec2{0, 0}, Local{15, 63, 15}},
		{Vec3{-33, 1, 40}, Vec2{-3, 2}, Local{15, 1, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			assert.Equal(t, tt.chunk, tt.pos.ToChunkCoords())
			assert.Equal(t, tt.local, tt.pos.LocalInChunk())
		})
	}
}

func TestWorldRoundTrip(t *testing.T) {
	for x := int32(-40); x <= 40; x += 3 {
		for z := int32(-40); z <= 40; z += 5 {
			for _, y := range []int32{0, 17, 63} {
				pos := Vec3{X: x, Y: y, Z: z}
				back := pos.LocalInChunk().ToWorld(pos.ToChunkCoords())
				require.Equal(t, pos, back, "позиция %v", pos)
			}
		}
	}
}

func TestChunkOrigin(t *testing.T) {
	assert.Equal(t, Vec3{X: 17, Y: 2, Z: 19}, Local{1, 2, 3}.ToWorld(Vec2{1, 1}))
	assert.Equal(t, Vec3{X: -15, Y: 2, Z: -13}, Local{1, 2, 3}.ToWorld(Vec2{-1, -1}))
}

func TestIsValid(t *testing.T) {
	assert.True(t, Vec3{Y: 0}.IsValid())
	assert.True(t, Vec3{Y: 63}.IsValid())
	assert.False(t, Vec3{Y: -1}.IsValid())
	assert.False(t, Vec3{Y: 64}.IsValid())
}

func TestNeighbourhoods(t *testing.T) {
	p := Vec3{X: 4, Y: 4, Z: 4}

	adj := p.Adjacent()
	assert.Equal(t, Vec3{4, 4, 5}, adj[North])
	assert.Equal(t, Vec3{4, 4, 3}, adj[South])
	assert.Equal(t, Vec3{4, 5, 4}, adj[Up])
	assert.Equal(t, Vec3{4, 3, 4}, adj[Down])
	assert.Equal(t, Vec3{5, 4, 4}, adj[East])
	assert.Equal(t, Vec3{3, 4, 4}, adj[West])

	cross := p.Cross()
	assert.Len(t, cross, 7)
	assert.Equal(t, p, cross[0])

	cube := p.Cube()
	assert.Len(t, cube, 27)
	assert.Contains(t, cube, Vec3{3, 3, 3})
	assert.Contains(t, cube, Vec3{5, 5, 5})
}

func TestFloorVec3(t *testing.T) {
	assert.Equal(t, Vec3{0, 0, 0}, FloorVec3(mgl64.Vec3{0.5, 0.5, 0.5}))
	assert.Equal(t, Vec3{-1, 2, -2}, FloorVec3(mgl64.Vec3{-0.1, 2.9, -1.5}))
}

func TestDirections(t *testing.T) {
	set := DirectionsOf(North, Up)
	assert.True(t, set.Has(North))
	assert.True(t, set.Has(Up))
	assert.False(t, set.Has(East))
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []Direction{North, Up}, set.List())
	assert.Equal(t, "{North,Up}", set.String())

	assert.Equal(t, 6, AllFaces.Len())
	assert.Equal(t, 5, AllFaces.Without(East).Len())
	assert.True(t, NoDirections.IsEmpty())
	assert.False(t, AllFaces.Without(East).Has(East))
}

func TestDirectionGeometry(t *testing.T) {
	outward := map[Direction]bool{North: true, East: true, Up: true}
	for _, d := range AllDirections {
		assert.Equal(t, outward[d], d.IsOutward(), d.String())
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, d.Axis(), d.Opposite().Axis())

		a, b := d.PerpendicularAxes()
		assert.NotEqual(t, d.Axis(), a)
		assert.NotEqual(t, d.Axis(), b)
		assert.NotEqual(t, a, b)
	}
}

func TestRotationUnitVector(t *testing.T) {
	for _, d := range AllDirections {
		got := RotationFromDirection(d).UnitVector()
		want := DirectionVector(d)
		assertVecInDelta(t, want, got, 1e-9, "%s: %v != %v", d, got, want)
	}
}

func TestRotationAdd(t *testing.T) {
	r := SphericalRotation{Theta: 6, Phi: 1.5}.Add(SphericalRotation{Theta: 1, Phi: 1})
	assert.InDelta(t, 7-2*math.Pi, r.Theta, 1e-9)
	assert.InDelta(t, math.Pi/2, r.Phi, 1e-9)
}

// assertVecInDelta сравнивает векторы покомпонентно с абсолютным допуском
func assertVecInDelta(t *testing.T, want, got mgl64.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, msgAndArgs...)
	}
}
