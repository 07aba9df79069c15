package geometry

import (
	"testing"

	"github.com/annel0/blockverse/internal/vec"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestRelativeOffset(t *testing.T) {
	pos := vec.Vec3{X: 5, Y: 3, Z: -2}
	tests := []struct {
		dir  vec.Direction
		want float64
	}{
		{vec.East, 6},
		{vec.West, 5},
		{vec.Up, 4},
		{vec.Down, 3},
		{vec.North, -1},
		{vec.South, -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewWorldPlane(pos, tt.dir).RelativeOffset(), tt.dir.String())
	}
}

func TestPlaneContains(t *testing.T) {
	east := NewWorldPlane(vec.Vec3{X: 5}, vec.East)

	tests := []struct {
		name  string
		plane WorldPlane
		point mgl64.Vec3
		want  bool
	}{
		{"on face", east, mgl64.Vec3{6, 0.5, 0.5}, true},
		{"on boundary edge", east, mgl64.Vec3{6, 0, 1}, true},
		{"within normal epsilon", east, mgl64.Vec3{6.005, 0.5, 0.5}, true},
		{"one unit away", east, mgl64.Vec3{7, 0.5, 0.5}, false},
		{"on opposite face", east, mgl64.Vec3{5, 0.5, 0.5}, false},
		{"within perpendicular epsilon", east, mgl64.Vec3{6, 1.005, -0.005}, true},
		{"outside perpendicular range", east, mgl64.Vec3{6, 1.02, 0.5}, false},
		{"negative south", NewWorldPlane(vec.Vec3{X: -2, Z: -2}, vec.South), mgl64.Vec3{-1.5, 0.5, -2}, true},
		{"south wrong column", NewWorldPlane(vec.Vec3{X: -2, Z: -2}, vec.South), mgl64.Vec3{-0.5, 0.5, -2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.plane.Contains(tt.point))
		})
	}
}

func TestPlaneCenter(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{0.5, 1, 0.5}, NewWorldPlane(vec.Vec3{}, vec.Up).Center())
	assert.Equal(t, mgl64.Vec3{2, 0.5, 0.5}, NewWorldPlane(vec.Vec3{X: 2}, vec.West).Center())
	assert.Equal(t, mgl64.Vec3{-0.5, 3.5, -1}, NewWorldPlane(vec.Vec3{X: -1, Y: 3, Z: -2}, vec.North).Center())
}

func TestBlockMeshPlanes(t *testing.T) {
	mesh := BlockMesh{Pos: vec.Vec3{X: 1}, Faces: vec.DirectionsOf(vec.West, vec.Up)}
	assert.Equal(t, []WorldPlane{
		{Pos: vec.Vec3{X: 1}, Dir: vec.Up},
		{Pos: vec.Vec3{X: 1}, Dir: vec.West},
	}, mesh.Planes())

	assert.Empty(t, BlockMesh{}.Planes())
}

func TestRect3(t *testing.T) {
	r := Rect3{Pos: mgl64.Vec3{0.5, 2, 0.5}, Dim: mgl64.Vec3{1, 2, 1}}
	corners := r.Corners()
	assert.Equal(t, mgl64.Vec3{0.5, 2, 0.5}, corners[0])
	assert.Equal(t, mgl64.Vec3{1.5, 4, 1.5}, corners[7])
	assert.Equal(t, corners[7], r.Max())

	paths := r.CornerPaths(mgl64.Vec3{0, -1, 0})
	for i, p := range paths {
		assert.Equal(t, corners[i], p.Start)
		assert.Equal(t, corners[i][1]-1, p.End[1])
	}

	moved := r.MoveTo(mgl64.Vec3{})
	assert.Equal(t, r.Dim, moved.Dim)
	assert.Equal(t, mgl64.Vec3{}, moved.Pos)
}
