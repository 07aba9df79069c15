package block

import (
	"testing"

	"github.com/annel0/blockverse/internal/vec"
	"github.com/stretchr/testify/assert"
)

func TestEveryTypeHasMetadata(t *testing.T) {
	for i := range typeNames {
		typ := Type(i)
		assert.True(t, IsValidType(typ), typ.String())
	}
}

func TestMetadataTable(t *testing.T) {
	assert.True(t, MetadataFor(Void).Transparent)
	assert.False(t, MetadataFor(Stone).Transparent)
	assert.True(t, MetadataFor(Leaf).Transparent)

	water := MetadataFor(Water)
	assert.True(t, water.Fluid)
	assert.True(t, water.Transparent)

	assert.Equal(t, ShapeX, MetadataFor(RedFlower).Shape)
	assert.Equal(t, ShapeFlat, MetadataFor(Image).Shape)
	assert.Equal(t, ShapeCube, MetadataFor(Planks).Shape)
}

func TestUnknownTypeIsOpaqueCube(t *testing.T) {
	unknown := Type(200)
	_, ok := Get(unknown)
	assert.False(t, ok)
	assert.Equal(t, Metadata{Shape: ShapeCube}, MetadataFor(unknown))
	assert.Equal(t, "Unknown", unknown.String())
}

func TestData(t *testing.T) {
	assert.True(t, NoData.IsNone())
	_, ok := NoData.Image()
	assert.False(t, ok)
	assert.Equal(t, "None", NoData.String())

	d := ImageData(vec.East)
	dir, ok := d.Image()
	assert.True(t, ok)
	assert.Equal(t, vec.East, dir)
	assert.Equal(t, "Image(East)", d.String())
}
