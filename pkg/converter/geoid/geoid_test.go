package geoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueExtractsPackedField(t *testing.T) {
	id := GeometryID(0).
		Add(3, VolumeMask).
		Add(7, LayerMask).
		Add(0x10, SensitiveMask)

	assert.Equal(t, uint64(3), id.Value(VolumeMask))
	assert.Equal(t, uint64(7), id.Value(LayerMask))
	assert.Equal(t, uint64(0x10), id.Value(SensitiveMask))
	assert.Equal(t, uint64(0), id.Value(BoundaryMask))
	assert.Equal(t, uint64(0), id.Value(ApproachMask))
	assert.Equal(t, uint64(0), id.Value(ChannelMask))
}

func TestAddClipsToFieldWidth(t *testing.T) {
	id := GeometryID(0).Add(0x1ff, ApproachMask)
	assert.Equal(t, uint64(0xf), id.Value(ApproachMask))
	assert.Equal(t, uint64(0), id.Value(SensitiveMask))
}

func TestAddLeavesOtherFieldsUntouched(t *testing.T) {
	id := GeometryID(0).Add(5, VolumeMask)
	id = id.Add(2, BoundaryMask)

	assert.Equal(t, uint64(5), id.Value(VolumeMask))
	assert.Equal(t, uint64(2), id.Value(BoundaryMask))
}

func TestHierarchyOrdersAscending(t *testing.T) {
	volume := GeometryID(0).Add(1, VolumeMask)
	layer := volume.Add(1, LayerMask)
	sensitive := layer.Add(1, SensitiveMask)

	assert.True(t, volume < layer)
	assert.True(t, layer < sensitive)
}
