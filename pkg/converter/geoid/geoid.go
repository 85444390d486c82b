// Package geoid implements the composite geometry identifier shared with
// the tracking-geometry model. The bit layout is the geometry model's
// contract; material attaches to the wrong surface if it drifts.
package geoid

import "math/bits"

// Field masks of the 64 bit identifier, highest field first.
const (
	VolumeMask    uint64 = 0xff00000000000000
	BoundaryMask  uint64 = 0x00ff000000000000
	LayerMask     uint64 = 0x0000ff0000000000
	ApproachMask  uint64 = 0x000000f000000000
	SensitiveMask uint64 = 0x0000000ffff00000
	ChannelMask   uint64 = 0x00000000000fffff
)

// GeometryID identifies one volume, layer or surface within a detector
// tree. The zero value is the invalid identifier.
type GeometryID uint64

// Value extracts the field selected by mask, shifted down to a plain
// counting number.
func (id GeometryID) Value(mask uint64) uint64 {
	return (uint64(id) & mask) >> uint(bits.TrailingZeros64(mask))
}

// Add packs value into the field selected by mask and returns the
// combined identifier. Bits outside the field are left untouched.
func (id GeometryID) Add(value uint64, mask uint64) GeometryID {
	shifted := (value << uint(bits.TrailingZeros64(mask))) & mask
	return GeometryID(uint64(id) | shifted)
}
