// Package material defines the material descriptors carried by detector
// surfaces and volumes. A descriptor is a tagged variant: a placeholder
// proto, a single homogeneous cell, or a grid of cells binned over one or
// two axes. Values are plain numbers, no unit handling happens here.
package material

// Slab holds the per-cell material properties: thickness, radiation
// length X0, nuclear interaction length L0, atomic mass A, atomic number
// Z and density Rho.
type Slab struct {
	Thickness float64
	X0        float64
	L0        float64
	A         float64
	Z         float64
	Rho       float64
}

// BinStrategy names the bin-edge layout of one axis.
type BinStrategy string

// Known bin strategies.
const (
	BinEquidistant BinStrategy = "equidistant"
	BinArbitrary   BinStrategy = "arbitrary"
)

// BinAxis maps a continuous coordinate range onto Bins discrete bins.
// Min/Max bound an equidistant axis; Boundaries lists the Bins+1 edges of
// an arbitrary one.
type BinAxis struct {
	Strategy   BinStrategy
	Bins       int
	Min        float64
	Max        float64
	Boundaries []float64
}

// Descriptor is the tagged material variant attached to a surface or
// volume.
type Descriptor interface {
	isDescriptor()
}

// Proto marks a material-mapping target whose values have not been
// computed yet. It is a real placeholder, not an absence marker.
type Proto struct{}

// Homogeneous carries a single material cell.
type Homogeneous struct {
	Slab Slab
}

// Binned1D carries cells binned along one axis; Slabs[i] belongs to bin i
// of Axis.
type Binned1D struct {
	Axis  BinAxis
	Slabs []Slab
}

// Binned2D carries cells binned along two axes; Slabs[i][j] belongs to
// bin i of Axis1 and bin j of Axis0.
type Binned2D struct {
	Axis0 BinAxis
	Axis1 BinAxis
	Slabs [][]Slab
}

func (Proto) isDescriptor()       {}
func (Homogeneous) isDescriptor() {}
func (Binned1D) isDescriptor()    {}
func (Binned2D) isDescriptor()    {}
