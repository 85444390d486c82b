package converter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zequn-SUN/acts/pkg/converter/geoid"
	"github.com/Zequn-SUN/acts/pkg/converter/geometry"
	"github.com/Zequn-SUN/acts/pkg/converter/material"
)

type fakeSurface struct {
	id  geoid.GeometryID
	mat material.Descriptor
}

func (s fakeSurface) GeoID() geoid.GeometryID       { return s.id }
func (s fakeSurface) Material() material.Descriptor { return s.mat }

type fakeLayer struct {
	id           geoid.GeometryID
	sensitives   []geometry.Surface
	approaches   []geometry.Surface
	representing geometry.Surface
}

func (l fakeLayer) GeoID() geoid.GeometryID        { return l.id }
func (l fakeLayer) Sensitives() []geometry.Surface { return l.sensitives }
func (l fakeLayer) Approaches() []geometry.Surface { return l.approaches }
func (l fakeLayer) Representing() geometry.Surface { return l.representing }

type fakeVolume struct {
	id         geoid.GeometryID
	name       string
	mat        material.Descriptor
	boundaries []geometry.Surface
	layers     []geometry.Layer
	volumes    []geometry.Volume
}

func (v fakeVolume) GeoID() geoid.GeometryID        { return v.id }
func (v fakeVolume) Name() string                   { return v.name }
func (v fakeVolume) Material() material.Descriptor  { return v.mat }
func (v fakeVolume) Boundaries() []geometry.Surface { return v.boundaries }
func (v fakeVolume) Layers() []geometry.Layer       { return v.layers }
func (v fakeVolume) Volumes() []geometry.Volume     { return v.volumes }

type fakeTree struct {
	world geometry.Volume
}

func (t fakeTree) World() geometry.Volume { return t.world }

func volumeID(vid uint64) geoid.GeometryID {
	return geoid.GeometryID(0).Add(vid, geoid.VolumeMask)
}

func testSlab() material.Slab {
	return material.Slab{Thickness: 1, X0: 9.37, L0: 46.0, A: 28.09, Z: 14, Rho: 2.33}
}

// decodedVolumes unmarshals the document down to the volume container.
func decodedVolumes(t *testing.T, document []byte, cfg Config) map[string]json.RawMessage {
	t.Helper()
	var root map[string]map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(document, &root))
	return root[cfg.DetectorKey][cfg.VolumesKey]
}

func TestEncodeGeometryOmitsMaterialFreeVolumes(t *testing.T) {
	bare := fakeVolume{id: volumeID(1), name: "bare"}
	equipped := fakeVolume{
		id:   volumeID(2),
		name: "equipped",
		layers: []geometry.Layer{fakeLayer{
			id: volumeID(2).Add(4, geoid.LayerMask),
			sensitives: []geometry.Surface{fakeSurface{
				id:  volumeID(2).Add(4, geoid.LayerMask).Add(11, geoid.SensitiveMask),
				mat: material.Homogeneous{Slab: testSlab()},
			}},
		}},
	}
	world := fakeVolume{
		id:      volumeID(3),
		name:    "world",
		volumes: []geometry.Volume{bare, equipped},
	}

	cfg := DefaultConfig()
	document, err := New(cfg).EncodeGeometry(fakeTree{world: world})
	require.NoError(t, err)

	volumes := decodedVolumes(t, document, cfg)
	assert.NotContains(t, volumes, "1")
	assert.NotContains(t, volumes, "3")
	assert.Contains(t, volumes, "2")
}

func TestEncodeGeometryOmitsMaterialFreeLayers(t *testing.T) {
	emptyLayer := fakeLayer{id: volumeID(1).Add(2, geoid.LayerMask)}
	fullLayer := fakeLayer{
		id: volumeID(1).Add(6, geoid.LayerMask),
		representing: fakeSurface{
			id:  volumeID(1).Add(6, geoid.LayerMask),
			mat: material.Proto{},
		},
	}
	world := fakeVolume{
		id:     volumeID(1),
		layers: []geometry.Layer{emptyLayer, fullLayer},
	}

	cfg := DefaultConfig()
	document, err := New(cfg).EncodeGeometry(fakeTree{world: world})
	require.NoError(t, err)

	var root map[string]map[string]map[string]struct {
		Layers map[string]json.RawMessage `json:"layers"`
	}
	require.NoError(t, json.Unmarshal(document, &root))
	layers := root[cfg.DetectorKey][cfg.VolumesKey]["1"].Layers
	assert.NotContains(t, layers, "2")
	assert.Contains(t, layers, "6")
}

func TestEncodeGeometryTogglesGateSurfaceKinds(t *testing.T) {
	layerID := volumeID(1).Add(2, geoid.LayerMask)
	world := fakeVolume{
		id:   volumeID(1),
		mat:  material.Proto{},
		name: "pixel",
		boundaries: []geometry.Surface{
			fakeSurface{id: volumeID(1).Add(1, geoid.BoundaryMask), mat: material.Proto{}},
		},
		layers: []geometry.Layer{fakeLayer{
			id: layerID,
			sensitives: []geometry.Surface{
				fakeSurface{id: layerID.Add(3, geoid.SensitiveMask), mat: material.Proto{}},
			},
			approaches: []geometry.Surface{
				fakeSurface{id: layerID.Add(1, geoid.ApproachMask), mat: material.Proto{}},
			},
			representing: fakeSurface{id: layerID, mat: material.Proto{}},
		}},
	}

	cfg := DefaultConfig()
	cfg.ProcessSensitives = false
	cfg.ProcessApproaches = false
	cfg.ProcessBoundaries = false
	cfg.ProcessVolumes = false

	document, err := New(cfg).EncodeGeometry(fakeTree{world: world})
	require.NoError(t, err)

	surfaces, volumes, err := New(DefaultConfig()).DecodeMaterialMaps(document)
	require.NoError(t, err)
	assert.Empty(t, volumes)
	// Only the representing surface survives the disabled toggles.
	require.Len(t, surfaces, 1)
	assert.Contains(t, surfaces, layerID)
}

func TestEncodeGeometryProtoCountsAsPresent(t *testing.T) {
	layerID := volumeID(1).Add(2, geoid.LayerMask)
	world := fakeVolume{
		id: volumeID(1),
		layers: []geometry.Layer{fakeLayer{
			id: layerID,
			sensitives: []geometry.Surface{
				fakeSurface{id: layerID.Add(9, geoid.SensitiveMask), mat: material.Proto{}},
				fakeSurface{id: layerID.Add(10, geoid.SensitiveMask), mat: nil},
			},
		}},
	}

	cfg := DefaultConfig()
	document, err := New(cfg).EncodeGeometry(fakeTree{world: world})
	require.NoError(t, err)

	surfaces, _, err := New(cfg).DecodeMaterialMaps(document)
	require.NoError(t, err)
	require.Len(t, surfaces, 1)
	assert.Equal(t, material.Proto{}, surfaces[layerID.Add(9, geoid.SensitiveMask)])
}

func TestEncodeGeometryRecursesIntoSubVolumes(t *testing.T) {
	inner := fakeVolume{
		id:  volumeID(4),
		mat: material.Homogeneous{Slab: testSlab()},
	}
	middle := fakeVolume{
		id:      volumeID(3),
		volumes: []geometry.Volume{inner},
	}
	world := fakeVolume{
		id:      volumeID(2),
		volumes: []geometry.Volume{middle},
	}

	cfg := DefaultConfig()
	document, err := New(cfg).EncodeGeometry(fakeTree{world: world})
	require.NoError(t, err)

	volumes := decodedVolumes(t, document, cfg)
	assert.Contains(t, volumes, "4")
	assert.NotContains(t, volumes, "2")
	assert.NotContains(t, volumes, "3")
}
