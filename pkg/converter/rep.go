package converter

import (
	"sort"

	"github.com/Zequn-SUN/acts/pkg/converter/material"
)

// surfaceMaterialRep maps a decomposed surface field value to the
// material borrowed from the live geometry. Rep structures live only for
// the duration of one conversion call.
type surfaceMaterialRep map[uint64]material.Descriptor

// layerRep is the layer representation for document assembly.
type layerRep struct {
	layerID      uint64
	sensitives   surfaceMaterialRep
	approaches   surfaceMaterialRep
	representing material.Descriptor
}

// worthWriting reports whether the layer carries anything at all.
func (l *layerRep) worthWriting() bool {
	return len(l.sensitives) != 0 || len(l.approaches) != 0 || l.representing != nil
}

// volumeRep is the volume representation for document assembly.
type volumeRep struct {
	volumeID   uint64
	volumeName string
	layers     map[uint64]*layerRep
	boundaries surfaceMaterialRep
	material   material.Descriptor
}

// worthWriting reports whether the volume carries anything at all.
func (v *volumeRep) worthWriting() bool {
	return len(v.layers) != 0 || len(v.boundaries) != 0 || v.material != nil
}

// detectorRep is the root of one conversion call.
type detectorRep struct {
	volumes map[uint64]*volumeRep
}

func newDetectorRep() *detectorRep {
	return &detectorRep{volumes: map[uint64]*volumeRep{}}
}

func newLayerRep(layerID uint64) *layerRep {
	return &layerRep{
		layerID:    layerID,
		sensitives: surfaceMaterialRep{},
		approaches: surfaceMaterialRep{},
	}
}

func newVolumeRep(volumeID uint64) *volumeRep {
	return &volumeRep{
		volumeID:   volumeID,
		layers:     map[uint64]*layerRep{},
		boundaries: surfaceMaterialRep{},
	}
}

// volume returns the rep for volumeID, creating it on first use.
func (d *detectorRep) volume(volumeID uint64) *volumeRep {
	if v, found := d.volumes[volumeID]; found {
		return v
	}
	v := newVolumeRep(volumeID)
	d.volumes[volumeID] = v
	return v
}

// layer returns the rep for layerID, creating it on first use.
func (v *volumeRep) layer(layerID uint64) *layerRep {
	if l, found := v.layers[layerID]; found {
		return l
	}
	l := newLayerRep(layerID)
	v.layers[layerID] = l
	return l
}

// ascendingIDs sorts decomposed id keys numerically; map key strings in
// the document follow this order, which keeps the output byte identical
// for identical input.
func ascendingIDs(ids []uint64) []uint64 {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (d *detectorRep) sortedVolumeIDs() []uint64 {
	ids := make([]uint64, 0, len(d.volumes))
	for id := range d.volumes {
		ids = append(ids, id)
	}
	return ascendingIDs(ids)
}

func (v *volumeRep) sortedLayerIDs() []uint64 {
	ids := make([]uint64, 0, len(v.layers))
	for id := range v.layers {
		ids = append(ids, id)
	}
	return ascendingIDs(ids)
}

func (s surfaceMaterialRep) sortedIDs() []uint64 {
	ids := make([]uint64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ascendingIDs(ids)
}
