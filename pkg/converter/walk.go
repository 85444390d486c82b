package converter

import (
	"github.com/Zequn-SUN/acts/pkg/converter/geoid"
	"github.com/Zequn-SUN/acts/pkg/converter/geometry"
)

// volumeToRep descends one volume of the live geometry, recording
// whatever material the configuration enables, then recurses into the
// contained sub-volumes. A volume with nothing to write is not attached.
func (c *Converter) volumeToRep(rep *detectorRep, volume geometry.Volume) {
	volID := volume.GeoID()
	volRep := newVolumeRep(volID.Value(geoid.VolumeMask))
	volRep.volumeName = volume.Name()

	if c.cfg.ProcessBoundaries {
		for _, boundary := range volume.Boundaries() {
			if boundary.Material() == nil {
				continue
			}
			bid := boundary.GeoID().Value(geoid.BoundaryMask)
			volRep.boundaries[bid] = boundary.Material()
		}
	}
	if c.cfg.ProcessVolumes && volume.Material() != nil {
		volRep.material = volume.Material()
	}
	for _, layer := range volume.Layers() {
		lRep := c.layerToRep(layer)
		if lRep.worthWriting() {
			volRep.layers[lRep.layerID] = lRep
		}
	}

	if volRep.worthWriting() {
		c.log.Debugf("volume %d (%s) carries material", volRep.volumeID, volRep.volumeName)
		rep.volumes[volRep.volumeID] = volRep
	}

	for _, sub := range volume.Volumes() {
		c.volumeToRep(rep, sub)
	}
}

// layerToRep collects the representing, approach and sensitive surface
// materials of one layer per the corresponding toggles.
func (c *Converter) layerToRep(layer geometry.Layer) *layerRep {
	lRep := newLayerRep(layer.GeoID().Value(geoid.LayerMask))

	if c.cfg.ProcessRepresenting {
		if rep := layer.Representing(); rep != nil && rep.Material() != nil {
			lRep.representing = rep.Material()
		}
	}
	if c.cfg.ProcessApproaches {
		for _, approach := range layer.Approaches() {
			if approach.Material() == nil {
				continue
			}
			aid := approach.GeoID().Value(geoid.ApproachMask)
			lRep.approaches[aid] = approach.Material()
		}
	}
	if c.cfg.ProcessSensitives {
		for _, sensitive := range layer.Sensitives() {
			if sensitive.Material() == nil {
				continue
			}
			sid := sensitive.GeoID().Value(geoid.SensitiveMask)
			lRep.sensitives[sid] = sensitive.Material()
		}
	}
	return lRep
}
