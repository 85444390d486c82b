package converter

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/Zequn-SUN/acts/pkg/converter/geoid"
)

// keyedValue is one member of an orderedObject.
type keyedValue struct {
	key   string
	value interface{}
}

// orderedObject is a JSON object that marshals its members in slice
// order. encoding/json sorts map keys lexicographically, which would put
// id "10" before id "2"; the document contract is ascending numeric id
// order, so the assembler spells the order out.
type orderedObject []keyedValue

// MarshalJSON implements json.Marshaler.
func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, member := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(member.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(member.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func idKey(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// assemble builds the nested document from a detector rep. Volumes and
// layers not worth writing never appear, so the document carries no empty
// containers.
func (c *Converter) assemble(rep *detectorRep) ([]byte, error) {
	volumes := orderedObject{}
	for _, vid := range rep.sortedVolumeIDs() {
		volRep := rep.volumes[vid]
		if !volRep.worthWriting() {
			continue
		}
		volume, err := c.volumeToJSON(volRep)
		if err != nil {
			return nil, err
		}
		volumes = append(volumes, keyedValue{idKey(vid), volume})
	}
	document := orderedObject{
		{c.cfg.DetectorKey, orderedObject{
			{c.cfg.VolumesKey, volumes},
		}},
	}
	return json.Marshal(document)
}

// volumeToJSON emits one volume in fixed member order: name, boundaries,
// layers, volume material.
func (c *Converter) volumeToJSON(volRep *volumeRep) (orderedObject, error) {
	volID := geoid.GeometryID(0).Add(volRep.volumeID, geoid.VolumeMask)

	volume := orderedObject{}
	if volRep.volumeName != "" {
		volume = append(volume, keyedValue{c.cfg.NameKey, volRep.volumeName})
	}
	if len(volRep.boundaries) != 0 {
		boundaries, err := c.surfacesToJSON(volRep.boundaries, volID, geoid.BoundaryMask)
		if err != nil {
			return nil, err
		}
		volume = append(volume, keyedValue{c.cfg.BoundariesKey, boundaries})
	}
	if len(volRep.layers) != 0 {
		layers := orderedObject{}
		for _, lid := range volRep.sortedLayerIDs() {
			layer, err := c.layerToJSON(volRep.layers[lid], volID)
			if err != nil {
				return nil, err
			}
			layers = append(layers, keyedValue{idKey(lid), layer})
		}
		volume = append(volume, keyedValue{c.cfg.LayersKey, layers})
	}
	if volRep.material != nil {
		entry, err := c.materialToJSON(volID, volRep.material)
		if err != nil {
			return nil, err
		}
		volume = append(volume, keyedValue{c.cfg.VolumeMaterialKey, entry})
	}
	return volume, nil
}

// layerToJSON emits one layer in fixed member order: approach, sensitive,
// representing.
func (c *Converter) layerToJSON(lRep *layerRep, volID geoid.GeometryID) (orderedObject, error) {
	layerID := volID.Add(lRep.layerID, geoid.LayerMask)

	layer := orderedObject{}
	if len(lRep.approaches) != 0 {
		approaches, err := c.surfacesToJSON(lRep.approaches, layerID, geoid.ApproachMask)
		if err != nil {
			return nil, err
		}
		layer = append(layer, keyedValue{c.cfg.ApproachKey, approaches})
	}
	if len(lRep.sensitives) != 0 {
		sensitives, err := c.surfacesToJSON(lRep.sensitives, layerID, geoid.SensitiveMask)
		if err != nil {
			return nil, err
		}
		layer = append(layer, keyedValue{c.cfg.SensitiveKey, sensitives})
	}
	if lRep.representing != nil {
		entry, err := c.materialToJSON(layerID, lRep.representing)
		if err != nil {
			return nil, err
		}
		layer = append(layer, keyedValue{c.cfg.RepresentingKey, entry})
	}
	return layer, nil
}

// surfacesToJSON emits one surface container keyed by the decomposed
// field value in ascending order. The full identifier handed to the
// codec recomposes the enclosing ids with the container's own field.
func (c *Converter) surfacesToJSON(
	surfaces surfaceMaterialRep, base geoid.GeometryID, mask uint64,
) (orderedObject, error) {
	container := orderedObject{}
	for _, fieldValue := range surfaces.sortedIDs() {
		entry, err := c.materialToJSON(base.Add(fieldValue, mask), surfaces[fieldValue])
		if err != nil {
			return nil, err
		}
		container = append(container, keyedValue{idKey(fieldValue), entry})
	}
	return container, nil
}
