package converter

import (
	"encoding/json"
	"strconv"

	"github.com/Zequn-SUN/acts/pkg/converter/geoid"
	"github.com/Zequn-SUN/acts/pkg/converter/material"
)

// DecodeMaterialMaps parses a material document back into flat surface
// and volume material maps. Every identifier is recomposed from the
// enclosing volume and layer context plus the entry's own field value,
// never read verbatim from a leaf key. Structural entries without a type
// discriminator are skipped: the target exists, no material is assigned.
// Decode failures return no partial result.
func (c *Converter) DecodeMaterialMaps(document []byte) (SurfaceMaterialMap, VolumeMaterialMap, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(document, &root); err != nil {
		return nil, nil, MalformedInputError("document: %v", err)
	}
	detectorRaw, found := root[c.cfg.DetectorKey]
	if !found {
		return nil, nil, MalformedInputError("missing %q entry", c.cfg.DetectorKey)
	}
	var detector map[string]json.RawMessage
	if err := json.Unmarshal(detectorRaw, &detector); err != nil {
		return nil, nil, MalformedInputError("%q entry: %v", c.cfg.DetectorKey, err)
	}
	volumesRaw, found := detector[c.cfg.VolumesKey]
	if !found {
		return nil, nil, MalformedInputError("missing %q container", c.cfg.VolumesKey)
	}
	var volumes map[string]json.RawMessage
	if err := json.Unmarshal(volumesRaw, &volumes); err != nil {
		return nil, nil, MalformedInputError("%q container: %v", c.cfg.VolumesKey, err)
	}

	surfaceMaterials := SurfaceMaterialMap{}
	volumeMaterials := VolumeMaterialMap{}
	for volumeKey, volumeRaw := range volumes {
		if err := c.decodeVolume(volumeKey, volumeRaw, surfaceMaterials, volumeMaterials); err != nil {
			return nil, nil, err
		}
	}
	return surfaceMaterials, volumeMaterials, nil
}

func (c *Converter) decodeVolume(
	volumeKey string, raw json.RawMessage,
	surfaceMaterials SurfaceMaterialMap, volumeMaterials VolumeMaterialMap,
) error {
	vid, err := parseIDKey(volumeKey)
	if err != nil {
		return err
	}
	volID := geoid.GeometryID(0).Add(vid, geoid.VolumeMask)

	var volume map[string]json.RawMessage
	if err := json.Unmarshal(raw, &volume); err != nil {
		return MalformedInputError("volume %q: %v", volumeKey, err)
	}

	if boundariesRaw, found := volume[c.cfg.BoundariesKey]; found {
		err := c.decodeSurfaceContainer(boundariesRaw, volID, geoid.BoundaryMask, surfaceMaterials)
		if err != nil {
			return err
		}
	}
	if layersRaw, found := volume[c.cfg.LayersKey]; found {
		var layers map[string]json.RawMessage
		if err := json.Unmarshal(layersRaw, &layers); err != nil {
			return MalformedInputError("volume %q layers: %v", volumeKey, err)
		}
		for layerKey, layerRaw := range layers {
			if err := c.decodeLayer(layerKey, layerRaw, volID, surfaceMaterials); err != nil {
				return err
			}
		}
	}
	if materialRaw, found := volume[c.cfg.VolumeMaterialKey]; found {
		descriptor, err := c.jsonToMaterial(materialRaw)
		if err != nil {
			return err
		}
		if descriptor != nil {
			if err := insertMaterial(volumeMaterials, volID, descriptor); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Converter) decodeLayer(
	layerKey string, raw json.RawMessage,
	volID geoid.GeometryID, surfaceMaterials SurfaceMaterialMap,
) error {
	lid, err := parseIDKey(layerKey)
	if err != nil {
		return err
	}
	layerID := volID.Add(lid, geoid.LayerMask)

	var layer map[string]json.RawMessage
	if err := json.Unmarshal(raw, &layer); err != nil {
		return MalformedInputError("layer %q: %v", layerKey, err)
	}

	if approachesRaw, found := layer[c.cfg.ApproachKey]; found {
		err := c.decodeSurfaceContainer(approachesRaw, layerID, geoid.ApproachMask, surfaceMaterials)
		if err != nil {
			return err
		}
	}
	if sensitivesRaw, found := layer[c.cfg.SensitiveKey]; found {
		err := c.decodeSurfaceContainer(sensitivesRaw, layerID, geoid.SensitiveMask, surfaceMaterials)
		if err != nil {
			return err
		}
	}
	if representingRaw, found := layer[c.cfg.RepresentingKey]; found {
		descriptor, err := c.jsonToMaterial(representingRaw)
		if err != nil {
			return err
		}
		// The representing surface shares the layer's identifier.
		if descriptor != nil {
			if err := insertMaterial(surfaceMaterials, layerID, descriptor); err != nil {
				return err
			}
		}
	}
	return nil
}

// decodeSurfaceContainer walks one approach, sensitive or boundary
// container. Each member key holds that kind's decomposed field value;
// the full identifier is base with the field packed in.
func (c *Converter) decodeSurfaceContainer(
	raw json.RawMessage, base geoid.GeometryID, mask uint64,
	surfaceMaterials SurfaceMaterialMap,
) error {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return MalformedInputError("surface container: %v", err)
	}
	for entryKey, entryRaw := range entries {
		fieldValue, err := parseIDKey(entryKey)
		if err != nil {
			return err
		}
		descriptor, err := c.jsonToMaterial(entryRaw)
		if err != nil {
			return err
		}
		if descriptor == nil {
			c.log.Debugf("entry %q carries no material payload, skipped", entryKey)
			continue
		}
		if err := insertMaterial(surfaceMaterials, base.Add(fieldValue, mask), descriptor); err != nil {
			return err
		}
	}
	return nil
}

func parseIDKey(key string) (uint64, error) {
	value, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return 0, MalformedInputError("identifier key %q: %v", key, err)
	}
	return value, nil
}

// insertMaterial rejects a second entry for an already-taken identifier
// instead of overwriting, so corrupt input surfaces early.
func insertMaterial(
	out map[geoid.GeometryID]material.Descriptor,
	id geoid.GeometryID, descriptor material.Descriptor,
) error {
	if _, taken := out[id]; taken {
		return GeometryIDCollisionError(id)
	}
	out[id] = descriptor
	return nil
}
