// Package converter translates the material overlay of a detector
// geometry to and from a compact JSON document keyed by stable geometry
// identifiers. The full geometry is never serialized; the document
// carries only material payloads, so a system can persist and reload
// material distributions independently of the geometry itself.
package converter

import (
	"github.com/sirupsen/logrus"

	"github.com/Zequn-SUN/acts/config"
	"github.com/Zequn-SUN/acts/pkg/converter/geoid"
	"github.com/Zequn-SUN/acts/pkg/converter/geometry"
	"github.com/Zequn-SUN/acts/pkg/converter/material"
)

// SurfaceMaterialMap collects surface materials keyed by full geometry
// identifier.
type SurfaceMaterialMap map[geoid.GeometryID]material.Descriptor

// VolumeMaterialMap collects volume materials keyed by full geometry
// identifier.
type VolumeMaterialMap map[geoid.GeometryID]material.Descriptor

// Converter is safe for concurrent use: after New it holds only the
// immutable configuration and the logger, every call keeps its working
// state private.
type Converter struct {
	cfg Config
	log logrus.FieldLogger
}

// New constructs a Converter. A nil cfg.Logger is replaced with a named
// default.
func New(cfg Config) *Converter {
	if cfg.Logger == nil {
		cfg.Logger = config.NamedLogger("converter")
	}
	return &Converter{cfg: cfg, log: cfg.Logger}
}

// EncodeGeometry walks the full geometry tree and emits the nested
// material document. Only nodes enabled by the processing toggles and
// actually carrying material appear; a material.Proto counts as carrying.
func (c *Converter) EncodeGeometry(tree geometry.Tree) ([]byte, error) {
	rep := newDetectorRep()
	c.volumeToRep(rep, tree.World())
	return c.assemble(rep)
}

// EncodeMaterialMaps emits the same document schema directly from
// already-extracted flat maps, bypassing any live geometry.
func (c *Converter) EncodeMaterialMaps(
	surfaces SurfaceMaterialMap, volumes VolumeMaterialMap,
) ([]byte, error) {
	rep := newDetectorRep()
	c.mapsToRep(rep, surfaces, volumes)
	return c.assemble(rep)
}

// mapsToRep groups flat material maps into a detector rep by decomposing
// every identifier. The surface kind follows from which id fields are
// set: boundary, else approach or sensitive below a layer, else the
// layer's representing surface.
func (c *Converter) mapsToRep(
	rep *detectorRep, surfaces SurfaceMaterialMap, volumes VolumeMaterialMap,
) {
	for id, m := range surfaces {
		volRep := rep.volume(id.Value(geoid.VolumeMask))
		if bid := id.Value(geoid.BoundaryMask); bid != 0 {
			volRep.boundaries[bid] = m
			continue
		}
		lid := id.Value(geoid.LayerMask)
		if lid == 0 {
			c.log.Warnf("surface GeometryID{%#x} carries neither boundary nor layer field, skipped", uint64(id))
			continue
		}
		lRep := volRep.layer(lid)
		if sid := id.Value(geoid.SensitiveMask); sid != 0 {
			lRep.sensitives[sid] = m
		} else if aid := id.Value(geoid.ApproachMask); aid != 0 {
			lRep.approaches[aid] = m
		} else {
			lRep.representing = m
		}
	}
	for id, m := range volumes {
		rep.volume(id.Value(geoid.VolumeMask)).material = m
	}
}
