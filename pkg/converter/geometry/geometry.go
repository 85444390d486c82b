// Package geometry fixes the read-only walking contract between the
// converter and a live tracking-geometry tree. Building and navigating
// real geometries is the geometry model's business; the converter only
// descends through these interfaces and never mutates anything behind
// them.
package geometry

import (
	"github.com/Zequn-SUN/acts/pkg/converter/geoid"
	"github.com/Zequn-SUN/acts/pkg/converter/material"
)

// Surface is a material-bearing boundary, approach or sensitive surface.
type Surface interface {
	GeoID() geoid.GeometryID
	// Material returns nil when the surface carries none. A material.Proto
	// is a real placeholder and counts as present.
	Material() material.Descriptor
}

// Layer groups the surfaces of one detector layer.
type Layer interface {
	GeoID() geoid.GeometryID
	Sensitives() []Surface
	Approaches() []Surface
	// Representing returns the layer's representing surface, nil if the
	// layer has none.
	Representing() Surface
}

// Volume is one node of the detector hierarchy.
type Volume interface {
	GeoID() geoid.GeometryID
	Name() string
	// Material returns the volume material, nil when the volume carries
	// none.
	Material() material.Descriptor
	Boundaries() []Surface
	Layers() []Layer
	// Volumes lists the directly contained sub-volumes.
	Volumes() []Volume
}

// Tree is the root handle of one detector geometry. It must outlive any
// conversion call that walks it.
type Tree interface {
	World() Volume
}
