package converter

import "github.com/sirupsen/logrus"

// Config enumerates the JSON field names, processing toggles and the
// diagnostic logger of one converter. Field names are customizable so the
// schema can follow whatever the consuming framework expects; the
// defaults are the canonical ones.
type Config struct {
	// SchemaVersion is an informational tag, never serialized.
	SchemaVersion string

	// DetectorKey tags the document root.
	DetectorKey string
	// VolumesKey tags the volume container.
	VolumesKey string
	// NameKey tags the volume name.
	NameKey string
	// BoundariesKey tags the boundary surface container.
	BoundariesKey string
	// LayersKey tags the layer container.
	LayersKey string
	// VolumeMaterialKey tags the volume material entry.
	VolumeMaterialKey string
	// ApproachKey tags the approach surface container.
	ApproachKey string
	// SensitiveKey tags the sensitive surface container.
	SensitiveKey string
	// RepresentingKey tags the representing surface entry.
	RepresentingKey string
	// Bin0Key and Bin1Key tag the bin axis descriptors.
	Bin0Key string
	Bin1Key string
	// TypeKey tags the material type discriminator.
	TypeKey string
	// DataKey tags the material cell array.
	DataKey string
	// GeoIDKey tags the identifier of structural entries.
	GeoIDKey string

	// ProcessSensitives steers sensitive surface handling.
	ProcessSensitives bool
	// ProcessApproaches steers approach surface handling.
	ProcessApproaches bool
	// ProcessRepresenting steers representing surface handling.
	ProcessRepresenting bool
	// ProcessBoundaries steers boundary surface handling.
	ProcessBoundaries bool
	// ProcessVolumes steers volume material handling.
	ProcessVolumes bool
	// WriteData steers material payload output. When false, entries carry
	// only their geometry identifier (identifier-discovery mode).
	WriteData bool

	// Logger receives diagnostics. Defaulted by New when nil.
	Logger logrus.FieldLogger
}

// DefaultConfig returns the canonical field names with every processing
// toggle enabled.
func DefaultConfig() Config {
	return Config{
		SchemaVersion:     "undefined",
		DetectorKey:       "detector",
		VolumesKey:        "volumes",
		NameKey:           "name",
		BoundariesKey:     "boundaries",
		LayersKey:         "layers",
		VolumeMaterialKey: "material",
		ApproachKey:       "approach",
		SensitiveKey:      "sensitive",
		RepresentingKey:   "representing",
		Bin0Key:           "bin0",
		Bin1Key:           "bin1",
		TypeKey:           "type",
		DataKey:           "data",
		GeoIDKey:          "geoid",

		ProcessSensitives:   true,
		ProcessApproaches:   true,
		ProcessRepresenting: true,
		ProcessBoundaries:   true,
		ProcessVolumes:      true,
		WriteData:           true,
	}
}
