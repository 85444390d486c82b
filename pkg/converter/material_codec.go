package converter

import (
	"encoding/json"

	"github.com/Zequn-SUN/acts/pkg/converter/geoid"
	"github.com/Zequn-SUN/acts/pkg/converter/material"
)

// Material type discriminator values. A placeholder encodes as "proto",
// every computed grid as "data".
const (
	materialTypeProto = "proto"
	materialTypeData  = "data"
)

// materialToJSON encodes one material descriptor as a document fragment.
// With WriteData disabled the fragment carries only the full geometry
// identifier of the entry.
func (c *Converter) materialToJSON(
	id geoid.GeometryID, descriptor material.Descriptor,
) (orderedObject, error) {
	if !c.cfg.WriteData {
		return orderedObject{{c.cfg.GeoIDKey, uint64(id)}}, nil
	}

	switch m := descriptor.(type) {
	case material.Proto:
		return orderedObject{{c.cfg.TypeKey, materialTypeProto}}, nil
	case material.Homogeneous:
		return orderedObject{
			{c.cfg.TypeKey, materialTypeData},
			{c.cfg.DataKey, [][]float64{slabRow(m.Slab)}},
		}, nil
	case material.Binned1D:
		axis, err := binAxisToJSON(m.Axis)
		if err != nil {
			return nil, err
		}
		if len(m.Slabs) != m.Axis.Bins {
			return nil, MalformedInputError(
				"GeometryID{%#x}: %d cells for %d bins", uint64(id), len(m.Slabs), m.Axis.Bins)
		}
		cells := make([][]float64, 0, len(m.Slabs))
		for _, slab := range m.Slabs {
			cells = append(cells, slabRow(slab))
		}
		return orderedObject{
			{c.cfg.TypeKey, materialTypeData},
			{c.cfg.Bin0Key, axis},
			{c.cfg.DataKey, cells},
		}, nil
	case material.Binned2D:
		axis0, err := binAxisToJSON(m.Axis0)
		if err != nil {
			return nil, err
		}
		axis1, err := binAxisToJSON(m.Axis1)
		if err != nil {
			return nil, err
		}
		if len(m.Slabs) != m.Axis1.Bins {
			return nil, MalformedInputError(
				"GeometryID{%#x}: %d rows for %d axis-1 bins", uint64(id), len(m.Slabs), m.Axis1.Bins)
		}
		// Row-major flattening, axis 0 varying fastest.
		cells := [][]float64{}
		for _, row := range m.Slabs {
			if len(row) != m.Axis0.Bins {
				return nil, MalformedInputError(
					"GeometryID{%#x}: %d columns for %d axis-0 bins", uint64(id), len(row), m.Axis0.Bins)
			}
			for _, slab := range row {
				cells = append(cells, slabRow(slab))
			}
		}
		return orderedObject{
			{c.cfg.TypeKey, materialTypeData},
			{c.cfg.Bin0Key, axis0},
			{c.cfg.Bin1Key, axis1},
			{c.cfg.DataKey, cells},
		}, nil
	default:
		return nil, MalformedInputError("unknown material descriptor %T", descriptor)
	}
}

func slabRow(s material.Slab) []float64 {
	return []float64{s.Thickness, s.X0, s.L0, s.A, s.Z, s.Rho}
}

func slabFromRow(row []float64) material.Slab {
	return material.Slab{
		Thickness: row[0],
		X0:        row[1],
		L0:        row[2],
		A:         row[3],
		Z:         row[4],
		Rho:       row[5],
	}
}

// binAxisToJSON encodes one axis descriptor in its array form:
// ["equidistant", bins, min, max] or ["arbitrary", bins, [edges]].
func binAxisToJSON(axis material.BinAxis) (interface{}, error) {
	switch axis.Strategy {
	case material.BinEquidistant:
		return []interface{}{string(axis.Strategy), axis.Bins, axis.Min, axis.Max}, nil
	case material.BinArbitrary:
		return []interface{}{string(axis.Strategy), axis.Bins, axis.Boundaries}, nil
	default:
		return nil, UnsupportedBinTypeError("unknown binning strategy %q", axis.Strategy)
	}
}

// jsonToMaterial decodes one document fragment into an owned material
// descriptor. Structural entries without a type discriminator yield
// (nil, nil): the target exists but no material is assigned.
func (c *Converter) jsonToMaterial(raw json.RawMessage) (material.Descriptor, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, MalformedInputError("material entry: %v", err)
	}
	typeRaw, found := fields[c.cfg.TypeKey]
	if !found {
		return nil, nil
	}
	var tag string
	if err := json.Unmarshal(typeRaw, &tag); err != nil {
		return nil, MalformedInputError("material type tag: %v", err)
	}

	switch tag {
	case materialTypeProto:
		return material.Proto{}, nil
	case materialTypeData:
		return c.jsonToGridMaterial(fields)
	default:
		return nil, MalformedInputError("unrecognized material type %q", tag)
	}
}

// jsonToGridMaterial rebuilds a homogeneous or binned descriptor from the
// axis descriptors and the flat cell array. The matrix shape is implied
// by the axes: rows from axis 1, columns from axis 0, either defaulting
// to one.
func (c *Converter) jsonToGridMaterial(
	fields map[string]json.RawMessage,
) (material.Descriptor, error) {
	var axis0, axis1 *material.BinAxis
	if raw, found := fields[c.cfg.Bin0Key]; found {
		axis, err := c.jsonToBinAxis(raw)
		if err != nil {
			return nil, err
		}
		axis0 = &axis
	}
	if raw, found := fields[c.cfg.Bin1Key]; found {
		axis, err := c.jsonToBinAxis(raw)
		if err != nil {
			return nil, err
		}
		axis1 = &axis
	}
	if axis1 != nil && axis0 == nil {
		return nil, MalformedInputError("axis 1 descriptor without axis 0")
	}

	rows, cols := 1, 1
	if axis0 != nil {
		cols = axis0.Bins
	}
	if axis1 != nil {
		rows = axis1.Bins
	}

	dataRaw, found := fields[c.cfg.DataKey]
	if !found {
		return nil, MalformedInputError("data material without cell array")
	}
	var cells [][]float64
	if err := json.Unmarshal(dataRaw, &cells); err != nil {
		return nil, MalformedInputError("cell array: %v", err)
	}
	matrix, err := cellMatrix(cells, rows, cols)
	if err != nil {
		return nil, err
	}

	switch {
	case axis0 == nil:
		return material.Homogeneous{Slab: matrix[0][0]}, nil
	case axis1 == nil:
		return material.Binned1D{Axis: *axis0, Slabs: matrix[0]}, nil
	default:
		return material.Binned2D{Axis0: *axis0, Axis1: *axis1, Slabs: matrix}, nil
	}
}

// cellMatrix reshapes the flat cell list into rows x cols, axis 0 varying
// fastest. The cell count must match the shape exactly.
func cellMatrix(cells [][]float64, rows, cols int) ([][]material.Slab, error) {
	if rows < 1 || cols < 1 {
		return nil, MalformedInputError("material grid of shape %dx%d", rows, cols)
	}
	if len(cells) != rows*cols {
		return nil, MalformedInputError(
			"%d cells do not fill a %dx%d grid", len(cells), rows, cols)
	}
	matrix := make([][]material.Slab, rows)
	for i := range matrix {
		matrix[i] = make([]material.Slab, cols)
		for j := range matrix[i] {
			row := cells[i*cols+j]
			if len(row) != 6 {
				return nil, MalformedInputError(
					"cell (%d,%d) carries %d properties instead of 6", i, j, len(row))
			}
			matrix[i][j] = slabFromRow(row)
		}
	}
	return matrix, nil
}

// jsonToBinAxis decodes one axis descriptor from its array form.
func (c *Converter) jsonToBinAxis(raw json.RawMessage) (material.BinAxis, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return material.BinAxis{}, MalformedInputError("bin axis descriptor: %v", err)
	}
	if len(parts) == 0 {
		return material.BinAxis{}, MalformedInputError("empty bin axis descriptor")
	}
	var strategy string
	if err := json.Unmarshal(parts[0], &strategy); err != nil {
		return material.BinAxis{}, MalformedInputError("bin strategy tag: %v", err)
	}

	switch material.BinStrategy(strategy) {
	case material.BinEquidistant:
		if len(parts) != 4 {
			return material.BinAxis{}, MalformedInputError(
				"equidistant axis with %d fields instead of 4", len(parts))
		}
		axis := material.BinAxis{Strategy: material.BinEquidistant}
		if err := unmarshalAxisFields(parts[1:], &axis.Bins, &axis.Min, &axis.Max); err != nil {
			return material.BinAxis{}, err
		}
		if axis.Bins < 1 {
			return material.BinAxis{}, MalformedInputError("axis with %d bins", axis.Bins)
		}
		return axis, nil
	case material.BinArbitrary:
		if len(parts) != 3 {
			return material.BinAxis{}, MalformedInputError(
				"arbitrary axis with %d fields instead of 3", len(parts))
		}
		axis := material.BinAxis{Strategy: material.BinArbitrary}
		if err := json.Unmarshal(parts[1], &axis.Bins); err != nil {
			return material.BinAxis{}, MalformedInputError("axis bin count: %v", err)
		}
		if err := json.Unmarshal(parts[2], &axis.Boundaries); err != nil {
			return material.BinAxis{}, MalformedInputError("axis boundaries: %v", err)
		}
		if axis.Bins < 1 {
			return material.BinAxis{}, MalformedInputError("axis with %d bins", axis.Bins)
		}
		if len(axis.Boundaries) != axis.Bins+1 {
			return material.BinAxis{}, MalformedInputError(
				"%d boundaries for %d bins", len(axis.Boundaries), axis.Bins)
		}
		return axis, nil
	default:
		return material.BinAxis{}, UnsupportedBinTypeError(
			"unknown binning strategy %q", strategy)
	}
}

func unmarshalAxisFields(parts []json.RawMessage, bins *int, min, max *float64) error {
	if err := json.Unmarshal(parts[0], bins); err != nil {
		return MalformedInputError("axis bin count: %v", err)
	}
	if err := json.Unmarshal(parts[1], min); err != nil {
		return MalformedInputError("axis lower bound: %v", err)
	}
	if err := json.Unmarshal(parts[2], max); err != nil {
		return MalformedInputError("axis upper bound: %v", err)
	}
	return nil
}
