package converter

import (
	"errors"
	"fmt"

	"github.com/Zequn-SUN/acts/pkg/converter/geoid"
)

// Decode failure kinds. Factory functions below wrap them, so callers can
// match with errors.Is.
var (
	// ErrMalformedInput marks a schema violation: unrecognized type tag,
	// broken key, or an array whose shape contradicts its bin axes.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnsupportedBinType marks an axis descriptor naming an unknown
	// binning strategy.
	ErrUnsupportedBinType = errors.New("unsupported bin type")
	// ErrGeometryIDCollision marks two decoded entries mapping to one
	// identifier.
	ErrGeometryIDCollision = errors.New("geometry id collision")
)

type makeNewKindErrorFuncType = func(message string, formattedValues ...interface{}) error

// MalformedInputError ...
var MalformedInputError = makeNewKindErrorFunc(ErrMalformedInput)

// UnsupportedBinTypeError ...
var UnsupportedBinTypeError = makeNewKindErrorFunc(ErrUnsupportedBinType)

// GeometryIDCollisionError reports the identifier both entries decoded to.
func GeometryIDCollisionError(id geoid.GeometryID) error {
	return fmt.Errorf("[converter] %w: GeometryID{%#x} decoded twice", ErrGeometryIDCollision, uint64(id))
}

func makeNewKindErrorFunc(kind error) makeNewKindErrorFuncType {
	return func(message string, formattedValues ...interface{}) error {
		return fmt.Errorf("[converter] %w: "+message,
			append([]interface{}{kind}, formattedValues...)...)
	}
}
