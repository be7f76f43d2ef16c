package escape

import (
	"errors"
)

var (
	// ErrUnsupportedType is the error that is returned when a value passed
	// to EncodeText or DecodeText is not one of the supported text
	// representations.
	ErrUnsupportedType = errors.New("unsupported text type")
)

// EncodeText escapes a text value of any supported representation: string or
// []byte for narrow text, []uint16 or []rune for wide text.  The result has
// the same dynamic type as the input.  Values of any other type fail with
// ErrUnsupportedType before any allocation takes place.
//
// When no unit needs escaping the input is returned as-is; for the slice
// representations this is the identical slice.
func EncodeText(text interface{}) (interface{}, error) {
	switch t := text.(type) {
	case string:
		raw := []byte(t)
		if countEscapable(raw) == 0 {
			return t, nil
		}
		return string(Encode(raw)), nil
	case []byte:
		return Encode(t), nil
	case []uint16:
		return Encode(t), nil
	case []rune:
		return Encode(t), nil
	default:
		return nil, ErrUnsupportedType
	}
}

// DecodeText reverses EncodeText for a text value of any supported
// representation, with the same type dispatch and no-op behavior.
func DecodeText(text interface{}) (interface{}, error) {
	switch t := text.(type) {
	case string:
		raw := []byte(t)
		if countEscapePairs(raw) == 0 {
			return t, nil
		}
		return string(Decode(raw)), nil
	case []byte:
		return Decode(t), nil
	case []uint16:
		return Decode(t), nil
	case []rune:
		return Decode(t), nil
	default:
		return nil, ErrUnsupportedType
	}
}
