package escape_test

import (
	"bytes"
	"testing"

	"github.com/handlersocket/escape-go/escape"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// inputString generates strings that mix plain text with the units the codec
// cares about: low control bytes (including NUL and the marker itself) and
// bytes from the escaped payload range.
var inputString = rapid.Custom(func(t *rapid.T) string {
	plain := rapid.String()
	control := rapid.OneOf(
		rapid.Just("\x00"),
		rapid.Just("\x01"),
		rapid.Just("\x09"),
		rapid.Just("\x0f"),
		rapid.Just("\x40"),
		rapid.Just("\x4f"),
	)
	generator := rapid.SliceOf(rapid.OneOf(plain, control))
	chunks := generator.Draw(t, "chunks").([]interface{})
	var buf bytes.Buffer
	for _, chunk := range chunks {
		buf.WriteString(chunk.(string))
	}
	return buf.String()
})

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := inputString.Draw(t, "input").(string)
		encoded := escape.Encode([]byte(input))
		decoded := escape.Decode(encoded)
		assert.Equal(t, input, string(decoded))
	})
}

func TestEncodedHasNoBareLowControl(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := inputString.Draw(t, "input").(string)
		checkNoBareLowControl(t, escape.Encode([]byte(input)))
	})
}

func TestLengthLawRandom(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := inputString.Draw(t, "input").(string)
		encoded := escape.Encode([]byte(input))
		assert.Equal(t, len(input)+countEscapable(input), len(encoded))
		assert.Equal(t, len(input), len(escape.Decode(encoded)))
	})
}

func TestRoundTripWide(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.SliceOf(rapid.Uint16()).Draw(t, "input").([]uint16)
		encoded := escape.Encode(input)
		decoded := escape.Decode(encoded)
		assert.Equal(t, input, decoded)
	})
}

func TestRoundTripRunes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.SliceOf(rapid.Rune()).Draw(t, "input").([]rune)
		encoded := escape.Encode(input)
		decoded := escape.Decode(encoded)
		assert.Equal(t, input, decoded)
	})
}
