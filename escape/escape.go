package escape

const marker = 0x01
const maxEscapable = 0x0f
const shift = 0x40
const maxPayload = 0x4f

// Unit is one fixed-width element of a text buffer: a byte for narrow text,
// or a 2- or 4-byte unit for wide text.  ~int32 admits []rune.
type Unit interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// isEscapable reports whether u is a low control unit.  The unsigned
// conversion also rejects negative values of signed unit types.
func isEscapable[U Unit](u U) bool {
	return uint32(u) <= maxEscapable
}

// nextEscapable returns the index of the first low control unit in text, or
// len(text) if there is none.
func nextEscapable[U Unit](text []U) int {
	for i, u := range text {
		if isEscapable(u) {
			return i
		}
	}
	return len(text)
}

// nextEscapePair returns the index of the first escape pair in text, or
// len(text) if there is none.  A pair is a marker unit followed by a payload
// in [0x40, 0x4f]; a marker with any other successor, or a marker that is
// the last unit of the buffer, does not match.
func nextEscapePair[U Unit](text []U) int {
	for i := 0; i+1 < len(text); i++ {
		if text[i] == marker && uint32(text[i+1]) >= shift && uint32(text[i+1]) <= maxPayload {
			return i
		}
	}
	return len(text)
}

// countEscapable returns the number of low control units in text.  It walks
// the buffer with the same helper that drives the encoding copy pass, so the
// two passes always agree on which units match.
func countEscapable[U Unit](text []U) int {
	count := 0
	for {
		i := nextEscapable(text)
		if i == len(text) {
			return count
		}
		count++
		text = text[i+1:]
	}
}

// countEscapePairs returns the number of escape pairs in text.  A match
// consumes both units, so the marker's payload is never itself considered as
// the start of another pair.
func countEscapePairs[U Unit](text []U) int {
	count := 0
	for {
		i := nextEscapePair(text)
		if i == len(text) {
			return count
		}
		count++
		text = text[i+2:]
	}
}

// Encode escapes every low control unit of text into the two-unit pair
// `0x01 (value | 0x40)`.  The result is a newly allocated slice of exactly
// len(text) plus the number of escaped units.  When text contains no low
// control unit, Encode returns text itself, unchanged and uncopied; callers
// may rely on this as a "no transformation needed" signal.  The input is
// never modified.
func Encode[U Unit](text []U) []U {
	count := countEscapable(text)
	if count == 0 {
		return text
	}

	encoded := make([]U, 0, len(text)+count)
	for count > 0 {
		i := nextEscapable(text)
		encoded = append(encoded, text[:i]...)
		encoded = append(encoded, marker, text[i]|shift)
		text = text[i+1:]
		count--
	}
	return append(encoded, text...)
}

// Decode reverses Encode, replacing every escape pair with the single unit
// `payload ^ 0x40`.  The result is a newly allocated slice of exactly
// len(text) minus the number of pairs; when text contains no pair, Decode
// returns text itself.  A bare marker that does not start a pair passes
// through unmodified, as does its successor.
func Decode[U Unit](text []U) []U {
	count := countEscapePairs(text)
	if count == 0 {
		return text
	}

	decoded := make([]U, 0, len(text)-count)
	for count > 0 {
		i := nextEscapePair(text)
		decoded = append(decoded, text[:i]...)
		decoded = append(decoded, text[i+1]^shift)
		text = text[i+2:]
		count--
	}
	return append(decoded, text...)
}
