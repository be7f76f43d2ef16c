// Package escape provides a Go implementation of the HandlerSocket wire
// escaping scheme.  Low control units (values 0x00 through 0x0f) may not
// appear bare in protocol tokens, so each one is replaced by the two-unit
// pair `0x01 (value | 0x40)`.  The codec works on any fixed-width code unit
// sequence: byte text, UTF-16 text, or runes.
package escape
