package escape

import (
	"bytes"
)

const fieldSeparator = '\t'
const lineTerminator = '\n'
const nullSentinel = 0x00

// TokenWriter builds up a single protocol line, token by token.  Data fields
// are escaped as they are written; opcode and count tokens are written raw.
// Tokens are separated by tabs.  Once a line is complete, call Line to get
// its wire form and start the next one.
type TokenWriter struct {
	bytes.Buffer
	tokens int
}

func (w *TokenWriter) separate() {
	if w.tokens > 0 {
		w.WriteByte(fieldSeparator)
	}
	w.tokens++
}

// WriteToken appends a raw token, such as an opcode or a numeric count.
// The token is written verbatim; it must not contain low control bytes.
func (w *TokenWriter) WriteToken(token string) {
	w.separate()
	w.WriteString(token)
}

// WriteField appends a data field, escaping any low control bytes it
// contains.
func (w *TokenWriter) WriteField(field string) {
	w.separate()
	w.Write(Encode([]byte(field)))
}

// WriteNull appends the NULL sentinel, a single unescaped NUL byte.
func (w *TokenWriter) WriteNull() {
	w.separate()
	w.WriteByte(nullSentinel)
}

// Line terminates the current line and returns a copy of its wire form,
// resetting the writer for the next line.
func (w *TokenWriter) Line() []byte {
	w.WriteByte(lineTerminator)
	line := append([]byte(nil), w.Bytes()...)
	w.Reset()
	w.tokens = 0
	return line
}

// Tokenizer splits a protocol line back into its tokens.  The trailing line
// terminator, if present, is ignored.
type Tokenizer struct {
	rest  []byte
	token []byte
	done  bool
}

// Reset sets up the tokenizer to walk the tokens of line.  An empty line
// still carries one empty token, so that an empty leading field survives the
// round trip.
func (t *Tokenizer) Reset(line []byte) {
	t.rest = bytes.TrimSuffix(line, []byte{lineTerminator})
	t.token = nil
	t.done = false
}

// Next advances to the next token.  It returns false once the line is
// exhausted.
func (t *Tokenizer) Next() bool {
	if t.done {
		return false
	}
	i := bytes.IndexByte(t.rest, fieldSeparator)
	if i < 0 {
		t.token = t.rest
		t.rest = nil
		t.done = true
		return true
	}
	t.token = t.rest[:i]
	t.rest = t.rest[i+1:]
	return true
}

// Token returns the raw bytes of the current token, still escaped.
func (t *Tokenizer) Token() []byte {
	return t.token
}

// Field returns the current token as a decoded field.  The second return
// value is false when the token is the NULL sentinel.
func (t *Tokenizer) Field() (string, bool) {
	if len(t.token) == 1 && t.token[0] == nullSentinel {
		return "", false
	}
	return string(Decode(t.token)), true
}
