package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

const utf8Name = "utf-8"

// Charset is the text encoding a Validator counts characters and checks
// validity against. The zero value behaves as UTF-8.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the default charset.
var UTF8 = Charset{name: utf8Name, enc: unicode.UTF8}

// LookupCharset resolves an encoding label such as "UTF-8", "Shift_JIS",
// "EUC-JP" or "windows-1252". Labels are matched case-insensitively using the
// WHATWG encoding index.
func LookupCharset(name string) (Charset, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return Charset{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return Charset{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return Charset{name: canonical, enc: enc}, nil
}

// Name returns the canonical WHATWG name, e.g. "utf-8" or "shift_jis".
func (c Charset) Name() string {
	if c.enc == nil {
		return utf8Name
	}
	return c.name
}

func (c Charset) isUTF8() bool {
	return c.enc == nil || c.name == utf8Name
}

// Valid reports whether s is well-formed text in this charset.
//
// For encodings other than UTF-8 the bytes are decoded and encoded back; the
// text is valid only if neither step fails, no replacement character was
// produced, and the round trip reproduces s exactly.
func (c Charset) Valid(s string) bool {
	if c.isUTF8() {
		return utf8.ValidString(s)
	}

	decoded, err := c.enc.NewDecoder().String(s)
	if err != nil || strings.ContainsRune(decoded, utf8.RuneError) {
		return false
	}
	encoded, err := c.enc.NewEncoder().String(decoded)
	return err == nil && encoded == s
}

// Len returns the number of characters in s. Multi-byte characters count
// once.
func (c Charset) Len(s string) int {
	if c.isUTF8() {
		return utf8.RuneCountInString(s)
	}

	decoded, err := c.enc.NewDecoder().String(s)
	if err != nil {
		return utf8.RuneCountInString(s)
	}
	return utf8.RuneCountInString(decoded)
}
