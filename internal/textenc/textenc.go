// Package textenc turns raw file bytes into the UTF-16 text handed to the
// renderer. Two encodings are recognized: UTF-16LE introduced by a byte-order
// mark, and UTF-8 without one. Anything else is decoded as UTF-8, best effort.
package textenc

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Text is decoded document content as UTF-16 code units. No byte-order mark
// is ever present in a Text produced by Normalize.
type Text []uint16

// ByteOrderMark is the code unit that marks a file as already wide text.
const ByteOrderMark = 0xFEFF

// ErrDecode is returned when a non-empty input produced no text at all.
var ErrDecode = errors.New("decode produced no text")

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// HasBOM reports whether raw starts with a little-endian UTF-16 byte-order mark.
func HasBOM(raw []byte) bool {
	return len(raw) >= 2 && binary.LittleEndian.Uint16(raw) == ByteOrderMark
}

// Normalize decodes raw into Text.
//
// With a byte-order mark the bytes are taken as UTF-16LE and the mark is
// replaced by '\n', not stripped, so unit offsets match the file. A trailing
// odd byte is dropped. Without a mark the bytes are transcoded from UTF-8;
// invalid sequences become U+FFFD. A leading UTF-8 byte-order mark is
// replaced by '\n' the same way.
func Normalize(raw []byte) (Text, error) {
	if HasBOM(raw) {
		text := unitsFromBytes(raw)
		text[0] = '\n'
		return text, nil
	}
	if len(raw) == 0 {
		return Text{}, nil
	}
	wide, err := utf16le.NewEncoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(wide) == 0 {
		return nil, ErrDecode
	}
	text := unitsFromBytes(wide)
	if text[0] == ByteOrderMark {
		text[0] = '\n'
	}
	return text, nil
}

// FromString encodes s as Text. It never inserts a byte-order mark.
func FromString(s string) Text {
	if s == "" {
		return Text{}
	}
	wide, err := utf16le.NewEncoder().String(s)
	if err != nil {
		return Text{}
	}
	return unitsFromBytes([]byte(wide))
}

// String decodes t back to UTF-8. Unpaired surrogates become U+FFFD.
func (t Text) String() string {
	if len(t) == 0 {
		return ""
	}
	b := make([]byte, 2*len(t))
	for i, u := range t {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	s, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(s)
}

func unitsFromBytes(b []byte) Text {
	text := make(Text, len(b)/2)
	for i := range text {
		text[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return text
}
