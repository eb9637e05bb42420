package prolog

import (
	"github.com/hyperifyio/cehta/internal/textenc"
)

var terminator = textenc.FromString("?>")

func isSpace(u uint16) bool {
	return u == ' ' || u == '\t' || u == '\r' || u == '\n'
}

// Instruction looks for name in text[:payload] and returns the parameter
// string that follows it: the text after the whitespace run that must follow
// name, up to but excluding the next "?>". Only the occurrence of name has to
// lie before payload; the terminator may come later, so a parameter string
// containing '<' is still returned whole.
//
// Occurrences not followed by whitespace, or not terminated at all, are
// skipped and the search resumes right after them. ok is false when no
// occurrence qualifies; that is a normal outcome, not an error.
func Instruction(text textenc.Text, payload int, name string) (params string, ok bool) {
	if payload < 0 {
		payload = 0
	}
	if payload > len(text) {
		payload = len(text)
	}
	needle := textenc.FromString(name)
	if len(needle) == 0 {
		return "", false
	}
	prolog := text[:payload]

	p := 0
	for p < payload {
		i := index(prolog[p:], needle)
		if i < 0 {
			return "", false
		}
		p += i + len(needle)

		start := p
		for start < len(text) && isSpace(text[start]) {
			start++
		}
		if start == p {
			continue
		}
		p = start
		if end := index(text[start:], terminator); end >= 0 {
			return text[start : start+end].String(), true
		}
	}
	return "", false
}
