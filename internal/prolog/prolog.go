// Package prolog finds where the markup payload of a document starts and
// reads processing-instruction parameters from the region before it.
//
// The scan is shallow on purpose: it looks at brackets and a few character
// classes only. Quoted attributes, CDATA and nesting are not understood.
package prolog

import (
	"github.com/hyperifyio/cehta/internal/textenc"
)

// Locate returns the offset of the first '<' that starts neither a
// processing instruction ("<?") nor a comment or declaration ("<!").
// It returns len(text) when there is no such '<', in which case the whole
// text counts as prolog. A '<' in the last position is treated as prolog.
func Locate(text textenc.Text) int {
	p := 0
	for {
		i := indexUnit(text[p:], '<')
		if i < 0 {
			return len(text)
		}
		at := p + i
		if at+1 >= len(text) {
			return len(text)
		}
		if next := text[at+1]; next != '?' && next != '!' {
			return at
		}
		p = at + 2
	}
}

func indexUnit(s textenc.Text, u uint16) int {
	for i, c := range s {
		if c == u {
			return i
		}
	}
	return -1
}

// index returns the first offset of needle in haystack, or -1.
func index(haystack, needle textenc.Text) int {
	n := len(needle)
	if n == 0 {
		return 0
	}
	for i := 0; i+n <= len(haystack); i++ {
		if haystack[i] != needle[0] {
			continue
		}
		match := true
		for j := 1; j < n; j++ {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
