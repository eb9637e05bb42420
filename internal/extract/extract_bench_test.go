package extract

import (
	"strings"
	"testing"
)

func BenchmarkFromMarkup(b *testing.B) {
	small := "<html><head><title>t</title></head><body><p>a</p></body></html>"
	large := makeMarkup(200, 40)

	b.Run("small", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = FromMarkup(small)
		}
	})
	b.Run("large", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = FromMarkup(large)
		}
	})
}

func makeMarkup(paragraphs, words int) string {
	var sb strings.Builder
	sb.WriteString("<html><head><title>bench</title></head><body>")
	for p := 0; p < paragraphs; p++ {
		sb.WriteString("<p>")
		for w := 0; w < words; w++ {
			sb.WriteString("word ")
		}
		sb.WriteString("</p><input type=\"button\" value=\"go\">")
	}
	sb.WriteString("</body></html>")
	return sb.String()
}
