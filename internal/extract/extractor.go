package extract

// Extractor turns document markup into a readable Document.
// Renderers depend on this so the conversion can be swapped in tests.
type Extractor interface {
    Extract(markup string) Document
}

// MarkupExtractor uses FromMarkup.
type MarkupExtractor struct{}

func (MarkupExtractor) Extract(markup string) Document {
    return FromMarkup(markup)
}
