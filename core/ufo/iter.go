package ufo

// Iter iterates over the glyphs of a font's index, creating glyph handles
// as it goes. Handles are shared with Font.Glyph and Font.Glyphs.
//
// The names to visit are fixed when the iterator is created. An iterator
// cannot be restarted; call Font.Iter again instead.
//
//	it := font.Iter()
//	for it.Next() {
//	    g := it.Glyph()
//	    …
//	}
type Iter struct {
	font    *Font
	names   []string
	pos     int
	current *Glyph
}

func newIter(f *Font) *Iter {
	return &Iter{font: f, names: f.contents.Names()}
}

// Next advances to the next glyph. It returns false when all glyphs have
// been visited.
func (it *Iter) Next() bool {
	if it.pos >= len(it.names) {
		it.current = nil
		return false
	}
	it.current = it.font.Glyph(it.names[it.pos])
	it.pos++
	return true
}

// Glyph returns the current glyph, or nil before the first call to Next
// and after iteration has ended.
func (it *Iter) Glyph() *Glyph {
	return it.current
}

// Remaining returns the number of glyphs not yet visited.
func (it *Iter) Remaining() int {
	return len(it.names) - it.pos
}
