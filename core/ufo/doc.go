/*
Package ufo provides lazy, read-only access to the glyphs of a UFO font package.

Opening a Font reads only the glyph index (contents.plist) of a layer. Glyph
handles are created on demand and cached by name, and a glyph's GLIF file is
parsed on first access to any of its fields. A successfully parsed record is
kept for the lifetime of the handle. After a failed attempt nothing is cached,
thus a later access will try again.

	font, err := ufo.Open(provider.NewFileProvider("MyFont.ufo"))
	if err != nil { … }
	g := font.Glyph("A")
	adv, err := g.Advance() // reads and parses glyphs/A_.glif

For a best-effort snapshot of all glyphs, parsed eagerly and without caching,
see package gleaner.

Fonts and glyph handles may be used from multiple goroutines; caches are
guarded by mutexes.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ufo

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.ufo'
func tracer() tracing.Trace {
	return tracing.Select("tyse.ufo")
}
