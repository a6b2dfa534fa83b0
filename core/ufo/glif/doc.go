/*
Package glif parses GLIF files, the per-glyph XML documents of a UFO font
package.

A Parser reads GLIF files through a provider.Provider and decodes them into
Data records. Records are plain values; Clone returns a deep copy.

Outlines may be converted to golang.org/x/image/font/sfnt segments, to be
fed to rasterizers or compared with compiled fonts.

# Status

GLIF format versions 1 and 2 are read. Format 1 anchors, which are encoded
as single-point contours, are not converted to anchors.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glif

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.ufo'
func tracer() tracing.Trace {
	return tracing.Select("tyse.ufo")
}
