/*
Package gleaner parses all glyphs of a UFO font package eagerly.

A Gleaner reads a layer's glyph index when created and parses every GLIF
file on each call to Glean. Glyphs which cannot be read or parsed are
reported as nil entries; such failures are traced, but never returned as
errors. Nothing is cached between calls.

Use package ufo for lazy access with exact error reporting.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package gleaner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.ufo'
func tracer() tracing.Trace {
	return tracing.Select("tyse.ufo")
}
