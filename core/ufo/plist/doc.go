/*
Package plist reads property list files of a UFO font package.

The central function is ReadContents, which loads a glyph layer's
contents.plist into an immutable Contents index, mapping glyph names to
GLIF file names. Entries of contents.plist with values other than strings
are dropped silently.

Decoding of property list values is done by howett.net/plist. Decoded values
use plain Go types: dictionaries are map[string]interface{}, arrays are
[]interface{}, and scalars are string, uint64/int64, float64, bool, time.Time
or []byte.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package plist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.ufo'
func tracer() tracing.Trace {
	return tracing.Select("tyse.ufo")
}
