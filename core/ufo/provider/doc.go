/*
Package provider gives read-only access to the files of a UFO font package.

A Provider reads files by a slash-separated path relative to the package
root. It does not list or write anything. Three implementations are
included:

▪︎ FileProvider reads from a directory on disk.

▪︎ MemProvider holds files in memory and is mostly useful for tests.

▪︎ FSProvider adapts any io/fs.FS, e.g. an embed.FS.

Providers carry no mutable state once set up and may be shared between
several fonts and gleaners reading the same package.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package provider

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.ufo'
func tracer() tracing.Trace {
	return tracing.Select("tyse.ufo")
}
