package ufo

import (
	"sync"

	"github.com/npillmayer/ufogleaner/core/ufo/plist"
	"github.com/npillmayer/ufogleaner/core/ufo/provider"
)

// Font is a glyph layer of a UFO package, with glyphs loaded on demand.
type Font struct {
	provider provider.Provider
	contents *plist.Contents
	mu       sync.Mutex        // guards glyphs and warm
	glyphs   map[string]*Glyph // glyph handle cache
	warm     bool              // all indexed glyphs have a handle
}

// Open creates a font for the default glyph layer by reading its
// contents.plist. No GLIF file is read.
//
// Open fails if the index cannot be read (error code core.EIO or
// core.EMISSING) or is not a dictionary (core.EPLIST).
func Open(p provider.Provider) (*Font, error) {
	return OpenLayer(p, plist.DefaultLayerDir)
}

// OpenLayer creates a font for the glyph layer stored in directory layerDir.
func OpenLayer(p provider.Provider, layerDir string) (*Font, error) {
	contents, err := plist.ReadContentsIn(p, layerDir)
	if err != nil {
		tracer().Errorf("cannot open UFO %s: %v", p.Root(), err)
		return nil, err
	}
	tracer().Infof("opened UFO %s, layer %s with %d glyphs", p.Root(), contents.LayerDir(), contents.Len())
	return &Font{
		provider: p,
		contents: contents,
		glyphs:   make(map[string]*Glyph),
	}, nil
}

// Provider returns the provider the font reads its files with.
func (f *Font) Provider() provider.Provider {
	return f.provider
}

// Contents returns the font's glyph index.
func (f *Font) Contents() *plist.Contents {
	return f.contents
}

// Len returns the number of glyphs in the index.
func (f *Font) Len() int {
	return f.contents.Len()
}

// Names returns the names of all indexed glyphs, sorted.
func (f *Font) Names() []string {
	return f.contents.Names()
}

// NamesWithPrefix returns the names of indexed glyphs starting with prefix, sorted.
func (f *Font) NamesWithPrefix(prefix string) []string {
	return f.contents.WithPrefix(prefix)
}

// Contains reports whether glyph name is in the index.
func (f *Font) Contains(name string) bool {
	return f.contents.Contains(name)
}

// Glyph returns the glyph handle for name, creating and caching it if
// necessary. Repeated calls return the same handle.
//
// Glyph never returns nil, even for names missing from the index. For such
// names, the first field access on the handle fails with an error of code
// core.EMISSINGATTR. Use Contains to check for membership beforehand.
func (f *Font) Glyph(name string) *Glyph {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.glyph(name)
}

// glyph expects f.mu to be held.
func (f *Font) glyph(name string) *Glyph {
	if g, ok := f.glyphs[name]; ok {
		return g
	}
	tracer().Debugf("creating glyph handle for %q", name)
	g := newGlyph(f, name)
	f.glyphs[name] = g
	return g
}

// Glyphs returns handles for all indexed glyphs, keyed by name.
// On first call a handle is created for every index entry; GLIF files are
// not read. Handles for names outside the index, created by calls to Glyph,
// are not included.
//
// The returned map is a fresh copy and may be modified by the caller.
func (f *Font) Glyphs() map[string]*Glyph {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := f.contents.Names()
	if !f.warm {
		for _, name := range names {
			f.glyph(name)
		}
		f.warm = true
	}
	m := make(map[string]*Glyph, len(names))
	for _, name := range names {
		m[name] = f.glyphs[name]
	}
	return m
}

// Iter returns a new iterator over the glyphs of the index, in name order.
func (f *Font) Iter() *Iter {
	return newIter(f)
}

// cached returns the handle for name without creating one.
func (f *Font) cached(name string) (*Glyph, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.glyphs[name]
	return g, ok
}
