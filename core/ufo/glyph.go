package ufo

import (
	"path/filepath"
	"sync"

	"github.com/npillmayer/ufogleaner/core"
	"github.com/npillmayer/ufogleaner/core/ufo/glif"
)

// Glyph is a lazily loaded glyph of a Font.
//
// The glyph's GLIF file is parsed when one of its fields is first accessed,
// and the result is cached. All getters return copies of the cached data.
type Glyph struct {
	font *Font // owning font, never nil
	name string
	mu   sync.Mutex // guards data, held while parsing
	data *glif.Data // nil until loaded successfully
}

func newGlyph(f *Font, name string) *Glyph {
	return &Glyph{font: f, name: name}
}

// Name returns the glyph name.
func (g *Glyph) Name() string {
	return g.name
}

// Font returns the font the glyph belongs to.
func (g *Glyph) Font() *Font {
	return g.font
}

// Loaded reports whether the glyph's GLIF file has been parsed successfully.
func (g *Glyph) Loaded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.data != nil
}

// Data returns a copy of the complete glyph record.
func (g *Glyph) Data() (*glif.Data, error) {
	d, err := g.load()
	if err != nil {
		return nil, err
	}
	return d.Clone(), nil
}

// Format returns the major format version of the glyph's GLIF file.
func (g *Glyph) Format() (string, error) {
	d, err := g.load()
	if err != nil {
		return "", err
	}
	return d.Format, nil
}

// FormatMinor returns the minor format version of the glyph's GLIF file,
// or "" if none is given.
func (g *Glyph) FormatMinor() (string, error) {
	d, err := g.load()
	if err != nil {
		return "", err
	}
	return d.FormatMinor, nil
}

// Advance returns the glyph's advance width and height, if any.
func (g *Glyph) Advance() (*glif.Advance, error) {
	d, err := g.load()
	if err != nil || d.Advance == nil {
		return nil, err
	}
	a := *d.Advance
	return &a, nil
}

// Unicodes returns the glyph's list of Unicode code points.
func (g *Glyph) Unicodes() ([]rune, error) {
	d, err := g.load()
	if err != nil {
		return nil, err
	}
	return d.Clone().Unicodes, nil
}

// Note returns the note attached to the glyph, or "".
func (g *Glyph) Note() (string, error) {
	d, err := g.load()
	if err != nil {
		return "", err
	}
	return d.Note, nil
}

// Image returns the glyph's image reference, if any.
func (g *Glyph) Image() (*glif.Image, error) {
	d, err := g.load()
	if err != nil || d.Image == nil {
		return nil, err
	}
	img := *d.Image
	return &img, nil
}

// Guidelines returns the glyph's guidelines.
func (g *Glyph) Guidelines() ([]glif.Guideline, error) {
	d, err := g.load()
	if err != nil {
		return nil, err
	}
	return d.Clone().Guidelines, nil
}

// Anchors returns the glyph's anchors.
func (g *Glyph) Anchors() ([]glif.Anchor, error) {
	d, err := g.load()
	if err != nil {
		return nil, err
	}
	return d.Clone().Anchors, nil
}

// Outline returns the glyph's outline, if any.
func (g *Glyph) Outline() (*glif.Outline, error) {
	d, err := g.load()
	if err != nil {
		return nil, err
	}
	return d.Outline.Clone(), nil
}

// Lib returns the glyph's lib dictionary, if any.
func (g *Glyph) Lib() (interface{}, error) {
	d, err := g.load()
	if err != nil {
		return nil, err
	}
	return glif.CloneValue(d.Lib), nil
}

// load returns the cached record, parsing the GLIF file if necessary.
// The returned record must not be modified.
//
// Failures are not cached: a later call will read the file again.
func (g *Glyph) load() (*glif.Data, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.data != nil {
		return g.data, nil
	}
	f := g.font
	fileName, ok := f.contents.FileName(g.name)
	if !ok {
		indexPath := filepath.Join(f.provider.Root(), filepath.FromSlash(f.contents.Path()))
		tracer().Errorf("glyph %q not found in %s", g.name, indexPath)
		return nil, core.MissingAttribute(g.name, indexPath)
	}
	parser, err := glif.NewParser(f.provider, f.contents.LayerDir())
	if err != nil {
		return nil, err
	}
	data, err := parser.Parse(fileName)
	if err != nil {
		tracer().Errorf("cannot load glyph %q: %v", g.name, err)
		return nil, err
	}
	tracer().Debugf("loaded glyph %q from %s", g.name, fileName)
	g.data = data
	return data, nil
}
