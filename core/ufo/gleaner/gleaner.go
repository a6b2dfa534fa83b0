package gleaner

import (
	"github.com/npillmayer/ufogleaner/core/ufo/glif"
	"github.com/npillmayer/ufogleaner/core/ufo/plist"
	"github.com/npillmayer/ufogleaner/core/ufo/provider"
)

// Gleaner is an eager batch parser for the GLIF files of a glyph layer.
type Gleaner struct {
	contents *plist.Contents
	parser   *glif.Parser
}

// New creates a gleaner for the default glyph layer.
//
// New fails if the layer's contents.plist cannot be read or is not a
// dictionary, or if no GLIF parser can be set up.
func New(p provider.Provider) (*Gleaner, error) {
	return NewForLayer(p, plist.DefaultLayerDir)
}

// NewForLayer creates a gleaner for the glyph layer in directory layerDir.
func NewForLayer(p provider.Provider, layerDir string) (*Gleaner, error) {
	contents, err := plist.ReadContentsIn(p, layerDir)
	if err != nil {
		return nil, err
	}
	parser, err := glif.NewParser(p, contents.LayerDir())
	if err != nil {
		return nil, err
	}
	return &Gleaner{contents: contents, parser: parser}, nil
}

// Contents returns the glyph index the gleaner works on.
func (g *Gleaner) Contents() *plist.Contents {
	return g.contents
}

// Glean parses all glyphs of the index and returns them by glyph name.
//
// The result has an entry for every indexed glyph. Glyphs which could not
// be read or parsed map to nil.
func (g *Gleaner) Glean() map[string]*glif.Data {
	glyphs := make(map[string]*glif.Data, g.contents.Len())
	failed := 0
	for _, name := range g.contents.Names() {
		fileName, _ := g.contents.FileName(name)
		data, err := g.parser.Parse(fileName)
		if err != nil {
			tracer().Errorf("glyph %q: %v", name, err)
			failed++
		}
		glyphs[name] = data
	}
	tracer().Infof("gleaned %d glyphs, %d failed", len(glyphs), failed)
	return glyphs
}
