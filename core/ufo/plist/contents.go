package plist

import (
	"path"
	"sort"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/ufogleaner/core"
	"github.com/npillmayer/ufogleaner/core/ufo/provider"
)

// Contents is the index of a glyph layer: a mapping from glyph names to
// GLIF file names, as found in the layer's contents.plist.
//
// A Contents is immutable after creation. Names are kept in sorted order.
type Contents struct {
	dir     string       // layer directory, relative to the package root
	entries *treemap.Map // glyph name → file name
	names   *trie.Trie   // glyph names, for prefix queries
}

// ReadContents reads contents.plist of the default layer ("glyphs").
func ReadContents(p provider.Provider) (*Contents, error) {
	return ReadContentsIn(p, DefaultLayerDir)
}

// ReadContentsIn reads the contents.plist of the glyph layer in directory
// layerDir.
//
// The top-level value of contents.plist must be a dictionary, otherwise an
// error with code core.EPLIST is returned. Only string-valued entries are
// included; other entries are ignored.
func ReadContentsIn(p provider.Provider, layerDir string) (*Contents, error) {
	if layerDir == "" {
		layerDir = DefaultLayerDir
	}
	contentsPath := path.Join(layerDir, ContentsFile)
	tracer().Debugf("reading glyph index %s", contentsPath)
	value, err := NewParser(p).Parse(contentsPath)
	if err != nil {
		return nil, err
	}
	dict, ok := Dict(value)
	if !ok {
		return nil, core.WithPath(core.Error(core.EPLIST, "contents.plist is not a dictionary"),
			contentsPath)
	}
	c := newContents(layerDir)
	dropped := 0
	for name, v := range dict {
		fileName, ok := v.(string)
		if !ok {
			dropped++
			continue
		}
		c.entries.Put(name, fileName)
		c.names.Add(name, nil)
	}
	tracer().Debugf("glyph index %s has %d entries, %d ignored", contentsPath, c.Len(), dropped)
	return c, nil
}

// NewContents creates an index from a map of glyph names to file names.
func NewContents(layerDir string, m map[string]string) *Contents {
	c := newContents(layerDir)
	for name, fileName := range m {
		c.entries.Put(name, fileName)
		c.names.Add(name, nil)
	}
	return c
}

func newContents(layerDir string) *Contents {
	return &Contents{
		dir:     layerDir,
		entries: treemap.NewWithStringComparator(),
		names:   trie.New(),
	}
}

// LayerDir returns the layer directory this index belongs to.
func (c *Contents) LayerDir() string {
	return c.dir
}

// Path returns the path of the contents.plist file, relative to the package root.
func (c *Contents) Path() string {
	return path.Join(c.dir, ContentsFile)
}

// Len returns the number of glyphs in the index.
func (c *Contents) Len() int {
	return c.entries.Size()
}

// Contains reports whether name has an entry in the index.
func (c *Contents) Contains(name string) bool {
	_, found := c.entries.Get(name)
	return found
}

// FileName returns the GLIF file name for glyph name.
func (c *Contents) FileName(name string) (string, bool) {
	v, found := c.entries.Get(name)
	if !found {
		return "", false
	}
	return v.(string), true
}

// Names returns all glyph names in sorted order.
func (c *Contents) Names() []string {
	keys := c.entries.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// WithPrefix returns the glyph names starting with prefix, in sorted order.
func (c *Contents) WithPrefix(prefix string) []string {
	if prefix == "" {
		return c.Names()
	}
	names := c.names.PrefixSearch(prefix)
	sort.Strings(names)
	return names
}

// Map returns a copy of the index as a Go map.
func (c *Contents) Map() map[string]string {
	m := make(map[string]string, c.Len())
	c.entries.Each(func(k, v interface{}) {
		m[k.(string)] = v.(string)
	})
	return m
}
