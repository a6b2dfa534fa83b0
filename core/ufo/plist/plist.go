package plist

import (
	"github.com/npillmayer/ufogleaner/core"
	"github.com/npillmayer/ufogleaner/core/ufo/provider"
	hplist "howett.net/plist"
)

// Well-known paths within a UFO package.
const (
	DefaultLayerDir   = "glyphs"
	ContentsFile      = "contents.plist"
	MetaInfoFile      = "metainfo.plist"
	LayerContentsFile = "layercontents.plist"
)

// Parser reads and decodes property list files through a provider.
type Parser struct {
	provider provider.Provider
}

// NewParser creates a parser reading files with p.
func NewParser(p provider.Provider) *Parser {
	return &Parser{provider: p}
}

// Parse reads the plist file at relPath and decodes it.
// Read failures are returned unchanged (codes core.EIO or core.EMISSING),
// decoding failures carry code core.EPLIST.
func (pp *Parser) Parse(relPath string) (interface{}, error) {
	data, err := pp.provider.Read(relPath)
	if err != nil {
		return nil, err
	}
	return Decode(data, relPath)
}

// Decode decodes a property list document in any of the formats supported
// by howett.net/plist. path is used for error messages.
func Decode(data []byte, path string) (interface{}, error) {
	var value interface{}
	if _, err := hplist.Unmarshal(data, &value); err != nil {
		return nil, core.WithPath(core.WrapError(err, core.EPLIST, "cannot decode property list"), path)
	}
	return value, nil
}

// Dict asserts that a decoded value is a dictionary.
func Dict(value interface{}) (map[string]interface{}, bool) {
	d, ok := value.(map[string]interface{})
	return d, ok
}

// Int converts a decoded plist integer to int.
func Int(value interface{}) (int, bool) {
	switch n := value.(type) {
	case uint64:
		return int(n), true
	case int64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
