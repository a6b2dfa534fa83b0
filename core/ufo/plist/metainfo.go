package plist

import (
	"github.com/npillmayer/ufogleaner/core"
	"github.com/npillmayer/ufogleaner/core/ufo/provider"
)

// MetaInfo holds the contents of a package's metainfo.plist.
type MetaInfo struct {
	Creator            string
	FormatVersion      int
	FormatVersionMinor int
}

// ReadMetaInfo reads metainfo.plist from the package root.
// formatVersion is required, the other keys are optional.
func ReadMetaInfo(p provider.Provider) (*MetaInfo, error) {
	value, err := NewParser(p).Parse(MetaInfoFile)
	if err != nil {
		return nil, err
	}
	dict, ok := Dict(value)
	if !ok {
		return nil, core.WithPath(core.Error(core.EPLIST, "metainfo.plist is not a dictionary"),
			MetaInfoFile)
	}
	info := &MetaInfo{}
	if info.FormatVersion, ok = Int(dict["formatVersion"]); !ok {
		return nil, core.WithPath(core.Error(core.EPLIST, "metainfo.plist lacks an integer formatVersion"),
			MetaInfoFile)
	}
	info.FormatVersionMinor, _ = Int(dict["formatVersionMinor"])
	info.Creator, _ = dict["creator"].(string)
	return info, nil
}

// Layer names a glyph layer and the directory it is stored in.
type Layer struct {
	Name string
	Dir  string
}

// ReadLayers reads layercontents.plist, a list of (layer name, directory)
// pairs. Packages without layercontents.plist (UFO 2) have a single default
// layer "public.default" in directory "glyphs".
func ReadLayers(p provider.Provider) ([]Layer, error) {
	value, err := NewParser(p).Parse(LayerContentsFile)
	if core.Is(err, core.EMISSING) {
		return []Layer{{Name: "public.default", Dir: DefaultLayerDir}}, nil
	} else if err != nil {
		return nil, err
	}
	list, ok := value.([]interface{})
	if !ok {
		return nil, core.WithPath(core.Error(core.EPLIST, "layercontents.plist is not an array"),
			LayerContentsFile)
	}
	layers := make([]Layer, 0, len(list))
	for i, entry := range list {
		pair, ok := entry.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, core.WithPath(core.Error(core.EPLIST, "layer entry #%d is not a pair", i),
				LayerContentsFile)
		}
		name, ok1 := pair[0].(string)
		dir, ok2 := pair[1].(string)
		if !ok1 || !ok2 {
			return nil, core.WithPath(core.Error(core.EPLIST, "layer entry #%d is not a pair of strings", i),
				LayerContentsFile)
		}
		layers = append(layers, Layer{Name: name, Dir: dir})
	}
	return layers, nil
}
