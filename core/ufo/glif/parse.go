package glif

import (
	"bytes"
	"encoding/xml"
	"errors"
	"math"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/ufogleaner/core"
	"github.com/npillmayer/ufogleaner/core/ufo/plist"
	"github.com/npillmayer/ufogleaner/core/ufo/provider"
)

// Parser reads GLIF files of one glyph layer.
type Parser struct {
	provider provider.Provider
	dir      string
}

// NewParser creates a parser for GLIF files located in directory layerDir
// of the package. An empty layerDir selects the default layer.
func NewParser(p provider.Provider, layerDir string) (*Parser, error) {
	if p == nil {
		return nil, core.Error(core.EINVALID, "GLIF parser needs a provider")
	}
	if layerDir == "" {
		layerDir = plist.DefaultLayerDir
	}
	return &Parser{provider: p, dir: layerDir}, nil
}

// Path returns the package-relative path of GLIF file fileName.
func (gp *Parser) Path(fileName string) string {
	return path.Join(gp.dir, fileName)
}

// Parse reads and decodes the GLIF file fileName, which is relative to the
// parser's layer directory.
func (gp *Parser) Parse(fileName string) (*Data, error) {
	glifPath := gp.Path(fileName)
	data, err := gp.provider.Read(glifPath)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsing GLIF file %s", glifPath)
	return Decode(data, glifPath)
}

// --- Decoding --------------------------------------------------------------

type xmlGlyph struct {
	XMLName     xml.Name    `xml:"glyph"`
	Name        string      `xml:"name,attr"`
	Format      string      `xml:"format,attr"`
	FormatMinor string      `xml:"formatMinor,attr"`
	Advance     *xmlElem    `xml:"advance"`
	Unicodes    []xmlElem   `xml:"unicode"`
	Note        *xmlText    `xml:"note"`
	Image       *xmlElem    `xml:"image"`
	Guidelines  []xmlElem   `xml:"guideline"`
	Anchors     []xmlElem   `xml:"anchor"`
	Outline     *xmlOutline `xml:"outline"`
	Lib         *xmlInner   `xml:"lib"`
}

type xmlElem struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type xmlText struct {
	Text string `xml:",chardata"`
}

type xmlInner struct {
	Inner []byte `xml:",innerxml"`
}

type xmlOutline struct {
	Contours   []xmlContour `xml:"contour"`
	Components []xmlElem    `xml:"component"`
}

type xmlContour struct {
	Attrs  []xml.Attr `xml:",any,attr"`
	Points []xmlElem  `xml:"point"`
}

// Decode decodes a GLIF document. path is used for error messages.
//
// Documents which are not well-formed XML or lack a glyph root element
// result in errors with code core.EXML. Missing required attributes,
// malformed numbers and code points beyond U+10FFFF result in core.EPARSE.
// Non-finite numbers (NaN, Inf) are rejected as malformed. A lib element
// which cannot be decoded, or holds a non-finite real, results in
// core.EPLIST.
func Decode(data []byte, glifPath string) (*Data, error) {
	var g xmlGlyph
	if err := xml.Unmarshal(data, &g); err != nil {
		return nil, core.WithPath(core.WrapError(err, core.EXML, "malformed GLIF document"), glifPath)
	}
	d, err := convert(&g)
	if err != nil {
		return nil, core.WithPath(err, glifPath)
	}
	if g.Lib != nil {
		if d.Lib, err = decodeLib(g.Lib.Inner, glifPath); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func convert(g *xmlGlyph) (*Data, error) {
	switch g.Format {
	case "1", "2":
	case "":
		return nil, core.Error(core.EPARSE, "glyph element lacks format attribute")
	default:
		return nil, core.Error(core.EPARSE, "unsupported GLIF format %q", g.Format)
	}
	d := &Data{
		Name:        g.Name,
		Format:      g.Format,
		FormatMinor: g.FormatMinor,
	}
	if g.Advance != nil {
		a := attrsOf("advance", g.Advance.Attrs)
		d.Advance = &Advance{
			Width:  a.float("width", 0),
			Height: a.float("height", 0),
		}
		if a.err != nil {
			return nil, a.err
		}
	}
	for _, u := range g.Unicodes {
		a := attrsOf("unicode", u.Attrs)
		hex := a.required("hex")
		if a.err != nil {
			return nil, a.err
		}
		r, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, core.WrapError(err, core.EPARSE, "invalid unicode value %q", hex)
		}
		if r > utf8.MaxRune {
			return nil, core.Error(core.EPARSE, "unicode value %q is beyond U+10FFFF", hex)
		}
		d.Unicodes = append(d.Unicodes, rune(r))
	}
	if g.Note != nil {
		d.Note = strings.TrimSpace(g.Note.Text)
	}
	if g.Image != nil {
		a := attrsOf("image", g.Image.Attrs)
		d.Image = &Image{
			FileName:  a.required("fileName"),
			Transform: a.transform(),
			Color:     a.str("color"),
		}
		if a.err != nil {
			return nil, a.err
		}
	}
	for _, gl := range g.Guidelines {
		a := attrsOf("guideline", gl.Attrs)
		d.Guidelines = append(d.Guidelines, Guideline{
			X:          a.optFloat("x"),
			Y:          a.optFloat("y"),
			Angle:      a.optFloat("angle"),
			Name:       a.str("name"),
			Color:      a.str("color"),
			Identifier: a.str("identifier"),
		})
		if a.err != nil {
			return nil, a.err
		}
	}
	for _, an := range g.Anchors {
		a := attrsOf("anchor", an.Attrs)
		d.Anchors = append(d.Anchors, Anchor{
			X:          a.requiredFloat("x"),
			Y:          a.requiredFloat("y"),
			Name:       a.str("name"),
			Color:      a.str("color"),
			Identifier: a.str("identifier"),
		})
		if a.err != nil {
			return nil, a.err
		}
	}
	if g.Outline != nil {
		o, err := convertOutline(g.Outline)
		if err != nil {
			return nil, err
		}
		d.Outline = o
	}
	return d, nil
}

func convertOutline(xo *xmlOutline) (*Outline, error) {
	o := &Outline{}
	for _, xc := range xo.Contours {
		c := Contour{Identifier: attrsOf("contour", xc.Attrs).str("identifier")}
		for _, xp := range xc.Points {
			a := attrsOf("point", xp.Attrs)
			p := Point{
				X:          a.requiredFloat("x"),
				Y:          a.requiredFloat("y"),
				Type:       OffCurve,
				Smooth:     a.str("smooth") == "yes",
				Name:       a.str("name"),
				Identifier: a.str("identifier"),
			}
			if t := a.str("type"); t != "" {
				p.Type = PointType(t)
			}
			if a.err != nil {
				return nil, a.err
			}
			switch p.Type {
			case Move, Line, OffCurve, Curve, QCurve:
			default:
				return nil, core.Error(core.EPARSE, "unknown point type %q", p.Type)
			}
			c.Points = append(c.Points, p)
		}
		o.Contours = append(o.Contours, c)
	}
	for _, xc := range xo.Components {
		a := attrsOf("component", xc.Attrs)
		o.Components = append(o.Components, Component{
			Base:       a.required("base"),
			Transform:  a.transform(),
			Identifier: a.str("identifier"),
		})
		if a.err != nil {
			return nil, a.err
		}
	}
	return o, nil
}

func decodeLib(inner []byte, glifPath string) (interface{}, error) {
	if len(bytes.TrimSpace(inner)) == 0 {
		return nil, nil
	}
	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8"?><plist version="1.0">`)
	doc.Write(inner)
	doc.WriteString(`</plist>`)
	value, err := plist.Decode(doc.Bytes(), glifPath)
	if err != nil {
		return nil, err
	}
	if _, ok := plist.Dict(value); !ok {
		return nil, core.WithPath(core.Error(core.EPLIST, "glyph lib is not a dictionary"), glifPath)
	}
	if !finite(value) {
		return nil, core.WithPath(core.Error(core.EPLIST, "glyph lib contains a non-finite real"), glifPath)
	}
	return value, nil
}

// finite reports whether all reals within a decoded plist value are finite.
func finite(v interface{}) bool {
	switch x := v.(type) {
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case float32:
		return finite(float64(x))
	case map[string]interface{}:
		for _, e := range x {
			if !finite(e) {
				return false
			}
		}
	case []interface{}:
		for _, e := range x {
			if !finite(e) {
				return false
			}
		}
	}
	return true
}

// --- Attribute helpers -----------------------------------------------------

// attrs gives typed access to the attributes of an element. The first
// conversion failure is remembered in err, later ones are ignored.
type attrs struct {
	elem string
	m    map[string]string
	err  error
}

func attrsOf(elem string, xattrs []xml.Attr) *attrs {
	a := &attrs{elem: elem, m: make(map[string]string, len(xattrs))}
	for _, xa := range xattrs {
		a.m[xa.Name.Local] = xa.Value
	}
	return a
}

func (a *attrs) fail(err error) {
	if a.err == nil {
		a.err = err
	}
}

func (a *attrs) str(name string) string {
	return a.m[name]
}

func (a *attrs) required(name string) string {
	v, ok := a.m[name]
	if !ok {
		a.fail(core.Error(core.EPARSE, "%s element lacks %s attribute", a.elem, name))
	}
	return v
}

func (a *attrs) float(name string, dflt float64) float64 {
	v, ok := a.m[name]
	if !ok {
		return dflt
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		a.fail(core.WrapError(errors.Unwrap(err), core.EPARSE, "%s attribute %s is not a number: %q",
			a.elem, name, v))
		return dflt
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		a.fail(core.Error(core.EPARSE, "%s attribute %s is not a finite number: %q", a.elem, name, v))
		return dflt
	}
	return f
}

func (a *attrs) requiredFloat(name string) float64 {
	if _, ok := a.m[name]; !ok {
		a.fail(core.Error(core.EPARSE, "%s element lacks %s attribute", a.elem, name))
		return 0
	}
	return a.float(name, 0)
}

func (a *attrs) optFloat(name string) *float64 {
	if _, ok := a.m[name]; !ok {
		return nil
	}
	f := a.float(name, 0)
	return &f
}

func (a *attrs) transform() Transform {
	return Transform{
		XScale:  a.float("xScale", 1),
		XYScale: a.float("xyScale", 0),
		YXScale: a.float("yxScale", 0),
		YScale:  a.float("yScale", 1),
		XOffset: a.float("xOffset", 0),
		YOffset: a.float("yOffset", 0),
	}
}
