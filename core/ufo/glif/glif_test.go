package glif

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/ufogleaner/core"
	"github.com/npillmayer/ufogleaner/core/ufo/internal/ufotest"
	"github.com/npillmayer/ufogleaner/core/ufo/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const fullGlif = `<?xml version="1.0" encoding="UTF-8"?>
<glyph name="A" format="2" formatMinor="0">
  <advance width="600" height="1000"/>
  <unicode hex="0041"/>
  <unicode hex="00C0"/>
  <note>
    Capital A
  </note>
  <image fileName="A.png" xOffset="10" color="1,0,0,1"/>
  <guideline y="700" name="cap"/>
  <guideline x="100" y="0" angle="45"/>
  <anchor x="300" y="700" name="top"/>
  <outline>
    <contour identifier="c1">
      <point x="0" y="0" type="line"/>
      <point x="300" y="700" type="line" smooth="yes" name="apex"/>
      <point x="600" y="0" type="line"/>
    </contour>
    <component base="acutecomb" xOffset="250" yOffset="120"/>
  </outline>
  <lib>
    <dict>
      <key>public.markColor</key>
      <string>1,0,0,1</string>
      <key>com.example.count</key>
      <integer>3</integer>
    </dict>
  </lib>
</glyph>
`

func fp(f float64) *float64 {
	return &f
}

func TestDecodeFullGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.ufo")
	defer teardown()
	//
	d, err := Decode([]byte(fullGlif), "glyphs/A_.glif")
	require.NoError(t, err)
	want := &Data{
		Name:        "A",
		Format:      "2",
		FormatMinor: "0",
		Advance:     &Advance{Width: 600, Height: 1000},
		Unicodes:    []rune{'A', 'À'},
		Note:        "Capital A",
		Image: &Image{
			FileName:  "A.png",
			Transform: Transform{XScale: 1, YScale: 1, XOffset: 10},
			Color:     "1,0,0,1",
		},
		Guidelines: []Guideline{
			{Y: fp(700), Name: "cap"},
			{X: fp(100), Y: fp(0), Angle: fp(45)},
		},
		Anchors: []Anchor{{X: 300, Y: 700, Name: "top"}},
		Outline: &Outline{
			Contours: []Contour{{
				Identifier: "c1",
				Points: []Point{
					{X: 0, Y: 0, Type: Line},
					{X: 300, Y: 700, Type: Line, Smooth: true, Name: "apex"},
					{X: 600, Y: 0, Type: Line},
				},
			}},
			Components: []Component{{
				Base:      "acutecomb",
				Transform: Transform{XScale: 1, YScale: 1, XOffset: 250, YOffset: 120},
			}},
		},
		Lib: map[string]interface{}{
			"public.markColor":  "1,0,0,1",
			"com.example.count": uint64(3),
		},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("decoded GLIF mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMinimalGlyph(t *testing.T) {
	d, err := Decode([]byte(`<glyph name="space" format="1"><advance width="250"/></glyph>`), "space.glif")
	require.NoError(t, err)
	assert.Equal(t, "space", d.Name)
	assert.Equal(t, "", d.FormatMinor)
	assert.Nil(t, d.Outline)
	assert.Nil(t, d.Image)
	assert.Nil(t, d.Lib)
	assert.Empty(t, d.Unicodes)
	assert.Equal(t, 0.0, d.Advance.Height)
}

func TestDecodeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.ufo")
	defer teardown()
	//
	for _, tc := range []struct {
		doc  string
		code int
	}{
		{string(ufotest.Corrupt), core.EXML},
		{`<notaglyph format="2"/>`, core.EXML},
		{`<glyph name="a"/>`, core.EPARSE},
		{`<glyph name="a" format="7"/>`, core.EPARSE},
		{`<glyph name="a" format="2"><unicode hex="XYZ"/></glyph>`, core.EPARSE},
		{`<glyph name="a" format="2"><unicode/></glyph>`, core.EPARSE},
		{`<glyph name="a" format="2"><unicode hex="110000"/></glyph>`, core.EPARSE},
		{`<glyph name="a" format="2"><unicode hex="FFFFFFFF"/></glyph>`, core.EPARSE},
		{`<glyph name="a" format="2"><advance width="wide"/></glyph>`, core.EPARSE},
		{`<glyph name="a" format="2"><advance width="NaN"/></glyph>`, core.EPARSE},
		{`<glyph name="a" format="2"><outline><contour><point x="Inf" y="1"/></contour></outline></glyph>`, core.EPARSE},
		{`<glyph name="a" format="2"><guideline x="1" angle="-Inf"/></glyph>`, core.EPARSE},
		{`<glyph name="a" format="2"><anchor y="1"/></glyph>`, core.EPARSE},
		{`<glyph name="a" format="2"><outline><contour><point x="1" y="1" type="spline"/></contour></outline></glyph>`, core.EPARSE},
		{`<glyph name="a" format="2"><outline><component/></outline></glyph>`, core.EPARSE},
		{`<glyph name="a" format="2"><lib><array><string>x</string></array></lib></glyph>`, core.EPLIST},
		{`<glyph name="a" format="2"><lib><dict><key>k</key><array><real>nan</real></array></dict></lib></glyph>`, core.EPLIST},
	} {
		_, err := Decode([]byte(tc.doc), "glyphs/a.glif")
		require.Error(t, err, tc.doc)
		assert.Equal(t, tc.code, core.Code(err), "%s: %v", tc.doc, err)
		assert.Equal(t, "glyphs/a.glif", core.Path(err), tc.doc)
	}
}

func TestParserReadsFromLayer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.ufo")
	defer teardown()
	//
	p := provider.NewMemProvider("mem").
		WithFile("glyphs/a.glif", ufotest.Glif("a", 'a')).
		WithFile("glyphs.background/a.glif", ufotest.Glif("a", 'a', 'ä'))
	parser, err := NewParser(p, "")
	require.NoError(t, err)
	d, err := parser.Parse("a.glif")
	require.NoError(t, err)
	assert.Equal(t, []rune{'a'}, d.Unicodes)
	//
	parser, err = NewParser(p, "glyphs.background")
	require.NoError(t, err)
	d, err = parser.Parse("a.glif")
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'ä'}, d.Unicodes)
	//
	_, err = parser.Parse("b.glif")
	assert.True(t, core.IsIOError(err))
	_, err = NewParser(nil, "")
	assert.Error(t, err)
}

func TestCloneIsDeep(t *testing.T) {
	d, err := Decode([]byte(fullGlif), "A_.glif")
	require.NoError(t, err)
	c := d.Clone()
	require.True(t, cmp.Equal(d, c))
	c.Unicodes[0] = 'B'
	c.Outline.Contours[0].Points[0].X = 99
	*c.Guidelines[0].Y = 1
	c.Lib.(map[string]interface{})["public.markColor"] = "0,0,0,1"
	c.Advance.Width = 1
	assert.Equal(t, 'A', d.Unicodes[0])
	assert.Equal(t, 0.0, d.Outline.Contours[0].Points[0].X)
	assert.Equal(t, 700.0, *d.Guidelines[0].Y)
	assert.Equal(t, "1,0,0,1", d.Lib.(map[string]interface{})["public.markColor"])
	assert.Equal(t, 600.0, d.Advance.Width)
	assert.Nil(t, (*Data)(nil).Clone())
}

func TestTransformApply(t *testing.T) {
	x, y := Identity.Apply(3, 4)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
	x, y = Transform{XScale: 2, YScale: 1, XOffset: 10, YOffset: -1}.Apply(3, 4)
	assert.Equal(t, 16.0, x)
	assert.Equal(t, 3.0, y)
}

// --- Segments --------------------------------------------------------------

func pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(-y * 64))}
}

func TestSegmentsOfLineContour(t *testing.T) {
	d, err := Decode([]byte(fullGlif), "A_.glif")
	require.NoError(t, err)
	segs := d.Outline.Segments()
	want := []sfnt.Segment{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{pt(0, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(300, 700)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(600, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(0, 0)}},
	}
	assert.Equal(t, want, segs)
}

func TestSegmentsRoundFractionalCoordinates(t *testing.T) {
	o := &Outline{Contours: []Contour{{Points: []Point{
		{X: 0.01, Y: 0.01, Type: Move},
		{X: 10.99, Y: -0.02, Type: Line},
	}}}}
	segs := o.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, fixed.Point26_6{X: 1, Y: -1}, segs[0].Args[0])
	assert.Equal(t, fixed.Point26_6{X: 703, Y: 1}, segs[1].Args[0])
}

func TestDecodeAcceptsLargestCodePoint(t *testing.T) {
	d, err := Decode([]byte(`<glyph name="a" format="2"><unicode hex="10FFFF"/></glyph>`), "a.glif")
	require.NoError(t, err)
	assert.Equal(t, []rune{utf8.MaxRune}, d.Unicodes)
}

func TestSegmentsOfCurves(t *testing.T) {
	o := &Outline{Contours: []Contour{
		{Points: []Point{ // cubic, starting with off-curve points
			{X: 10, Y: 0, Type: OffCurve},
			{X: 20, Y: 0, Type: OffCurve},
			{X: 30, Y: 10, Type: Curve},
			{X: 0, Y: 10, Type: Line},
		}},
		{Points: []Point{ // open contour with a quadratic spline
			{X: 0, Y: 0, Type: Move},
			{X: 10, Y: 10, Type: OffCurve},
			{X: 30, Y: 10, Type: OffCurve},
			{X: 40, Y: 0, Type: QCurve},
		}},
	}}
	want := []sfnt.Segment{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{pt(30, 10)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(0, 10)}},
		{Op: sfnt.SegmentOpCubeTo, Args: [3]fixed.Point26_6{pt(10, 0), pt(20, 0), pt(30, 10)}},
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{pt(0, 0)}},
		{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{pt(10, 10), pt(20, 10)}},
		{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{pt(30, 10), pt(40, 0)}},
	}
	assert.Equal(t, want, o.Segments())
}

func TestSegmentsOfOffCurveOnlyContour(t *testing.T) {
	o := &Outline{Contours: []Contour{{Points: []Point{
		{X: 0, Y: 0, Type: OffCurve},
		{X: 20, Y: 0, Type: OffCurve},
		{X: 20, Y: 20, Type: OffCurve},
		{X: 0, Y: 20, Type: OffCurve},
	}}}}
	segs := o.Segments()
	require.Len(t, segs, 5)
	assert.Equal(t, sfnt.SegmentOpMoveTo, segs[0].Op)
	assert.Equal(t, pt(0, 10), segs[0].Args[0])
	for _, s := range segs[1:] {
		assert.Equal(t, sfnt.SegmentOpQuadTo, s.Op)
	}
	assert.Equal(t, pt(0, 10), segs[4].Args[1], "expected contour to close at implied start point")
	assert.Nil(t, (*Outline)(nil).Segments())
}
