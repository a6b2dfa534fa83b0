package glif

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Segments converts the contours of an outline to sfnt segments.
// Coordinates are font units, with the y axis pointing down, as is the case
// for segments returned by sfnt.Font.LoadGlyph. Components are not resolved.
//
// Closed contours end with a segment leading back to their start point.
// Curves with more than two off-curve points are approximated
// by a cubic curve using the first and last off-curve point.
func (o *Outline) Segments() []sfnt.Segment {
	if o == nil {
		return nil
	}
	var segs []sfnt.Segment
	for _, c := range o.Contours {
		segs = append(segs, contourSegments(c.Points)...)
	}
	return segs
}

func contourSegments(pts []Point) []sfnt.Segment {
	n := len(pts)
	if n == 0 {
		return nil
	}
	open := pts[0].Type == Move
	start := -1
	for i, p := range pts {
		if p.Type.OnCurve() {
			start = i
			break
		}
	}
	if start < 0 { // quadratic contour without on-curve points
		tracer().Debugf("contour without on-curve points, inserting implied start point")
		s := mid(pts[n-1], pts[0])
		segs := []sfnt.Segment{moveTo(s)}
		s.Type = QCurve
		return append(segs, curveTo(s, pts)...)
	}
	segs := []sfnt.Segment{moveTo(pts[start])}
	last := n
	if open {
		last = n - 1 // open contours do not wrap around
	}
	var offs []Point
	for k := 1; k <= last; k++ {
		p := pts[(start+k)%n]
		if !p.Type.OnCurve() {
			offs = append(offs, p)
			continue
		}
		segs = append(segs, curveTo(p, offs)...)
		offs = offs[:0]
	}
	return segs
}

// curveTo creates the segments leading to on-curve point p, with control
// points offs.
func curveTo(p Point, offs []Point) []sfnt.Segment {
	if len(offs) == 0 {
		return []sfnt.Segment{lineTo(p)}
	}
	switch p.Type {
	case QCurve:
		segs := make([]sfnt.Segment, 0, len(offs))
		for i := 0; i < len(offs)-1; i++ {
			segs = append(segs, quadTo(offs[i], mid(offs[i], offs[i+1])))
		}
		return append(segs, quadTo(offs[len(offs)-1], p))
	default:
		switch len(offs) {
		case 1:
			return []sfnt.Segment{quadTo(offs[0], p)}
		default:
			return []sfnt.Segment{cubeTo(offs[0], offs[len(offs)-1], p)}
		}
	}
}

func mid(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2, Type: OffCurve}
}

func fix(p Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(-p.Y * 64)),
	}
}

func moveTo(p Point) sfnt.Segment {
	return sfnt.Segment{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fix(p)}}
}

func lineTo(p Point) sfnt.Segment {
	return sfnt.Segment{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fix(p)}}
}

func quadTo(c, p Point) sfnt.Segment {
	return sfnt.Segment{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{fix(c), fix(p)}}
}

func cubeTo(c1, c2, p Point) sfnt.Segment {
	return sfnt.Segment{Op: sfnt.SegmentOpCubeTo, Args: [3]fixed.Point26_6{fix(c1), fix(c2), fix(p)}}
}
