package glif

// Data is the content of a GLIF file.
//
// Optional elements which are absent from the file are represented by nil
// pointers, nil slices or empty strings.
type Data struct {
	Name        string      `json:"name"`
	Format      string      `json:"format"`
	FormatMinor string      `json:"formatMinor,omitempty"`
	Advance     *Advance    `json:"advance,omitempty"`
	Unicodes    []rune      `json:"unicodes,omitempty"`
	Note        string      `json:"note,omitempty"`
	Image       *Image      `json:"image,omitempty"`
	Guidelines  []Guideline `json:"guidelines,omitempty"`
	Anchors     []Anchor    `json:"anchors,omitempty"`
	Outline     *Outline    `json:"outline,omitempty"`
	Lib         interface{} `json:"lib,omitempty"` // decoded plist value, usually a dictionary
}

// Advance holds a glyph's advance width and height.
type Advance struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Transform is an affine transformation as used by components and images.
type Transform struct {
	XScale  float64 `json:"xScale"`
	XYScale float64 `json:"xyScale"`
	YXScale float64 `json:"yxScale"`
	YScale  float64 `json:"yScale"`
	XOffset float64 `json:"xOffset"`
	YOffset float64 `json:"yOffset"`
}

// Identity is the identity transformation.
var Identity = Transform{XScale: 1, YScale: 1}

// Apply transforms point (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.XScale*x + t.YXScale*y + t.XOffset, t.XYScale*x + t.YScale*y + t.YOffset
}

// Image references an image file, drawn behind the glyph.
type Image struct {
	FileName  string    `json:"fileName"`
	Transform Transform `json:"transform"`
	Color     string    `json:"color,omitempty"`
}

// Guideline is a guideline local to a glyph. Missing coordinates are nil.
type Guideline struct {
	X          *float64 `json:"x,omitempty"`
	Y          *float64 `json:"y,omitempty"`
	Angle      *float64 `json:"angle,omitempty"`
	Name       string   `json:"name,omitempty"`
	Color      string   `json:"color,omitempty"`
	Identifier string   `json:"identifier,omitempty"`
}

// Anchor is a named attachment point.
type Anchor struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Name       string  `json:"name,omitempty"`
	Color      string  `json:"color,omitempty"`
	Identifier string  `json:"identifier,omitempty"`
}

// Outline holds a glyph's contours and components.
type Outline struct {
	Contours   []Contour   `json:"contours,omitempty"`
	Components []Component `json:"components,omitempty"`
}

// Contour is a sequence of points. A contour starting with a point of type
// Move is open, all others are closed.
type Contour struct {
	Identifier string  `json:"identifier,omitempty"`
	Points     []Point `json:"points"`
}

// PointType is the segment type of an outline point.
type PointType string

// Point types of GLIF outlines.
const (
	Move     PointType = "move"
	Line     PointType = "line"
	OffCurve PointType = "offcurve"
	Curve    PointType = "curve"
	QCurve   PointType = "qcurve"
)

// OnCurve is true for all point types except OffCurve.
func (pt PointType) OnCurve() bool {
	return pt != OffCurve
}

// Point is a point of a contour.
type Point struct {
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Type       PointType `json:"type"`
	Smooth     bool      `json:"smooth,omitempty"`
	Name       string    `json:"name,omitempty"`
	Identifier string    `json:"identifier,omitempty"`
}

// Component references another glyph by name.
type Component struct {
	Base       string    `json:"base"`
	Transform  Transform `json:"transform"`
	Identifier string    `json:"identifier,omitempty"`
}

// --- Cloning ---------------------------------------------------------------

// Clone returns a deep copy of d.
func (d *Data) Clone() *Data {
	if d == nil {
		return nil
	}
	c := *d
	if d.Advance != nil {
		a := *d.Advance
		c.Advance = &a
	}
	c.Unicodes = cloneSlice(d.Unicodes)
	if d.Image != nil {
		img := *d.Image
		c.Image = &img
	}
	if d.Guidelines != nil {
		c.Guidelines = make([]Guideline, len(d.Guidelines))
		for i, g := range d.Guidelines {
			c.Guidelines[i] = g.clone()
		}
	}
	c.Anchors = cloneSlice(d.Anchors)
	c.Outline = d.Outline.Clone()
	c.Lib = CloneValue(d.Lib)
	return &c
}

func (g Guideline) clone() Guideline {
	g.X = cloneFloat(g.X)
	g.Y = cloneFloat(g.Y)
	g.Angle = cloneFloat(g.Angle)
	return g
}

// Clone returns a deep copy of o.
func (o *Outline) Clone() *Outline {
	if o == nil {
		return nil
	}
	c := &Outline{Components: cloneSlice(o.Components)}
	if o.Contours != nil {
		c.Contours = make([]Contour, len(o.Contours))
		for i, contour := range o.Contours {
			c.Contours[i] = Contour{
				Identifier: contour.Identifier,
				Points:     cloneSlice(contour.Points),
			}
		}
	}
	return c
}

// CloneValue deep-copies a decoded plist value.
func CloneValue(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(x))
		for k, e := range x {
			m[k] = CloneValue(e)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(x))
		for i, e := range x {
			s[i] = CloneValue(e)
		}
		return s
	case []byte:
		return cloneSlice(x)
	}
	return v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	c := make([]T, len(s))
	copy(c, s)
	return c
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
