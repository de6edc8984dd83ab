package render

import (
	"image"
	"image/color"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Raster is an in-memory RGBA implementation of Surface and Compositor.
// Drawing is plain CPU compositing: alpha blend per pixel with ~1px
// coverage antialiasing on shape edges.
type Raster struct {
	img *image.RGBA
}

const dashLength = 8.0 // pixels per dash segment

// NewRaster allocates a surface of the given pixel dimensions.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Newf("surface dimensions must be positive, got %dx%d", width, height)
	}
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Image exposes the backing pixels for encoding and preview blitting.
func (r *Raster) Image() *image.RGBA { return r.img }

// Size returns the surface dimensions.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the surface with an opaque background color.
func (r *Raster) Clear(colorHex string) error {
	c, err := parseHex(colorHex)
	if err != nil {
		return err
	}
	rgba := color.RGBA{R: c.r, G: c.g, B: c.b, A: 255}
	b := r.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r.img.SetRGBA(x, y, rgba)
		}
	}
	return nil
}

// rgb8 is a parsed 8-bit color.
type rgb8 struct {
	r, g, b uint8
}

// parseHex parses "#rrggbb" (leading '#' optional) via go-colorful.
func parseHex(s string) (rgb8, error) {
	if s == "" {
		return rgb8{}, errors.New("empty color")
	}
	if s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return rgb8{}, errors.Wrapf(err, "bad color %q", s)
	}
	cr, cg, cb := c.RGB255()
	return rgb8{r: cr, g: cg, b: cb}, nil
}

// blendPixel alpha-blends src over the destination pixel:
// result = src*alpha + dst*(1-alpha).
func (r *Raster) blendPixel(x, y int, c rgb8, alpha float64) {
	if alpha <= 0 {
		return
	}
	if !(image.Point{X: x, Y: y}.In(r.img.Bounds())) {
		return
	}
	if alpha >= 1 {
		r.img.SetRGBA(x, y, color.RGBA{R: c.r, G: c.g, B: c.b, A: 255})
		return
	}
	dst := r.img.RGBAAt(x, y)
	inv := 1 - alpha
	r.img.SetRGBA(x, y, color.RGBA{
		R: uint8(float64(c.r)*alpha + float64(dst.R)*inv),
		G: uint8(float64(c.g)*alpha + float64(dst.G)*inv),
		B: uint8(float64(c.b)*alpha + float64(dst.B)*inv),
		A: 255,
	})
}

func checkFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("non-finite draw coordinate")
		}
	}
	return nil
}

// FillPolygon draws a filled regular polygon with coverage-antialiased
// edges, approximated by signed distance to the nearest edge.
func (r *Raster) FillPolygon(center Point, radius float64, sides int, rotation float64, colorHex string, alpha float64) error {
	if err := checkFinite(center.X, center.Y, radius, rotation, alpha); err != nil {
		return err
	}
	if sides < 3 {
		return errors.Newf("polygon needs at least 3 sides, got %d", sides)
	}
	if radius <= 0 {
		return errors.Newf("polygon radius must be positive, got %v", radius)
	}
	c, err := parseHex(colorHex)
	if err != nil {
		return err
	}
	if alpha <= 0 {
		return nil
	}

	// Apothem of the regular polygon; pixels are tested against each edge's
	// half-plane, which is exact for convex shapes.
	apothem := radius * math.Cos(math.Pi/float64(sides))
	minX := int(math.Floor(center.X - radius - 1))
	maxX := int(math.Ceil(center.X + radius + 1))
	minY := int(math.Floor(center.Y - radius - 1))
	maxY := int(math.Ceil(center.Y + radius + 1))

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			dx := float64(px) + 0.5 - center.X
			dy := float64(py) + 0.5 - center.Y
			// Signed distance inside the polygon: apothem minus the maximal
			// projection onto the edge normals.
			proj := -math.MaxFloat64
			for i := 0; i < sides; i++ {
				a := rotation + (2*math.Pi*(float64(i)+0.5))/float64(sides)
				p := dx*math.Cos(a) + dy*math.Sin(a)
				if p > proj {
					proj = p
				}
			}
			coverage := clampUnit(apothem - proj + 0.5)
			if coverage > 0 {
				r.blendPixel(px, py, c, alpha*coverage)
			}
		}
	}
	return nil
}

// DrawRing draws a circular stroke of the given thickness.
func (r *Raster) DrawRing(center Point, radius, thickness float64, colorHex string, rotation, alpha float64) error {
	if err := checkFinite(center.X, center.Y, radius, thickness, rotation, alpha); err != nil {
		return err
	}
	if radius <= 0 || thickness <= 0 {
		return errors.Newf("ring radius and thickness must be positive, got %v/%v", radius, thickness)
	}
	c, err := parseHex(colorHex)
	if err != nil {
		return err
	}
	if alpha <= 0 {
		return nil
	}

	outer := radius + thickness/2
	minX := int(math.Floor(center.X - outer - 1))
	maxX := int(math.Ceil(center.X + outer + 1))
	minY := int(math.Floor(center.Y - outer - 1))
	maxY := int(math.Ceil(center.Y + outer + 1))

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			dx := float64(px) + 0.5 - center.X
			dy := float64(py) + 0.5 - center.Y
			dist := math.Hypot(dx, dy)
			coverage := clampUnit(thickness/2 - math.Abs(dist-radius) + 0.5)
			if coverage > 0 {
				r.blendPixel(px, py, c, alpha*coverage)
			}
		}
	}
	return nil
}

// DrawLine draws a thick dashed line. Dashes alternate between the primary
// and secondary color; an empty secondary leaves gaps. dashPhase slides the
// pattern along the line, so an animated phase makes dashes travel.
func (r *Raster) DrawLine(a, b Point, thickness float64, colorHex string, dashPhase float64, secondaryHex string, intensity float64) error {
	if err := checkFinite(a.X, a.Y, b.X, b.Y, thickness, dashPhase, intensity); err != nil {
		return err
	}
	if thickness <= 0 {
		return errors.Newf("line thickness must be positive, got %v", thickness)
	}
	primary, err := parseHex(colorHex)
	if err != nil {
		return err
	}
	var secondary rgb8
	hasSecondary := secondaryHex != ""
	if hasSecondary {
		if secondary, err = parseHex(secondaryHex); err != nil {
			return err
		}
	}
	if intensity <= 0 {
		return nil
	}
	alpha := clampUnit(intensity)

	abx, aby := b.X-a.X, b.Y-a.Y
	length := math.Hypot(abx, aby)
	if length == 0 {
		return nil
	}

	half := thickness / 2
	minX := int(math.Floor(math.Min(a.X, b.X) - half - 1))
	maxX := int(math.Ceil(math.Max(a.X, b.X) + half + 1))
	minY := int(math.Floor(math.Min(a.Y, b.Y) - half - 1))
	maxY := int(math.Ceil(math.Max(a.Y, b.Y) + half + 1))

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			dx := float64(px) + 0.5 - a.X
			dy := float64(py) + 0.5 - a.Y
			t := (dx*abx + dy*aby) / (length * length)
			tc := clampUnit(t)
			cx := a.X + tc*abx
			cy := a.Y + tc*aby
			dist := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
			coverage := clampUnit(half - dist + 0.5)
			if coverage <= 0 {
				continue
			}

			// Dash index along the line, shifted by the animated phase.
			along := tc*length + dashPhase*dashLength*2
			even := int(math.Floor(along/dashLength))%2 == 0
			switch {
			case even:
				r.blendPixel(px, py, primary, alpha*coverage)
			case hasSecondary:
				r.blendPixel(px, py, secondary, alpha*coverage*0.6)
			}
		}
	}
	return nil
}

// Allocate implements Compositor.
func (r *Raster) Allocate(width, height int) (Surface, error) {
	return NewRaster(width, height)
}

// CompositeOver implements Compositor: src over dst at the given opacity.
// Both surfaces must be Rasters of equal size.
func (r *Raster) CompositeOver(dst, src Surface, opacity float64) error {
	d, ok := dst.(*Raster)
	if !ok {
		return errors.New("destination is not a raster surface")
	}
	s, ok := src.(*Raster)
	if !ok {
		return errors.New("source is not a raster surface")
	}
	dw, dh := d.Size()
	sw, sh := s.Size()
	if dw != sw || dh != sh {
		return errors.Newf("composite size mismatch: %dx%d over %dx%d", sw, sh, dw, dh)
	}
	opacity = clampUnit(opacity)
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			p := s.img.RGBAAt(x, y)
			srcAlpha := opacity * float64(p.A) / 255
			d.blendPixel(x, y, rgb8{r: p.R, g: p.G, b: p.B}, srcAlpha)
		}
	}
	return nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
