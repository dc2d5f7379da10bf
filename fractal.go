package zoomer

// Formula maps a plane coordinate to an escape iteration count. seedRe and
// seedIm carry the fractal seed (z0 for Mandelbrot-type sets, c for Julia
// sets). A result of maxIter or more means the point did not escape.
type Formula func(seedRe, seedIm, re, im float64, maxIter int, bailout float64) int

// ColorFunc maps a plane coordinate straight to a packed color.
type ColorFunc func(re, im float64) uint32

// Symmetry declares mirror axes of a fractal. HasX declares a mirror at
// real coordinate X (columns reflect), HasY one at imaginary coordinate Y
// (rows reflect).
type Symmetry struct {
	X, Y       float64
	HasX, HasY bool
}

// FractalParameters bundles what the engine needs to colour a pixel.
type FractalParameters struct {
	Name     string
	Formula  Formula
	Color    ColorFunc
	Palette  Palette
	Seed     Vec2
	MaxIter  int
	Bailout  float64
	Symmetry Symmetry
	// Region is the initial view used by Reset.
	Region Region
}

// Clone returns a shallow copy sharing the palette.
func (p *FractalParameters) Clone() *FractalParameters {
	c := *p
	return &c
}

// Pixel returns the packed color for a plane coordinate. A ColorFunc wins
// over Formula. Escaped points index the palette by iteration count, points
// inside the set use the first entry.
func (p *FractalParameters) Pixel(re, im float64) uint32 {
	if p.Color != nil {
		return p.Color(re, im)
	}
	n := p.Formula(p.Seed.X, p.Seed.Y, re, im, p.MaxIter, p.Bailout)
	if len(p.Palette) == 0 {
		return grey(n, p.MaxIter)
	}
	if n >= p.MaxIter || n < 0 {
		return p.Palette[0]
	}
	return p.Palette[(n+1)%len(p.Palette)]
}

func grey(n, maxIter int) uint32 {
	if n >= maxIter || n < 0 || maxIter <= 0 {
		return PackRGBA(0, 0, 0, 255)
	}
	v := uint8(255 * n / maxIter)
	return PackRGBA(v, v, v, 255)
}

func (p *FractalParameters) validate() error {
	if p.Formula == nil && p.Color == nil {
		return ErrNoFormula
	}
	return nil
}
