package zoomer

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// MandelbrotFormula iterates z = z² + c from z = seed with c the pixel.
func MandelbrotFormula(seedRe, seedIm, re, im float64, maxIter int, bailout float64) int {
	zr, zi := seedRe, seedIm
	for k := 0; k < maxIter; k++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > bailout {
			return k
		}
		zi = im + 2*zr*zi
		zr = re + zr2 - zi2
	}
	return maxIter
}

// CubicFormula iterates z = z³ + c.
func CubicFormula(seedRe, seedIm, re, im float64, maxIter int, bailout float64) int {
	zr, zi := seedRe, seedIm
	for k := 0; k < maxIter; k++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > bailout {
			return k
		}
		zr, zi = re+zr*(zr2-3*zi2), im+zi*(3*zr2-zi2)
	}
	return maxIter
}

// TricornFormula iterates z = conj(z)² + c.
func TricornFormula(seedRe, seedIm, re, im float64, maxIter int, bailout float64) int {
	zr, zi := seedRe, seedIm
	for k := 0; k < maxIter; k++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > bailout {
			return k
		}
		zi = im - 2*zr*zi
		zr = re + zr2 - zi2
	}
	return maxIter
}

// BurningShipFormula iterates z = (|Re z| + i|Im z|)² + c.
func BurningShipFormula(seedRe, seedIm, re, im float64, maxIter int, bailout float64) int {
	zr, zi := seedRe, seedIm
	for k := 0; k < maxIter; k++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > bailout {
			return k
		}
		zi = im + 2*math.Abs(zr*zi)
		zr = re + zr2 - zi2
	}
	return maxIter
}

// JuliaFormula iterates z = z² + seed from z = pixel.
func JuliaFormula(seedRe, seedIm, re, im float64, maxIter int, bailout float64) int {
	return MandelbrotFormula(re, im, seedRe, seedIm, maxIter, bailout)
}

var presets = map[string]func() *FractalParameters{
	"mandelbrot": Mandelbrot,
	"cubic":      Cubic,
	"tricorn":    Tricorn,
	"burningship": func() *FractalParameters {
		return &FractalParameters{
			Name:    "burningship",
			Formula: BurningShipFormula,
			Palette: DefaultPalette(),
			MaxIter: 512,
			Bailout: 4,
			Region:  Region{Center: Vec2{-0.4, -0.5}, Radius: Vec2{3.2, 3.2}},
		}
	},
	"julia": func() *FractalParameters { return Julia(-0.8, 0.156) },
}

// Mandelbrot returns the classic Mandelbrot set, mirrored on the real axis.
func Mandelbrot() *FractalParameters {
	return &FractalParameters{
		Name:     "mandelbrot",
		Formula:  MandelbrotFormula,
		Palette:  DefaultPalette(),
		MaxIter:  512,
		Bailout:  4,
		Symmetry: Symmetry{Y: 0, HasY: true},
		Region:   Region{Center: Vec2{-0.75, 0}, Radius: Vec2{2.5, 2.5}},
	}
}

// Cubic returns the z³ + c set, mirrored on both axes.
func Cubic() *FractalParameters {
	return &FractalParameters{
		Name:     "cubic",
		Formula:  CubicFormula,
		Palette:  DefaultPalette(),
		MaxIter:  512,
		Bailout:  4,
		Symmetry: Symmetry{X: 0, Y: 0, HasX: true, HasY: true},
		Region:   Region{Center: Vec2{0, 0}, Radius: Vec2{3, 3}},
	}
}

// Tricorn returns the Mandelbar set, mirrored on the real axis.
func Tricorn() *FractalParameters {
	return &FractalParameters{
		Name:     "tricorn",
		Formula:  TricornFormula,
		Palette:  DefaultPalette(),
		MaxIter:  512,
		Bailout:  4,
		Symmetry: Symmetry{Y: 0, HasY: true},
		Region:   Region{Center: Vec2{-0.25, 0}, Radius: Vec2{4, 4}},
	}
}

// Julia returns the filled Julia set for z² + c with c = (re, im).
func Julia(re, im float64) *FractalParameters {
	return &FractalParameters{
		Name:    "julia",
		Formula: JuliaFormula,
		Palette: DefaultPalette(),
		Seed:    Vec2{re, im},
		MaxIter: 512,
		Bailout: 4,
		Region:  Region{Center: Vec2{0, 0}, Radius: Vec2{3.2, 3.2}},
	}
}

// Preset returns a fresh copy of a named fractal.
func Preset(name string) (*FractalParameters, error) {
	f, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (choose from %s)", name, strings.Join(Presets(), ", "))
	}
	return f(), nil
}

// Presets lists the preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
