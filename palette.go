package zoomer

// Palette maps iteration counts to packed colors.
type Palette []uint32

const (
	paletteEntries = 65536
	segmentSize    = 8
)

// defaultSegments are the anchor colors of the default palette.
var defaultSegments = [...][3]uint8{
	{0, 0, 0},
	{120, 119, 238},
	{24, 7, 25},
	{197, 66, 28},
	{29, 18, 11},
	{135, 46, 71},
	{24, 27, 13},
	{241, 230, 128},
	{17, 31, 24},
	{240, 162, 139},
	{11, 4, 30},
	{106, 87, 189},
	{29, 21, 14},
	{12, 140, 118},
	{10, 6, 29},
	{50, 144, 77},
	{22, 0, 24},
	{148, 188, 243},
	{4, 32, 7},
	{231, 146, 14},
	{10, 13, 20},
	{184, 147, 68},
	{13, 28, 3},
	{169, 248, 152},
	{4, 0, 34},
	{62, 83, 48},
	{7, 21, 22},
	{152, 97, 184},
	{8, 3, 12},
	{247, 92, 235},
	{31, 32, 16},
}

// DefaultPalette returns the classic 65536-entry palette: linear ramps of
// segmentSize entries between cycling anchor colors.
func DefaultPalette() Palette {
	setSegments := (paletteEntries + 3) / segmentSize
	nSegments := 255 / segmentSize
	p := make(Palette, 0, setSegments*segmentSize)
	for i := 0; i < setSegments; i++ {
		from := defaultSegments[i%nSegments]
		to := defaultSegments[(i+1)%setSegments%nSegments]
		r, g, b := float64(from[0]), float64(from[1]), float64(from[2])
		rs := (float64(to[0]) - r) / segmentSize
		gs := (float64(to[1]) - g) / segmentSize
		bs := (float64(to[2]) - b) / segmentSize
		for y := 0; y < segmentSize; y++ {
			p = append(p, PackRGBA(uint8(r), uint8(g), uint8(b), 255))
			r += rs
			g += gs
			b += bs
		}
	}
	return p
}

// GreyPalette returns an n-entry ramp from black to white.
func GreyPalette(n int) Palette {
	if n < 2 {
		n = 2
	}
	p := make(Palette, n)
	for i := range p {
		v := uint8(255 * i / (n - 1))
		p[i] = PackRGBA(v, v, v, 255)
	}
	return p
}
