package zoomer

// Raster is a double-buffered pixel store. Pix is the buffer being built for
// the current frame; the other buffer holds the previous frame. Colors are
// packed as 0xAABBGGRR, which is RGBA byte order in little-endian memory.
type Raster struct {
	Width, Height int
	Pix           []uint32
	old           []uint32
}

// NewRaster allocates both buffers for a w×h image.
func NewRaster(w, h int) *Raster {
	return &Raster{
		Width:  w,
		Height: h,
		Pix:    make([]uint32, w*h),
		old:    make([]uint32, w*h),
	}
}

// Swap makes the current buffer the previous one.
func (r *Raster) Swap() {
	r.Pix, r.old = r.old, r.Pix
}

// At returns the packed color at (x, y) of the current buffer.
func (r *Raster) At(x, y int) uint32 {
	return r.Pix[y*r.Width+x]
}

// Previous returns the previous frame's buffer.
func (r *Raster) Previous() []uint32 {
	return r.old
}

// Surface receives finished frames.
type Surface interface {
	Present(r *Raster)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(r *Raster)

// Present calls f(r).
func (f SurfaceFunc) Present(r *Raster) { f(r) }

// PackRGBA packs 8-bit channels into a raster color.
func PackRGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA splits a raster color into 8-bit channels.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// AppendBytes appends the current buffer as RGBA bytes to dst.
func (r *Raster) AppendBytes(dst []byte) []byte {
	for _, c := range r.Pix {
		dst = append(dst, uint8(c), uint8(c>>8), uint8(c>>16), uint8(c>>24))
	}
	return dst
}
