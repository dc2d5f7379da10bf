package zoomer

import "math"

// Quantized position bounds. Positions outside the clamp range can never
// fall inside a reuse window, so clamping does not change any decision.
const (
	fpInfinity = math.MaxInt32
	fpClamp    = 1 << 30
)

// redistribution selects how positions are spread over runs of lines that
// have to be recomputed.
type redistribution uint8

const (
	redistributeUniform   redistribution = iota // priority 1 everywhere
	redistributeAnchored                        // new range inside old: 1/(1+dist)
	redistributeOpenEdges                       // old range inside new: dist
)

// priceNode is one dynamic-programming cell. source is the reused
// previous-frame line for the node's destination, or -1 when the
// destination is recomputed. prev indexes the node chosen for the
// destination before it.
type priceNode struct {
	price  int
	source int32
	prev   int32
}

// priceRow locates the nodes of one destination inside the pool. The row
// holds best prices for sources first .. first+count-1, where first sits one
// below the destination's reuse window.
type priceRow struct {
	first int
	base  int
	count int
}

// priceEngine matches previous line positions to a new uniform grid. All
// scratch storage is sized once by resize.
type priceEngine struct {
	src   []int
	rows  []priceRow
	nodes []priceNode
	used  int
}

func newPriceEngine(size int) *priceEngine {
	p := &priceEngine{}
	p.resize(size)
	return p
}

func (p *priceEngine) resize(size int) {
	p.src = make([]int, size+1)
	p.rows = make([]priceRow, size)
	p.nodes = make([]priceNode, size*priceSlots+1)
	p.used = 0
}

// quantize converts old positions to grid cells relative to [begin, end),
// forcing a non-decreasing sequence terminated by fpInfinity.
func (p *priceEngine) quantize(lines []Line, begin, end float64) {
	n := len(lines)
	tofix := float64(n*fpMul) / (end - begin)
	p.src[n] = fpInfinity
	for i := n - 1; i >= 0; i-- {
		v := (lines[i].OldPosition - begin) * tofix
		var q int
		switch {
		case math.IsNaN(v):
			q = fpInfinity
		case v > fpClamp:
			q = fpClamp
		case v < -fpClamp:
			q = -fpClamp
		default:
			q = int(math.Round(v))
		}
		if q > p.src[i+1] {
			q = p.src[i+1]
		}
		p.src[i] = q
	}
}

// best returns the cheapest price for destinations 0..d using sources up to
// s, along with the node holding it. Destination -1 is the empty prefix.
func (p *priceEngine) best(d, s int) (int, int32) {
	if d < 0 {
		return 0, -1
	}
	row := p.rows[d]
	i := s - row.first
	if i >= row.count {
		i = row.count - 1
	}
	idx := row.base + i
	return p.nodes[idx].price, int32(idx)
}

func (p *priceEngine) push(n priceNode) {
	p.nodes[p.used] = n
	p.used++
}

// approximate decides, for every destination line, whether previous-frame
// pixels are reused and from which source. Reused lines take their source's
// old position and stay clean; the others are flagged for recomputation.
// The returned flag tells redistribute how to weight the recomputed runs.
func (p *priceEngine) approximate(lines []Line, begin, end float64) redistribution {
	n := len(lines)
	p.quantize(lines, begin, end)
	p.used = 0

	lo, hi := 0, 0
	for d := 0; d < n; d++ {
		ideal := d * fpMul
		for lo < n && p.src[lo] < ideal-fpRange {
			lo++
		}
		if hi < lo {
			hi = lo
		}
		for hi < n && p.src[hi] < ideal+fpRange {
			hi++
		}

		first := lo - 1
		p.rows[d] = priceRow{first: first, base: p.used, count: hi - first}

		price, prev := p.best(d-1, first)
		p.push(priceNode{price: price + newPrice, source: -1, prev: prev})

		for s := lo; s < hi; s++ {
			price, prev := p.best(d-1, s)
			node := priceNode{price: price + newPrice, source: -1, prev: prev}
			if carry := p.nodes[p.used-1]; carry.price <= node.price {
				node = carry
			}
			// Only the last of several equal quantized sources is reusable.
			if p.src[s] != p.src[s+1] {
				price, prev := p.best(d-1, s-1)
				delta := p.src[s] - ideal
				if g := price + delta*delta; g <= node.price {
					node = priceNode{price: g, source: int32(s), prev: prev}
				}
			}
			p.push(node)
		}
	}

	last := p.rows[n-1]
	idx := int32(last.base + last.count - 1)
	for d := n - 1; d >= 0; d-- {
		node := p.nodes[idx]
		line := &lines[d]
		line.SymTo = NoLine
		line.SymRef = NoLine
		if node.source < 0 {
			line.Recalculate = true
			line.Dirty = true
			line.Source = NoLine
		} else {
			line.Source = int(node.source)
			line.NewPosition = lines[node.source].OldPosition
			line.Recalculate = false
			line.Dirty = false
		}
		idx = node.prev
	}

	flag := redistributeUniform
	if begin > lines[0].OldPosition && end < lines[n-1].OldPosition {
		flag = redistributeAnchored
	}
	if p.src[0] > 0 && p.src[n-1] < n*fpMul {
		flag = redistributeOpenEdges
	}
	return flag
}

// cost returns the total price of the last approximation.
func (p *priceEngine) cost(n int) int {
	last := p.rows[n-1]
	return p.nodes[last.base+last.count-1].price
}
