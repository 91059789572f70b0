package engine

import "math/rand"

// typePool holds the shuffled base palette; the first n entries are active.
type typePool struct {
	types  []TileType
	active int
}

// reset reshuffles the full palette and activates n colors.
func (p *typePool) reset(rng *rand.Rand, n int) {
	p.types = p.types[:0]
	for t := TypeA; t <= TypeF; t++ {
		p.types = append(p.types, t)
	}
	rng.Shuffle(len(p.types), func(i, j int) {
		p.types[i], p.types[j] = p.types[j], p.types[i]
	})
	p.active = n
}

// draw returns a uniformly chosen active color.
func (p *typePool) draw(rng *rand.Rand) TileType {
	return p.types[rng.Intn(p.active)]
}

// Active returns the currently active colors.
func (p *typePool) Active() []TileType {
	out := make([]TileType, p.active)
	copy(out, p.types[:p.active])
	return out
}
