package engine

// Match is the outcome of evaluating a pivot: the coordinates to clear, the
// special status earned at the pivot and the shared tile type.
type Match struct {
	Points []Coord
	Status Status
	Type   TileType
	Pivot  Coord
}

// Found returns true if the match clears at least three tiles.
func (m Match) Found() bool {
	return len(m.Points) >= 3
}

// beats reports whether m should replace cur as the best local match.
// Higher rank wins, then more points, then row-clear over column-clear.
func (m Match) beats(cur Match) bool {
	if m.Status.Rank() != cur.Status.Rank() {
		return m.Status.Rank() > cur.Status.Rank()
	}
	if len(m.Points) != len(cur.Points) {
		return len(m.Points) > len(cur.Points)
	}
	return m.Status == StatusRowClear && cur.Status == StatusColumnClear
}

// scan returns the same-type run through origin along the given directions,
// origin included. Only occupied in-bounds neighbours sharing the type of the
// tile that reached them are visited.
func (b *Board) scan(origin Coord, dirs []Coord) []Coord {
	queue := []Coord{origin}
	visited := map[Coord]bool{origin: true}

	for front := 0; front < len(queue); front++ {
		cur := b.At(queue[front])
		if cur == nil {
			continue
		}
		for _, d := range dirs {
			next := queue[front].Add(d)
			if !b.InBounds(next) || visited[next] {
				continue
			}
			nt := b.At(next)
			if nt == nil || nt.Type != cur.Type {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return queue
}

// Runs returns the horizontal and vertical runs through origin.
func (b *Board) Runs(origin Coord) (row, col []Coord) {
	return b.scan(origin, horizontal), b.scan(origin, vertical)
}

// Evaluate classifies the match at origin. With recursive set, every other
// matched coordinate is evaluated once more and the best result wins.
func (b *Board) Evaluate(origin Coord, recursive bool) Match {
	rowRun, colRun := b.Runs(origin)

	m := Match{
		Status: classify(len(rowRun), len(colRun)),
		Pivot:  origin,
	}
	if t := b.At(origin); t != nil {
		m.Type = t.Type
	}

	if len(rowRun) >= 3 {
		m.Points = append(m.Points, rowRun...)
	}
	if len(colRun) >= 3 {
		m.Points = mergePoints(m.Points, colRun)
	}

	if !recursive || !m.Found() {
		return m
	}

	best := m
	for _, p := range m.Points {
		if p == origin {
			continue
		}
		if sub := b.Evaluate(p, false); sub.beats(best) {
			best = sub
		}
	}
	return best
}

// classify maps run lengths to the special status they earn.
func classify(rowLen, colLen int) Status {
	switch {
	case rowLen >= 5 || colLen >= 5:
		return StatusColorBomb
	case rowLen >= 3 && colLen >= 3:
		return StatusAreaClear
	case rowLen >= 4:
		return StatusRowClear
	case colLen >= 4:
		return StatusColumnClear
	default:
		return StatusOrdinary
	}
}

// mergePoints appends the points of extra missing from base.
func mergePoints(base, extra []Coord) []Coord {
	seen := make(map[Coord]bool, len(base))
	for _, p := range base {
		seen[p] = true
	}
	for _, p := range extra {
		if !seen[p] {
			seen[p] = true
			base = append(base, p)
		}
	}
	return base
}
