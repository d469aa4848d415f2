package core

// fixedGenerator replays kinds cyclically so tests know what spawns next.
type fixedGenerator struct {
	kinds []Kind
	pos   int
}

func newFixedGenerator(kinds ...Kind) *fixedGenerator {
	return &fixedGenerator{kinds: kinds}
}

func (g *fixedGenerator) at(i int) *Brick {
	return BrickOf(g.kinds[i%len(g.kinds)])
}

func (g *fixedGenerator) Next() *Brick {
	b := g.at(g.pos)
	g.pos++
	return b
}

func (g *fixedGenerator) Peek() *Brick {
	return g.at(g.pos)
}

func (g *fixedGenerator) PeekN(n int) []*Brick {
	out := make([]*Brick, n)
	for i := range out {
		out[i] = g.at(g.pos + i)
	}
	return out
}

func (g *fixedGenerator) Reset() {
	g.pos = 0
}

// fillRow marks every cell of row y except the listed columns.
func fillRow(m Matrix, y int, holes ...int) {
	for x := range m[y] {
		m[y][x] = 1
	}
	for _, x := range holes {
		m[y][x] = 0
	}
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg interface{}, _ ...interface{}) {
	if s, ok := msg.(string); ok {
		l.messages = append(l.messages, s)
	}
}
