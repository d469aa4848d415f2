package core

import (
	"math/rand"
	"time"
)

// Generator supplies the sequence of upcoming bricks.
type Generator interface {
	// Next removes and returns the front of the queue.
	Next() *Brick
	// Peek returns the front of the queue without consuming it.
	Peek() *Brick
	// PeekN returns the first n queued bricks without consuming them.
	PeekN(n int) []*Brick
	// Reset discards the queue and starts a fresh bag.
	Reset()
}

// BagGenerator is a 7-bag randomizer. Whenever the queue runs short, a
// shuffled permutation of all seven kinds is appended to its tail. Queued
// bricks are never discarded or reshuffled, so each kind appears exactly
// once per appended batch; a window straddling two batches may repeat.
type BagGenerator struct {
	rng   *rand.Rand
	queue []*Brick
}

// NewBagGenerator creates a generator drawing from rng.
// A nil rng is seeded from the current time.
func NewBagGenerator(rng *rand.Rand) *BagGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &BagGenerator{rng: rng}
	g.refill()
	return g
}

// Next pops the front brick, appending a new bag first if at most one
// brick remains.
func (g *BagGenerator) Next() *Brick {
	if len(g.queue) <= 1 {
		g.refill()
	}
	b := g.queue[0]
	g.queue = g.queue[1:]
	return b
}

// Peek returns the front brick without consuming it.
func (g *BagGenerator) Peek() *Brick {
	if len(g.queue) == 0 {
		g.refill()
	}
	return g.queue[0]
}

// PeekN returns the first n bricks, appending bags until n are queued.
func (g *BagGenerator) PeekN(n int) []*Brick {
	if n <= 0 {
		return nil
	}
	for len(g.queue) < n {
		g.refill()
	}
	out := make([]*Brick, n)
	copy(out, g.queue[:n])
	return out
}

// Reset clears the queue and appends one fresh bag.
func (g *BagGenerator) Reset() {
	g.queue = g.queue[:0]
	g.refill()
}

// Len returns the number of queued bricks.
func (g *BagGenerator) Len() int {
	return len(g.queue)
}

// refill appends one Fisher-Yates shuffled batch of every kind.
func (g *BagGenerator) refill() {
	bag := Kinds()
	for i := len(bag) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		bag[i], bag[j] = bag[j], bag[i]
	}
	for _, k := range bag {
		g.queue = append(g.queue, BrickOf(k))
	}
}
