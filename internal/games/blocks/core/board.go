package core

// Board owns the background matrix and the active brick. Every mutating
// operation validates against the background before committing and reports
// refusals as false.
type Board struct {
	cfg        Config
	background Matrix
	generator  Generator
	rotator    Rotator
	offset     Point
	held       *Brick
	holdUsed   bool
	score      *Score
}

// NewBoard creates an empty board. No brick is active until CreateNewBrick
// or NewGame is called.
func NewBoard(cfg Config, gen Generator, score *Score) *Board {
	if gen == nil {
		gen = NewBagGenerator(nil)
	}
	if score == nil {
		score = NewScore(nil)
	}
	return &Board{
		cfg:        cfg,
		background: NewMatrix(cfg.Rows, cfg.Cols),
		generator:  gen,
		score:      score,
		offset:     cfg.Spawn,
	}
}

// MoveDown shifts the active brick one row down if the target is free.
func (b *Board) MoveDown() bool {
	return b.tryMove(0, 1)
}

// MoveLeft shifts the active brick one column left if the target is free.
func (b *Board) MoveLeft() bool {
	return b.tryMove(-1, 0)
}

// MoveRight shifts the active brick one column right if the target is free.
func (b *Board) MoveRight() bool {
	return b.tryMove(1, 0)
}

func (b *Board) tryMove(dx, dy int) bool {
	p := Point{X: b.offset.X + dx, Y: b.offset.Y + dy}
	if Collides(b.background, b.rotator.CurrentShape(), p.X, p.Y) {
		return false
	}
	b.offset = p
	return true
}

// kickOffsets are the horizontal shifts tried, in order, when a rotation is
// blocked in place.
var kickOffsets = [...]int{-1, 1, -2, 2}

// RotateLeft advances the active brick to its next rotation state. If the
// new state is blocked in place, the kick offsets are probed in order and
// the first free one commits both the rotation and the shift.
func (b *Board) RotateLeft() bool {
	next := b.rotator.NextShape()
	if next.Shape == nil {
		return false
	}
	x, y := b.offset.X, b.offset.Y
	if !Collides(b.background, next.Shape, x, y) {
		b.rotator.SetCurrentShape(next.Position)
		return true
	}
	for _, dx := range kickOffsets {
		if !Collides(b.background, next.Shape, x+dx, y) {
			b.rotator.SetCurrentShape(next.Position)
			b.offset = Point{X: x + dx, Y: y}
			return true
		}
	}
	return false
}

// HoldBrick stores the active brick, or swaps it with the held one. It is
// allowed once per spawn. The incoming brick is placed at the spawn offset;
// if it collides there, every change made by this call is rolled back.
func (b *Board) HoldBrick() bool {
	if b.holdUsed || b.rotator.Brick() == nil {
		return false
	}

	prevActive := b.rotator.Brick()
	prevIndex := b.rotator.Index()
	prevHeld := b.held
	prevOffset := b.offset

	if b.held == nil {
		// The drawn brick stays consumed even if the hold is rolled back.
		b.held = prevActive
		b.rotator.SetBrick(b.generator.Next())
	} else {
		b.rotator.SetBrick(b.held)
		b.held = prevActive
	}
	b.offset = b.cfg.Spawn

	if Collides(b.background, b.rotator.CurrentShape(), b.offset.X, b.offset.Y) {
		b.rotator.SetBrick(prevActive)
		b.rotator.SetCurrentShape(prevIndex)
		b.held = prevHeld
		b.offset = prevOffset
		return false
	}

	b.holdUsed = true
	return true
}

// CreateNewBrick spawns the next brick at the spawn offset and re-arms hold.
// The spawn always happens. It returns true when the new brick already
// collides with the background, which means the game is over.
func (b *Board) CreateNewBrick() bool {
	b.rotator.SetBrick(b.generator.Next())
	b.offset = b.cfg.Spawn
	b.holdUsed = false
	return Collides(b.background, b.rotator.CurrentShape(), b.offset.X, b.offset.Y)
}

// MergeBrickToBackground locks the active brick into the background at its
// current offset without validation. Call it exactly once per lock.
func (b *Board) MergeBrickToBackground() {
	b.background = Merge(b.background, b.rotator.CurrentShape(), b.offset.X, b.offset.Y)
}

// ClearRows removes full rows from the background and returns the summary.
func (b *Board) ClearRows() ClearRow {
	cr := ClearFullRows(b.background)
	b.background = cr.Matrix.Copy()
	return cr
}

// NewGame empties the board, resets score and generator, clears hold and
// spawns the first brick. It reports whether that brick collides.
func (b *Board) NewGame() bool {
	b.background = NewMatrix(b.cfg.Rows, b.cfg.Cols)
	b.score.Reset()
	b.generator.Reset()
	b.held = nil
	b.holdUsed = false
	return b.CreateNewBrick()
}

// ClearHold empties the hold slot and re-arms hold.
func (b *Board) ClearHold() {
	b.held = nil
	b.holdUsed = false
}

// GhostY returns the row the active brick would land on if dropped now.
func (b *Board) GhostY() int {
	shape := b.rotator.CurrentShape()
	y := b.offset.Y
	if shape == nil {
		return y
	}
	for !Collides(b.background, shape, b.offset.X, y+1) {
		y++
		if y > b.cfg.Rows {
			break
		}
	}
	return y
}

// Matrix returns a copy of the background.
func (b *Board) Matrix() Matrix {
	return b.background.Copy()
}

// Offset returns the active brick offset.
func (b *Board) Offset() Point {
	return b.offset
}

// Rotation returns the active brick rotation index.
func (b *Board) Rotation() int {
	return b.rotator.Index()
}

// Active returns the active brick, or nil before the first spawn.
func (b *Board) Active() *Brick {
	return b.rotator.Brick()
}

// Held returns the held brick, or nil when the slot is empty.
func (b *Board) Held() *Brick {
	return b.held
}

// HoldUsed reports whether hold was already used since the last spawn.
func (b *Board) HoldUsed() bool {
	return b.holdUsed
}

// Score returns the board's score tracker.
func (b *Board) Score() *Score {
	return b.score
}

// ViewData snapshots the active brick, the preview queue and the hold slot.
func (b *Board) ViewData() ViewData {
	preview := b.generator.PeekN(b.cfg.PreviewCount)
	next := make([]Matrix, len(preview))
	for i, br := range preview {
		next[i] = br.Shape(0)
	}

	held := NewMatrix(BrickSize, BrickSize)
	if b.held != nil {
		held = b.held.Shape(0)
	}

	return ViewData{
		Brick: b.rotator.CurrentShape(),
		X:     b.offset.X,
		Y:     b.offset.Y,
		Ghost: b.GhostY(),
		Next:  next,
		Held:  held,
	}
}
