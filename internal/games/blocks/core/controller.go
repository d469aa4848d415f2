package core

// Controller is the command surface hosts drive. It wraps a Board and runs
// the lock sequence (merge, clear, score, spawn) when a brick can no longer
// fall.
type Controller struct {
	cfg      Config
	board    *Board
	gameOver bool
}

// NewController builds a board from cfg, gen and score and spawns the
// first brick.
func NewController(cfg Config, gen Generator, score *Score) *Controller {
	c := &Controller{
		cfg:   cfg,
		board: NewBoard(cfg, gen, score),
	}
	c.gameOver = c.board.CreateNewBrick()
	return c
}

// Board exposes the underlying board for read access.
func (c *Controller) Board() *Board {
	return c.board
}

// Score returns the score tracker.
func (c *Controller) Score() *Score {
	return c.board.Score()
}

// GameOver reports whether the last spawn collided.
func (c *Controller) GameOver() bool {
	return c.gameOver
}

// MoveDown moves the brick one row. A user soft drop earns points; a timer
// tick does not. When the brick cannot move it is locked.
func (c *Controller) MoveDown(src EventSource) DownData {
	if c.board.MoveDown() {
		if src == SourceUser {
			c.Score().Add(c.cfg.SoftDropPoints)
		}
		return DownData{View: c.board.ViewData()}
	}
	return c.lock(0)
}

// HardDrop drops the brick until it is blocked, then locks it. Each row
// travelled earns HardDropPoints.
func (c *Controller) HardDrop(src EventSource) DownData {
	dropped := 0
	for c.board.MoveDown() {
		dropped++
	}
	return c.lock(dropped)
}

func (c *Controller) lock(dropped int) DownData {
	score := c.Score()

	c.board.MergeBrickToBackground()
	cr := c.board.ClearRows()
	if cr.LinesRemoved > 0 {
		score.Add(cr.ScoreBonus)
		score.AddLines(cr.LinesRemoved)
	}
	if dropped > 0 {
		score.Add(dropped * c.cfg.HardDropPoints)
	}

	c.gameOver = c.board.CreateNewBrick()

	return DownData{
		ClearRow: &cr,
		View:     c.board.ViewData(),
		Locked:   true,
		GameOver: c.gameOver,
		NewHigh:  c.gameOver && score.Value() > 0 && score.Value() == score.HighScore(),
	}
}

// MoveLeft shifts the brick left if possible.
func (c *Controller) MoveLeft(EventSource) ViewData {
	c.board.MoveLeft()
	return c.board.ViewData()
}

// MoveRight shifts the brick right if possible.
func (c *Controller) MoveRight(EventSource) ViewData {
	c.board.MoveRight()
	return c.board.ViewData()
}

// Rotate rotates the brick with kicks if possible.
func (c *Controller) Rotate(EventSource) ViewData {
	c.board.RotateLeft()
	return c.board.ViewData()
}

// Hold holds or swaps the brick if allowed.
func (c *Controller) Hold(EventSource) ViewData {
	c.board.HoldBrick()
	return c.board.ViewData()
}

// CreateNewGame resets the board for a fresh game. The game is over at once
// when the first brick cannot spawn.
func (c *Controller) CreateNewGame() {
	c.gameOver = c.board.NewGame()
}

// SetMode switches the high-score slot.
func (c *Controller) SetMode(m Mode) {
	c.Score().SetMode(m)
}

// ClearHoldBox empties the hold slot, used when switching modes.
func (c *Controller) ClearHoldBox() {
	c.board.ClearHold()
}

// ViewData returns the current view snapshot.
func (c *Controller) ViewData() ViewData {
	return c.board.ViewData()
}

// Matrix returns a copy of the background.
func (c *Controller) Matrix() Matrix {
	return c.board.Matrix()
}
