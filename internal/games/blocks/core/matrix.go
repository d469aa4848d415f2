package core

// ClearBonusFactor scales the quadratic line-clear bonus: factor × lines².
const ClearBonusFactor = 50

// Matrix is a row-major grid of cell codes. 0 is empty, 1-7 are brick colors.
type Matrix [][]int

// NewMatrix allocates an all-empty matrix with the given dimensions.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for y := range m {
		m[y] = make([]int, cols)
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns (width of the first row).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Copy returns a deep copy. Mutating the copy never affects m.
func (m Matrix) Copy() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for y, row := range m {
		out[y] = make([]int, len(row))
		copy(out[y], row)
	}
	return out
}

// Equal reports whether both matrices have the same shape and cells.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(other[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// CopyList deep-copies every matrix in list.
func CopyList(list []Matrix) []Matrix {
	out := make([]Matrix, len(list))
	for i, m := range list {
		out[i] = m.Copy()
	}
	return out
}

// Collides reports whether shape placed with its top-left corner at (x, y)
// overlaps an occupied background cell or leaves the board.
//
// Cells above the board (y < 0) are allowed so bricks can spawn partially
// hidden. Such a cell collides only when it is outside the horizontal bounds
// or the background column is already occupied in the top row.
func Collides(background, shape Matrix, x, y int) bool {
	for row := range shape {
		for col, cell := range shape[row] {
			if cell == 0 {
				continue
			}
			if cellCollides(background, x+col, y+row) {
				return true
			}
		}
	}
	return false
}

func cellCollides(background Matrix, tx, ty int) bool {
	width := background.Cols()
	if ty < 0 {
		return tx < 0 || tx >= width || background[0][tx] != 0
	}
	if outOfBounds(background, tx, ty) {
		return true
	}
	return background[ty][tx] != 0
}

func outOfBounds(m Matrix, x, y int) bool {
	return x < 0 || y < 0 || y >= m.Rows() || x >= m.Cols()
}

// Merge returns a copy of background with every occupied shape cell written
// at its absolute position. Cells above the board or outside it are dropped;
// callers validate with Collides first and must not rely on this clamp.
func Merge(background, shape Matrix, x, y int) Matrix {
	out := background.Copy()
	for row := range shape {
		for col, cell := range shape[row] {
			if cell == 0 {
				continue
			}
			tx, ty := x+col, y+row
			if ty < 0 || outOfBounds(out, tx, ty) {
				continue
			}
			out[ty][tx] = cell
		}
	}
	return out
}

// ClearFullRows removes every fully occupied row. Surviving rows keep their
// relative order and settle at the bottom; vacated rows at the top are empty.
func ClearFullRows(m Matrix) ClearRow {
	rows, cols := m.Rows(), m.Cols()
	kept := make([][]int, 0, rows)
	cleared := 0

	for _, row := range m {
		full := cols > 0
		for _, cell := range row {
			if cell == 0 {
				full = false
				break
			}
		}
		if full {
			cleared++
			continue
		}
		r := make([]int, len(row))
		copy(r, row)
		kept = append(kept, r)
	}

	out := make(Matrix, rows)
	pad := rows - len(kept)
	for y := 0; y < pad; y++ {
		out[y] = make([]int, cols)
	}
	copy(out[pad:], kept)

	return ClearRow{
		LinesRemoved: cleared,
		Matrix:       out,
		ScoreBonus:   ClearBonusFactor * cleared * cleared,
	}
}
