package core

// Kind identifies one of the seven bricks. The numeric value doubles as the
// cell color id written into the background.
type Kind int

const (
	KindI Kind = iota + 1
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// BrickSize is the edge length of every rotation grid.
const BrickSize = 4

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Kinds returns all brick kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// Brick is an immutable catalog entry with its ordered rotation states.
type Brick struct {
	kind   Kind
	shapes []Matrix
}

// Kind returns the brick kind.
func (b *Brick) Kind() Kind {
	return b.kind
}

// StateCount returns the number of rotation states.
func (b *Brick) StateCount() int {
	return len(b.shapes)
}

// Shape returns a copy of rotation state i (wrapped modulo StateCount).
func (b *Brick) Shape(i int) Matrix {
	n := len(b.shapes)
	return b.shapes[((i%n)+n)%n].Copy()
}

// Shapes returns copies of all rotation states.
func (b *Brick) Shapes() []Matrix {
	return CopyList(b.shapes)
}

var catalog = map[Kind]*Brick{
	KindI: {kind: KindI, shapes: []Matrix{
		{{0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}},
	}},
	KindJ: {kind: KindJ, shapes: []Matrix{
		{{0, 0, 0, 0}, {2, 2, 2, 0}, {0, 0, 2, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 2, 2, 0}, {0, 2, 0, 0}, {0, 2, 0, 0}},
		{{0, 0, 0, 0}, {0, 2, 0, 0}, {0, 2, 2, 2}, {0, 0, 0, 0}},
		{{0, 0, 2, 0}, {0, 0, 2, 0}, {0, 2, 2, 0}, {0, 0, 0, 0}},
	}},
	KindL: {kind: KindL, shapes: []Matrix{
		{{0, 0, 0, 0}, {0, 3, 3, 3}, {0, 3, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 3, 3, 0}, {0, 0, 3, 0}, {0, 0, 3, 0}},
		{{0, 0, 0, 0}, {0, 0, 3, 0}, {3, 3, 3, 0}, {0, 0, 0, 0}},
		{{0, 3, 0, 0}, {0, 3, 0, 0}, {0, 3, 3, 0}, {0, 0, 0, 0}},
	}},
	KindO: {kind: KindO, shapes: []Matrix{
		{{0, 0, 0, 0}, {0, 4, 4, 0}, {0, 4, 4, 0}, {0, 0, 0, 0}},
	}},
	KindS: {kind: KindS, shapes: []Matrix{
		{{0, 0, 0, 0}, {0, 5, 5, 0}, {5, 5, 0, 0}, {0, 0, 0, 0}},
		{{5, 0, 0, 0}, {5, 5, 0, 0}, {0, 5, 0, 0}, {0, 0, 0, 0}},
	}},
	KindT: {kind: KindT, shapes: []Matrix{
		{{0, 0, 0, 0}, {6, 6, 6, 0}, {0, 6, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 6, 0, 0}, {6, 6, 0, 0}, {0, 6, 0, 0}},
		{{0, 0, 0, 0}, {0, 6, 0, 0}, {6, 6, 6, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 6, 0, 0}, {0, 6, 6, 0}, {0, 6, 0, 0}},
	}},
	KindZ: {kind: KindZ, shapes: []Matrix{
		{{0, 0, 0, 0}, {7, 7, 0, 0}, {0, 7, 7, 0}, {0, 0, 0, 0}},
		{{0, 7, 0, 0}, {7, 7, 0, 0}, {7, 0, 0, 0}, {0, 0, 0, 0}},
	}},
}

// BrickOf returns the catalog entry for k, or nil for an unknown kind.
func BrickOf(k Kind) *Brick {
	return catalog[k]
}
