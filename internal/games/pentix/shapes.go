package pentix

// Shape is a rectangular 0/1 matrix of piece sub-cells, indexed [row][col].
type Shape [][]int

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Height returns the number of rows in the matrix.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns in the matrix.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// RotateClockwise returns the shape turned 90° clockwise: rows are reversed,
// then the matrix is transposed. An R×C matrix becomes C×R.
func RotateClockwise(s Shape) Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for x := range out {
		out[x] = make([]int, h)
	}
	for y := 0; y < h; y++ {
		src := s[h-1-y]
		for x := 0; x < w; x++ {
			out[x][y] = src[x]
		}
	}
	return out
}

// DefaultCatalog returns the built-in shape templates: the seven
// tetrominoes followed by six pentominoes.
func DefaultCatalog() []Shape {
	return []Shape{
		// Tetrominoes
		{{1, 1, 1, 1}},         // I
		{{1, 1}, {1, 1}},       // O
		{{0, 1, 0}, {1, 1, 1}}, // T
		{{0, 1, 1}, {1, 1, 0}}, // S
		{{1, 1, 0}, {0, 1, 1}}, // Z
		{{1, 0, 0}, {1, 1, 1}}, // J
		{{0, 0, 1}, {1, 1, 1}}, // L

		// Pentominoes
		{{1, 1}, {1, 1}, {1, 0}},          // P
		{{1, 0, 1}, {1, 1, 1}},            // U
		{{1, 1, 1}, {0, 1, 0}, {0, 1, 0}}, // T5
		{{0, 1, 0}, {1, 1, 1}, {0, 1, 0}}, // X
		{{1, 0, 0, 0}, {1, 1, 1, 1}},      // L5
		{{1, 0, 0}, {1, 0, 0}, {1, 1, 1}}, // V
	}
}

// CatalogFromMatrices converts configured matrices into shapes.
// An empty list yields the default catalog.
func CatalogFromMatrices(matrices [][][]int) []Shape {
	if len(matrices) == 0 {
		return DefaultCatalog()
	}
	catalog := make([]Shape, len(matrices))
	for i, m := range matrices {
		catalog[i] = Shape(m).Clone()
	}
	return catalog
}
