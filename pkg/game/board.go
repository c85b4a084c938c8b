package game

// BoardSize is the side length of the square playing grid.
const BoardSize = 10

const (
	Empty = ' '
	Ship  = 'S'
	Hit   = 'H'
	Miss  = 'M'
)

type Coordinate struct {
	Col int
	Row int
}

type Board struct {
	size  int
	cells [][]rune
}

//NewBoard returns a board of the given size with every cell empty.
func NewBoard(size int) *Board {
	cells := make([][]rune, size)
	for row := 0; row < size; row++ {
		cells[row] = make([]rune, size)
		for col := 0; col < size; col++ {
			cells[row][col] = Empty
		}
	}
	return &Board{
		size:  size,
		cells: cells,
	}
}

func (b *Board) Size() int {
	return b.size
}

//At returns the state of the cell at c. Callers must ensure c is in bounds.
func (b *Board) At(c Coordinate) rune {
	return b.cells[c.Row][c.Col]
}

func (b *Board) Mark(c Coordinate, state rune) {
	b.cells[c.Row][c.Col] = state
}

//InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coordinate) bool {
	return c.Col >= 0 && c.Col < b.size && c.Row >= 0 && c.Row < b.size
}
