package entity

import "fmt"

// Position - a cell on a rectangular board, zero based.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Key - is the "r,c" form used to index move-legality maps.
func (that Position) Key() string {
	return fmt.Sprintf("%d,%d", that.Row, that.Col)
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Add - shifts the position by a direction vector.
func (that Position) Add(dir Direction) Position {
	return Position{Row: that.Row + dir.Row, Col: that.Col + dir.Col}
}

// In - reports whether the position is inside a rows x cols board.
func (that Position) In(rows, cols int) bool {
	return that.Row >= 0 && that.Row < rows && that.Col >= 0 && that.Col < cols
}

type Direction struct {
	Row int
	Col int
}

var (
	Orthogonal = []Direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	Diagonal   = []Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	AllAround  = append(append([]Direction{}, Orthogonal...), Diagonal...)
)
