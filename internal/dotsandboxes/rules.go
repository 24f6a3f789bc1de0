package dotsandboxes

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

// Reduce - applies one action. Claimed edges and moves after the end return the same state.
func Reduce(state *State, action Action) (*State, error) {
	switch act := action.(type) {
	case DrawLine:
		return Claim(state, act.LineType, act.Row, act.Col)
	default:
		return state, fmt.Errorf("%w: %T", apperror.ErrUnknownAction, action)
	}
}

// Claim - draws an edge for the current player. Completing a box keeps the turn.
func Claim(state *State, lineType LineType, row, col int) (*State, error) {
	lines, err := state.lines(lineType)
	if err != nil {
		return state, err
	}

	if row < 0 || row >= len(lines) || col < 0 || col >= len(lines[row]) {
		return state, fmt.Errorf("%w: %s line (%d,%d)", apperror.ErrOutOfBounds, lineType, row, col)
	}

	if state.IsFinished() || lines[row][col] != None {
		return state, nil
	}

	mover := state.CurrentPlayer
	next := &State{
		Rows:            state.Rows,
		Cols:            state.Cols,
		HorizontalLines: state.HorizontalLines,
		VerticalLines:   state.VerticalLines,
		Boxes:           state.Boxes,
		Status:          entity.StatusPlaying,
		Scores:          state.Scores,
	}

	claimed := cloneRow(lines, row)
	claimed[row][col] = mover
	if lineType == Horizontal {
		next.HorizontalLines = claimed
	} else {
		next.VerticalLines = claimed
	}

	completed := 0
	for _, box := range bordering(next, lineType, row, col) {
		if next.Boxes[box.Row][box.Col] == None && next.isComplete(box) {
			next.Boxes = cloneRow(next.Boxes, box.Row)
			next.Boxes[box.Row][box.Col] = mover
			completed++
		}
	}

	if mover == Player1 {
		next.Scores.Player1 += completed
	} else {
		next.Scores.Player2 += completed
	}

	if completed > 0 {
		next.CurrentPlayer = mover
	} else {
		next.CurrentPlayer = mover.Opponent()
	}

	if next.Scores.Player1+next.Scores.Player2 == next.Rows*next.Cols {
		next.Status = entity.StatusEnded
		switch {
		case next.Scores.Player1 > next.Scores.Player2:
			next.Winner = Player1
		case next.Scores.Player2 > next.Scores.Player1:
			next.Winner = Player2
		default:
			next.IsDraw = true
		}
	}

	return next, nil
}

func (that *State) lines(lineType LineType) ([][]Player, error) {
	switch lineType {
	case Horizontal:
		return that.HorizontalLines, nil
	case Vertical:
		return that.VerticalLines, nil
	default:
		return nil, fmt.Errorf("%w: line type %q", apperror.ErrMalformedAction, lineType)
	}
}

// bordering - the one or two boxes the edge belongs to.
func bordering(state *State, lineType LineType, row, col int) []entity.Position {
	var candidates []entity.Position
	if lineType == Horizontal {
		candidates = []entity.Position{{Row: row - 1, Col: col}, {Row: row, Col: col}}
	} else {
		candidates = []entity.Position{{Row: row, Col: col - 1}, {Row: row, Col: col}}
	}

	var boxes []entity.Position
	for _, box := range candidates {
		if box.In(state.Rows, state.Cols) {
			boxes = append(boxes, box)
		}
	}

	return boxes
}

func (that *State) isComplete(box entity.Position) bool {
	return that.ClaimedSides(box) == 4
}

// ClaimedSides - number of drawn edges around a box.
func (that *State) ClaimedSides(box entity.Position) int {
	n := 0
	for _, owner := range []Player{
		that.HorizontalLines[box.Row][box.Col],
		that.HorizontalLines[box.Row+1][box.Col],
		that.VerticalLines[box.Row][box.Col],
		that.VerticalLines[box.Row][box.Col+1],
	} {
		if owner != None {
			n++
		}
	}

	return n
}

// cloneRow - copy of the grid sharing every row except row.
func cloneRow(grid [][]Player, row int) [][]Player {
	result := slices.Clone(grid)
	result[row] = slices.Clone(grid[row])

	return result
}
