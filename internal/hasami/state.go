package hasami

import "github.com/rocketscienceinc/tabletop-backend/internal/entity"

type Player string

const (
	Player1 Player = "PLAYER1"
	Player2 Player = "PLAYER2"

	Empty Player = ""
)

func (that Player) Opponent() Player {
	if that == Player1 {
		return Player2
	}
	return Player1
}

// WinCondition - selectable before the first move.
type WinCondition string

const (
	// WinStandard - five captures, or three captures with a lead of three.
	WinStandard     WinCondition = "standard"
	WinFiveCaptures WinCondition = "five_captures"
	// WinTotalCapture - the opponent is left with at most one piece.
	WinTotalCapture WinCondition = "total_capture"
)

func (that WinCondition) IsValid() bool {
	switch that {
	case WinStandard, WinFiveCaptures, WinTotalCapture:
		return true
	default:
		return false
	}
}

const Size = 9

type Board [Size][Size]Player

// Scores - pieces captured by each player.
type Scores struct {
	Player1 int `json:"PLAYER1"`
	Player2 int `json:"PLAYER2"`
}

func (that Scores) Of(player Player) int {
	if player == Player1 {
		return that.Player1
	}
	return that.Player2
}

func (that Scores) add(player Player, n int) Scores {
	if player == Player1 {
		that.Player1 += n
	} else {
		that.Player2 += n
	}
	return that
}

type Move struct {
	From entity.Position `json:"from"`
	To   entity.Position `json:"to"`
}

type State struct {
	Board         Board         `json:"board"`
	CurrentPlayer Player        `json:"current_player"`
	Status        entity.Status `json:"status"`
	Winner        Player        `json:"winner"`
	IsDraw        bool          `json:"is_draw"`
	Scores        Scores        `json:"scores"`
	WinCondition  WinCondition  `json:"win_condition"`
	MoveCount     int           `json:"move_count"`
	LastMove      *Move         `json:"last_move,omitempty"`
	// JustCaptured - cells emptied by the last move.
	JustCaptured []entity.Position `json:"just_captured"`
}

// NewState - PLAYER2 on the top rank, PLAYER1 on the bottom rank, PLAYER1 moves first.
func NewState() *State {
	return &State{
		Board:         initialBoard(),
		CurrentPlayer: Player1,
		Status:        entity.StatusPlaying,
		WinCondition:  WinStandard,
	}
}

func initialBoard() Board {
	var board Board
	for col := 0; col < Size; col++ {
		board[0][col] = Player2
		board[Size-1][col] = Player1
	}

	return board
}

func (that *State) IsFinished() bool {
	return that.Status == entity.StatusEnded
}

func (that *Board) at(pos entity.Position) Player {
	return that[pos.Row][pos.Col]
}

func (that *Board) set(pos entity.Position, player Player) {
	that[pos.Row][pos.Col] = player
}

func (that *Board) count(player Player) int {
	n := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == player {
				n++
			}
		}
	}

	return n
}
