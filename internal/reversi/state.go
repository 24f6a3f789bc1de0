package reversi

import "github.com/rocketscienceinc/tabletop-backend/internal/entity"

type Player string

const (
	Black Player = "BLACK"
	White Player = "WHITE"

	Empty Player = ""
)

func (that Player) Opponent() Player {
	if that == Black {
		return White
	}
	return Black
}

type Phase string

const (
	PhasePlaying  Phase = "PLAYING"
	PhaseSkipped  Phase = "SKIPPED"
	PhaseGameOver Phase = "GAME_OVER"
)

const Size = 8

type Board [Size][Size]Player

type Scores struct {
	Black int `json:"BLACK"`
	White int `json:"WHITE"`
}

func (that Scores) Of(player Player) int {
	if player == Black {
		return that.Black
	}
	return that.White
}

type State struct {
	Board         Board         `json:"board"`
	CurrentPlayer Player        `json:"current_player"`
	Phase         Phase         `json:"phase"`
	Status        entity.Status `json:"status"`
	Winner        Player        `json:"winner"`
	IsDraw        bool          `json:"is_draw"`
	Scores        Scores        `json:"scores"`
	MoveCount     int           `json:"move_count"`
	// ValidMoves - legal cells of CurrentPlayer, keyed "r,c", with the discs each one flips.
	ValidMoves map[string][]entity.Position `json:"valid_moves"`
	LastMove   *entity.Position             `json:"last_move,omitempty"`
}

// NewState - standard four-disc start, black moves first.
func NewState() *State {
	var board Board
	board[3][3] = White
	board[3][4] = Black
	board[4][3] = Black
	board[4][4] = White

	return FromBoard(board, Black)
}

// FromBoard - starts a game from an arbitrary position with next to move.
func FromBoard(board Board, next Player) *State {
	state := &State{
		Board:         board,
		CurrentPlayer: next,
		Phase:         PhasePlaying,
		Status:        entity.StatusPlaying,
		Scores:        countDiscs(board),
		ValidMoves:    ValidMoves(board, next),
	}

	if len(state.ValidMoves) == 0 {
		if opponentMoves := ValidMoves(board, next.Opponent()); len(opponentMoves) > 0 {
			state.CurrentPlayer = next.Opponent()
			state.ValidMoves = opponentMoves
			state.Phase = PhaseSkipped
		} else {
			finish(state)
		}
	}

	return state
}

func (that *State) IsFinished() bool {
	return that.Status == entity.StatusEnded
}
