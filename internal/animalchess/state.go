package animalchess

import (
	"slices"

	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

type Player string

const (
	// Okashi - bottom side, moves first.
	Okashi Player = "OKASHI"
	Ohana  Player = "OHANA"
)

func (that Player) Opponent() Player {
	if that == Okashi {
		return Ohana
	}
	return Okashi
}

// orientation - sign applied to the row of an OKASHI-relative step.
func (that Player) orientation() int {
	if that == Okashi {
		return 1
	}
	return -1
}

// farRank - the opponent's back rank.
func (that Player) farRank() int {
	if that == Okashi {
		return 0
	}
	return Rows - 1
}

type Kind string

const (
	Lion     Kind = "LION"
	Giraffe  Kind = "GIRAFFE"
	Elephant Kind = "ELEPHANT"
	Chick    Kind = "CHICK"
	Rooster  Kind = "ROOSTER"
)

type WinReason string

const (
	WinCatch WinReason = "catch"
	WinTry   WinReason = "try"
)

const (
	Rows = 4
	Cols = 3
)

type Piece struct {
	Kind  Kind   `json:"kind"`
	Owner Player `json:"owner"`
}

func (that Piece) IsEmpty() bool {
	return that.Kind == ""
}

type Board [Rows][Cols]Piece

func (that *Board) at(pos entity.Position) Piece {
	return that[pos.Row][pos.Col]
}

func (that *Board) set(pos entity.Position, piece Piece) {
	that[pos.Row][pos.Col] = piece
}

// Hands - captured pieces each player may drop.
type Hands struct {
	Okashi []Kind `json:"OKASHI"`
	Ohana  []Kind `json:"OHANA"`
}

func (that Hands) Of(player Player) []Kind {
	if player == Okashi {
		return that.Okashi
	}
	return that.Ohana
}

// with - copy of the hands where player's pool is replaced.
func (that Hands) with(player Player, kinds []Kind) Hands {
	if player == Okashi {
		that.Okashi = kinds
	} else {
		that.Ohana = kinds
	}
	return that
}

func (that Hands) add(player Player, kind Kind) Hands {
	return that.with(player, append(slices.Clone(that.Of(player)), kind))
}

func (that Hands) remove(player Player, kind Kind) (Hands, bool) {
	pool := that.Of(player)

	i := slices.Index(pool, kind)
	if i < 0 {
		return that, false
	}

	return that.with(player, slices.Delete(slices.Clone(pool), i, i+1)), true
}

type State struct {
	Board         Board            `json:"board"`
	CurrentPlayer Player           `json:"current_player"`
	Status        entity.Status    `json:"status"`
	Winner        Player           `json:"winner"`
	IsDraw        bool             `json:"is_draw"`
	WinReason     WinReason        `json:"win_reason,omitempty"`
	Hands         Hands            `json:"hands"`
	MoveCount     int              `json:"move_count"`
	LastMove      *entity.Position `json:"last_move,omitempty"`
}

// NewState - starting setup, OKASHI moves first.
func NewState() *State {
	var board Board
	board[0][0] = Piece{Kind: Elephant, Owner: Ohana}
	board[0][1] = Piece{Kind: Lion, Owner: Ohana}
	board[0][2] = Piece{Kind: Giraffe, Owner: Ohana}
	board[1][1] = Piece{Kind: Chick, Owner: Ohana}
	board[2][1] = Piece{Kind: Chick, Owner: Okashi}
	board[3][0] = Piece{Kind: Giraffe, Owner: Okashi}
	board[3][1] = Piece{Kind: Lion, Owner: Okashi}
	board[3][2] = Piece{Kind: Elephant, Owner: Okashi}

	return &State{
		Board:         board,
		CurrentPlayer: Okashi,
		Status:        entity.StatusPlaying,
	}
}

func (that *State) IsFinished() bool {
	return that.Status == entity.StatusEnded
}
