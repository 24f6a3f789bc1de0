package controller

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

const (
	GameTicTacToe     = "tictactoe"
	GameReversi       = "reversi"
	GameHasami        = "hasami-shogi"
	GameAnimalChess   = "animal-chess"
	GameDotsAndBoxes  = "dots-and-boxes"
	GameStickTaking   = "stick-taking"
	GameConcentration = "concentration"
)

var manifests = []entity.Manifest{
	{
		Name:             GameTicTacToe,
		DisplayName:      "Tic-Tac-Toe",
		ShortDescription: "Three in a row on a 3x3 grid.",
		Path:             "/games/" + GameTicTacToe,
		RulesFile:        "rules/tictactoe.md",
	},
	{
		Name:             GameReversi,
		DisplayName:      "Reversi",
		ShortDescription: "Outflank and flip discs on an 8x8 board.",
		Path:             "/games/" + GameReversi,
		RulesFile:        "rules/reversi.md",
	},
	{
		Name:             GameHasami,
		DisplayName:      "Hasami Shogi",
		ShortDescription: "Sandwich enemy pieces on a 9x9 board.",
		Path:             "/games/" + GameHasami,
		RulesFile:        "rules/hasami-shogi.md",
	},
	{
		Name:             GameAnimalChess,
		DisplayName:      "Animal Chess",
		ShortDescription: "Catch the lion or walk yours home on a 3x4 board.",
		Path:             "/games/" + GameAnimalChess,
		RulesFile:        "rules/animal-chess.md",
	},
	{
		Name:             GameDotsAndBoxes,
		DisplayName:      "Dots and Boxes",
		ShortDescription: "Close boxes to score and keep the turn.",
		Path:             "/games/" + GameDotsAndBoxes,
		RulesFile:        "rules/dots-and-boxes.md",
	},
	{
		Name:             GameStickTaking,
		DisplayName:      "Stick Taking",
		ShortDescription: "Take adjacent sticks from one row, whoever takes the last one loses.",
		Path:             "/games/" + GameStickTaking,
		RulesFile:        "rules/stick-taking.md",
	},
	{
		Name:             GameConcentration,
		DisplayName:      "Concentration",
		ShortDescription: "Find matching pairs of face-down cards.",
		Path:             "/games/" + GameConcentration,
		RulesFile:        "rules/concentration.md",
	},
}

// Manifests - every known game in display order.
func Manifests() []entity.Manifest {
	result := make([]entity.Manifest, len(manifests))
	copy(result, manifests)

	return result
}

func ManifestOf(name string) (entity.Manifest, error) {
	for _, manifest := range manifests {
		if manifest.Name == name {
			return manifest, nil
		}
	}

	return entity.Manifest{}, fmt.Errorf("%w: %q", apperror.ErrUnknownGame, name)
}

// New - creates a controller for the named game.
func New(name string, logger *slog.Logger, opts entity.Options) (Controller, error) {
	if opts.Difficulty != "" && !opts.Difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, opts.Difficulty)
	}

	switch name {
	case GameTicTacToe:
		return NewTicTacToe(logger), nil
	case GameReversi:
		return NewReversi(logger), nil
	case GameHasami:
		return NewHasami(logger), nil
	case GameAnimalChess:
		return NewAnimalChess(logger), nil
	case GameDotsAndBoxes:
		return orNil(NewDotsAndBoxes(logger, opts.Difficulty))
	case GameStickTaking:
		return orNil(NewStickTaking(logger, opts.Difficulty))
	case GameConcentration:
		return orNil(NewConcentration(logger, opts))
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownGame, name)
	}
}

// orNil - a nil Controller whenever err is set.
func orNil[C Controller](ctrl C, err error) (Controller, error) {
	if err != nil {
		return nil, err
	}

	return ctrl, nil
}
