package animalchess

import "github.com/rocketscienceinc/tabletop-backend/internal/entity"

const (
	ActionMove = "move"
	ActionDrop = "drop"
)

type Action interface {
	Type() string
}

type MovePiece struct {
	From entity.Position `json:"from"`
	To   entity.Position `json:"to"`
}

func (MovePiece) Type() string { return ActionMove }

type DropPiece struct {
	Kind Kind            `json:"kind"`
	To   entity.Position `json:"to"`
}

func (DropPiece) Type() string { return ActionDrop }

func DecodeAction(raw []byte) (Action, error) {
	actionType, err := entity.ActionType(raw)
	if err != nil {
		return nil, err
	}

	switch actionType {
	case ActionMove:
		return entity.DecodeAs[MovePiece](raw)
	case ActionDrop:
		return entity.DecodeAs[DropPiece](raw)
	default:
		return nil, entity.UnknownActionType(actionType)
	}
}
