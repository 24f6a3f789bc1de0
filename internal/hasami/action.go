package hasami

import "github.com/rocketscienceinc/tabletop-backend/internal/entity"

const (
	ActionMove            = "move"
	ActionSetWinCondition = "set_win_condition"
)

type Action interface {
	Type() string
}

type MovePiece struct {
	From entity.Position `json:"from"`
	To   entity.Position `json:"to"`
}

func (MovePiece) Type() string { return ActionMove }

type SetWinCondition struct {
	Condition WinCondition `json:"condition"`
}

func (SetWinCondition) Type() string { return ActionSetWinCondition }

func DecodeAction(raw []byte) (Action, error) {
	actionType, err := entity.ActionType(raw)
	if err != nil {
		return nil, err
	}

	switch actionType {
	case ActionMove:
		return entity.DecodeAs[MovePiece](raw)
	case ActionSetWinCondition:
		return entity.DecodeAs[SetWinCondition](raw)
	default:
		return nil, entity.UnknownActionType(actionType)
	}
}
