package tictactoe

import "github.com/rocketscienceinc/tabletop-backend/internal/entity"

const ActionPlace = "place"

type Action interface {
	Type() string
}

type Place struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (Place) Type() string { return ActionPlace }

// DecodeAction - parses the {"type": ..., ...} envelope.
func DecodeAction(raw []byte) (Action, error) {
	actionType, err := entity.ActionType(raw)
	if err != nil {
		return nil, err
	}

	switch actionType {
	case ActionPlace:
		return entity.DecodeAs[Place](raw)
	default:
		return nil, entity.UnknownActionType(actionType)
	}
}
