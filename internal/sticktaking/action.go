package sticktaking

import "github.com/rocketscienceinc/tabletop-backend/internal/entity"

const (
	ActionSelect = "select"
	ActionTake   = "take"
)

type Action interface {
	Type() string
}

type SelectStick struct {
	Row     int `json:"row"`
	StickID int `json:"stick_id"`
}

func (SelectStick) Type() string { return ActionSelect }

type TakeSticks struct{}

func (TakeSticks) Type() string { return ActionTake }

func DecodeAction(raw []byte) (Action, error) {
	actionType, err := entity.ActionType(raw)
	if err != nil {
		return nil, err
	}

	switch actionType {
	case ActionSelect:
		return entity.DecodeAs[SelectStick](raw)
	case ActionTake:
		return TakeSticks{}, nil
	default:
		return nil, entity.UnknownActionType(actionType)
	}
}
