package dotsandboxes

import "github.com/rocketscienceinc/tabletop-backend/internal/entity"

const ActionDrawLine = "draw_line"

type Action interface {
	Type() string
}

type DrawLine struct {
	LineType LineType `json:"line_type"`
	Row      int      `json:"row"`
	Col      int      `json:"col"`
}

func (DrawLine) Type() string { return ActionDrawLine }

func DecodeAction(raw []byte) (Action, error) {
	actionType, err := entity.ActionType(raw)
	if err != nil {
		return nil, err
	}

	switch actionType {
	case ActionDrawLine:
		return entity.DecodeAs[DrawLine](raw)
	default:
		return nil, entity.UnknownActionType(actionType)
	}
}
