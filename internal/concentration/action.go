package concentration

import "github.com/rocketscienceinc/tabletop-backend/internal/entity"

const (
	ActionReveal  = "reveal"
	ActionConceal = "conceal"
)

type Action interface {
	Type() string
}

type RevealCard struct {
	Index int `json:"index"`
}

func (RevealCard) Type() string { return ActionReveal }

// ConcealCards - sent by the presentation once a mismatched pair has been shown long enough.
type ConcealCards struct{}

func (ConcealCards) Type() string { return ActionConceal }

func DecodeAction(raw []byte) (Action, error) {
	actionType, err := entity.ActionType(raw)
	if err != nil {
		return nil, err
	}

	switch actionType {
	case ActionReveal:
		return entity.DecodeAs[RevealCard](raw)
	case ActionConceal:
		return ConcealCards{}, nil
	default:
		return nil, entity.UnknownActionType(actionType)
	}
}
