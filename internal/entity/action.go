package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
)

// ActionType - reads the "type" tag of an action envelope.
func ActionType(raw []byte) (string, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrMalformedAction, err)
	}

	return envelope.Type, nil
}

// DecodeAs - decodes the envelope payload into T.
func DecodeAs[T any](raw []byte) (T, error) {
	var act T
	if err := json.Unmarshal(raw, &act); err != nil {
		return act, fmt.Errorf("%w: %w", apperror.ErrMalformedAction, err)
	}

	return act, nil
}

// UnknownActionType - error for an envelope tag no reducer knows.
func UnknownActionType(actionType string) error {
	return fmt.Errorf("%w: %q", apperror.ErrUnknownAction, actionType)
}
