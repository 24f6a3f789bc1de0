package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

func (that *Server) handleState(ctx context.Context, sessionID string, _ json.RawMessage) (*entity.Snapshot, error) {
	return that.uSession.Get(ctx, sessionID)
}

// handleDispatch - payload is the action envelope itself, e.g. {"type":"place","row":0,"col":0}.
func (that *Server) handleDispatch(ctx context.Context, sessionID string, payload json.RawMessage) (*entity.Snapshot, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", apperror.ErrMalformedAction)
	}

	return that.uSession.Dispatch(ctx, sessionID, payload)
}

func (that *Server) handleUndo(ctx context.Context, sessionID string, _ json.RawMessage) (*entity.Snapshot, error) {
	return that.uSession.Undo(ctx, sessionID)
}

func (that *Server) handleRedo(ctx context.Context, sessionID string, _ json.RawMessage) (*entity.Snapshot, error) {
	return that.uSession.Redo(ctx, sessionID)
}

func (that *Server) handleReset(ctx context.Context, sessionID string, _ json.RawMessage) (*entity.Snapshot, error) {
	return that.uSession.Reset(ctx, sessionID)
}

func (that *Server) handleHints(ctx context.Context, sessionID string, payload json.RawMessage) (*entity.Snapshot, error) {
	var req hintsPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedAction, err)
	}

	return that.uSession.SetHints(ctx, sessionID, req.Enabled)
}

// handleSelect - payload is a position, null or missing clears the selection.
func (that *Server) handleSelect(ctx context.Context, sessionID string, payload json.RawMessage) (*entity.Snapshot, error) {
	var pos *entity.Position
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &pos); err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedAction, err)
		}
	}

	return that.uSession.Select(ctx, sessionID, pos)
}
