package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tabletop-backend/internal/controller"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// SessionManager - runs games on top of stored action logs. Every call loads the log,
// rebuilds the controller by replay, applies the change and stores the log again.
type SessionManager struct {
	logger            *slog.Logger
	sessionRepo       sessionRepo
	defaultDifficulty entity.Difficulty

	locks sync.Map
	now   func() time.Time
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo, defaultDifficulty entity.Difficulty) *SessionManager {
	return &SessionManager{
		logger:            logger.With("component", "session-manager"),
		sessionRepo:       sessionRepo,
		defaultDifficulty: defaultDifficulty,
		now:               time.Now,
	}
}

func (that *SessionManager) Games() []entity.Manifest {
	return controller.Manifests()
}

// Create - starts a new session. A zero seed is replaced by a random one and kept with the session.
func (that *SessionManager) Create(ctx context.Context, game string, opts entity.Options) (*entity.Snapshot, error) {
	if opts.Difficulty == "" {
		opts.Difficulty = that.defaultDifficulty
	}

	if opts.Seed == 0 {
		opts.Seed = that.now().UnixNano()
	}

	ctrl, err := controller.New(game, that.logger, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	now := that.now().UTC()
	session := &entity.Session{
		ID:        uuid.NewString(),
		Game:      game,
		Options:   opts,
		Actions:   []json.RawMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	that.logger.Info("session created", "session", session.ID, "game", game, "difficulty", opts.Difficulty)

	return snapshot(session, ctrl), nil
}

func (that *SessionManager) Get(ctx context.Context, id string) (*entity.Snapshot, error) {
	session, ctrl, err := that.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return snapshot(session, ctrl), nil
}

// Dispatch - applies a wire action. Rejected actions are not stored.
func (that *SessionManager) Dispatch(ctx context.Context, id string, raw json.RawMessage) (*entity.Snapshot, error) {
	return that.update(ctx, id, func(session *entity.Session, ctrl controller.Controller) error {
		if err := ctrl.Dispatch(raw); err != nil {
			return err
		}

		session.Actions = append(session.Actions[:session.Cursor:session.Cursor], raw)
		session.Cursor++

		return nil
	})
}

func (that *SessionManager) Reset(ctx context.Context, id string) (*entity.Snapshot, error) {
	return that.update(ctx, id, func(session *entity.Session, ctrl controller.Controller) error {
		ctrl.Reset()
		session.Actions = []json.RawMessage{}
		session.Cursor = 0

		return nil
	})
}

// Undo - steps one action back. With nothing to undo the snapshot is returned unchanged.
func (that *SessionManager) Undo(ctx context.Context, id string) (*entity.Snapshot, error) {
	return that.update(ctx, id, func(session *entity.Session, ctrl controller.Controller) error {
		if ctrl.Undo() {
			session.Cursor--
		}

		return nil
	})
}

func (that *SessionManager) Redo(ctx context.Context, id string) (*entity.Snapshot, error) {
	return that.update(ctx, id, func(session *entity.Session, ctrl controller.Controller) error {
		if ctrl.Redo() {
			session.Cursor++
		}

		return nil
	})
}

func (that *SessionManager) SetHints(ctx context.Context, id string, enabled bool) (*entity.Snapshot, error) {
	return that.update(ctx, id, func(_ *entity.Session, ctrl controller.Controller) error {
		ctrl.SetHints(enabled)
		return nil
	})
}

// Select - marks the cell hints are computed for, nil clears the selection.
func (that *SessionManager) Select(ctx context.Context, id string, pos *entity.Position) (*entity.Snapshot, error) {
	return that.update(ctx, id, func(_ *entity.Session, ctrl controller.Controller) error {
		ctrl.Select(pos)
		return nil
	})
}

// StateAt - the state after the first index actions of the active history.
func (that *SessionManager) StateAt(ctx context.Context, id string, index int) (any, error) {
	_, ctrl, err := that.load(ctx, id)
	if err != nil {
		return nil, err
	}

	state, err := ctrl.StateAt(index)
	if err != nil {
		return nil, fmt.Errorf("failed to replay history: %w", err)
	}

	return state, nil
}

func (that *SessionManager) Delete(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.locks.Delete(id)
	that.logger.Info("session deleted", "session", id)

	return nil
}

func (that *SessionManager) update(
	ctx context.Context,
	id string,
	change func(session *entity.Session, ctrl controller.Controller) error,
) (*entity.Snapshot, error) {
	unlock := that.lock(id)
	defer unlock()

	session, ctrl, err := that.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = change(session, ctrl); err != nil {
		return nil, err
	}

	hints := ctrl.HintState()
	session.HintsEnabled = hints.Enabled
	session.Selected = hints.Selected
	session.UpdatedAt = that.now().UTC()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return snapshot(session, ctrl), nil
}

// load - fetches the session and rebuilds its game by replaying the stored log.
func (that *SessionManager) load(ctx context.Context, id string) (*entity.Session, controller.Controller, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get session: %w", err)
	}

	ctrl, err := controller.New(session.Game, that.logger, session.Options)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = ctrl.Restore(session.Actions, session.Cursor); err != nil {
		that.logger.Error("stored history does not replay", "session", id, "error", err)
		return nil, nil, fmt.Errorf("failed to restore session %s: %w", id, err)
	}

	ctrl.SetHints(session.HintsEnabled)
	ctrl.Select(session.Selected)

	return session, ctrl, nil
}

func (that *SessionManager) lock(id string) func() {
	value, _ := that.locks.LoadOrStore(id, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}

func snapshot(session *entity.Session, ctrl controller.Controller) *entity.Snapshot {
	return &entity.Snapshot{
		SessionID:     session.ID,
		Game:          session.Game,
		State:         ctrl.State(),
		DisplayStatus: ctrl.DisplayStatus(),
		Hints:         ctrl.HintState(),
		CanUndo:       ctrl.CanUndo(),
		CanRedo:       ctrl.CanRedo(),
		HistoryLength: ctrl.Len(),
	}
}
