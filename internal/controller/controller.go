package controller

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tabletop-backend/internal/engine"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

// Controller - what the presentation layer sees of a running game.
type Controller interface {
	Name() string
	State() any
	Dispatch(raw []byte) error
	Reset()
	DisplayStatus() string

	SetHints(enabled bool)
	HintsEnabled() bool
	Select(pos *entity.Position)
	HintState() entity.HintState

	Undo() bool
	Redo() bool
	CanUndo() bool
	CanRedo() bool

	Len() int
	StateAt(i int) (any, error)
	Restore(actions []json.RawMessage, cursor int) error
}

type Action interface {
	Type() string
}

type (
	statusFunc[S any] func(state S) string
	hintFunc[S any]   func(state S, selected *entity.Position) []entity.HintOverlay
)

// Game - Controller over any reducer. Per-game adapters embed it and add typed helpers.
type Game[S any, A Action] struct {
	name   string
	logger *slog.Logger
	engine *engine.Engine[S, A]

	decode func(raw []byte) (A, error)
	status statusFunc[S]
	hints  hintFunc[S]

	hintsEnabled bool
	selected     *entity.Position
}

func newGame[S any, A Action](
	name string,
	logger *slog.Logger,
	reducer engine.Reducer[S, A],
	initial S,
	decode func([]byte) (A, error),
	status statusFunc[S],
	hints hintFunc[S],
) *Game[S, A] {
	return &Game[S, A]{
		name:   name,
		logger: logger.With("component", "controller", "game", name),
		engine: engine.New(reducer, initial),
		decode: decode,
		status: status,
		hints:  hints,
	}
}

func (that *Game[S, A]) Name() string {
	return that.name
}

func (that *Game[S, A]) State() any {
	return that.engine.State()
}

// Current - typed snapshot.
func (that *Game[S, A]) Current() S {
	return that.engine.State()
}

// Dispatch - decodes a wire action and applies it.
func (that *Game[S, A]) Dispatch(raw []byte) error {
	action, err := that.decode(raw)
	if err != nil {
		that.logger.Debug("could not decode action", "error", err)
		return fmt.Errorf("failed to decode action: %w", err)
	}

	return that.Apply(action)
}

// Apply - dispatches a typed action. A rejected action leaves the state as it was.
func (that *Game[S, A]) Apply(action A) error {
	before := that.engine.State()

	if err := that.engine.Dispatch(action); err != nil {
		that.logger.Debug("action rejected", "action", action.Type(), "error", err)
		return err
	}

	if any(before) == any(that.engine.State()) {
		that.logger.Debug("action ignored", "action", action.Type())
		return nil
	}

	that.selected = nil
	that.logger.Debug("action applied", "action", action.Type(), "history", that.engine.Len())

	return nil
}

// Restore - rebuilds the game from a stored action log, actions past cursor stay redoable.
func (that *Game[S, A]) Restore(raw []json.RawMessage, cursor int) error {
	actions := make([]A, 0, len(raw))
	for i, item := range raw {
		action, err := that.decode(item)
		if err != nil {
			return fmt.Errorf("failed to decode action %d: %w", i, err)
		}
		actions = append(actions, action)
	}

	if err := that.engine.Load(actions, cursor); err != nil {
		return fmt.Errorf("failed to restore game: %w", err)
	}

	that.selected = nil

	return nil
}

func (that *Game[S, A]) Reset() {
	that.engine.Reset()
	that.selected = nil
	that.logger.Debug("game reset")
}

func (that *Game[S, A]) DisplayStatus() string {
	return that.status(that.engine.State())
}

func (that *Game[S, A]) SetHints(enabled bool) {
	that.hintsEnabled = enabled
}

func (that *Game[S, A]) HintsEnabled() bool {
	return that.hintsEnabled
}

// Select - marks a cell whose hints should be shown, nil clears it.
func (that *Game[S, A]) Select(pos *entity.Position) {
	if pos == nil {
		that.selected = nil
		return
	}

	selected := *pos
	that.selected = &selected
}

func (that *Game[S, A]) Selected() *entity.Position {
	return that.selected
}

func (that *Game[S, A]) HintState() entity.HintState {
	hintState := entity.HintState{
		Enabled:  that.hintsEnabled,
		Selected: that.selected,
		Overlays: []entity.HintOverlay{},
	}

	if that.hintsEnabled && that.hints != nil {
		if overlays := that.hints(that.engine.State(), that.selected); overlays != nil {
			hintState.Overlays = overlays
		}
	}

	return hintState
}

func (that *Game[S, A]) Undo() bool {
	that.selected = nil
	return that.engine.Undo()
}

func (that *Game[S, A]) Redo() bool {
	that.selected = nil
	return that.engine.Redo()
}

func (that *Game[S, A]) CanUndo() bool {
	return that.engine.CanUndo()
}

func (that *Game[S, A]) CanRedo() bool {
	return that.engine.CanRedo()
}

func (that *Game[S, A]) Len() int {
	return that.engine.Len()
}

func (that *Game[S, A]) StateAt(i int) (any, error) {
	return that.engine.StateAt(i)
}

// Validate - checks an action sequence against the initial state.
func (that *Game[S, A]) Validate(actions []A) engine.ValidationReport {
	return that.engine.Validate(actions, func(prev, next S) bool { return any(prev) == any(next) })
}
