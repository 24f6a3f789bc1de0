package engine

import "fmt"

// ValidationReport - result of Validate.
type ValidationReport struct {
	Valid bool `json:"valid"`
	// Index of the first offending action, -1 when the sequence is valid.
	Index  int    `json:"index"`
	Reason string `json:"reason,omitempty"`
}

// Validate - replays actions from the initial state and reports the first one that failed
// or left the state unchanged according to same.
func (that *Engine[S, A]) Validate(actions []A, same func(prev, next S) bool) ValidationReport {
	state := that.initial

	for i, action := range actions {
		next, err := that.reducer(state, action)
		if err != nil {
			return ValidationReport{Index: i, Reason: err.Error()}
		}

		if same != nil && same(state, next) {
			return ValidationReport{Index: i, Reason: fmt.Sprintf("action %d did not change the state", i)}
		}

		state = next
	}

	return ValidationReport{Valid: true, Index: -1}
}
