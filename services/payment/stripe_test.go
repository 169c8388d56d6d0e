package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeEvent(t *testing.T) {
	ev, settled := OutcomeSucceeded.Event()
	assert.True(t, settled)
	assert.Equal(t, EventSucceed, ev)

	ev, settled = OutcomeFailed.Event()
	assert.True(t, settled)
	assert.Equal(t, EventFail, ev)

	// A processing intent settles nothing; the attempt stays pending.
	_, settled = OutcomePending.Event()
	assert.False(t, settled)
}

func TestSettledOutcomesDriveTerminalStates(t *testing.T) {
	for outcome, want := range map[Outcome]LocalState{
		OutcomeSucceeded: StateLocalCompleted,
		OutcomeFailed:    StateLocalFailed,
	} {
		ev, settled := outcome.Event()
		assert.True(t, settled)
		next, err := Transition(StateLocalPending, ev)
		assert.NoError(t, err)
		assert.Equal(t, want, next, string(outcome))
	}
}
