package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusDraft, StatusOpen, true},
		{StatusDraft, StatusCancelled, true},
		{StatusDraft, StatusInProgress, false},
		{StatusOpen, StatusInProgress, true},
		{StatusOpen, StatusCancelled, true},
		{StatusOpen, StatusDraft, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusInProgress, StatusOpen, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusOpen, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestStatusTerminalAndEditable(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusOpen.IsTerminal())

	assert.True(t, StatusDraft.Editable())
	assert.True(t, StatusOpen.Editable())
	assert.False(t, StatusInProgress.Editable())
	assert.False(t, Status("bogus").Valid())
}

func TestCanReach(t *testing.T) {
	assert.True(t, CanReach(StatusOpen, StatusOpen))
	assert.True(t, CanReach(StatusOpen, StatusInProgress))
	assert.True(t, CanReach(StatusOpen, StatusCompleted))
	assert.True(t, CanReach(StatusDraft, StatusCompleted))
	assert.False(t, CanReach(StatusCancelled, StatusInProgress))
	assert.False(t, CanReach(StatusCompleted, StatusInProgress))
	assert.False(t, CanReach(StatusInProgress, StatusOpen))
}
