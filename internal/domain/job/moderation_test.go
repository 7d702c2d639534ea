package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	for _, raw := range []string{"approve", "reject", "suspend", "feature", "unfeature", "close"} {
		a, ok := ParseAction(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, Action(raw), a)
	}
	_, ok := ParseAction("delete")
	assert.False(t, ok)
	_, ok = ParseAction("")
	assert.False(t, ok)
}

func TestActionApply_StatusChanges(t *testing.T) {
	cases := []struct {
		name   string
		from   Status
		action Action
		want   Status
	}{
		{"approve draft", StatusDraft, ActionApprove, StatusOpen},
		{"reject draft", StatusDraft, ActionReject, StatusCancelled},
		{"suspend open", StatusOpen, ActionSuspend, StatusCancelled},
		{"close in progress", StatusInProgress, ActionClose, StatusCancelled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := &Job{Status: tc.from, Featured: true}
			assert.NoError(t, tc.action.Apply(j))
			assert.Equal(t, tc.want, j.Status)
			if tc.want == StatusCancelled {
				assert.False(t, j.Featured)
			}
		})
	}
}

func TestActionApply_IllegalMoves(t *testing.T) {
	cases := []struct {
		from   Status
		action Action
	}{
		{StatusOpen, ActionApprove},
		{StatusCompleted, ActionReject},
		{StatusCancelled, ActionApprove},
		{StatusCompleted, ActionFeature},
	}
	for _, tc := range cases {
		j := &Job{Status: tc.from}
		err := tc.action.Apply(j)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, tc.from, j.Status)
	}
}

func TestActionApply_Feature(t *testing.T) {
	j := &Job{Status: StatusOpen}
	assert.NoError(t, ActionFeature.Apply(j))
	assert.True(t, j.Featured)
	assert.Equal(t, StatusOpen, j.Status)

	assert.NoError(t, ActionUnfeature.Apply(j))
	assert.False(t, j.Featured)
}
