package job

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid job status transition")

// Action is an admin moderation verb.
type Action string

const (
	ActionApprove   Action = "approve"
	ActionReject    Action = "reject"
	ActionSuspend   Action = "suspend"
	ActionFeature   Action = "feature"
	ActionUnfeature Action = "unfeature"
	ActionClose     Action = "close"
)

var actionTargets = map[Action]Status{
	ActionApprove: StatusOpen,
	ActionReject:  StatusCancelled,
	ActionSuspend: StatusCancelled,
	ActionClose:   StatusCancelled,
}

func ParseAction(raw string) (Action, bool) {
	a := Action(raw)
	switch a {
	case ActionApprove, ActionReject, ActionSuspend, ActionFeature, ActionUnfeature, ActionClose:
		return a, true
	}
	return "", false
}

// Notifies reports whether the job owner is told about the outcome.
func (a Action) Notifies() bool {
	return a == ActionApprove || a == ActionReject
}

// Apply performs the action on j. Status changes go through CanTransition.
func (a Action) Apply(j *Job) error {
	if target, ok := actionTargets[a]; ok {
		if !CanTransition(j.Status, target) {
			return fmt.Errorf("%w: %s a job that is %s", ErrInvalidTransition, a, j.Status)
		}
		j.Status = target
		if target == StatusCancelled {
			j.Featured = false
		}
		return nil
	}

	if j.Status.IsTerminal() {
		return fmt.Errorf("%w: %s a job that is %s", ErrInvalidTransition, a, j.Status)
	}
	switch a {
	case ActionFeature:
		j.Featured = true
	case ActionUnfeature:
		j.Featured = false
	}
	return nil
}
