package contract

import (
	"errors"
	"fmt"

	"github.com/linskybing/freelance-market/internal/domain/job"
)

// ErrJobDiverged means the job has left the path the contract would move it
// along, for example a job closed by an admin while the contract was funded.
var ErrJobDiverged = errors.New("job status no longer follows its contract")

// ApplyToJob derives the job's status, freelancer, milestones and progress
// from c and reports whether anything changed. Contracts that are not yet
// funded leave the job open. The job only moves along the status machine;
// when it cannot reach the contract's status it is left untouched and
// ErrJobDiverged is returned.
func ApplyToJob(c *Contract, j *job.Job) (bool, error) {
	target, ok := jobStatusFor(c, j)
	if !ok {
		return false, nil
	}
	if !job.CanReach(j.Status, target) {
		return false, fmt.Errorf("%w: job %d is %s, contract %d is %s", ErrJobDiverged, j.ID, j.Status, c.ID, c.Status)
	}

	before := snapshot(j)
	j.Status = target
	switch c.Status {
	case StatusActive, StatusDisputed:
		assign(c, j)
	case StatusCompleted:
		assign(c, j)
		j.Progress = 100
	}
	return snapshot(j) != before, nil
}

// jobStatusFor returns the job status c implies. A cancelled contract only
// cancels work that had started.
func jobStatusFor(c *Contract, j *job.Job) (job.Status, bool) {
	switch c.Status {
	case StatusActive, StatusDisputed:
		return job.StatusInProgress, true
	case StatusCompleted:
		return job.StatusCompleted, true
	case StatusCancelled:
		if j.Status == job.StatusInProgress {
			return job.StatusCancelled, true
		}
	}
	return "", false
}

func assign(c *Contract, j *job.Job) {
	freelancer := c.FreelancerID
	j.FreelancerID = &freelancer
	j.Milestones = append(j.Milestones[:0:0], c.Milestones...)
	j.Progress = job.Progress(c.Milestones)
}

type jobState struct {
	status     job.Status
	freelancer uint
	progress   int
	done       int
	milestones int
}

func snapshot(j *job.Job) jobState {
	s := jobState{status: j.Status, progress: j.Progress, milestones: len(j.Milestones)}
	if j.FreelancerID != nil {
		s.freelancer = *j.FreelancerID
	}
	for _, m := range j.Milestones {
		if m.Completed {
			s.done++
		}
	}
	return s
}
