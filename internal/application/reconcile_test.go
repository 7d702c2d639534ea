package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/freelance-market/internal/domain/contract"
	"github.com/linskybing/freelance-market/internal/domain/job"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReconcileRun(t *testing.T) {
	for _, dryRun := range []bool{false, true} {
		repos, m := setupRepos(t)
		listings := newMemCache()
		svc := NewReconcileService(repos, listings)

		active := draftContract(contract.StatusActive)
		active.ID, active.JobID = 1, 10
		pending := draftContract(contract.StatusPendingSignatures)
		pending.ID, pending.JobID = 2, 11
		orphan := draftContract(contract.StatusActive)
		orphan.ID, orphan.JobID = 3, 12

		drifted := &job.Job{ID: 10, Status: job.StatusOpen}
		m.contract.EXPECT().ListAfter(gomock.Any(), uint(0), reconcileBatchSize).
			Return([]contract.Contract{*active, *pending, *orphan}, nil)
		m.job.EXPECT().GetByID(gomock.Any(), uint(10)).Return(drifted, nil)
		m.job.EXPECT().GetByID(gomock.Any(), uint(11)).Return(&job.Job{ID: 11, Status: job.StatusOpen}, nil)
		m.job.EXPECT().GetByID(gomock.Any(), uint(12)).Return(nil, gorm.ErrRecordNotFound)
		if !dryRun {
			m.job.EXPECT().Update(gomock.Any(), drifted).Return(nil)
		}

		report, err := svc.Run(context.Background(), dryRun)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Scanned)
		assert.Equal(t, 1, report.Changed)
		assert.Equal(t, []uint{10}, report.JobIDs)
		assert.Equal(t, job.StatusInProgress, drifted.Status)
		if dryRun {
			assert.Zero(t, listings.invalidated)
		} else {
			assert.Equal(t, 1, listings.invalidated)
		}
	}
}

func TestReconcileRun_ClosedJobIsNotReopened(t *testing.T) {
	repos, m := setupRepos(t)
	listings := newMemCache()
	svc := NewReconcileService(repos, listings)

	funded := draftContract(contract.StatusActive)
	funded.ID, funded.JobID = 1, 10
	done := draftContract(contract.StatusCompleted)
	done.ID, done.JobID = 2, 11

	cancelled := &job.Job{ID: 10, ClientID: 7, Status: job.StatusCancelled}
	closed := &job.Job{ID: 11, ClientID: 7, Status: job.StatusCancelled}
	m.contract.EXPECT().ListAfter(gomock.Any(), uint(0), reconcileBatchSize).
		Return([]contract.Contract{*funded, *done}, nil)
	m.job.EXPECT().GetByID(gomock.Any(), uint(10)).Return(cancelled, nil)
	m.job.EXPECT().GetByID(gomock.Any(), uint(11)).Return(closed, nil)

	report, err := svc.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Zero(t, report.Changed)
	assert.Empty(t, report.JobIDs)
	assert.Equal(t, []uint{1, 2}, report.Conflicts)
	assert.Equal(t, job.StatusCancelled, cancelled.Status)
	assert.Nil(t, cancelled.FreelancerID)
	assert.Equal(t, job.StatusCancelled, closed.Status)
	assert.Zero(t, listings.invalidated)
}

func TestReconcileRun_Pages(t *testing.T) {
	repos, m := setupRepos(t)
	svc := NewReconcileService(repos, nil)

	full := make([]contract.Contract, reconcileBatchSize)
	for i := range full {
		full[i] = contract.Contract{ID: uint(i + 1), JobID: 500, Status: contract.StatusPendingSignatures}
	}
	gomock.InOrder(
		m.contract.EXPECT().ListAfter(gomock.Any(), uint(0), reconcileBatchSize).Return(full, nil),
		m.contract.EXPECT().ListAfter(gomock.Any(), uint(reconcileBatchSize), reconcileBatchSize).Return(nil, nil),
	)
	m.job.EXPECT().GetByID(gomock.Any(), uint(500)).Return(&job.Job{ID: 500, Status: job.StatusOpen}, nil).Times(reconcileBatchSize)

	report, err := svc.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, reconcileBatchSize, report.Scanned)
	assert.Zero(t, report.Changed)
}
