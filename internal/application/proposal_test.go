package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/freelance-market/internal/domain/contract"
	"github.com/linskybing/freelance-market/internal/domain/job"
	"github.com/linskybing/freelance-market/internal/domain/notification"
	"github.com/linskybing/freelance-market/internal/domain/proposal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProposalService(t *testing.T) (*ProposalService, *mocks, *recordingPublisher) {
	repos, m := setupRepos(t)
	pub := &recordingPublisher{}
	return NewProposalService(repos, NewNotificationService(repos, pub)), m, pub
}

func openJob() *job.Job {
	return &job.Job{
		ID: 3, ClientID: 7, Title: "API", Status: job.StatusOpen,
		Budget:     job.Budget{Amount: 1000, Min: 800, Max: 1000, Currency: "HBAR"},
		Milestones: job.DefaultMilestones(1000),
	}
}

func TestSubmitProposal(t *testing.T) {
	svc, m, pub := setupProposalService(t)

	m.job.EXPECT().GetByID(gomock.Any(), uint(3)).Return(openJob(), nil)
	m.contract.EXPECT().HasLiveForJob(gomock.Any(), uint(3)).Return(false, nil)
	m.proposal.EXPECT().HasPending(gomock.Any(), uint(3), uint(9)).Return(false, nil)
	m.proposal.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *proposal.Proposal) error {
		p.ID = 40
		return nil
	})
	m.notification.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *notification.Notification) error {
		assert.Equal(t, notification.TypeProposalReceived, n.Type)
		assert.Equal(t, uint(7), n.RecipientID)
		return nil
	})

	p, err := svc.Submit(context.Background(), freelancerActor, 3, proposal.CreateProposalInput{CoverLetter: " hi ", BidAmount: 900})
	require.NoError(t, err)
	assert.Equal(t, uint(40), p.ID)
	assert.Equal(t, "hi", p.CoverLetter)
	assert.Equal(t, proposal.StatusPending, p.Status)
	assert.Len(t, pub.published, 1)
}

func TestSubmitProposal_Rejections(t *testing.T) {
	t.Run("job not open", func(t *testing.T) {
		svc, m, _ := setupProposalService(t)
		j := openJob()
		j.Status = job.StatusDraft
		m.job.EXPECT().GetByID(gomock.Any(), uint(3)).Return(j, nil)

		_, err := svc.Submit(context.Background(), freelancerActor, 3, proposal.CreateProposalInput{BidAmount: 1})
		assert.ErrorIs(t, err, ErrJobNotOpen)
	})
	t.Run("duplicate", func(t *testing.T) {
		svc, m, _ := setupProposalService(t)
		m.job.EXPECT().GetByID(gomock.Any(), uint(3)).Return(openJob(), nil)
		m.contract.EXPECT().HasLiveForJob(gomock.Any(), uint(3)).Return(false, nil)
		m.proposal.EXPECT().HasPending(gomock.Any(), uint(3), uint(9)).Return(true, nil)

		_, err := svc.Submit(context.Background(), freelancerActor, 3, proposal.CreateProposalInput{BidAmount: 1})
		assert.ErrorIs(t, err, ErrDuplicateProposal)
	})
	t.Run("job already contracted", func(t *testing.T) {
		svc, m, _ := setupProposalService(t)
		m.job.EXPECT().GetByID(gomock.Any(), uint(3)).Return(openJob(), nil)
		m.contract.EXPECT().HasLiveForJob(gomock.Any(), uint(3)).Return(true, nil)

		_, err := svc.Submit(context.Background(), freelancerActor, 3, proposal.CreateProposalInput{BidAmount: 1})
		assert.ErrorIs(t, err, ErrJobTaken)
	})
	t.Run("missing job", func(t *testing.T) {
		svc, m, _ := setupProposalService(t)
		m.job.EXPECT().GetByID(gomock.Any(), uint(3)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Submit(context.Background(), freelancerActor, 3, proposal.CreateProposalInput{BidAmount: 1})
		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}

func TestListProposalsForJob_OwnerOnly(t *testing.T) {
	svc, m, _ := setupProposalService(t)
	m.job.EXPECT().GetByID(gomock.Any(), uint(3)).Return(openJob(), nil).Times(3)
	m.proposal.EXPECT().ListByJob(gomock.Any(), uint(3)).Return([]proposal.Proposal{{ID: 1}}, nil).Times(2)

	_, err := svc.ListForJob(context.Background(), 3, 8, "client")
	assert.ErrorIs(t, err, ErrForbidden)

	ps, err := svc.ListForJob(context.Background(), 3, 7, "client")
	require.NoError(t, err)
	assert.Len(t, ps, 1)

	_, err = svc.ListForJob(context.Background(), 3, 1, "admin")
	assert.NoError(t, err)
}

func TestWithdrawProposal(t *testing.T) {
	svc, m, _ := setupProposalService(t)

	m.proposal.EXPECT().GetByID(gomock.Any(), uint(40)).Return(&proposal.Proposal{ID: 40, FreelancerID: 10, Status: proposal.StatusPending}, nil)
	assert.ErrorIs(t, svc.Withdraw(context.Background(), freelancerActor, 40), ErrForbidden)

	m.proposal.EXPECT().GetByID(gomock.Any(), uint(41)).Return(&proposal.Proposal{ID: 41, FreelancerID: 9, Status: proposal.StatusRejected}, nil)
	assert.ErrorIs(t, svc.Withdraw(context.Background(), freelancerActor, 41), ErrProposalNotPending)

	m.proposal.EXPECT().GetByID(gomock.Any(), uint(42)).Return(&proposal.Proposal{ID: 42, FreelancerID: 9, Status: proposal.StatusPending}, nil)
	m.proposal.EXPECT().UpdateStatus(gomock.Any(), uint(42), proposal.StatusWithdrawn).Return(nil)
	assert.NoError(t, svc.Withdraw(context.Background(), freelancerActor, 42))
}

func TestAcceptProposal(t *testing.T) {
	svc, m, pub := setupProposalService(t)

	m.proposal.EXPECT().GetByID(gomock.Any(), uint(40)).Return(&proposal.Proposal{ID: 40, JobID: 3, FreelancerID: 9, BidAmount: 900, Status: proposal.StatusPending}, nil)
	m.job.EXPECT().GetByIDForUpdate(gomock.Any(), uint(3)).Return(openJob(), nil)
	m.contract.EXPECT().HasLiveForJob(gomock.Any(), uint(3)).Return(false, nil)
	m.proposal.EXPECT().UpdateStatus(gomock.Any(), uint(40), proposal.StatusAccepted).Return(nil)
	m.proposal.EXPECT().RejectPendingExcept(gomock.Any(), uint(3), uint(40)).Return(int64(2), nil)
	m.contract.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *contract.Contract) error {
		c.ID = 70
		return nil
	})
	m.notification.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	c, err := svc.Accept(context.Background(), clientActor, 40)
	require.NoError(t, err)
	assert.Equal(t, uint(70), c.ID)
	assert.Equal(t, contract.StatusPendingSignatures, c.Status)
	assert.Equal(t, 900.0, c.Amount)
	assert.Equal(t, uint(9), c.FreelancerID)
	require.Len(t, c.Milestones, 3)
	assert.Equal(t, 270.0, c.Milestones[0].Amount)
	require.Len(t, pub.published, 1)
	assert.Equal(t, uint(9), pub.published[0].RecipientID)
}

func TestAcceptProposal_NotOwner(t *testing.T) {
	svc, m, _ := setupProposalService(t)

	m.proposal.EXPECT().GetByID(gomock.Any(), uint(40)).Return(&proposal.Proposal{ID: 40, JobID: 3, Status: proposal.StatusPending}, nil)
	m.job.EXPECT().GetByIDForUpdate(gomock.Any(), uint(3)).Return(&job.Job{ID: 3, ClientID: 99, Status: job.StatusOpen}, nil)

	_, err := svc.Accept(context.Background(), clientActor, 40)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAcceptProposal_SecondAcceptRefused(t *testing.T) {
	svc, m, pub := setupProposalService(t)

	// A second pending bid on a job whose first contract is still live.
	m.proposal.EXPECT().GetByID(gomock.Any(), uint(41)).Return(&proposal.Proposal{ID: 41, JobID: 3, FreelancerID: 10, BidAmount: 950, Status: proposal.StatusPending}, nil)
	m.job.EXPECT().GetByIDForUpdate(gomock.Any(), uint(3)).Return(openJob(), nil)
	m.contract.EXPECT().HasLiveForJob(gomock.Any(), uint(3)).Return(true, nil)

	_, err := svc.Accept(context.Background(), clientActor, 41)
	assert.ErrorIs(t, err, ErrJobTaken)
	assert.Empty(t, pub.published)
}
