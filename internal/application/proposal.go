package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/internal/domain/audit"
	"github.com/linskybing/freelance-market/internal/domain/contract"
	"github.com/linskybing/freelance-market/internal/domain/job"
	"github.com/linskybing/freelance-market/internal/domain/notification"
	"github.com/linskybing/freelance-market/internal/domain/proposal"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/pkg/utils"
)

type ProposalService struct {
	Repos         *repository.Repos
	notifications *NotificationService
}

func NewProposalService(repos *repository.Repos, notifications *NotificationService) *ProposalService {
	return &ProposalService{
		Repos:         repos,
		notifications: notifications,
	}
}

func (s *ProposalService) getJob(ctx context.Context, repos *repository.Repos, id uint) (*job.Job, error) {
	j, err := repos.Job.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return j, nil
}

func (s *ProposalService) getProposal(ctx context.Context, repos *repository.Repos, id uint) (*proposal.Proposal, error) {
	p, err := repos.Proposal.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return p, nil
}

// Submit places a freelancer's bid on an open job.
func (s *ProposalService) Submit(ctx context.Context, actor audit.Actor, jobID uint, in proposal.CreateProposalInput) (*proposal.Proposal, error) {
	j, err := s.getJob(ctx, s.Repos, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != job.StatusOpen {
		return nil, ErrJobNotOpen
	}
	taken, err := s.Repos.Contract.HasLiveForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrJobTaken
	}

	dup, err := s.Repos.Proposal.HasPending(ctx, jobID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateProposal
	}

	p := &proposal.Proposal{
		JobID:             jobID,
		FreelancerID:      actor.UserID,
		CoverLetter:       strings.TrimSpace(in.CoverLetter),
		BidAmount:         in.BidAmount,
		EstimatedDuration: strings.TrimSpace(in.EstimatedDuration),
		Status:            proposal.StatusPending,
	}
	if err := s.Repos.Proposal.Create(ctx, p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, actor, "create", "proposal", strconv.FormatUint(uint64(p.ID), 10), nil, p, "", s.Repos.Audit)
	s.notifications.NotifyQuietly(ctx, &notification.Notification{
		RecipientID:   j.ClientID,
		RecipientRole: string(account.RoleClient),
		Type:          notification.TypeProposalReceived,
		Title:         "New proposal",
		Message:       fmt.Sprintf("A freelancer bid %.2f %s on %q.", p.BidAmount, j.Budget.Currency, j.Title),
		JobID:         &jobID,
	})
	return p, nil
}

// ListForJob returns the proposals on a job to its owner or an admin.
func (s *ProposalService) ListForJob(ctx context.Context, jobID, userID uint, role string) ([]proposal.Proposal, error) {
	j, err := s.getJob(ctx, s.Repos, jobID)
	if err != nil {
		return nil, err
	}
	if role != string(account.RoleAdmin) && !(role == string(account.RoleClient) && j.IsOwnedBy(userID)) {
		return nil, ErrForbidden
	}
	return s.Repos.Proposal.ListByJob(ctx, jobID)
}

func (s *ProposalService) ListMine(ctx context.Context, freelancerID uint) ([]proposal.Proposal, error) {
	return s.Repos.Proposal.ListByFreelancer(ctx, freelancerID)
}

// Withdraw retracts a pending proposal owned by the freelancer.
func (s *ProposalService) Withdraw(ctx context.Context, actor audit.Actor, id uint) error {
	p, err := s.getProposal(ctx, s.Repos, id)
	if err != nil {
		return err
	}
	if p.FreelancerID != actor.UserID {
		return ErrForbidden
	}
	if !p.IsPending() {
		return ErrProposalNotPending
	}
	if err := s.Repos.Proposal.UpdateStatus(ctx, id, proposal.StatusWithdrawn); err != nil {
		return err
	}
	utils.LogAuditWithConsole(ctx, actor, "withdraw", "proposal", strconv.FormatUint(uint64(id), 10), nil, nil, "", s.Repos.Audit)
	return nil
}

// Accept awards the job to the proposal's freelancer. The proposal is
// accepted, the other pending bids are rejected and a contract awaiting
// signatures is drafted, all in one transaction. The job row stays locked
// so a job never gets two live contracts.
func (s *ProposalService) Accept(ctx context.Context, actor audit.Actor, id uint) (*contract.Contract, error) {
	var (
		created *contract.Contract
		jobRow  *job.Job
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		p, err := s.getProposal(ctx, tx, id)
		if err != nil {
			return err
		}
		j, err := tx.Job.GetByIDForUpdate(ctx, p.JobID)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrJobNotFound
			}
			return err
		}
		if !j.IsOwnedBy(actor.UserID) {
			return ErrForbidden
		}
		if !p.IsPending() {
			return ErrProposalNotPending
		}
		if j.Status != job.StatusOpen {
			return ErrJobNotOpen
		}
		taken, err := tx.Contract.HasLiveForJob(ctx, j.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrJobTaken
		}

		if err := tx.Proposal.UpdateStatus(ctx, p.ID, proposal.StatusAccepted); err != nil {
			return err
		}
		p.Status = proposal.StatusAccepted
		if _, err := tx.Proposal.RejectPendingExcept(ctx, j.ID, p.ID); err != nil {
			return err
		}

		c := contract.New(j, p)
		if err := tx.Contract.Create(ctx, c); err != nil {
			return err
		}
		created, jobRow = c, j
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, actor, "accept", "proposal", strconv.FormatUint(uint64(id), 10), nil, created, "", s.Repos.Audit)
	jobID := jobRow.ID
	s.notifications.NotifyQuietly(ctx, &notification.Notification{
		RecipientID:   created.FreelancerID,
		RecipientRole: string(account.RoleFreelancer),
		Type:          notification.TypeProposalAccepted,
		Title:         "Proposal accepted",
		Message:       fmt.Sprintf("Your proposal for %q was accepted. Sign the contract to get started.", jobRow.Title),
		JobID:         &jobID,
	})
	return created, nil
}
