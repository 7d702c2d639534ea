package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/linskybing/freelance-market/internal/cache"
	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/internal/domain/audit"
	"github.com/linskybing/freelance-market/internal/domain/contract"
	"github.com/linskybing/freelance-market/internal/domain/notification"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/pkg/utils"
)

// ContractService drives contracts through signing, funding and delivery.
// Every mutation reconciles the job in the same transaction.
type ContractService struct {
	Repos         *repository.Repos
	notifications *NotificationService
	cache         ListingCache
	now           func() time.Time
}

func NewContractService(repos *repository.Repos, notifications *NotificationService, listings ListingCache, now func() time.Time) *ContractService {
	if listings == nil {
		listings = cache.Noop{}
	}
	if now == nil {
		now = time.Now
	}
	return &ContractService{
		Repos:         repos,
		notifications: notifications,
		cache:         listings,
		now:           now,
	}
}

// Get returns a contract to either party or an admin.
func (s *ContractService) Get(ctx context.Context, id, userID uint, role string) (*contract.Contract, error) {
	c, err := s.Repos.Contract.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	if role == string(account.RoleAdmin) {
		return c, nil
	}
	if _, ok := c.PartyOf(userID, role); !ok {
		return nil, ErrContractNotFound
	}
	return c, nil
}

func (s *ContractService) ListMine(ctx context.Context, userID uint, role string) ([]contract.Contract, error) {
	party := contract.Party(role)
	if party != contract.PartyClient && party != contract.PartyFreelancer {
		return nil, ErrForbidden
	}
	return s.Repos.Contract.ListByParty(ctx, userID, party)
}

// mutate locks the contract and its job, runs fn for the caller's party,
// stores the result and mirrors it onto the job. With needsLiveJob a closed
// job refuses the change with ErrJobNotOpen.
func (s *ContractService) mutate(ctx context.Context, actor audit.Actor, id uint, needsLiveJob bool, fn func(c *contract.Contract, party contract.Party) error) (*contract.Contract, error) {
	var out *contract.Contract
	var jobChanged bool
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		c, err := tx.Contract.GetByIDForUpdate(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrContractNotFound
			}
			return err
		}
		party, ok := c.PartyOf(actor.UserID, actor.Role)
		if !ok {
			return ErrForbidden
		}
		j, err := tx.Job.GetByIDForUpdate(ctx, c.JobID)
		if err != nil {
			return fmt.Errorf("load job %d for contract %d: %w", c.JobID, c.ID, err)
		}
		if needsLiveJob && j.Status.IsTerminal() {
			return ErrJobNotOpen
		}

		if err := fn(c, party); err != nil {
			return err
		}
		changed, err := contract.ApplyToJob(c, j)
		if err != nil {
			return err
		}
		if err := tx.Contract.Update(ctx, c); err != nil {
			return err
		}
		if changed {
			if err := tx.Job.Update(ctx, j); err != nil {
				return err
			}
		}
		out, jobChanged = c, changed
		return nil
	})
	if err != nil {
		return nil, err
	}
	if jobChanged {
		if err := s.cache.Invalidate(ctx); err != nil {
			slog.Warn("listing cache invalidation failed", "error", err)
		}
	}
	return out, nil
}

func (s *ContractService) Sign(ctx context.Context, actor audit.Actor, id uint, in contract.SignInput) (*contract.Contract, error) {
	var signer contract.Party
	c, err := s.mutate(ctx, actor, id, true, func(c *contract.Contract, party contract.Party) error {
		signer = party
		return c.Sign(party, in.WalletAddress, in.Signature, s.now())
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, actor, "sign", c)
	s.tell(ctx, c, counterpart(signer), notification.TypeContractSigned, "Contract signed",
		fmt.Sprintf("The %s signed the contract for %q.", signer, c.Title))
	return c, nil
}

// Fund records the client's escrow deposit and starts the work.
func (s *ContractService) Fund(ctx context.Context, actor audit.Actor, id uint, in contract.FundInput) (*contract.Contract, error) {
	c, err := s.mutate(ctx, actor, id, true, func(c *contract.Contract, party contract.Party) error {
		if party != contract.PartyClient {
			return ErrForbidden
		}
		return c.Fund(in.TxHash, in.Amount, s.now())
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, actor, "fund", c)
	s.tell(ctx, c, contract.PartyFreelancer, notification.TypeContractFunded, "Escrow funded",
		fmt.Sprintf("Escrow for %q is funded. Work can begin.", c.Title))
	return c, nil
}

// CompleteMilestone lets the client sign off one milestone.
func (s *ContractService) CompleteMilestone(ctx context.Context, actor audit.Actor, id uint, index int) (*contract.Contract, error) {
	c, err := s.mutate(ctx, actor, id, false, func(c *contract.Contract, party contract.Party) error {
		if party != contract.PartyClient {
			return ErrForbidden
		}
		return c.CompleteMilestone(index, s.now())
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, actor, "complete_milestone", c)
	s.tell(ctx, c, contract.PartyFreelancer, notification.TypeMilestoneDone, "Milestone completed",
		fmt.Sprintf("Milestone %q of %q was signed off.", c.Milestones[index].Name, c.Title))
	return c, nil
}

func (s *ContractService) Cancel(ctx context.Context, actor audit.Actor, id uint) (*contract.Contract, error) {
	var by contract.Party
	c, err := s.mutate(ctx, actor, id, false, func(c *contract.Contract, party contract.Party) error {
		by = party
		return c.Cancel()
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, actor, "cancel", c)
	s.tell(ctx, c, counterpart(by), notification.TypeContractEnded, "Contract cancelled",
		fmt.Sprintf("The %s cancelled the contract for %q.", by, c.Title))
	return c, nil
}

func (s *ContractService) record(ctx context.Context, actor audit.Actor, action string, c *contract.Contract) {
	utils.LogAuditWithConsole(ctx, actor, action, "contract", strconv.FormatUint(uint64(c.ID), 10), nil, c, "", s.Repos.Audit)
}

func (s *ContractService) tell(ctx context.Context, c *contract.Contract, to contract.Party, typ notification.Type, title, msg string) {
	recipient := c.ClientID
	if to == contract.PartyFreelancer {
		recipient = c.FreelancerID
	}
	jobID := c.JobID
	s.notifications.NotifyQuietly(ctx, &notification.Notification{
		RecipientID:   recipient,
		RecipientRole: string(to),
		Type:          typ,
		Title:         title,
		Message:       msg,
		JobID:         &jobID,
	})
}

func counterpart(p contract.Party) contract.Party {
	if p == contract.PartyClient {
		return contract.PartyFreelancer
	}
	return contract.PartyClient
}
