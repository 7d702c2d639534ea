package contract

import (
	"errors"
	"fmt"
	"time"

	"github.com/linskybing/freelance-market/internal/domain/job"
	"github.com/linskybing/freelance-market/internal/domain/proposal"
	"gorm.io/datatypes"
)

var (
	ErrInvalidState     = errors.New("contract is not in a state that allows this")
	ErrAlreadySigned    = errors.New("contract already signed by this party")
	ErrUnderfunded      = errors.New("escrow amount is below the contract amount")
	ErrMilestoneIndex   = errors.New("milestone index out of range")
	ErrMilestoneDone    = errors.New("milestone already completed")
	ErrMissingSignature = errors.New("wallet address and signature are required")
)

// New drafts a contract for an accepted proposal. The job's milestones are
// rebased onto the bid amount.
func New(j *job.Job, p *proposal.Proposal) *Contract {
	return &Contract{
		JobID:        j.ID,
		ProposalID:   p.ID,
		ClientID:     j.ClientID,
		FreelancerID: p.FreelancerID,
		Title:        j.Title,
		Amount:       p.BidAmount,
		Currency:     j.Budget.Currency,
		Milestones:   job.ScaleMilestones(j.Milestones, p.BidAmount),
		Signatures:   datatypes.NewJSONType(Signatures{}),
		Escrow:       datatypes.NewJSONType(Escrow{}),
		Status:       StatusPendingSignatures,
	}
}

// Sign records party's signature. When both sides have signed the contract
// becomes signed.
func (c *Contract) Sign(party Party, wallet, signature string, now time.Time) error {
	if c.Status != StatusDraft && c.Status != StatusPendingSignatures {
		return fmt.Errorf("%w: sign while %s", ErrInvalidState, c.Status)
	}
	if wallet == "" || signature == "" {
		return ErrMissingSignature
	}

	sigs := c.Signatures.Data()
	target := &sigs.Client
	if party == PartyFreelancer {
		target = &sigs.Freelancer
	}
	if target.Signed {
		return ErrAlreadySigned
	}
	signedAt := now
	*target = Signature{Signed: true, SignedAt: &signedAt, WalletAddress: wallet, Signature: signature}
	c.Signatures = datatypes.NewJSONType(sigs)

	if sigs.Client.Signed && sigs.Freelancer.Signed {
		c.Status = StatusSigned
	} else {
		c.Status = StatusPendingSignatures
	}
	return nil
}

// Fund records the escrow deposit and activates a signed contract.
func (c *Contract) Fund(txHash string, amount float64, now time.Time) error {
	if c.Status != StatusSigned {
		return fmt.Errorf("%w: fund while %s", ErrInvalidState, c.Status)
	}
	if amount < c.Amount {
		return fmt.Errorf("%w: got %.2f, need %.2f", ErrUnderfunded, amount, c.Amount)
	}
	fundedAt := now
	c.Escrow = datatypes.NewJSONType(Escrow{Funded: true, Amount: amount, TxHash: txHash, FundedAt: &fundedAt})
	c.Status = StatusActive
	return nil
}

// CompleteMilestone marks milestone index as done and releases its amount.
// Completing the last open milestone completes the contract.
func (c *Contract) CompleteMilestone(index int, now time.Time) error {
	if c.Status != StatusActive {
		return fmt.Errorf("%w: complete milestone while %s", ErrInvalidState, c.Status)
	}
	if index < 0 || index >= len(c.Milestones) {
		return ErrMilestoneIndex
	}
	if c.Milestones[index].Completed {
		return ErrMilestoneDone
	}

	milestones := make(datatypes.JSONSlice[job.Milestone], len(c.Milestones))
	copy(milestones, c.Milestones)
	doneAt := now
	milestones[index].Completed = true
	milestones[index].CompletedAt = &doneAt
	c.Milestones = milestones

	escrow := c.Escrow.Data()
	escrow.Released += milestones[index].Amount
	c.Escrow = datatypes.NewJSONType(escrow)

	for _, m := range milestones {
		if !m.Completed {
			return nil
		}
	}
	c.Status = StatusCompleted
	return nil
}

func (c *Contract) Cancel() error {
	if c.Status.IsFinal() {
		return fmt.Errorf("%w: cancel while %s", ErrInvalidState, c.Status)
	}
	c.Status = StatusCancelled
	return nil
}
