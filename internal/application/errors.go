package application

import (
	"errors"

	"github.com/linskybing/freelance-market/internal/domain/job"
)

var (
	ErrForbidden = errors.New("forbidden")

	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidBudget     = errors.New("budgetMax must be greater than or equal to budgetMin")
	ErrInvalidJob        = errors.New("invalid job")
	ErrUnknownAction     = errors.New("unknown moderation action")
	ErrInvalidTransition = job.ErrInvalidTransition
	ErrJobInProgress     = errors.New("cannot delete a job that is in progress")
	ErrJobNotEditable    = errors.New("only draft or open jobs can be edited")
	ErrJobNotOpen        = errors.New("job is not open for proposals")
	ErrJobTaken          = errors.New("job already has a live contract")

	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountSuspended    = errors.New("account suspended")
	ErrReservedAccount     = errors.New("the reserved admin account cannot be changed this way")
	ErrStorageDisabled     = errors.New("file storage is not configured")
	ErrUnsupportedFileType = errors.New("avatar must be an image")
	ErrInvalidAdminSeed    = errors.New("admin seed needs an email and a password of at least 8 characters")

	ErrProposalNotFound   = errors.New("proposal not found")
	ErrDuplicateProposal  = errors.New("you already have a pending proposal for this job")
	ErrProposalNotPending = errors.New("proposal is no longer pending")

	ErrContractNotFound     = errors.New("contract not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
