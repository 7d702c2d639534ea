package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/freelance-market/internal/config"
	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/internal/domain/audit"
	"github.com/linskybing/freelance-market/internal/domain/job"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/types"
	"github.com/linskybing/freelance-market/pkg/utils"
)

type JobPage struct {
	Jobs       []job.Job           `json:"jobs"`
	Pagination response.Pagination `json:"pagination"`
}

type JobService struct {
	Repos  *repository.Repos
	cache  ListingCache
	policy config.Policy
	now    func() time.Time
}

func NewJobService(repos *repository.Repos, deps Deps) *JobService {
	deps.fill()
	return &JobService{
		Repos:  repos,
		cache:  deps.Cache,
		policy: deps.Policy,
		now:    deps.Now,
	}
}

// CategoryAliases returns the operator supplied category aliases.
func (s *JobService) CategoryAliases() map[string]string {
	return s.policy.CategoryAliases
}

func (s *JobService) getJob(ctx context.Context, repos *repository.Repos, id uint) (*job.Job, error) {
	j, err := repos.Job.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return j, nil
}

// ListPublic lists open jobs only, whatever the filter asks for. Pages are
// served from the listing cache when possible.
func (s *JobService) ListPublic(ctx context.Context, f job.Filter) (*JobPage, error) {
	open := job.StatusOpen
	f.Status = &open
	f.Flagged = nil
	f.ClientID = nil
	f.Normalize()

	key := listingKey(f)
	if raw, hit, err := s.cache.Get(ctx, key); err != nil {
		slog.Warn("listing cache read failed", "error", err)
	} else if hit {
		var page JobPage
		if err := json.Unmarshal(raw, &page); err == nil {
			return &page, nil
		}
	}

	page, err := s.list(ctx, f)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(page); err == nil {
		if err := s.cache.Set(ctx, key, raw); err != nil {
			slog.Warn("listing cache write failed", "error", err)
		}
	}
	return page, nil
}

// ListMine lists every job posted by clientID, any status.
func (s *JobService) ListMine(ctx context.Context, clientID uint, f job.Filter) (*JobPage, error) {
	f.ClientID = &clientID
	f.Flagged = nil
	f.Normalize()
	return s.list(ctx, f)
}

func (s *JobService) list(ctx context.Context, f job.Filter) (*JobPage, error) {
	jobs, total, err := s.Repos.Job.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []job.Job{}
	}
	return &JobPage{Jobs: jobs, Pagination: response.NewPagination(f.Page, f.Limit, total)}, nil
}

func listingKey(f job.Filter) string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(f.Page))
	v.Set("limit", strconv.Itoa(f.Limit))
	v.Set("category", string(f.Category))
	v.Set("search", strings.ToLower(strings.TrimSpace(f.Search)))
	v.Set("budgetType", string(f.BudgetType))
	v.Set("urgency", string(f.Urgency))
	if f.Featured != nil {
		v.Set("featured", strconv.FormatBool(*f.Featured))
	}
	return v.Encode()
}

// Get returns an open job to anyone. Other jobs are visible to their client,
// their freelancer and admins only.
func (s *JobService) Get(ctx context.Context, id uint, viewer *types.Claims) (*job.Job, error) {
	j, err := s.getJob(ctx, s.Repos, id)
	if err != nil {
		return nil, err
	}
	if j.Status == job.StatusOpen || canSeeJob(j, viewer) {
		return j, nil
	}
	return nil, ErrJobNotFound
}

func canSeeJob(j *job.Job, viewer *types.Claims) bool {
	if viewer == nil {
		return false
	}
	switch account.Role(viewer.Role) {
	case account.RoleAdmin:
		return true
	case account.RoleClient:
		return j.IsOwnedBy(viewer.UserID)
	case account.RoleFreelancer:
		return j.FreelancerID != nil && *j.FreelancerID == viewer.UserID
	}
	return false
}

// Create stores a new draft job awaiting admin approval.
func (s *JobService) Create(ctx context.Context, actor audit.Actor, in job.CreateJobInput) (*job.CreateResult, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrInvalidJob)
	}
	if in.BudgetMin == nil || in.BudgetMax == nil {
		return nil, fmt.Errorf("%w: budgetMin and budgetMax are required", ErrInvalidJob)
	}
	if *in.BudgetMax < *in.BudgetMin {
		return nil, ErrInvalidBudget
	}

	j := &job.Job{
		Title:       title,
		Description: description,
		Budget: job.Budget{
			Amount:   *in.BudgetMax,
			Min:      *in.BudgetMin,
			Max:      *in.BudgetMax,
			Currency: orDefault(in.Currency, job.CurrencyHBAR),
			Type:     job.BudgetType(orDefault(in.BudgetType, string(job.BudgetFixed))),
		},
		Skills:     account.CleanList(in.Skills),
		Category:   job.NormalizeCategory(in.Category, s.policy.CategoryAliases),
		Duration:   strings.TrimSpace(in.Duration),
		Urgency:    job.Urgency(orDefault(in.Urgency, string(job.UrgencyMedium))),
		Status:     job.StatusDraft,
		ClientID:   actor.UserID,
		Milestones: job.DefaultMilestones(*in.BudgetMax),
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if in.Featured && in.PaymentID != nil {
			paid, err := s.featurePaid(ctx, tx, actor.UserID, 0, *in.PaymentID)
			if err != nil {
				return err
			}
			if paid {
				j.Featured = true
				j.PaymentID = in.PaymentID
			}
		}
		if err := tx.Job.Create(ctx, j); err != nil {
			return err
		}
		if j.PaymentID != nil {
			return tx.Payment.LinkJob(ctx, *j.PaymentID, j.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	downgraded := in.Featured && !j.Featured
	if downgraded {
		slog.Info("featured request downgraded", "jobId", j.ID, "clientId", actor.UserID)
	}
	utils.LogAuditWithConsole(ctx, actor, "create", "job", strconv.FormatUint(uint64(j.ID), 10), nil, j, "", s.Repos.Audit)

	return &job.CreateResult{Job: j, FeatureDowngraded: downgraded}, nil
}

// featurePaid reports whether paymentID covers featuring the job. A missing
// payment is not an error, the feature is simply not granted.
func (s *JobService) featurePaid(ctx context.Context, repos *repository.Repos, clientID, jobID, paymentID uint) (bool, error) {
	p, err := repos.Payment.GetByID(ctx, paymentID)
	if err != nil {
		if repository.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return p.CanFeature(clientID, jobID, s.policy.FeaturedMinUSD, s.policy.HBARUSDRate), nil
}

// Update edits a draft or open job owned by the caller.
func (s *JobService) Update(ctx context.Context, actor audit.Actor, in job.UpdateJobInput) (*job.CreateResult, error) {
	var (
		before     job.Job
		downgraded bool
		updated    *job.Job
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		j, err := s.getJob(ctx, tx, in.ID)
		if err != nil {
			return err
		}
		if !j.IsOwnedBy(actor.UserID) {
			return ErrForbidden
		}
		if !j.Status.Editable() {
			return ErrJobNotEditable
		}
		before = *j

		if err := s.applyUpdate(j, in); err != nil {
			return err
		}

		if in.Featured != nil {
			switch {
			case !*in.Featured:
				j.Featured = false
			case !j.Featured:
				paymentID := in.PaymentID
				if paymentID == nil {
					paymentID = j.PaymentID
				}
				paid := false
				if paymentID != nil {
					if paid, err = s.featurePaid(ctx, tx, actor.UserID, j.ID, *paymentID); err != nil {
						return err
					}
				}
				if paid {
					j.Featured = true
					j.PaymentID = paymentID
					if err := tx.Payment.LinkJob(ctx, *paymentID, j.ID); err != nil {
						return err
					}
				} else {
					downgraded = true
				}
			}
		}

		if err := tx.Job.Update(ctx, j); err != nil {
			return err
		}
		updated = j
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	utils.LogAuditWithConsole(ctx, actor, "update", "job", strconv.FormatUint(uint64(updated.ID), 10), before, updated, "", s.Repos.Audit)
	return &job.CreateResult{Job: updated, FeatureDowngraded: downgraded}, nil
}

func (s *JobService) applyUpdate(j *job.Job, in job.UpdateJobInput) error {
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return fmt.Errorf("%w: title cannot be empty", ErrInvalidJob)
		}
		j.Title = t
	}
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		if d == "" {
			return fmt.Errorf("%w: description cannot be empty", ErrInvalidJob)
		}
		j.Description = d
	}
	if in.Category != nil {
		j.Category = job.NormalizeCategory(*in.Category, s.policy.CategoryAliases)
	}
	if in.Skills != nil {
		j.Skills = account.CleanList(in.Skills)
	}
	if in.Duration != nil {
		j.Duration = strings.TrimSpace(*in.Duration)
	}
	if in.Urgency != nil {
		j.Urgency = job.Urgency(*in.Urgency)
	}
	if in.BudgetType != nil {
		j.Budget.Type = job.BudgetType(*in.BudgetType)
	}
	if in.Currency != nil {
		j.Budget.Currency = *in.Currency
	}

	if in.BudgetMin != nil || in.BudgetMax != nil {
		minBudget, maxBudget := j.Budget.Min, j.Budget.Max
		if in.BudgetMin != nil {
			minBudget = *in.BudgetMin
		}
		if in.BudgetMax != nil {
			maxBudget = *in.BudgetMax
		}
		if maxBudget < minBudget {
			return ErrInvalidBudget
		}
		j.Budget.Min, j.Budget.Max = minBudget, maxBudget
		if maxBudget != j.Budget.Amount && !j.HasCompletedMilestone() {
			j.Milestones = job.ScaleMilestones(j.Milestones, maxBudget)
		}
		j.Budget.Amount = maxBudget
	}
	return nil
}

// Delete removes a job owned by the caller unless work is under way or a
// contract for it is still live.
func (s *JobService) Delete(ctx context.Context, actor audit.Actor, id uint) error {
	var j *job.Job
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		j, err = tx.Job.GetByIDForUpdate(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrJobNotFound
			}
			return err
		}
		if !j.IsOwnedBy(actor.UserID) {
			return ErrForbidden
		}
		if j.Status == job.StatusInProgress {
			return ErrJobInProgress
		}
		taken, err := tx.Contract.HasLiveForJob(ctx, id)
		if err != nil {
			return err
		}
		if taken {
			return ErrJobTaken
		}
		return tx.Job.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	utils.LogAuditWithConsole(ctx, actor, "delete", "job", strconv.FormatUint(uint64(id), 10), j, nil, "", s.Repos.Audit)
	return nil
}

func (s *JobService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		slog.Warn("listing cache invalidation failed", "error", err)
	}
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
