package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/internal/domain/audit"
	"github.com/linskybing/freelance-market/internal/domain/job"
	"github.com/linskybing/freelance-market/internal/domain/notification"
	"github.com/linskybing/freelance-market/internal/mailer"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/utils"
)

type AdminJobPage struct {
	Jobs       []job.AdminView     `json:"jobs"`
	Pagination response.Pagination `json:"pagination"`
}

// ModerationService backs the admin job queue.
type ModerationService struct {
	Repos         *repository.Repos
	notifications *NotificationService
	cache         ListingCache
	mailer        Mailer
	flag          job.FlagPolicy
	now           func() time.Time
}

func NewModerationService(repos *repository.Repos, notifications *NotificationService, deps Deps) *ModerationService {
	deps.fill()
	return &ModerationService{
		Repos:         repos,
		notifications: notifications,
		cache:         deps.Cache,
		mailer:        deps.Mailer,
		flag: job.FlagPolicy{
			StaleAfter: time.Duration(deps.Policy.StaleInProgressDays) * 24 * time.Hour,
			HighBudget: deps.Policy.HighBudgetAmount,
		},
		now: deps.Now,
	}
}

// List returns jobs in any status, each marked with whether it needs attention.
func (s *ModerationService) List(ctx context.Context, f job.Filter) (*AdminJobPage, error) {
	now := s.now()
	f.Flag = s.flag
	f.Now = now
	f.Normalize()

	jobs, total, err := s.Repos.Job.List(ctx, f)
	if err != nil {
		return nil, err
	}

	views := make([]job.AdminView, 0, len(jobs))
	for i := range jobs {
		views = append(views, job.AdminView{Job: jobs[i], Flagged: s.flag.IsFlagged(&jobs[i], now)})
	}
	return &AdminJobPage{Jobs: views, Pagination: response.NewPagination(f.Page, f.Limit, total)}, nil
}

// Moderate applies an admin action to a job. Approvals and rejections are
// announced to the client in-app and by email; delivery failures are only logged.
// An empty note keeps the previous one.
func (s *ModerationService) Moderate(ctx context.Context, actor audit.Actor, in job.ModerateJobInput) (*job.Job, error) {
	action, ok := job.ParseAction(strings.ToLower(strings.TrimSpace(in.Action)))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, in.Action)
	}
	note := strings.TrimSpace(in.Note)

	var j *job.Job
	var before job.Job
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		j, err = tx.Job.GetByIDForUpdate(ctx, in.JobID)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrJobNotFound
			}
			return err
		}
		before = *j

		if err := action.Apply(j); err != nil {
			return err
		}
		now := s.now()
		moderator := actor.UserID
		if note != "" {
			j.AdminNote = note
		}
		j.ModeratedBy = &moderator
		j.ModeratedAt = &now
		return tx.Job.Update(ctx, j)
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		slog.Warn("listing cache invalidation failed", "error", err)
	}
	utils.LogAuditWithConsole(ctx, actor, "moderate:"+string(action), "job", strconv.FormatUint(uint64(j.ID), 10), before, j, note, s.Repos.Audit)

	if action.Notifies() {
		s.announce(ctx, j, action == job.ActionApprove)
	}
	return j, nil
}

func (s *ModerationService) announce(ctx context.Context, j *job.Job, approved bool) {
	jobID := j.ID
	n := &notification.Notification{
		RecipientID:   j.ClientID,
		RecipientRole: string(account.RoleClient),
		JobID:         &jobID,
	}
	if approved {
		n.Type = notification.TypeJobApproved
		n.Title = "Job approved"
		n.Message = fmt.Sprintf("%q is now visible to freelancers.", j.Title)
	} else {
		n.Type = notification.TypeJobRejected
		n.Title = "Job rejected"
		n.Message = fmt.Sprintf("%q was not approved.", j.Title)
		if j.AdminNote != "" {
			n.Message += " " + j.AdminNote
		}
	}
	s.notifications.NotifyQuietly(ctx, n)

	client, err := s.Repos.Account.GetByID(ctx, account.RoleClient, j.ClientID)
	if err != nil {
		slog.Warn("job decision email skipped", "jobId", j.ID, "clientId", j.ClientID, "error", err)
		return
	}
	p := client.Base()
	if !p.Settings.Data().Notifications.Email {
		return
	}
	msg := mailer.JobDecision(p.Email, p.Name, j.Title, approved, j.AdminNote)
	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.Warn("job decision email failed", "jobId", j.ID, "to", p.Email, "error", err)
	}
}
