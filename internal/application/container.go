package application

import (
	"time"

	"github.com/linskybing/freelance-market/internal/cache"
	"github.com/linskybing/freelance-market/internal/config"
	"github.com/linskybing/freelance-market/internal/mailer"
	"github.com/linskybing/freelance-market/internal/repository"
)

// Deps carries the infrastructure shared by the services. Nil fields fall
// back to no-op implementations, except Avatars which disables uploads.
type Deps struct {
	Cache     ListingCache
	Mailer    Mailer
	Avatars   AvatarStore
	Publisher Publisher
	Policy    config.Policy
	Now       func() time.Time

	ReservedAdminEmail string
	TokenLifetime      time.Duration
}

func (d *Deps) fill() {
	if d.Cache == nil {
		d.Cache = cache.Noop{}
	}
	if d.Mailer == nil {
		d.Mailer = mailer.LogMailer{}
	}
	if d.Publisher == nil {
		d.Publisher = noopPublisher{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Policy.StaleInProgressDays == 0 {
		d.Policy = config.DefaultPolicy()
	}
	if d.TokenLifetime == 0 {
		d.TokenLifetime = 24 * time.Hour
	}
}

type Services struct {
	Audit        *AuditService
	Job          *JobService
	Moderation   *ModerationService
	Account      *AccountService
	Settings     *SettingsService
	Proposal     *ProposalService
	Contract     *ContractService
	Reconcile    *ReconcileService
	Notification *NotificationService
}

func New(repos *repository.Repos, deps Deps) *Services {
	deps.fill()
	notifications := NewNotificationService(repos, deps.Publisher)
	return &Services{
		Audit:        NewAuditService(repos, deps.Now),
		Job:          NewJobService(repos, deps),
		Moderation:   NewModerationService(repos, notifications, deps),
		Account:      NewAccountService(repos, deps),
		Settings:     NewSettingsService(repos, deps.Avatars),
		Proposal:     NewProposalService(repos, notifications),
		Contract:     NewContractService(repos, notifications, deps.Cache, deps.Now),
		Reconcile:    NewReconcileService(repos, deps.Cache),
		Notification: notifications,
	}
}
