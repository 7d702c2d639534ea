package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/freelance-market/internal/config"
	"github.com/linskybing/freelance-market/internal/domain/audit"
	"github.com/linskybing/freelance-market/internal/domain/notification"
	"github.com/linskybing/freelance-market/internal/mailer"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/internal/repository/mock"
	"github.com/linskybing/freelance-market/pkg/utils"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	job          *mock.MockJobRepo
	account      *mock.MockAccountRepo
	proposal     *mock.MockProposalRepo
	contract     *mock.MockContractRepo
	payment      *mock.MockPaymentRepo
	notification *mock.MockNotificationRepo
	audit        *mock.MockAuditRepo
}

// setupRepos builds Repos from mocks on a database-less transaction handle.
// Audit writes are silenced for the test.
func setupRepos(t *testing.T) (*repository.Repos, *mocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &mocks{
		job:          mock.NewMockJobRepo(ctrl),
		account:      mock.NewMockAccountRepo(ctrl),
		proposal:     mock.NewMockProposalRepo(ctrl),
		contract:     mock.NewMockContractRepo(ctrl),
		payment:      mock.NewMockPaymentRepo(ctrl),
		notification: mock.NewMockNotificationRepo(ctrl),
		audit:        mock.NewMockAuditRepo(ctrl),
	}
	repos := (&repository.Repos{
		Job:          m.job,
		Account:      m.account,
		Proposal:     m.proposal,
		Contract:     m.contract,
		Payment:      m.payment,
		Notification: m.notification,
		Audit:        m.audit,
	}).WithDB(mock.NewTxDB(t))

	// Inside ExecTx the transaction-bound repos are the same mocks.
	m.job.EXPECT().WithTx(gomock.Any()).Return(m.job).AnyTimes()
	m.account.EXPECT().WithTx(gomock.Any()).Return(m.account).AnyTimes()
	m.proposal.EXPECT().WithTx(gomock.Any()).Return(m.proposal).AnyTimes()
	m.contract.EXPECT().WithTx(gomock.Any()).Return(m.contract).AnyTimes()
	m.payment.EXPECT().WithTx(gomock.Any()).Return(m.payment).AnyTimes()
	m.notification.EXPECT().WithTx(gomock.Any()).Return(m.notification).AnyTimes()
	m.audit.EXPECT().WithTx(gomock.Any()).Return(m.audit).AnyTimes()

	old := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(context.Context, audit.Actor, string, string, string, any, any, string, repository.AuditRepo) {}
	t.Cleanup(func() { utils.LogAuditWithConsole = old })

	return repos, m
}

func testPolicy() config.Policy {
	return config.Policy{
		StaleInProgressDays: 14,
		HighBudgetAmount:    10000,
		FeaturedMinUSD:      10,
		HBARUSDRate:         0.07,
	}
}

func testDeps() Deps {
	return Deps{
		Cache:     newMemCache(),
		Mailer:    &recordingMailer{},
		Publisher: &recordingPublisher{},
		Policy:    testPolicy(),
		Now:       func() time.Time { return testNow },
	}
}

type memCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	invalidated int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string][]byte{}
	c.invalidated++
	return nil
}

type recordingMailer struct {
	sent []mailer.Message
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

type recordingPublisher struct {
	published []*notification.Notification
}

func (p *recordingPublisher) Publish(n *notification.Notification) {
	p.published = append(p.published, n)
}

func ptr[T any](v T) *T {
	return &v
}

var (
	clientActor     = audit.Actor{UserID: 7, Role: "client"}
	freelancerActor = audit.Actor{UserID: 9, Role: "freelancer"}
	adminActor      = audit.Actor{UserID: 1, Role: "admin"}
)
