package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/freelance-market/internal/domain/job"
	"github.com/linskybing/freelance-market/internal/domain/payment"
	"github.com/linskybing/freelance-market/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupJobService(t *testing.T) (*JobService, *mocks, *memCache) {
	repos, m := setupRepos(t)
	deps := testDeps()
	return NewJobService(repos, deps), m, deps.Cache.(*memCache)
}

func createInput() job.CreateJobInput {
	return job.CreateJobInput{
		Title:       "  Build a landing page ",
		Description: "Responsive, three sections",
		Category:    "Web Development",
		BudgetMin:   ptr(500.0),
		BudgetMax:   ptr(1000.0),
		Skills:      []string{"react", "React", " css "},
	}
}

// --------------------- ListPublic ---------------------
func TestListPublic_ForcesOpenAndCaches(t *testing.T) {
	svc, m, _ := setupJobService(t)

	draft := job.StatusDraft
	client := uint(3)
	flagged := true
	f := job.Filter{Status: &draft, ClientID: &client, Flagged: &flagged}

	m.job.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got job.Filter) ([]job.Job, int64, error) {
		require.NotNil(t, got.Status)
		assert.Equal(t, job.StatusOpen, *got.Status)
		assert.Nil(t, got.ClientID)
		assert.Nil(t, got.Flagged)
		assert.Equal(t, job.DefaultLimit, got.Limit)
		return []job.Job{{ID: 1, Title: "a", Status: job.StatusOpen}}, 13, nil
	}).Times(1)

	page, err := svc.ListPublic(context.Background(), f)
	require.NoError(t, err)
	assert.Len(t, page.Jobs, 1)
	assert.Equal(t, 2, page.Pagination.Pages)

	again, err := svc.ListPublic(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, page.Pagination, again.Pagination)
	assert.Equal(t, uint(1), again.Jobs[0].ID)
}

func TestListPublic_EmptyIsNotNull(t *testing.T) {
	svc, m, _ := setupJobService(t)
	m.job.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil)

	page, err := svc.ListPublic(context.Background(), job.Filter{})
	require.NoError(t, err)
	assert.NotNil(t, page.Jobs)
	assert.Equal(t, 0, page.Pagination.Pages)
}

// --------------------- Get ---------------------
func TestGetJob_Visibility(t *testing.T) {
	svc, m, _ := setupJobService(t)
	draft := &job.Job{ID: 4, ClientID: 7, Status: job.StatusDraft}
	m.job.EXPECT().GetByID(gomock.Any(), uint(4)).Return(draft, nil).AnyTimes()

	_, err := svc.Get(context.Background(), 4, nil)
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = svc.Get(context.Background(), 4, &types.Claims{UserID: 8, Role: "client"})
	assert.ErrorIs(t, err, ErrJobNotFound)

	got, err := svc.Get(context.Background(), 4, &types.Claims{UserID: 7, Role: "client"})
	require.NoError(t, err)
	assert.Equal(t, uint(4), got.ID)

	_, err = svc.Get(context.Background(), 4, &types.Claims{UserID: 99, Role: "admin"})
	assert.NoError(t, err)
}

func TestGetJob_NotFound(t *testing.T) {
	svc, m, _ := setupJobService(t)
	m.job.EXPECT().GetByID(gomock.Any(), uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 5, nil)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

// --------------------- Create ---------------------
func TestCreateJob_Draft(t *testing.T) {
	svc, m, _ := setupJobService(t)

	m.job.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j *job.Job) error {
		j.ID = 11
		return nil
	})

	res, err := svc.Create(context.Background(), clientActor, createInput())
	require.NoError(t, err)
	j := res.Job
	assert.False(t, res.FeatureDowngraded)
	assert.Equal(t, uint(11), j.ID)
	assert.Equal(t, "Build a landing page", j.Title)
	assert.Equal(t, job.StatusDraft, j.Status)
	assert.Equal(t, job.Category("web_development"), j.Category)
	assert.Equal(t, 1000.0, j.Budget.Amount)
	assert.Equal(t, job.CurrencyHBAR, j.Budget.Currency)
	assert.Equal(t, job.BudgetFixed, j.Budget.Type)
	assert.Equal(t, job.UrgencyMedium, j.Urgency)
	assert.Equal(t, []string{"react", "css"}, []string(j.Skills))
	require.Len(t, j.Milestones, 3)
	assert.Equal(t, 300.0, j.Milestones[0].Amount)
	assert.Equal(t, uint(7), j.ClientID)
}

func TestCreateJob_BudgetMaxBelowMin(t *testing.T) {
	svc, _, _ := setupJobService(t)
	in := createInput()
	in.BudgetMin = ptr(2000.0)

	_, err := svc.Create(context.Background(), clientActor, in)
	assert.ErrorIs(t, err, ErrInvalidBudget)
}

func TestCreateJob_FeaturedWithPayment(t *testing.T) {
	svc, m, _ := setupJobService(t)
	in := createInput()
	in.Featured = true
	in.PaymentID = ptr(uint(5))

	m.payment.EXPECT().GetByID(gomock.Any(), uint(5)).Return(&payment.Payment{
		ID: 5, ClientID: 7, Purpose: payment.PurposeFeaturedListing,
		Amount: 200, Currency: "HBAR", Status: payment.StatusCompleted,
	}, nil)
	m.job.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j *job.Job) error {
		assert.True(t, j.Featured)
		j.ID = 12
		return nil
	})
	m.payment.EXPECT().LinkJob(gomock.Any(), uint(5), uint(12)).Return(nil)

	res, err := svc.Create(context.Background(), clientActor, in)
	require.NoError(t, err)
	assert.True(t, res.Job.Featured)
	assert.False(t, res.FeatureDowngraded)
}

func TestCreateJob_FeaturedDowngraded(t *testing.T) {
	svc, m, _ := setupJobService(t)
	in := createInput()
	in.Featured = true
	in.PaymentID = ptr(uint(6))

	// 100 HBAR at 0.07 is below the 10 USD minimum.
	m.payment.EXPECT().GetByID(gomock.Any(), uint(6)).Return(&payment.Payment{
		ID: 6, ClientID: 7, Purpose: payment.PurposeFeaturedListing,
		Amount: 100, Currency: "HBAR", Status: payment.StatusCompleted,
	}, nil)
	m.job.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Create(context.Background(), clientActor, in)
	require.NoError(t, err)
	assert.False(t, res.Job.Featured)
	assert.True(t, res.FeatureDowngraded)
}

func TestCreateJob_FeaturedWithoutPayment(t *testing.T) {
	svc, m, _ := setupJobService(t)
	in := createInput()
	in.Featured = true

	m.job.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Create(context.Background(), clientActor, in)
	require.NoError(t, err)
	assert.True(t, res.FeatureDowngraded)
}

// --------------------- Update ---------------------
func TestUpdateJob_NotOwner(t *testing.T) {
	svc, m, _ := setupJobService(t)
	m.job.EXPECT().GetByID(gomock.Any(), uint(3)).Return(&job.Job{ID: 3, ClientID: 8, Status: job.StatusOpen}, nil)

	_, err := svc.Update(context.Background(), clientActor, job.UpdateJobInput{ID: 3, Title: ptr("x")})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateJob_NotEditable(t *testing.T) {
	svc, m, _ := setupJobService(t)
	m.job.EXPECT().GetByID(gomock.Any(), uint(3)).Return(&job.Job{ID: 3, ClientID: 7, Status: job.StatusInProgress}, nil)

	_, err := svc.Update(context.Background(), clientActor, job.UpdateJobInput{ID: 3, Title: ptr("x")})
	assert.ErrorIs(t, err, ErrJobNotEditable)
}

func TestUpdateJob_BudgetRescalesMilestones(t *testing.T) {
	svc, m, cache := setupJobService(t)
	existing := &job.Job{
		ID: 3, ClientID: 7, Status: job.StatusOpen, Title: "old",
		Budget:     job.Budget{Amount: 1000, Min: 500, Max: 1000},
		Milestones: job.DefaultMilestones(1000),
	}
	m.job.EXPECT().GetByID(gomock.Any(), uint(3)).Return(existing, nil)
	m.job.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Update(context.Background(), clientActor, job.UpdateJobInput{ID: 3, BudgetMax: ptr(2000.0), Title: ptr(" new ")})
	require.NoError(t, err)
	assert.Equal(t, "new", res.Job.Title)
	assert.Equal(t, 2000.0, res.Job.Budget.Amount)
	assert.Equal(t, 600.0, res.Job.Milestones[0].Amount)
	assert.Equal(t, 1, cache.invalidated)
}

func TestUpdateJob_BudgetInvalid(t *testing.T) {
	svc, m, _ := setupJobService(t)
	m.job.EXPECT().GetByID(gomock.Any(), uint(3)).Return(&job.Job{
		ID: 3, ClientID: 7, Status: job.StatusDraft,
		Budget: job.Budget{Amount: 1000, Min: 500, Max: 1000},
	}, nil)

	_, err := svc.Update(context.Background(), clientActor, job.UpdateJobInput{ID: 3, BudgetMax: ptr(100.0)})
	assert.ErrorIs(t, err, ErrInvalidBudget)
}

func TestUpdateJob_Unfeature(t *testing.T) {
	svc, m, _ := setupJobService(t)
	m.job.EXPECT().GetByID(gomock.Any(), uint(3)).Return(&job.Job{ID: 3, ClientID: 7, Status: job.StatusOpen, Featured: true}, nil)
	m.job.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Update(context.Background(), clientActor, job.UpdateJobInput{ID: 3, Featured: ptr(false)})
	require.NoError(t, err)
	assert.False(t, res.Job.Featured)
	assert.False(t, res.FeatureDowngraded)
}

// --------------------- Delete ---------------------
func TestDeleteJob(t *testing.T) {
	tests := []struct {
		name    string
		job     *job.Job
		getErr  error
		live    *bool
		wantErr error
	}{
		{name: "missing", getErr: gorm.ErrRecordNotFound, wantErr: ErrJobNotFound},
		{name: "not owner", job: &job.Job{ID: 2, ClientID: 8, Status: job.StatusOpen}, wantErr: ErrForbidden},
		{name: "in progress", job: &job.Job{ID: 2, ClientID: 7, Status: job.StatusInProgress}, wantErr: ErrJobInProgress},
		{name: "live contract", job: &job.Job{ID: 2, ClientID: 7, Status: job.StatusOpen}, live: ptr(true), wantErr: ErrJobTaken},
		{name: "ok", job: &job.Job{ID: 2, ClientID: 7, Status: job.StatusOpen}, live: ptr(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, cache := setupJobService(t)
			m.job.EXPECT().GetByIDForUpdate(gomock.Any(), uint(2)).Return(tt.job, tt.getErr)
			if tt.live != nil {
				m.contract.EXPECT().HasLiveForJob(gomock.Any(), uint(2)).Return(*tt.live, nil)
			}
			if tt.wantErr == nil {
				m.job.EXPECT().Delete(gomock.Any(), uint(2)).Return(nil)
			}

			err := svc.Delete(context.Background(), clientActor, 2)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Zero(t, cache.invalidated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, cache.invalidated)
		})
	}
}
