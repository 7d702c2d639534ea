package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/domain/contract"
	"github.com/linskybing/freelance-market/internal/domain/job"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func testApp(out *bytes.Buffer) *cli.Command {
	return &cli.Command{
		Name:   "marketctl",
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Action: MigrateAction,
			},
			{
				Name:   "reconcile",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "dry-run"}},
				Action: ReconcileAction,
			},
		},
	}
}

func stubServices(t *testing.T, repos *repository.Repos) {
	old := connect
	connect = func() (*application.Services, error) {
		return application.New(repos, application.Deps{}), nil
	}
	t.Cleanup(func() { connect = old })
}

func TestReconcileAction_DryRunDoesNotWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	contracts := mock.NewMockContractRepo(ctrl)
	jobs := mock.NewMockJobRepo(ctrl)
	stubServices(t, &repository.Repos{Contract: contracts, Job: jobs})

	contracts.EXPECT().ListAfter(gomock.Any(), uint(0), gomock.Any()).
		Return([]contract.Contract{{ID: 1, JobID: 10, FreelancerID: 9, Status: contract.StatusActive}}, nil)
	jobs.EXPECT().GetByID(gomock.Any(), uint(10)).Return(&job.Job{ID: 10, Status: job.StatusOpen}, nil)

	var out bytes.Buffer
	err := testApp(&out).Run(context.Background(), []string{"marketctl", "reconcile", "--dry-run"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "scanned 1 contracts, would update 1 jobs")
	assert.Contains(t, out.String(), "job 10")
}

func TestReconcileAction_Writes(t *testing.T) {
	ctrl := gomock.NewController(t)
	contracts := mock.NewMockContractRepo(ctrl)
	jobs := mock.NewMockJobRepo(ctrl)
	stubServices(t, &repository.Repos{Contract: contracts, Job: jobs})

	j := &job.Job{ID: 10, Status: job.StatusOpen}
	contracts.EXPECT().ListAfter(gomock.Any(), uint(0), gomock.Any()).
		Return([]contract.Contract{{ID: 1, JobID: 10, FreelancerID: 9, Status: contract.StatusActive}}, nil)
	jobs.EXPECT().GetByID(gomock.Any(), uint(10)).Return(j, nil)
	jobs.EXPECT().Update(gomock.Any(), j).Return(nil)

	var out bytes.Buffer
	err := testApp(&out).Run(context.Background(), []string{"marketctl", "reconcile"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "updated 1 jobs")
	assert.Equal(t, job.StatusInProgress, j.Status)
}

func TestReconcileAction_ReportsConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	contracts := mock.NewMockContractRepo(ctrl)
	jobs := mock.NewMockJobRepo(ctrl)
	stubServices(t, &repository.Repos{Contract: contracts, Job: jobs})

	j := &job.Job{ID: 10, Status: job.StatusCancelled}
	contracts.EXPECT().ListAfter(gomock.Any(), uint(0), gomock.Any()).
		Return([]contract.Contract{{ID: 1, JobID: 10, FreelancerID: 9, Status: contract.StatusActive}}, nil)
	jobs.EXPECT().GetByID(gomock.Any(), uint(10)).Return(j, nil)

	var out bytes.Buffer
	err := testApp(&out).Run(context.Background(), []string{"marketctl", "reconcile"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "updated 0 jobs")
	assert.Contains(t, out.String(), "contract 1 conflicts with its closed job")
	assert.Equal(t, job.StatusCancelled, j.Status)
}

func TestMigrateAction(t *testing.T) {
	old := migrate
	called := false
	migrate = func() error { called = true; return nil }
	t.Cleanup(func() { migrate = old })

	var out bytes.Buffer
	require.NoError(t, testApp(&out).Run(context.Background(), []string{"marketctl", "migrate"}))
	assert.True(t, called)
	assert.Contains(t, out.String(), "migration complete")
}
