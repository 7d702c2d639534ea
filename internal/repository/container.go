package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repos struct {
	Job          JobRepo
	Account      AccountRepo
	Proposal     ProposalRepo
	Contract     ContractRepo
	Payment      PaymentRepo
	Notification NotificationRepo
	Audit        AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	repos := &Repos{
		Job:          NewJobRepo(db),
		Account:      NewAccountRepo(db),
		Proposal:     NewProposalRepo(db),
		Contract:     NewContractRepo(db),
		Payment:      NewPaymentRepo(db),
		Notification: NewNotificationRepo(db),
		Audit:        NewAuditRepo(db),
	}
	return repos.WithDB(db)
}

// WithDB returns a copy of r whose transactions are opened on db. The
// repositories themselves are kept as they are.
func (r *Repos) WithDB(db *gorm.DB) *Repos {
	c := *r
	c.db = db
	return &c
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Job:          r.Job.WithTx(tx),
		Account:      r.Account.WithTx(tx),
		Proposal:     r.Proposal.WithTx(tx),
		Contract:     r.Contract.WithTx(tx),
		Payment:      r.Payment.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		Audit:        r.Audit.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside one database transaction.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}

// Ping checks the database connection.
func (r *Repos) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
