package mock

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var errNoDatabase = errors.New("mock: statement sent to a database-less connection")

// NewTxDB returns a gorm handle whose transactions begin, commit and roll
// back without a database. Repos bound to it run ExecTx over the mocks;
// any SQL that reaches it fails.
func NewTxDB(t testing.TB) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: txPool{}}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("open mock db: %v", err)
	}
	return gdb
}

type txPool struct{}

func (txPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errNoDatabase
}

func (txPool) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, errNoDatabase
}

func (txPool) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errNoDatabase
}

func (txPool) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (txPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	return &txConn{}, nil
}

// txConn is the open transaction. It records how it ended.
type txConn struct {
	txPool
	done bool
}

func (c *txConn) Commit() error {
	if c.done {
		return sql.ErrTxDone
	}
	c.done = true
	return nil
}

func (c *txConn) Rollback() error {
	if c.done {
		return sql.ErrTxDone
	}
	c.done = true
	return nil
}
