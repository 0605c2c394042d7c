package handlers

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubConn implements just enough of database/sql/driver to stand in for
// Postgres in handler tests: queries answer from canned rows, execs are
// recorded. A nil hook fails the statement, which models an unreachable
// database.
type stubConn struct {
	query func(q string, args []driver.NamedValue) (driver.Rows, error)
	exec  func(q string, args []driver.NamedValue) (driver.Result, error)
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepared statements unsupported")
}
func (c *stubConn) Close() error { return nil }

// Begin hands out a no-op transaction so GORM's default write transaction
// reaches the exec hook.
func (c *stubConn) Begin() (driver.Tx, error) { return stubTx{}, nil }

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func (c *stubConn) QueryContext(_ context.Context, q string, args []driver.NamedValue) (driver.Rows, error) {
	if c.query == nil {
		return nil, errors.New("connection refused")
	}
	return c.query(q, args)
}

func (c *stubConn) ExecContext(_ context.Context, q string, args []driver.NamedValue) (driver.Result, error) {
	if c.exec == nil {
		return nil, errors.New("connection refused")
	}
	return c.exec(q, args)
}

type stubConnector struct{ conn *stubConn }

func (s stubConnector) Connect(context.Context) (driver.Conn, error) { return s.conn, nil }
func (s stubConnector) Driver() driver.Driver                        { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open via connector")
}

func openStubDB(t *testing.T, conn *stubConn) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sql.OpenDB(stubConnector{conn: conn})}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open stub db: %v", err)
	}
	return db
}

// failingDB answers every statement with a connection error.
func failingDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openStubDB(t, &stubConn{})
}

// stubRows replays one fixed result set.
type stubRows struct {
	columns []string
	values  [][]driver.Value
	idx     int
}

func (r *stubRows) Columns() []string { return r.columns }
func (r *stubRows) Close() error      { return nil }
func (r *stubRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.values) {
		return io.EOF
	}
	copy(dest, r.values[r.idx])
	r.idx++
	return nil
}
