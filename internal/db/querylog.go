package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// queryLogConnector opens sqlite3 connections whose statements are logged
// with their arguments and elapsed time.
type queryLogConnector struct {
	dsn    string
	logger *slog.Logger
	driver *sqlite3.SQLiteDriver
}

type queryLogConn struct {
	conn   driver.Conn
	logger *slog.Logger
}

type queryLogStmt struct {
	stmt   driver.Stmt
	query  string
	logger *slog.Logger
}

// NewQueryLogConnector returns a driver.Connector for sql.OpenDB. A nil logger
// means slog.Default().
func NewQueryLogConnector(dsn string, logger *slog.Logger) driver.Connector {
	if logger == nil {
		logger = slog.Default()
	}
	return &queryLogConnector{dsn: dsn, logger: logger, driver: &sqlite3.SQLiteDriver{}}
}

func (c *queryLogConnector) Driver() driver.Driver {
	return c.driver
}

func (c *queryLogConnector) Connect(ctx context.Context) (driver.Conn, error) {
	conn, err := c.driver.Open(c.dsn)
	if err != nil {
		return nil, err
	}
	return &queryLogConn{conn: conn, logger: c.logger}, nil
}

func (c *queryLogConn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

func (c *queryLogConn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	var (
		stmt driver.Stmt
		err  error
	)
	if prep, ok := c.conn.(driver.ConnPrepareContext); ok {
		stmt, err = prep.PrepareContext(ctx, query)
	} else {
		stmt, err = c.conn.Prepare(query)
	}
	if err != nil {
		c.logger.Debug("sql prepare failed", "sql", query, "error", err)
		return nil, err
	}
	return &queryLogStmt{stmt: stmt, query: query, logger: c.logger}, nil
}

func (c *queryLogConn) Close() error {
	return c.conn.Close()
}

func (c *queryLogConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *queryLogConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	if beginTx, ok := c.conn.(driver.ConnBeginTx); ok {
		return beginTx.BeginTx(ctx, opts)
	}
	//nolint:staticcheck // SA1019 – fallback when underlying conn does not implement ConnBeginTx
	return c.conn.Begin()
}

// ExecContext runs multi-statement scripts (migrations) through the driver's
// own Exec, which a single prepared statement cannot do.
func (c *queryLogConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	execer, ok := c.conn.(driver.ExecerContext)
	if !ok {
		return nil, driver.ErrSkip
	}
	start := time.Now()
	res, err := execer.ExecContext(ctx, query, args)
	logStatement(c.logger, "exec", query, args, start, err)
	return res, err
}

func (c *queryLogConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	queryer, ok := c.conn.(driver.QueryerContext)
	if !ok {
		return nil, driver.ErrSkip
	}
	start := time.Now()
	rows, err := queryer.QueryContext(ctx, query, args)
	logStatement(c.logger, "query", query, args, start, err)
	return rows, err
}

// Ping lets database/sql verify connectivity without preparing a statement.
func (c *queryLogConn) Ping(ctx context.Context) error {
	if p, ok := c.conn.(driver.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (s *queryLogStmt) Exec(args []driver.Value) (driver.Result, error) {
	return s.ExecContext(context.Background(), valuesToNamed(args))
}

func (s *queryLogStmt) ExecContext(ctx context.Context, args []driver.NamedValue) (driver.Result, error) {
	start := time.Now()
	var (
		res driver.Result
		err error
	)
	if execCtx, ok := s.stmt.(driver.StmtExecContext); ok {
		res, err = execCtx.ExecContext(ctx, args)
	} else {
		//nolint:staticcheck // SA1019 – fallback when underlying stmt does not implement StmtExecContext
		res, err = s.stmt.Exec(namedToValues(args))
	}
	logStatement(s.logger, "exec", s.query, args, start, err)
	return res, err
}

func (s *queryLogStmt) Query(args []driver.Value) (driver.Rows, error) {
	return s.QueryContext(context.Background(), valuesToNamed(args))
}

func (s *queryLogStmt) QueryContext(ctx context.Context, args []driver.NamedValue) (driver.Rows, error) {
	start := time.Now()
	var (
		rows driver.Rows
		err  error
	)
	if queryCtx, ok := s.stmt.(driver.StmtQueryContext); ok {
		rows, err = queryCtx.QueryContext(ctx, args)
	} else {
		//nolint:staticcheck // SA1019 – fallback when underlying stmt does not implement StmtQueryContext
		rows, err = s.stmt.Query(namedToValues(args))
	}
	logStatement(s.logger, "query", s.query, args, start, err)
	return rows, err
}

func (s *queryLogStmt) Close() error {
	return s.stmt.Close()
}

func (s *queryLogStmt) NumInput() int {
	return s.stmt.NumInput()
}

// logStatement records one statement; elapsed covers execution only, not row
// iteration.
func logStatement(logger *slog.Logger, op, query string, args []driver.NamedValue, start time.Time, err error) {
	attrs := []any{
		"op", op,
		"sql", query,
		"args", formatArgs(args),
		"elapsed", time.Since(start),
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		attrs = append(attrs, "error", err)
	}
	logger.Debug("sql", attrs...)
}

func formatArgs(args []driver.NamedValue) []string {
	out := make([]string, len(args))
	for i, a := range args {
		v := formatArg(a.Value)
		if a.Name != "" {
			v = a.Name + "=" + v
		}
		out[i] = v
	}
	return out
}

func valuesToNamed(args []driver.Value) []driver.NamedValue {
	out := make([]driver.NamedValue, len(args))
	for i, v := range args {
		out[i] = driver.NamedValue{Ordinal: i + 1, Value: v}
	}
	return out
}

func namedToValues(args []driver.NamedValue) []driver.Value {
	out := make([]driver.Value, len(args))
	for i := range args {
		out[i] = args[i].Value
	}
	return out
}

func formatArg(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
