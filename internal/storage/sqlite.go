package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/Xunop/amana-bookstore/internal/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const collectionTableSchema = `
	CREATE TABLE collection (
		name TEXT NOT NULL PRIMARY KEY,
		document TEXT NOT NULL,
		updated_ts BIGINT NOT NULL
	)
`

// SQLiteDriver keeps each collection document as a row of a sqlite database.
type SQLiteDriver struct {
	db *sql.DB
}

func NewSQLiteDriver(ctx context.Context, dsn string) (*SQLiteDriver, error) {
	if dsn == "" {
		return nil, errors.New("Database URL is required")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open database %s", dsn)
	}
	// One writer at a time; sqlite would answer SQLITE_BUSY otherwise.
	db.SetMaxOpenConns(1)

	d := &SQLiteDriver{db: db}
	if err := d.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Migrate applies the latest schema to the database.
func (d *SQLiteDriver) Migrate(ctx context.Context) error {
	exists, err := d.CheckTableExists(ctx, "collection")
	if err != nil {
		return errors.Wrap(err, "unable to inspect schema")
	}
	if exists {
		return nil
	}
	if _, err := d.db.ExecContext(ctx, collectionTableSchema); err != nil {
		return errors.Wrap(err, "unable to create collection table")
	}
	log.Info("Created collection table")
	return nil
}

func (d *SQLiteDriver) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
	var name string
	if err := d.db.QueryRowContext(ctx, query, tableName).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (d *SQLiteDriver) Read(ctx context.Context, c Collection) ([]byte, error) {
	var document string
	err := d.db.QueryRowContext(ctx, "SELECT document FROM collection WHERE name = ?", string(c)).Scan(&document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, readError(c, errors.New("collection does not exist"))
		}
		return nil, readError(c, err)
	}
	return []byte(document), nil
}

func (d *SQLiteDriver) Write(ctx context.Context, c Collection, document []byte) error {
	stmt := `
		INSERT INTO collection (name, document, updated_ts)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE
		SET
			document=EXCLUDED.document,
			updated_ts=EXCLUDED.updated_ts
	`
	if _, err := d.db.ExecContext(ctx, stmt, string(c), string(document), time.Now().Unix()); err != nil {
		return writeError(c, err)
	}
	log.Debug("Stored collection", zap.String("collection", string(c)), zap.Int("bytes", len(document)))
	return nil
}

func (d *SQLiteDriver) Init(ctx context.Context, c Collection) (bool, error) {
	document, err := Wrap(c, nil)
	if err != nil {
		return false, err
	}
	stmt := `
		INSERT INTO collection (name, document, updated_ts)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`
	res, err := d.db.ExecContext(ctx, stmt, string(c), string(document), time.Now().Unix())
	if err != nil {
		return false, writeError(c, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, writeError(c, err)
	}
	return n > 0, nil
}

func (d *SQLiteDriver) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *SQLiteDriver) Close() error {
	return d.db.Close()
}
