// Package archive keeps named expressions, together with their trace and their lowered Go
// code, in an SQL database.
package archive

import (
	"context"
	"database/sql"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/tim-hardcastle/curly/source/logging"

	// SQL drivers

	_ "github.com/go-sql-driver/mysql"  // MariaDB & MySQL
	_ "github.com/lib/pq"               // Postgres
	_ "github.com/microsoft/go-mssqldb" // SQL Server
	_ "github.com/nakagami/firebirdsql" // Firebird
	_ "github.com/sijms/go-ora"         // Oracle
	_ "modernc.org/sqlite"              // SQLite
)

// The names under which database/sql knows the drivers the archive can use.
func DriverNames() []string {
	result := make([]string, 0, len(dialects))
	for k := range dialects {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

var ErrNotFound = errors.New("no such expression in the archive")

type Entry struct {
	Name    string
	Hash    string // Hex BLAKE2b-256 of the source.
	Source  string
	Trace   string
	Code    string
	Created time.Time
}

type Archive struct {
	db      *sql.DB
	dialect dialect
	now     func() time.Time
}

// Open connects to the database and makes sure the table is there.
func Open(ctx context.Context, driver, dsn string) (*Archive, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, errors.Errorf("unknown archive driver %q", driver)
	}
	db, e := sql.Open(driver, dsn)
	if e != nil {
		return nil, errors.Wrapf(e, "opening %s archive", driver)
	}
	if driver == "sqlite" && strings.Contains(dsn, ":memory:") {
		// Every connection to an in-memory database gets a database of its own.
		db.SetMaxOpenConns(1)
	}
	if e := db.PingContext(ctx); e != nil {
		db.Close()
		return nil, errors.Wrapf(e, "connecting to %s archive", driver)
	}
	// Not every dialect has CREATE TABLE IF NOT EXISTS.
	var n int
	if e := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM curly_archive`).Scan(&n); e != nil {
		if _, e := db.ExecContext(ctx, d.schema()); e != nil {
			db.Close()
			return nil, errors.Wrap(e, "creating archive table")
		}
	}
	logging.Infof("archive: opened %s database", driver)
	return &Archive{db: db, dialect: d, now: time.Now}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func Hash(source string) string {
	sum := blake2b.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

func (a *Archive) rebind(query string) string {
	return a.dialect.rebind(query)
}

// Put stores the entry under its name, replacing anything already there. The hash and
// creation time are filled in here.
func (a *Archive) Put(ctx context.Context, e *Entry) error {
	e.Hash = Hash(e.Source)
	e.Created = a.now().UTC()
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "starting transaction")
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, a.rebind(`DELETE FROM curly_archive WHERE name = ?`), e.Name); err != nil {
		return errors.Wrapf(err, "replacing %q", e.Name)
	}
	if _, err := tx.ExecContext(ctx,
		a.rebind(`INSERT INTO curly_archive (name, hash, source, trace, code, created) VALUES (?, ?, ?, ?, ?, ?)`),
		e.Name, e.Hash, e.Source, e.Trace, e.Code, e.Created.UnixNano()); err != nil {
		return errors.Wrapf(err, "saving %q", e.Name)
	}
	return errors.Wrap(tx.Commit(), "committing")
}

func (a *Archive) Get(ctx context.Context, name string) (*Entry, error) {
	row := a.db.QueryRowContext(ctx,
		a.rebind(`SELECT name, hash, source, trace, code, created FROM curly_archive WHERE name = ?`), name)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading %q", name)
	}
	return e, nil
}

// List returns all the entries, in alphabetical order of name.
func (a *Archive) List(ctx context.Context) ([]*Entry, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT name, hash, source, trace, code, created FROM curly_archive ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "listing archive")
	}
	defer rows.Close()
	result := []*Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, errors.Wrap(err, "reading archive")
		}
		result = append(result, e)
	}
	return result, errors.Wrap(rows.Err(), "reading archive")
}

func (a *Archive) Delete(ctx context.Context, name string) error {
	res, err := a.db.ExecContext(ctx, a.rebind(`DELETE FROM curly_archive WHERE name = ?`), name)
	if err != nil {
		return errors.Wrapf(err, "deleting %q", name)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "deleting %q", name)
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "%q", name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	e := &Entry{}
	var created int64
	if err := s.Scan(&e.Name, &e.Hash, &e.Source, &e.Trace, &e.Code, &created); err != nil {
		return nil, err
	}
	e.Created = time.Unix(0, created).UTC()
	return e, nil
}
