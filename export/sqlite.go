package export

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/wippyai/plbin/errors"
)

const sqliteSchema = `
DROP TABLE IF EXISTS assembly;
DROP TABLE IF EXISTS types;
DROP TABLE IF EXISTS generics;
DROP TABLE IF EXISTS generic_interfaces;
DROP TABLE IF EXISTS methods;
DROP TABLE IF EXISTS method_args;
DROP TABLE IF EXISTS fields;
DROP TABLE IF EXISTS code;

CREATE TABLE assembly (
	name TEXT NOT NULL
);
CREATE TABLE types (
	name       TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	parent     TEXT,
	visibility TEXT NOT NULL,
	flags      TEXT NOT NULL
);
-- method is '' for type-level generic parameters
CREATE TABLE generics (
	type   TEXT NOT NULL,
	method TEXT NOT NULL,
	name   TEXT NOT NULL,
	parent TEXT,
	PRIMARY KEY (type, method, name)
);
CREATE TABLE generic_interfaces (
	type      TEXT NOT NULL,
	method    TEXT NOT NULL,
	generic   TEXT NOT NULL,
	pos       INTEGER NOT NULL,
	interface TEXT NOT NULL
);
CREATE TABLE methods (
	type       TEXT NOT NULL,
	name       TEXT NOT NULL,
	visibility TEXT NOT NULL,
	flags      TEXT NOT NULL,
	registers  INTEGER NOT NULL,
	returns    TEXT NOT NULL,
	PRIMARY KEY (type, name)
);
CREATE TABLE method_args (
	type   TEXT NOT NULL,
	method TEXT NOT NULL,
	pos    INTEGER NOT NULL,
	arg    TEXT NOT NULL
);
CREATE TABLE fields (
	type       TEXT NOT NULL,
	name       TEXT NOT NULL,
	visibility TEXT NOT NULL,
	flags      TEXT NOT NULL,
	field_type TEXT NOT NULL,
	PRIMARY KEY (type, name)
);
CREATE TABLE code (
	type   TEXT NOT NULL,
	method TEXT NOT NULL,
	pc     INTEGER NOT NULL,
	text   TEXT NOT NULL
);
`

// WriteSQLite stores the document in the SQLite database at path. Tables
// from an earlier export are dropped first; other tables are left alone.
func (d *Document) WriteSQLite(ctx context.Context, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return sqliteErr(err, "open "+path)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return sqliteErr(err, "begin")
	}
	if err := d.insertAll(ctx, tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return sqliteErr(err, "commit")
	}
	return nil
}

func (d *Document) insertAll(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, sqliteSchema); err != nil {
		return sqliteErr(err, "create schema")
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO assembly (name) VALUES (?)`, d.Name); err != nil {
		return sqliteErr(err, "insert assembly")
	}

	for _, t := range d.Types {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO types (name, kind, parent, visibility, flags) VALUES (?, ?, ?, ?, ?)`,
			t.Name, t.Kind, nullString(t.Parent), t.Visibility, t.Flags); err != nil {
			return sqliteErr(err, "insert type "+t.Name)
		}
		if err := insertGenerics(ctx, tx, t.Name, "", t.Generics); err != nil {
			return err
		}
		for _, f := range t.Fields {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO fields (type, name, visibility, flags, field_type) VALUES (?, ?, ?, ?, ?)`,
				t.Name, f.Name, f.Visibility, f.Flags, f.Type); err != nil {
				return sqliteErr(err, "insert field "+t.Name+"."+f.Name)
			}
		}
		for _, m := range t.Methods {
			if err := insertMethod(ctx, tx, t.Name, m); err != nil {
				return err
			}
		}
	}
	return nil
}

func insertMethod(ctx context.Context, tx *sql.Tx, typ string, m Method) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO methods (type, name, visibility, flags, registers, returns) VALUES (?, ?, ?, ?, ?, ?)`,
		typ, m.Name, m.Visibility, m.Flags, int64(m.Registers), m.Returns); err != nil {
		return sqliteErr(err, "insert method "+typ+"."+m.Name)
	}
	for i, a := range m.Args {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO method_args (type, method, pos, arg) VALUES (?, ?, ?, ?)`,
			typ, m.Name, i, a); err != nil {
			return sqliteErr(err, "insert argument of "+typ+"."+m.Name)
		}
	}
	if err := insertGenerics(ctx, tx, typ, m.Name, m.Generics); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO code (type, method, pc, text) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return sqliteErr(err, "prepare code insert")
	}
	defer stmt.Close()
	for pc, line := range m.Code {
		if _, err := stmt.ExecContext(ctx, typ, m.Name, pc, line); err != nil {
			return sqliteErr(err, "insert code of "+typ+"."+m.Name)
		}
	}
	return nil
}

func insertGenerics(ctx context.Context, tx *sql.Tx, typ, method string, gs []Generic) error {
	for _, g := range gs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO generics (type, method, name, parent) VALUES (?, ?, ?, ?)`,
			typ, method, g.Name, nullString(g.Parent)); err != nil {
			return sqliteErr(err, "insert generic "+g.Name)
		}
		for i, iface := range g.Interfaces {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO generic_interfaces (type, method, generic, pos, interface) VALUES (?, ?, ?, ?, ?)`,
				typ, method, g.Name, i, iface); err != nil {
				return sqliteErr(err, "insert interface of "+g.Name)
			}
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func sqliteErr(err error, detail string) error {
	return errors.Wrap(errors.PhaseEncode, errors.KindInvalidInput, err, "sqlite: "+detail)
}
