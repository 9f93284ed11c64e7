package load

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/syssam/crudgen/compiler/naming"
)

// Supported database dialects. They match the registered driver names.
const (
	DialectMySQL    = "mysql"
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// frameworkTables are never turned into models.
var frameworkTables = []string{
	"migrations",
	"password_resets",
	"password_reset_tokens",
	"failed_jobs",
	"personal_access_tokens",
	"jobs",
	"job_batches",
	"cache",
	"cache_locks",
	"sessions",
	"sqlite_sequence",
}

// queries holds the introspection statements of one dialect. The columns
// statement takes the table name and yields name, data type and
// nullability ("YES"/"NO").
type queries struct {
	tables  string
	columns string
}

var dialects = map[string]queries{
	DialectMySQL: {
		tables:  "SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = (SELECT DATABASE()) AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME",
		columns: "SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_SCHEMA = (SELECT DATABASE()) AND TABLE_NAME = ? ORDER BY ORDINAL_POSITION",
	},
	DialectPostgres: {
		tables:  "SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema() AND table_type = 'BASE TABLE' ORDER BY table_name",
		columns: "SELECT column_name, data_type, is_nullable FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1 ORDER BY ordinal_position",
	},
	DialectSQLite: {
		tables:  "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name",
		columns: `SELECT name, type, CASE WHEN "notnull" = 1 THEN 'NO' ELSE 'YES' END FROM pragma_table_info(?) ORDER BY cid`,
	},
}

// Open opens a database handle for one of the supported dialects.
func Open(ctx context.Context, dialect, dsn string) (*sql.DB, error) {
	if _, ok := dialects[dialect]; !ok {
		return nil, fmt.Errorf("crudgen: unsupported dialect %q", dialect)
	}
	db, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("crudgen: connect %s: %w", dialect, err)
	}
	return db, nil
}

// FromDatabase builds a catalog from the tables of a live database. Model
// names are the studly singular table names; columns ending in "_id" that
// point to another discovered table become belongsTo relations.
func FromDatabase(ctx context.Context, db *sql.DB, dialect string, opts Options) (*Catalog, error) {
	q, ok := dialects[dialect]
	if !ok {
		return nil, fmt.Errorf("crudgen: unsupported dialect %q", dialect)
	}
	tables, err := listTables(ctx, db, q.tables)
	if err != nil {
		return nil, err
	}
	schemas := make([]*Schema, 0, len(tables))
	byTable := make(map[string]*Schema, len(tables))
	for _, t := range tables {
		s := &Schema{
			Name:      naming.Studly(naming.Singular(t)),
			TableName: t,
		}
		if s.Fields, err = listColumns(ctx, db, q.columns, t); err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
		byTable[t] = s
	}
	for _, s := range schemas {
		s.Relations = inferRelations(s, byTable)
	}
	return NewCatalog(opts.Namespace, schemas...)
}

func listTables(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("crudgen: list tables: %w", err)
	}
	defer rows.Close()
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("crudgen: scan table: %w", err)
		}
		if !slices.Contains(frameworkTables, name) {
			tables = append(tables, name)
		}
	}
	return tables, rows.Err()
}

func listColumns(ctx context.Context, db *sql.DB, query, table string) ([]*Field, error) {
	rows, err := db.QueryContext(ctx, query, table)
	if err != nil {
		return nil, fmt.Errorf("crudgen: list columns of %q: %w", table, err)
	}
	defer rows.Close()
	var fields []*Field
	for rows.Next() {
		var name, typ, nullable string
		if err := rows.Scan(&name, &typ, &nullable); err != nil {
			return nil, fmt.Errorf("crudgen: scan column of %q: %w", table, err)
		}
		fields = append(fields, &Field{
			Name:     name,
			Type:     strings.ToLower(typ),
			Nullable: strings.EqualFold(nullable, "YES"),
		})
	}
	return fields, rows.Err()
}

func inferRelations(s *Schema, byTable map[string]*Schema) []*Relation {
	var rels []*Relation
	for _, f := range s.Fields {
		base, ok := strings.CutSuffix(f.Name, "_id")
		if !ok || base == "" {
			continue
		}
		target, ok := byTable[naming.Plural(base)]
		if !ok {
			continue
		}
		rels = append(rels, &Relation{
			Name:  naming.Camel(base),
			Type:  BelongsTo,
			Model: target.Name,
		})
	}
	return rels
}
