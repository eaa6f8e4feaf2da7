package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/postgres"
)

// Table is one of the tables the generic record service may touch.
type Table struct {
	name    string
	columns []string
}

var (
	TableBooks = Table{name: bookTableName, columns: []string{"titulo", "autor", "disponible"}}
	TableUsers = Table{name: userTableName, columns: []string{"nombre", "correo"}}
)

var knownTables = map[string]Table{
	TableBooks.name: TableBooks,
	TableUsers.name: TableUsers,
}

func (t Table) Name() string {
	return t.name
}

func (t Table) allows(column string) bool {
	for _, c := range t.columns {
		if c == column {
			return true
		}
	}
	return false
}

func (t Table) check(fields model.Fields) error {
	if len(fields) == 0 {
		return errs.ErrNoFields
	}
	for _, f := range fields {
		if !t.allows(f.Column) {
			return fmt.Errorf("%w: %s.%s", errs.ErrUnknownColumn, t.name, f.Column)
		}
	}
	return nil
}

type RecordRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, fields model.Fields) (int, error)
	Update(ctx context.Context, id int, fields model.Fields) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}

// Records runs list/create/update/delete against a single table. T must
// carry db tags for every column selected from the table.
type Records[T any] struct {
	db    postgres.Pool
	table Table
	log   *zap.Logger
}

func NewRecords[T any](db postgres.Pool, table Table, log *zap.Logger) (*Records[T], error) {
	known, ok := knownTables[table.name]
	if !ok {
		return nil, errors.Errorf("unknown table %q", table.name)
	}
	return &Records[T]{
		db:    db,
		table: known,
		log:   log.Named("records").With(zap.String("table", known.name)),
	}, nil
}

func (r *Records[T]) Table() Table {
	return r.table
}

func (r *Records[T]) List(ctx context.Context) ([]T, error) {
	query, args, err := qb.Select(append([]string{"id"}, r.table.columns...)...).
		From(r.table.name).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Records[T]) Create(ctx context.Context, fields model.Fields) (int, error) {
	if err := r.table.check(fields); err != nil {
		return 0, err
	}
	query, args, err := qb.Insert(r.table.name).
		Columns(fields.Columns()...).
		Values(fields.Values()...).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		r.log.Error("Create", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return 0, err
	}
	return id, nil
}

// Update does not check that the row exists; updating a missing id is a no-op.
func (r *Records[T]) Update(ctx context.Context, id int, fields model.Fields) error {
	if err := r.table.check(fields); err != nil {
		return err
	}
	q := qb.Update(r.table.name)
	for _, f := range fields {
		q = q.Set(f.Column, f.Value)
	}
	query, args, err := q.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query, args...)
	return err
}

// Delete does not check that the row exists.
func (r *Records[T]) Delete(ctx context.Context, id int) error {
	query, args, err := qb.Delete(r.table.name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return errors.Wrapf(errs.ErrBadRequest, "%s %d está referenciado", r.table.name, id)
		}
		return err
	}
	return nil
}

func (r *Records[T]) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	q := fmt.Sprintf(`select exists(select 1 from %s where id = $1)`, r.table.name)
	if err := r.db.QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
