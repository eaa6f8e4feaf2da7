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

// CreateLoan inserts the loan and marks the book unavailable in one transaction.
func (r *repository) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (int, error) {
	cols := []string{"id_libro", "id_usuario", "devuelto"}
	vals := []any{req.IDLibro, req.IDUsuario, req.Devuelto}
	if !req.FechaDevolucion.IsZero() {
		cols = append(cols, "fecha_devolucion")
		vals = append(vals, req.FechaDevolucion)
	}
	insert, insertArgs, err := qb.Insert(loanTableName).
		Columns(cols...).
		Values(vals...).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	update, updateArgs, err := qb.Update(bookTableName).
		Set("disponible", false).
		Where(sq.Eq{"id": req.IDLibro}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = postgres.WithTx(ctx, r.db, func(q postgres.Querier) error {
		if err := q.QueryRow(ctx, insert, insertArgs...).Scan(&id); err != nil {
			if isForeignKeyViolation(err) {
				return errs.ErrInvalidReference
			}
			return errors.Wrap(err, "insert prestamo")
		}
		if _, err := q.Exec(ctx, update, updateArgs...); err != nil {
			return errors.Wrap(err, "update libro")
		}
		return nil
	})
	if err != nil {
		r.log.Error("CreateLoan", zap.Int("id_libro", req.IDLibro), zap.Int("id_usuario", req.IDUsuario), zap.Error(err))
		return 0, err
	}
	return id, nil
}

const loanInfoQuery = `
select p.id, l.titulo as libro, u.nombre as usuario,
       p.fecha_prestamo, p.fecha_devolucion, p.devuelto
from prestamo p
join libro l on p.id_libro = l.id
join usuario u on p.id_usuario = u.id
order by p.id`

func (r *repository) ListLoans(ctx context.Context) ([]model.LoanInfo, error) {
	rows, err := r.db.Query(ctx, loanInfoQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loans, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.LoanInfo])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	if loans == nil {
		loans = []model.LoanInfo{}
	}
	return loans, nil
}

func (r *repository) LoanReceipt(ctx context.Context, loanID int) (model.LoanReceipt, error) {
	query, args, err := qb.Select("p.id", "l.titulo", "l.autor", "u.nombre", "p.fecha_prestamo", "p.fecha_devolucion").
		From(loanTableName + " p").
		Join(fmt.Sprintf("%s l on p.id_libro = l.id", bookTableName)).
		Join(fmt.Sprintf("%s u on p.id_usuario = u.id", userTableName)).
		Where(sq.Eq{"p.id": loanID}).
		ToSql()
	if err != nil {
		return model.LoanReceipt{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.LoanReceipt{}, err
	}
	defer rows.Close()

	receipt, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.LoanReceipt])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LoanReceipt{}, errs.ErrLoanNotFound
		}
		return model.LoanReceipt{}, err
	}
	return receipt, nil
}

func (r *repository) TopLoanedBooks(ctx context.Context, limit uint64) ([]model.BookLoanCount, error) {
	query, args, err := qb.Select("l.titulo", "count(p.id) as prestamos").
		From(loanTableName + " p").
		Join(fmt.Sprintf("%s l on p.id_libro = l.id", bookTableName)).
		GroupBy("p.id_libro", "l.titulo").
		OrderBy("prestamos desc").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.BookLoanCount])
}

func (r *repository) LoansByMonth(ctx context.Context) ([]model.MonthLoanCount, error) {
	const q = `
select to_char(p.fecha_prestamo, 'YYYY-MM') as mes, count(p.id) as prestamos
from prestamo p
group by mes
order by mes`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.MonthLoanCount])
}
