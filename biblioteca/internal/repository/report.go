package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

func (r *repository) ListReportTypes(ctx context.Context) ([]model.ReportType, error) {
	query, args, err := qb.Select("id", "descripcion").
		From(reportTypeTableName).
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

	types, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ReportType])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	if types == nil {
		types = []model.ReportType{}
	}
	return types, nil
}

// CreateReportType stores description lower-cased. A case-insensitive
// duplicate fails with errs.ErrReportTypeExists and inserts nothing.
func (r *repository) CreateReportType(ctx context.Context, description string) (int, error) {
	description = strings.ToLower(description)

	query, args, err := qb.Select("id").
		From(reportTypeTableName).
		Where(sq.Eq{"lower(descripcion)": description}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var existing int
	err = r.db.QueryRow(ctx, query, args...).Scan(&existing)
	switch {
	case err == nil:
		return 0, fmt.Errorf("%w: '%s'", errs.ErrReportTypeExists, description)
	case !errors.Is(err, pgx.ErrNoRows):
		return 0, err
	}

	query, args, err = qb.Insert(reportTypeTableName).
		Columns("descripcion").
		Values(description).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: '%s'", errs.ErrReportTypeExists, description)
		}
		return 0, err
	}
	return id, nil
}

func (r *repository) CreateReport(ctx context.Context, reportTypeID int) (int, error) {
	q := `insert into reporte (fecha, tipo_reporte) values (current_timestamp, $1) returning id`
	var id int
	if err := r.db.QueryRow(ctx, q, reportTypeID).Scan(&id); err != nil {
		r.log.Error("CreateReport", zap.Int("tipo_reporte", reportTypeID), zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *repository) ListReports(ctx context.Context) ([]model.Report, error) {
	query, args, err := qb.Select("r.id", "r.fecha", "tr.descripcion as tipo_descripcion").
		From(reportTableName + " r").
		Join(fmt.Sprintf("%s tr on r.tipo_reporte = tr.id", reportTypeTableName)).
		OrderBy("r.fecha desc", "r.id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Report])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	if reports == nil {
		reports = []model.Report{}
	}
	return reports, nil
}

func (r *repository) CountReports(ctx context.Context, reportTypeID int) (int, error) {
	query, args, err := qb.Select("count(*)").
		From(reportTableName).
		Where(sq.Eq{"tipo_reporte": reportTypeID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	return r.selectBooks(ctx, qb.Select("id", "titulo", "autor", "disponible").From(bookTableName).OrderBy("id"))
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query, args, err := qb.Select("id", "nombre", "correo").
		From(userTableName).
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

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
}
