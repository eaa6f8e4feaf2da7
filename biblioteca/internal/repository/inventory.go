package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

func (r *repository) AvailableBooks(ctx context.Context) ([]model.Book, error) {
	return r.selectBooks(ctx, qb.Select("id", "titulo", "autor", "disponible").
		From(bookTableName).
		Where(sq.Eq{"disponible": true}).
		OrderBy("id"))
}

func (r *repository) selectBooks(ctx context.Context, q sq.SelectBuilder) ([]model.Book, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("selectBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}
