package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

func (r *repository) GetAccount(ctx context.Context, username string) (model.Account, error) {
	query, args, err := qb.Select("id", "usuario", "hashed_password", "nombre").
		From(accountTableName).
		Where(sq.Eq{"usuario": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Account{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Account{}, err
	}
	defer rows.Close()

	acc, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, errs.ErrNotFound
		}
		return model.Account{}, err
	}
	return acc, nil
}
