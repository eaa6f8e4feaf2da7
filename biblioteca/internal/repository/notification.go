package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

func (r *repository) userExists(ctx context.Context, userID int) error {
	var exists bool
	q := fmt.Sprintf(`select exists(select 1 from %s where id = $1)`, userTableName)
	if err := r.db.QueryRow(ctx, q, userID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return errs.ErrUserNotFound
	}
	return nil
}

func (r *repository) CreateNotification(ctx context.Context, userID int, message string) (int, error) {
	if err := r.userExists(ctx, userID); err != nil {
		return 0, err
	}
	query, args, err := qb.Insert(notificationTableName).
		Columns("usuario_id", "mensaje", "fecha").
		Values(userID, message, sq.Expr("current_timestamp")).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, errs.ErrUserNotFound
		}
		return 0, err
	}
	return id, nil
}

func notificationsQuery() sq.SelectBuilder {
	return qb.Select("n.id", "n.usuario_id", "u.nombre as usuario", "n.mensaje", "n.fecha").
		From(notificationTableName + " n").
		Join(fmt.Sprintf("%s u on n.usuario_id = u.id", userTableName)).
		OrderBy("n.fecha desc", "n.id desc")
}

func (r *repository) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	query, args, err := notificationsQuery().ToSql()
	if err != nil {
		return nil, err
	}
	return r.collectNotifications(ctx, query, args)
}

func (r *repository) ListUserNotifications(ctx context.Context, userID int) ([]model.Notification, error) {
	if err := r.userExists(ctx, userID); err != nil {
		return nil, err
	}
	query, args, err := notificationsQuery().
		Where(sq.Eq{"n.usuario_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.collectNotifications(ctx, query, args)
}

func (r *repository) collectNotifications(ctx context.Context, query string, args []any) ([]model.Notification, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Notification])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	if items == nil {
		items = []model.Notification{}
	}
	return items, nil
}
