package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

func TestRecords_CreateThenList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mock := newMock(t)
	books, err := repository.NewRecords[model.Book](mock, repository.TableBooks, zap.NewExample())
	require.NoError(t, err)

	available := true
	req := model.BookRequest{Titulo: "Rayuela", Autor: "Julio Cortázar", Disponible: &available}
	mock.ExpectQuery(q("INSERT INTO libro (titulo,autor,disponible) VALUES ($1,$2,$3) returning id")).
		WithArgs("Rayuela", "Julio Cortázar", true).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(q("SELECT id, titulo, autor, disponible FROM libro ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "titulo", "autor", "disponible"}).
			AddRow(5, "Rayuela", "Julio Cortázar", true))

	id, err := books.Create(ctx, req.Fields())
	require.NoError(t, err)
	require.Equal(t, 5, id)

	list, err := books.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Book{{ID: 5, Titulo: "Rayuela", Autor: "Julio Cortázar", Disponible: true}}, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecords_ListEmpty(t *testing.T) {
	t.Parallel()
	mock := newMock(t)
	users, err := repository.NewRecords[model.User](mock, repository.TableUsers, zap.NewExample())
	require.NoError(t, err)

	mock.ExpectQuery(q("SELECT id, nombre, correo FROM usuario ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "nombre", "correo"}))

	list, err := users.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestRecords_UpdateDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mock := newMock(t)
	books, err := repository.NewRecords[model.Book](mock, repository.TableBooks, zap.NewExample())
	require.NoError(t, err)

	mock.ExpectExec(q("UPDATE libro SET titulo = $1, autor = $2 WHERE id = $3")).
		WithArgs("Ficciones", "Borges", 99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(q("DELETE FROM libro WHERE id = $1")).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, books.Update(ctx, 99, model.Fields{
		{Column: "titulo", Value: "Ficciones"},
		{Column: "autor", Value: "Borges"},
	}))
	require.NoError(t, books.Delete(ctx, 99))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecords_RejectsIdentifiers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mock := newMock(t)

	_, err := repository.NewRecords[model.Book](mock, repository.Table{}, zap.NewExample())
	require.Error(t, err)

	books, err := repository.NewRecords[model.Book](mock, repository.TableBooks, zap.NewExample())
	require.NoError(t, err)

	_, err = books.Create(ctx, model.Fields{{Column: "id; drop table libro", Value: 1}})
	require.ErrorIs(t, err, errs.ErrUnknownColumn)
	require.ErrorIs(t, books.Update(ctx, 1, nil), errs.ErrNoFields)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateLoan(t *testing.T) {
	t.Parallel()
	due := model.NewDate(2024, time.June, 1)
	req := model.CreateLoanRequest{IDLibro: 1, IDUsuario: 2, FechaDevolucion: due}
	insert := q("INSERT INTO prestamo (id_libro,id_usuario,devuelto,fecha_devolucion) VALUES ($1,$2,$3,$4) returning id")
	update := q("UPDATE libro SET disponible = $1 WHERE id = $2")

	t.Run("ok", func(t *testing.T) {
		mock := newMock(t)
		repo, err := repository.NewRepository(mock, zap.NewExample())
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(insert).WithArgs(1, 2, false, due).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectExec(update).WithArgs(false, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		id, err := repo.CreateLoan(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, 10, id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("availability update fails", func(t *testing.T) {
		mock := newMock(t)
		repo, err := repository.NewRepository(mock, zap.NewExample())
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(insert).WithArgs(1, 2, false, due).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectExec(update).WithArgs(false, 1).
			WillReturnError(errors.New("conn reset"))
		mock.ExpectRollback()

		_, err = repo.CreateLoan(context.Background(), req)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown book", func(t *testing.T) {
		mock := newMock(t)
		repo, err := repository.NewRepository(mock, zap.NewExample())
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(insert).WithArgs(1, 2, false, due).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
		mock.ExpectRollback()

		_, err = repo.CreateLoan(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrInvalidReference)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateReportType(t *testing.T) {
	t.Parallel()
	lookup := q("SELECT id FROM tipo_reporte WHERE lower(descripcion) = $1")
	insert := q("INSERT INTO tipo_reporte (descripcion) VALUES ($1) returning id")

	t.Run("duplicate differs in case", func(t *testing.T) {
		mock := newMock(t)
		repo, err := repository.NewRepository(mock, zap.NewExample())
		require.NoError(t, err)

		mock.ExpectQuery(lookup).WithArgs("tabla").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

		_, err = repo.CreateReportType(context.Background(), "TaBla")
		require.ErrorIs(t, err, errs.ErrReportTypeExists)
		require.ErrorIs(t, err, errs.ErrBadRequest)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("new type stored lower-cased", func(t *testing.T) {
		mock := newMock(t)
		repo, err := repository.NewRepository(mock, zap.NewExample())
		require.NoError(t, err)

		mock.ExpectQuery(lookup).WithArgs("inventario").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))
		mock.ExpectQuery(insert).WithArgs("inventario").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(4))

		id, err := repo.CreateReportType(context.Background(), "Inventario")
		require.NoError(t, err)
		require.Equal(t, 4, id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique index race", func(t *testing.T) {
		mock := newMock(t)
		repo, err := repository.NewRepository(mock, zap.NewExample())
		require.NoError(t, err)

		mock.ExpectQuery(lookup).WithArgs("inventario").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))
		mock.ExpectQuery(insert).WithArgs("inventario").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err = repo.CreateReportType(context.Background(), "inventario")
		require.ErrorIs(t, err, errs.ErrReportTypeExists)
	})
}

func TestRepository_Notifications(t *testing.T) {
	t.Parallel()
	exists := q("select exists(select 1 from usuario where id = $1)")

	t.Run("unknown user", func(t *testing.T) {
		mock := newMock(t)
		repo, err := repository.NewRepository(mock, zap.NewExample())
		require.NoError(t, err)

		mock.ExpectQuery(exists).WithArgs(42).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		_, err = repo.CreateNotification(context.Background(), 42, "hi")
		require.ErrorIs(t, err, errs.ErrUserNotFound)
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create and list by user", func(t *testing.T) {
		mock := newMock(t)
		repo, err := repository.NewRepository(mock, zap.NewExample())
		require.NoError(t, err)
		at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery(exists).WithArgs(42).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(q("INSERT INTO notificaciones (usuario_id,mensaje,fecha) VALUES ($1,$2,current_timestamp) returning id")).
			WithArgs(42, "hi").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectQuery(exists).WithArgs(42).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(q("FROM notificaciones n JOIN usuario u on n.usuario_id = u.id WHERE n.usuario_id = $1 ORDER BY n.fecha desc, n.id desc")).
			WithArgs(42).
			WillReturnRows(pgxmock.NewRows([]string{"id", "usuario_id", "usuario", "mensaje", "fecha"}).
				AddRow(3, 42, "Ana", "hi", at))

		id, err := repo.CreateNotification(context.Background(), 42, "hi")
		require.NoError(t, err)
		require.Equal(t, 3, id)

		items, err := repo.ListUserNotifications(context.Background(), 42)
		require.NoError(t, err)
		require.Equal(t, []model.Notification{{ID: 3, UsuarioID: 42, Usuario: "Ana", Mensaje: "hi", Fecha: at}}, items)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_LoanReceiptNotFound(t *testing.T) {
	t.Parallel()
	mock := newMock(t)
	repo, err := repository.NewRepository(mock, zap.NewExample())
	require.NoError(t, err)

	mock.ExpectQuery(q("WHERE p.id = $1")).WithArgs(404).
		WillReturnRows(pgxmock.NewRows([]string{"id", "titulo", "autor", "nombre", "fecha_prestamo", "fecha_devolucion"}))

	_, err = repo.LoanReceipt(context.Background(), 404)
	require.ErrorIs(t, err, errs.ErrLoanNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
