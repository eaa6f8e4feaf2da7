package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/postgres"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type InventoryRepository interface {
	AvailableBooks(ctx context.Context) ([]model.Book, error)
}

type LoanRepository interface {
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (int, error)
	ListLoans(ctx context.Context) ([]model.LoanInfo, error)
	LoanReceipt(ctx context.Context, loanID int) (model.LoanReceipt, error)
	TopLoanedBooks(ctx context.Context, limit uint64) ([]model.BookLoanCount, error)
	LoansByMonth(ctx context.Context) ([]model.MonthLoanCount, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, userID int, message string) (int, error)
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	ListUserNotifications(ctx context.Context, userID int) ([]model.Notification, error)
}

type ReportRepository interface {
	ListReportTypes(ctx context.Context) ([]model.ReportType, error)
	CreateReportType(ctx context.Context, description string) (int, error)
	CreateReport(ctx context.Context, reportTypeID int) (int, error)
	ListReports(ctx context.Context) ([]model.Report, error)
	CountReports(ctx context.Context, reportTypeID int) (int, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type AccountRepository interface {
	GetAccount(ctx context.Context, username string) (model.Account, error)
}

type Repository interface {
	InventoryRepository
	LoanRepository
	NotificationRepository
	ReportRepository
	AccountRepository
}

type repository struct {
	db  postgres.Pool
	log *zap.Logger
}

func NewRepository(db postgres.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

var _ Repository = (*repository)(nil)

const (
	bookTableName         = `libro`
	userTableName         = `usuario`
	loanTableName         = `prestamo`
	notificationTableName = `notificaciones`
	reportTypeTableName   = `tipo_reporte`
	reportTableName       = `reporte`
	accountTableName      = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isUniqueViolation(err error) bool {
	return isPgError(err, pgerrcode.UniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return isPgError(err, pgerrcode.ForeignKeyViolation)
}
