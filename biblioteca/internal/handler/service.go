package handler

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	List(ctx context.Context) ([]model.Book, error)
	Create(ctx context.Context, fields model.Fields) (model.Message, error)
	Update(ctx context.Context, id int, fields model.Fields) (model.Message, error)
	Delete(ctx context.Context, id int) (model.Message, error)
}

type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, fields model.Fields) (model.Message, error)
	Update(ctx context.Context, id int, fields model.Fields) (model.Message, error)
	Delete(ctx context.Context, id int) (model.Message, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type InventoryService interface {
	AvailableBooks(ctx context.Context) ([]model.Book, error)
}

type LoanService interface {
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Message, error)
	ListLoans(ctx context.Context) ([]model.LoanInfo, error)
}

type NotificationService interface {
	CreateNotification(ctx context.Context, req model.NotificationRequest) (model.Message, error)
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	ListUserNotifications(ctx context.Context, userID int) ([]model.Notification, error)
	SendNotification(req model.NotificationRequest) model.SentNotification
}

type ReportService interface {
	GenerateReport(ctx context.Context, tipo string, filters map[string]any) (model.ReportFile, error)
	ListReports(ctx context.Context) ([]model.Report, error)
	ListReportTypes(ctx context.Context) ([]model.ReportType, error)
	CreateReportType(ctx context.Context, description string) (int, error)
}

type AuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	Authenticate(token string) (model.AccountInfo, error)
	Profile(ctx context.Context, username string) (model.AccountInfo, error)
}

var (
	_ BookService         = (*service.Records[model.Book])(nil)
	_ UserService         = (*service.Records[model.User])(nil)
	_ InventoryService    = (*service.Service)(nil)
	_ LoanService         = (*service.Service)(nil)
	_ NotificationService = (*service.Service)(nil)
	_ ReportService       = (*service.Service)(nil)
	_ AuthService         = (*service.Service)(nil)
)
