package service_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/service"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"

	repo_mocks "github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository/mocks"
)

type recordingPublisher struct {
	mu     sync.Mutex
	err    error
	topics []string
	events []kafka.Event
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, event kafka.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return p.err
}

var testAuth = auth.Config{JWTSecret: "test", TokenTTL: time.Hour}

var seededTypes = []model.ReportType{
	{ID: 1, Descripcion: "tabla"},
	{ID: 2, Descripcion: "grafico"},
	{ID: 3, Descripcion: "comprobante"},
	{ID: 4, Descripcion: "inventario"},
}

func newService(t *testing.T) (*service.Service, *repo_mocks.MockRepository, *recordingPublisher) {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	pub := &recordingPublisher{}
	return service.NewService(repo, pub, testAuth, zap.NewExample().Named("test")), repo, pub
}

func isPDF(b []byte) bool {
	return bytes.HasPrefix(b, []byte("%PDF"))
}

func TestService_GenerateReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	type want struct {
		name string
		err  error
	}
	tests := []struct {
		name         string
		tipo         string
		filters      map[string]any
		mockBehavior func(r *repo_mocks.MockRepository)
		want         want
	}{
		{
			name: "unknown type writes no audit row",
			tipo: "pastel",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
			},
			want: want{err: errs.ErrInvalidReportType},
		},
		{
			name: "tabla defaults to prestamos",
			tipo: "tabla",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
				r.EXPECT().CreateReport(gomock.Any(), 1).Return(10, nil)
				r.EXPECT().ListLoans(gomock.Any()).Return([]model.LoanInfo{}, nil)
			},
			want: want{name: "reporte_prestamos.pdf"},
		},
		{
			name:    "tabla type is case-insensitive",
			tipo:    "TaBlA",
			filters: map[string]any{"tabla": "libros"},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
				r.EXPECT().CreateReport(gomock.Any(), 1).Return(11, nil)
				r.EXPECT().ListBooks(gomock.Any()).Return([]model.Book{{ID: 1, Titulo: "Rayuela", Autor: "Cortázar", Disponible: true}}, nil)
			},
			want: want{name: "reporte_libros.pdf"},
		},
		{
			name:    "unsupported table after audit",
			tipo:    "tabla",
			filters: map[string]any{"tabla": "multas"},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
				r.EXPECT().CreateReport(gomock.Any(), 1).Return(12, nil)
			},
			want: want{err: errs.ErrUnsupportedTable},
		},
		{
			name:    "grafico",
			tipo:    "grafico",
			filters: map[string]any{"parametro": "../top libros"},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
				r.EXPECT().CreateReport(gomock.Any(), 2).Return(13, nil)
				r.EXPECT().TopLoanedBooks(gomock.Any(), uint64(5)).Return([]model.BookLoanCount{{Titulo: "Rayuela", Prestamos: 3}}, nil)
				r.EXPECT().LoansByMonth(gomock.Any()).Return([]model.MonthLoanCount{{Mes: "2024-01", Prestamos: 3}}, nil)
			},
			want: want{name: "top_libros.pdf"},
		},
		{
			name: "grafico aggregate fails",
			tipo: "grafico",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
				r.EXPECT().CreateReport(gomock.Any(), 2).Return(14, nil)
				r.EXPECT().TopLoanedBooks(gomock.Any(), uint64(5)).Return(nil, errors.New("db down")).AnyTimes()
				r.EXPECT().LoansByMonth(gomock.Any()).Return(nil, nil).AnyTimes()
			},
			want: want{err: errors.New("loan aggregates: db down")},
		},
		{
			name: "comprobante requires id_prestamo",
			tipo: "comprobante",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
				r.EXPECT().CreateReport(gomock.Any(), 3).Return(15, nil)
			},
			want: want{err: errs.ErrLoanIDRequired},
		},
		{
			name:    "comprobante non-integer id",
			tipo:    "comprobante",
			filters: map[string]any{"id_prestamo": 1.5},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
				r.EXPECT().CreateReport(gomock.Any(), 3).Return(16, nil)
			},
			want: want{err: errs.ErrInvalidLoanID},
		},
		{
			name:    "comprobante with null id",
			tipo:    "comprobante",
			filters: map[string]any{"id_prestamo": nil},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
				r.EXPECT().CreateReport(gomock.Any(), 3).Return(20, nil)
			},
			want: want{err: errs.ErrLoanNotFound},
		},
		{
			name:    "comprobante for missing loan",
			tipo:    "comprobante",
			filters: map[string]any{"id_prestamo": float64(404)},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
				r.EXPECT().CreateReport(gomock.Any(), 3).Return(17, nil)
				r.EXPECT().LoanReceipt(gomock.Any(), 404).Return(model.LoanReceipt{}, errs.ErrLoanNotFound)
			},
			want: want{err: errs.ErrNotFound},
		},
		{
			name:    "comprobante",
			tipo:    "comprobante",
			filters: map[string]any{"id_prestamo": "7"},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
				r.EXPECT().CreateReport(gomock.Any(), 3).Return(18, nil)
				r.EXPECT().LoanReceipt(gomock.Any(), 7).Return(model.LoanReceipt{ID: 7, Titulo: "Rayuela", Autor: "Cortázar", Nombre: "Ana"}, nil)
				r.EXPECT().CountReports(gomock.Any(), 3).Return(3, nil)
			},
			want: want{name: "comprobante_3.pdf"},
		},
		{
			name: "registered type without renderer",
			tipo: "inventario",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil)
				r.EXPECT().CreateReport(gomock.Any(), 4).Return(19, nil)
			},
			want: want{err: errs.ErrUnsupportedReport},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, pub := newService(t)
			tt.mockBehavior(repo)

			file, err := svc.GenerateReport(ctx, tt.tipo, tt.filters)
			if tt.want.err != nil {
				require.Error(t, err)
				if errors.Is(tt.want.err, errs.ErrBadRequest) || errors.Is(tt.want.err, errs.ErrNotFound) {
					require.ErrorIs(t, err, tt.want.err)
				} else {
					require.EqualError(t, err, tt.want.err.Error())
				}
				require.Empty(t, file.Content)
				require.Empty(t, pub.events)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want.name, file.Name)
			require.True(t, isPDF(file.Content))
			require.Equal(t, []string{kafka.ReportTopic}, pub.topics)
			require.Equal(t, kafka.EventReportGenerated, pub.events[0].Type)
		})
	}
}

func TestService_CreateReportType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("duplicate", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().CreateReportType(gomock.Any(), "Tabla").Return(0, errs.ErrReportTypeExists)

		_, err := svc.CreateReportType(ctx, "Tabla")
		require.ErrorIs(t, err, errs.ErrBadRequest)
	})

	t.Run("new type is usable without restart", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		gomock.InOrder(
			repo.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes[:3], nil),
			repo.EXPECT().CreateReportType(gomock.Any(), "Inventario").Return(4, nil),
			repo.EXPECT().ListReportTypes(gomock.Any()).Return(seededTypes, nil),
			repo.EXPECT().CreateReport(gomock.Any(), 4).Return(20, nil),
		)
		require.NoError(t, svc.LoadReportTypes(ctx))

		id, err := svc.CreateReportType(ctx, "Inventario")
		require.NoError(t, err)
		require.Equal(t, 4, id)

		_, err = svc.GenerateReport(ctx, "inventario", nil)
		require.ErrorIs(t, err, errs.ErrUnsupportedReport)
	})
}

func TestService_CreateLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.CreateLoanRequest{IDLibro: 1, IDUsuario: 2}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newService(t)
		repo.EXPECT().CreateLoan(gomock.Any(), req).Return(9, nil)

		msg, err := svc.CreateLoan(ctx, req)
		require.NoError(t, err)
		require.Equal(t, model.NewCreated("Préstamo registrado y libro marcado como no disponible", 9), msg)
		require.Equal(t, []string{kafka.LoanTopic}, pub.topics)
		require.Equal(t, kafka.EventLoanCreated, pub.events[0].Type)
	})

	t.Run("publish failure is not returned", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newService(t)
		pub.err = errors.New("circuit breaker is open")
		repo.EXPECT().CreateLoan(gomock.Any(), req).Return(9, nil)

		_, err := svc.CreateLoan(ctx, req)
		require.NoError(t, err)
	})

	t.Run("rolled back", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newService(t)
		repo.EXPECT().CreateLoan(gomock.Any(), req).Return(0, errs.ErrInvalidReference)

		_, err := svc.CreateLoan(ctx, req)
		require.ErrorIs(t, err, errs.ErrInvalidReference)
		require.Empty(t, pub.events)
	})
}

func TestService_Notifications(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.NotificationRequest{UsuarioID: 42, Mensaje: "Su préstamo vence mañana"}

	t.Run("send stores nothing", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		require.Equal(t, model.SentNotification{IDUsuario: 42, Mensaje: req.Mensaje}, svc.SendNotification(req))
	})

	t.Run("create persists", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().CreateNotification(gomock.Any(), 42, req.Mensaje).Return(5, nil)

		msg, err := svc.CreateNotification(ctx, req)
		require.NoError(t, err)
		require.Equal(t, model.NewCreated("Notificación creada", 5), msg)
	})

	t.Run("create for unknown user", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().CreateNotification(gomock.Any(), 42, req.Mensaje).Return(0, errs.ErrUserNotFound)

		_, err := svc.CreateNotification(ctx, req)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3creto"), bcrypt.MinCost)
	require.NoError(t, err)
	account := model.Account{ID: 1, Usuario: "admin", HashedPassword: string(hash), Nombre: "Administrador"}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().GetAccount(gomock.Any(), "admin").Return(account, nil)

		resp, err := svc.Login(ctx, model.LoginRequest{Usuario: "admin", Password: "s3creto"})
		require.NoError(t, err)
		require.Equal(t, "Login exitoso", resp.Mensaje)
		require.Equal(t, model.AccountInfo{ID: 1, Nombre: "Administrador", Usuario: "admin"}, resp.Usuario)

		claims, err := auth.ParseToken(testAuth, resp.AccessToken)
		require.NoError(t, err)
		require.Equal(t, "admin", claims.Profile.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().GetAccount(gomock.Any(), "admin").Return(account, nil)

		_, err := svc.Login(ctx, model.LoginRequest{Usuario: "admin", Password: "nope"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().GetAccount(gomock.Any(), "ghost").Return(model.Account{}, errs.ErrNotFound)

		_, err := svc.Login(ctx, model.LoginRequest{Usuario: "ghost", Password: "x"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	token, err := auth.IssueToken(testAuth, 1, "admin", time.Now())
	require.NoError(t, err)

	t.Run("token from login", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		acc, err := svc.Authenticate(token)
		require.NoError(t, err)
		require.Equal(t, model.AccountInfo{ID: 1, Usuario: "admin"}, acc)

		repo.EXPECT().GetAccount(gomock.Any(), "admin").
			Return(model.Account{ID: 1, Usuario: "admin", Nombre: "Administrador"}, nil)
		info, err := svc.Profile(ctx, acc.Usuario)
		require.NoError(t, err)
		require.Equal(t, model.AccountInfo{ID: 1, Nombre: "Administrador", Usuario: "admin"}, info)
	})

	t.Run("foreign secret", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		other, err := auth.IssueToken(auth.Config{JWTSecret: "other", TokenTTL: time.Hour}, 1, "admin", time.Now())
		require.NoError(t, err)
		_, err = svc.Authenticate(other)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		_, err := svc.Authenticate("not-a-token")
		require.Error(t, err)
	})
}
