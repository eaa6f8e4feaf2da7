package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	_ "github.com/Astemirdum/biblioteca-service/biblioteca/swagger"
	md "github.com/Astemirdum/biblioteca-service/pkg/middleware"
	"github.com/Astemirdum/biblioteca-service/pkg/validate"
)

// Services groups what the router serves. Nil members are allowed in
// tests that only register a subset of routes.
type Services struct {
	Books         BookService
	Users         UserService
	Inventory     InventoryService
	Loans         LoanService
	Notifications NotificationService
	Reports       ReportService
	Auth          AuthService
}

type Handler struct {
	booksSvc        BookService
	usersSvc        UserService
	inventorySvc    InventoryService
	loanSvc         LoanService
	notificationSvc NotificationService
	reportSvc       ReportService
	authSvc         AuthService
	log             *zap.Logger
}

func New(svc Services, log *zap.Logger) *Handler {
	return &Handler{
		booksSvc:        svc.Books,
		usersSvc:        svc.Users,
		inventorySvc:    svc.Inventory,
		loanSvc:         svc.Loans,
		notificationSvc: svc.Notifications,
		reportSvc:       svc.Reports,
		authSvc:         svc.Auth,
		log:             log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/login", h.Login)
	api.GET("/perfil", h.Profile, h.jwtAuthentication)

	api.GET("/libros/", h.ListBooks)
	api.POST("/libros/", h.CreateBook)
	api.PUT("/libros/:id", h.UpdateBook)
	api.DELETE("/libros/:id", h.DeleteBook)

	api.GET("/usuarios/", h.ListUsers)
	api.POST("/usuarios/", h.CreateUser)
	api.PUT("/usuarios/:id", h.UpdateUser)
	api.DELETE("/usuarios/:id", h.DeleteUser)

	api.GET("/inventario/disponibles/", h.AvailableBooks)

	api.POST("/prestamos/", h.CreateLoan)
	api.GET("/prestamos/", h.ListLoans)

	api.GET("/reportes/", h.GenerateReport)
	api.GET("/reportes/listar/", h.ListReports)
	api.GET("/tipos_reporte/", h.ListReportTypes)
	api.POST("/tipos_reporte/", h.CreateReportType)

	api.POST("/notificaciones/", h.CreateNotification)
	api.GET("/notificaciones/", h.ListNotifications)
	api.GET("/notificaciones/usuario/:id", h.ListUserNotifications)
	api.POST("/notificaciones/enviar/", h.SendNotification)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain errors onto status codes; anything unknown is a 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrBadRequest):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func paramID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	return id, nil
}

// bindValid binds the body into req and runs the struct validator.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
