package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	bearer     = "Bearer "
	accountKey = "account"
)

func (h *Handler) jwtAuthentication(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authorization := c.Request().Header.Get(echo.HeaderAuthorization)
		if authorization == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "No Authorization Header")
		}
		if !strings.HasPrefix(authorization, bearer) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
		}
		acc, err := h.authSvc.Authenticate(strings.TrimPrefix(authorization, bearer))
		if err != nil {
			h.log.Debug("token rejected", zap.Error(err))
			return echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
		}
		c.Set(accountKey, acc)
		return next(c)
	}
}
