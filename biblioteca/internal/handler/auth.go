package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.authSvc.Login(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Profile(c echo.Context) error {
	acc, ok := c.Get(accountKey).(model.AccountInfo)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
	}
	info, err := h.authSvc.Profile(c.Request().Context(), acc.Usuario)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, info)
}
