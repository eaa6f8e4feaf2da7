package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

func (h *Handler) CreateLoan(c echo.Context) error {
	var req model.CreateLoanRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	msg, err := h.loanSvc.CreateLoan(c.Request().Context(), req)
	if err != nil {
		h.log.Debug("CreateLoan", zap.Error(err))
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) ListLoans(c echo.Context) error {
	loans, err := h.loanSvc.ListLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}
