package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

const mimeApplicationPDF = "application/pdf"

// GenerateReport streams the PDF for ?tipo=&filtros=<json object>.
func (h *Handler) GenerateReport(c echo.Context) error {
	tipo := c.QueryParam("tipo")
	if tipo == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tipo es requerido")
	}
	var filters map[string]any
	if raw := c.QueryParam("filtros"); raw != "" {
		dec := json.NewDecoder(strings.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&filters); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "filtros inválidos: "+err.Error())
		}
	}

	file, err := h.reportSvc.GenerateReport(c.Request().Context(), tipo, filters)
	if err != nil {
		if errors.Is(err, errs.ErrBadRequest) || errors.Is(err, errs.ErrNotFound) {
			return httpError(err)
		}
		h.log.Error("GenerateReport", zap.String("tipo", tipo), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Error al generar reporte: "+err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+file.Name)
	return c.Blob(http.StatusOK, mimeApplicationPDF, file.Content)
}

func (h *Handler) ListReports(c echo.Context) error {
	reports, err := h.reportSvc.ListReports(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reports)
}

func (h *Handler) ListReportTypes(c echo.Context) error {
	types, err := h.reportSvc.ListReportTypes(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, types)
}

// CreateReportType answers with the new id only.
func (h *Handler) CreateReportType(c echo.Context) error {
	var req model.ReportTypeRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	id, err := h.reportSvc.CreateReportType(c.Request().Context(), req.Descripcion)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, id)
}
