package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

func (h *Handler) CreateNotification(c echo.Context) error {
	var req model.NotificationRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	msg, err := h.notificationSvc.CreateNotification(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) ListNotifications(c echo.Context) error {
	items, err := h.notificationSvc.ListNotifications(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListUserNotifications(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	items, err := h.notificationSvc.ListUserNotifications(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// SendNotification only echoes the payload back.
func (h *Handler) SendNotification(c echo.Context) error {
	var req model.NotificationRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.notificationSvc.SendNotification(req))
}
