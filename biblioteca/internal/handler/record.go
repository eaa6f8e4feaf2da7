package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.booksSvc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	msg, err := h.booksSvc.Create(c.Request().Context(), req.Fields())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

// UpdateBook changes titulo and autor only; disponible is owned by loans.
func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	titulo, autor := strings.TrimSpace(req.Titulo), strings.TrimSpace(req.Autor)
	if titulo == "" || autor == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Título y autor no pueden estar vacíos.")
	}
	fields := model.Fields{
		{Column: "titulo", Value: titulo},
		{Column: "autor", Value: autor},
	}
	if _, err := h.booksSvc.Update(c.Request().Context(), id, fields); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.NewMessage("Libro actualizado correctamente"))
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	msg, err := h.booksSvc.Delete(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.usersSvc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.UserRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	msg, err := h.usersSvc.Create(c.Request().Context(), req.Fields())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) userExists(c echo.Context, id int) error {
	ok, err := h.usersSvc.Exists(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	if !ok {
		return httpError(errs.ErrUserNotFound)
	}
	return nil
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.UserRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.userExists(c, id); err != nil {
		return err
	}
	if _, err := h.usersSvc.Update(c.Request().Context(), id, req.Fields()); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.NewMessage("Usuario actualizado correctamente"))
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.userExists(c, id); err != nil {
		return err
	}
	if _, err := h.usersSvc.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.NewMessage("Usuario eliminado correctamente"))
}

func (h *Handler) AvailableBooks(c echo.Context) error {
	books, err := h.inventorySvc.AvailableBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}
