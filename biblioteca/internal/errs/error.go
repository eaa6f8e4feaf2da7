package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("no encontrado")
	ErrBadRequest = errors.New("solicitud inválida")

	ErrUserNotFound = fmt.Errorf("usuario %w", ErrNotFound)
	ErrLoanNotFound = fmt.Errorf("préstamo %w", ErrNotFound)

	ErrReportTypeExists   = fmt.Errorf("%w: el tipo de reporte ya existe", ErrBadRequest)
	ErrInvalidReportType  = fmt.Errorf("%w: tipo de reporte no válido", ErrBadRequest)
	ErrUnsupportedReport  = fmt.Errorf("%w: tipo de reporte no soportado", ErrBadRequest)
	ErrUnsupportedTable   = fmt.Errorf("%w: tabla no soportada", ErrBadRequest)
	ErrLoanIDRequired     = fmt.Errorf("%w: se requiere id_prestamo en los filtros", ErrBadRequest)
	ErrInvalidLoanID      = fmt.Errorf("%w: id_prestamo inválido", ErrBadRequest)
	ErrInvalidReference   = fmt.Errorf("%w: libro o usuario inexistente", ErrBadRequest)
	ErrUnknownColumn      = fmt.Errorf("%w: columna no permitida", ErrBadRequest)
	ErrNoFields           = fmt.Errorf("%w: no hay campos", ErrBadRequest)
	ErrInvalidCredentials = errors.New("Usuario o contraseña incorrectos")
)
