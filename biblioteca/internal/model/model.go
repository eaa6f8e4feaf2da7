package model

import (
	"time"
)

type Book struct {
	ID         int    `json:"id" db:"id"`
	Titulo     string `json:"titulo" db:"titulo"`
	Autor      string `json:"autor" db:"autor"`
	Disponible bool   `json:"disponible" db:"disponible"`
}

type BookRequest struct {
	Titulo     string `json:"titulo" validate:"required"`
	Autor      string `json:"autor" validate:"required"`
	Disponible *bool  `json:"disponible" validate:"required"`
}

type User struct {
	ID     int    `json:"id" db:"id"`
	Nombre string `json:"nombre" db:"nombre"`
	Correo string `json:"correo" db:"correo"`
}

type UserRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Correo string `json:"correo" validate:"required"`
}

type CreateLoanRequest struct {
	IDLibro         int  `json:"id_libro" validate:"required"`
	IDUsuario       int  `json:"id_usuario" validate:"required"`
	FechaDevolucion Date `json:"fecha_devolucion"`
	Devuelto        bool `json:"devuelto"`
}

// LoanInfo is a loan joined with the book title and the user name.
type LoanInfo struct {
	ID              int    `json:"id" db:"id"`
	Libro           string `json:"libro" db:"libro"`
	Usuario         string `json:"usuario" db:"usuario"`
	FechaPrestamo   Date   `json:"fecha_prestamo" db:"fecha_prestamo"`
	FechaDevolucion *Date  `json:"fecha_devolucion" db:"fecha_devolucion"`
	Devuelto        bool   `json:"devuelto" db:"devuelto"`
}

type LoanReceipt struct {
	ID              int    `db:"id"`
	Titulo          string `db:"titulo"`
	Autor           string `db:"autor"`
	Nombre          string `db:"nombre"`
	FechaPrestamo   Date   `db:"fecha_prestamo"`
	FechaDevolucion *Date  `db:"fecha_devolucion"`
}

type BookLoanCount struct {
	Titulo    string `db:"titulo"`
	Prestamos int    `db:"prestamos"`
}

type MonthLoanCount struct {
	Mes       string `db:"mes"`
	Prestamos int    `db:"prestamos"`
}

type Notification struct {
	ID        int       `json:"id" db:"id"`
	UsuarioID int       `json:"usuario_id" db:"usuario_id"`
	Usuario   string    `json:"usuario" db:"usuario"`
	Mensaje   string    `json:"mensaje" db:"mensaje"`
	Fecha     time.Time `json:"fecha" db:"fecha"`
}

type NotificationRequest struct {
	UsuarioID int    `json:"usuario_id" validate:"required"`
	Mensaje   string `json:"mensaje" validate:"required"`
}

// SentNotification is the echo returned by the send endpoint; nothing is stored.
type SentNotification struct {
	IDUsuario int    `json:"id_usuario"`
	Mensaje   string `json:"mensaje"`
}

type ReportType struct {
	ID          int    `json:"id" db:"id"`
	Descripcion string `json:"descripcion" db:"descripcion"`
}

type ReportTypeRequest struct {
	Descripcion string `json:"descripcion" validate:"required"`
}

type Report struct {
	ID              int       `json:"id" db:"id"`
	Fecha           time.Time `json:"fecha" db:"fecha"`
	TipoDescripcion string    `json:"tipo_descripcion" db:"tipo_descripcion"`
}

type ReportFile struct {
	ReportID int
	Name     string
	Content  []byte
}

type Account struct {
	ID             int    `db:"id"`
	Usuario        string `db:"usuario"`
	HashedPassword string `db:"hashed_password"`
	Nombre         string `db:"nombre"`
}

type LoginRequest struct {
	Usuario  string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Mensaje     string      `json:"mensaje"`
	Usuario     AccountInfo `json:"usuario"`
	AccessToken string      `json:"access_token"`
}

type AccountInfo struct {
	ID      int    `json:"id"`
	Nombre  string `json:"nombre"`
	Usuario string `json:"usuario"`
}

type Message struct {
	Mensaje string `json:"mensaje"`
	ID      *int   `json:"id,omitempty"`
}

func NewMessage(msg string) Message {
	return Message{Mensaje: msg}
}

func NewCreated(msg string, id int) Message {
	return Message{Mensaje: msg, ID: &id}
}
