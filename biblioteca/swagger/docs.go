// Package swagger holds the OpenAPI document served at /swagger/*.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login con usuario y contraseña",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LoginResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/perfil": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Cuenta del token actual",
                "parameters": [{"type": "string", "description": "Bearer <token>", "name": "Authorization", "in": "header", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"id": {"type": "integer"}, "nombre": {"type": "string"}, "usuario": {"type": "string"}}}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/libros/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["libros"],
                "summary": "Listar libros",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Book"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["libros"],
                "summary": "Crear libro",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.BookRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Message"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/libros/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["libros"],
                "summary": "Editar título y autor",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.BookRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Message"}}, "400": {"description": "Bad Request"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["libros"],
                "summary": "Eliminar libro",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Message"}}}
            }
        },
        "/usuarios/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Listar usuarios",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.User"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Crear usuario",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.UserRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Message"}}}
            }
        },
        "/usuarios/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Actualizar usuario",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.UserRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Message"}}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Eliminar usuario",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Message"}}, "404": {"description": "Not Found"}}
            }
        },
        "/inventario/disponibles/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inventario"],
                "summary": "Libros disponibles",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Book"}}}}
            }
        },
        "/prestamos/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["prestamos"],
                "summary": "Listar préstamos",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.LoanInfo"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["prestamos"],
                "summary": "Registrar préstamo",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.CreateLoanRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Message"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/reportes/": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["reportes"],
                "summary": "Generar reporte PDF",
                "parameters": [
                    {"type": "string", "name": "tipo", "in": "query", "required": true},
                    {"type": "string", "description": "objeto JSON", "name": "filtros", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/reportes/listar/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reportes"],
                "summary": "Listar reportes generados",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Report"}}}}
            }
        },
        "/tipos_reporte/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reportes"],
                "summary": "Listar tipos de reporte",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.ReportType"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reportes"],
                "summary": "Crear tipo de reporte",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.ReportTypeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "integer"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/notificaciones/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notificaciones"],
                "summary": "Listar notificaciones",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Notification"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notificaciones"],
                "summary": "Crear notificación",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.NotificationRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Message"}}, "404": {"description": "Not Found"}}
            }
        },
        "/notificaciones/usuario/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notificaciones"],
                "summary": "Notificaciones de un usuario",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Notification"}}}, "404": {"description": "Not Found"}}
            }
        },
        "/notificaciones/enviar/": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notificaciones"],
                "summary": "Enviar notificación sin guardarla",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.NotificationRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SentNotification"}}}
            }
        }
    },
    "definitions": {
        "model.Book": {"type": "object", "properties": {"id": {"type": "integer"}, "titulo": {"type": "string"}, "autor": {"type": "string"}, "disponible": {"type": "boolean"}}},
        "model.BookRequest": {"type": "object", "required": ["titulo", "autor", "disponible"], "properties": {"titulo": {"type": "string"}, "autor": {"type": "string"}, "disponible": {"type": "boolean"}}},
        "model.User": {"type": "object", "properties": {"id": {"type": "integer"}, "nombre": {"type": "string"}, "correo": {"type": "string"}}},
        "model.UserRequest": {"type": "object", "required": ["nombre", "correo"], "properties": {"nombre": {"type": "string"}, "correo": {"type": "string"}}},
        "model.CreateLoanRequest": {"type": "object", "required": ["id_libro", "id_usuario"], "properties": {"id_libro": {"type": "integer"}, "id_usuario": {"type": "integer"}, "fecha_devolucion": {"type": "string", "format": "date"}, "devuelto": {"type": "boolean"}}},
        "model.LoanInfo": {"type": "object", "properties": {"id": {"type": "integer"}, "libro": {"type": "string"}, "usuario": {"type": "string"}, "fecha_prestamo": {"type": "string", "format": "date"}, "fecha_devolucion": {"type": "string", "format": "date"}, "devuelto": {"type": "boolean"}}},
        "model.Notification": {"type": "object", "properties": {"id": {"type": "integer"}, "usuario_id": {"type": "integer"}, "usuario": {"type": "string"}, "mensaje": {"type": "string"}, "fecha": {"type": "string", "format": "date-time"}}},
        "model.NotificationRequest": {"type": "object", "required": ["usuario_id", "mensaje"], "properties": {"usuario_id": {"type": "integer"}, "mensaje": {"type": "string"}}},
        "model.SentNotification": {"type": "object", "properties": {"id_usuario": {"type": "integer"}, "mensaje": {"type": "string"}}},
        "model.ReportType": {"type": "object", "properties": {"id": {"type": "integer"}, "descripcion": {"type": "string"}}},
        "model.ReportTypeRequest": {"type": "object", "required": ["descripcion"], "properties": {"descripcion": {"type": "string"}}},
        "model.Report": {"type": "object", "properties": {"id": {"type": "integer"}, "fecha": {"type": "string", "format": "date-time"}, "tipo_descripcion": {"type": "string"}}},
        "model.Message": {"type": "object", "properties": {"mensaje": {"type": "string"}, "id": {"type": "integer"}}},
        "model.LoginRequest": {"type": "object", "required": ["usuario", "password"], "properties": {"usuario": {"type": "string"}, "password": {"type": "string"}}},
        "model.LoginResponse": {"type": "object", "properties": {"mensaje": {"type": "string"}, "usuario": {"type": "object", "properties": {"id": {"type": "integer"}, "nombre": {"type": "string"}, "usuario": {"type": "string"}}}, "access_token": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Biblioteca API",
	Description:      "Libros, usuarios, préstamos, notificaciones y reportes PDF.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
