package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrTransport la fuente del catálogo no respondió o devolvió un status no exitoso.
	ErrTransport = errors.New("error obteniendo el catálogo")
	// ErrOutputWrite un destino (archivo, base de datos) no pudo escribirse.
	ErrOutputWrite = errors.New("error escribiendo el catálogo")
)
