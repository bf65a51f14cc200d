package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidSelection   = errors.New("selección inválida")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrPersistence        = errors.New("error de persistencia")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrLoginAlreadyExists = errors.New("el login ya está registrado")
	ErrUnknownRole        = errors.New("rol de usuario desconocido")
	ErrForbidden          = errors.New("acceso denegado")
)
