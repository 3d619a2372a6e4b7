package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrConflict               = errors.New("conflicto con el estado actual")
	ErrUpstream               = errors.New("backend no disponible")
	ErrTranslationUnavailable = errors.New("traducción automática no disponible")
)

// ValidationError detalla los campos inválidos de un formulario. Envuelve ErrInvalidInput.
type ValidationError struct {
	Fields map[string]string // campo -> regla incumplida
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error()
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
