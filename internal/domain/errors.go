package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrSlotUnavailable    = errors.New("almacenamiento local no disponible")
	ErrStoreUninitialized = errors.New("almacén de facturas sin inicializar")
)
