package repository

// SlotStore define el puerto del almacenamiento local clave/valor.
// Cada clave es un slot con contenido de texto que se sobrescribe completo en cada Set.
type SlotStore interface {
	// Get devuelve el contenido crudo del slot; found=false si el slot no existe.
	Get(key string) (raw string, found bool, err error)
	Set(key, raw string) error
}
