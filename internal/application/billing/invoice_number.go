package billing

import (
	"fmt"
	"time"
)

const invoiceNumberPrefix = "INV-"

// invoiceNumber arma "INV-" + los últimos 6 dígitos del timestamp Unix en milisegundos.
// Dos facturas creadas en el mismo milisegundo (o con 1000 s exactos de diferencia)
// comparten número; se acepta ese riesgo.
func invoiceNumber(now time.Time) string {
	ms := now.UnixMilli()
	if ms < 0 {
		ms = -ms
	}
	return fmt.Sprintf("%s%06d", invoiceNumberPrefix, ms%1_000_000)
}
