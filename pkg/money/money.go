// Package money formatea montos para mostrar según idioma y moneda.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formatea montos decimales con símbolo de moneda y separadores locales.
type Formatter struct {
	tag  language.Tag
	unit currency.Unit
}

// NewFormatter valida el idioma (BCP 47) y la moneda (ISO 4217).
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("moneda %q: %w", code, err)
	}
	return &Formatter{tag: tag, unit: unit}, nil
}

// Currency código ISO de la moneda.
func (f *Formatter) Currency() string { return f.unit.String() }

// Format devuelve el monto con el símbolo de la moneda, ej. "$ 1,234.50".
func (f *Formatter) Format(amount decimal.Decimal) string {
	// message.Printer no es seguro para uso concurrente; se crea por llamada.
	p := message.NewPrinter(f.tag)
	return p.Sprint(currency.Symbol(f.unit.Amount(amount.InexactFloat64())))
}
