// Package money formatea montos en pesos dominicanos (DOP) con el locale es-DO.
//
// El formato de presentación es responsabilidad exclusiva de esta capa: los
// montos internos viajan como decimal.Decimal sin redondear y solo se redondean
// a 2 decimales al mostrarse.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-DO"))

// FormatDOP devuelve el monto redondeado a 2 decimales con separador de miles
// según es-DO, con el prefijo RD$. Ej.: RD$1,234.50
func FormatDOP(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("RD$%.2f", f)
}
