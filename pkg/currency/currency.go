// Package currency formatea importes en las monedas soportadas por la
// aplicación, con separadores de miles según el locale de cada moneda.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type currencyInfo struct {
	symbol   string
	tag      language.Tag
	decimals int
}

var catalog = map[string]currencyInfo{
	"USD": {symbol: "$", tag: language.AmericanEnglish, decimals: 2},
	"JPY": {symbol: "¥", tag: language.Japanese, decimals: 0},
	"EUR": {symbol: "€", tag: language.German, decimals: 2},
}

// IsSupported indica si el código de moneda es uno de los soportados.
func IsSupported(code string) bool {
	_, ok := catalog[code]
	return ok
}

// Symbol devuelve el símbolo de la moneda; el propio código si es desconocida.
func Symbol(code string) string {
	if s, ok := catalog[code]; ok {
		return s.symbol
	}
	return code + " "
}

// Format devuelve el importe con símbolo y separadores de miles.
// Ej: Format("JPY", 55000) → "¥55,000"; Format("USD", 1234.5) → "$1,234.50".
func Format(code string, amount float64) string {
	s, ok := catalog[code]
	if !ok {
		s = catalog["USD"]
	}
	p := message.NewPrinter(s.tag)
	return Symbol(code) + p.Sprint(number.Decimal(amount,
		number.MinFractionDigits(s.decimals),
		number.MaxFractionDigits(s.decimals),
	))
}
