// Package money formatea montos para presentación según la configuración regional.
// Es el único punto donde un decimal se convierte a texto con separadores de miles.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formatea montos con dos decimales y símbolo de moneda.
type Formatter struct {
	symbol string
	group  string // separador de miles del locale
	point  string // separador decimal del locale
}

// NewFormatter construye el formateador; una etiqueta inválida cae en español.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	group, point := separators(tag)
	return &Formatter{symbol: symbol, group: group, point: point}
}

// separators obtiene los separadores del locale imprimiendo una muestra fija con x/text.
// La muestra tiene siete dígitos: algunos locales no agrupan números de cuatro.
func separators(tag language.Tag) (group, point string) {
	sample := message.NewPrinter(tag).Sprintf("%.2f", 1234567.5)
	i := strings.Index(sample, "234")
	j := strings.LastIndex(sample, "567")
	if !strings.HasPrefix(sample, "1") || i < 1 || j < i+3 || !strings.HasSuffix(sample, "50") || len(sample)-2 < j+3 {
		return ".", ","
	}
	return sample[1:i], sample[j+3 : len(sample)-2]
}

// Amount formatea con dos decimales y separadores del locale (1234567.891 → "1.234.567,89" en es).
// Trabaja sobre el texto decimal, sin float64, para no perder centavos en montos grandes.
func (f *Formatter) Amount(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(c)
	}
	b.WriteString(f.point)
	b.WriteString(frac)
	return b.String()
}

// Currency como Amount pero con el símbolo antepuesto; el signo va delante del símbolo.
func (f *Formatter) Currency(d decimal.Decimal) string {
	s := f.Amount(d.Abs())
	if f.symbol != "" {
		s = strings.TrimSpace(f.symbol + " " + s)
	}
	if d.Round(2).IsNegative() {
		return "-" + s
	}
	return s
}
