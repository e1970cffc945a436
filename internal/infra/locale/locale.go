package locale

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/pt_BR"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"carrental/internal/domain/shared/money"
)

// Formatter renders money and dates for a single resolved locale.
// Digits go through x/text and long dates through CLDR month names.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	dates   locales.Translator
	spacing string
	loc     *time.Location
}

const nbsp = "\u00a0"

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

var matcher = language.NewMatcher(supported)

// Space between symbol and amount; pt-BR uses a no-break space.
var symbolSpacing = map[language.Tag]string{
	language.BrazilianPortuguese: nbsp,
	language.AmericanEnglish:     "",
}

var translators = map[language.Tag]func() locales.Translator{
	language.BrazilianPortuguese: pt_BR.New,
	language.AmericanEnglish:     en_US.New,
}

var symbols = map[string]string{
	"BRL": "R$",
	"USD": "$",
	"EUR": "€",
}

// New resolves tag against the supported locales; unknown tags fall back to pt-BR.
// A nil location means UTC.
func New(tag string, loc *time.Location) (*Formatter, error) {
	requested, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return nil, fmt.Errorf("locale: parse %q: %w", tag, err)
	}
	_, idx, _ := matcher.Match(requested)
	resolved := supported[idx]
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{
		tag:     resolved,
		printer: message.NewPrinter(resolved),
		dates:   translators[resolved](),
		spacing: symbolSpacing[resolved],
		loc:     loc,
	}, nil
}

// Must is New that panics on a malformed tag.
func Must(tag string, loc *time.Location) *Formatter {
	f, err := New(tag, loc)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Tag() language.Tag { return f.tag }

func (f *Formatter) Location() *time.Location { return f.loc }

// FormatCurrency renders m with its currency symbol, grouping and two decimals.
// Codes without a known symbol are printed as the code and a no-break space.
func (f *Formatter) FormatCurrency(m money.Money) string {
	sign := ""
	magnitude := uint64(m.Amount)
	if m.Amount < 0 {
		sign = "-"
		magnitude = -magnitude
	}

	symbol, spacing := m.Currency, nbsp
	if s, ok := symbols[m.Currency]; ok {
		symbol, spacing = s, f.spacing
	}
	return sign + symbol + spacing + f.formatAmount(magnitude)
}

// formatAmount prints cents as a grouped whole part and a two digit fraction.
func (f *Formatter) formatAmount(cents uint64) string {
	whole := f.printer.Sprint(number.Decimal(cents / 100))
	// "0,05" or "0.05": keep the separator and the digits.
	fraction := f.printer.Sprint(number.Decimal(float64(cents%100)/100, number.Scale(2)))
	return whole + fraction[1:]
}

// FormatLongDate renders t in the formatter's location as day, full month name and year.
func (f *Formatter) FormatLongDate(t time.Time) string {
	return f.dates.FmtDateLong(t.In(f.loc))
}
