package locale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"carrental/internal/domain/shared/money"
)

func TestFormatCurrencyBrazilian(t *testing.T) {
	f := Must("pt-BR", nil)

	cases := []struct {
		amount int64
		want   string
	}{
		{24440, "R$\u00a0244,40"},
		{20680, "R$\u00a0206,80"},
		{5, "R$\u00a00,05"},
		{123456789, "R$\u00a01.234.567,89"},
		{-100, "-R$\u00a01,00"},
		{100000, "R$\u00a01.000,00"},
		{math.MaxInt64, "R$\u00a092.233.720.368.547.758,07"},
		{math.MinInt64, "-R$\u00a092.233.720.368.547.758,08"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, f.FormatCurrency(money.Must(tc.amount, "BRL")), "amount %d", tc.amount)
	}
}

func TestFormatCurrencyEnglish(t *testing.T) {
	f := Must("en-US", nil)

	assert.Equal(t, "$1,234.50", f.FormatCurrency(money.Must(123450, "USD")))
	assert.Equal(t, "R$999.00", f.FormatCurrency(money.Must(99900, "BRL")))
	assert.Equal(t, "JPY\u00a01.00", f.FormatCurrency(money.Must(100, "JPY")))
}

func TestFormatLongDate(t *testing.T) {
	day := time.Date(2020, time.November, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "10 de novembro de 2020", Must("pt-BR", nil).FormatLongDate(day))
	assert.Equal(t, "November 10, 2020", Must("en-US", nil).FormatLongDate(day))
	assert.Equal(t, "1 de março de 2021", Must("pt-BR", nil).FormatLongDate(time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatLongDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	f := Must("pt-BR", loc)

	instant := time.Date(2020, time.November, 10, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "9 de novembro de 2020", f.FormatLongDate(instant))
	assert.Equal(t, loc, f.Location())
}

func TestNewResolvesSupportedLocales(t *testing.T) {
	cases := map[string]language.Tag{
		"pt-BR": language.BrazilianPortuguese,
		"pt":    language.BrazilianPortuguese,
		"en-US": language.AmericanEnglish,
		"en":    language.AmericanEnglish,
		"fr-FR": language.BrazilianPortuguese,
	}
	for in, want := range cases {
		f, err := New(in, nil)
		require.NoError(t, err, in)
		assert.Equal(t, want, f.Tag(), in)
	}

	_, err := New("not a tag!", nil)
	assert.Error(t, err)
}
