// Package i18n provides the English and Brazilian Portuguese strings used
// by the calculator, its reports and the terminal UI. It is plain string
// lookup: English text is the message key.
package i18n

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// Lang is a supported UI language.
type Lang string

const (
	English    Lang = "en"
	Portuguese Lang = "pt"
)

// Languages returns the supported languages.
func Languages() []Lang {
	return []Lang{English, Portuguese}
}

// ParseLang maps a language code (en, pt, pt-BR, en_US, ...) to a Lang.
// It reports false and returns English for anything unsupported.
func ParseLang(s string) (Lang, bool) {
	code := strings.ToLower(strings.TrimSpace(s))
	code, _, _ = strings.Cut(strings.ReplaceAll(code, "_", "-"), "-")
	switch code {
	case "en":
		return English, true
	case "pt":
		return Portuguese, true
	default:
		return English, false
	}
}

func (l Lang) tag() language.Tag {
	if l == Portuguese {
		return language.BrazilianPortuguese
	}
	return language.English
}

//nolint:gochecknoglobals // Built once from static tables.
var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, pt := range portuguese {
		// Static strings; SetString only fails on malformed messages.
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
		if err := b.SetString(language.BrazilianPortuguese, key, pt); err != nil {
			panic(err)
		}
	}
	return b
}

// Translator looks up strings and formats numbers for one language.
type Translator struct {
	lang    Lang
	printer *message.Printer
}

// New returns a Translator for lang; unsupported codes get English.
func New(lang string) *Translator {
	l, _ := ParseLang(lang)
	return &Translator{
		lang:    l,
		printer: message.NewPrinter(l.tag(), message.Catalog(messages)),
	}
}

// Lang returns the translator's language.
func (t *Translator) Lang() Lang { return t.lang }

// Toggle returns a Translator for the other language.
func (t *Translator) Toggle() *Translator {
	if t.lang == Portuguese {
		return New(string(English))
	}
	return New(string(Portuguese))
}

// T translates key, formatting args into the translated message.
// Unknown keys are returned unchanged.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// Number formats f with exactly prec fraction digits and locale separators.
func (t *Translator) Number(f float64, prec int) string {
	return t.printer.Sprint(number.Decimal(f, number.Scale(prec)))
}

// Integer formats n with locale thousands separators.
func (t *Translator) Integer(n int64) string {
	return t.printer.Sprint(number.Decimal(n))
}

// WholeNumber formats the integer part of d with locale thousands
// separators. Values beyond int64 keep every digit.
func (t *Translator) WholeNumber(d decimal.Decimal) string {
	whole := d.Truncate(0)
	if whole.GreaterThanOrEqual(minInt64) && whole.LessThanOrEqual(maxInt64) {
		return t.Integer(whole.IntPart())
	}

	digits := whole.Abs().String()
	sep := t.groupSeparator()
	var b strings.Builder
	if whole.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

//nolint:gochecknoglobals // Bounds of Integer.
var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// groupSeparator returns the locale's thousands separator.
func (t *Translator) groupSeparator() string {
	return strings.TrimSuffix(strings.TrimPrefix(t.Integer(1000), "1"), "000")
}

// Date formats a calendar date the way each locale writes it.
func (t *Translator) Date(d time.Time) string {
	if t.lang == Portuguese {
		return d.Format("02/01/2006")
	}
	return d.Format("1/2/2006")
}
