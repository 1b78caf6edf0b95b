// Package formatter turns raw dashboard values into display strings.
//
// FormatPercentage and FormatTimeAgo are locale independent. Formatter binds
// number grouping and timestamp layout to one locale.
package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerMonth  = 2592000
	secondsPerYear   = 31536000

	justNowThreshold = 10
)

// DefaultLocale is used when a configured locale cannot be parsed.
const DefaultLocale = "en-US"

type bucket struct {
	seconds int64
	unit    string
}

// Largest first; the first bucket with a whole interval >= 1 wins.
var buckets = []bucket{
	{secondsPerYear, "year"},
	{secondsPerMonth, "month"},
	{secondsPerDay, "day"},
	{secondsPerHour, "hour"},
	{secondsPerMinute, "minute"},
}

// timestampLayouts maps a locale to its human date-time layout.
var timestampLayouts = map[string]string{
	"en-US": "1/2/2006, 3:04:05 PM",
	"en-GB": "02/01/2006, 15:04:05",
	"en":    "1/2/2006, 3:04:05 PM",
	"de":    "2.1.2006, 15:04:05",
	"fr":    "02/01/2006 15:04:05",
	"es":    "2/1/2006, 15:04:05",
	"ja":    "2006/1/2 15:04:05",
}

const fallbackLayout = "2006-01-02 15:04:05"

// FormatPercentage renders v as a signed percentage. Zero gets a "+" prefix;
// the magnitude and precision of v are left as they are.
func FormatPercentage(v float64) string {
	if v == 0 {
		// normalises negative zero
		v = 0
	}
	sign := ""
	if v >= 0 {
		sign = "+"
	}
	return sign + formatNumber(v) + "%"
}

// formatNumber writes the shortest round-trip form of v, switching to
// exponent notation ("1e+21", "1.5e-7") outside [1e-6, 1e21).
func formatNumber(v float64) string {
	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + exp[:1] + digits
}

// ChangeClass returns the CSS class list for a change element.
func ChangeClass(v float64) string {
	if v >= 0 {
		return "stat-change up"
	}
	return "stat-change down"
}

// FormatTimeAgo renders the time elapsed between ts and now as a relative
// phrase. Timestamps in the future fall through every bucket and render as
// "just now".
func FormatTimeAgo(now, ts time.Time) string {
	seconds := elapsedSeconds(now, ts)

	for _, b := range buckets {
		interval := seconds / b.seconds
		if interval >= 1 {
			if interval == 1 {
				return "1 " + b.unit + " ago"
			}
			return fmt.Sprintf("%d %ss ago", interval, b.unit)
		}
	}

	if seconds < justNowThreshold {
		return "just now"
	}
	return fmt.Sprintf("%d seconds ago", seconds)
}

// elapsedSeconds floors the epoch-millisecond difference to whole seconds.
// time.Duration overflows past ~292 years.
func elapsedSeconds(now, ts time.Time) int64 {
	ms := now.UnixMilli() - ts.UnixMilli()
	s := ms / 1000
	if ms < 0 && ms%1000 != 0 {
		s--
	}
	return s
}

// Formatter renders locale-dependent values.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	layout  string
}

// New returns a Formatter for locale, falling back to DefaultLocale when the
// tag cannot be parsed.
func New(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		layout:  layoutFor(tag),
	}
}

func layoutFor(tag language.Tag) string {
	if layout, ok := timestampLayouts[tag.String()]; ok {
		return layout
	}
	base, _ := tag.Base()
	if layout, ok := timestampLayouts[base.String()]; ok {
		return layout
	}
	return fallbackLayout
}

// Locale returns the BCP 47 tag the formatter was built for.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// FormatCount groups v by the locale's digit grouping, keeping up to three
// fraction digits.
func (f *Formatter) FormatCount(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatCurrency prefixes a grouped amount with a dollar sign.
func (f *Formatter) FormatCurrency(v float64) string {
	return "$" + f.FormatCount(v)
}

// FormatTimestamp renders t in the server's local zone using the locale layout.
func (f *Formatter) FormatTimestamp(t time.Time) string {
	return t.Local().Format(f.layout)
}
