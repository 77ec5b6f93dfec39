package format

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/appbrowser/internal/application"
)

// Placeholder strings.
const (
	Missing     = "-"
	InvalidDate = "Invalid date value"

	// DefaultCurrencySymbol prefixes every formatted loan amount.
	DefaultCurrencySymbol = "£"

	// dateLayout renders the calendar day as dd-mm-yyyy.
	dateLayout = "02-01-2006"
)

// printer is the message printer used for thousands grouping.
// English is fixed so output never depends on the process locale.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

//nolint:gochecknoglobals // Immutable rounding constants.
var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
	maxInt  = decimal.NewFromInt(math.MaxInt64)
)

// Formatter formats record fields for display.
type Formatter struct {
	symbol   string
	location *time.Location
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithCurrencySymbol overrides the currency prefix.
func WithCurrencySymbol(symbol string) Option {
	return func(f *Formatter) {
		f.symbol = symbol
	}
}

// WithLocation sets the zone used to pick the calendar day of timestamps.
// A nil location is ignored.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}

// New returns a Formatter using "£" and UTC unless overridden.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		symbol:   DefaultCurrencySymbol,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Display holds the formatted cells of one record.
type Display struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	EmailLink   string `json:"email_link,omitempty"`
	LoanAmount  string `json:"loan_amount"`
	DateCreated string `json:"date_created"`
	ExpiryDate  string `json:"expiry_date"`
}

// Record formats every displayed field of r.
func (f *Formatter) Record(r application.Record) Display {
	return Display{
		ID:          r.ID,
		Company:     Company(r.Company),
		Name:        Name(r.FirstName, r.LastName),
		Email:       Email(r.Email),
		EmailLink:   MailtoLink(r.Email),
		LoanAmount:  f.Currency(r.LoanAmount),
		DateCreated: f.OptionalDate(r.DateCreated),
		ExpiryDate:  f.OptionalDate(r.ExpiryDate),
	}
}

// Currency renders amount with the currency symbol and thousands separators.
//
// The value is rounded to two places half-up (scale by 100, add 0.5, floor).
// Negative values keep the sign after the symbol ("£-5,501"). Integral results
// have no fractional part and trailing fractional zeros are dropped.
func (f *Formatter) Currency(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return Missing
	}

	rounded := amount.Decimal.Mul(hundred).Add(half).Floor().Div(hundred)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	intPart := rounded.Truncate(0)
	frac := strings.TrimPrefix(rounded.Sub(intPart).String(), "0")

	return f.symbol + sign + groupInteger(intPart) + frac
}

// groupInteger formats a non-negative integral decimal with thousands separators.
func groupInteger(d decimal.Decimal) string {
	if d.LessThanOrEqual(maxInt) {
		return printer.Sprintf("%d", d.IntPart())
	}
	// Beyond int64: group the digit string directly.
	digits := d.String()
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// OptionalDate formats raw with Date, or returns Missing when raw is nil.
func (f *Formatter) OptionalDate(raw *string) string {
	if raw == nil {
		return Missing
	}
	return f.Date(*raw)
}

// Date parses raw and renders it as dd-mm-yyyy. Values that do not parse
// render as InvalidDate.
func (f *Formatter) Date(raw string) string {
	t, err := ParseDate(raw, f.location)
	if err != nil {
		return InvalidDate
	}
	return t.Format(dateLayout)
}

// Name joins first and last name with a space. A single present name is
// returned alone; if nothing remains after trimming the result is Missing.
func Name(first, last *string) string {
	var parts []string
	if first != nil {
		parts = append(parts, *first)
	}
	if last != nil {
		parts = append(parts, *last)
	}
	name := strings.TrimSpace(strings.Join(parts, " "))
	if name == "" {
		return Missing
	}
	return name
}

// Company returns the company name, or Missing when absent.
func Company(company *string) string {
	return orMissing(company)
}

// Email returns the email address, or Missing when absent.
func Email(email *string) string {
	return orMissing(email)
}

// MailtoLink returns a mailto: reference for a present email, "" otherwise.
func MailtoLink(email *string) string {
	if email == nil {
		return ""
	}
	return "mailto:" + *email
}

// orMissing tests presence, not emptiness: a present "" is returned as-is.
func orMissing(s *string) string {
	if s == nil {
		return Missing
	}
	return *s
}

//nolint:gochecknoglobals // Stateless default formatter.
var defaultFormatter = New()

// Currency formats amount with the default formatter.
func Currency(amount decimal.NullDecimal) string {
	return defaultFormatter.Currency(amount)
}

// Date formats raw with the default formatter (UTC).
func Date(raw string) string {
	return defaultFormatter.Date(raw)
}
