// Package ordernumber allocates human-readable document numbers of the form
// PREFIX[-WAREHOUSE]-DATE-SEQUENCE, e.g. PNK-20241201-0001.
package ordernumber

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPrefix         = "IO"
	DefaultDateFormat     = "YYYYMMDD"
	DefaultSequenceLength = 4
	DefaultSeparator      = "-"

	fallbackMarker = "FB"
)

// Finder looks up the lexicographically greatest existing number starting with pattern.
// It returns "" when no number matches.
type Finder interface {
	LastOrderNumber(ctx context.Context, pattern string) (string, error)
}

// Options tunes the generated format
type Options struct {
	DateFormat       string
	SequenceLength   int
	Separator        string
	UseWarehouseCode bool
	WarehouseCode    string
}

func (o Options) withDefaults() Options {
	if o.DateFormat == "" {
		o.DateFormat = DefaultDateFormat
	}
	if o.SequenceLength <= 0 {
		o.SequenceLength = DefaultSequenceLength
	}
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	return o
}

type Generator struct {
	finder Finder
	now    func() time.Time
}

type GeneratorOption func(*Generator)

// WithClock overrides the time source used for the date segment
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(finder Finder, opts ...GeneratorOption) *Generator {
	g := &Generator{finder: finder, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the next number for prefix. Lookup failures never surface:
// the generator falls back to a timestamp-based number instead.
func (g *Generator) Generate(ctx context.Context, prefix string, opts Options) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	opts = opts.withDefaults()

	pattern := BasePattern(prefix, g.now(), opts)

	if g.finder == nil {
		log.Printf("order number: no lookup configured for prefix %s, using fallback", prefix)
		return Fallback(prefix)
	}

	last, err := g.finder.LastOrderNumber(ctx, pattern)
	if err != nil {
		log.Printf("order number: lookup failed for pattern %s: %v", pattern, err)
		return Fallback(prefix)
	}

	sequence := 1
	if last != "" {
		parts := strings.Split(last, opts.Separator)
		lastSequence, convErr := strconv.Atoi(parts[len(parts)-1])
		if convErr != nil {
			lastSequence = 0
		}
		sequence = lastSequence + 1
	}

	orderNumber := pattern + opts.Separator + fmt.Sprintf("%0*d", opts.SequenceLength, sequence)
	log.Printf("order number generated: prefix=%s pattern=%s sequence=%d number=%s", prefix, pattern, sequence, orderNumber)
	return orderNumber
}

// BasePattern builds the prefix[-warehouse]-date portion shared by all numbers of a period
func BasePattern(prefix string, at time.Time, opts Options) string {
	opts = opts.withDefaults()
	pattern := prefix
	if opts.UseWarehouseCode && opts.WarehouseCode != "" {
		pattern += opts.Separator + opts.WarehouseCode
	}
	return pattern + opts.Separator + FormatDate(at, opts.DateFormat)
}

// Fallback builds PREFIX-FB-<unix millis>-<3 random digits>
func Fallback(prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s-%s-%d-%03d", prefix, fallbackMarker, time.Now().UnixMilli(), rand.IntN(1000))
}

// FormatDate renders t in one of the supported tokens. Unknown formats use YYYYMMDD.
func FormatDate(t time.Time, format string) string {
	switch strings.ToUpper(format) {
	case "YYYY-MM-DD":
		return t.Format("2006-01-02")
	case "YYYYMM":
		return t.Format("200601")
	case "YYYY-MM":
		return t.Format("2006-01")
	case "YYYY":
		return t.Format("2006")
	case "YYYYMMDDHHMMSS":
		return t.Format("20060102150405")
	case "YYYYMMDDHHMM":
		return t.Format("200601021504")
	default:
		return t.Format("20060102")
	}
}

// Validate reports whether orderNumber has at least three dash-separated parts,
// starts with expectedPrefix (when non-empty) and ends in a numeric sequence.
func Validate(orderNumber, expectedPrefix string) bool {
	if orderNumber == "" {
		return false
	}
	parts := strings.Split(orderNumber, DefaultSeparator)
	if len(parts) < 3 {
		return false
	}
	if expectedPrefix != "" && parts[0] != expectedPrefix {
		return false
	}
	return isDigits(parts[len(parts)-1])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatError is returned by Parse for malformed numbers
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid order number format: %q", e.Value)
}

// IsFormatError reports whether err is a *FormatError
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// Parts is the decomposition of a valid order number
type Parts struct {
	Full          string   `json:"full"`
	Prefix        string   `json:"prefix"`
	WarehouseCode string   `json:"warehouse_code,omitempty"`
	Date          string   `json:"date"`
	Sequence      int      `json:"sequence"`
	Raw           []string `json:"parts"`
}

func Parse(orderNumber string) (Parts, error) {
	if !Validate(orderNumber, "") {
		return Parts{}, &FormatError{Value: orderNumber}
	}

	parts := strings.Split(orderNumber, DefaultSeparator)
	sequence, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Parts{}, &FormatError{Value: orderNumber}
	}

	p := Parts{
		Full:     orderNumber,
		Prefix:   parts[0],
		Date:     parts[1],
		Sequence: sequence,
		Raw:      parts,
	}
	if len(parts) > 3 {
		p.WarehouseCode = parts[1]
		p.Date = parts[2]
	}
	return p, nil
}
