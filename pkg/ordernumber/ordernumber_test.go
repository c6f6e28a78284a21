package ordernumber

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"
)

type fakeFinder struct {
	last    string
	err     error
	pattern string
}

func (f *fakeFinder) LastOrderNumber(_ context.Context, pattern string) (string, error) {
	f.pattern = pattern
	return f.last, f.err
}

func fixedClock() time.Time {
	return time.Date(2024, time.December, 1, 9, 5, 7, 0, time.Local)
}

func TestGenerateFirstOfDay(t *testing.T) {
	finder := &fakeFinder{}
	g := NewGenerator(finder)

	got := g.Generate(context.Background(), "PNK", Options{})
	if !regexp.MustCompile(`^PNK-\d{8}-\d{4}$`).MatchString(got) {
		t.Fatalf("unexpected format %q", got)
	}
	if got[len(got)-4:] != "0001" {
		t.Errorf("sequence = %s, want 0001", got[len(got)-4:])
	}
}

func TestGenerateIncrementsLastSequence(t *testing.T) {
	finder := &fakeFinder{last: "PNK-20241201-0007"}
	g := NewGenerator(finder, WithClock(fixedClock))

	got := g.Generate(context.Background(), "PNK", Options{})
	if got != "PNK-20241201-0008" {
		t.Fatalf("got %q, want PNK-20241201-0008", got)
	}
	if finder.pattern != "PNK-20241201" {
		t.Errorf("lookup pattern = %q", finder.pattern)
	}
}

func TestGenerateUnparsableSequenceRestarts(t *testing.T) {
	finder := &fakeFinder{last: "PNK-20241201-abc"}
	g := NewGenerator(finder, WithClock(fixedClock))

	if got := g.Generate(context.Background(), "PNK", Options{}); got != "PNK-20241201-0001" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateWithOptions(t *testing.T) {
	finder := &fakeFinder{last: "NK/HN/202412/041"}
	g := NewGenerator(finder, WithClock(fixedClock))

	got := g.Generate(context.Background(), "NK", Options{
		DateFormat:       "YYYYMM",
		SequenceLength:   3,
		Separator:        "/",
		UseWarehouseCode: true,
		WarehouseCode:    "HN",
	})
	if got != "NK/HN/202412/042" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateFallbackOnLookupError(t *testing.T) {
	g := NewGenerator(&fakeFinder{err: errors.New("connection refused")})

	got := g.Generate(context.Background(), "PNK", Options{})
	if !regexp.MustCompile(`^PNK-FB-\d+-\d{3}$`).MatchString(got) {
		t.Fatalf("fallback %q does not match", got)
	}
}

func TestGenerateDefaultPrefix(t *testing.T) {
	g := NewGenerator(&fakeFinder{}, WithClock(fixedClock))
	if got := g.Generate(context.Background(), "", Options{}); got != "IO-20241201-0001" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	at := fixedClock()
	cases := map[string]string{
		"YYYYMMDD":       "20241201",
		"YYYY-MM-DD":     "2024-12-01",
		"YYYYMM":         "202412",
		"YYYY-MM":        "2024-12",
		"YYYY":           "2024",
		"YYYYMMDDHHMMSS": "20241201090507",
		"YYYYMMDDHHMM":   "202412010905",
		"yyyymmdd":       "20241201",
		"DD/MM/YYYY":     "20241201",
	}
	for format, want := range cases {
		if got := FormatDate(at, format); got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		number string
		prefix string
		want   bool
	}{
		{"PNK-20241201-0001", "", true},
		{"PNK-20241201-0001", "PNK", true},
		{"PNK-20241201-0001", "IO", false},
		{"PNK-HN-20241201-0001", "PNK", true},
		{"PNK-20241201", "", false},
		{"PNK-20241201-00A1", "", false},
		{"PNK-20241201-", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		if got := Validate(tc.number, tc.prefix); got != tc.want {
			t.Errorf("Validate(%q, %q) = %v, want %v", tc.number, tc.prefix, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("PNK-20241201-0042")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Prefix != "PNK" || p.Date != "20241201" || p.Sequence != 42 || p.WarehouseCode != "" {
		t.Errorf("unexpected parts %+v", p)
	}

	p, err = Parse("PNK-HN-20241201-0003")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.WarehouseCode != "HN" || p.Date != "20241201" || p.Sequence != 3 || len(p.Raw) != 4 {
		t.Errorf("unexpected parts %+v", p)
	}

	if _, err := Parse("not-a-number"); !IsFormatError(err) {
		t.Errorf("expected FormatError, got %v", err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	g := NewGenerator(&fakeFinder{last: "WH-20241201-0099"}, WithClock(fixedClock))
	p, err := Parse(g.Generate(context.Background(), "WH", Options{}))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Prefix != "WH" || p.Sequence != 100 {
		t.Errorf("round trip gave %+v", p)
	}
}
