package input

import (
	"errors"
	"testing"
)

func TestParseMenuChoice(t *testing.T) {
	cases := []struct {
		raw  string
		want int
		err  error
	}{
		{raw: "1", want: 1},
		{raw: " 5 ", want: 5},
		{raw: "0", err: ErrOutOfRange},
		{raw: "6", err: ErrOutOfRange},
		{raw: "x", err: ErrNotNumber},
		{raw: "", err: ErrNotNumber},
		{raw: "2.5", err: ErrNotNumber},
	}
	for _, tc := range cases {
		got, err := ParseMenuChoice(tc.raw)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Fatalf("%q: expected %v, got %v", tc.raw, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.raw, tc.want, got)
		}
	}
}

func TestParseGrade(t *testing.T) {
	for _, raw := range []string{"done", "DONE", " Done "} {
		_, done, err := ParseGrade(raw)
		if err != nil || !done {
			t.Fatalf("%q: expected sentinel, got done=%v err=%v", raw, done, err)
		}
	}

	g, done, err := ParseGrade("100")
	if err != nil || done || g != 100 {
		t.Fatalf("expected grade 100, got %d done=%v err=%v", g, done, err)
	}
	g, _, err = ParseGrade("0")
	if err != nil || g != 0 {
		t.Fatalf("expected grade 0, got %d err=%v", g, err)
	}

	if _, _, err := ParseGrade("abc"); !errors.Is(err, ErrNotNumber) {
		t.Fatalf("expected not-a-number, got %v", err)
	}
	for _, raw := range []string{"150", "-5", "101"} {
		if _, _, err := ParseGrade(raw); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("%q: expected out of range, got %v", raw, err)
		}
	}
}

func TestNormalizeNameKeepsEmpty(t *testing.T) {
	if got := NormalizeName("  Ada \t"); got != "Ada" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
	if got := NormalizeName("   "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestParseIntegerForms(t *testing.T) {
	accepted := []struct {
		raw  string
		want int
	}{
		{raw: "1_0", want: 10},
		{raw: "+7", want: 7},
		{raw: "007", want: 7},
		{raw: "٧٠", want: 70},
		{raw: "१००", want: 100},
		{raw: "-0", want: 0},
		{raw: " 4_2 ", want: 42},
	}
	for _, tc := range accepted {
		got, _, err := ParseGrade(tc.raw)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.raw, tc.want, got)
		}
	}

	for _, raw := range []string{"_10", "10_", "1__0", "+", "-", "+_1", "1 0", "7a", "0x10"} {
		if _, _, err := ParseGrade(raw); !errors.Is(err, ErrNotNumber) {
			t.Fatalf("%q: expected not-a-number, got %v", raw, err)
		}
	}

	if _, err := ParseMenuChoice("99999999999999999999999"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected overflow to be out of range, got %v", err)
	}
	if n, err := ParseMenuChoice("٣"); err != nil || n != 3 {
		t.Fatalf("expected Arabic-Indic 3, got %d err=%v", n, err)
	}
}
