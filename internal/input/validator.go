// Package input parses raw console lines into menu choices, names and grades.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gradebook/internal/roster"
)

const (
	MenuMin = 1
	MenuMax = 5

	DoneSentinel = "done"
)

var (
	ErrNotNumber  = errors.New("not a number")
	ErrOutOfRange = errors.New("out of range")
)

// NormalizeName trims surrounding whitespace. Emptiness is the caller's concern.
func NormalizeName(raw string) string {
	return strings.TrimSpace(raw)
}

func ParseMenuChoice(raw string) (int, error) {
	n, err := parseInt(raw)
	if err != nil {
		return 0, err
	}
	if n < MenuMin || n > MenuMax {
		return 0, fmt.Errorf("menu choice %d: %w", n, ErrOutOfRange)
	}
	return n, nil
}

// ParseGrade returns done=true for the case-insensitive "done" sentinel.
func ParseGrade(raw string) (grade int, done bool, err error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, DoneSentinel) {
		return 0, true, nil
	}
	n, err := parseInt(raw)
	if err != nil {
		return 0, false, err
	}
	if n < roster.MinGrade || n > roster.MaxGrade {
		return 0, false, fmt.Errorf("grade %d: %w", n, ErrOutOfRange)
	}
	return n, false, nil
}

// parseInt accepts an optional sign, decimal digits from any script and single
// underscores between digits. Values too large for int are out of range.
func parseInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	digits, ok := asciiDigits(raw)
	if !ok {
		return 0, fmt.Errorf("%q: %w", raw, ErrNotNumber)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w", raw, ErrOutOfRange)
		}
		return 0, fmt.Errorf("%q: %w", raw, ErrNotNumber)
	}
	return n, nil
}

func asciiDigits(raw string) (string, bool) {
	var b strings.Builder
	rest := raw
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		b.WriteByte(rest[0])
		rest = rest[1:]
	}
	prevDigit := false
	pendingUnderscore := false
	for _, r := range rest {
		if r == '_' {
			if !prevDigit || pendingUnderscore {
				return "", false
			}
			pendingUnderscore = true
			continue
		}
		d, ok := digitValue(r)
		if !ok {
			return "", false
		}
		b.WriteByte(byte('0' + d))
		prevDigit = true
		pendingUnderscore = false
	}
	if !prevDigit || pendingUnderscore {
		return "", false
	}
	return b.String(), true
}

// digitValue maps a Unicode decimal digit to its value. Decimal digits come in
// contiguous runs starting at zero, so the value is the offset within the run.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	k := 0
	for unicode.Is(unicode.Nd, r-rune(k+1)) {
		k++
	}
	return k % 10, true
}
