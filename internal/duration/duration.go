// Package duration parses the compact paste lifetimes accepted on the command
// line ("90", "2h", "1d", "3mo") into a whole number of minutes.
package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Minutes is a paste lifetime in minutes.
type Minutes uint32

const (
	Minute  Minutes = 1
	Hour            = 60 * Minute
	Day             = 24 * Hour
	Week            = 7 * Day
	Month           = 30 * Day
	Year            = 365 * Day
	Maximum         = 100 * Year
)

// Units lists the accepted unit suffixes, smallest first.
var Units = []string{"m", "h", "d", "w", "mo", "y"}

var scales = map[string]Minutes{
	"m":  Minute,
	"h":  Hour,
	"d":  Day,
	"w":  Week,
	"mo": Month,
	"y":  Year,
}

// Kind classifies a parse failure.
type Kind int

const (
	// InvalidFormat is returned for an unknown unit or a missing amount.
	InvalidFormat Kind = iota + 1
	// TooLong is returned when the duration overflows or exceeds Maximum.
	TooLong
)

// Error describes why a duration string was rejected.
type Error struct {
	Kind  Kind
	Input string
	Unit  string
}

func (e *Error) Error() string {
	switch e.Kind {
	case TooLong:
		return fmt.Sprintf("Duration `%s' is too long; maximum duration is 100y", e.Input)
	case InvalidFormat:
		if e.Unit == "" {
			return fmt.Sprintf("Duration `%s' is missing an amount", e.Input)
		}
		return fmt.Sprintf("Unknown unit `%s'; expected one of %s", e.Unit, unitList())
	}
	return fmt.Sprintf("invalid duration `%s'", e.Input)
}

// IsTooLong reports whether err is a TooLong duration error.
func IsTooLong(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == TooLong
}

// IsInvalidFormat reports whether err is an InvalidFormat duration error.
func IsInvalidFormat(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == InvalidFormat
}

// Parse converts s into minutes. The leading run of ASCII digits is the amount
// and the remainder, if any, is the unit; a bare number is in minutes.
//
// No minimum is enforced, so "0" is accepted.
func Parse(s string) (Minutes, error) {
	amount, unit := s, "m"
	if idx := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }); idx != -1 {
		amount, unit = s[:idx], s[idx:]
	}

	scale, ok := scales[unit]
	if !ok {
		return 0, &Error{Kind: InvalidFormat, Input: s, Unit: unit}
	}

	if amount == "" {
		return 0, &Error{Kind: InvalidFormat, Input: s}
	}

	n, err := strconv.ParseUint(amount, 10, 32)
	if err != nil {
		// amount is all digits, so the only failure left is range.
		return 0, &Error{Kind: TooLong, Input: s}
	}

	total := n * uint64(scale)
	if total > uint64(Maximum) {
		return 0, &Error{Kind: TooLong, Input: s}
	}
	return Minutes(total), nil
}

// Format renders amount and unit back into a string accepted by Parse.
func Format(amount uint32, unit string) string {
	return strconv.FormatUint(uint64(amount), 10) + unit
}

// String returns the value as a decimal number of minutes, the form the
// pastery API expects.
func (m Minutes) String() string {
	return strconv.FormatUint(uint64(m), 10)
}

func unitList() string {
	quoted := make([]string, len(Units))
	for i, u := range Units {
		quoted[i] = "`" + u + "'"
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
