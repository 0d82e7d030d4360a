package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Minutes
	}{
		{"90", 90},
		{"0", 0},
		{"15m", 15},
		{"2h", 120},
		{"1d", 1440},
		{"1w", 10080},
		{"2mo", 86400},
		{"1y", 525600},
		{"100y", Maximum},
		{"52560000", Maximum},
		{"007h", 420},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTooLong(t *testing.T) {
	for _, in := range []string{"101y", "52560001", "1217mo", "4294967295y", "99999999999999999999d"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.True(t, IsTooLong(err))
			assert.Contains(t, err.Error(), "`"+in+"'")
		})
	}
}

func TestParseUnknownUnit(t *testing.T) {
	_, err := Parse("5x")
	require.Error(t, err)
	assert.True(t, IsInvalidFormat(err))

	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "x", derr.Unit)
	assert.Equal(t, "Unknown unit `x'; expected one of `m', `h', `d', `w', `mo', or `y'", err.Error())
}

func TestParseUnitIsWholeSuffix(t *testing.T) {
	for _, in := range []string{"1mh", "1om", "1M", "1 d", "1dd", "-1d", "1.5h"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.True(t, IsInvalidFormat(err), "got %v", err)
		})
	}
}

func TestParseMissingAmount(t *testing.T) {
	for _, in := range []string{"", "d", "mo"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.True(t, IsInvalidFormat(err), "got %v", err)
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, unit := range Units {
		for _, amount := range []uint32{0, 1, 7, 30, 100} {
			s := Format(amount, unit)
			got, err := Parse(s)
			require.NoError(t, err, s)
			assert.Equal(t, Minutes(amount)*scales[unit], got, s)

			again, err := Parse(Format(uint32(got), "m"))
			require.NoError(t, err)
			assert.Equal(t, got, again)
		}
	}
}

func TestMinutesString(t *testing.T) {
	assert.Equal(t, "1440", Day.String())
	assert.Equal(t, "0", Minutes(0).String())
}
