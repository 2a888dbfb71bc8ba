package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	valid := []struct {
		in   string
		want string
	}{
		{"20", "20"},
		{"25.5", "25.5"},
		{"0.01", "0.01"},
		{" 42.00 ", "42"},
	}
	for _, tc := range valid {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, "ParseAmount(%q)", tc.in)
		assert.Equal(t, tc.want, got.String(), "ParseAmount(%q)", tc.in)
	}

	invalid := []string{"", "   ", "abc", "12abc", "0", "0.00", "-5", "-0.01"}
	for _, in := range invalid {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "ParseAmount(%q)", in)
	}
}
