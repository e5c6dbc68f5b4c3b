package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"40", "€40.00"},
		{"0", "€0.00"},
		{"3.333333", "€3.33"},
		{"2.675", "€2.68"},
		{"1234567.891", "€1234567.89"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatDivisor(t *testing.T) {
	assert.Equal(t, "4", FormatDivisor(decimal.NewFromInt(4)))
	assert.Equal(t, "7.5", FormatDivisor(decimal.NewFromFloat(7.5)))
	assert.Equal(t, "1", FormatDivisor(decimal.NewFromInt(1)))
}
