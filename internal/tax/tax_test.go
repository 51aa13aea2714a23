package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVAT(t *testing.T) {
	tests := []struct {
		name       string
		commission int64
		country    string
		taxID      string
		expected   int64
	}{
		{
			name:       "Home country always pays VAT",
			commission: 1000,
			country:    "RO",
			taxID:      "",
			expected:   190,
		},
		{
			name:       "Home country with tax id still pays VAT",
			commission: 1000,
			country:    "RO",
			taxID:      "RO123",
			expected:   190,
		},
		{
			name:       "EU country without tax id pays VAT",
			commission: 1000,
			country:    "DE",
			taxID:      "",
			expected:   190,
		},
		{
			name:       "EU country with tax id is reverse charged",
			commission: 1000,
			country:    "DE",
			taxID:      "DE123",
			expected:   0,
		},
		{
			name:       "Outside EU pays nothing",
			commission: 1000,
			country:    "US",
			taxID:      "",
			expected:   0,
		},
		{
			name:       "Outside EU with tax id pays nothing",
			commission: 1000,
			country:    "US",
			taxID:      "US123",
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VAT(decimal.NewFromInt(tt.commission), tt.country, tt.taxID)
			assert.True(t, decimal.NewFromInt(tt.expected).Equal(got),
				"expected %d, got %s", tt.expected, got)
		})
	}
}

func TestVATRoundsHalfUp(t *testing.T) {
	// 19% of 55 is 10.45 and rounds down, 19% of 50 is 9.5 and rounds up.
	assert.True(t, decimal.NewFromInt(10).Equal(VAT(decimal.NewFromInt(55), "RO", "")))
	assert.True(t, decimal.NewFromInt(10).Equal(VAT(decimal.NewFromInt(50), "RO", "")))
}
