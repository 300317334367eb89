package checkout

import (
	"testing"
	"time"

	"wanderbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
		wantErr  error
	}{
		{"single night", date(2025, 6, 1), date(2025, 6, 2), 1, nil},
		{"week stay", date(2025, 6, 1), date(2025, 6, 8), 7, nil},
		{"partial day counts as one night", date(2025, 6, 1), date(2025, 6, 1).Add(10 * time.Hour), 1, nil},
		{"same instant rejected", date(2025, 6, 1), date(2025, 6, 1), 0, ErrInvalidDateRange},
		{"check-out before check-in rejected", date(2025, 6, 5), date(2025, 6, 1), 0, ErrInvalidDateRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNights(tt.checkIn, tt.checkOut)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputePricing_DiscountedRoom(t *testing.T) {
	room := models.Room{BasePricePerNight: 164, OriginalPricePerNight: 175}

	p := ComputePricing(room, 1, DefaultTaxRate)

	assert.Equal(t, 164.0, p.Subtotal)
	assert.Equal(t, 11.0, p.Discount)
	assert.Equal(t, 15.30, p.Tax)
	assert.Equal(t, 168.30, p.Total)
}

func TestComputePricing_NoOriginalPrice(t *testing.T) {
	room := models.Room{BasePricePerNight: 99.5}

	p := ComputePricing(room, 3, DefaultTaxRate)

	assert.Equal(t, 298.50, p.Subtotal)
	assert.Equal(t, 0.0, p.Discount)
	assert.Equal(t, 29.85, p.Tax)
	assert.Equal(t, 328.35, p.Total)
}

func TestComputePricing_OriginalBelowBaseClampsToZero(t *testing.T) {
	room := models.Room{BasePricePerNight: 200, OriginalPricePerNight: 150}

	p := ComputePricing(room, 2, DefaultTaxRate)

	assert.Equal(t, 0.0, p.Discount)
	assert.Equal(t, 440.0, p.Total)
}

// The identity total = subtotal - discount + tax must hold for every
// combination, within a cent of rounding.
func TestComputePricing_Identity(t *testing.T) {
	cases := []struct {
		base, original float64
		nights         int
	}{
		{164, 175, 1},
		{89.99, 0, 2},
		{120.45, 133.33, 5},
		{57.01, 60, 14},
		{999.99, 1049.99, 3},
	}
	for _, tc := range cases {
		room := models.Room{BasePricePerNight: tc.base, OriginalPricePerNight: tc.original}
		p := ComputePricing(room, tc.nights, DefaultTaxRate)
		assert.InDelta(t, p.Subtotal-p.Discount+p.Tax, p.Total, 0.01,
			"identity violated for base=%v original=%v nights=%d", tc.base, tc.original, tc.nights)
	}
}
