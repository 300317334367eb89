package checkout

import (
	"math"
	"time"

	"wanderbook/models"
)

// DefaultTaxRate is applied when no rate is configured.
const DefaultTaxRate = 0.10

// ComputeNights derives the chargeable nights of a stay. Partial days count
// as one night; a check-out on or before check-in is rejected.
func ComputeNights(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, ErrInvalidDateRange
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights, nil
}

// ComputePricing derives the pricing record for a room over a number of
// nights. The discount is the spread between the original and the base
// nightly rate when a promotional price is present; tax applies to the
// discounted subtotal. Intermediate values are kept exact; only the stored
// amounts are rounded, half-up to the cent.
func ComputePricing(room models.Room, nights int, taxRate float64) models.Pricing {
	subtotal := room.BasePricePerNight * float64(nights)
	discount := 0.0
	if room.OriginalPricePerNight > 0 {
		discount = math.Max(0, (room.OriginalPricePerNight-room.BasePricePerNight)*float64(nights))
	}
	tax := (subtotal - discount) * taxRate
	total := subtotal - discount + tax
	return models.Pricing{
		Subtotal: roundCents(subtotal),
		Discount: roundCents(discount),
		TaxRate:  taxRate,
		Tax:      roundCents(tax),
		Total:    roundCents(total),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
