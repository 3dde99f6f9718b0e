// Package pricing computes the total service cost of a booking. The
// calculator is a pure function: validation of weight and enum fields
// happens in the controllers before it is called, and the backend figure is
// the single source of truth for the final price.
package pricing

import (
	bookingModel "courier-booking/models/booking"

	"github.com/shopspring/decimal"
)

var (
	baseRate    = decimal.NewFromInt(50)
	adminFee    = decimal.NewFromInt(50)
	ratePerGram = decimal.NewFromFloat(0.02)
	taxFactor   = decimal.NewFromFloat(1.05)

	deliveryCharges = map[bookingModel.DeliveryType]decimal.Decimal{
		bookingModel.DeliveryStandard: decimal.NewFromInt(30),
		bookingModel.DeliveryExpress:  decimal.NewFromInt(80),
		bookingModel.DeliverySameDay:  decimal.NewFromInt(150),
	}

	packingCharges = map[bookingModel.PackingPreference]decimal.Decimal{
		bookingModel.PackingBasic:   decimal.NewFromInt(10),
		bookingModel.PackingPremium: decimal.NewFromInt(20),
	}
)

// ServiceCost returns the total price in whole currency units.
//
//	total = roundHalfUp((base + weight*0.02 + delivery + packing + adminFee) * 1.05)
//
// The admin fee applies only to officer-assisted bookings. Intermediate
// charges keep full precision; rounding (half up) happens once, at the end.
// Unrecognized delivery or packing values fall back to the STANDARD/BASIC
// charge.
func ServiceCost(weightInGram int, delivery bookingModel.DeliveryType, packing bookingModel.PackingPreference, officerAssisted bool) decimal.Decimal {
	subtotal := baseRate.
		Add(weightCharge(weightInGram)).
		Add(deliveryCharge(delivery)).
		Add(packingCharge(packing))

	if officerAssisted {
		subtotal = subtotal.Add(adminFee)
	}

	return subtotal.Mul(taxFactor).Round(0)
}

func weightCharge(weightInGram int) decimal.Decimal {
	return decimal.NewFromInt(int64(weightInGram)).Mul(ratePerGram)
}

func deliveryCharge(d bookingModel.DeliveryType) decimal.Decimal {
	if charge, ok := deliveryCharges[d]; ok {
		return charge
	}
	return deliveryCharges[bookingModel.DeliveryStandard]
}

func packingCharge(p bookingModel.PackingPreference) decimal.Decimal {
	if charge, ok := packingCharges[p]; ok {
		return charge
	}
	return packingCharges[bookingModel.PackingBasic]
}
