package pricing

import (
	"testing"

	bookingModel "courier-booking/models/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCost_PinnedValues(t *testing.T) {
	tests := []struct {
		name     string
		weight   int
		delivery bookingModel.DeliveryType
		packing  bookingModel.PackingPreference
		officer  bool
		want     int64
	}{
		// round((50 + 20 + 30 + 10) * 1.05) = round(115.5) = 116 (half up)
		{"standard basic customer", 1000, bookingModel.DeliveryStandard, bookingModel.PackingBasic, false, 116},
		// round((50 + 100 + 80 + 20 + 50) * 1.05) = 315
		{"express premium officer", 5000, bookingModel.DeliveryExpress, bookingModel.PackingPremium, true, 315},
		// round((50 + 40 + 30 + 10) * 1.05) = round(136.5) = 137
		{"end-to-end scenario weight", 2000, bookingModel.DeliveryStandard, bookingModel.PackingBasic, false, 137},
		// round((50 + 20 + 150 + 20) * 1.05) = 252
		{"same day premium", 1000, bookingModel.DeliverySameDay, bookingModel.PackingPremium, false, 252},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ServiceCost(tt.weight, tt.delivery, tt.packing, tt.officer)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"got %s, want %d", got.String(), tt.want)
		})
	}
}

func TestServiceCost_UnknownEnumsFallBack(t *testing.T) {
	standard := ServiceCost(1000, bookingModel.DeliveryStandard, bookingModel.PackingBasic, false)

	assert.True(t, ServiceCost(1000, bookingModel.DeliveryType("OVERNIGHT"), bookingModel.PackingBasic, false).Equal(standard))
	assert.True(t, ServiceCost(1000, bookingModel.DeliveryStandard, bookingModel.PackingPreference("DELUXE"), false).Equal(standard))
}

func TestServiceCost_OfficerFeeNeverDecreasesPrice(t *testing.T) {
	weights := []int{1, 500, 1000, 2500, 10000}
	deliveries := []bookingModel.DeliveryType{bookingModel.DeliveryStandard, bookingModel.DeliveryExpress, bookingModel.DeliverySameDay}
	packings := []bookingModel.PackingPreference{bookingModel.PackingBasic, bookingModel.PackingPremium}

	for _, w := range weights {
		for _, d := range deliveries {
			for _, p := range packings {
				customer := ServiceCost(w, d, p, false)
				officer := ServiceCost(w, d, p, true)
				require.True(t, officer.GreaterThanOrEqual(customer),
					"officer cost %s below customer cost %s for w=%d d=%s p=%s",
					officer, customer, w, d, p)
			}
		}
	}
}

func TestServiceCost_MonotonicInWeight(t *testing.T) {
	weights := []int{1, 100, 1000, 5000, 50000}

	for _, d := range []bookingModel.DeliveryType{bookingModel.DeliveryStandard, bookingModel.DeliveryExpress} {
		prev := decimal.Zero
		for _, w := range weights {
			cost := ServiceCost(w, d, bookingModel.PackingBasic, false)
			require.True(t, cost.GreaterThanOrEqual(prev),
				"cost decreased at weight %d for %s", w, d)
			prev = cost
		}
	}
}

func TestServiceCost_WholeCurrencyUnits(t *testing.T) {
	got := ServiceCost(1234, bookingModel.DeliveryExpress, bookingModel.PackingPremium, true)
	assert.True(t, got.Equal(got.Round(0)), "cost %s is not a whole unit", got)
	assert.True(t, got.IsPositive())
}
