package services

import (
	"fmt"

	"foodrescue/internal/core/domain/model/pack"
	"foodrescue/internal/pkg/errs"
)

// AvgCO2PerKg is the average CO2 emission avoided per kilogram of food
// rescued from waste, in kg CO2e.
const AvgCO2PerKg = 2.5

// Pricing holds the derived metrics of a reservation. The values are computed
// once at order creation and frozen on the order afterwards, even if the
// package's own pricing later changes.
type Pricing struct {
	TotalPrice float64
	MoneySaved float64
	CO2SavedKg float64
}

// PricingCalculator computes the price, savings, and environmental impact of
// a reservation. It is deterministic and performs no I/O.
type PricingCalculator struct{}

// NewPricingCalculator creates a pricing calculator domain service.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Calculate derives the reservation metrics for the given package and
// quantity:
//
//	total price = price × quantity
//	money saved = (original price − price) × quantity
//	CO2 saved   = estimated weight × quantity × AvgCO2PerKg
//
// The package invariant price ≤ original price guarantees money saved is
// never negative.
func (c PricingCalculator) Calculate(p *pack.Package, quantity int) (Pricing, error) {
	if err := p.Validate(); err != nil {
		return Pricing{}, err
	}

	if quantity < 1 {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	qty := float64(quantity)
	return Pricing{
		TotalPrice: p.Price() * qty,
		MoneySaved: (p.OriginalPrice() - p.Price()) * qty,
		CO2SavedKg: p.EstimatedWeight() * qty * AvgCO2PerKg,
	}, nil
}
