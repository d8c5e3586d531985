// Package billing holds the pure derived-value computation for work orders:
// subtotal, discount and final total. It depends only on plain data so the
// use case can recompute on every input change before persisting.
package billing

import (
	"github.com/shopspring/decimal"

	"estetica_pro/internal/domain/entities"
)

// TotalsInput are the mutable billing inputs of a work order.
type TotalsInput struct {
	ServicePrice    float64
	AdditionalItems []entities.AdditionalItem
	Discount        entities.Discount
	Insurance       entities.Insurance
}

// Totals is the derived billing state. Total is never negative.
type Totals struct {
	ExtrasTotal float64
	Subtotal    float64
	Discount    float64
	Total       float64
}

// ComputeTotals derives subtotal, discount and final total.
//
// When insurance billing is active the discount mechanism is bypassed and the
// total is deductible + covered + extras. Otherwise the discount is applied
// to servicePrice + extras and the result is floored at zero. Money math runs
// on decimals and is rounded to cents at the edges.
func ComputeTotals(in TotalsInput) Totals {
	extras := decimal.Zero
	for _, item := range in.AdditionalItems {
		extras = extras.Add(decimal.NewFromFloat(item.Value))
	}

	if in.Insurance.IsInsurance {
		total := decimal.NewFromFloat(in.Insurance.DeductibleAmount).
			Add(decimal.NewFromFloat(in.Insurance.InsuranceCoveredAmount)).
			Add(extras)
		subtotal := decimal.NewFromFloat(in.ServicePrice).Add(extras)
		return Totals{
			ExtrasTotal: round2(extras),
			Subtotal:    round2(subtotal),
			Discount:    0,
			Total:       round2(total),
		}
	}

	subtotal := decimal.NewFromFloat(in.ServicePrice).Add(extras)

	var discount decimal.Decimal
	switch in.Discount.Type {
	case entities.DiscountTypePercentage:
		discount = subtotal.Mul(decimal.NewFromFloat(in.Discount.Amount)).Div(decimal.NewFromInt(100))
	case entities.DiscountTypeValue, entities.DiscountTypeService:
		discount = decimal.NewFromFloat(in.Discount.Amount)
	default:
		discount = decimal.Zero
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		ExtrasTotal: round2(extras),
		Subtotal:    round2(subtotal),
		Discount:    round2(discount),
		Total:       round2(total),
	}
}

// PointsForTotal converts a paid total into loyalty points: one point per
// whole currency unit.
func PointsForTotal(total float64) int {
	return int(decimal.NewFromFloat(total).Floor().IntPart())
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
