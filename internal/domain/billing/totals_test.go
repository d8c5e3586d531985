package billing

import (
	"testing"

	"estetica_pro/internal/domain/entities"
)

func TestComputeTotals(t *testing.T) {
	t.Run("percentage discount over service plus extras", func(t *testing.T) {
		got := ComputeTotals(TotalsInput{
			ServicePrice: 100,
			AdditionalItems: []entities.AdditionalItem{
				{Description: "Cera extra", Value: 20},
			},
			Discount: entities.Discount{Type: entities.DiscountTypePercentage, Amount: 10},
		})

		if got.Subtotal != 120 {
			t.Fatalf("expected subtotal 120, got %v", got.Subtotal)
		}
		if got.Discount != 12 {
			t.Fatalf("expected discount 12, got %v", got.Discount)
		}
		if got.Total != 108 {
			t.Fatalf("expected total 108, got %v", got.Total)
		}
		if got.ExtrasTotal != 20 {
			t.Fatalf("expected extras 20, got %v", got.ExtrasTotal)
		}
	})

	t.Run("value discount", func(t *testing.T) {
		got := ComputeTotals(TotalsInput{
			ServicePrice: 200,
			Discount:     entities.Discount{Type: entities.DiscountTypeValue, Amount: 30},
		})

		if got.Total != 170 {
			t.Fatalf("expected total 170, got %v", got.Total)
		}
	})

	t.Run("service discount behaves as absolute value", func(t *testing.T) {
		got := ComputeTotals(TotalsInput{
			ServicePrice: 150,
			Discount:     entities.Discount{Type: entities.DiscountTypeService, Amount: 50, Description: "Lavagem cortesia"},
		})

		if got.Total != 100 {
			t.Fatalf("expected total 100, got %v", got.Total)
		}
	})

	t.Run("total floors at zero", func(t *testing.T) {
		got := ComputeTotals(TotalsInput{
			ServicePrice: 50,
			Discount:     entities.Discount{Type: entities.DiscountTypeValue, Amount: 80},
		})

		if got.Total != 0 {
			t.Fatalf("expected total 0, got %v", got.Total)
		}
	})

	t.Run("insurance bypasses discount", func(t *testing.T) {
		got := ComputeTotals(TotalsInput{
			ServicePrice: 500,
			AdditionalItems: []entities.AdditionalItem{
				{Description: "Polimento adicional", Value: 25},
			},
			Discount: entities.Discount{Type: entities.DiscountTypePercentage, Amount: 50},
			Insurance: entities.Insurance{
				IsInsurance:            true,
				DeductibleAmount:       50,
				InsuranceCoveredAmount: 300,
			},
		})

		if got.Total != 375 {
			t.Fatalf("expected total 375, got %v", got.Total)
		}
		if got.Discount != 0 {
			t.Fatalf("expected no discount under insurance, got %v", got.Discount)
		}
	})

	t.Run("rounds to cents", func(t *testing.T) {
		got := ComputeTotals(TotalsInput{
			ServicePrice: 99.99,
			Discount:     entities.Discount{Type: entities.DiscountTypePercentage, Amount: 33.33},
		})

		// 99.99 * 33.33% = 33.326667 -> 33.33; total 66.66
		if got.Discount != 33.33 {
			t.Fatalf("expected discount 33.33, got %v", got.Discount)
		}
		if got.Total != 66.66 {
			t.Fatalf("expected total 66.66, got %v", got.Total)
		}
	})
}

func TestPointsForTotal(t *testing.T) {
	cases := []struct {
		total float64
		want  int
	}{
		{0, 0},
		{0.99, 0},
		{1, 1},
		{108, 108},
		{249.9, 249},
	}
	for _, tc := range cases {
		if got := PointsForTotal(tc.total); got != tc.want {
			t.Fatalf("PointsForTotal(%v) = %d, want %d", tc.total, got, tc.want)
		}
	}
}
