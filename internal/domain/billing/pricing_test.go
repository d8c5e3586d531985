package billing

import (
	"fmt"
	"testing"

	"estetica_pro/internal/domain/entities"
)

func TestShouldRecomputeServicePrice(t *testing.T) {
	t.Run("fresh order with zero total", func(t *testing.T) {
		if !ShouldRecomputeServicePrice(0, []string{"svc-1"}, nil) {
			t.Fatal("expected recompute for zero total")
		}
	})

	t.Run("service set changed", func(t *testing.T) {
		if !ShouldRecomputeServicePrice(150, []string{"svc-1", "svc-2"}, []string{"svc-1"}) {
			t.Fatal("expected recompute when the selected set changed")
		}
	})

	t.Run("same set in different order keeps manual price", func(t *testing.T) {
		if ShouldRecomputeServicePrice(150, []string{"svc-2", "svc-1"}, []string{"svc-1", "svc-2"}) {
			t.Fatal("expected manual price to survive a reorder")
		}
	})

	t.Run("unchanged set with manual total", func(t *testing.T) {
		if ShouldRecomputeServicePrice(99, []string{"svc-1"}, []string{"svc-1"}) {
			t.Fatal("expected no recompute for an unchanged set")
		}
	})
}

func TestSumServicePrices(t *testing.T) {
	prices := map[string]map[entities.VehicleSize]float64{
		"svc-1": {entities.VehicleSizeMedium: 80, entities.VehicleSizeLarge: 100},
		"svc-2": {entities.VehicleSizeMedium: 40},
	}
	lookup := func(id string, size entities.VehicleSize) (float64, error) {
		p, ok := prices[id][size]
		if !ok {
			return 0, fmt.Errorf("no price for %s at %s", id, size)
		}
		return p, nil
	}

	got, err := SumServicePrices([]string{"svc-1", "svc-2"}, entities.VehicleSizeMedium, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 120 {
		t.Fatalf("expected 120, got %v", got)
	}

	got, err = SumServicePrices([]string{"svc-1"}, entities.VehicleSizeLarge, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}

	if _, err := SumServicePrices([]string{"svc-2"}, entities.VehicleSizeLarge, lookup); err == nil {
		t.Fatal("expected a lookup failure to abort the sum")
	}
}
