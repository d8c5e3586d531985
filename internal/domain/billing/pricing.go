package billing

import (
	"sort"

	"estetica_pro/internal/domain/entities"
)

// PriceLookup resolves the catalog price of a service for a vehicle size.
type PriceLookup func(serviceID string, size entities.VehicleSize) (float64, error)

// ShouldRecomputeServicePrice decides whether the catalog price must be
// re-derived from the selected services. Recompute when the stored total is
// zero (fresh order) or the selected service set differs from the persisted
// one; otherwise a manually overridden price is preserved.
func ShouldRecomputeServicePrice(currentTotal float64, selected, persisted []string) bool {
	if currentTotal == 0 {
		return true
	}
	return !sameIDSet(selected, persisted)
}

// SumServicePrices totals the catalog prices of the selected services.
func SumServicePrices(serviceIDs []string, size entities.VehicleSize, price PriceLookup) (float64, error) {
	total := 0.0
	for _, id := range serviceIDs {
		p, err := price(id, size)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
