package entities

import (
	"errors"
	"testing"
)

func TestWorkOrderTransitionError(t *testing.T) {
	t.Run("delivery blocked by unchecked required item", func(t *testing.T) {
		w := WorkOrder{
			Status: StatusConcluido,
			QAChecklist: []QAItem{
				{Label: "Pintura inspecionada", Required: true, Checked: true},
				{Label: "Interior aspirado", Required: true, Checked: false},
			},
		}

		err := w.TransitionError(StatusEntregue)
		if !errors.Is(err, ErrQAChecklistIncomplete) {
			t.Fatalf("expected ErrQAChecklistIncomplete, got %v", err)
		}
		if w.CanTransition(StatusEntregue) {
			t.Fatal("CanTransition must agree with TransitionError")
		}
	})

	t.Run("delivery allowed when required items checked", func(t *testing.T) {
		w := WorkOrder{
			Status: StatusConcluido,
			QAChecklist: []QAItem{
				{Label: "Pintura inspecionada", Required: true, Checked: true},
				{Label: "Brinde no porta-luvas", Required: false, Checked: false},
			},
		}

		if err := w.TransitionError(StatusEntregue); err != nil {
			t.Fatalf("expected delivery to be allowed, got %v", err)
		}
	})

	t.Run("empty checklist never blocks", func(t *testing.T) {
		w := WorkOrder{Status: StatusControleQualidade}
		if err := w.TransitionError(StatusEntregue); err != nil {
			t.Fatalf("expected delivery allowed with no checklist, got %v", err)
		}
	})

	t.Run("cancel is legal from any non-terminal state", func(t *testing.T) {
		for _, s := range []WorkOrderStatus{StatusAguardandoAprovacao, StatusAguardando, StatusEmAndamento, StatusAguardandoPecas, StatusControleQualidade, StatusConcluido} {
			w := WorkOrder{Status: s}
			if err := w.TransitionError(StatusCancelado); err != nil {
				t.Fatalf("expected cancel allowed from %s, got %v", s, err)
			}
		}
	})

	t.Run("terminal orders are frozen", func(t *testing.T) {
		for _, s := range []WorkOrderStatus{StatusEntregue, StatusCancelado} {
			w := WorkOrder{Status: s}
			if err := w.TransitionError(StatusEmAndamento); err == nil {
				t.Fatalf("expected transition from %s to be rejected", s)
			}
		}
	})

	t.Run("any other transition is unguarded", func(t *testing.T) {
		w := WorkOrder{Status: StatusAguardando}
		if err := w.TransitionError(StatusControleQualidade); err != nil {
			t.Fatalf("expected unguarded move, got %v", err)
		}
	})
}

func TestTierForPoints(t *testing.T) {
	cases := []struct {
		lifetime int
		want     LoyaltyTier
	}{
		{0, TierBronze},
		{499, TierBronze},
		{500, TierPrata},
		{1499, TierPrata},
		{1500, TierOuro},
		{10000, TierOuro},
	}
	for _, tc := range cases {
		if got := TierForPoints(tc.lifetime); got != tc.want {
			t.Fatalf("TierForPoints(%d) = %s, want %s", tc.lifetime, got, tc.want)
		}
	}
}

func TestTierAllows(t *testing.T) {
	if !TierAllows(TierOuro, TierBronze) {
		t.Fatal("ouro must unlock bronze rewards")
	}
	if TierAllows(TierBronze, TierPrata) {
		t.Fatal("bronze must not unlock prata rewards")
	}
	if !TierAllows(TierPrata, TierPrata) {
		t.Fatal("equal tier must unlock")
	}
}

func TestServicePriceFor(t *testing.T) {
	s := Service{Prices: map[VehicleSize]float64{
		VehicleSizeMedium: 80,
		VehicleSizeLarge:  110,
	}}

	if got := s.PriceFor(VehicleSizeLarge); got != 110 {
		t.Fatalf("expected 110, got %v", got)
	}
	// Unpriced sizes fall back to the medium bucket.
	if got := s.PriceFor(VehicleSizeExtra); got != 80 {
		t.Fatalf("expected medium fallback 80, got %v", got)
	}
}
