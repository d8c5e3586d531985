package usecase

import (
	"context"
	"errors"
	"testing"

	"estetica_pro/internal/domain/entities"
	mock_interfaces "estetica_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type workOrderMocks struct {
	orders   *mock_interfaces.MockIWorkOrderRepository
	clients  *mock_interfaces.MockIClientRepository
	vehicles *mock_interfaces.MockIVehicleRepository
	catalog  *mock_interfaces.MockIServiceCatalog
	loyalty  *mock_interfaces.MockILoyaltyService
}

func newWorkOrderUseCaseForTest(t *testing.T) (*WorkOrderUseCase, workOrderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := workOrderMocks{
		orders:   mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		clients:  mock_interfaces.NewMockIClientRepository(ctrl),
		vehicles: mock_interfaces.NewMockIVehicleRepository(ctrl),
		catalog:  mock_interfaces.NewMockIServiceCatalog(ctrl),
		loyalty:  mock_interfaces.NewMockILoyaltyService(ctrl),
	}
	return NewWorkOrderUseCase(m.orders, m.clients, m.vehicles, m.catalog, m.loyalty), m
}

func TestWorkOrderUseCase_Save_Validations(t *testing.T) {
	t.Run("missing client", func(t *testing.T) {
		uc, _ := newWorkOrderUseCaseForTest(t)
		_, err := uc.Save(context.Background(), entities.WorkOrder{Vehicle: "HB20"})
		if !errors.Is(err, ErrMissingClient) {
			t.Fatalf("expected ErrMissingClient, got %v", err)
		}
	})

	t.Run("missing vehicle and plate", func(t *testing.T) {
		uc, _ := newWorkOrderUseCaseForTest(t)
		_, err := uc.Save(context.Background(), entities.WorkOrder{ClientID: "client-1"})
		if !errors.Is(err, ErrMissingVehicle) {
			t.Fatalf("expected ErrMissingVehicle, got %v", err)
		}
	})

	t.Run("plate alone satisfies the vehicle requirement", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.vehicles.EXPECT().ListByClientID(gomock.Any(), "client-1").Return(nil, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				w.ID = "os-1"
				return w, nil
			},
		)

		saved, err := uc.Save(context.Background(), entities.WorkOrder{ClientID: "client-1", Plate: "ABC1D23"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Status != entities.StatusAguardando {
			t.Fatalf("expected default status Aguardando, got %s", saved.Status)
		}
		if saved.PaymentStatus != entities.PaymentStatusPendente {
			t.Fatalf("expected pending payment status, got %s", saved.PaymentStatus)
		}
	})
}

func TestWorkOrderUseCase_Create_StatusSeeding(t *testing.T) {
	t.Run("intake opens awaiting approval", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				if w.Status != entities.StatusAguardandoAprovacao {
					t.Fatalf("expected Aguardando Aprovação, got %s", w.Status)
				}
				return w, nil
			},
		)

		if _, err := uc.CreateIntake(context.Background(), entities.WorkOrder{ClientID: "client-1", Vehicle: "HB20"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("staff creation opens in the queue", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				if w.Status != entities.StatusAguardando {
					t.Fatalf("expected Aguardando, got %s", w.Status)
				}
				return w, nil
			},
		)

		if _, err := uc.CreateByStaff(context.Background(), entities.WorkOrder{ClientID: "client-1", Vehicle: "HB20"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_Save_Totals(t *testing.T) {
	t.Run("catalog prices resolve by vehicle size", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.vehicles.EXPECT().ListByClientID(gomock.Any(), "client-1").Return([]entities.Vehicle{
			{ID: "v-1", ClientID: "client-1", Plate: "ABC1D23", Size: entities.VehicleSizeLarge},
		}, nil)
		m.catalog.EXPECT().GetPrice(gomock.Any(), "svc-polimento", entities.VehicleSizeLarge).Return(300.0, nil)
		m.catalog.EXPECT().GetPrice(gomock.Any(), "svc-lavagem", entities.VehicleSizeLarge).Return(80.0, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				return w, nil
			},
		)

		saved, err := uc.Save(context.Background(), entities.WorkOrder{
			ClientID:   "client-1",
			Vehicle:    "SW4",
			Plate:      "ABC1D23",
			ServiceIDs: []string{"svc-polimento", "svc-lavagem"},
			Discount:   entities.Discount{Type: entities.DiscountTypePercentage, Amount: 10},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ServicePrice != 380 {
			t.Fatalf("expected service price 380, got %v", saved.ServicePrice)
		}
		if saved.TotalValue != 342 {
			t.Fatalf("expected total 342 after 10%% discount, got %v", saved.TotalValue)
		}
	})

	t.Run("manual price survives when the service set is unchanged", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		stored := entities.WorkOrder{
			ID:         "os-1",
			ClientID:   "client-1",
			Vehicle:    "HB20",
			ServiceIDs: []string{"svc-polimento"},
			TotalValue: 250,
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(&stored, nil)
		// No catalog calls: the override is kept.
		m.orders.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch map[string]any) (*entities.WorkOrder, error) {
				if patch["total_value"].(float64) != 250 {
					t.Fatalf("expected override total kept, got %v", patch["total_value"])
				}
				out := stored
				out.TotalValue = patch["total_value"].(float64)
				return &out, nil
			},
		)

		draft := stored
		draft.ServicePrice = 250
		if _, err := uc.Save(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("changed service set forces a recompute", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		stored := entities.WorkOrder{
			ID:         "os-1",
			ClientID:   "client-1",
			Vehicle:    "HB20",
			ServiceIDs: []string{"svc-polimento"},
			TotalValue: 250,
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(&stored, nil)
		m.catalog.EXPECT().GetPrice(gomock.Any(), "svc-vitrificacao", entities.VehicleSizeMedium).Return(900.0, nil)
		m.orders.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch map[string]any) (*entities.WorkOrder, error) {
				if patch["service_price"].(float64) != 900 {
					t.Fatalf("expected recomputed price 900, got %v", patch["service_price"])
				}
				out := stored
				return &out, nil
			},
		)

		draft := stored
		draft.ServiceIDs = []string{"svc-vitrificacao"}
		if _, err := uc.Save(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_Save_VoucherConsumption(t *testing.T) {
	t.Run("first save carrying a voucher consumes it", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				w.ID = "os-1"
				return w, nil
			},
		)
		m.loyalty.EXPECT().ConsumeVoucher(gomock.Any(), "red-1").Return(nil)

		draft := entities.WorkOrder{ClientID: "client-1", Vehicle: "HB20", AppliedVoucher: "red-1"}
		if _, err := uc.Save(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("resaving an order with the same voucher does not reconsume", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		stored := entities.WorkOrder{
			ID:             "os-1",
			ClientID:       "client-1",
			Vehicle:        "HB20",
			TotalValue:     100,
			AppliedVoucher: "red-1",
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(&stored, nil)
		m.orders.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).Return(&stored, nil)

		if _, err := uc.Save(context.Background(), stored); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("consume failure fails the save", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				w.ID = "os-1"
				return w, nil
			},
		)
		m.loyalty.EXPECT().ConsumeVoucher(gomock.Any(), "red-1").Return(errors.New("ledger down"))

		draft := entities.WorkOrder{ClientID: "client-1", Vehicle: "HB20", AppliedVoucher: "red-1"}
		if _, err := uc.Save(context.Background(), draft); err == nil {
			t.Fatal("expected consume failure to surface")
		}
	})
}

func TestWorkOrderUseCase_ChangeStatus(t *testing.T) {
	t.Run("unknown target status", func(t *testing.T) {
		uc, _ := newWorkOrderUseCaseForTest(t)
		_, err := uc.ChangeStatus(context.Background(), entities.WorkOrder{ID: "os-1"}, "Inventado")
		if !errors.Is(err, ErrInvalidTargetStatus) {
			t.Fatalf("expected ErrInvalidTargetStatus, got %v", err)
		}
	})

	t.Run("delivery blocked by open required checklist items", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		stored := entities.WorkOrder{
			ID:       "os-1",
			ClientID: "client-1",
			Status:   entities.StatusConcluido,
			QAChecklist: []entities.QAItem{
				{Label: "Acabamento interno", Required: true, Checked: false},
			},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(&stored, nil)

		_, err := uc.ChangeStatus(context.Background(), entities.WorkOrder{ID: "os-1"}, entities.StatusEntregue)
		if !errors.Is(err, entities.ErrQAChecklistIncomplete) {
			t.Fatalf("expected ErrQAChecklistIncomplete, got %v", err)
		}
	})

	t.Run("draft edits land before the delivery guard runs", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		stored := entities.WorkOrder{
			ID:           "os-1",
			ClientID:     "client-1",
			Vehicle:      "SW4",
			Status:       entities.StatusConcluido,
			ServicePrice: 200,
			TotalValue:   200,
			QAChecklist: []entities.QAItem{
				{Label: "Acabamento interno", Required: true, Checked: false},
			},
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(&stored, nil).Times(2)
		m.orders.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch map[string]any) (*entities.WorkOrder, error) {
				items, ok := patch["qa_checklist"].([]entities.QAItem)
				if !ok || len(items) != 1 || !items[0].Checked {
					t.Fatalf("expected the checked item in the saved checklist, got %v", patch["qa_checklist"])
				}
				out := stored
				out.QAChecklist = items
				return &out, nil
			},
		)
		m.orders.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch map[string]any) (*entities.WorkOrder, error) {
				if patch["status"] != string(entities.StatusEntregue) {
					t.Fatalf("expected delivery status patch, got %v", patch["status"])
				}
				out := stored
				out.Status = entities.StatusEntregue
				return &out, nil
			},
		)

		draft := stored
		draft.QAChecklist = []entities.QAItem{
			{Label: "Acabamento interno", Required: true, Checked: true},
		}
		updated, err := uc.ChangeStatus(context.Background(), draft, entities.StatusEntregue)
		if err != nil {
			t.Fatalf("delivery with freshly checked items must pass, got %v", err)
		}
		if updated.Status != entities.StatusEntregue {
			t.Fatalf("expected Entregue, got %s", updated.Status)
		}
	})

	t.Run("completion credits points exactly once", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		stored := entities.WorkOrder{
			ID:         "os-1",
			ClientID:   "client-1",
			Status:     entities.StatusControleQualidade,
			TotalValue: 250.75,
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(&stored, nil)
		m.orders.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch map[string]any) (*entities.WorkOrder, error) {
				if patch["status"] != string(entities.StatusConcluido) {
					t.Fatalf("expected status patch, got %v", patch["status"])
				}
				if patch["points_credited"] != true {
					t.Fatal("expected points_credited flag in patch")
				}
				out := stored
				out.Status = entities.StatusConcluido
				out.PointsCredited = true
				return &out, nil
			},
		)
		m.loyalty.EXPECT().AddPointsToClient(gomock.Any(), "client-1", "os-1", 250, gomock.Any()).
			Return(entities.FidelityCard{}, nil)

		updated, err := uc.ChangeStatus(context.Background(), entities.WorkOrder{ID: "os-1"}, entities.StatusConcluido)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.StatusConcluido {
			t.Fatalf("expected Concluído, got %s", updated.Status)
		}
	})

	t.Run("already credited orders do not credit again", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		stored := entities.WorkOrder{
			ID:             "os-1",
			ClientID:       "client-1",
			Status:         entities.StatusControleQualidade,
			TotalValue:     250.75,
			PointsCredited: true,
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(&stored, nil)
		m.orders.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch map[string]any) (*entities.WorkOrder, error) {
				if _, ok := patch["points_credited"]; ok {
					t.Fatal("points_credited must not be re-patched")
				}
				out := stored
				out.Status = entities.StatusConcluido
				return &out, nil
			},
		)

		if _, err := uc.ChangeStatus(context.Background(), entities.WorkOrder{ID: "os-1"}, entities.StatusConcluido); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("points credit failure does not fail the status change", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		stored := entities.WorkOrder{
			ID:         "os-1",
			ClientID:   "client-1",
			Status:     entities.StatusControleQualidade,
			TotalValue: 100,
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(&stored, nil)
		m.orders.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch map[string]any) (*entities.WorkOrder, error) {
				out := stored
				out.Status = entities.StatusConcluido
				out.PointsCredited = true
				return &out, nil
			},
		)
		m.loyalty.EXPECT().AddPointsToClient(gomock.Any(), "client-1", "os-1", 100, gomock.Any()).
			Return(entities.FidelityCard{}, errors.New("ledger down"))

		if _, err := uc.ChangeStatus(context.Background(), entities.WorkOrder{ID: "os-1"}, entities.StatusConcluido); err != nil {
			t.Fatalf("status change must survive a credit failure, got %v", err)
		}
	})

	t.Run("draft without a stored row is force-saved first", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				w.ID = "os-new"
				return w, nil
			},
		)
		m.orders.EXPECT().Update(gomock.Any(), "os-new", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, patch map[string]any) (*entities.WorkOrder, error) {
				return &entities.WorkOrder{ID: id, ClientID: "client-1", Status: entities.WorkOrderStatus(patch["status"].(string))}, nil
			},
		)

		draft := entities.WorkOrder{ClientID: "client-1", Vehicle: "HB20"}
		updated, err := uc.ChangeStatus(context.Background(), draft, entities.StatusEmAndamento)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.StatusEmAndamento {
			t.Fatalf("expected Em Andamento, got %s", updated.Status)
		}
	})

	t.Run("cancellation of a delivered order is rejected", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		stored := entities.WorkOrder{ID: "os-1", ClientID: "client-1", Status: entities.StatusEntregue}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(&stored, nil)

		if _, err := uc.ChangeStatus(context.Background(), entities.WorkOrder{ID: "os-1"}, entities.StatusCancelado); err == nil {
			t.Fatal("expected terminal-state rejection")
		}
	})
}

func TestWorkOrderUseCase_ApplyVoucher(t *testing.T) {
	activeRedemption := func() *entities.Redemption {
		return &entities.Redemption{
			ID:       "red-1",
			ClientID: "client-1",
			RewardID: "reward-1",
			Code:     "ABC123",
			Status:   entities.RedemptionStatusActive,
		}
	}
	reward := func() *entities.Reward {
		return &entities.Reward{
			ID:       "reward-1",
			Name:     "Lavagem Grátis",
			Discount: entities.Discount{Type: entities.DiscountTypeService, Amount: 150},
		}
	}

	t.Run("unknown code", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.loyalty.EXPECT().GetVoucherDetails(gomock.Any(), "NOPE").Return(nil, nil, nil)

		draft := entities.WorkOrder{ClientID: "client-1"}
		if err := uc.ApplyVoucher(context.Background(), &draft, "NOPE", false); !errors.Is(err, ErrVoucherInvalid) {
			t.Fatalf("expected ErrVoucherInvalid, got %v", err)
		}
	})

	t.Run("used voucher", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		red := activeRedemption()
		red.Status = entities.RedemptionStatusUsed
		m.loyalty.EXPECT().GetVoucherDetails(gomock.Any(), "ABC123").Return(red, reward(), nil)

		draft := entities.WorkOrder{ClientID: "client-1"}
		if err := uc.ApplyVoucher(context.Background(), &draft, "ABC123", false); !errors.Is(err, ErrVoucherAlreadyUsed) {
			t.Fatalf("expected ErrVoucherAlreadyUsed, got %v", err)
		}
	})

	t.Run("expired voucher", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		red := activeRedemption()
		red.Status = entities.RedemptionStatusExpired
		m.loyalty.EXPECT().GetVoucherDetails(gomock.Any(), "ABC123").Return(red, reward(), nil)

		draft := entities.WorkOrder{ClientID: "client-1"}
		if err := uc.ApplyVoucher(context.Background(), &draft, "ABC123", false); !errors.Is(err, ErrVoucherInvalid) {
			t.Fatalf("expected ErrVoucherInvalid, got %v", err)
		}
	})

	t.Run("cross-client requires confirmation", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.loyalty.EXPECT().GetVoucherDetails(gomock.Any(), "ABC123").Return(activeRedemption(), reward(), nil)

		draft := entities.WorkOrder{ClientID: "client-other"}
		if err := uc.ApplyVoucher(context.Background(), &draft, "ABC123", false); !errors.Is(err, ErrVoucherClientMismatch) {
			t.Fatalf("expected ErrVoucherClientMismatch, got %v", err)
		}
		if draft.AppliedVoucher != "" {
			t.Fatal("draft must stay untouched on rejection")
		}
	})

	t.Run("cross-client applies with confirmation", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.loyalty.EXPECT().GetVoucherDetails(gomock.Any(), "ABC123").Return(activeRedemption(), reward(), nil)

		draft := entities.WorkOrder{ClientID: "client-other"}
		if err := uc.ApplyVoucher(context.Background(), &draft, "ABC123", true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.AppliedVoucher != "red-1" {
			t.Fatalf("expected applied voucher red-1, got %q", draft.AppliedVoucher)
		}
	})

	t.Run("apply sets discount fields but leaves the voucher active", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.loyalty.EXPECT().GetVoucherDetails(gomock.Any(), "ABC123").Return(activeRedemption(), reward(), nil)
		// No ConsumeVoucher expectation: consumption is deferred to save.

		draft := entities.WorkOrder{ClientID: "client-1"}
		if err := uc.ApplyVoucher(context.Background(), &draft, "ABC123", false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Discount.Type != entities.DiscountTypeService || draft.Discount.Amount != 150 {
			t.Fatalf("unexpected discount: %+v", draft.Discount)
		}
		if draft.Discount.Description == "" {
			t.Fatal("expected a voucher description on the discount")
		}
	})
}

func TestWorkOrderUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc, _ := newWorkOrderUseCaseForTest(t)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(nil, nil)

		if _, err := uc.GetByID(context.Background(), "os-1"); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("GetByID success trims the id", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(&entities.WorkOrder{ID: "os-1"}, nil)

		got, err := uc.GetByID(context.Background(), " os-1 ")
		if err != nil || got.ID != "os-1" {
			t.Fatalf("unexpected result err=%v got=%+v", err, got)
		}
	})

	t.Run("Delete invalid id", func(t *testing.T) {
		uc, _ := newWorkOrderUseCaseForTest(t)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})
}
