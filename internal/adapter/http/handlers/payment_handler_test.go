package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"estetica_pro/internal/adapter/http/handlers/mocks"
	"estetica_pro/internal/domain/entities"
	"estetica_pro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.POST("/v1/work-orders/:id/payment", h.Register)
	r.DELETE("/v1/work-orders/:id/payment", h.Undo)
	r.GET("/v1/work-orders/:id/payments", h.ListByWorkOrder)
	return r, uc
}

func TestPaymentHandler_Register(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/work-orders/os-1/payment", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown method fails binding", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/work-orders/os-1/payment", `{"method":"cheque"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty card payload defaults to an empty object", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().RegisterPayment(gomock.Any(), "os-1", "dinheiro", gomock.Any()).DoAndReturn(
			func(_ any, id, method string, payload json.RawMessage) (entities.FinancialTransaction, error) {
				if string(payload) != "{}" {
					t.Fatalf("expected {} payload, got %s", payload)
				}
				return entities.FinancialTransaction{ID: "tx-1", Amount: 150, NetAmount: 150}, nil
			},
		)

		w := doJSON(t, r, http.MethodPost, "/v1/work-orders/os-1/payment", `{"method":"dinheiro"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "tx-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("card payload is forwarded", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().RegisterPayment(gomock.Any(), "os-1", "cartao", gomock.Any()).DoAndReturn(
			func(_ any, id, method string, payload json.RawMessage) (entities.FinancialTransaction, error) {
				var card map[string]any
				if err := json.Unmarshal(payload, &card); err != nil {
					t.Fatalf("card payload should be valid json: %v", err)
				}
				if card["token"] != "tok_1" {
					t.Fatalf("unexpected card payload: %s", payload)
				}
				return entities.FinancialTransaction{ID: "tx-1"}, nil
			},
		)

		w := doJSON(t, r, http.MethodPost, "/v1/work-orders/os-1/payment",
			`{"method":"cartao","card_payload":{"token":"tok_1","installments":1}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("already paid conflict", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().RegisterPayment(gomock.Any(), "os-1", "pix", gomock.Any()).
			Return(entities.FinancialTransaction{}, usecase.ErrPaymentAlreadyRegistered)

		w := doJSON(t, r, http.MethodPost, "/v1/work-orders/os-1/payment", `{"method":"pix"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing gateway is service unavailable", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().RegisterPayment(gomock.Any(), "os-1", "cartao", gomock.Any()).
			Return(entities.FinancialTransaction{}, usecase.ErrPaymentGatewayRequired)

		w := doJSON(t, r, http.MethodPost, "/v1/work-orders/os-1/payment", `{"method":"cartao"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PAYMENT_GATEWAY_REQUIRED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_Undo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().UndoPayment(gomock.Any(), "os-1").Return(nil)

		w := doJSON(t, r, http.MethodDelete, "/v1/work-orders/os-1/payment", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("nothing to undo", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().UndoPayment(gomock.Any(), "os-1").Return(usecase.ErrPaymentNotFound)

		w := doJSON(t, r, http.MethodDelete, "/v1/work-orders/os-1/payment", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListByWorkOrder(t *testing.T) {
	r, uc := newPaymentRouter(t)
	uc.EXPECT().ListByWorkOrder(gomock.Any(), "os-1").Return([]entities.FinancialTransaction{
		{ID: "tx-1", Amount: 150, Fee: 5.25, NetAmount: 144.75},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/work-orders/os-1/payments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != "tx-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
