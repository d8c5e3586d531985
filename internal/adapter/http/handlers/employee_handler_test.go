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

func newEmployeeRouter(t *testing.T) (*gin.Engine, *mocks.MockIEmployeeUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIEmployeeUseCase(ctrl)
	h := NewEmployeeHandler(uc)

	r := gin.New()
	r.POST("/v1/employees", h.Create)
	r.POST("/v1/employees/login", h.LoginWithPIN)
	r.PUT("/v1/employees/:id/pin", h.SetPIN)
	r.DELETE("/v1/employees/:id", h.Deactivate)
	return r, uc
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("pin format enforced at binding", func(t *testing.T) {
		r, _ := newEmployeeRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/employees", `{"name":"Carlos","pin":"12a4"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success omits the pin hash", func(t *testing.T) {
		r, uc := newEmployeeRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "1234").Return(entities.Employee{
			ID: "emp-1", Name: "Carlos", Active: true, PINHash: "$2a$10$secret",
		}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/employees", `{"name":"Carlos","role":"tecnico","pin":"1234"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "emp-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["pin_hash"]; ok {
			t.Fatal("response must not leak the pin hash")
		}
	})
}

func TestEmployeeHandler_LoginWithPIN(t *testing.T) {
	t.Run("rejected pin is unauthorized", func(t *testing.T) {
		r, uc := newEmployeeRouter(t)
		uc.EXPECT().LoginWithPIN(gomock.Any(), "0000").Return(entities.Employee{}, usecase.ErrPINRejected)

		w := doJSON(t, r, http.MethodPost, "/v1/employees/login", `{"pin":"0000"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success returns a session token", func(t *testing.T) {
		r, uc := newEmployeeRouter(t)
		uc.EXPECT().LoginWithPIN(gomock.Any(), "1234").Return(entities.Employee{
			ID: "emp-carlos", Name: "Carlos", Active: true,
		}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/employees/login", `{"pin":"1234"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		token, _ := body["token"].(string)
		if token == "" {
			t.Fatalf("expected a token, got %s", w.Body.String())
		}
		employee, _ := body["employee"].(map[string]any)
		if employee["id"] != "emp-carlos" {
			t.Fatalf("unexpected employee: %s", w.Body.String())
		}
	})
}

func TestEmployeeHandler_SetPIN(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newEmployeeRouter(t)
		uc.EXPECT().SetPIN(gomock.Any(), "emp-1", "9876").Return(nil)

		w := doJSON(t, r, http.MethodPut, "/v1/employees/emp-1/pin", `{"pin":"9876"}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("unknown employee", func(t *testing.T) {
		r, uc := newEmployeeRouter(t)
		uc.EXPECT().SetPIN(gomock.Any(), "ghost", "9876").Return(usecase.ErrEmployeeNotFound)

		w := doJSON(t, r, http.MethodPut, "/v1/employees/ghost/pin", `{"pin":"9876"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEmployeeHandler_Deactivate(t *testing.T) {
	r, uc := newEmployeeRouter(t)
	uc.EXPECT().Deactivate(gomock.Any(), "emp-1").Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/v1/employees/emp-1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
