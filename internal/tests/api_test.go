package tests

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxi/internal/app"
	"taxi/internal/domain"
	"taxi/internal/handler"
	"taxi/internal/repository"
	"taxi/internal/service"
)

// ──────────────────────────────────────────────
// HTTP API SCENARIOS
// ──────────────────────────────────────────────

type testAPI struct {
	router     *gin.Engine
	clientRepo *MockClientRepository
	driverRepo *MockDriverRepository
	orderRepo  *MockOrderRepository
}

func newTestAPI() *testAPI {
	gin.SetMode(gin.TestMode)

	clientRepo := NewMockClientRepository()
	driverRepo := NewMockDriverRepository()
	orderRepo := NewMockOrderRepository()

	router := app.NewRouter(app.RouterDeps{
		ClientHandler: handler.NewClientHandler(service.NewClientService(clientRepo, nil)),
		DriverHandler: handler.NewDriverHandler(service.NewDriverService(driverRepo, nil)),
		OrderHandler:  handler.NewOrderHandler(service.NewOrderService(nil, orderRepo, nil)),
		Logger:        zap.NewNop(),
	})

	return &testAPI{
		router:     router,
		clientRepo: clientRepo,
		driverRepo: driverRepo,
		orderRepo:  orderRepo,
	}
}

func (a *testAPI) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// Scenario A: create a client, read it back.
func TestAPI_ClientCreateAndGet(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodPost, "/clients", `{"name":"Ann","is_vip":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"id":1`) {
		t.Errorf("expected id 1 in response, got %s", w.Body.String())
	}

	w = api.do(t, http.MethodGet, "/clients/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Ann") || !strings.Contains(body, `"is_vip":false`) {
		t.Errorf("unexpected client representation: %s", body)
	}
}

func TestAPI_ClientValidation(t *testing.T) {
	api := newTestAPI()

	cases := []struct {
		name string
		body string
	}{
		{"missing is_vip", `{"name":"Ann"}`},
		{"empty name", `{"name":"","is_vip":true}`},
		{"is_vip wrong type", `{"name":"Ann","is_vip":"yes"}`},
		{"unknown field", `{"name":"Ann","is_vip":true,"phone":"123"}`},
	}

	for _, tc := range cases {
		if w := api.do(t, http.MethodPost, "/clients", tc.body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, w.Code)
		}
	}

	if api.clientRepo.CreateCallCount != 0 {
		t.Error("invalid payloads must not reach the repository")
	}
}

func TestAPI_DriverValidation(t *testing.T) {
	api := newTestAPI()

	// name and car both require at least two characters
	if w := api.do(t, http.MethodPost, "/drivers", `{"name":"B","car":"BMW"}`); w.Code != http.StatusBadRequest {
		t.Errorf("short name: expected 400, got %d", w.Code)
	}
	if w := api.do(t, http.MethodPost, "/drivers", `{"name":"Boris","car":"X"}`); w.Code != http.StatusBadRequest {
		t.Errorf("short car: expected 400, got %d", w.Code)
	}
	if w := api.do(t, http.MethodPost, "/drivers", `{"name":"Boris","car":"BMW"}`); w.Code != http.StatusOK {
		t.Errorf("valid driver: expected 200, got %d", w.Code)
	}
}

// Scenario E: deleting a missing driver returns 404.
func TestAPI_DeleteMissingDriver(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodDelete, "/drivers/999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "driver not found") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestAPI_DeleteDriverConfirmation(t *testing.T) {
	api := newTestAPI()
	api.driverRepo.AddDriver(&domain.Driver{ID: 5, Name: "Boris", Car: "BMW"})

	w := api.do(t, http.MethodDelete, "/drivers/5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "driver 5 deleted") {
		t.Errorf("unexpected confirmation: %s", w.Body.String())
	}
	if api.driverRepo.CountDrivers() != 0 {
		t.Error("driver not removed")
	}
}

// The legacy service dereferenced a missing record and crashed; this API
// answers 404 instead.
func TestAPI_GetMissingEntityIs404(t *testing.T) {
	api := newTestAPI()

	for _, path := range []string{"/clients/7", "/drivers/7", "/orders/7"} {
		if w := api.do(t, http.MethodGet, path, ""); w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
	}
}

func orderBody(clientID, driverID int64, date, status, from, to string) string {
	return fmt.Sprintf(
		`{"client_id":%d,"driver_id":%d,"date_created":%q,"status":%q,"address_from":%q,"address_to":%q}`,
		clientID, driverID, date, status, from, to,
	)
}

const testDate = "2024-05-01T09:00:00Z"

// Scenario B: a not_accepted order cannot jump straight to done.
func TestAPI_OrderIllegalTransition(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodPost, "/orders", orderBody(1, 2, testDate, "not_accepted", "Lenina 1", "Pushkina 7"))
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodPut, "/orders/1", orderBody(1, 2, testDate, "done", "Lenina 1", "Pushkina 7"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "cannot change order status") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

// Scenario C: an in-progress order accepts an address-only change when the
// proposed status is a legal target.
func TestAPI_OrderInProgressAddressChangeAccepted(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodPost, "/orders", orderBody(1, 2, testDate, "in_progress", "Lenina 1", "Pushkina 7"))
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodPut, "/orders/1", orderBody(1, 2, testDate, "done", "Lenina 1", "Gagarina 3"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Gagarina 3") {
		t.Errorf("address change not applied: %s", w.Body.String())
	}
}

// Scenario D: a done order rejects every update.
func TestAPI_OrderDoneRejectsAnyUpdate(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodPost, "/orders", orderBody(1, 2, testDate, "done", "Lenina 1", "Pushkina 7"))
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodPut, "/orders/1", orderBody(1, 2, testDate, "cancelled", "Lenina 1", "Pushkina 7"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "cannot modify a completed order") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestAPI_OrderValidation(t *testing.T) {
	api := newTestAPI()

	cases := []struct {
		name string
		body string
	}{
		{"bad status", orderBody(1, 2, testDate, "delivered", "A1", "B1")},
		{"bad timestamp", orderBody(1, 2, "yesterday", "done", "A1", "B1")},
		{"missing addresses", `{"client_id":1,"driver_id":2,"date_created":"` + testDate + `","status":"done"}`},
		{"unknown field", `{"client_id":1,"driver_id":2,"date_created":"` + testDate + `","status":"done","address_from":"A1","address_to":"B1","fare":10}`},
	}

	for _, tc := range cases {
		if w := api.do(t, http.MethodPost, "/orders", tc.body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, w.Code)
		}
	}

	if api.orderRepo.CreateCallCount != 0 {
		t.Error("invalid payloads must not reach the repository")
	}
}

func TestAPI_OrderRoundTrip(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodPost, "/orders", orderBody(3, 4, testDate, "cancelled", "Lenina 1", "Pushkina 7"))
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodGet, "/orders/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{`"client_id":3`, `"driver_id":4`, `"status":"cancelled"`, testDate, "Lenina 1", "Pushkina 7"} {
		if !strings.Contains(body, want) {
			t.Errorf("round trip lost %q: %s", want, body)
		}
	}
}

// An order naming a client or driver the database does not know is a bad
// request, not an unhandled storage failure.
func TestAPI_OrderUnknownReferenceIs400(t *testing.T) {
	api := newTestAPI()
	api.orderRepo.CreateError = repository.ErrInvalidReference

	w := api.do(t, http.MethodPost, "/orders", orderBody(42, 43, testDate, "not_accepted", "Lenina 1", "Pushkina 7"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "referenced entity does not exist") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if api.orderRepo.CountOrders() != 0 {
		t.Error("no order may be stored for an unknown reference")
	}
}

func TestAPI_DuplicateClientNameIs409(t *testing.T) {
	api := newTestAPI()

	if w := api.do(t, http.MethodPost, "/clients", `{"name":"Ann","is_vip":false}`); w.Code != http.StatusOK {
		t.Fatalf("first create: expected 200, got %d", w.Code)
	}

	w := api.do(t, http.MethodPost, "/clients", `{"name":"Ann","is_vip":true}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", w.Code, w.Body.String())
	}
	if api.clientRepo.CountClients() != 1 {
		t.Errorf("expected 1 stored client, got %d", api.clientRepo.CountClients())
	}
}

func TestAPI_DuplicateDriverNameIs409(t *testing.T) {
	api := newTestAPI()

	if w := api.do(t, http.MethodPost, "/drivers", `{"name":"Boris","car":"BMW"}`); w.Code != http.StatusOK {
		t.Fatalf("first create: expected 200, got %d", w.Code)
	}

	w := api.do(t, http.MethodPost, "/drivers", `{"name":"Boris","car":"Lada"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAPI_UpdateMissingOrderIs404(t *testing.T) {
	api := newTestAPI()

	w := api.do(t, http.MethodPut, "/orders/77", orderBody(1, 2, testDate, "cancelled", "A1", "B1"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

// An unmapped storage failure surfaces as a generic 500 without leaking the
// underlying error text.
func TestAPI_StorageFailureIs500(t *testing.T) {
	api := newTestAPI()
	api.orderRepo.AddOrder(&domain.Order{
		ID:          1,
		ClientID:    1,
		DriverID:    2,
		AddressFrom: "A1",
		AddressTo:   "B1",
		Status:      domain.OrderStatusNotAccepted,
	})
	api.orderRepo.UpdateError = errors.New("connection reset by peer")

	w := api.do(t, http.MethodPut, "/orders/1", orderBody(1, 2, testDate, "cancelled", "A1", "B1"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d (%s)", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "connection reset") {
		t.Errorf("storage error text leaked to the caller: %s", w.Body.String())
	}
}
