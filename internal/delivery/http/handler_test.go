package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpdelivery "dtech-os/internal/delivery/http"
	"dtech-os/internal/models"
	"dtech-os/internal/orders"
	"dtech-os/internal/printdoc"
	"dtech-os/internal/service"
)

type svcStub struct {
	login         func(ctx context.Context, username, password string) error
	logout        func() error
	authenticated bool

	refresh   func(ctx context.Context) ([]models.Order, error)
	cached    func(search string) []models.Order
	orderByID func(id string) (models.Order, error)
	nextOS    string

	saveForm     func(ctx context.Context, form models.Form) (orders.Payload, error)
	deleteOrder  func(ctx context.Context, id string) error
	changeStatus func(ctx context.Context, id, status string) error

	exportCSV func(search string) (string, string, error)

	printOrder func(id, mode string) (string, error)
}

var _ service.Orders = (*svcStub)(nil)

func (s *svcStub) Login(ctx context.Context, username, password string) error {
	if s.login != nil {
		return s.login(ctx, username, password)
	}
	return nil
}

func (s *svcStub) Logout() error {
	if s.logout != nil {
		return s.logout()
	}
	return nil
}

func (s *svcStub) Authenticated() bool { return s.authenticated }

func (s *svcStub) RefreshOrders(ctx context.Context) ([]models.Order, error) {
	if s.refresh != nil {
		return s.refresh(ctx)
	}
	return nil, nil
}

func (s *svcStub) CachedOrders(search string) []models.Order {
	if s.cached != nil {
		return s.cached(search)
	}
	return nil
}

func (s *svcStub) OrderByID(id string) (models.Order, error) {
	if s.orderByID != nil {
		return s.orderByID(id)
	}
	return models.Order{}, service.ErrNotFound
}

func (s *svcStub) NextOSNumber() string { return s.nextOS }

func (s *svcStub) SaveForm(ctx context.Context, form models.Form) (orders.Payload, error) {
	if s.saveForm != nil {
		return s.saveForm(ctx, form)
	}
	return orders.Payload{}, nil
}

func (s *svcStub) DeleteOrder(ctx context.Context, id string) error {
	if s.deleteOrder != nil {
		return s.deleteOrder(ctx, id)
	}
	return nil
}

func (s *svcStub) ChangeStatus(ctx context.Context, id, status string) error {
	if s.changeStatus != nil {
		return s.changeStatus(ctx, id, status)
	}
	return nil
}

func (s *svcStub) ExportCSV(search string) (string, string, error) {
	if s.exportCSV != nil {
		return s.exportCSV(search)
	}
	return "", "", service.ErrNotFound
}

func (s *svcStub) PrintOrder(id, mode string) (string, error) {
	if s.printOrder != nil {
		return s.printOrder(id, mode)
	}
	return "", service.ErrNotFound
}

func (s *svcStub) PrintForm(form models.Form, mode string) string {
	return "<html>form</html>"
}

func (s *svcStub) PrintEstimate(e printdoc.Estimate) string { return "<html>estimate</html>" }

func (s *svcStub) PrintCloseOrder(c printdoc.CloseOrder) string { return "<html>close</html>" }

func (s *svcStub) PrintWarranty(w printdoc.Warranty) string { return "<html>warranty</html>" }

func (s *svcStub) PrintPurchase(p printdoc.Purchase, mode string) string {
	return "<html>purchase</html>"
}

func perform(t *testing.T, stub *svcStub, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := httpdelivery.NewHandler(stub)
	r := h.InitRoutes()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_OK(t *testing.T) {
	var gotUser string
	stub := &svcStub{
		login: func(ctx context.Context, username, password string) error {
			gotUser = username
			return nil
		},
	}

	w := perform(t, stub, http.MethodPost, "/api/login", `{"username":"admin","password":"secret"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "admin", gotUser)
}

func TestLogin_MissingBody_400(t *testing.T) {
	w := perform(t, &svcStub{}, http.MethodPost, "/api/login", `{"username":"admin"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_AuthFailure_401(t *testing.T) {
	stub := &svcStub{
		login: func(ctx context.Context, username, password string) error {
			return service.ErrAuth
		},
	}

	w := perform(t, stub, http.MethodPost, "/api/login", `{"username":"a","password":"b"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSession(t *testing.T) {
	w := perform(t, &svcStub{authenticated: true}, http.MethodGet, "/api/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"authenticated":true`)
}

func TestGetAllOrders_PassesSearch(t *testing.T) {
	var gotSearch string
	stub := &svcStub{
		cached: func(search string) []models.Order {
			gotSearch = search
			return []models.Order{{ID: "20240315-001"}}
		},
	}

	w := perform(t, stub, http.MethodGet, "/api/orders?search=maria", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "maria", gotSearch)
	require.Contains(t, w.Body.String(), "20240315-001")
}

func TestGetOrderByID_404(t *testing.T) {
	w := perform(t, &svcStub{}, http.MethodGet, "/api/order/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderByID_OK(t *testing.T) {
	stub := &svcStub{
		orderByID: func(id string) (models.Order, error) {
			require.Equal(t, "20240315-001", id)
			return models.Order{ID: id, Cliente: "Maria"}, nil
		},
	}

	w := perform(t, stub, http.MethodGet, "/api/order/20240315-001", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Maria")
}

func TestSaveOrder_ValidationError_400(t *testing.T) {
	stub := &svcStub{
		saveForm: func(ctx context.Context, form models.Form) (orders.Payload, error) {
			return orders.Payload{}, service.ErrValidation
		},
	}

	w := perform(t, stub, http.MethodPost, "/api/orders", `{"cliente":"Maria"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveOrder_ReturnsPayload(t *testing.T) {
	stub := &svcStub{
		saveForm: func(ctx context.Context, form models.Form) (orders.Payload, error) {
			require.Equal(t, "Maria", form.Cliente)
			return orders.Payload{ID: "20240315-001", Status: models.StatusAberta}, nil
		},
	}

	w := perform(t, stub, http.MethodPost, "/api/orders", `{"cliente":"Maria"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "20240315-001")
}

func TestChangeStatus(t *testing.T) {
	var gotID, gotStatus string
	stub := &svcStub{
		changeStatus: func(ctx context.Context, id, status string) error {
			gotID, gotStatus = id, status
			return nil
		},
	}

	w := perform(t, stub, http.MethodPatch, "/api/order/20240315-001/status", `{"status":"Finalizada"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "20240315-001", gotID)
	require.Equal(t, "Finalizada", gotStatus)
}

func TestChangeStatus_MissingStatus_400(t *testing.T) {
	w := perform(t, &svcStub{}, http.MethodPatch, "/api/order/20240315-001/status", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOrder(t *testing.T) {
	var gotID string
	stub := &svcStub{
		deleteOrder: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}

	w := perform(t, stub, http.MethodDelete, "/api/order/20240315-001", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "20240315-001", gotID)
}

func TestExportCSV_Download(t *testing.T) {
	stub := &svcStub{
		exportCSV: func(search string) (string, string, error) {
			return "ordens-servico-1.csv", `"ID";"Data"`, nil
		},
	}

	w := perform(t, stub, http.MethodGet, "/api/export", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "ordens-servico-1.csv")
	require.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, w.Body.String(), `"ID";"Data"`)
}

func TestExportCSV_Empty_404(t *testing.T) {
	w := perform(t, &svcStub{}, http.MethodGet, "/api/export", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrintOrder_DefaultsToA4(t *testing.T) {
	var gotMode string
	stub := &svcStub{
		printOrder: func(id, mode string) (string, error) {
			gotMode = mode
			return "<html>os</html>", nil
		},
	}

	w := perform(t, stub, http.MethodGet, "/api/order/20240315-001/print", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, printdoc.ModeA4, gotMode)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestPrintOrder_ModeQuery(t *testing.T) {
	var gotMode string
	stub := &svcStub{
		printOrder: func(id, mode string) (string, error) {
			gotMode = mode
			return "<html>os</html>", nil
		},
	}

	w := perform(t, stub, http.MethodGet, "/api/order/20240315-001/print?mode=thermal58", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, printdoc.ModeThermal58, gotMode)
}

func TestPrintEndpoints(t *testing.T) {
	stub := &svcStub{}
	for target, body := range map[string]string{
		"/api/print/os":       `{"mode":"a4","form":{}}`,
		"/api/print/estimate": `{"cliente":"Maria"}`,
		"/api/print/close":    `{"os":"20240315-001"}`,
		"/api/print/warranty": `{"nome":"Ana"}`,
		"/api/print/purchase": `{"mode":"a4","purchase":{}}`,
	} {
		w := perform(t, stub, http.MethodPost, target, body)
		require.Equal(t, http.StatusOK, w.Code, target)
		require.Contains(t, w.Header().Get("Content-Type"), "text/html", target)
	}
}

func TestServer_RunShutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		if err := s.Run(":0", handler); err != nil && err != http.ErrServerClosed {
			t.Error(err)
		}
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Shutdown(context.Background()))
}
