package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Yasinqurni/m-app-server/internal/apperror"
	"github.com/Yasinqurni/m-app-server/internal/models"
)

type mockCashflowService struct {
	createFn func(models.CreateCashflowRequest) (*models.CashflowView, error)
	getFn    func(int) (*models.CashflowView, error)
	listFn   func(models.CashflowListQuery) (*models.PaginatedResult[*models.CashflowView], error)
	updateFn func(int, models.UpdateCashflowRequest) (*models.CashflowView, error)
	deleteFn func(int) error
}

func (m *mockCashflowService) Create(req models.CreateCashflowRequest) (*models.CashflowView, error) {
	return m.createFn(req)
}
func (m *mockCashflowService) Get(id int) (*models.CashflowView, error) {
	return m.getFn(id)
}
func (m *mockCashflowService) List(q models.CashflowListQuery) (*models.PaginatedResult[*models.CashflowView], error) {
	return m.listFn(q)
}
func (m *mockCashflowService) Update(id int, req models.UpdateCashflowRequest) (*models.CashflowView, error) {
	return m.updateFn(id, req)
}
func (m *mockCashflowService) Delete(id int) error {
	return m.deleteFn(id)
}

func newCashflowTestRouter(svc CashflowService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCashflowHandler(svc)
	v1 := r.Group("/api/v1/cashflow")
	v1.POST("", h.CreateCashflow)
	v1.GET("", h.ListCashflows)
	v1.GET("/:id", h.GetCashflow)
	v1.PUT("/:id", h.UpdateCashflow)
	v1.DELETE("/:id", h.DeleteCashflow)
	return r
}

var aRentExpenseView = &models.CashflowView{
	ID: 1, Note: "Office rent", Nominal: 500, Type: "expense", RecapType: "monthly",
	CreatedAt: &testNow, UpdatedAt: &testNow,
}

func TestCreateCashflow(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		createFn       func(models.CreateCashflowRequest) (*models.CashflowView, error)
		expectedStatus int
	}{
		{
			name: "success",
			body: map[string]any{"note": "Office rent", "nominal": 500, "type": "expense", "recap_type": "monthly"},
			createFn: func(models.CreateCashflowRequest) (*models.CashflowView, error) {
				return aRentExpenseView, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - missing note",
			body:           map[string]any{"nominal": 500, "type": "expense", "recap_type": "monthly"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - zero nominal",
			body:           map[string]any{"note": "rent", "nominal": 0, "type": "expense", "recap_type": "monthly"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - malformed json",
			body:           "not-an-object",
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCashflowTestRouter(&mockCashflowService{createFn: tt.createFn})
			w := doRequest(router, http.MethodPost, "/api/v1/cashflow", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestGetCashflow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router := newCashflowTestRouter(&mockCashflowService{
			getFn: func(int) (*models.CashflowView, error) { return aRentExpenseView, nil },
		})
		w := doRequest(router, http.MethodGet, "/api/v1/cashflow/1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body.Message != "Cashflow retrieved successfully" {
			t.Errorf("unexpected envelope: %+v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		router := newCashflowTestRouter(&mockCashflowService{
			getFn: func(id int) (*models.CashflowView, error) {
				return nil, apperror.NotFound("Cashflow with id %d not found", id)
			},
		})
		w := doRequest(router, http.MethodGet, "/api/v1/cashflow/9", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestListCashflows(t *testing.T) {
	var captured models.CashflowListQuery
	router := newCashflowTestRouter(&mockCashflowService{
		listFn: func(q models.CashflowListQuery) (*models.PaginatedResult[*models.CashflowView], error) {
			captured = q
			return &models.PaginatedResult[*models.CashflowView]{
				Data: []*models.CashflowView{aRentExpenseView}, Total: 1, Page: 1, Limit: 10, TotalPages: 1,
			}, nil
		},
	})
	w := doRequest(router, http.MethodGet, "/api/v1/cashflow?type=expense&recap_type=monthly&search=rent", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}
	if captured.Type != "expense" || captured.RecapType != "monthly" || captured.Search != "rent" {
		t.Errorf("filters not forwarded: %+v", captured)
	}
}

func TestUpdateCashflow(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		updateFn       func(int, models.UpdateCashflowRequest) (*models.CashflowView, error)
		expectedStatus int
	}{
		{
			name: "success - note only",
			body: map[string]any{"note": "Warehouse rent"},
			updateFn: func(_ int, req models.UpdateCashflowRequest) (*models.CashflowView, error) {
				if req.Note == nil || req.Nominal != nil {
					return nil, apperror.Internal(nil)
				}
				return aRentExpenseView, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			body: map[string]any{"nominal": 600},
			updateFn: func(id int, _ models.UpdateCashflowRequest) (*models.CashflowView, error) {
				return nil, apperror.NotFound("Cashflow with id %d not found", id)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad request - negative nominal",
			body:           map[string]any{"nominal": -5},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCashflowTestRouter(&mockCashflowService{updateFn: tt.updateFn})
			w := doRequest(router, http.MethodPut, "/api/v1/cashflow/1", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestDeleteCashflow(t *testing.T) {
	router := newCashflowTestRouter(&mockCashflowService{deleteFn: func(int) error { return nil }})
	w := doRequest(router, http.MethodDelete, "/api/v1/cashflow/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body.Message != "Cashflow deleted successfully" {
		t.Errorf("unexpected envelope: %+v", body)
	}
}
