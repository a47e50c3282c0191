package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yasinqurni/m-app-server/internal/middleware"
	"github.com/Yasinqurni/m-app-server/internal/models"
	"github.com/Yasinqurni/m-app-server/internal/response"
)

// CashflowService defines the cashflow operations used by CashflowHandler.
type CashflowService interface {
	Create(req models.CreateCashflowRequest) (*models.CashflowView, error)
	Get(id int) (*models.CashflowView, error)
	List(q models.CashflowListQuery) (*models.PaginatedResult[*models.CashflowView], error)
	Update(id int, req models.UpdateCashflowRequest) (*models.CashflowView, error)
	Delete(id int) error
}

type CashflowHandler struct {
	cashflows CashflowService
}

func NewCashflowHandler(cashflows CashflowService) *CashflowHandler {
	return &CashflowHandler{cashflows: cashflows}
}

func (h *CashflowHandler) CreateCashflow(c *gin.Context) {
	var req models.CreateCashflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", "bad_request")
		return
	}
	if errs := middleware.ValidateRequest(req); errs != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request data", middleware.ValidationErrorString(errs))
		return
	}

	cashflow, err := h.cashflows.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Cashflow created successfully", cashflow)
}

func (h *CashflowHandler) GetCashflow(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	cashflow, err := h.cashflows.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Cashflow retrieved successfully", cashflow)
}

func (h *CashflowHandler) ListCashflows(c *gin.Context) {
	q := models.CashflowListQuery{
		Limit:     c.Query("limit"),
		Page:      c.Query("page"),
		Search:    c.Query("search"),
		OrderBy:   c.Query("order_by"),
		Direction: c.Query("direction"),
		Type:      c.Query("type"),
		RecapType: c.Query("recap_type"),
	}

	cashflows, err := h.cashflows.List(q)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Cashflows retrieved successfully", cashflows)
}

func (h *CashflowHandler) UpdateCashflow(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateCashflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", "bad_request")
		return
	}
	if errs := middleware.ValidateRequest(req); errs != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request data", middleware.ValidationErrorString(errs))
		return
	}

	cashflow, err := h.cashflows.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Cashflow updated successfully", cashflow)
}

func (h *CashflowHandler) DeleteCashflow(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.cashflows.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Cashflow deleted successfully", gin.H{})
}
