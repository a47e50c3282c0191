package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yasinqurni/m-app-server/internal/middleware"
	"github.com/Yasinqurni/m-app-server/internal/models"
	"github.com/Yasinqurni/m-app-server/internal/response"
)

// TransactionService defines the transaction operations used by
// TransactionHandler. Create has no return payload.
type TransactionService interface {
	Create(req models.CreateTransactionRequest) error
	Get(id int) (*models.TransactionView, error)
	List(q models.TransactionListQuery) (*models.PaginatedResult[*models.TransactionView], error)
	Update(id int, req models.UpdateTransactionRequest) (*models.TransactionView, error)
	Delete(id int) error
}

type TransactionHandler struct {
	transactions TransactionService
}

func NewTransactionHandler(transactions TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", "bad_request")
		return
	}
	if errs := middleware.ValidateRequest(req); errs != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request data", middleware.ValidationErrorString(errs))
		return
	}

	if err := h.transactions.Create(req); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Transaction created successfully", nil)
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	transaction, err := h.transactions.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Transaction retrieved successfully", transaction)
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	q := models.TransactionListQuery{
		Limit:     c.Query("limit"),
		Page:      c.Query("page"),
		Search:    c.Query("search"),
		OrderBy:   c.Query("order_by"),
		Direction: c.Query("direction"),
		ProductID: c.Query("product_id"),
	}

	transactions, err := h.transactions.List(q)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}

func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", "bad_request")
		return
	}
	if errs := middleware.ValidateRequest(req); errs != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request data", middleware.ValidationErrorString(errs))
		return
	}

	transaction, err := h.transactions.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Transaction updated successfully", transaction)
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.transactions.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Transaction deleted successfully", gin.H{})
}
