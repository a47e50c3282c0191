package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yasinqurni/m-app-server/internal/middleware"
	"github.com/Yasinqurni/m-app-server/internal/models"
	"github.com/Yasinqurni/m-app-server/internal/response"
)

// ProductService defines the product operations used by ProductHandler.
type ProductService interface {
	Create(req models.CreateProductRequest) (*models.ProductView, error)
	Get(id int) (*models.ProductView, error)
	List(q models.ProductListQuery) (*models.PaginatedResult[*models.ProductView], error)
	Update(id int, req models.UpdateProductRequest) (*models.ProductView, error)
	Delete(id int) error
}

type ProductHandler struct {
	products ProductService
}

func NewProductHandler(products ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", "bad_request")
		return
	}
	if errs := middleware.ValidateRequest(req); errs != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request data", middleware.ValidationErrorString(errs))
		return
	}

	product, err := h.products.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.products.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	q := models.ProductListQuery{
		Limit:     c.Query("limit"),
		Page:      c.Query("page"),
		Search:    c.Query("search"),
		OrderBy:   c.Query("order_by"),
		Direction: c.Query("direction"),
	}

	products, err := h.products.List(q)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", "bad_request")
		return
	}
	if errs := middleware.ValidateRequest(req); errs != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request data", middleware.ValidationErrorString(errs))
		return
	}

	product, err := h.products.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.products.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Product deleted successfully", gin.H{})
}
