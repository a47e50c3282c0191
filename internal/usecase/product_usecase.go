// Package usecase holds the business rules between the HTTP handlers and the
// repositories: existence and uniqueness checks, cross-entity lookups, and
// response shaping.
package usecase

import (
	"fmt"
	"time"

	"github.com/Yasinqurni/m-app-server/internal/apperror"
	"github.com/Yasinqurni/m-app-server/internal/models"
)

// ProductRepository is the slice of the product store this usecase needs.
// Single-row lookups return (nil, nil) when no non-deleted row matches.
type ProductRepository interface {
	Create(product *models.Product) error
	FindByID(id int) (*models.Product, error)
	FindByName(name string) (*models.Product, error)
	FindWithPagination(q models.ProductListQuery) (*models.PaginatedResult[models.Product], error)
	Update(id int, req *models.UpdateProductRequest) (*models.Product, error)
	Delete(id int) error
}

type ProductUsecase struct {
	products ProductRepository
}

func NewProductUsecase(products ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

// Create inserts a product after checking that no non-deleted product carries
// the same name, then re-reads the row by name to return the canonical record.
// The check and the insert are separate statements, so a concurrent create
// with the same name can slip between them.
func (u *ProductUsecase) Create(req models.CreateProductRequest) (*models.ProductView, error) {
	existing, err := u.products.FindByName(req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.BadRequest("Product with this name already exists")
	}

	now := time.Now().UTC()
	product := &models.Product{
		Name:          req.Name,
		HppAmount:     req.HppAmount,
		SellingAmount: req.SellingAmount,
		CreatedAt:     &now,
		UpdatedAt:     &now,
	}
	if err := u.products.Create(product); err != nil {
		return nil, err
	}

	created, err := u.products.FindByName(req.Name)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, apperror.Internal(fmt.Errorf("product %q missing after insert", req.Name))
	}
	return models.NewProductView(created), nil
}

func (u *ProductUsecase) Get(id int) (*models.ProductView, error) {
	product, err := u.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NotFound("Product with id %d not found", id)
	}
	return models.NewProductView(product), nil
}

func (u *ProductUsecase) List(q models.ProductListQuery) (*models.PaginatedResult[*models.ProductView], error) {
	page, err := u.products.FindWithPagination(q)
	if err != nil {
		return nil, err
	}
	return models.MapPage(page, func(p models.Product) *models.ProductView {
		return models.NewProductView(&p)
	}), nil
}

// Update applies only the supplied fields. A supplied name that differs from
// the current one is re-checked for uniqueness against other non-deleted rows.
func (u *ProductUsecase) Update(id int, req models.UpdateProductRequest) (*models.ProductView, error) {
	existing, err := u.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Product with id %d not found", id)
	}

	if req.Name != nil && *req.Name != existing.Name {
		taken, err := u.products.FindByName(*req.Name)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, apperror.BadRequest("Product with this name already exists")
		}
	}

	updated, err := u.products.Update(id, &req)
	if err != nil {
		return nil, err
	}
	return models.NewProductView(updated), nil
}

func (u *ProductUsecase) Delete(id int) error {
	existing, err := u.products.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Product with id %d not found", id)
	}
	return u.products.Delete(id)
}
