package models

import "time"

// Product is the write model for the products table. DeletedAt non-nil marks
// a soft-deleted row; every read path filters those out.
type Product struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	HppAmount     int        `json:"hpp_amount"`
	SellingAmount int        `json:"selling_amount"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	DeletedAt     *time.Time `json:"-"`
}

type CreateProductRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=255"`
	HppAmount     int    `json:"hpp_amount" validate:"gte=0"`
	SellingAmount int    `json:"selling_amount" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=255"`
	HppAmount     *int    `json:"hpp_amount" validate:"omitempty,gte=0"`
	SellingAmount *int    `json:"selling_amount" validate:"omitempty,gte=0"`
}

// ProductListQuery carries the raw, string-encoded list parameters. Parsing
// and clamping happen in the repository layer.
type ProductListQuery struct {
	Limit     string
	Page      string
	Search    string
	OrderBy   string
	Direction string
}

// ProductView is the response shape; it never exposes deleted_at.
type ProductView struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	HppAmount     int        `json:"hpp_amount"`
	SellingAmount int        `json:"selling_amount"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func NewProductView(p *Product) *ProductView {
	return &ProductView{
		ID:            p.ID,
		Name:          p.Name,
		HppAmount:     p.HppAmount,
		SellingAmount: p.SellingAmount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
