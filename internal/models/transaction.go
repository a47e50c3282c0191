package models

import "time"

// Transaction is the write model for the transactions table. HppAmount and
// SellingAmount are copied from the referenced product at creation time; they
// are never re-synced when the product's pricing changes later.
type Transaction struct {
	ID            int        `json:"id"`
	ProductID     int        `json:"product_id"`
	HppAmount     int        `json:"hpp_amount"`
	SellingAmount int        `json:"selling_amount"`
	Qty           int        `json:"qty"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	DeletedAt     *time.Time `json:"-"`
}

type CreateTransactionRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Qty       int `json:"qty" validate:"required,gt=0"`
}

type UpdateTransactionRequest struct {
	ProductID     *int `json:"product_id" validate:"omitempty,gt=0"`
	HppAmount     *int `json:"hpp_amount" validate:"omitempty,gte=0"`
	SellingAmount *int `json:"selling_amount" validate:"omitempty,gte=0"`
	Qty           *int `json:"qty" validate:"omitempty,gt=0"`
}

type TransactionListQuery struct {
	Limit     string
	Page      string
	Search    string
	OrderBy   string
	Direction string
	ProductID string
}

type TransactionView struct {
	ID            int        `json:"id"`
	ProductID     int        `json:"product_id"`
	HppAmount     int        `json:"hpp_amount"`
	SellingAmount int        `json:"selling_amount"`
	Qty           int        `json:"qty"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func NewTransactionView(t *Transaction) *TransactionView {
	return &TransactionView{
		ID:            t.ID,
		ProductID:     t.ProductID,
		HppAmount:     t.HppAmount,
		SellingAmount: t.SellingAmount,
		Qty:           t.Qty,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
