package models

import "time"

// Cashflow is the write model for the cashflow table. Type and RecapType are
// free-form category fields (e.g. income/expense).
type Cashflow struct {
	ID        int        `json:"id"`
	Note      string     `json:"note"`
	Nominal   int        `json:"nominal"`
	Type      string     `json:"type"`
	RecapType string     `json:"recap_type"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

type CreateCashflowRequest struct {
	Note      string `json:"note" validate:"required,min=1,max=500"`
	Nominal   int    `json:"nominal" validate:"required,gt=0"`
	Type      string `json:"type" validate:"required,min=1,max=50"`
	RecapType string `json:"recap_type" validate:"required,min=1,max=50"`
}

type UpdateCashflowRequest struct {
	Note      *string `json:"note" validate:"omitempty,min=1,max=500"`
	Nominal   *int    `json:"nominal" validate:"omitempty,gt=0"`
	Type      *string `json:"type" validate:"omitempty,min=1,max=50"`
	RecapType *string `json:"recap_type" validate:"omitempty,min=1,max=50"`
}

type CashflowListQuery struct {
	Limit     string
	Page      string
	Search    string
	OrderBy   string
	Direction string
	Type      string
	RecapType string
}

type CashflowView struct {
	ID        int        `json:"id"`
	Note      string     `json:"note"`
	Nominal   int        `json:"nominal"`
	Type      string     `json:"type"`
	RecapType string     `json:"recap_type"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func NewCashflowView(cf *Cashflow) *CashflowView {
	return &CashflowView{
		ID:        cf.ID,
		Note:      cf.Note,
		Nominal:   cf.Nominal,
		Type:      cf.Type,
		RecapType: cf.RecapType,
		CreatedAt: cf.CreatedAt,
		UpdatedAt: cf.UpdatedAt,
	}
}
