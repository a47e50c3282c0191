package usecase

import (
	"fmt"
	"time"

	"github.com/Yasinqurni/m-app-server/internal/apperror"
	"github.com/Yasinqurni/m-app-server/internal/models"
)

type CashflowRepository interface {
	Create(cashflow *models.Cashflow) error
	FindByID(id int) (*models.Cashflow, error)
	FindLatest() (*models.Cashflow, error)
	FindWithPagination(q models.CashflowListQuery) (*models.PaginatedResult[models.Cashflow], error)
	Update(id int, req *models.UpdateCashflowRequest) (*models.Cashflow, error)
	Delete(id int) error
}

type CashflowUsecase struct {
	cashflows CashflowRepository
}

func NewCashflowUsecase(cashflows CashflowRepository) *CashflowUsecase {
	return &CashflowUsecase{cashflows: cashflows}
}

// Create inserts the row and returns the most recent non-deleted one as the
// created entity. Cashflow has no natural key to re-read by, so a concurrent
// create can make this pick up the other caller's row.
func (u *CashflowUsecase) Create(req models.CreateCashflowRequest) (*models.CashflowView, error) {
	now := time.Now().UTC()
	cashflow := &models.Cashflow{
		Note:      req.Note,
		Nominal:   req.Nominal,
		Type:      req.Type,
		RecapType: req.RecapType,
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	if err := u.cashflows.Create(cashflow); err != nil {
		return nil, err
	}

	created, err := u.cashflows.FindLatest()
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, apperror.Internal(fmt.Errorf("cashflow missing after insert"))
	}
	return models.NewCashflowView(created), nil
}

func (u *CashflowUsecase) Get(id int) (*models.CashflowView, error) {
	cashflow, err := u.cashflows.FindByID(id)
	if err != nil {
		return nil, err
	}
	if cashflow == nil {
		return nil, apperror.NotFound("Cashflow with id %d not found", id)
	}
	return models.NewCashflowView(cashflow), nil
}

func (u *CashflowUsecase) List(q models.CashflowListQuery) (*models.PaginatedResult[*models.CashflowView], error) {
	page, err := u.cashflows.FindWithPagination(q)
	if err != nil {
		return nil, err
	}
	return models.MapPage(page, func(cf models.Cashflow) *models.CashflowView {
		return models.NewCashflowView(&cf)
	}), nil
}

func (u *CashflowUsecase) Update(id int, req models.UpdateCashflowRequest) (*models.CashflowView, error) {
	existing, err := u.cashflows.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Cashflow with id %d not found", id)
	}

	updated, err := u.cashflows.Update(id, &req)
	if err != nil {
		return nil, err
	}
	return models.NewCashflowView(updated), nil
}

func (u *CashflowUsecase) Delete(id int) error {
	existing, err := u.cashflows.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Cashflow with id %d not found", id)
	}
	return u.cashflows.Delete(id)
}
