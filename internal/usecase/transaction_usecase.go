package usecase

import (
	"time"

	"github.com/Yasinqurni/m-app-server/internal/apperror"
	"github.com/Yasinqurni/m-app-server/internal/models"
)

type TransactionRepository interface {
	Create(transaction *models.Transaction) error
	FindByID(id int) (*models.Transaction, error)
	FindWithPagination(q models.TransactionListQuery) (*models.PaginatedResult[models.Transaction], error)
	Update(id int, req *models.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(id int) error
}

// TransactionUsecase also reads products: creating a transaction snapshots the
// product's pricing at that instant.
type TransactionUsecase struct {
	transactions TransactionRepository
	products     ProductRepository
}

func NewTransactionUsecase(transactions TransactionRepository, products ProductRepository) *TransactionUsecase {
	return &TransactionUsecase{transactions: transactions, products: products}
}

// Create copies hpp_amount and selling_amount from the referenced product into
// the new row. A missing or deleted product aborts before any insert. Create
// intentionally returns no payload.
func (u *TransactionUsecase) Create(req models.CreateTransactionRequest) error {
	product, err := u.products.FindByID(req.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NotFound("Product with id %d not found", req.ProductID)
	}

	now := time.Now().UTC()
	transaction := &models.Transaction{
		ProductID:     req.ProductID,
		HppAmount:     product.HppAmount,
		SellingAmount: product.SellingAmount,
		Qty:           req.Qty,
		CreatedAt:     &now,
		UpdatedAt:     &now,
	}
	return u.transactions.Create(transaction)
}

func (u *TransactionUsecase) Get(id int) (*models.TransactionView, error) {
	transaction, err := u.transactions.FindByID(id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NotFound("Transaction with id %d not found", id)
	}
	return models.NewTransactionView(transaction), nil
}

func (u *TransactionUsecase) List(q models.TransactionListQuery) (*models.PaginatedResult[*models.TransactionView], error) {
	page, err := u.transactions.FindWithPagination(q)
	if err != nil {
		return nil, err
	}
	return models.MapPage(page, func(t models.Transaction) *models.TransactionView {
		return models.NewTransactionView(&t)
	}), nil
}

// Update may override product_id, hpp_amount, selling_amount and qty
// independently; stored amounts are never re-snapshotted from the product.
func (u *TransactionUsecase) Update(id int, req models.UpdateTransactionRequest) (*models.TransactionView, error) {
	existing, err := u.transactions.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Transaction with id %d not found", id)
	}

	updated, err := u.transactions.Update(id, &req)
	if err != nil {
		return nil, err
	}
	return models.NewTransactionView(updated), nil
}

func (u *TransactionUsecase) Delete(id int) error {
	existing, err := u.transactions.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Transaction with id %d not found", id)
	}
	return u.transactions.Delete(id)
}
