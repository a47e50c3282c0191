package repository

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Yasinqurni/m-app-server/internal/apperror"
	"github.com/Yasinqurni/m-app-server/internal/models"
)

var transactionOrderColumns = map[string]string{
	"product_id":     "product_id",
	"hpp_amount":     "hpp_amount",
	"selling_amount": "selling_amount",
	"qty":            "qty",
	"created_at":     "created_at",
	"updated_at":     "updated_at",
}

const transactionColumns = "id, product_id, hpp_amount, selling_amount, qty, created_at, updated_at, deleted_at"

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (product_id, hpp_amount, selling_amount, qty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query,
		transaction.ProductID, transaction.HppAmount, transaction.SellingAmount,
		transaction.Qty, transaction.CreatedAt, transaction.UpdatedAt,
	)
	if err != nil {
		log.Printf("DB error: %v", err)
		return apperror.Database(fmt.Errorf("failed to create transaction: %w", err))
	}
	return nil
}

func (r *TransactionRepository) FindByID(id int) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND deleted_at IS NULL`
	transaction, err := scanTransaction(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to get transaction: %w", err))
	}
	return transaction, nil
}

func (r *TransactionRepository) FindWithPagination(q models.TransactionListQuery) (*models.PaginatedResult[models.Transaction], error) {
	page := parsePage(q.Page)
	limit := parseLimit(q.Limit)
	offset := (page - 1) * limit

	where := newWhereBuilder()
	// An unparseable product_id filter is dropped, not an error.
	if productID, err := strconv.Atoi(strings.TrimSpace(q.ProductID)); err == nil {
		where.And("product_id = $%d", productID)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions WHERE ` + where.Clause()
	if err := r.db.QueryRow(countQuery, where.Args()...).Scan(&total); err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to count transactions: %w", err))
	}

	limitIdx := where.Next()
	dataQuery := fmt.Sprintf(
		`SELECT %s FROM transactions WHERE %s %s LIMIT $%d OFFSET $%d`,
		transactionColumns, where.Clause(),
		orderClause(q.OrderBy, q.Direction, transactionOrderColumns),
		limitIdx, limitIdx+1,
	)
	rows, err := r.db.Query(dataQuery, append(where.Args(), limit, offset)...)
	if err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to list transactions: %w", err))
	}
	defer rows.Close()

	data := make([]models.Transaction, 0, limit)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			log.Printf("DB error: %v", err)
			return nil, apperror.Database(fmt.Errorf("failed to scan transaction: %w", err))
		}
		data = append(data, *transaction)
	}

	return &models.PaginatedResult[models.Transaction]{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pageCount(total, limit),
	}, nil
}

func (r *TransactionRepository) Update(id int, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	var set []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.ProductID != nil {
		add("product_id", *req.ProductID)
	}
	if req.HppAmount != nil {
		add("hpp_amount", *req.HppAmount)
	}
	if req.SellingAmount != nil {
		add("selling_amount", *req.SellingAmount)
	}
	if req.Qty != nil {
		add("qty", *req.Qty)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE transactions SET %s WHERE id = $%d AND deleted_at IS NULL`,
		strings.Join(set, ", "), len(args),
	)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to update transaction: %w", err))
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, apperror.NotFound("Transaction with id %d not found", id)
	}

	updated, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Transaction with id %d not found", id)
	}
	return updated, nil
}

func (r *TransactionRepository) Delete(id int) error {
	now := time.Now().UTC()
	query := `UPDATE transactions SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.db.Exec(query, now, id)
	if err != nil {
		log.Printf("DB error: %v", err)
		return apperror.Database(fmt.Errorf("failed to delete transaction: %w", err))
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperror.NotFound("Transaction with id %d not found", id)
	}
	return nil
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var transaction models.Transaction
	var createdAt, updatedAt, deletedAt sql.NullTime

	err := row.Scan(
		&transaction.ID, &transaction.ProductID, &transaction.HppAmount,
		&transaction.SellingAmount, &transaction.Qty,
		&createdAt, &updatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	transaction.CreatedAt = nullTimePtr(createdAt)
	transaction.UpdatedAt = nullTimePtr(updatedAt)
	transaction.DeletedAt = nullTimePtr(deletedAt)
	return &transaction, nil
}
