package repository

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Yasinqurni/m-app-server/internal/apperror"
	"github.com/Yasinqurni/m-app-server/internal/models"
)

// productOrderColumns is the order_by allow-list for products. Anything else
// falls back to id ascending.
var productOrderColumns = map[string]string{
	"name":           "name",
	"hpp_amount":     "hpp_amount",
	"selling_amount": "selling_amount",
	"created_at":     "created_at",
	"updated_at":     "updated_at",
}

const productColumns = "id, name, hpp_amount, selling_amount, created_at, updated_at, deleted_at"

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(product *models.Product) error {
	query := `
		INSERT INTO products (name, hpp_amount, selling_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query,
		product.Name, product.HppAmount, product.SellingAmount,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		log.Printf("DB error: %v", err)
		return apperror.Database(fmt.Errorf("failed to create product: %w", err))
	}
	return nil
}

// FindByID returns the non-deleted product or (nil, nil) when absent.
func (r *ProductRepository) FindByID(id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL`
	product, err := scanProduct(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to get product: %w", err))
	}
	return product, nil
}

// FindByName matches the name exactly (case-sensitive) among non-deleted rows.
func (r *ProductRepository) FindByName(name string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 AND deleted_at IS NULL`
	product, err := scanProduct(r.db.QueryRow(query, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to get product: %w", err))
	}
	return product, nil
}

func (r *ProductRepository) FindWithPagination(q models.ProductListQuery) (*models.PaginatedResult[models.Product], error) {
	page := parsePage(q.Page)
	limit := parseLimit(q.Limit)
	offset := (page - 1) * limit

	where := newWhereBuilder()
	if strings.TrimSpace(q.Search) != "" {
		where.And("name LIKE $%d", containsPattern(q.Search))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM products WHERE ` + where.Clause()
	if err := r.db.QueryRow(countQuery, where.Args()...).Scan(&total); err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to count products: %w", err))
	}

	limitIdx := where.Next()
	dataQuery := fmt.Sprintf(
		`SELECT %s FROM products WHERE %s %s LIMIT $%d OFFSET $%d`,
		productColumns, where.Clause(),
		orderClause(q.OrderBy, q.Direction, productOrderColumns),
		limitIdx, limitIdx+1,
	)
	rows, err := r.db.Query(dataQuery, append(where.Args(), limit, offset)...)
	if err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to list products: %w", err))
	}
	defer rows.Close()

	data := make([]models.Product, 0, limit)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Printf("DB error: %v", err)
			return nil, apperror.Database(fmt.Errorf("failed to scan product: %w", err))
		}
		data = append(data, *product)
	}

	return &models.PaginatedResult[models.Product]{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pageCount(total, limit),
	}, nil
}

// Update applies only the supplied fields and always refreshes updated_at,
// then re-reads the row.
func (r *ProductRepository) Update(id int, req *models.UpdateProductRequest) (*models.Product, error) {
	var set []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.HppAmount != nil {
		add("hpp_amount", *req.HppAmount)
	}
	if req.SellingAmount != nil {
		add("selling_amount", *req.SellingAmount)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE products SET %s WHERE id = $%d AND deleted_at IS NULL`,
		strings.Join(set, ", "), len(args),
	)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to update product: %w", err))
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, apperror.NotFound("Product with id %d not found", id)
	}

	updated, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Product with id %d not found", id)
	}
	return updated, nil
}

// Delete soft-deletes by stamping deleted_at and updated_at.
func (r *ProductRepository) Delete(id int) error {
	now := time.Now().UTC()
	query := `UPDATE products SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.db.Exec(query, now, id)
	if err != nil {
		log.Printf("DB error: %v", err)
		return apperror.Database(fmt.Errorf("failed to delete product: %w", err))
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperror.NotFound("Product with id %d not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product
	var createdAt, updatedAt, deletedAt sql.NullTime

	err := row.Scan(
		&product.ID, &product.Name, &product.HppAmount, &product.SellingAmount,
		&createdAt, &updatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	product.CreatedAt = nullTimePtr(createdAt)
	product.UpdatedAt = nullTimePtr(updatedAt)
	product.DeletedAt = nullTimePtr(deletedAt)
	return &product, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
