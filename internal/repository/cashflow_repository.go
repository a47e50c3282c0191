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

var cashflowOrderColumns = map[string]string{
	"note":       "note",
	"nominal":    "nominal",
	"type":       "type",
	"recap_type": "recap_type",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

const cashflowColumns = "id, note, nominal, type, recap_type, created_at, updated_at, deleted_at"

type CashflowRepository struct {
	db *sql.DB
}

func NewCashflowRepository(db *sql.DB) *CashflowRepository {
	return &CashflowRepository{db: db}
}

func (r *CashflowRepository) Create(cashflow *models.Cashflow) error {
	query := `
		INSERT INTO cashflow (note, nominal, type, recap_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query,
		cashflow.Note, cashflow.Nominal, cashflow.Type, cashflow.RecapType,
		cashflow.CreatedAt, cashflow.UpdatedAt,
	)
	if err != nil {
		log.Printf("DB error: %v", err)
		return apperror.Database(fmt.Errorf("failed to create cashflow: %w", err))
	}
	return nil
}

func (r *CashflowRepository) FindByID(id int) (*models.Cashflow, error) {
	query := `SELECT ` + cashflowColumns + ` FROM cashflow WHERE id = $1 AND deleted_at IS NULL`
	cashflow, err := scanCashflow(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to get cashflow: %w", err))
	}
	return cashflow, nil
}

// FindLatest returns the most recently inserted non-deleted row, or (nil, nil)
// when the table is empty. Create relies on this to hand back the row it just
// wrote; under concurrent creates it may pick up a neighbour's row.
func (r *CashflowRepository) FindLatest() (*models.Cashflow, error) {
	query := `SELECT ` + cashflowColumns + ` FROM cashflow WHERE deleted_at IS NULL ORDER BY id DESC LIMIT 1`
	cashflow, err := scanCashflow(r.db.QueryRow(query))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to get latest cashflow: %w", err))
	}
	return cashflow, nil
}

func (r *CashflowRepository) FindWithPagination(q models.CashflowListQuery) (*models.PaginatedResult[models.Cashflow], error) {
	page := parsePage(q.Page)
	limit := parseLimit(q.Limit)
	offset := (page - 1) * limit

	where := newWhereBuilder()
	if strings.TrimSpace(q.Search) != "" {
		where.And("note LIKE $%d", containsPattern(q.Search))
	}
	if strings.TrimSpace(q.Type) != "" {
		where.And("type = $%d", strings.TrimSpace(q.Type))
	}
	if strings.TrimSpace(q.RecapType) != "" {
		where.And("recap_type = $%d", strings.TrimSpace(q.RecapType))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM cashflow WHERE ` + where.Clause()
	if err := r.db.QueryRow(countQuery, where.Args()...).Scan(&total); err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to count cashflow: %w", err))
	}

	limitIdx := where.Next()
	dataQuery := fmt.Sprintf(
		`SELECT %s FROM cashflow WHERE %s %s LIMIT $%d OFFSET $%d`,
		cashflowColumns, where.Clause(),
		orderClause(q.OrderBy, q.Direction, cashflowOrderColumns),
		limitIdx, limitIdx+1,
	)
	rows, err := r.db.Query(dataQuery, append(where.Args(), limit, offset)...)
	if err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to list cashflow: %w", err))
	}
	defer rows.Close()

	data := make([]models.Cashflow, 0, limit)
	for rows.Next() {
		cashflow, err := scanCashflow(rows)
		if err != nil {
			log.Printf("DB error: %v", err)
			return nil, apperror.Database(fmt.Errorf("failed to scan cashflow: %w", err))
		}
		data = append(data, *cashflow)
	}

	return &models.PaginatedResult[models.Cashflow]{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pageCount(total, limit),
	}, nil
}

func (r *CashflowRepository) Update(id int, req *models.UpdateCashflowRequest) (*models.Cashflow, error) {
	var set []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Note != nil {
		add("note", *req.Note)
	}
	if req.Nominal != nil {
		add("nominal", *req.Nominal)
	}
	if req.Type != nil {
		add("type", *req.Type)
	}
	if req.RecapType != nil {
		add("recap_type", *req.RecapType)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE cashflow SET %s WHERE id = $%d AND deleted_at IS NULL`,
		strings.Join(set, ", "), len(args),
	)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		log.Printf("DB error: %v", err)
		return nil, apperror.Database(fmt.Errorf("failed to update cashflow: %w", err))
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, apperror.NotFound("Cashflow with id %d not found", id)
	}

	updated, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Cashflow with id %d not found", id)
	}
	return updated, nil
}

func (r *CashflowRepository) Delete(id int) error {
	now := time.Now().UTC()
	query := `UPDATE cashflow SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	result, err := r.db.Exec(query, now, id)
	if err != nil {
		log.Printf("DB error: %v", err)
		return apperror.Database(fmt.Errorf("failed to delete cashflow: %w", err))
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperror.NotFound("Cashflow with id %d not found", id)
	}
	return nil
}

func scanCashflow(row rowScanner) (*models.Cashflow, error) {
	var cashflow models.Cashflow
	var createdAt, updatedAt, deletedAt sql.NullTime

	err := row.Scan(
		&cashflow.ID, &cashflow.Note, &cashflow.Nominal,
		&cashflow.Type, &cashflow.RecapType,
		&createdAt, &updatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	cashflow.CreatedAt = nullTimePtr(createdAt)
	cashflow.UpdatedAt = nullTimePtr(updatedAt)
	cashflow.DeletedAt = nullTimePtr(deletedAt)
	return &cashflow, nil
}
